package sensor

import (
	"sync"
	"testing"
)

func TestFeedStartsCentered(t *testing.T) {
	f := NewFeed()
	s, seq := f.Latest()
	if seq != 0 {
		t.Fatalf("fresh feed seq = %d, want 0", seq)
	}
	if s.Lateral != 0.5 {
		t.Fatalf("fresh feed lateral = %f, want 0.5", s.Lateral)
	}
}

func TestPublishClampsGeometry(t *testing.T) {
	cases := []struct {
		name        string
		in          Sample
		wantLateral float64
		wantWidth   float64
	}{
		{"in_range", Sample{Lateral: 0.3, Width: 0.2}, 0.3, 0.2},
		{"lateral_low", Sample{Lateral: -2, Width: 0.2}, 0, 0.2},
		{"lateral_high", Sample{Lateral: 9, Width: 0.2}, 1, 0.2},
		{"width_out", Sample{Lateral: 0.5, Width: -1}, 0.5, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := NewFeed()
			f.Publish(c.in)
			got, seq := f.Latest()
			if seq != 1 {
				t.Fatalf("seq = %d, want 1", seq)
			}
			if got.Lateral != c.wantLateral || got.Width != c.wantWidth {
				t.Fatalf("got lateral=%f width=%f, want %f/%f", got.Lateral, got.Width, c.wantLateral, c.wantWidth)
			}
		})
	}
}

func TestLatestWinsUnderConcurrentPublish(t *testing.T) {
	f := NewFeed()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				f.Publish(Sample{Lateral: float64(n) / 10, Width: 0.1})
			}
		}(i)
	}
	wg.Wait()

	_, seq := f.Latest()
	if seq != 800 {
		t.Fatalf("seq = %d, want 800 publishes counted", seq)
	}
}

func TestJumpEdgeFiresOncePerRaise(t *testing.T) {
	var j JumpEdge
	signal := []bool{false, true, true, true, false, false, true, false}
	wantEdges := []bool{false, true, false, false, false, false, true, false}

	for i, raised := range signal {
		if got := j.Detect(raised); got != wantEdges[i] {
			t.Fatalf("sample %d: edge = %v, want %v", i, got, wantEdges[i])
		}
	}
}

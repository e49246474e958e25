package engine

import "testing"

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

func TestLaneLateralMapping(t *testing.T) {
	tu := DashTuning()

	t.Run("center_lane_stays_centered", func(t *testing.T) {
		for _, depth := range []float64{0, 0.5, 1} {
			if got := LaneLateral(tu, 1, depth); got != 0.5 {
				t.Fatalf("center lane at depth %f = %f, want 0.5", depth, got)
			}
		}
	})

	t.Run("lanes_fan_out_with_depth", func(t *testing.T) {
		near := LaneLateral(tu, 0, 0.1)
		far := LaneLateral(tu, 0, 0.9)
		if far >= near {
			t.Fatalf("left lane should move further left approaching the player: %f -> %f", near, far)
		}
	})

	t.Run("full_spread_at_player_plane", func(t *testing.T) {
		left := LaneLateral(tu, 0, 1)
		right := LaneLateral(tu, 2, 1)
		if got := right - left; got != 2*tu.LaneSpread {
			t.Fatalf("spread at plane = %f, want %f", got, 2*tu.LaneSpread)
		}
	})

	t.Run("symmetric_about_center", func(t *testing.T) {
		for _, depth := range []float64{0.2, 0.6, 1} {
			left := LaneLateral(tu, 0, depth)
			right := LaneLateral(tu, 2, depth)
			if diff := (0.5 - left) - (right - 0.5); diff > 1e-12 || diff < -1e-12 {
				t.Fatalf("lanes asymmetric at depth %f: left=%f right=%f", depth, left, right)
			}
		}
	})
}

func TestDepthAdvanceScalesWithSpeed(t *testing.T) {
	e := newTestEngine()
	o := place(t, e, KindCoin, 0, 0, 1.0)

	e.Update(Input{Lateral: 0.5, Width: 0.12}, 0)
	base := o.Depth
	if !near(base, e.tuning.PerFrameScale*e.prog.Speed) {
		t.Fatalf("depth step = %f, want speed*perFrameScale = %f", base, e.tuning.PerFrameScale*e.prog.Speed)
	}

	e.prog.Speed = 2.0
	before := o.Depth
	e.Update(Input{Lateral: 0.5, Width: 0.12}, 16)
	if got := o.Depth - before; !near(got, 2*e.tuning.PerFrameScale) {
		t.Fatalf("doubled speed step = %f, want %f", got, 2*e.tuning.PerFrameScale)
	}
}

func TestPassedObjectsAreReleased(t *testing.T) {
	e := newTestEngine()
	place(t, e, KindBarrier, 0, 0.999, 1.0)
	place(t, e, KindCoin, 2, 0.999, 1.0)

	before := e.ActiveObjects()
	if before != 2 {
		t.Fatalf("setup: active = %d, want 2", before)
	}
	e.Update(Input{Lateral: 0.5, Width: 0.12}, 0)
	if e.ActiveObjects() != 0 {
		t.Fatalf("objects past the plane should be released, active = %d", e.ActiveObjects())
	}
	if e.Lives() != 3 || e.Score() != 0 {
		t.Fatalf("passing unresolved must be penalty-free: lives=%d score=%d", e.Lives(), e.Score())
	}
}

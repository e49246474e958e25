package score

import (
	"path/filepath"
	"testing"

	"github.com/milk9111/motionrush/engine"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestEmptyStoreReportsZero(t *testing.T) {
	s := openTestStore(t)
	got, err := s.HighScore(engine.ModeDash)
	if err != nil {
		t.Fatalf("high score: %v", err)
	}
	if got != 0 {
		t.Fatalf("empty store high score = %d, want 0", got)
	}
}

func TestSubmitTracksBestPerMode(t *testing.T) {
	s := openTestStore(t)

	steps := []struct {
		mode    engine.Mode
		score   int
		level   int
		newBest bool
	}{
		{engine.ModeDash, 100, 1, true},
		{engine.ModeDash, 80, 1, false},
		{engine.ModeDash, 250, 2, true},
		{engine.ModeDash, 250, 2, false}, // ties don't replace
		{engine.ModeRiver, 40, 1, true},  // independent bucket
	}

	for i, st := range steps {
		got, err := s.Submit(st.mode, st.score, st.level)
		if err != nil {
			t.Fatalf("step %d submit: %v", i, err)
		}
		if got != st.newBest {
			t.Fatalf("step %d: newBest = %v, want %v", i, got, st.newBest)
		}
	}

	dash, err := s.HighScore(engine.ModeDash)
	if err != nil {
		t.Fatalf("high score: %v", err)
	}
	if dash != 250 {
		t.Fatalf("dash best = %d, want 250", dash)
	}
	river, err := s.HighScore(engine.ModeRiver)
	if err != nil {
		t.Fatalf("high score: %v", err)
	}
	if river != 40 {
		t.Fatalf("river best = %d, want 40", river)
	}
}

func TestStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.Submit(engine.ModeDash, 123, 2); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	got, err := s2.HighScore(engine.ModeDash)
	if err != nil {
		t.Fatalf("high score: %v", err)
	}
	if got != 123 {
		t.Fatalf("best after reopen = %d, want 123", got)
	}
}

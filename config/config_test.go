package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/motionrush/engine"
)

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if f.Dash != engine.DashTuning() || f.River != engine.RiverTuning() {
		t.Fatalf("expected compiled-in defaults")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")

	f := Default()
	f.Dash.BandLow = 0.7
	f.Dash.JumpDurationMs = 650
	f.River.LivesMax = 5

	if err := Save(path, f); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Dash.BandLow != 0.7 || got.Dash.JumpDurationMs != 650 {
		t.Fatalf("dash overrides lost: %+v", got.Dash)
	}
	if got.River.LivesMax != 5 {
		t.Fatalf("river override lost: %+v", got.River)
	}
}

func TestPartialFileKeepsDefaultsElsewhere(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	partial := "dash:\n  band_low: 0.75\n"
	if err := os.WriteFile(path, []byte(partial), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Dash.BandLow != 0.75 {
		t.Fatalf("override not applied: %f", got.Dash.BandLow)
	}
	if got.Dash.BandHigh != engine.DashTuning().BandHigh {
		t.Fatalf("untouched field should keep its default")
	}
	if got.River != engine.RiverTuning() {
		t.Fatalf("river block should be untouched")
	}
}

func TestForSelectsMode(t *testing.T) {
	f := Default()
	if f.For(engine.ModeDash) != f.Dash {
		t.Fatalf("For(dash) mismatch")
	}
	if f.For(engine.ModeRiver) != f.River {
		t.Fatalf("For(river) mismatch")
	}
}

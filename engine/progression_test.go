package engine

import "testing"

func TestLevelUpSingleStep(t *testing.T) {
	tu := DashTuning()

	t.Run("threshold_crossed_once", func(t *testing.T) {
		p := newProgression(tu)
		p.addScore(480)
		if p.levelUpIfDue(tu) {
			t.Fatalf("480 < 500 should not level")
		}
		p.addScore(80) // 480 -> 560 in one frame
		if !p.levelUpIfDue(tu) {
			t.Fatalf("crossing 500 should level")
		}
		if p.Level != 2 {
			t.Fatalf("level = %d, want 2", p.Level)
		}
		if p.levelUpIfDue(tu) {
			t.Fatalf("remainder 60 should not level again")
		}
	})

	t.Run("huge_jump_levels_once_and_banks_rest", func(t *testing.T) {
		p := newProgression(tu)
		p.addScore(2 * tu.LevelThreshold + 50)
		if !p.levelUpIfDue(tu) {
			t.Fatalf("expected level-up")
		}
		if p.Level != 2 {
			t.Fatalf("level = %d, want exactly 2 after one frame", p.Level)
		}
		// the banked remainder carries into the next frame's check
		if !p.levelUpIfDue(tu) {
			t.Fatalf("banked score should level on the next check")
		}
		if p.Level != 3 {
			t.Fatalf("level = %d, want 3", p.Level)
		}
	})
}

func TestDifficultyClamps(t *testing.T) {
	tu := DashTuning()
	p := newProgression(tu)

	prevSpeed := p.Speed
	prevInterval := p.SpawnIntervalMs
	prevProb := p.ObstacleProb

	for i := 0; i < 50; i++ {
		p.addScore(tu.LevelThreshold)
		p.levelUpIfDue(tu)

		if p.Speed < prevSpeed {
			t.Fatalf("speed decreased: %f -> %f", prevSpeed, p.Speed)
		}
		if p.SpawnIntervalMs > prevInterval {
			t.Fatalf("spawn interval increased: %f -> %f", prevInterval, p.SpawnIntervalMs)
		}
		if p.ObstacleProb < prevProb {
			t.Fatalf("obstacle probability decreased: %f -> %f", prevProb, p.ObstacleProb)
		}
		prevSpeed, prevInterval, prevProb = p.Speed, p.SpawnIntervalMs, p.ObstacleProb
	}

	if p.Speed != tu.SpeedCap {
		t.Fatalf("speed = %f, want capped at %f", p.Speed, tu.SpeedCap)
	}
	if p.SpawnIntervalMs != tu.SpawnFloorMs {
		t.Fatalf("interval = %f, want floored at %f", p.SpawnIntervalMs, tu.SpawnFloorMs)
	}
	if p.ObstacleProb != tu.ObstacleProbCap {
		t.Fatalf("obstacle prob = %f, want capped at %f", p.ObstacleProb, tu.ObstacleProbCap)
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	tu := DashTuning()
	p := newProgression(tu)
	p.addScore(50)
	p.addScore(0)
	p.addScore(-10) // ignored
	if p.Score != 50 {
		t.Fatalf("score = %d, want 50", p.Score)
	}
}

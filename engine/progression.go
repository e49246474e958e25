package engine

// Progression carries the difficulty curve and the player's standing.
// Speed and obstacle probability only ever step up, the spawn interval only
// ever steps down, and every step is clamped so the curve cannot run away
// or spawn-storm the pool.
type Progression struct {
	Score int
	Lives int
	Level int

	Speed           float64
	SpawnIntervalMs float64
	ObstacleProb    float64

	// sinceLevel accumulates score earned since the last level-up.
	sinceLevel int
}

func newProgression(t Tuning) Progression {
	return Progression{
		Lives:           t.LivesMax,
		Level:           1,
		Speed:           t.StartSpeed,
		SpawnIntervalMs: t.StartSpawnMs,
		ObstacleProb:    t.StartObstacleProb,
	}
}

// addScore credits points toward both the total and the level counter.
func (p *Progression) addScore(n int) {
	if n <= 0 {
		return
	}
	p.Score += n
	p.sinceLevel += n
}

// levelUpIfDue applies at most one level-up per call. A single frame that
// jumps the score across more than one threshold still levels exactly once;
// the overshoot stays banked toward the next threshold.
func (p *Progression) levelUpIfDue(t Tuning) bool {
	if t.LevelThreshold <= 0 || p.sinceLevel < t.LevelThreshold {
		return false
	}
	p.sinceLevel -= t.LevelThreshold
	p.Level++

	p.Speed += t.SpeedStep
	if p.Speed > t.SpeedCap {
		p.Speed = t.SpeedCap
	}
	p.SpawnIntervalMs -= t.SpawnStepMs
	if p.SpawnIntervalMs < t.SpawnFloorMs {
		p.SpawnIntervalMs = t.SpawnFloorMs
	}
	p.ObstacleProb += t.ObstacleProbStep
	if p.ObstacleProb > t.ObstacleProbCap {
		p.ObstacleProb = t.ObstacleProbCap
	}
	return true
}

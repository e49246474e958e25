package engine

// maybeSpawn creates at most one object per configured interval. Obstacle
// versus collectible is a weighted coin flip on the current obstacle
// probability, lane choice is uniform, and the pooled slot is reused in
// preference to growing anything. A full pool silently swallows the
// attempt.
func (e *Engine) maybeSpawn(nowMs float64) {
	if nowMs-e.lastSpawnMs < e.prog.SpawnIntervalMs {
		return
	}
	e.lastSpawnMs = nowMs

	o := e.pool.acquire()
	if o == nil {
		return
	}

	o.Kind = e.rollKind()
	o.Lane = e.rng.Intn(e.tuning.Lanes)
	o.Size = 0.85 + e.rng.Float64()*0.3
}

func (e *Engine) rollKind() Kind {
	if e.rng.Float64() < e.prog.ObstacleProb {
		if e.rng.Float64() < 0.5 {
			return KindBarrier
		}
		return KindCrate
	}
	if e.rng.Float64() < e.tuning.StarChance {
		return KindStar
	}
	return KindCoin
}

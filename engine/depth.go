package engine

// LaneLateral maps (lane, depth) to a lateral position in [0,1]. Lanes pinch
// toward the center at the horizon and fan out to their full spread at the
// player plane, which is what gives the flat canvas its depth read. The
// engine itself only consumes this at collision-band depths; the renderer
// walks the whole curve.
func LaneLateral(t Tuning, lane int, depth float64) float64 {
	if t.Lanes <= 1 {
		return 0.5
	}
	center := float64(t.Lanes-1) / 2
	offset := (float64(lane) - center) * t.LaneSpread
	persp := t.HorizonPinch + (1-t.HorizonPinch)*clamp01(depth)
	return 0.5 + offset*persp
}

// advanceObjects moves every active object toward the player and retires
// anything past the player plane. An unresolved collectible sailing past is
// a missed opportunity, not a penalty; an unresolved obstacle past the
// plane was dodged laterally before reaching the band and is dropped
// without damage.
func (e *Engine) advanceObjects() {
	step := e.prog.Speed * e.tuning.PerFrameScale
	for i := range e.pool.objects {
		o := &e.pool.objects[i]
		if !o.Active {
			continue
		}
		o.Depth += step
		if o.Depth > e.tuning.PassedDepth {
			e.pool.release(o)
		}
	}
}

package engine

import "github.com/jakecoffman/cp"

// resolveCollisions judges every active, unresolved object whose depth sits
// inside the collision band. Judging over a band instead of at an exact
// plane is what keeps hits fair under discrete frame steps; the Resolved
// flag is what keeps the judgement at-most-once no matter how many frames
// the object spends inside the band.
func (e *Engine) resolveCollisions(nowMs float64, res *FrameResult) {
	t := e.tuning
	for i := range e.pool.objects {
		o := &e.pool.objects[i]
		if !o.Active || o.Resolved {
			continue
		}
		if o.Depth < t.BandLow || o.Depth >= t.BandHigh {
			continue
		}
		if !e.overlaps(o) {
			// stays eligible for a later frame within the band
			continue
		}

		if o.Kind.Class() == ClassCollectible {
			e.collect(o, res)
			continue
		}
		e.judgeObstacle(o, nowMs, res)
	}
}

// overlaps intersects the player's lateral interval with the object's, both
// widened to boxes so chipmunk's BB test can do the work. The vertical
// extents are dummies; only the lateral axis carries information.
func (e *Engine) overlaps(o *Object) bool {
	objLat := LaneLateral(e.tuning, o.Lane, o.Depth)
	objHalf := e.tuning.ObjectHalfWidth * o.Size

	playerBB := cp.BB{L: e.player.Lateral - e.player.HalfWidth, B: 0, R: e.player.Lateral + e.player.HalfWidth, T: 1}
	objBB := cp.BB{L: objLat - objHalf, B: 0, R: objLat + objHalf, T: 1}
	return playerBB.Intersects(objBB)
}

func (e *Engine) collect(o *Object, res *FrameResult) {
	o.Resolved = true
	value := e.tuning.CoinScore
	if o.Kind == KindStar {
		value = e.tuning.StarScore
	}
	e.prog.addScore(value)
	res.Collected = append(res.Collected, e.eventFor(o, value))
	e.particles.burst(LaneLateral(e.tuning, o.Lane, o.Depth), bandEventY, tintFor(o.Kind), e.tuning.BurstSize, e.rng)
}

func (e *Engine) judgeObstacle(o *Object, nowMs float64, res *FrameResult) {
	o.Resolved = true

	if e.player.Invincible(nowMs) {
		// invincibility suppresses new damage; it grants nothing else
		return
	}

	t := e.tuning
	if e.player.Jumping() {
		prog := e.player.JumpProgress(nowMs, t.JumpDurationMs)
		if prog > t.JumpWindowLow && prog < t.JumpWindowHigh {
			// clean dodge over the obstacle
			return
		}
	}

	e.prog.Lives--
	e.player.StartInvincibility(nowMs, t.InvincibleMs)
	res.Crashed = append(res.Crashed, e.eventFor(o, 0))
	e.particles.burst(LaneLateral(e.tuning, o.Lane, o.Depth), bandEventY, TintCrash, e.tuning.BurstSize, e.rng)

	if e.prog.Lives <= 0 {
		e.prog.Lives = 0
		e.gameOver = true
		res.GameOver = true
	}
}

func (e *Engine) eventFor(o *Object, value int) ObjectEvent {
	return ObjectEvent{
		Kind:    o.Kind,
		Lane:    o.Lane,
		Lateral: LaneLateral(e.tuning, o.Lane, o.Depth),
		Value:   value,
	}
}

package engine

// Player tracks the continuous motion state derived from the pose sensor.
// Lateral is the raw signal and is the only position collision ever sees;
// Display is an exponential moving average kept strictly for the
// presentation layer, because judging hits against smoothed input makes
// them feel delayed.
type Player struct {
	Lateral   float64
	HalfWidth float64
	Display   float64

	jumping     bool
	jumpStartMs float64

	invincibleUntilMs float64
}

const displaySmoothing = 0.35

// setPosition ingests the latest raw sample, clamping at the boundary so a
// bad sensor value can never produce a nonsensical overlap interval.
func (p *Player) setPosition(lateral, width float64) {
	p.Lateral = clamp01(lateral)
	p.HalfWidth = clamp01(width) / 2
	p.Display += (p.Lateral - p.Display) * displaySmoothing
}

// TriggerJump starts the jump arc. It is a no-op while already airborne; a
// jump cannot be retriggered mid-arc.
func (p *Player) TriggerJump(nowMs float64) bool {
	if p.jumping {
		return false
	}
	p.jumping = true
	p.jumpStartMs = nowMs
	return true
}

// Jumping reports whether the player is mid-arc.
func (p *Player) Jumping() bool {
	return p.jumping
}

// JumpProgress returns normalized arc progress in [0,1]. Progress is purely
// time-derived so frame-rate variance never changes jump duration in
// wall-clock terms.
func (p *Player) JumpProgress(nowMs, durationMs float64) float64 {
	if !p.jumping || durationMs <= 0 {
		return 0
	}
	prog := (nowMs - p.jumpStartMs) / durationMs
	if prog < 0 {
		return 0
	}
	if prog > 1 {
		return 1
	}
	return prog
}

// settleJump lands the player once the arc has run its course.
func (p *Player) settleJump(nowMs, durationMs float64) {
	if p.jumping && p.JumpProgress(nowMs, durationMs) >= 1 {
		p.jumping = false
	}
}

// StartInvincibility arms the post-hit damage window.
func (p *Player) StartInvincibility(nowMs, windowMs float64) {
	p.invincibleUntilMs = nowMs + windowMs
}

// Invincible is cleared lazily against the wall-clock deadline rather than
// by a per-frame countdown, so variable frame timing cannot drift it.
func (p *Player) Invincible(nowMs float64) bool {
	return nowMs < p.invincibleUntilMs
}

// Lane derives the nearest discrete lane from the continuous position.
// Collision never consults this; it exists for consumers that want a
// lane-snapped view (lane-highlight rendering, the simulate pilot).
func (p *Player) Lane(t Tuning) int {
	best := 0
	bestDist := 2.0
	for lane := 0; lane < t.Lanes; lane++ {
		d := p.Lateral - LaneLateral(t, lane, 1.0)
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			bestDist = d
			best = lane
		}
	}
	return best
}

// reset returns the player to a grounded, vulnerable, centered state.
func (p *Player) reset() {
	p.Lateral = 0.5
	p.Display = 0.5
	p.HalfWidth = 0
	p.jumping = false
	p.jumpStartMs = 0
	p.invincibleUntilMs = 0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

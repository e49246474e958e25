// Package engine is the per-frame game-state core for the motionrush suite.
// It is a pure state machine: the host injects the latest sensor sample and
// a monotonic clock into Update once per frame, and spawning, depth
// advance, collision judgement, scoring, and difficulty all fall out of
// that one call. The engine never reads a clock, never blocks, and
// owns every pool outright.
package engine

import "math/rand"

// Input is the latest-known sensor sample for a frame. Values arrive from
// an out-of-band sensing process at its own cadence; the engine just reads
// whatever was pushed most recently. Jump must be edge-triggered upstream:
// true exactly on the frame a jump should begin.
type Input struct {
	Lateral float64
	Width   float64
	Jump    bool
}

// ObjectEvent describes one judged object in a frame's result batch. Value
// is the score awarded (zero for crashes).
type ObjectEvent struct {
	Kind    Kind
	Lane    int
	Lateral float64
	Value   int
}

// FrameResult is the fixed-shape batch a frame produces for the
// presentation layer, which consumes it read-only.
type FrameResult struct {
	Collected []ObjectEvent
	Crashed   []ObjectEvent
	LeveledUp bool
	GameOver  bool
}

// Engine owns all mutable game state. Host code injects inputs and reads
// outputs through this instance; there are no ambient globals. All state
// mutation happens inside Update on a single goroutine.
type Engine struct {
	mode   Mode
	tuning Tuning
	rng    *rand.Rand

	pool      *objectPool
	particles *particlePool
	player    Player
	prog      Progression

	started     bool
	lastSpawnMs float64
	gameOver    bool
}

// New creates an engine for a mode with the given tuning. The seed fixes
// the spawn sequence, so a seeded engine is fully deterministic in
// (inputs, now).
func New(mode Mode, tuning Tuning, seed int64) *Engine {
	e := &Engine{
		mode:   mode,
		tuning: tuning,
		rng:    rand.New(rand.NewSource(seed)),
	}
	e.pool = newObjectPool(tuning.PoolCap)
	e.particles = newParticlePool(tuning.ParticleCap)
	e.Reset()
	return e
}

// Reset returns the engine to a fresh pre-game state. It is idempotent:
// resetting twice is the same as resetting once.
func (e *Engine) Reset() {
	e.pool.reset()
	e.particles.reset()
	e.player.reset()
	e.prog = newProgression(e.tuning)
	e.started = false
	e.lastSpawnMs = 0
	e.gameOver = false
}

// Update advances one frame. This is the only mutation path in the engine.
// After game over it is inert: no score, life, or object changes occur and
// the result keeps reporting GameOver.
func (e *Engine) Update(in Input, nowMs float64) FrameResult {
	if e.gameOver {
		return FrameResult{GameOver: true}
	}
	if !e.started {
		// anchor the spawn clock so the first interval isn't "since epoch"
		e.started = true
		e.lastSpawnMs = nowMs
	}

	var res FrameResult

	e.player.setPosition(in.Lateral, in.Width)
	if in.Jump {
		e.player.TriggerJump(nowMs)
	}
	e.player.settleJump(nowMs, e.tuning.JumpDurationMs)

	e.maybeSpawn(nowMs)
	e.advanceObjects()
	e.resolveCollisions(nowMs, &res)
	res.LeveledUp = e.prog.levelUpIfDue(e.tuning)
	e.particles.update()

	return res
}

// Mode returns the variant this engine was created for.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Tuning returns the active tuning values.
func (e *Engine) Tuning() Tuning {
	return e.tuning
}

// Score reports the current score.
func (e *Engine) Score() int {
	return e.prog.Score
}

// Lives reports lives remaining.
func (e *Engine) Lives() int {
	return e.prog.Lives
}

// Level reports the current level, starting at 1.
func (e *Engine) Level() int {
	return e.prog.Level
}

// GameOver reports whether the terminal state has been reached.
func (e *Engine) GameOver() bool {
	return e.gameOver
}

// Player exposes the motion state for the presentation layer. Renderers
// should draw from Display, not Lateral.
func (e *Engine) Player() *Player {
	return &e.player
}

// Objects returns the backing object slots, inactive ones included. The
// slice is read-only by convention; the renderer filters on Active.
func (e *Engine) Objects() []Object {
	return e.pool.objects
}

// ActiveObjects reports how many object slots are live.
func (e *Engine) ActiveObjects() int {
	return e.pool.activeCount()
}

// Particles returns the backing particle slots, inactive ones included.
func (e *Engine) Particles() []Particle {
	return e.particles.particles
}

package engine

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
)

// Tint picks a feedback palette for a burst. The engine stays color-space
// agnostic; the renderer maps tints to actual colors.
type Tint uint8

const (
	TintCoin Tint = iota
	TintStar
	TintCrash
)

func tintFor(k Kind) Tint {
	if k == KindStar {
		return TintStar
	}
	return TintCoin
}

// Particle is pure feedback: spawned on collect/crash, advanced each tick,
// recycled on expiry. Positions and velocities live in the same normalized
// space as the rest of the engine. Nothing in the collision or progression
// path ever reads one.
type Particle struct {
	Pos    cp.Vector
	Vel    cp.Vector
	Life   float64
	Size   float64
	Tint   Tint
	Active bool
}

const (
	particleGravity   = 0.0009
	particleLifeDecay = 0.03
	particleMinSpeed  = 0.004
	particleMaxSpeed  = 0.012
	bandEventY        = 0.78
)

// particlePool recycles a fixed set of slots, same discipline as the object
// pool. A full pool drops the oldest-need first by simply skipping.
type particlePool struct {
	particles []Particle
	free      []int
}

func newParticlePool(cap int) *particlePool {
	if cap <= 0 {
		cap = 1
	}
	p := &particlePool{
		particles: make([]Particle, cap),
		free:      make([]int, 0, cap),
	}
	p.reset()
	return p
}

func (p *particlePool) reset() {
	p.free = p.free[:0]
	for i := len(p.particles) - 1; i >= 0; i-- {
		p.particles[i].Active = false
		p.free = append(p.free, i)
	}
}

// burst radiates count particles from an event location with randomized
// direction and speed within a band.
func (p *particlePool) burst(x, y float64, tint Tint, count int, rng *rand.Rand) {
	for i := 0; i < count; i++ {
		if len(p.free) == 0 {
			return
		}
		idx := p.free[len(p.free)-1]
		p.free = p.free[:len(p.free)-1]

		angle := rng.Float64() * 2 * math.Pi
		speed := particleMinSpeed + rng.Float64()*(particleMaxSpeed-particleMinSpeed)
		pt := &p.particles[idx]
		pt.Pos = cp.Vector{X: x, Y: y}
		pt.Vel = cp.Vector{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
		pt.Life = 1
		pt.Size = 0.004 + rng.Float64()*0.006
		pt.Tint = tint
		pt.Active = true
	}
}

// update advances kinematics and decays life, recycling expired slots.
func (p *particlePool) update() {
	for i := range p.particles {
		pt := &p.particles[i]
		if !pt.Active {
			continue
		}
		pt.Vel.Y += particleGravity
		pt.Pos = pt.Pos.Add(pt.Vel)
		pt.Life -= particleLifeDecay
		if pt.Life <= 0 {
			pt.Active = false
			p.free = append(p.free, i)
		}
	}
}

package engine

import (
	"math/rand"
	"testing"
)

func activeParticles(p *particlePool) int {
	n := 0
	for _, pt := range p.particles {
		if pt.Active {
			n++
		}
	}
	return n
}

func TestBurstSpawnsFixedCount(t *testing.T) {
	p := newParticlePool(64)
	rng := rand.New(rand.NewSource(3))

	p.burst(0.5, 0.8, TintCoin, 12, rng)
	if got := activeParticles(p); got != 12 {
		t.Fatalf("active particles = %d, want 12", got)
	}

	for _, pt := range p.particles {
		if !pt.Active {
			continue
		}
		if pt.Life != 1 {
			t.Fatalf("fresh particle life = %f, want 1", pt.Life)
		}
		if pt.Pos.X != 0.5 || pt.Pos.Y != 0.8 {
			t.Fatalf("particle did not spawn at the event location: %+v", pt.Pos)
		}
	}
}

func TestBurstRespectsCapacity(t *testing.T) {
	p := newParticlePool(8)
	rng := rand.New(rand.NewSource(3))

	p.burst(0.5, 0.8, TintCrash, 12, rng)
	if got := activeParticles(p); got != 8 {
		t.Fatalf("active particles = %d, want capped at 8", got)
	}
}

func TestParticlesDecayAndRecycle(t *testing.T) {
	p := newParticlePool(16)
	rng := rand.New(rand.NewSource(3))
	p.burst(0.5, 0.8, TintStar, 8, rng)

	// life decays by a fixed rate per tick; run well past expiry
	for i := 0; i < 100; i++ {
		p.update()
	}
	if got := activeParticles(p); got != 0 {
		t.Fatalf("active particles after decay = %d, want 0", got)
	}

	// expired slots must be reusable
	p.burst(0.2, 0.3, TintCoin, 16, rng)
	if got := activeParticles(p); got != 16 {
		t.Fatalf("recycled burst = %d active, want 16", got)
	}
}

func TestParticleGravityPullsDown(t *testing.T) {
	p := newParticlePool(4)
	rng := rand.New(rand.NewSource(3))
	p.burst(0.5, 0.5, TintCoin, 1, rng)

	var idx int
	for i, pt := range p.particles {
		if pt.Active {
			idx = i
			break
		}
	}
	v0 := p.particles[idx].Vel.Y
	p.update()
	if p.particles[idx].Vel.Y <= v0 {
		t.Fatalf("vertical velocity should grow downward: %f -> %f", v0, p.particles[idx].Vel.Y)
	}
}

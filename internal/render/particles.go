package render

import (
	"math"

	"idle-racer/internal/core"
)

const (
	burstSize   = 12
	maxParticle = 256
)

// Particle is a short-lived spark from a click.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Size   float64
}

// Particles is a bounded pool of sparks. Oldest sparks are dropped first
// once the pool is full.
type Particles struct {
	items []Particle
	rng   *core.RNG
}

// NewParticles returns an empty pool.
func NewParticles(rng *core.RNG) *Particles {
	return &Particles{rng: rng}
}

// Burst spawns a ring of sparks at (x, y).
func (p *Particles) Burst(x, y float64) {
	for i := 0; i < burstSize; i++ {
		a := p.rng.Uniform(0, 2*math.Pi)
		speed := p.rng.Uniform(150, 260)
		p.items = append(p.items, Particle{
			X: x, Y: y,
			VX:   math.Cos(a) * speed,
			VY:   math.Sin(a) * speed,
			Life: p.rng.Uniform(0.25, 0.5),
			Size: p.rng.Uniform(2, 4),
		})
	}
	if over := len(p.items) - maxParticle; over > 0 {
		p.items = append(p.items[:0], p.items[over:]...)
	}
}

// Update moves sparks by dt seconds and drops the expired ones.
func (p *Particles) Update(dt float64) {
	kept := p.items[:0]
	for _, it := range p.items {
		it.Life -= dt
		if it.Life <= 0 {
			continue
		}
		it.X += it.VX * dt
		it.Y += it.VY * dt
		kept = append(kept, it)
	}
	p.items = kept
}

// Clear drops every spark.
func (p *Particles) Clear() { p.items = p.items[:0] }

// Items exposes the live sparks for drawing.
func (p *Particles) Items() []Particle { return p.items }

package render

import (
	"testing"

	"idle-racer/internal/core"
)

func TestParticlesBurstAndExpire(t *testing.T) {
	p := NewParticles(core.NewRNG(1))
	p.Burst(100, 100)
	if n := len(p.Items()); n != burstSize {
		t.Fatalf("expected %d sparks, got %d", burstSize, n)
	}
	p.Update(0.1)
	for _, it := range p.Items() {
		if it.X == 100 && it.Y == 100 {
			t.Fatalf("spark did not move")
		}
	}
	p.Update(0.5)
	if n := len(p.Items()); n != 0 {
		t.Fatalf("expected every spark to expire, %d left", n)
	}
}

func TestParticlesBounded(t *testing.T) {
	p := NewParticles(core.NewRNG(2))
	for i := 0; i < 100; i++ {
		p.Burst(0, 0)
	}
	if n := len(p.Items()); n != maxParticle {
		t.Fatalf("expected pool capped at %d, got %d", maxParticle, n)
	}
	p.Clear()
	if len(p.Items()) != 0 {
		t.Fatalf("clear left sparks behind")
	}
}

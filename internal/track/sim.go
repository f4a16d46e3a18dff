// Package track advances the production units around the loop and reports
// completed laps.
package track

import (
	"math"

	"idle-racer/internal/core"
)

const (
	// BoostFactor scales speed while a unit is boosted.
	BoostFactor = 1.8

	varianceMin = 0.9
	varianceMax = 1.15

	boostChancePerSec = 0.4
	boostMin          = 0.8
	boostMax          = 1.4
	cooldownMin       = 2.5
	cooldownMax       = 5.5

	clickBoost    = 0.5
	clickBoostCap = 2.5

	fullTurn = 2 * math.Pi
)

// Unit is a single car on the track.
type Unit struct {
	Angle    float64
	Variance float64
	Boost    float64
	Cooldown float64
	Color    [3]uint8
}

// Boosted reports whether the transient speed boost is active.
func (u *Unit) Boosted() bool { return u.Boost > 0 }

// Sim owns the set of units and the randomness driving their boosts.
type Sim struct {
	units []Unit
	rng   *core.RNG
}

// NewSim returns a simulator holding n freshly placed units.
func NewSim(n int, rng *core.RNG) *Sim {
	s := &Sim{rng: rng}
	s.Reset(n)
	return s
}

// Reset discards every unit and places n new ones.
func (s *Sim) Reset(n int) {
	if n < 1 {
		n = 1
	}
	s.units = s.units[:0]
	for i := 0; i < n; i++ {
		u := s.newUnit()
		u.Cooldown = s.rng.Uniform(0.5, 2.5)
		s.units = append(s.units, u)
	}
}

// AddUnit appends one unit at a random angle.
func (s *Sim) AddUnit() {
	u := s.newUnit()
	u.Cooldown = 1.5
	s.units = append(s.units, u)
}

// Insert appends a unit as-is, without randomisation.
func (s *Sim) Insert(u Unit) {
	s.units = append(s.units, u)
}

// Units exposes the current units for positioning.
func (s *Sim) Units() []Unit { return s.units }

// Len returns the number of units.
func (s *Sim) Len() int { return len(s.units) }

// BoostAll adds a click boost to every unit.
func (s *Sim) BoostAll() {
	for i := range s.units {
		s.units[i].Boost = math.Min(s.units[i].Boost+clickBoost, clickBoostCap)
	}
}

// Advance moves every unit by dt seconds at angularSpeed radians per second
// (before variance and boost) and returns the number of completed laps. A unit
// completes at most one lap per call: a lap is counted only when its angle
// jumps from above 1.5π to below 0.5π.
func (s *Sim) Advance(dt, angularSpeed float64) int {
	if dt <= 0 {
		return 0
	}
	laps := 0
	for i := range s.units {
		u := &s.units[i]
		s.evolveBoost(u, dt)
		factor := 1.0
		if u.Boosted() {
			factor = BoostFactor
		}
		prev := u.Angle
		u.Angle = math.Mod(u.Angle+angularSpeed*u.Variance*factor*dt, fullTurn)
		if crossedStart(prev, u.Angle) {
			laps++
		}
	}
	return laps
}

func (s *Sim) evolveBoost(u *Unit, dt float64) {
	if u.Cooldown > 0 {
		u.Cooldown -= dt
	}
	if u.Boost > 0 {
		u.Boost -= dt
		return
	}
	if u.Cooldown <= 0 && s.rng.Float64() < boostChancePerSec*dt {
		u.Boost = s.rng.Uniform(boostMin, boostMax)
		u.Cooldown = s.rng.Uniform(cooldownMin, cooldownMax)
	}
}

func (s *Sim) newUnit() Unit {
	return Unit{
		Angle:    s.rng.Uniform(0, fullTurn),
		Variance: s.rng.Uniform(varianceMin, varianceMax),
		Color: [3]uint8{
			uint8(s.rng.IntRange(170, 255)),
			uint8(s.rng.IntRange(170, 255)),
			uint8(s.rng.IntRange(170, 255)),
		},
	}
}

func crossedStart(prev, next float64) bool {
	return prev > 1.5*math.Pi && next < 0.5*math.Pi
}

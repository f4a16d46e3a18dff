package economy

import (
	"errors"
	"fmt"
	"math"
)

// ErrInsufficientFunds is returned when gold does not cover a cost.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Kind identifies a purchasable upgrade track.
type Kind int

const (
	KindCar Kind = iota
	KindSpeed
	KindPayout
	KindAutoclicker
	KindMultiplier
	KindOffline
)

// Kinds lists every upgrade track in display order.
var Kinds = []Kind{KindCar, KindSpeed, KindPayout, KindAutoclicker, KindMultiplier, KindOffline}

// Valid reports whether k names a known upgrade track.
func (k Kind) Valid() bool { return k >= KindCar && k <= KindOffline }

func (k Kind) String() string {
	switch k {
	case KindCar:
		return "car"
	case KindSpeed:
		return "speed"
	case KindPayout:
		return "payout"
	case KindAutoclicker:
		return "autoclicker"
	case KindMultiplier:
		return "multiplier"
	case KindOffline:
		return "offline"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Params holds the tunable constants of the economy.
type Params struct {
	CarBaseCost         float64 `yaml:"car_base_cost"`
	SpeedBaseCost       float64 `yaml:"speed_base_cost"`
	PayoutBaseCost      float64 `yaml:"payout_base_cost"`
	AutoclickerBaseCost float64 `yaml:"autoclicker_base_cost"`
	MultiplierBaseCost  float64 `yaml:"multiplier_base_cost"`
	OfflineBaseCost     float64 `yaml:"offline_base_cost"`
	CostGrowth          float64 `yaml:"cost_growth"`

	BaseAngularSpeed float64 `yaml:"base_angular_speed"`
	SpeedPerLevel    float64 `yaml:"speed_per_level"`
	GoldPerLapBase   float64 `yaml:"gold_per_lap"`
	AutoGoldBase     float64 `yaml:"auto_gold_per_level"`
}

// DefaultParams returns the standard economy.
func DefaultParams() Params {
	return Params{
		CarBaseCost:         10,
		SpeedBaseCost:       20,
		PayoutBaseCost:      200,
		AutoclickerBaseCost: 500,
		MultiplierBaseCost:  2000,
		OfflineBaseCost:     2000,
		CostGrowth:          1.35,
		BaseAngularSpeed:    2.2,
		SpeedPerLevel:       0.18,
		GoldPerLapBase:      1.0,
		AutoGoldBase:        1.0,
	}
}

// Cost is floor(base * growth^index).
func (p Params) Cost(base float64, index int) int {
	if index < 0 {
		index = 0
	}
	v := math.Floor(base * math.Pow(p.CostGrowth, float64(index)))
	if v >= math.MaxInt64 || math.IsNaN(v) {
		return math.MaxInt
	}
	return int(v)
}

// UpgradeCost returns the price of the next level of kind for s.
func (p Params) UpgradeCost(s *State, kind Kind) int {
	switch kind {
	case KindCar:
		return p.Cost(p.CarBaseCost, s.Cars-1)
	case KindSpeed:
		return p.Cost(p.SpeedBaseCost, s.SpeedLevel-1)
	case KindPayout:
		return p.Cost(p.PayoutBaseCost, s.PayoutLevel-1)
	case KindAutoclicker:
		return p.Cost(p.AutoclickerBaseCost, s.AutoclickerLevel)
	case KindMultiplier:
		return p.Cost(p.MultiplierBaseCost, s.GoldMultLevel)
	case KindOffline:
		return p.Cost(p.OfflineBaseCost, s.OfflineLevel)
	}
	return math.MaxInt
}

// Purchase buys one level of kind. On failure s is left untouched.
func (p Params) Purchase(s *State, kind Kind) (int, error) {
	if !kind.Valid() {
		return 0, fmt.Errorf("purchase %v: unknown upgrade", kind)
	}
	cost := p.UpgradeCost(s, kind)
	if !s.Spend(float64(cost)) {
		return cost, fmt.Errorf("purchase %v for %d: %w", kind, cost, ErrInsufficientFunds)
	}
	switch kind {
	case KindCar:
		s.Cars++
	case KindSpeed:
		s.SpeedLevel++
	case KindPayout:
		s.PayoutLevel++
	case KindAutoclicker:
		s.AutoclickerLevel++
	case KindMultiplier:
		s.GoldMultLevel++
	case KindOffline:
		s.OfflineLevel++
	}
	return cost, nil
}

// TotalMultiplier is the product of the payout, sponsor, prestige and
// gold-multiplier bonuses.
func TotalMultiplier(s *State) float64 {
	payout := 1 + 0.25*float64(s.PayoutLevel-1)
	sponsor := 1 + 0.5*float64(s.SponsorLevel)
	prestige := 1 + 0.05*float64(s.PrestigePoints)
	mult := math.Pow(2, float64(s.GoldMultLevel))
	return payout * sponsor * prestige * mult
}

// GoldPerLap is the award for a single completed lap.
func (p Params) GoldPerLap(s *State) float64 {
	return p.GoldPerLapBase * TotalMultiplier(s)
}

// AutoGoldPerSec is the passive production rate.
func (p Params) AutoGoldPerSec(s *State) float64 {
	return float64(s.AutoclickerLevel) * p.AutoGoldBase * TotalMultiplier(s)
}

// AngularSpeed is the base radians per second shared by every unit before
// per-unit variance and boost.
func (p Params) AngularSpeed(s *State) float64 {
	return p.BaseAngularSpeed * (1 + p.SpeedPerLevel*float64(s.SpeedLevel-1))
}

// LapsPerSecPerCar converts AngularSpeed into revolutions per second.
func (p Params) LapsPerSecPerCar(s *State) float64 {
	return p.AngularSpeed(s) / (2 * math.Pi)
}

// Package economy holds the progression data model and the pure cost and
// multiplier formulas that drive it.
package economy

// UnlockThreshold is the gold balance at which the blackjack table opens.
const UnlockThreshold = 1000

// Achievement records whether a named achievement has been unlocked.
type Achievement struct {
	Unlocked bool `json:"unlocked"`
}

// BlackjackStats counts finished rounds. Wins never exceeds Games.
type BlackjackStats struct {
	Games int `json:"games"`
	Wins  int `json:"wins"`
}

// State is the progression aggregate: currency, upgrade levels and counters.
type State struct {
	Gold               float64
	LifetimeGoldEarned float64

	Cars             int
	SpeedLevel       int
	PayoutLevel      int
	GoldMultLevel    int
	AutoclickerLevel int
	OfflineLevel     int
	SponsorLevel     int

	BlackjackUnlocked bool
	PrestigePoints    int
	LapsTotal         int

	Achievements map[string]Achievement
	Blackjack    BlackjackStats
}

// NewState returns a fresh state with every level at its minimum.
func NewState() *State {
	return &State{
		Cars:         1,
		SpeedLevel:   1,
		PayoutLevel:  1,
		Achievements: map[string]Achievement{},
	}
}

// Earn credits gold and lifetime earnings together. Negative amounts are ignored.
func (s *State) Earn(amount float64) {
	if amount <= 0 {
		return
	}
	s.Gold += amount
	s.LifetimeGoldEarned += amount
	s.checkUnlock()
}

// Spend debits gold if the balance covers amount and reports whether it did.
func (s *State) Spend(amount float64) bool {
	if amount < 0 || s.Gold < amount {
		return false
	}
	s.Gold -= amount
	return true
}

// AwardLap applies one completed lap worth amount.
func (s *State) AwardLap(amount float64) {
	s.Gold += amount
	s.LifetimeGoldEarned += amount
	s.LapsTotal++
	s.checkUnlock()
}

// ResetForPrestige bumps the sponsor level and returns every other level to
// its minimum. Gold is zeroed; lifetime totals, prestige points, laps,
// achievements, blackjack stats and the blackjack unlock survive.
func (s *State) ResetForPrestige() {
	s.SponsorLevel++
	s.Gold = 0
	s.Cars = 1
	s.SpeedLevel = 1
	s.PayoutLevel = 1
	s.GoldMultLevel = 0
	s.AutoclickerLevel = 0
	s.OfflineLevel = 0
}

// Clone returns a deep copy.
func (s *State) Clone() *State {
	c := *s
	c.Achievements = make(map[string]Achievement, len(s.Achievements))
	for k, v := range s.Achievements {
		c.Achievements[k] = v
	}
	return &c
}

func (s *State) checkUnlock() {
	if !s.BlackjackUnlocked && s.Gold >= UnlockThreshold {
		s.BlackjackUnlocked = true
	}
}

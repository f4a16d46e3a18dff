// Package achievement evaluates the fixed table of one-time unlocks.
package achievement

import "idle-racer/internal/economy"

// Rule ties a named condition to its prestige-point reward.
type Rule struct {
	Name   string
	Reward int
	Met    func(s *economy.State) bool
}

// Table lists every achievement in evaluation order.
var Table = []Rule{
	{Name: "First Steps", Reward: 1, Met: func(s *economy.State) bool { return s.Gold >= 10 }},
	{Name: "Lap 10", Reward: 1, Met: func(s *economy.State) bool { return s.LapsTotal >= 10 }},
	{Name: "Fleet of 5", Reward: 1, Met: func(s *economy.State) bool { return s.Cars >= 5 }},
	{Name: "Speedster", Reward: 1, Met: func(s *economy.State) bool { return s.SpeedLevel >= 5 }},
	{Name: "Ad Mogul", Reward: 1, Met: func(s *economy.State) bool { return s.PayoutLevel >= 5 }},
	{Name: "Auto Tactician", Reward: 1, Met: func(s *economy.State) bool { return s.AutoclickerLevel >= 5 }},
	{Name: "Multiplier Maniac", Reward: 1, Met: func(s *economy.State) bool { return s.GoldMultLevel >= 3 }},
	{Name: "Trailblazer", Reward: 2, Met: func(s *economy.State) bool { return s.LapsTotal >= 500 }},
	{Name: "Tycoon", Reward: 1, Met: func(s *economy.State) bool { return s.Gold >= 100_000 }},
	{Name: "Millionaire", Reward: 2, Met: func(s *economy.State) bool { return s.Gold >= 1_000_000 }},
	{Name: "Card Shark", Reward: 2, Met: func(s *economy.State) bool { return s.Blackjack.Wins >= 10 }},
	{Name: "Collector", Reward: 1, Met: func(s *economy.State) bool { return s.Cars >= 10 }},
}

// Evaluate unlocks every rule whose condition holds and that is not yet
// unlocked, crediting its reward once. It returns the rules unlocked by this
// call. Unlocks are never revoked.
func Evaluate(s *economy.State) []Rule {
	return EvaluateRules(s, Table)
}

// EvaluateRules is Evaluate over an arbitrary table.
func EvaluateRules(s *economy.State, rules []Rule) []Rule {
	if s.Achievements == nil {
		s.Achievements = map[string]economy.Achievement{}
	}
	var unlocked []Rule
	for _, r := range rules {
		if s.Achievements[r.Name].Unlocked || !r.Met(s) {
			continue
		}
		s.Achievements[r.Name] = economy.Achievement{Unlocked: true}
		s.PrestigePoints += r.Reward
		unlocked = append(unlocked, r)
	}
	return unlocked
}

// Unlocked returns how many rules of the table s has unlocked.
func Unlocked(s *economy.State) int {
	n := 0
	for _, r := range Table {
		if s.Achievements[r.Name].Unlocked {
			n++
		}
	}
	return n
}

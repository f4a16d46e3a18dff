package game

import (
	"fmt"
	"strconv"

	"idle-racer/internal/achievement"
	"idle-racer/internal/core"
	"idle-racer/internal/economy"
	"idle-racer/internal/format"
)

// Stats returns grouped read-outs of the current state for the HUD and the
// headless report.
func (g *State) Stats() core.StatSnapshot {
	s := g.econ
	p := g.params

	winrate := 0.0
	if s.Blackjack.Games > 0 {
		winrate = 100 * float64(s.Blackjack.Wins) / float64(s.Blackjack.Games)
	}

	shop := make([]core.Stat, 0, len(economy.Kinds))
	for _, k := range economy.Kinds {
		shop = append(shop, core.Stat{
			Key:   "cost_" + k.String(),
			Label: shopLabels[k],
			Value: format.Number(float64(p.UpgradeCost(s, k))),
		})
	}

	return core.StatSnapshot{Groups: []core.StatGroup{
		{Name: "Economy", Stats: []core.Stat{
			{Key: "gold", Label: "Gold", Value: format.Number(s.Gold)},
			{Key: "gold_per_sec", Label: "Gold/sec", Value: format.Number(g.gps)},
			{Key: "lifetime", Label: "Lifetime", Value: format.Commas(s.LifetimeGoldEarned)},
			{Key: "multiplier", Label: "Multiplier", Value: fmt.Sprintf("x%.2f", economy.TotalMultiplier(s))},
			{Key: "gold_per_lap", Label: "Gold/lap", Value: format.Number(p.GoldPerLap(s))},
			{Key: "auto_per_sec", Label: "Auto/sec", Value: format.Number(p.AutoGoldPerSec(s))},
		}},
		{Name: "Fleet", Stats: []core.Stat{
			{Key: "cars", Label: "Cars", Value: strconv.Itoa(s.Cars)},
			{Key: "speed_level", Label: "Speed Lv", Value: strconv.Itoa(s.SpeedLevel)},
			{Key: "payout_level", Label: "Ads Lv", Value: strconv.Itoa(s.PayoutLevel)},
			{Key: "autoclicker_level", Label: "Auto Lv", Value: strconv.Itoa(s.AutoclickerLevel)},
			{Key: "gold_mult_level", Label: "Mult Lv", Value: strconv.Itoa(s.GoldMultLevel)},
			{Key: "offline_level", Label: "Offline Lv", Value: strconv.Itoa(s.OfflineLevel)},
			{Key: "laps", Label: "Laps", Value: format.Commas(float64(s.LapsTotal))},
			{Key: "track", Label: "Track", Value: g.Shape().String()},
		}},
		{Name: "Shop", Stats: shop},
		{Name: "Blackjack", Stats: []core.Stat{
			{Key: "bj_unlocked", Label: "Table", Value: onOff(s.BlackjackUnlocked, "open", "locked")},
			{Key: "bj_games", Label: "Games", Value: strconv.Itoa(s.Blackjack.Games)},
			{Key: "bj_wins", Label: "Wins", Value: strconv.Itoa(s.Blackjack.Wins)},
			{Key: "bj_winrate", Label: "Win rate", Value: fmt.Sprintf("%.1f%%", winrate)},
			{Key: "bj_bet", Label: "Bet", Value: format.Number(float64(g.table.Bet()))},
		}},
		{Name: "Meta", Stats: []core.Stat{
			{Key: "sponsor_level", Label: "Sponsor", Value: strconv.Itoa(s.SponsorLevel)},
			{Key: "prestige_points", Label: "Prestige pts", Value: strconv.Itoa(s.PrestigePoints)},
			{Key: "achievements", Label: "Achievements", Value: fmt.Sprintf("%d/%d", achievement.Unlocked(s), len(achievement.Table))},
			{Key: "autosave", Label: "Autosave", Value: onOff(g.settings.Autosave, "ON", "OFF")},
			{Key: "fps_cap", Label: "FPS cap", Value: strconv.Itoa(g.settings.FPSCap)},
		}},
	}}
}

var shopLabels = map[economy.Kind]string{
	economy.KindCar:         "Buy Car",
	economy.KindSpeed:       "Speed",
	economy.KindPayout:      "Track Ads",
	economy.KindAutoclicker: "Auto-Clicker",
	economy.KindMultiplier:  "Gold Mult",
	economy.KindOffline:     "Offline",
}

func onOff(v bool, on, off string) string {
	if v {
		return on
	}
	return off
}

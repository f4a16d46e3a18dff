package game

import (
	"errors"
	"fmt"

	"idle-racer/internal/economy"
	"idle-racer/internal/save"
)

// PrestigeThreshold is the gold needed to prestige.
const PrestigeThreshold = 1_000_000

var (
	// ErrPrestigeLocked is returned when prestiging below the threshold.
	ErrPrestigeLocked = errors.New("prestige locked")
	// ErrBlackjackLocked is returned for table actions before the unlock.
	ErrBlackjackLocked = errors.New("blackjack locked")
)

var purchaseNotes = map[economy.Kind]string{
	economy.KindCar:         "Purchased a car",
	economy.KindSpeed:       "Speed upgraded",
	economy.KindPayout:      "Track Ads improved",
	economy.KindAutoclicker: "Auto-Clicker upgraded",
	economy.KindMultiplier:  "Gold Multiplier +1 (x2)",
	economy.KindOffline:     "Offline Earnings boosted",
}

// BuyUpgrade buys one level of kind. A car purchase also puts a new unit on
// the track. On failure nothing but the notifications changes.
func (g *State) BuyUpgrade(kind economy.Kind) error {
	if _, err := g.params.Purchase(g.econ, kind); err != nil {
		if errors.Is(err, economy.ErrInsufficientFunds) {
			g.notify("Not enough gold")
		}
		return err
	}
	if kind == economy.KindCar {
		g.sim.AddUnit()
	}
	g.notify(purchaseNotes[kind])
	return nil
}

// AddUnit buys a car.
func (g *State) AddUnit() error { return g.BuyUpgrade(economy.KindCar) }

// Click boosts every unit briefly.
func (g *State) Click() { g.sim.BoostAll() }

// PrestigeAvailable reports whether Prestige would succeed.
func (g *State) PrestigeAvailable() bool { return g.econ.Gold >= PrestigeThreshold }

// Prestige trades the current run for a sponsor level.
func (g *State) Prestige() error {
	if !g.PrestigeAvailable() {
		g.notify("Reach 1M+ gold to Prestige.")
		return ErrPrestigeLocked
	}
	g.econ.ResetForPrestige()
	g.sim.Reset(g.econ.Cars)
	g.lastGold = g.econ.Gold
	g.notify(fmt.Sprintf("Prestiged! Sponsor level %d", g.econ.SponsorLevel))
	g.log.Info("prestige", "sponsor_level", g.econ.SponsorLevel)
	return nil
}

// CycleTrack selects the next track shape.
func (g *State) CycleTrack() {
	next := g.Shape().Next()
	g.settings.TrackType = int(next)
	g.notify(next.String() + " track selected")
}

// ToggleAutosave flips periodic saving.
func (g *State) ToggleAutosave() { g.settings.Autosave = !g.settings.Autosave }

// ToggleParticles flips particle effects.
func (g *State) ToggleParticles() { g.settings.Particles = !g.settings.Particles }

// ToggleFPSCap switches the frame cap between the two supported rates.
func (g *State) ToggleFPSCap() {
	if g.settings.FPSCap == save.AltFPSCap {
		g.settings.FPSCap = save.DefaultFPSCap
	} else {
		g.settings.FPSCap = save.AltFPSCap
	}
}

// Save writes the state now. Failures are logged and returned; the game
// keeps running either way.
func (g *State) Save() error {
	if err := g.persist(); err != nil {
		g.log.Error("save failed", "err", err)
		return err
	}
	g.notify("Saved")
	return nil
}

// BlackjackOpen reports whether the table is unlocked.
func (g *State) BlackjackOpen() bool { return g.econ.BlackjackUnlocked }

// OpenBlackjack checks the table gate before the UI shows it.
func (g *State) OpenBlackjack() error {
	if !g.econ.BlackjackUnlocked {
		g.notify(fmt.Sprintf("Need %d+ gold to unlock Blackjack.", economy.UnlockThreshold))
		return ErrBlackjackLocked
	}
	return nil
}

// Deal starts a blackjack round.
func (g *State) Deal() error {
	if !g.econ.BlackjackUnlocked {
		return ErrBlackjackLocked
	}
	return g.table.Deal()
}

// Hit draws a card for the player.
func (g *State) Hit() error {
	if !g.econ.BlackjackUnlocked {
		return ErrBlackjackLocked
	}
	return g.table.Hit()
}

// Stand plays out the dealer and settles the round.
func (g *State) Stand() error {
	if !g.econ.BlackjackUnlocked {
		return ErrBlackjackLocked
	}
	return g.table.Stand()
}

// ChangeBet adjusts the next bet by delta within the table limits.
func (g *State) ChangeBet(delta int) error {
	return g.table.ChangeBet(delta)
}

// Bet returns the next bet.
func (g *State) Bet() int { return g.table.Bet() }

// InRound reports whether a blackjack round is in progress.
func (g *State) InRound() bool { return g.table.InRound() }

// CheapestUpgrade returns the upgrade with the lowest next cost.
func (g *State) CheapestUpgrade() (economy.Kind, int) {
	best, bestCost := economy.KindCar, -1
	for _, k := range economy.Kinds {
		c := g.params.UpgradeCost(g.econ, k)
		if bestCost < 0 || c < bestCost {
			best, bestCost = k, c
		}
	}
	return best, bestCost
}

// BuyCheapest buys upgrades cheapest first until gold runs out or limit
// purchases were made. It returns the number bought.
func (g *State) BuyCheapest(limit int) int {
	n := 0
	for n < limit {
		k, cost := g.CheapestUpgrade()
		if g.econ.Gold < float64(cost) {
			break
		}
		if err := g.BuyUpgrade(k); err != nil {
			break
		}
		n++
	}
	return n
}

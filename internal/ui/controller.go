// Package ui maps player input onto game intents and draws the side panel
// and the blackjack table.
package ui

import (
	"fmt"

	"idle-racer/internal/economy"
	"idle-racer/internal/format"
	"idle-racer/internal/game"
)

// Screen is the view currently shown.
type Screen int

const (
	ScreenIdle Screen = iota
	ScreenBlackjack
	ScreenSettings
)

// Action is a single player intent.
type Action int

const (
	ActionNone Action = iota
	ActionBuyCar
	ActionBuySpeed
	ActionBuyPayout
	ActionBuyAutoclicker
	ActionBuyMultiplier
	ActionBuyOffline
	ActionCycleTrack
	ActionOpenBlackjack
	ActionToggleStats
	ActionPrestige
	ActionSave
	ActionSettings
	ActionBack
	ActionClick
	ActionDeal
	ActionHit
	ActionStand
	ActionBetMinus1000
	ActionBetMinus100
	ActionBetMinus10
	ActionBetPlus10
	ActionBetPlus100
	ActionBetPlus1000
	ActionToggleAutosave
	ActionToggleParticles
	ActionToggleFPS
)

// Binding labels an action and names its keyboard shortcut.
type Binding struct {
	Key    string
	Label  string
	Action Action
}

var buyActions = map[Action]economy.Kind{
	ActionBuyCar:         economy.KindCar,
	ActionBuySpeed:       economy.KindSpeed,
	ActionBuyPayout:      economy.KindPayout,
	ActionBuyAutoclicker: economy.KindAutoclicker,
	ActionBuyMultiplier:  economy.KindMultiplier,
	ActionBuyOffline:     economy.KindOffline,
}

var betSteps = map[Action]int{
	ActionBetMinus1000: -1000,
	ActionBetMinus100:  -100,
	ActionBetMinus10:   -10,
	ActionBetPlus10:    10,
	ActionBetPlus100:   100,
	ActionBetPlus1000:  1000,
}

// Controller tracks the active screen and forwards actions to the game.
type Controller struct {
	game      *game.State
	screen    Screen
	showStats bool
}

// NewController returns a controller on the idle screen.
func NewController(g *game.State) *Controller {
	return &Controller{game: g}
}

// Game returns the controlled game.
func (c *Controller) Game() *game.State { return c.game }

// Screen returns the active screen.
func (c *Controller) Screen() Screen { return c.screen }

// ShowStats reports whether the stats overlay is visible.
func (c *Controller) ShowStats() bool { return c.showStats }

// Do performs a. Actions that do not belong to the active screen are ignored.
// Errors come from the game and have already been surfaced as notifications
// or table messages.
func (c *Controller) Do(a Action) error {
	if !c.accepts(a) {
		return nil
	}
	g := c.game
	if kind, ok := buyActions[a]; ok {
		return g.BuyUpgrade(kind)
	}
	if step, ok := betSteps[a]; ok {
		return g.ChangeBet(step)
	}
	switch a {
	case ActionCycleTrack:
		g.CycleTrack()
	case ActionOpenBlackjack:
		if err := g.OpenBlackjack(); err != nil {
			return err
		}
		c.screen = ScreenBlackjack
	case ActionToggleStats:
		c.showStats = !c.showStats
	case ActionPrestige:
		return g.Prestige()
	case ActionSave:
		return g.Save()
	case ActionSettings:
		c.screen = ScreenSettings
	case ActionBack:
		c.screen = ScreenIdle
	case ActionClick:
		g.Click()
	case ActionDeal:
		return g.Deal()
	case ActionHit:
		return g.Hit()
	case ActionStand:
		return g.Stand()
	case ActionToggleAutosave:
		g.ToggleAutosave()
	case ActionToggleParticles:
		g.ToggleParticles()
	case ActionToggleFPS:
		g.ToggleFPSCap()
	}
	return nil
}

func (c *Controller) accepts(a Action) bool {
	for _, b := range Bindings(c.screen) {
		if b.Action == a {
			return true
		}
	}
	return c.screen == ScreenIdle && a == ActionClick
}

// Bindings lists the actions offered on screen s in display order.
func Bindings(s Screen) []Binding {
	switch s {
	case ScreenBlackjack:
		return []Binding{
			{Key: "Enter", Label: "DEAL", Action: ActionDeal},
			{Key: "H", Label: "HIT", Action: ActionHit},
			{Key: "J", Label: "STAND", Action: ActionStand},
			{Key: "Z", Label: "-1K", Action: ActionBetMinus1000},
			{Key: "X", Label: "-100", Action: ActionBetMinus100},
			{Key: "C", Label: "-10", Action: ActionBetMinus10},
			{Key: "V", Label: "+10", Action: ActionBetPlus10},
			{Key: "N", Label: "+100", Action: ActionBetPlus100},
			{Key: "M", Label: "+1K", Action: ActionBetPlus1000},
			{Key: "Esc", Label: "BACK", Action: ActionBack},
		}
	case ScreenSettings:
		return []Binding{
			{Key: "A", Label: "Autosave", Action: ActionToggleAutosave},
			{Key: "P", Label: "Particles", Action: ActionToggleParticles},
			{Key: "F", Label: "FPS cap", Action: ActionToggleFPS},
			{Key: "Esc", Label: "Back", Action: ActionBack},
		}
	}
	return []Binding{
		{Key: "1", Label: "Buy Car", Action: ActionBuyCar},
		{Key: "2", Label: "Speed", Action: ActionBuySpeed},
		{Key: "3", Label: "Track Ads", Action: ActionBuyPayout},
		{Key: "4", Label: "Auto-Clicker", Action: ActionBuyAutoclicker},
		{Key: "5", Label: "Gold Mult", Action: ActionBuyMultiplier},
		{Key: "6", Label: "Offline", Action: ActionBuyOffline},
		{Key: "T", Label: "Change Track", Action: ActionCycleTrack},
		{Key: "B", Label: "BLACKJACK", Action: ActionOpenBlackjack},
		{Key: "V", Label: "Stats Overlay", Action: ActionToggleStats},
		{Key: "P", Label: "PRESTIGE", Action: ActionPrestige},
		{Key: "S", Label: "SAVE", Action: ActionSave},
		{Key: "O", Label: "Settings", Action: ActionSettings},
	}
}

// ButtonText renders the label of b with any live value, such as a cost or
// a toggle state.
func (c *Controller) ButtonText(b Binding) string {
	g := c.game
	st := g.Economy()
	p := g.Params()
	if kind, ok := buyActions[b.Action]; ok {
		gold := format.Number(float64(p.UpgradeCost(st, kind)))
		return fmt.Sprintf("%s (%s): %s", b.Label, b.Key, gold)
	}
	set := g.Settings()
	switch b.Action {
	case ActionToggleAutosave:
		return fmt.Sprintf("%s: %s", b.Label, onOff(set.Autosave))
	case ActionToggleParticles:
		return fmt.Sprintf("%s: %s", b.Label, onOff(set.Particles))
	case ActionToggleFPS:
		return fmt.Sprintf("%s: %d", b.Label, set.FPSCap)
	}
	return fmt.Sprintf("%s (%s)", b.Label, b.Key)
}

// Enabled reports whether b would currently do something.
func (c *Controller) Enabled(b Binding) bool {
	g := c.game
	st := g.Economy()
	if kind, ok := buyActions[b.Action]; ok {
		return st.Gold >= float64(g.Params().UpgradeCost(st, kind))
	}
	switch b.Action {
	case ActionOpenBlackjack:
		return g.BlackjackOpen()
	case ActionPrestige:
		return g.PrestigeAvailable()
	case ActionDeal:
		return !g.InRound() && st.Gold >= float64(g.Bet())
	case ActionHit, ActionStand:
		return g.InRound()
	}
	if _, ok := betSteps[b.Action]; ok {
		return !g.InRound()
	}
	return true
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}

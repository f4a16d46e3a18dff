package ui

import (
	"errors"
	"testing"

	"idle-racer/internal/game"
)

func newController() *Controller {
	return NewController(game.New(game.Options{Seed: 3}))
}

func TestIdleActions(t *testing.T) {
	c := newController()
	g := c.Game()
	g.Economy().Gold = 100

	if err := c.Do(ActionBuyCar); err != nil {
		t.Fatalf("buy car: %v", err)
	}
	if g.Economy().Cars != 2 || len(g.Units()) != 2 {
		t.Fatalf("expected two cars, got %d (%d units)", g.Economy().Cars, len(g.Units()))
	}

	if err := c.Do(ActionClick); err != nil {
		t.Fatalf("click: %v", err)
	}
	for i, u := range g.Units() {
		if u.Boost != 0.5 {
			t.Fatalf("unit %d boost %v after click", i, u.Boost)
		}
	}

	if err := c.Do(ActionToggleStats); err != nil || !c.ShowStats() {
		t.Fatalf("stats overlay should be visible")
	}
}

func TestActionsOutsideScreenAreIgnored(t *testing.T) {
	c := newController()
	g := c.Game()
	g.Economy().Earn(5000)

	if err := c.Do(ActionDeal); err != nil {
		t.Fatalf("deal on idle screen should be ignored, got %v", err)
	}
	if g.InRound() || g.Economy().Blackjack.Games != 0 {
		t.Fatalf("deal from idle screen changed the table")
	}
}

func TestBlackjackScreen(t *testing.T) {
	c := newController()
	g := c.Game()

	err := c.Do(ActionOpenBlackjack)
	if !errors.Is(err, game.ErrBlackjackLocked) {
		t.Fatalf("expected locked error, got %v", err)
	}
	if c.Screen() != ScreenIdle {
		t.Fatalf("locked table must not open")
	}

	g.Economy().Earn(1000)
	if err := c.Do(ActionOpenBlackjack); err != nil {
		t.Fatalf("open table: %v", err)
	}
	if c.Screen() != ScreenBlackjack {
		t.Fatalf("expected blackjack screen, got %v", c.Screen())
	}

	gold := g.Economy().Gold
	if err := c.Do(ActionBuyCar); err != nil || g.Economy().Gold != gold {
		t.Fatalf("shop actions must be ignored at the table")
	}

	if err := c.Do(ActionBetPlus100); err != nil {
		t.Fatalf("change bet: %v", err)
	}
	if g.Bet() != 150 {
		t.Fatalf("expected bet 150, got %d", g.Bet())
	}

	for _, b := range Bindings(ScreenBlackjack) {
		if b.Action == ActionHit && c.Enabled(b) {
			t.Fatalf("hit should be disabled between rounds")
		}
		if b.Action == ActionDeal && !c.Enabled(b) {
			t.Fatalf("deal should be enabled with enough gold")
		}
	}

	if err := c.Do(ActionBack); err != nil || c.Screen() != ScreenIdle {
		t.Fatalf("back should return to the idle screen")
	}
}

func TestSettingsScreen(t *testing.T) {
	c := newController()
	if err := c.Do(ActionSettings); err != nil || c.Screen() != ScreenSettings {
		t.Fatalf("settings screen should open")
	}
	if err := c.Do(ActionToggleFPS); err != nil {
		t.Fatalf("toggle fps: %v", err)
	}
	var fps Binding
	for _, b := range Bindings(ScreenSettings) {
		if b.Action == ActionToggleFPS {
			fps = b
		}
	}
	if got := c.ButtonText(fps); got != "FPS cap: 120" {
		t.Fatalf("unexpected fps label %q", got)
	}
	if err := c.Do(ActionToggleAutosave); err != nil || c.Game().Settings().Autosave {
		t.Fatalf("autosave should be off")
	}
}

func TestButtonText(t *testing.T) {
	c := newController()
	b := Bindings(ScreenIdle)[0]
	if got := c.ButtonText(b); got != "Buy Car (1): 10" {
		t.Fatalf("unexpected label %q", got)
	}
	if c.Enabled(b) {
		t.Fatalf("buying with no gold should be disabled")
	}
	c.Game().Economy().Gold = 10
	if !c.Enabled(b) {
		t.Fatalf("buying with exact gold should be enabled")
	}
}

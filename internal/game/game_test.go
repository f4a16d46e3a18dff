package game

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"idle-racer/internal/core"
	"idle-racer/internal/economy"
	"idle-racer/internal/save"
	"idle-racer/internal/track"
)

func newGame(t *testing.T, store save.Store, clk core.Clock) *State {
	t.Helper()
	var saves *save.Manager
	if store != nil {
		saves = save.NewManager(store, economy.DefaultParams(), save.WithClock(clk))
	}
	return New(Options{Seed: 7, Clock: clk, Saves: saves})
}

func texts(g *State) []string {
	var out []string
	for _, n := range g.Notifications() {
		out = append(out, n.Text)
	}
	return out
}

func TestNewDefaults(t *testing.T) {
	g := newGame(t, nil, nil)
	require.Len(t, g.Units(), 1)
	require.Equal(t, economy.NewState(), g.Economy())
	require.Equal(t, save.DefaultSettings(), g.Settings())
	_, err := uuid.Parse(g.InstallationID())
	require.NoError(t, err)
	require.Equal(t, 50, g.Bet())
	require.Equal(t, "Place your bet and DEAL.", g.Table().Message)
}

func TestBuyUpgradeInsufficientFunds(t *testing.T) {
	g := newGame(t, nil, nil)
	g.econ.Gold = 5
	before := g.econ.Clone()

	for _, k := range economy.Kinds {
		err := g.BuyUpgrade(k)
		require.ErrorIs(t, err, economy.ErrInsufficientFunds, "kind %v", k)
	}
	require.Equal(t, before, g.econ)
	require.Len(t, g.Units(), 1)
	require.Contains(t, texts(g), "Not enough gold")
}

func TestBuyCarAddsUnit(t *testing.T) {
	g := newGame(t, nil, nil)
	g.econ.Gold = 100

	require.NoError(t, g.AddUnit())
	require.Equal(t, 90.0, g.econ.Gold)
	require.Equal(t, 2, g.econ.Cars)
	require.Len(t, g.Units(), 2)

	require.NoError(t, g.BuyUpgrade(economy.KindSpeed))
	require.Equal(t, 70.0, g.econ.Gold)
	require.Equal(t, 2, g.econ.SpeedLevel)
	require.Len(t, g.Units(), 2)
	require.Equal(t, []string{"Purchased a car", "Speed upgraded"}, texts(g))
}

func TestTickPassiveIncome(t *testing.T) {
	g := newGame(t, nil, nil)
	g.econ.AutoclickerLevel = 2

	g.Tick(0.5)
	// Multiplier is 1, so every lap pays exactly one gold.
	want := 1.0 + float64(g.econ.LapsTotal)
	require.InDelta(t, want, g.econ.Gold, 1e-9)
	require.InDelta(t, want, g.econ.LifetimeGoldEarned, 1e-9)
	require.Greater(t, g.GoldPerSec(), 0.0)
}

func TestTickIgnoresNonPositiveDT(t *testing.T) {
	g := newGame(t, nil, nil)
	g.econ.AutoclickerLevel = 3
	before := g.econ.Clone()
	g.Tick(0)
	g.Tick(-1)
	require.Equal(t, before, g.econ)
}

func TestTickAwardsLaps(t *testing.T) {
	g := newGame(t, nil, nil)
	for i := 0; i < 60*60; i++ {
		g.Tick(1.0 / 60)
	}
	s := g.econ
	// 2.2 rad/s is about 21 laps a minute before variance and boosts.
	require.Greater(t, s.LapsTotal, 15)
	require.GreaterOrEqual(t, s.LifetimeGoldEarned, float64(s.LapsTotal))
	require.Equal(t, s.Gold, s.LifetimeGoldEarned)
	require.True(t, s.Achievements["First Steps"].Unlocked)
	require.True(t, s.Achievements["Lap 10"].Unlocked)
}

func TestTickUnlocksAchievementsOnce(t *testing.T) {
	g := newGame(t, nil, nil)
	g.econ.Gold = 10
	g.Tick(0.01)
	require.Equal(t, 1, g.econ.PrestigePoints)
	require.Contains(t, texts(g), "Achievement: First Steps (+1 PP)")

	g.econ.Gold = 0
	g.Tick(0.01)
	require.Equal(t, 1, g.econ.PrestigePoints)
	require.True(t, g.econ.Achievements["First Steps"].Unlocked)
}

func TestNotificationsExpire(t *testing.T) {
	g := newGame(t, nil, nil)
	g.econ.Gold = 10
	require.NoError(t, g.AddUnit())
	g.econ.Gold = 0

	g.Tick(1)
	require.Contains(t, texts(g), "Purchased a car")
	g.Tick(2)
	require.NotContains(t, texts(g), "Purchased a car")
}

func TestNotificationSurvivesLongTick(t *testing.T) {
	g := newGame(t, nil, nil)
	g.econ.Gold = 10
	g.Tick(5)
	require.Contains(t, texts(g), "Achievement: First Steps (+1 PP)")
	g.Tick(5)
	require.NotContains(t, texts(g), "Achievement: First Steps (+1 PP)")
}

func TestAutosave(t *testing.T) {
	clk := core.NewFakeClock(time.Unix(1_700_000_000, 0))
	store := &save.MemoryStore{}
	g := newGame(t, store, clk)

	g.Tick(10)
	g.Tick(10)
	_, err := store.Read()
	require.ErrorIs(t, err, save.ErrNoSave)

	g.Tick(10)
	data, err := store.Read()
	require.NoError(t, err)
	snap, _, err := save.Decode(data)
	require.NoError(t, err)
	require.Equal(t, clk.Now().Unix(), snap.SavedAt)
	require.Contains(t, texts(g), "Autosaved")
}

func TestAutosaveDisabled(t *testing.T) {
	store := &save.MemoryStore{}
	g := newGame(t, store, core.NewFakeClock(time.Unix(0, 0)))
	g.ToggleAutosave()
	for i := 0; i < 10; i++ {
		g.Tick(10)
	}
	_, err := store.Read()
	require.ErrorIs(t, err, save.ErrNoSave)
}

func TestAutosaveFailureKeepsPlaying(t *testing.T) {
	g := newGame(t, &save.MemoryStore{Fail: true}, core.NewFakeClock(time.Unix(0, 0)))
	g.econ.AutoclickerLevel = 1
	g.Tick(31)
	require.NotContains(t, texts(g), "Autosaved")
	require.Greater(t, g.econ.Gold, 0.0)

	require.ErrorIs(t, g.Save(), save.ErrUnavailable)
}

func TestSaveWithoutStore(t *testing.T) {
	g := newGame(t, nil, nil)
	require.ErrorIs(t, g.Save(), save.ErrUnavailable)
	_, err := g.Load()
	require.ErrorIs(t, err, save.ErrNoSave)
}

func TestPrestige(t *testing.T) {
	g := newGame(t, nil, nil)
	g.econ.Gold = PrestigeThreshold - 1
	require.ErrorIs(t, g.Prestige(), ErrPrestigeLocked)
	require.Zero(t, g.econ.SponsorLevel)

	g.econ.Gold = PrestigeThreshold
	g.econ.LifetimeGoldEarned = 2 * PrestigeThreshold
	g.econ.Cars = 6
	g.econ.SpeedLevel = 4
	g.econ.PrestigePoints = 3
	for i := 0; i < 5; i++ {
		g.sim.AddUnit()
	}

	require.NoError(t, g.Prestige())
	require.Equal(t, 1, g.econ.SponsorLevel)
	require.Zero(t, g.econ.Gold)
	require.Equal(t, 1, g.econ.Cars)
	require.Equal(t, 1, g.econ.SpeedLevel)
	require.Equal(t, 3, g.econ.PrestigePoints)
	require.Equal(t, 2.0*PrestigeThreshold, g.econ.LifetimeGoldEarned)
	require.Len(t, g.Units(), 1)
	require.Contains(t, texts(g), "Prestiged! Sponsor level 1")
}

func TestSettingsToggles(t *testing.T) {
	g := newGame(t, nil, nil)

	require.Equal(t, track.ShapeCircle, g.Shape())
	g.CycleTrack()
	require.Equal(t, track.ShapeFigureEight, g.Shape())
	require.Contains(t, texts(g), "Figure-8 track selected")
	g.CycleTrack()
	g.CycleTrack()
	g.CycleTrack()
	require.Equal(t, track.ShapeCircle, g.Shape())

	g.ToggleFPSCap()
	require.Equal(t, save.AltFPSCap, g.Settings().FPSCap)
	g.ToggleFPSCap()
	require.Equal(t, save.DefaultFPSCap, g.Settings().FPSCap)

	g.ToggleParticles()
	require.False(t, g.Settings().Particles)
	g.ToggleAutosave()
	require.False(t, g.Settings().Autosave)
}

func TestBlackjackGate(t *testing.T) {
	g := newGame(t, nil, nil)
	require.False(t, g.BlackjackOpen())
	require.ErrorIs(t, g.OpenBlackjack(), ErrBlackjackLocked)
	require.ErrorIs(t, g.Deal(), ErrBlackjackLocked)
	require.ErrorIs(t, g.Hit(), ErrBlackjackLocked)
	require.ErrorIs(t, g.Stand(), ErrBlackjackLocked)
	require.Contains(t, texts(g), "Need 1000+ gold to unlock Blackjack.")

	g.econ.Earn(1000)
	require.True(t, g.BlackjackOpen())
	require.NoError(t, g.OpenBlackjack())

	require.NoError(t, g.ChangeBet(50))
	require.Equal(t, 100, g.Bet())

	require.NoError(t, g.Deal())
	if g.InRound() {
		require.Equal(t, 900.0, g.econ.Gold)
		require.Error(t, g.ChangeBet(10))
		require.NoError(t, g.Stand())
	}
	require.False(t, g.InRound())
	require.Equal(t, 1, g.econ.Blackjack.Games)
	require.True(t, g.BlackjackOpen())
}

func TestLoadRestoresAndCreditsOffline(t *testing.T) {
	clk := core.NewFakeClock(time.Unix(1_700_000_000, 0))
	store := &save.MemoryStore{}

	first := newGame(t, store, clk)
	first.econ.Gold = 500
	first.econ.Cars = 3
	first.econ.AutoclickerLevel = 1
	first.CycleTrack()
	require.NoError(t, first.Save())

	clk.Advance(2 * time.Hour)
	second := newGame(t, store, clk)
	res, err := second.Load()
	require.NoError(t, err)
	require.Equal(t, 2*time.Hour, res.Offline)
	require.Greater(t, res.Earned, 0.0)

	require.Equal(t, 3, second.Economy().Cars)
	require.Len(t, second.Units(), 3)
	require.InDelta(t, 500+res.Earned, second.Economy().Gold, 1e-9)
	require.Equal(t, track.ShapeFigureEight, second.Shape())
	require.Equal(t, first.InstallationID(), second.InstallationID())

	notes := second.Notifications()
	require.NotEmpty(t, notes)
	last := notes[len(notes)-1]
	require.True(t, strings.HasPrefix(last.Text, "Welcome back! Offline earnings: +"), last.Text)
	require.Equal(t, OfflineNoticeTTL, last.TTL)

	// The table stakes the loaded balance.
	before := second.Economy().Gold
	require.NoError(t, second.Deal())
	if second.InRound() {
		require.Equal(t, before-50, second.Economy().Gold)
	} else {
		require.Equal(t, 1, second.Economy().Blackjack.Games)
	}
}

func TestLoadFailureKeepsFreshState(t *testing.T) {
	store := &save.MemoryStore{}
	require.NoError(t, store.Write([]byte("{broken")))
	g := newGame(t, store, core.NewFakeClock(time.Unix(0, 0)))

	_, err := g.Load()
	require.ErrorIs(t, err, save.ErrMalformed)
	require.Equal(t, economy.NewState(), g.Economy())

	_, err = newGame(t, &save.MemoryStore{}, core.NewFakeClock(time.Unix(0, 0))).Load()
	require.ErrorIs(t, err, save.ErrNoSave)
}

func TestStats(t *testing.T) {
	g := newGame(t, nil, nil)
	snap := g.Stats()

	cases := map[string]string{
		"cars":         "1",
		"cost_car":     "10",
		"cost_payout":  "200",
		"achievements": "0/12",
		"track":        "Circle",
		"bj_unlocked":  "locked",
		"autosave":     "ON",
		"multiplier":   "x1.00",
	}
	for key, want := range cases {
		got, ok := snap.Lookup(key)
		require.True(t, ok, key)
		require.Equal(t, want, got, key)
	}
}

func TestBuyCheapest(t *testing.T) {
	g := newGame(t, nil, nil)
	k, cost := g.CheapestUpgrade()
	require.Equal(t, economy.KindCar, k)
	require.Equal(t, 10, cost)

	require.Zero(t, g.BuyCheapest(5))

	// car 10, car 13, car 18, speed 20
	g.econ.Gold = 61
	require.Equal(t, 4, g.BuyCheapest(10))
	require.Equal(t, 4, g.econ.Cars)
	require.Equal(t, 2, g.econ.SpeedLevel)
	require.Equal(t, 0.0, g.econ.Gold)
	require.Len(t, g.Units(), 4)

	g.econ.Gold = 1e9
	require.Equal(t, 3, g.BuyCheapest(3))
}

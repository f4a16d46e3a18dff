// Package game ties the economy, the track, the blackjack table and
// persistence into the single aggregate a frame driver advances.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"idle-racer/internal/achievement"
	"idle-racer/internal/blackjack"
	"idle-racer/internal/core"
	"idle-racer/internal/economy"
	"idle-racer/internal/format"
	"idle-racer/internal/save"
	"idle-racer/internal/track"
)

const (
	gpsAlpha = 0.2
	gpsClamp = 1e12
)

// Options configures a new State. Zero values select defaults.
type Options struct {
	Params economy.Params
	Seed   int64
	Clock  core.Clock
	Logger *slog.Logger
	// Saves persists the state. Nil disables saving and loading.
	Saves *save.Manager
	// AutosaveInterval is in seconds of simulated time.
	AutosaveInterval float64
}

// State is the aggregate root. It is not safe for concurrent use; the frame
// driver is its only mutator.
type State struct {
	params economy.Params
	econ   *economy.State
	sim    *track.Sim
	table  *blackjack.Engine

	saves    *save.Manager
	autosave *save.AutosaveTimer
	settings save.Settings
	install  string

	log   *slog.Logger
	clock core.Clock

	notes    []Notification
	gps      float64
	lastGold float64
}

// New returns a fresh game.
func New(opts Options) *State {
	if opts.Params == (economy.Params{}) {
		opts.Params = economy.DefaultParams()
	}
	if opts.Clock == nil {
		opts.Clock = core.RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	rng := core.NewRNG(opts.Seed)
	econ := economy.NewState()
	return &State{
		params:   opts.Params,
		econ:     econ,
		sim:      track.NewSim(econ.Cars, rng),
		table:    blackjack.New(econ, blackjack.NewShoe(rng)),
		saves:    opts.Saves,
		autosave: save.NewAutosaveTimer(opts.AutosaveInterval),
		settings: save.DefaultSettings(),
		install:  uuid.NewString(),
		log:      opts.Logger,
		clock:    opts.Clock,
	}
}

// Load replaces the state with the stored save, crediting offline earnings.
// On any error the current state is kept, so a failed load leaves a fresh
// game playable.
func (g *State) Load() (save.LoadResult, error) {
	if g.saves == nil {
		return save.LoadResult{}, save.ErrNoSave
	}
	res, err := g.saves.Load()
	if err != nil {
		if errors.Is(err, save.ErrNoSave) {
			g.log.Info("no save found, starting fresh")
		} else {
			g.log.Warn("load failed, starting fresh", "err", err)
		}
		return res, err
	}
	g.apply(res.Snapshot)
	if res.Earned > 0 {
		g.notifyFor(fmt.Sprintf("Welcome back! Offline earnings: +%s gold", format.Number(math.Floor(res.Earned))), OfflineNoticeTTL)
	}
	return res, nil
}

func (g *State) apply(snap save.Snapshot) {
	g.econ = snap.Economy
	g.settings = snap.Settings
	if snap.InstallationID != "" {
		g.install = snap.InstallationID
	}
	g.sim.Reset(g.econ.Cars)
	g.table.Rebind(g.econ)
	g.lastGold = g.econ.Gold
	g.gps = 0
}

// Snapshot returns the persisted view of the state.
func (g *State) Snapshot() save.Snapshot {
	return save.Snapshot{
		Economy:        g.econ.Clone(),
		Settings:       g.settings,
		InstallationID: g.install,
	}
}

// Tick advances the game by dt seconds: notification expiry, passive income,
// unit movement and lap awards, the gold/sec gauge, achievements and
// autosave, in that order. Notifications raised by a tick are visible until
// the next one.
func (g *State) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	g.ageNotifications(dt)

	g.econ.Earn(g.params.AutoGoldPerSec(g.econ) * dt)

	laps := g.sim.Advance(dt, g.params.AngularSpeed(g.econ))
	for i := 0; i < laps; i++ {
		g.econ.AwardLap(g.params.GoldPerLap(g.econ))
	}

	g.updateGPS(dt)

	for _, r := range achievement.Evaluate(g.econ) {
		g.notify(fmt.Sprintf("Achievement: %s (+%d PP)", r.Name, r.Reward))
	}

	if g.settings.Autosave && g.autosave.Tick(dt) {
		if err := g.persist(); err != nil {
			g.log.Warn("autosave failed", "err", err)
		} else {
			g.log.Debug("autosaved")
			g.notify("Autosaved")
		}
	}
}

func (g *State) updateGPS(dt float64) {
	inst := (g.econ.Gold - g.lastGold) / dt
	inst = math.Max(-gpsClamp, math.Min(gpsClamp, inst))
	g.gps = (1-gpsAlpha)*g.gps + gpsAlpha*inst
	g.lastGold = g.econ.Gold
}

func (g *State) persist() error {
	if g.saves == nil {
		return save.ErrUnavailable
	}
	return g.saves.Save(g.Snapshot())
}

// Economy exposes the live economy state for display. Callers must not
// mutate it.
func (g *State) Economy() *economy.State { return g.econ }

// Params returns the economy constants in use.
func (g *State) Params() economy.Params { return g.params }

// Units exposes the production units for positioning.
func (g *State) Units() []track.Unit { return g.sim.Units() }

// Settings returns the current toggles.
func (g *State) Settings() save.Settings { return g.settings }

// Shape returns the selected track shape.
func (g *State) Shape() track.Shape { return track.ParseShape(g.settings.TrackType) }

// Table returns the current blackjack round.
func (g *State) Table() blackjack.Round { return g.table.Snapshot() }

// GoldPerSec is the smoothed gold delta per second.
func (g *State) GoldPerSec() float64 { return g.gps }

// InstallationID identifies this installation across saves.
func (g *State) InstallationID() string { return g.install }

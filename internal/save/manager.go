package save

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"idle-racer/internal/core"
	"idle-racer/internal/economy"
)

// LoadResult is a decoded snapshot with offline earnings already applied.
type LoadResult struct {
	Snapshot
	// Offline is the absence that was credited after clamping.
	Offline time.Duration
	// Earned is the gold credited for Offline.
	Earned float64
	// Repaired lists document keys that held invalid values and were reset.
	Repaired []string
}

// Manager saves and loads snapshots through a Store.
type Manager struct {
	store  Store
	params economy.Params
	clock  core.Clock
	log    *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock sets the time source used for save stamps and offline time.
func WithClock(c core.Clock) Option { return func(m *Manager) { m.clock = c } }

// WithLogger sets the logger. Nil keeps slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// NewManager returns a manager around store using params for offline rates.
func NewManager(store Store, params economy.Params, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		params: params,
		clock:  core.RealClock{},
		log:    slog.Default(),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Save stamps snap with the current time and replaces the stored document.
func (m *Manager) Save(snap Snapshot) error {
	ts := m.clock.Now().Unix()
	data, err := Encode(snap, ts)
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	if err := m.store.Write(data); err != nil {
		if !errors.Is(err, ErrUnavailable) {
			err = fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return err
	}
	return nil
}

// Load reads the stored document and credits offline earnings. It returns
// ErrNoSave when nothing is stored, ErrUnavailable when storage fails and
// ErrMalformed when the document is unreadable. A document without a save
// stamp credits no offline time.
func (m *Manager) Load() (LoadResult, error) {
	data, err := m.store.Read()
	if err != nil {
		if errors.Is(err, ErrNoSave) || errors.Is(err, ErrUnavailable) {
			return LoadResult{}, err
		}
		return LoadResult{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	snap, repaired, err := Decode(data)
	if err != nil {
		return LoadResult{}, err
	}
	if len(repaired) > 0 {
		m.log.Warn("save fields reset to defaults", "fields", repaired)
	}

	now := m.clock.Now()
	var away time.Duration
	if snap.SavedAt > 0 {
		away = now.Sub(time.Unix(snap.SavedAt, 0))
	}
	earned, credited := OfflineEarnings(m.params, snap.Economy, away)
	snap.Economy.Earn(earned)

	m.log.Info("save loaded", "away", away.Round(time.Second), "credited", credited, "earned", earned)
	return LoadResult{
		Snapshot: snap,
		Offline:  credited,
		Earned:   earned,
		Repaired: repaired,
	}, nil
}

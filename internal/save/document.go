// Package save persists the progression state as a JSON document and applies
// offline earnings when it is read back.
package save

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"idle-racer/internal/economy"
)

// FPS caps the settings toggle between.
const (
	DefaultFPSCap = 60
	AltFPSCap     = 120
)

const trackCount = 4

// Settings are the persisted display and behavior toggles.
type Settings struct {
	Autosave  bool
	Particles bool
	FPSCap    int
	TrackType int
}

// DefaultSettings returns the settings of a new installation.
func DefaultSettings() Settings {
	return Settings{Autosave: true, Particles: true, FPSCap: DefaultFPSCap}
}

// Snapshot is everything written to and read from storage.
type Snapshot struct {
	Economy        *economy.State
	Settings       Settings
	InstallationID string
	// SavedAt is the unix timestamp of the last save. Zero when unknown.
	SavedAt int64
}

// document is the on-disk layout. The snake_case keys are shared with
// existing save files, so they must not change.
type document struct {
	Gold               float64                        `json:"gold"`
	LifetimeGoldEarned float64                        `json:"lifetime_gold_earned"`
	Cars               int                            `json:"cars"`
	SpeedLevel         int                            `json:"speed_level"`
	PayoutLevel        int                            `json:"payout_level"`
	GoldMultLevel      int                            `json:"gold_mult_level"`
	AutoclickerLevel   int                            `json:"autoclicker_level"`
	OfflineLevel       int                            `json:"offline_level"`
	SponsorLevel       int                            `json:"sponsor_level"`
	BlackjackUnlocked  bool                           `json:"blackjack_unlocked"`
	LastSaveTS         int64                          `json:"last_save_ts"`
	Achievements       map[string]economy.Achievement `json:"achievements"`
	PrestigePoints     int                            `json:"prestige_points"`
	LapsTotal          int                            `json:"laps_total"`
	BJStats            economy.BlackjackStats         `json:"bj_stats"`
	Autosave           bool                           `json:"autosave"`
	EnableParticles    bool                           `json:"enable_particles"`
	FPSCap             int                            `json:"fps_cap"`
	TrackType          int                            `json:"track_type"`
	InstallationID     string                         `json:"installation_id,omitempty"`
}

// Encode renders snap as an indented JSON document stamped with ts.
func Encode(snap Snapshot, ts int64) ([]byte, error) {
	st := snap.Economy
	if st == nil {
		st = economy.NewState()
	}
	ach := st.Achievements
	if ach == nil {
		ach = map[string]economy.Achievement{}
	}
	doc := document{
		Gold:               st.Gold,
		LifetimeGoldEarned: st.LifetimeGoldEarned,
		Cars:               st.Cars,
		SpeedLevel:         st.SpeedLevel,
		PayoutLevel:        st.PayoutLevel,
		GoldMultLevel:      st.GoldMultLevel,
		AutoclickerLevel:   st.AutoclickerLevel,
		OfflineLevel:       st.OfflineLevel,
		SponsorLevel:       st.SponsorLevel,
		BlackjackUnlocked:  st.BlackjackUnlocked,
		LastSaveTS:         ts,
		Achievements:       ach,
		PrestigePoints:     st.PrestigePoints,
		LapsTotal:          st.LapsTotal,
		BJStats:            st.Blackjack,
		Autosave:           snap.Settings.Autosave,
		EnableParticles:    snap.Settings.Particles,
		FPSCap:             snap.Settings.FPSCap,
		TrackType:          snap.Settings.TrackType,
		InstallationID:     snap.InstallationID,
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Decode parses a stored document. A document that is not a JSON object
// fails with ErrMalformed. Individual fields that are missing get their
// default; fields that are present but invalid also get their default and
// their key is listed in the returned repaired slice.
func Decode(data []byte) (Snapshot, []string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Snapshot{}, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if raw == nil {
		return Snapshot{}, nil, fmt.Errorf("%w: document is null", ErrMalformed)
	}

	d := decoder{raw: raw}
	st := economy.NewState()
	set := DefaultSettings()

	st.Gold = d.floatField("gold", 0, 0)
	st.LifetimeGoldEarned = d.floatField("lifetime_gold_earned", 0, 0)
	st.Cars = d.intField("cars", 1, 1)
	st.SpeedLevel = d.intField("speed_level", 1, 1)
	st.PayoutLevel = d.intField("payout_level", 1, 1)
	st.GoldMultLevel = d.intField("gold_mult_level", 0, 0)
	st.AutoclickerLevel = d.intField("autoclicker_level", 0, 0)
	st.OfflineLevel = d.intField("offline_level", 0, 0)
	st.SponsorLevel = d.intField("sponsor_level", 0, 0)
	st.BlackjackUnlocked = d.boolField("blackjack_unlocked", false)
	st.PrestigePoints = d.intField("prestige_points", 0, 0)
	st.LapsTotal = d.intField("laps_total", 0, 0)
	st.Achievements = d.achievements("achievements")
	st.Blackjack = d.bjStats("bj_stats")

	set.Autosave = d.boolField("autosave", set.Autosave)
	set.Particles = d.boolField("enable_particles", set.Particles)
	set.FPSCap = d.intField("fps_cap", DefaultFPSCap, 1)
	set.TrackType = d.intField("track_type", 0, 0)
	if set.TrackType >= trackCount {
		set.TrackType = 0
		d.repair("track_type")
	}

	snap := Snapshot{
		Economy:        st,
		Settings:       set,
		InstallationID: d.stringField("installation_id"),
		SavedAt:        int64(d.intField("last_save_ts", 0, 0)),
	}
	sort.Strings(d.repaired)
	return snap, d.repaired, nil
}

type decoder struct {
	raw      map[string]json.RawMessage
	repaired []string
}

func (d *decoder) repair(key string) {
	for _, k := range d.repaired {
		if k == key {
			return
		}
	}
	d.repaired = append(d.repaired, key)
}

func (d *decoder) lookup(key string) (json.RawMessage, bool) {
	v, ok := d.raw[key]
	if !ok || string(v) == "null" {
		return nil, false
	}
	return v, true
}

func (d *decoder) floatField(key string, def, lo float64) float64 {
	v, ok := d.lookup(key)
	if !ok {
		return def
	}
	var f float64
	if err := json.Unmarshal(v, &f); err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		d.repair(key)
		return def
	}
	if f < lo {
		d.repair(key)
		return lo
	}
	return f
}

// intField accepts integral numbers in any JSON spelling, such as 3 or 3.0.
// Fractions are invalid.
func (d *decoder) intField(key string, def, lo int) int {
	v, ok := d.lookup(key)
	if !ok {
		return def
	}
	var f float64
	if err := json.Unmarshal(v, &f); err != nil || math.Abs(f) > 1<<53 || f != math.Trunc(f) {
		d.repair(key)
		return def
	}
	n := int(f)
	if n < lo {
		d.repair(key)
		return lo
	}
	return n
}

func (d *decoder) boolField(key string, def bool) bool {
	v, ok := d.lookup(key)
	if !ok {
		return def
	}
	var b bool
	if err := json.Unmarshal(v, &b); err != nil {
		d.repair(key)
		return def
	}
	return b
}

func (d *decoder) stringField(key string) string {
	v, ok := d.lookup(key)
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		d.repair(key)
		return ""
	}
	return s
}

func (d *decoder) achievements(key string) map[string]economy.Achievement {
	out := map[string]economy.Achievement{}
	v, ok := d.lookup(key)
	if !ok {
		return out
	}
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(v, &entries); err != nil {
		d.repair(key)
		return out
	}
	for name, e := range entries {
		var a economy.Achievement
		if err := json.Unmarshal(e, &a); err != nil {
			d.repair(key)
			continue
		}
		out[name] = a
	}
	return out
}

func (d *decoder) bjStats(key string) economy.BlackjackStats {
	v, ok := d.lookup(key)
	if !ok {
		return economy.BlackjackStats{}
	}
	var s economy.BlackjackStats
	if err := json.Unmarshal(v, &s); err != nil || s.Games < 0 || s.Wins < 0 {
		d.repair(key)
		return economy.BlackjackStats{}
	}
	if s.Wins > s.Games {
		d.repair(key)
		s.Wins = s.Games
	}
	return s
}

package save

// DefaultAutosaveInterval is the autosave period in seconds.
const DefaultAutosaveInterval = 30.0

// AutosaveTimer accumulates simulated time and fires once per interval.
type AutosaveTimer struct {
	interval float64
	acc      float64
}

// NewAutosaveTimer returns a timer firing every interval seconds. A
// non-positive interval uses DefaultAutosaveInterval.
func NewAutosaveTimer(interval float64) *AutosaveTimer {
	if interval <= 0 {
		interval = DefaultAutosaveInterval
	}
	return &AutosaveTimer{interval: interval}
}

// Tick adds dt and reports whether a save is due. The accumulator resets
// whenever it fires, whatever the outcome of the save.
func (t *AutosaveTimer) Tick(dt float64) bool {
	t.acc += dt
	if t.acc < t.interval {
		return false
	}
	t.acc = 0
	return true
}

// Elapsed returns the time accumulated since the last trigger.
func (t *AutosaveTimer) Elapsed() float64 { return t.acc }

// Interval returns the period in seconds.
func (t *AutosaveTimer) Interval() float64 { return t.interval }

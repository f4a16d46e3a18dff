package save

import (
	"time"

	"idle-racer/internal/economy"
)

const (
	offlineBaseHours     = 6
	offlineHoursPerLevel = 2
	offlineMaxHours      = 24
	offlineBonusPerLevel = 0.5
)

// OfflineCap is the longest absence credited at the given offline level.
func OfflineCap(level int) time.Duration {
	h := offlineBaseHours + offlineHoursPerLevel*max(level, 0)
	return time.Duration(min(h, offlineMaxHours)) * time.Hour
}

// OfflineEarnings returns the gold produced while away for elapsed and the
// clamped duration actually credited. Every unit is assumed to run at the
// base angular speed with no variance and no boosts, so the result depends
// only on the state and grows with elapsed.
func OfflineEarnings(p economy.Params, st *economy.State, elapsed time.Duration) (float64, time.Duration) {
	elapsed = max(elapsed, 0)
	elapsed = min(elapsed, OfflineCap(st.OfflineLevel))
	secs := elapsed.Seconds()
	laps := secs * p.LapsPerSecPerCar(st) * float64(st.Cars)
	earned := (laps*p.GoldPerLap(st) + secs*p.AutoGoldPerSec(st)) * (1 + offlineBonusPerLevel*float64(st.OfflineLevel))
	return earned, elapsed
}

package statistics

import (
	cmap "github.com/orcaman/concurrent-map/v2"
)

// Tracked value keys. The control loop writes them once per tick, the
// prometheus scrape goroutine reads them, hence the concurrent map.
const (
	KeyCPUTemp  = "cpu_temperature_celsius"
	KeyCPUUsage = "cpu_usage_percent"
	KeyRAMUsage = "ram_usage_percent"

	KeyFanRunning     = "fan_running"
	KeyDisplayDimmed  = "display_dimmed"
	KeyDisplayPowered = "display_powered"
	KeyShiftIndex     = "display_shift_index"
	KeyLoopTicksTotal = "loop_ticks_total"
)

var tracked = cmap.New[float64]()

func Track(key string, value float64) {
	tracked.Set(key, value)
}

func TrackBool(key string, value bool) {
	if value {
		Track(key, 1)
	} else {
		Track(key, 0)
	}
}

func trackedValue(key string) (float64, bool) {
	return tracked.Get(key)
}

package stats

// Placeholder values substituted when an identity lookup fails. Sampling
// never fails the whole call, missing values degrade to these.
const (
	PlaceholderIP       = "0.0.0.0"
	PlaceholderHostname = "UNKNOWN"
)

// Snapshot is a point-in-time view of the system, recreated every tick and
// never persisted.
type Snapshot struct {
	IPAddress string
	Hostname  string

	// CPUTemp in °C.
	CPUTemp float64
	// CPUUsage in percent.
	CPUUsage float64
	// RAMUsage in percent.
	RAMUsage float64
}

// Source produces system snapshots.
type Source interface {
	Sample() Snapshot
}

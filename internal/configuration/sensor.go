package configuration

// SensorConfig describes where system stats come from. CPU and RAM usage are
// always read natively, the identity lookups can optionally be delegated to
// external commands.
type SensorConfig struct {
	// TempFile is a sysfs file containing the CPU temperature in
	// millidegrees celsius.
	TempFile string `json:"tempFile"`

	// IPCmd overrides the native IP address lookup.
	IPCmd *ExecConfig `json:"ipCmd,omitempty"`
	// HostnameCmd overrides the native hostname lookup.
	HostnameCmd *ExecConfig `json:"hostnameCmd,omitempty"`
}

package configuration

// FanConfig describes the hysteresis thresholds and exactly one actuator
// backend for the PoE HAT fan.
type FanConfig struct {
	// TempOn is the temperature (°C) at or above which the fan turns on.
	// Must be greater than TempOff, the dead-band in between prevents
	// oscillation around a single threshold.
	TempOn  float64 `json:"tempOn"`
	TempOff float64 `json:"tempOff"`

	Gpio *GpioFanConfig `json:"gpio,omitempty"`
	File *FileFanConfig `json:"file,omitempty"`
	Cmd  *CmdFanConfig  `json:"cmd,omitempty"`
}

type GpioFanConfig struct {
	// Chip is the gpiochip device name, e.g. "gpiochip0".
	Chip string `json:"chip"`
	// Line is the offset of the fan control line on that chip.
	Line int `json:"line"`
}

type FileFanConfig struct {
	Path string `json:"path"`
}

type CmdFanConfig struct {
	On  ExecConfig `json:"on"`
	Off ExecConfig `json:"off"`
}

type ExecConfig struct {
	Exec string   `json:"exec"`
	Args []string `json:"args,omitempty"`
}

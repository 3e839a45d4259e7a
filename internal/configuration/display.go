package configuration

import "time"

type DisplayConfig struct {
	// ScreenTimeout dims the display to minimum brightness once after this
	// much uptime. Zero disables dimming.
	ScreenTimeout time.Duration `json:"screenTimeout"`

	// EnablePeriodicOff alternates the display between fully powered on and
	// fully powered off to reduce wear and power draw.
	EnablePeriodicOff   bool          `json:"enablePeriodicOff"`
	PeriodicOnDuration  time.Duration `json:"periodicOnDuration"`
	PeriodicOffDuration time.Duration `json:"periodicOffDuration"`

	I2C    I2CConfig `json:"i2c"`
	Width  int       `json:"width"`
	Height int       `json:"height"`
}

type I2CConfig struct {
	// Bus is the i2c bus name or number as understood by i2creg, e.g. "1".
	Bus     string `json:"bus"`
	Address uint16 `json:"address"`
}

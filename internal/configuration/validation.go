package configuration

import (
	"fmt"

	"github.com/poe2go/poe2go/internal/util"
	"golang.org/x/exp/slices"
)

var supportedPanelHeights = []int{32, 64}

func Validate(configPath string) error {
	return validateConfig(&CurrentConfig, configPath)
}

func validateConfig(config *Configuration, path string) error {
	if config.RefreshInterval <= 0 {
		return fmt.Errorf("refreshInterval must be positive, got %v", config.RefreshInterval)
	}

	if err := validateFan(config); err != nil {
		return err
	}
	if err := validateDisplay(config); err != nil {
		return err
	}
	if err := validateStatistics(config); err != nil {
		return err
	}

	if containsCmdExecution(config) {
		if _, err := util.CheckFilePermissionsForExecution(path); err != nil {
			return fmt.Errorf("config file '%s' has invalid permissions: %s", path, err)
		}
	}

	return nil
}

func containsCmdExecution(config *Configuration) bool {
	return config.Fan.Cmd != nil ||
		config.Sensor.IPCmd != nil ||
		config.Sensor.HostnameCmd != nil
}

func validateFan(config *Configuration) error {
	fan := config.Fan

	// a tempOn at or below tempOff would make the fan oscillate every tick
	if fan.TempOn <= fan.TempOff {
		return fmt.Errorf("fan: tempOn (%.1f) must be greater than tempOff (%.1f)", fan.TempOn, fan.TempOff)
	}

	backends := 0
	if fan.Gpio != nil {
		backends++
	}
	if fan.File != nil {
		backends++
		if len(fan.File.Path) <= 0 {
			return fmt.Errorf("fan: file backend needs a path")
		}
	}
	if fan.Cmd != nil {
		backends++
		if len(fan.Cmd.On.Exec) <= 0 || len(fan.Cmd.Off.Exec) <= 0 {
			return fmt.Errorf("fan: cmd backend needs both an on and an off command")
		}
	}
	if backends != 1 {
		return fmt.Errorf("fan: exactly one backend (gpio, file or cmd) must be configured, found %d", backends)
	}

	return nil
}

func validateDisplay(config *Configuration) error {
	disp := config.Display

	if disp.ScreenTimeout < 0 {
		return fmt.Errorf("display: screenTimeout must not be negative")
	}

	if disp.EnablePeriodicOff {
		if disp.PeriodicOnDuration <= 0 || disp.PeriodicOffDuration <= 0 {
			return fmt.Errorf("display: periodic on/off durations must be positive when enablePeriodicOff is set")
		}
	}

	if disp.Width <= 0 {
		return fmt.Errorf("display: width must be positive")
	}
	if !slices.Contains(supportedPanelHeights, disp.Height) {
		return fmt.Errorf("display: unsupported panel height %d, supported: %v", disp.Height, supportedPanelHeights)
	}

	if len(disp.I2C.Bus) <= 0 {
		return fmt.Errorf("display: i2c bus must be set")
	}
	if disp.I2C.Address == 0 {
		return fmt.Errorf("display: i2c address must be set")
	}

	return nil
}

func validateStatistics(config *Configuration) error {
	stats := config.Statistics
	if stats.Enabled && (stats.Port <= 0 || stats.Port >= 65535) {
		return fmt.Errorf("statistics: invalid port %d", stats.Port)
	}
	return nil
}

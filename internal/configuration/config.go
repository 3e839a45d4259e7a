package configuration

import (
	"os"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/mitchellh/go-homedir"
	"github.com/poe2go/poe2go/internal/ui"
	"github.com/spf13/viper"
)

type Configuration struct {
	// RefreshInterval is the fixed cadence of the control loop.
	RefreshInterval time.Duration `json:"refreshInterval"`

	Fan        FanConfig        `json:"fan"`
	Display    DisplayConfig    `json:"display"`
	Sensor     SensorConfig     `json:"sensor"`
	Statistics StatisticsConfig `json:"statistics"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("poe2go")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/poe2go/")
	}

	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("RefreshInterval", 1*time.Second)

	viper.SetDefault("fan.TempOn", 60.0)
	viper.SetDefault("fan.TempOff", 50.0)

	viper.SetDefault("display.ScreenTimeout", 0*time.Second)
	viper.SetDefault("display.EnablePeriodicOff", false)
	viper.SetDefault("display.PeriodicOnDuration", 600*time.Second)
	viper.SetDefault("display.PeriodicOffDuration", 60*time.Second)
	viper.SetDefault("display.i2c.Bus", "1")
	viper.SetDefault("display.i2c.Address", 0x3C)
	viper.SetDefault("display.Width", 128)
	viper.SetDefault("display.Height", 32)

	viper.SetDefault("sensor.TempFile", "/sys/class/thermal/thermal_zone0/temp")

	viper.SetDefault("statistics.Enabled", false)
	viper.SetDefault("statistics.Port", 9612)
}

// DetectAndReadConfigFile detects the path of the first existing config file
// and reads it. The config file is required, failure to read it is fatal.
func DetectAndReadConfigFile() string {
	if err := viper.ReadInConfig(); err != nil {
		ui.Fatal("Error reading config file, %s", err)
	}
	// this is only populated _after_ ReadInConfig()
	return viper.ConfigFileUsed()
}

// LoadConfig unmarshals the current viper state into CurrentConfig.
func LoadConfig() {
	err := viper.Unmarshal(
		&CurrentConfig,
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)),
	)
	if err != nil {
		ui.Fatal("unable to decode into struct, %v", err)
	}
}

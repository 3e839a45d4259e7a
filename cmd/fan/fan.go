package fan

import (
	"github.com/poe2go/poe2go/internal/configuration"
	"github.com/poe2go/poe2go/internal/fans"
	"github.com/poe2go/poe2go/internal/ui"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:              "fan",
	Short:            "Fan related commands",
	Long:             ``,
	TraverseChildren: true,
}

func getFan() (fans.Fan, error) {
	configPath := configuration.DetectAndReadConfigFile()
	ui.Info("Using configuration file at: %s", configPath)
	configuration.LoadConfig()
	if err := configuration.Validate(configPath); err != nil {
		ui.FatalWithoutStacktrace("%v", err)
	}

	return fans.NewFan(configuration.CurrentConfig.Fan)
}

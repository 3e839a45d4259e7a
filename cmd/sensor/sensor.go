package sensor

import (
	"fmt"

	"github.com/poe2go/poe2go/internal/configuration"
	"github.com/poe2go/poe2go/internal/stats"
	"github.com/poe2go/poe2go/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:              "sensor",
	Short:            "Sensor related commands",
	Long:             ``,
	TraverseChildren: true,
	Args:             cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		source, err := getSource()
		if err != nil {
			return err
		}

		snapshot := source.Sample()
		fmt.Printf("%.1f", snapshot.CPUTemp)
		return nil
	},
}

func getSource() (stats.Source, error) {
	configPath := configuration.DetectAndReadConfigFile()
	ui.Info("Using configuration file at: %s", configPath)
	configuration.LoadConfig()
	if err := configuration.Validate(configPath); err != nil {
		ui.FatalWithoutStacktrace("%v", err)
	}

	return stats.NewSystemSource(configuration.CurrentConfig.Sensor), nil
}

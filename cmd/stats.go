package cmd

import (
	"bytes"
	"fmt"
	"time"

	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"

	"github.com/poe2go/poe2go/cmd/global"
	"github.com/poe2go/poe2go/internal/configuration"
	"github.com/poe2go/poe2go/internal/stats"
	"github.com/poe2go/poe2go/internal/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print a one-shot system snapshot",
	Long:  `Samples the system once and prints the values the daemon would render`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := configuration.DetectAndReadConfigFile()
		ui.Info("Using configuration file at: %s", configPath)
		configuration.LoadConfig()

		source := stats.NewSystemSource(configuration.CurrentConfig.Sensor)

		// the first cpu sample only primes the usage delta counters
		source.Sample()
		time.Sleep(1 * time.Second)
		snapshot := source.Sample()

		tab := table.Table{
			Headers: []string{"Stat", "Value"},
			Rows: [][]string{
				{"Hostname", snapshot.Hostname},
				{"IP address", snapshot.IPAddress},
				{"CPU temperature", fmt.Sprintf("%.1f C", snapshot.CPUTemp)},
				{"CPU usage", fmt.Sprintf("%.1f %%", snapshot.CPUUsage)},
				{"RAM usage", fmt.Sprintf("%.1f %%", snapshot.RAMUsage)},
			},
		}

		var buf bytes.Buffer
		err := tab.WriteTable(&buf, &table.Config{
			ShowIndex:       false,
			Color:           !global.NoColor,
			AlternateColors: true,
			TitleColorCode:  ansi.ColorCode("white+buf"),
			AltColorCodes: []string{
				ansi.ColorCode("white"),
				ansi.ColorCode("white:236"),
			},
		})
		if err != nil {
			return err
		}
		ui.Printfln(buf.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

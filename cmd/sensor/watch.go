package sensor

import (
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/poe2go/poe2go/internal/configuration"
)

const maxGraphSamples = 120

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Continuously graph the CPU temperature",
	Long:  `Samples the CPU temperature at the configured refresh interval and renders an ascii graph`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := getSource()
		if err != nil {
			return err
		}

		interval := configuration.CurrentConfig.RefreshInterval

		area, err := pterm.DefaultArea.Start()
		if err != nil {
			return err
		}
		defer func() { _ = area.Stop() }()

		values := make([]float64, 0, maxGraphSamples)
		for {
			snapshot := source.Sample()
			values = append(values, snapshot.CPUTemp)
			if len(values) > maxGraphSamples {
				values = values[1:]
			}

			graph := asciigraph.Plot(
				values,
				asciigraph.Height(15),
				asciigraph.Width(100),
				asciigraph.Caption("CPU temperature (C)"),
			)
			area.Update(graph)

			time.Sleep(interval)
		}
	},
}

func init() {
	Command.AddCommand(watchCmd)
}

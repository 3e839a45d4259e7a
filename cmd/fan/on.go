package fan

import (
	"github.com/poe2go/poe2go/internal/ui"
	"github.com/spf13/cobra"
)

var onCmd = &cobra.Command{
	Use:   "on",
	Short: "Turn the fan on",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fan, err := getFan()
		if err != nil {
			return err
		}

		if err := fan.TurnOn(); err != nil {
			return err
		}
		ui.Success("Fan %s turned on", fan.GetId())
		return nil
	},
}

func init() {
	Command.AddCommand(onCmd)
}

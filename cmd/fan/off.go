package fan

import (
	"github.com/poe2go/poe2go/internal/ui"
	"github.com/spf13/cobra"
)

var offCmd = &cobra.Command{
	Use:   "off",
	Short: "Turn the fan off",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fan, err := getFan()
		if err != nil {
			return err
		}

		if err := fan.TurnOff(); err != nil {
			return err
		}
		ui.Success("Fan %s turned off", fan.GetId())
		return nil
	},
}

func init() {
	Command.AddCommand(offCmd)
}

package fans

import (
	"fmt"
	"time"

	"github.com/poe2go/poe2go/internal/configuration"
	"github.com/poe2go/poe2go/internal/util"
)

const cmdTimeout = 2 * time.Second

// CmdFan shells out to user-supplied on/off commands.
type CmdFan struct {
	Config configuration.FanConfig
}

func (fan CmdFan) GetId() string {
	return fmt.Sprintf("cmd/%s", fan.Config.Cmd.On.Exec)
}

func (fan CmdFan) TurnOn() error {
	return fan.run(fan.Config.Cmd.On)
}

func (fan CmdFan) TurnOff() error {
	return fan.run(fan.Config.Cmd.Off)
}

func (fan CmdFan) run(command configuration.ExecConfig) error {
	_, err := util.SafeCmdExecution(command.Exec, command.Args, cmdTimeout)
	if err != nil {
		return fmt.Errorf("fan %s: %s", fan.GetId(), err.Error())
	}
	return nil
}

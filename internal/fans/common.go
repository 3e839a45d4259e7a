package fans

import (
	"fmt"

	"github.com/poe2go/poe2go/internal/configuration"
)

// Fan is a binary fan actuator. Neither call is guaranteed to be idempotent
// on the hardware side, callers only invoke them on state transitions.
type Fan interface {
	GetId() string

	TurnOn() error
	TurnOff() error
}

func NewFan(config configuration.FanConfig) (Fan, error) {
	if config.Gpio != nil {
		return &GpioFan{
			Config: config,
		}, nil
	}

	if config.File != nil {
		return &FileFan{
			Config: config,
		}, nil
	}

	if config.Cmd != nil {
		return &CmdFan{
			Config: config,
		}, nil
	}

	return nil, fmt.Errorf("no matching fan backend configured")
}

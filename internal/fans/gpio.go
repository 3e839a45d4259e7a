package fans

import (
	"fmt"

	"github.com/poe2go/poe2go/internal/configuration"
	"github.com/poe2go/poe2go/internal/ui"
	"github.com/warthog618/gpiod"
)

// GpioFan drives the fan through a GPIO line in output mode. The line is
// requested lazily on the first actuation and held for the process lifetime.
type GpioFan struct {
	Config configuration.FanConfig

	line *gpiod.Line
}

func (fan *GpioFan) GetId() string {
	return fmt.Sprintf("gpio/%s:%d", fan.Config.Gpio.Chip, fan.Config.Gpio.Line)
}

func (fan *GpioFan) TurnOn() error {
	return fan.setValue(1)
}

func (fan *GpioFan) TurnOff() error {
	return fan.setValue(0)
}

func (fan *GpioFan) setValue(value int) error {
	if err := fan.ensureLine(); err != nil {
		return err
	}
	if err := fan.line.SetValue(value); err != nil {
		return fmt.Errorf("fan %s: set value %d: %w", fan.GetId(), value, err)
	}
	return nil
}

func (fan *GpioFan) ensureLine() error {
	if fan.line != nil {
		return nil
	}

	line, err := gpiod.RequestLine(
		fan.Config.Gpio.Chip,
		fan.Config.Gpio.Line,
		gpiod.AsOutput(0),
		gpiod.WithConsumer("poe2go"),
	)
	if err != nil {
		return fmt.Errorf("fan %s: request line: %w", fan.GetId(), err)
	}
	fan.line = line
	ui.Debug("Requested GPIO line %s", fan.GetId())
	return nil
}

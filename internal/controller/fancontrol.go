package controller

import (
	"fmt"

	"github.com/poe2go/poe2go/internal/fans"
	"github.com/poe2go/poe2go/internal/ui"
)

// FanController drives a fan with two-threshold hysteresis: the fan turns on
// at or above tempOn and stays on until the temperature drops to or below
// tempOff. The dead-band in between prevents chatter around a single
// threshold. tempOn must be greater than tempOff, configuration validation
// guarantees this before the controller is constructed.
type FanController struct {
	fan     fans.Fan
	tempOn  float64
	tempOff float64
	running bool
}

func NewFanController(fan fans.Fan, tempOn float64, tempOff float64) *FanController {
	return &FanController{
		fan:     fan,
		tempOn:  tempOn,
		tempOff: tempOff,
	}
}

func (f *FanController) IsRunning() bool {
	return f.running
}

// ForceOff puts the fan into a known state, used once before the first tick.
func (f *FanController) ForceOff() error {
	if err := f.fan.TurnOff(); err != nil {
		return fmt.Errorf("fan %s: initial off: %w", f.fan.GetId(), err)
	}
	f.running = false
	return nil
}

// Update advances the hysteresis state for the given temperature sample.
// At most one actuation happens per state transition, a sample inside the
// dead-band is a no-op.
func (f *FanController) Update(temp float64) error {
	ui.Trace("Checking fan controller. Fan running: %v, CPU temp: %.1f", f.running, temp)

	if f.running {
		if temp <= f.tempOff {
			ui.Info("Temperature %.1f°C at or below %.1f°C, turning fan off", temp, f.tempOff)
			if err := f.fan.TurnOff(); err != nil {
				return fmt.Errorf("fan %s: turn off: %w", f.fan.GetId(), err)
			}
			f.running = false
		}
		return nil
	}

	if temp >= f.tempOn {
		ui.Info("Temperature %.1f°C at or above %.1f°C, turning fan on", temp, f.tempOn)
		if err := f.fan.TurnOn(); err != nil {
			return fmt.Errorf("fan %s: turn on: %w", f.fan.GetId(), err)
		}
		f.running = true
	}
	return nil
}

package controller

import (
	"fmt"
	"image"
	"time"

	"github.com/poe2go/poe2go/internal/display"
	"github.com/poe2go/poe2go/internal/ui"
)

// Anti burn-in pixel shift: the rendered page is offset by one entry of this
// pattern, advancing every shiftInterval.
const shiftInterval = 60 * time.Second

var shiftPattern = []image.Point{
	{X: 0, Y: 0},
	{X: 1, Y: 0},
}

// DisplayState holds the three display timers and flags. It lives for the
// process lifetime, is owned exclusively by the Controller and reset on
// every start.
type DisplayState struct {
	StartTime time.Time

	// ScreenDimmed is a one-way latch, never reset without a restart.
	ScreenDimmed bool

	PeriodicallyOn     bool
	LastPeriodicToggle time.Time

	ShiftIndex  int
	ShiftOffset image.Point
	LastShift   time.Time
}

func NewDisplayState(now time.Time) DisplayState {
	return DisplayState{
		StartTime:          now,
		PeriodicallyOn:     true,
		LastPeriodicToggle: now,
		LastShift:          now,
	}
}

// handleScreenTimeout dims the display once after the configured uptime.
// A zero timeout disables dimming entirely.
func (c *Controller) handleScreenTimeout(now time.Time) error {
	timeout := c.config.Display.ScreenTimeout
	if timeout <= 0 || c.state.ScreenDimmed {
		return nil
	}

	if now.Sub(c.state.StartTime) >= timeout {
		ui.Info("Screen timeout reached. Dimming display.")
		if err := c.sink.SetBrightness(display.BrightnessDimmest); err != nil {
			return fmt.Errorf("dim display: %w", err)
		}
		c.state.ScreenDimmed = true
	}
	return nil
}

// handlePeriodicDisplay alternates the display between powered on and
// powered off. The only transition guard is elapsed time, which bounds both
// the on-time and the off-time.
func (c *Controller) handlePeriodicDisplay(now time.Time) error {
	if !c.config.Display.EnablePeriodicOff {
		return nil
	}

	sinceToggle := now.Sub(c.state.LastPeriodicToggle)

	if c.state.PeriodicallyOn && sinceToggle >= c.config.Display.PeriodicOnDuration {
		ui.Debug("Periodic timer: Turning display OFF.")
		if err := c.sink.PowerOff(); err != nil {
			return fmt.Errorf("periodic display off: %w", err)
		}
		c.state.PeriodicallyOn = false
		c.state.LastPeriodicToggle = now
	} else if !c.state.PeriodicallyOn && sinceToggle >= c.config.Display.PeriodicOffDuration {
		ui.Debug("Periodic timer: Turning display ON.")
		if err := c.sink.PowerOn(); err != nil {
			return fmt.Errorf("periodic display on: %w", err)
		}
		c.state.PeriodicallyOn = true
		c.state.LastPeriodicToggle = now
	}
	return nil
}

// updatePixelShift advances the shift offset. It runs regardless of the
// periodic power state, the offset only takes effect on the next render.
func (c *Controller) updatePixelShift(now time.Time) {
	if now.Sub(c.state.LastShift) < shiftInterval {
		return
	}
	c.state.ShiftIndex = (c.state.ShiftIndex + 1) % len(shiftPattern)
	c.state.ShiftOffset = shiftPattern[c.state.ShiftIndex]
	c.state.LastShift = now
	ui.Debug("Shifting display pixels to offset: %v", c.state.ShiftOffset)
}

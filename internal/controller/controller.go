package controller

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/poe2go/poe2go/internal/configuration"
	"github.com/poe2go/poe2go/internal/display"
	"github.com/poe2go/poe2go/internal/fans"
	"github.com/poe2go/poe2go/internal/statistics"
	"github.com/poe2go/poe2go/internal/stats"
	"github.com/poe2go/poe2go/internal/ui"
)

// Controller is the single-threaded control loop driving fan and display.
// It exclusively owns the fan controller and the display state, there is no
// locking because nothing else mutates them.
type Controller struct {
	config configuration.Configuration
	stats  stats.Source
	fan    *FanController
	sink   display.Sink

	state DisplayState
	ticks uint64
}

func NewController(
	config configuration.Configuration,
	source stats.Source,
	fan fans.Fan,
	sink display.Sink,
) *Controller {
	return &Controller{
		config: config,
		stats:  source,
		fan:    NewFanController(fan, config.Fan.TempOn, config.Fan.TempOff),
		sink:   sink,
	}
}

// Run drives the loop at the configured cadence until the context is
// cancelled or a hardware error occurs. Hardware errors are not retried,
// there is no safe degraded mode for thermal or display control.
func (c *Controller) Run(ctx context.Context) error {
	c.state = NewDisplayState(time.Now())

	// known fan state before the first tick
	if err := c.fan.ForceOff(); err != nil {
		return err
	}

	ui.Info("Starting control loop, refresh interval: %v", c.config.RefreshInterval)

	for {
		if err := c.cycle(time.Now()); err != nil {
			return err
		}

		// sleep the nominal interval, tick I/O latency is not compensated
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(c.config.RefreshInterval):
		}
	}
}

// cycle executes one tick. The order is fixed: display timers, stats
// sampling, fan hysteresis, then the gated render.
func (c *Controller) cycle(now time.Time) error {
	if err := c.handleScreenTimeout(now); err != nil {
		return err
	}
	if err := c.handlePeriodicDisplay(now); err != nil {
		return err
	}
	c.updatePixelShift(now)

	snapshot := c.stats.Sample()

	if err := c.fan.Update(snapshot.CPUTemp); err != nil {
		return err
	}

	// render only while the periodic cycle keeps the panel powered; a dimmed
	// display still renders
	if c.state.PeriodicallyOn {
		if err := c.sink.Render(frameFor(snapshot, c.state.ShiftOffset)); err != nil {
			return fmt.Errorf("display update: %w", err)
		}
	}

	c.ticks++
	c.track(snapshot)

	return nil
}

func (c *Controller) track(snapshot stats.Snapshot) {
	statistics.Track(statistics.KeyCPUTemp, snapshot.CPUTemp)
	statistics.Track(statistics.KeyCPUUsage, snapshot.CPUUsage)
	statistics.Track(statistics.KeyRAMUsage, snapshot.RAMUsage)
	statistics.TrackBool(statistics.KeyFanRunning, c.fan.IsRunning())
	statistics.TrackBool(statistics.KeyDisplayDimmed, c.state.ScreenDimmed)
	statistics.TrackBool(statistics.KeyDisplayPowered, c.state.PeriodicallyOn)
	statistics.Track(statistics.KeyShiftIndex, float64(c.state.ShiftIndex))
	statistics.Track(statistics.KeyLoopTicksTotal, float64(c.ticks))
}

func frameFor(snapshot stats.Snapshot, offset image.Point) display.Frame {
	return display.Frame{
		IPAddress: snapshot.IPAddress,
		CPUUsage:  fmt.Sprintf("%.1f", snapshot.CPUUsage),
		CPUTemp:   fmt.Sprintf("%.1f", snapshot.CPUTemp),
		RAMUsage:  fmt.Sprintf("%.1f", snapshot.RAMUsage),
		Hostname:  snapshot.Hostname,
		Offset:    offset,
	}
}

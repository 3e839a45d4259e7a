package controller

import (
	"testing"
	"time"

	"github.com/poe2go/poe2go/internal/configuration"
	"github.com/poe2go/poe2go/internal/display"
	"github.com/stretchr/testify/assert"
)

func testConfig() configuration.Configuration {
	return configuration.Configuration{
		RefreshInterval: 5 * time.Second,
		Fan: configuration.FanConfig{
			TempOn:  70,
			TempOff: 60,
		},
		Display: configuration.DisplayConfig{
			ScreenTimeout:       300 * time.Second,
			EnablePeriodicOff:   false,
			PeriodicOnDuration:  600 * time.Second,
			PeriodicOffDuration: 60 * time.Second,
			Width:               128,
			Height:              32,
		},
	}
}

func newTestController(config configuration.Configuration, source *MockSource, fan *MockFan, sink *MockSink) *Controller {
	controller := NewController(config, source, fan, sink)
	controller.state = NewDisplayState(time.Unix(0, 0))
	return controller
}

// runTicks advances the controller tick by tick with the given spacing,
// starting one interval after the state epoch.
func runTicks(t *testing.T, controller *Controller, count int, interval time.Duration) {
	t.Helper()
	start := controller.state.StartTime
	for i := 1; i <= count; i++ {
		err := controller.cycle(start.Add(time.Duration(i) * interval))
		assert.NoError(t, err)
	}
}

func TestDimExactlyOnce(t *testing.T) {
	// GIVEN dim timeout 300s, tick interval 5s
	sink := &MockSink{}
	controller := newTestController(testConfig(), &MockSource{}, &MockFan{}, sink)

	// WHEN 59 ticks pass (295s elapsed)
	runTicks(t, controller, 59, 5*time.Second)

	// THEN nothing is dimmed yet
	assert.Empty(t, sink.BrightnessCalls)
	assert.False(t, controller.state.ScreenDimmed)

	// WHEN the 300s tick and many more pass
	start := controller.state.StartTime
	for i := 60; i <= 120; i++ {
		assert.NoError(t, controller.cycle(start.Add(time.Duration(i)*5*time.Second)))
	}

	// THEN exactly one minimum brightness command was issued
	assert.Equal(t, []display.Brightness{display.BrightnessDimmest}, sink.BrightnessCalls)
	assert.True(t, controller.state.ScreenDimmed)
}

func TestDimDisabledWithZeroTimeout(t *testing.T) {
	// GIVEN
	config := testConfig()
	config.Display.ScreenTimeout = 0
	sink := &MockSink{}
	controller := newTestController(config, &MockSource{}, &MockFan{}, sink)

	// WHEN a very long uptime passes
	runTicks(t, controller, 1000, 5*time.Second)

	// THEN the display is never dimmed
	assert.Empty(t, sink.BrightnessCalls)
	assert.False(t, controller.state.ScreenDimmed)
}

func TestPeriodicCycleScenario(t *testing.T) {
	// GIVEN periodic on/off with on=600s, off=60s, starting "on" at t=0
	config := testConfig()
	config.Display.ScreenTimeout = 0
	config.Display.EnablePeriodicOff = true
	sink := &MockSink{}
	controller := newTestController(config, &MockSource{}, &MockFan{}, sink)
	start := controller.state.StartTime

	// WHEN t approaches 600s
	assert.NoError(t, controller.cycle(start.Add(595*time.Second)))

	// THEN the display is still on
	assert.Equal(t, 0, sink.PowerOffCalls)
	assert.True(t, controller.state.PeriodicallyOn)

	// WHEN t=600s
	assert.NoError(t, controller.cycle(start.Add(600*time.Second)))

	// THEN the display powers off
	assert.Equal(t, 1, sink.PowerOffCalls)
	assert.False(t, controller.state.PeriodicallyOn)

	// WHEN t=655s
	assert.NoError(t, controller.cycle(start.Add(655*time.Second)))

	// THEN still off
	assert.Equal(t, 0, sink.PowerOnCalls)

	// WHEN t=660s
	assert.NoError(t, controller.cycle(start.Add(660*time.Second)))

	// THEN the display powers back on
	assert.Equal(t, 1, sink.PowerOnCalls)
	assert.True(t, controller.state.PeriodicallyOn)
}

func TestPeriodicCycleBounds(t *testing.T) {
	// GIVEN on=600s, off=60s, ticks every 5s
	config := testConfig()
	config.Display.ScreenTimeout = 0
	config.Display.EnablePeriodicOff = true
	sink := &MockSink{}
	controller := newTestController(config, &MockSource{}, &MockFan{}, sink)

	start := controller.state.StartTime
	interval := 5 * time.Second

	lastToggle := start
	var onSpan, offSpan time.Duration
	for i := 1; i <= 600; i++ { // 50 minutes
		now := start.Add(time.Duration(i) * interval)
		wasOn := controller.state.PeriodicallyOn
		assert.NoError(t, controller.cycle(now))
		if wasOn != controller.state.PeriodicallyOn {
			span := now.Sub(lastToggle)
			if wasOn {
				onSpan = span
			} else {
				offSpan = span
			}
			lastToggle = now
		}
	}

	// THEN the display is never on longer than on_duration + one tick,
	// nor off longer than off_duration + one tick
	assert.LessOrEqual(t, onSpan, config.Display.PeriodicOnDuration+interval)
	assert.LessOrEqual(t, offSpan, config.Display.PeriodicOffDuration+interval)
	assert.Greater(t, sink.PowerOffCalls, 0)
	assert.Greater(t, sink.PowerOnCalls, 0)
}

func TestPeriodicCycleDisabled(t *testing.T) {
	// GIVEN
	config := testConfig()
	config.Display.ScreenTimeout = 0
	sink := &MockSink{}
	controller := newTestController(config, &MockSource{}, &MockFan{}, sink)

	// WHEN
	runTicks(t, controller, 500, 5*time.Second)

	// THEN the display is never power cycled and renders every tick
	assert.Equal(t, 0, sink.PowerOffCalls)
	assert.Equal(t, 0, sink.PowerOnCalls)
	assert.Len(t, sink.Frames, 500)
}

func TestRenderGatingWhilePeriodicallyOff(t *testing.T) {
	// GIVEN a display that just powered off
	config := testConfig()
	config.Display.ScreenTimeout = 0
	config.Display.EnablePeriodicOff = true
	sink := &MockSink{}
	controller := newTestController(config, &MockSource{}, &MockFan{}, sink)
	start := controller.state.StartTime

	assert.NoError(t, controller.cycle(start.Add(600*time.Second)))
	assert.False(t, controller.state.PeriodicallyOn)
	rendersWhenOff := len(sink.Frames)

	// WHEN ticks pass while the panel is powered down
	for i := 1; i <= 12; i++ {
		assert.NoError(t, controller.cycle(start.Add(600*time.Second).Add(time.Duration(i)*5*time.Second)))
	}

	// THEN no render call was issued until the panel powered back on
	assert.Equal(t, 1, sink.PowerOnCalls)
	assert.Greater(t, len(sink.Frames), rendersWhenOff)
	assert.Equal(t, rendersWhenOff+1, len(sink.Frames))
}

func TestPixelShiftPeriodicity(t *testing.T) {
	// GIVEN ticks every 5s
	config := testConfig()
	config.Display.ScreenTimeout = 0
	sink := &MockSink{}
	controller := newTestController(config, &MockSource{}, &MockFan{}, sink)
	start := controller.state.StartTime

	offsetAt := func(seconds int) int {
		assert.NoError(t, controller.cycle(start.Add(time.Duration(seconds)*time.Second)))
		return controller.state.ShiftOffset.X
	}

	// THEN the offset advances every 60s and cycles with period 120s
	assert.Equal(t, 0, offsetAt(5))
	assert.Equal(t, 0, offsetAt(55))
	assert.Equal(t, 1, offsetAt(60))
	assert.Equal(t, 1, offsetAt(115))
	assert.Equal(t, 0, offsetAt(120))
	assert.Equal(t, 1, offsetAt(180))
	assert.Equal(t, 0, offsetAt(240))
}

func TestPixelShiftAdvancesWhileDisplayOff(t *testing.T) {
	// GIVEN a display that is periodically off
	config := testConfig()
	config.Display.ScreenTimeout = 0
	config.Display.EnablePeriodicOff = true
	config.Display.PeriodicOnDuration = 10 * time.Second
	config.Display.PeriodicOffDuration = 600 * time.Second
	sink := &MockSink{}
	controller := newTestController(config, &MockSource{}, &MockFan{}, sink)
	start := controller.state.StartTime

	assert.NoError(t, controller.cycle(start.Add(10*time.Second)))
	assert.False(t, controller.state.PeriodicallyOn)

	// WHEN the shift interval elapses while powered down
	assert.NoError(t, controller.cycle(start.Add(70*time.Second)))

	// THEN the shift state advanced anyway
	assert.Equal(t, 1, controller.state.ShiftIndex)
}

func TestDimmedDisplayStillRenders(t *testing.T) {
	// GIVEN a dimmed display that is periodically on
	config := testConfig()
	config.Display.ScreenTimeout = 10 * time.Second
	sink := &MockSink{}
	controller := newTestController(config, &MockSource{}, &MockFan{}, sink)
	start := controller.state.StartTime

	assert.NoError(t, controller.cycle(start.Add(10*time.Second)))
	assert.True(t, controller.state.ScreenDimmed)

	// WHEN another tick passes
	assert.NoError(t, controller.cycle(start.Add(15*time.Second)))

	// THEN rendering continued at minimum brightness
	assert.Len(t, sink.Frames, 2)
}

func TestDimAndPeriodicAreIndependent(t *testing.T) {
	// GIVEN a dimmed display
	config := testConfig()
	config.Display.ScreenTimeout = 10 * time.Second
	config.Display.EnablePeriodicOff = true
	config.Display.PeriodicOnDuration = 60 * time.Second
	config.Display.PeriodicOffDuration = 30 * time.Second
	sink := &MockSink{}
	controller := newTestController(config, &MockSource{}, &MockFan{}, sink)
	start := controller.state.StartTime

	assert.NoError(t, controller.cycle(start.Add(10*time.Second)))
	assert.True(t, controller.state.ScreenDimmed)

	// WHEN the periodic timer elapses
	assert.NoError(t, controller.cycle(start.Add(60*time.Second)))

	// THEN the dimmed display is still fully power cycled
	assert.Equal(t, 1, sink.PowerOffCalls)
	assert.NoError(t, controller.cycle(start.Add(90*time.Second)))
	assert.Equal(t, 1, sink.PowerOnCalls)

	// and the dim latch never resets
	assert.True(t, controller.state.ScreenDimmed)
	assert.Equal(t, []display.Brightness{display.BrightnessDimmest}, sink.BrightnessCalls)
}

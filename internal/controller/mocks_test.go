package controller

import (
	"github.com/poe2go/poe2go/internal/display"
	"github.com/poe2go/poe2go/internal/stats"
)

// recorder is a shared, ordered event log across all mocks of a test.
type recorder struct {
	events []string
}

func (r *recorder) record(event string) {
	r.events = append(r.events, event)
}

type MockFan struct {
	rec *recorder

	OnCalls  int
	OffCalls int

	OnError  error
	OffError error
}

func (fan *MockFan) GetId() string {
	return "mock"
}

func (fan *MockFan) TurnOn() error {
	if fan.rec != nil {
		fan.rec.record("fan.on")
	}
	if fan.OnError != nil {
		return fan.OnError
	}
	fan.OnCalls++
	return nil
}

func (fan *MockFan) TurnOff() error {
	if fan.rec != nil {
		fan.rec.record("fan.off")
	}
	if fan.OffError != nil {
		return fan.OffError
	}
	fan.OffCalls++
	return nil
}

type MockSink struct {
	rec *recorder

	Frames          []display.Frame
	BrightnessCalls []display.Brightness
	PowerOnCalls    int
	PowerOffCalls   int

	RenderError     error
	BrightnessError error
	PowerError      error
}

func (sink *MockSink) Render(frame display.Frame) error {
	if sink.rec != nil {
		sink.rec.record("display.render")
	}
	if sink.RenderError != nil {
		return sink.RenderError
	}
	sink.Frames = append(sink.Frames, frame)
	return nil
}

func (sink *MockSink) SetBrightness(level display.Brightness) error {
	if sink.rec != nil {
		sink.rec.record("display.brightness")
	}
	if sink.BrightnessError != nil {
		return sink.BrightnessError
	}
	sink.BrightnessCalls = append(sink.BrightnessCalls, level)
	return nil
}

func (sink *MockSink) PowerOn() error {
	if sink.rec != nil {
		sink.rec.record("display.on")
	}
	if sink.PowerError != nil {
		return sink.PowerError
	}
	sink.PowerOnCalls++
	return nil
}

func (sink *MockSink) PowerOff() error {
	if sink.rec != nil {
		sink.rec.record("display.off")
	}
	if sink.PowerError != nil {
		return sink.PowerError
	}
	sink.PowerOffCalls++
	return nil
}

type MockSource struct {
	rec *recorder

	// Temps is consumed one value per Sample call, the last value repeats.
	Temps []float64
	calls int

	Snapshot stats.Snapshot
}

func (source *MockSource) Sample() stats.Snapshot {
	if source.rec != nil {
		source.rec.record("stats.sample")
	}
	snapshot := source.Snapshot
	if len(source.Temps) > 0 {
		index := source.calls
		if index >= len(source.Temps) {
			index = len(source.Temps) - 1
		}
		snapshot.CPUTemp = source.Temps[index]
		source.calls++
	}
	return snapshot
}

package display

import "image"

// Brightness maps to the panel's contrast setting.
type Brightness byte

const (
	BrightnessDimmest Brightness = 0x01
	BrightnessDefault Brightness = 0xCF
)

// Frame is one rendered status page. Values are preformatted strings so the
// sink stays a dumb pixel pusher.
type Frame struct {
	IPAddress string
	CPUUsage  string
	CPUTemp   string
	RAMUsage  string
	Hostname  string

	// Offset shifts the whole page by a small pixel amount (anti burn-in).
	Offset image.Point
}

// Sink executes display commands. Implementations talk to real hardware,
// any error is unrecoverable from the caller's point of view.
type Sink interface {
	Render(frame Frame) error
	SetBrightness(level Brightness) error
	PowerOn() error
	PowerOff() error
}

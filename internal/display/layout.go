package display

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DrawFrame renders the status page into img, shifted by frame.Offset.
// Layout depends on the panel height: 128x32 panels get two rows, taller
// panels get the four row layout.
func DrawFrame(img draw.Image, frame Frame) {
	drawer := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: basicfont.Face7x13,
	}

	bounds := img.Bounds()
	line := func(y int, text string) {
		drawer.Dot = fixed.P(bounds.Min.X+frame.Offset.X, bounds.Min.Y+frame.Offset.Y+y)
		drawer.DrawString(text)
	}

	if bounds.Dy() >= 64 {
		line(12, frame.Hostname)
		line(26, frame.IPAddress)
		line(40, fmt.Sprintf("CPU %s%%  %sC", frame.CPUUsage, frame.CPUTemp))
		line(54, fmt.Sprintf("RAM %s%%", frame.RAMUsage))
		return
	}

	line(12, frame.IPAddress)
	line(26, fmt.Sprintf("%s%% %sC %s%%", frame.CPUUsage, frame.CPUTemp, frame.RAMUsage))
}

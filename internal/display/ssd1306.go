package display

import (
	"fmt"
	"image"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3"

	"github.com/poe2go/poe2go/internal/configuration"
	"github.com/poe2go/poe2go/internal/ui"
)

// Raw SSD1306 commands. The periph driver only exposes Halt() for power
// management, so display on/off is sent over the same i2c device.
const (
	i2cCommandPrefix = 0x00
	cmdDisplayOff    = 0xAE
	cmdDisplayOn     = 0xAF
)

// SSD1306Display renders status pages on an i2c SSD1306 OLED.
type SSD1306Display struct {
	config configuration.DisplayConfig

	bus i2c.BusCloser
	dev *ssd1306.Dev
	cmd *i2c.Dev
}

func NewSSD1306Display(config configuration.DisplayConfig) (*SSD1306Display, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}

	bus, err := i2creg.Open(config.I2C.Bus)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %s: %w", config.I2C.Bus, err)
	}

	opts := ssd1306.Opts{
		W:          config.Width,
		H:          config.Height,
		Sequential: true,
	}
	dev, err := ssd1306.NewI2C(bus, &opts)
	if err != nil {
		_ = bus.Close()
		return nil, fmt.Errorf("init ssd1306: %w", err)
	}

	ui.Debug("Initialized SSD1306 %dx%d on i2c bus %s (address 0x%02X)",
		config.Width, config.Height, config.I2C.Bus, config.I2C.Address)

	return &SSD1306Display{
		config: config,
		bus:    bus,
		dev:    dev,
		cmd:    &i2c.Dev{Bus: bus, Addr: config.I2C.Address},
	}, nil
}

func (d *SSD1306Display) Render(frame Frame) error {
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, d.config.Width, d.config.Height))
	DrawFrame(img, frame)

	if err := d.dev.Draw(img.Bounds(), img, image.Point{}); err != nil {
		return fmt.Errorf("ssd1306 draw: %w", err)
	}
	return nil
}

func (d *SSD1306Display) SetBrightness(level Brightness) error {
	if err := d.dev.SetContrast(byte(level)); err != nil {
		return fmt.Errorf("ssd1306 set contrast: %w", err)
	}
	return nil
}

func (d *SSD1306Display) PowerOn() error {
	if err := d.sendCommand(cmdDisplayOn); err != nil {
		return fmt.Errorf("ssd1306 power on: %w", err)
	}
	return nil
}

func (d *SSD1306Display) PowerOff() error {
	if err := d.sendCommand(cmdDisplayOff); err != nil {
		return fmt.Errorf("ssd1306 power off: %w", err)
	}
	return nil
}

func (d *SSD1306Display) sendCommand(command byte) error {
	return d.cmd.Tx([]byte{i2cCommandPrefix, command}, nil)
}

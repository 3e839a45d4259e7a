package fans

import (
	"fmt"

	"github.com/poe2go/poe2go/internal/configuration"
	"github.com/poe2go/poe2go/internal/util"
)

// FileFan writes 0/1 to a sysfs-style control file.
type FileFan struct {
	Config configuration.FanConfig
}

func (fan FileFan) GetId() string {
	return fmt.Sprintf("file/%s", fan.Config.File.Path)
}

func (fan FileFan) TurnOn() error {
	return fan.write(1)
}

func (fan FileFan) TurnOff() error {
	return fan.write(0)
}

func (fan FileFan) write(value int) error {
	err := util.WriteIntToFileAtomic(value, fan.Config.File.Path)
	if err != nil {
		return fmt.Errorf("fan %s: write %d: %w", fan.GetId(), value, err)
	}
	return nil
}

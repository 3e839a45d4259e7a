package stats

import (
	"errors"
	"net"
	"os"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/poe2go/poe2go/internal/configuration"
	"github.com/poe2go/poe2go/internal/ui"
	"github.com/poe2go/poe2go/internal/util"
)

const lookupCmdTimeout = 2 * time.Second

// SystemSource samples the local machine: CPU temperature from sysfs,
// CPU/RAM usage via gopsutil and network identity via native OS APIs
// (optionally overridden by configured commands).
type SystemSource struct {
	Config configuration.SensorConfig
}

func NewSystemSource(config configuration.SensorConfig) *SystemSource {
	return &SystemSource{
		Config: config,
	}
}

func (s *SystemSource) Sample() Snapshot {
	return Snapshot{
		IPAddress: s.ipAddress(),
		Hostname:  s.hostname(),
		CPUTemp:   s.cpuTemp(),
		CPUUsage:  cpuUsage(),
		RAMUsage:  ramUsage(),
	}
}

func (s *SystemSource) cpuTemp() float64 {
	milliDegrees, err := util.ReadIntFromFile(s.Config.TempFile)
	if err != nil {
		ui.Warning("Failed to read CPU temperature: %v", err)
		return 0.0
	}
	return float64(milliDegrees) / 1000.0
}

func cpuUsage() float64 {
	// percentage since the previous call, which is one tick ago
	percentages, err := cpu.Percent(0, false)
	if err != nil || len(percentages) < 1 {
		ui.Warning("Failed to read CPU usage: %v", err)
		return 0.0
	}
	return percentages[0]
}

func ramUsage() float64 {
	virtualMemory, err := mem.VirtualMemory()
	if err != nil {
		ui.Warning("Failed to read memory usage: %v", err)
		return 0.0
	}
	return virtualMemory.UsedPercent
}

func (s *SystemSource) hostname() string {
	if s.Config.HostnameCmd != nil {
		out, err := util.SafeCmdExecution(s.Config.HostnameCmd.Exec, s.Config.HostnameCmd.Args, lookupCmdTimeout)
		if err == nil && len(strings.TrimSpace(out)) > 0 {
			return strings.TrimSpace(out)
		}
		ui.Warning("Hostname command failed, falling back to native lookup")
	}

	name, err := os.Hostname()
	if err != nil {
		ui.Warning("Failed to read hostname: %v", err)
		return PlaceholderHostname
	}
	return name
}

func (s *SystemSource) ipAddress() string {
	if s.Config.IPCmd != nil {
		out, err := util.SafeCmdExecution(s.Config.IPCmd.Exec, s.Config.IPCmd.Args, lookupCmdTimeout)
		if err == nil {
			if fields := strings.Fields(out); len(fields) > 0 {
				return fields[0]
			}
		}
		ui.Warning("IP address command failed, falling back to native lookup")
	}

	address, err := primaryIPv4()
	if err != nil {
		ui.Warning("Failed to determine IP address: %v", err)
		return PlaceholderIP
	}
	return address
}

// primaryIPv4 returns the first global unicast IPv4 address of an interface
// that is up and not a loopback.
func primaryIPv4() (string, error) {
	interfaces, err := net.Interfaces()
	if err != nil {
		return "", err
	}

	for _, iface := range interfaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addresses, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, address := range addresses {
			ipNet, ok := address.(*net.IPNet)
			if !ok {
				continue
			}
			ip := ipNet.IP.To4()
			if ip == nil || !ip.IsGlobalUnicast() {
				continue
			}
			return ip.String(), nil
		}
	}

	return "", errors.New("no usable IPv4 address found")
}

package statistics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const daemonSubsystem = "daemon"

// DaemonCollector exposes the control loop state: fan run state, display
// flags and the tick counter.
type DaemonCollector struct {
	fanRunning     *prometheus.Desc
	displayDimmed  *prometheus.Desc
	displayPowered *prometheus.Desc
	shiftIndex     *prometheus.Desc
	loopTicks      *prometheus.Desc
}

func NewDaemonCollector() *DaemonCollector {
	return &DaemonCollector{
		fanRunning: prometheus.NewDesc(prometheus.BuildFQName(namespace, daemonSubsystem, "fan_running"),
			"1 while the fan is commanded on",
			nil, nil,
		),
		displayDimmed: prometheus.NewDesc(prometheus.BuildFQName(namespace, daemonSubsystem, "display_dimmed"),
			"1 once the display has been dimmed",
			nil, nil,
		),
		displayPowered: prometheus.NewDesc(prometheus.BuildFQName(namespace, daemonSubsystem, "display_powered"),
			"1 while the periodic cycle keeps the display powered",
			nil, nil,
		),
		shiftIndex: prometheus.NewDesc(prometheus.BuildFQName(namespace, daemonSubsystem, "display_shift_index"),
			"Current index into the pixel shift pattern",
			nil, nil,
		),
		loopTicks: prometheus.NewDesc(prometheus.BuildFQName(namespace, daemonSubsystem, "loop_ticks_total"),
			"Number of control loop ticks since process start",
			nil, nil,
		),
	}
}

func (collector *DaemonCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.fanRunning
	ch <- collector.displayDimmed
	ch <- collector.displayPowered
	ch <- collector.shiftIndex
	ch <- collector.loopTicks
}

func (collector *DaemonCollector) Collect(ch chan<- prometheus.Metric) {
	if value, ok := trackedValue(KeyFanRunning); ok {
		ch <- prometheus.MustNewConstMetric(collector.fanRunning, prometheus.GaugeValue, value)
	}
	if value, ok := trackedValue(KeyDisplayDimmed); ok {
		ch <- prometheus.MustNewConstMetric(collector.displayDimmed, prometheus.GaugeValue, value)
	}
	if value, ok := trackedValue(KeyDisplayPowered); ok {
		ch <- prometheus.MustNewConstMetric(collector.displayPowered, prometheus.GaugeValue, value)
	}
	if value, ok := trackedValue(KeyShiftIndex); ok {
		ch <- prometheus.MustNewConstMetric(collector.shiftIndex, prometheus.GaugeValue, value)
	}
	if value, ok := trackedValue(KeyLoopTicksTotal); ok {
		ch <- prometheus.MustNewConstMetric(collector.loopTicks, prometheus.CounterValue, value)
	}
}

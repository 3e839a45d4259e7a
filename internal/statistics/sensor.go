package statistics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const sensorSubsystem = "sensor"

type SensorCollector struct {
	cpuTemp  *prometheus.Desc
	cpuUsage *prometheus.Desc
	ramUsage *prometheus.Desc
}

func NewSensorCollector() *SensorCollector {
	return &SensorCollector{
		cpuTemp: prometheus.NewDesc(prometheus.BuildFQName(namespace, sensorSubsystem, "cpu_temperature_celsius"),
			"CPU temperature of the last sample",
			nil, nil,
		),
		cpuUsage: prometheus.NewDesc(prometheus.BuildFQName(namespace, sensorSubsystem, "cpu_usage_percent"),
			"CPU usage of the last sample",
			nil, nil,
		),
		ramUsage: prometheus.NewDesc(prometheus.BuildFQName(namespace, sensorSubsystem, "ram_usage_percent"),
			"RAM usage of the last sample",
			nil, nil,
		),
	}
}

func (collector *SensorCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.cpuTemp
	ch <- collector.cpuUsage
	ch <- collector.ramUsage
}

func (collector *SensorCollector) Collect(ch chan<- prometheus.Metric) {
	if value, ok := trackedValue(KeyCPUTemp); ok {
		ch <- prometheus.MustNewConstMetric(collector.cpuTemp, prometheus.GaugeValue, value)
	}
	if value, ok := trackedValue(KeyCPUUsage); ok {
		ch <- prometheus.MustNewConstMetric(collector.cpuUsage, prometheus.GaugeValue, value)
	}
	if value, ok := trackedValue(KeyRAMUsage); ok {
		ch <- prometheus.MustNewConstMetric(collector.ramUsage, prometheus.GaugeValue, value)
	}
}

package statistics

import "github.com/prometheus/client_golang/prometheus"

const (
	namespace = "poe2go"
)

func Register(collector prometheus.Collector) {
	prometheus.MustRegister(collector)
}

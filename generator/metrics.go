package generator

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	generatorConstructions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "randcore_generator_constructions",
			Help: "Number of backend constructions performed by registries (per generator kind).",
		},
		[]string{"kind"},
	)
	generatorCollectors = []prometheus.Collector{
		generatorConstructions,
	}

	metricsOnce sync.Once
)

func initMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(generatorCollectors...)
	})
}

package sampler

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	samplerDraws = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "randcore_sampler_draws",
			Help: "Number of raw draws taken from the underlying sources.",
		},
	)
	samplerRejections = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "randcore_sampler_rejections",
			Help: "Number of raw draws rejected to keep bounded reductions unbiased.",
		},
	)
	samplerCollectors = []prometheus.Collector{
		samplerDraws,
		samplerRejections,
	}

	metricsOnce sync.Once
)

func initMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(samplerCollectors...)
	})
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RequestDuration tracks handler elapsed time in milliseconds, labeled by
// endpoint. The search endpoint observes into this on every request.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "grihome_request_duration_ms",
		Help:    "Elapsed handler time in milliseconds.",
		Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	},
	[]string{"endpoint"},
)

// Observe records one elapsed-time sample for an endpoint label.
func Observe(endpoint string, elapsedMs float64) {
	RequestDuration.WithLabelValues(endpoint).Observe(elapsedMs)
}

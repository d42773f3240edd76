package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slbecon_requests_total",
			Help: "Total number of HTTP requests per route and status code",
		},
		[]string{"path", "code"},
	)

	RequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "slbecon_request_duration_seconds",
			Help:    "HTTP request duration in seconds per route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)

	ComparisonsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slbecon_comparisons_total",
			Help: "Total number of comparison runs per variant",
		},
		[]string{"variant"},
	)

	UndefinedMetricsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slbecon_undefined_metrics_total",
			Help: "Metrics that could not be computed (IRR, payback, crossover) per scenario",
		},
		[]string{"scenario", "metric"},
	)
)

// ObserveComparison records one run and which of its metrics came out undefined.
func ObserveComparison(variant string, undefined map[string][]string) {
	ComparisonsTotal.WithLabelValues(variant).Inc()
	for scenario, names := range undefined {
		for _, m := range names {
			UndefinedMetricsTotal.WithLabelValues(scenario, m).Inc()
		}
	}
}

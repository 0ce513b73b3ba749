package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the atlas
// pipeline and its HTTP API.
type Metrics struct {
	CellsGenerated prometheus.Counter
	CellsDiscarded prometheus.Counter
	CellsScored    prometheus.Counter

	PipelineDuration prometheus.Histogram

	HTTPRequests *prometheus.CounterVec // labels: path, status
}

// NewMetrics creates and registers all metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.CellsGenerated,
		m.CellsDiscarded,
		m.CellsScored,
		m.PipelineDuration,
		m.HTTPRequests,
	)
	return m
}

// NewMetricsForTesting creates Metrics without touching the default
// registry, avoiding "already registered" panics across tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		CellsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "geoh2",
			Name:      "cells_generated_total",
			Help:      "Total grid cells produced by the generator.",
		}),
		CellsDiscarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "geoh2",
			Name:      "cells_discarded_total",
			Help:      "Total candidate cells dropped for invalid geometry.",
		}),
		CellsScored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "geoh2",
			Name:      "cells_scored_total",
			Help:      "Total cells run through the cost scorer.",
		}),
		PipelineDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "geoh2",
			Name:      "pipeline_duration_seconds",
			Help:      "Duration of a complete generate-and-score run.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "geoh2",
			Name:      "http_requests_total",
			Help:      "API requests by path and status code.",
		}, []string{"path", "status"}),
	}
}

// Package metrics defines Prometheus metrics for grid searches.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values.
const (
	OutcomeFound      = "found"
	OutcomeNoSolution = "no_solution"
)

// Metrics groups the search collectors on a private registry, so several
// instances (one per test, say) never collide on registration.
type Metrics struct {
	registry *prometheus.Registry

	SearchesTotal  *prometheus.CounterVec
	Expansions     *prometheus.HistogramVec
	PeakFrontier   *prometheus.HistogramVec
	SearchDuration *prometheus.HistogramVec
}

// New creates and registers the search collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		SearchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gridpath_searches_total",
				Help: "Total searches by algorithm and outcome",
			},
			[]string{"algorithm", "outcome"},
		),
		Expansions: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gridpath_search_expansions",
				Help:    "Cells expanded per search",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
			[]string{"algorithm"},
		),
		PeakFrontier: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gridpath_search_peak_frontier",
				Help:    "Largest frontier size per search",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
			[]string{"algorithm"},
		),
		SearchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gridpath_search_duration_seconds",
				Help:    "Search wall-clock time in seconds",
				Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
			},
			[]string{"algorithm"},
		),
	}
	m.registry.MustRegister(m.SearchesTotal, m.Expansions, m.PeakFrontier, m.SearchDuration)

	return m
}

// Observe records one finished search.
func (m *Metrics) Observe(algorithm string, found bool, expanded, peakFrontier int, elapsed time.Duration) {
	outcome := OutcomeNoSolution
	if found {
		outcome = OutcomeFound
	}
	m.SearchesTotal.WithLabelValues(algorithm, outcome).Inc()
	m.Expansions.WithLabelValues(algorithm).Observe(float64(expanded))
	m.PeakFrontier.WithLabelValues(algorithm).Observe(float64(peakFrontier))
	m.SearchDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry as a Gatherer.
func (m *Metrics) Registry() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes every collected sample to path in the Prometheus text
// exposition format, replacing the file atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}

// Package metrics defines the Prometheus metrics exported by MLHub.
package metrics

import (
	"net/http"
	"slices"

	"github.com/dalemusser/mlhub/internal/domain/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// Namespace prefixes every MLHub metric.
	Namespace = "mlhub"

	subsystemSearch = "search"
	subsystemHost   = "host"

	// labelOther replaces label values outside the known vocabulary.
	labelOther = "other"
)

// Metrics holds the search and host-event collectors. A nil *Metrics is
// valid and records nothing, which is how metrics_enabled=false is served.
type Metrics struct {
	SearchRequests    *prometheus.CounterVec
	SearchResults     prometheus.Histogram
	SearchZeroResults *prometheus.CounterVec
	HostEvents        *prometheus.CounterVec
}

// New creates and registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		SearchRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: subsystemSearch,
				Name:      "requests_total",
				Help:      "Search requests by entry point and sort key",
			},
			[]string{"entry", "sort"},
		),
		SearchResults: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Subsystem: subsystemSearch,
				Name:      "results",
				Help:      "Number of results returned per search",
				Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
			},
		),
		SearchZeroResults: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: subsystemSearch,
				Name:      "zero_results_total",
				Help:      "Searches that returned no results, by entry point",
			},
			[]string{"entry"},
		),
		HostEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: subsystemHost,
				Name:      "events_total",
				Help:      "Installable-app host events by type",
			},
			[]string{"type"},
		),
	}
}

// ObserveSearch records one search. Sort keys outside the vocabulary are
// counted as "other".
func (m *Metrics) ObserveSearch(entry string, sort models.SortKey, results int) {
	if m == nil {
		return
	}
	sortLabel := string(sort)
	if !slices.Contains(models.SortKeys, sort) {
		sortLabel = labelOther
	}
	m.SearchRequests.WithLabelValues(entry, sortLabel).Inc()
	m.SearchResults.Observe(float64(results))
	if results == 0 {
		m.SearchZeroResults.WithLabelValues(entry).Inc()
	}
}

// ObserveHostEvent counts one host event.
func (m *Metrics) ObserveHostEvent(kind string) {
	if m == nil {
		return
	}
	m.HostEvents.WithLabelValues(kind).Inc()
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

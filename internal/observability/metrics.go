package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// comparison service.
type Metrics struct {
	ComparisonsTotal    prometheus.Counter
	ComparisonDuration  prometheus.Histogram
	ComparisonsInFlight prometheus.Gauge

	// Upstream fetch metrics.
	FetchRequests *prometheus.CounterVec // labels: outcome={success,error,empty}
	FetchDuration prometheus.Histogram
	CacheLookups  *prometheus.CounterVec // labels: result={hit,miss,expired}

	// Data quality metrics.
	IndicatorUnavailable *prometheus.CounterVec // labels: indicator
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		ComparisonsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "country_compare",
			Name:      "comparisons_total",
			Help:      "Total comparison invocations served.",
		}),
		ComparisonDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "country_compare",
			Name:      "comparison_duration_seconds",
			Help:      "Duration of a complete fetch-and-compare cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		ComparisonsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "country_compare",
			Name:      "comparisons_in_flight",
			Help:      "Comparisons currently being computed.",
		}),
		FetchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "country_compare",
			Name:      "fetch_requests_total",
			Help:      "Upstream indicator fetches by outcome.",
		}, []string{"outcome"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "country_compare",
			Name:      "fetch_duration_seconds",
			Help:      "Upstream indicator API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "country_compare",
			Name:      "cache_total",
			Help:      "Indicator cache lookups by result.",
		}, []string{"result"}),
		IndicatorUnavailable: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "country_compare",
			Name:      "indicator_unavailable_total",
			Help:      "Comparison cells that resolved to N/A, by indicator.",
		}, []string{"indicator"}),
	}

	prometheus.MustRegister(
		m.ComparisonsTotal,
		m.ComparisonDuration,
		m.ComparisonsInFlight,
		m.FetchRequests,
		m.FetchDuration,
		m.CacheLookups,
		m.IndicatorUnavailable,
	)

	return m
}

// NewMetricsForTesting creates Metrics without touching the default registry
// to avoid "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		ComparisonsTotal:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "country_compare", Name: "comparisons_total"}),
		ComparisonDuration:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "country_compare", Name: "comparison_duration_seconds"}),
		ComparisonsInFlight:  prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "country_compare", Name: "comparisons_in_flight"}),
		FetchRequests:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "country_compare", Name: "fetch_requests_total"}, []string{"outcome"}),
		FetchDuration:        prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "country_compare", Name: "fetch_duration_seconds"}),
		CacheLookups:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "country_compare", Name: "cache_total"}, []string{"result"}),
		IndicatorUnavailable: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "country_compare", Name: "indicator_unavailable_total"}, []string{"indicator"}),
	}
}

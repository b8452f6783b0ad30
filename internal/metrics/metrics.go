package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the engine's prometheus collectors. A nil *Metrics is valid
// and turns every record call into a no-op, so the engine can run unwired.
type Metrics struct {
	resolutionsTotal *prometheus.CounterVec
	cacheLookups     *prometheus.CounterVec
	corrections      *prometheus.CounterVec
	verdictsTotal    *prometheus.CounterVec
	sourceDuration   prometheus.Histogram
}

// New registers the engine collectors on the default registry.
func New() *Metrics {
	return &Metrics{
		resolutionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "year_range_resolutions_total",
				Help: "Total year-range resolutions grouped by source tier",
			},
			[]string{"tier"},
		),
		cacheLookups: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "year_range_cache_lookups_total",
				Help: "Cache lookups grouped by outcome",
			},
			[]string{"outcome"},
		),
		corrections: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fuzzy_corrections_total",
				Help: "Fuzzy corrections applied grouped by field",
			},
			[]string{"field"},
		),
		verdictsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "validation_verdicts_total",
				Help: "Validation verdicts grouped by outcome",
			},
			[]string{"outcome"},
		),
		sourceDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "live_source_request_duration_milliseconds",
				Help:    "Live source request duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
	}
}

// RecordResolution counts one completed resolution for a tier.
func (m *Metrics) RecordResolution(tier string) {
	if m == nil {
		return
	}
	m.resolutionsTotal.WithLabelValues(tier).Inc()
}

// RecordCacheLookup counts a cache hit or miss.
func (m *Metrics) RecordCacheLookup(hit bool) {
	if m == nil {
		return
	}
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	m.cacheLookups.WithLabelValues(outcome).Inc()
}

// RecordCorrection counts a fuzzy correction on a field ("brand" or "model").
func (m *Metrics) RecordCorrection(field string) {
	if m == nil {
		return
	}
	m.corrections.WithLabelValues(field).Inc()
}

// RecordVerdict counts a validation outcome ("valid" or "invalid").
func (m *Metrics) RecordVerdict(valid bool) {
	if m == nil {
		return
	}
	outcome := "invalid"
	if valid {
		outcome = "valid"
	}
	m.verdictsTotal.WithLabelValues(outcome).Inc()
}

// ObserveSourceDuration records a live source request duration.
func (m *Metrics) ObserveSourceDuration(ms float64) {
	if m == nil {
		return
	}
	m.sourceDuration.Observe(ms)
}

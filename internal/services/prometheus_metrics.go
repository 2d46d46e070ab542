package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	ledgerWritesTotal         *prometheus.CounterVec
	aggregationRequestsTotal  *prometheus.CounterVec
	aggregationDuration       prometheus.Histogram
	exportsTotal              *prometheus.CounterVec
	authenticationEventsTotal *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		ledgerWritesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_writes_total",
				Help: "Total number of ledger write operations",
			},
			[]string{"operation", "type"},
		),
		aggregationRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aggregation_requests_total",
				Help: "Total number of summary and category stat aggregations",
			},
			[]string{"kind"},
		),
		aggregationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "aggregation_duration_milliseconds",
				Help:    "Aggregation query duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		exportsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exports_total",
				Help: "Total number of report exports",
			},
			[]string{"kind"},
		),
		authenticationEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "ledger_write":
		m.ledgerWritesTotal.WithLabelValues(tags["operation"], tags["type"]).Inc()
	case "aggregation_request":
		if kind := tags["kind"]; kind != "" {
			m.aggregationRequestsTotal.WithLabelValues(kind).Inc()
		}
	case "export":
		if kind := tags["kind"]; kind != "" {
			m.exportsTotal.WithLabelValues(kind).Inc()
		}
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "aggregation.summary", "aggregation.category_stats":
		m.aggregationDuration.Observe(float64(duration.Milliseconds()))
	}
}

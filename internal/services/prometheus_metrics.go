package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	classificationsTotal *prometheus.CounterVec
	needsReviewTotal     prometheus.Counter
	overridesTotal       *prometheus.CounterVec
	batchItemsTotal      *prometheus.CounterVec
	batchDuration        prometheus.Histogram
	importsTotal         *prometheus.CounterVec
	importRowsTotal      *prometheus.CounterVec
	importDuration       prometheus.Histogram
	syncsTotal           *prometheus.CounterVec
	syncDuration         prometheus.Histogram
	recurringDetected    prometheus.Counter
	circuitBreakerState  *prometheus.GaugeVec
	reviewQueueSize      prometheus.Gauge
}

// NewPrometheusMetrics registers the collectors with the default registry,
// so it must be called once per process.
func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		classificationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "classifications_total",
				Help: "Total number of transactions classified by provenance",
			},
			[]string{"source"},
		),
		needsReviewTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "classifications_needs_review_total",
				Help: "Total number of classified transactions flagged for review",
			},
		),
		overridesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "classification_overrides_total",
				Help: "Total number of user corrections by kind",
			},
			[]string{"kind"},
		),
		batchItemsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "batch_classification_items_total",
				Help: "Total number of batch reclassification items by outcome",
			},
			[]string{"status"},
		),
		batchDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "batch_classification_duration_milliseconds",
				Help:    "Batch reclassification duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		importsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "imports_total",
				Help: "Total number of file imports",
			},
			[]string{"format", "status"},
		),
		importRowsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "import_rows_total",
				Help: "Total number of imported rows by outcome",
			},
			[]string{"outcome"},
		),
		importDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "import_duration_milliseconds",
				Help:    "File import duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		syncsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aggregator_syncs_total",
				Help: "Total number of aggregator item syncs",
			},
			[]string{"status"},
		),
		syncDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "aggregator_sync_duration_seconds",
				Help:    "Aggregator item sync duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		recurringDetected: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "recurring_merchants_detected_total",
				Help: "Total number of recurring merchants created by auto-detection",
			},
		),
		circuitBreakerState: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		reviewQueueSize: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "review_queue_size",
				Help: "Size of the last review queue served",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "classification.completed":
		m.classificationsTotal.WithLabelValues(tags["source"]).Inc()
	case "classification.needs_review":
		m.needsReviewTotal.Inc()
	case "classification.override":
		m.overridesTotal.WithLabelValues(tags["kind"]).Inc()
	case "batch.item":
		if status != "" {
			m.batchItemsTotal.WithLabelValues(status).Inc()
		}
	case "import.completed":
		m.importsTotal.WithLabelValues(tags["format"], status).Inc()
	case "import.rows":
		m.importRowsTotal.WithLabelValues(tags["outcome"]).Inc()
	case "sync.completed":
		if status != "" {
			m.syncsTotal.WithLabelValues(status).Inc()
		}
	case "recurring.detected":
		m.recurringDetected.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "batch.duration":
		m.batchDuration.Observe(float64(duration.Milliseconds()))
	case "import.duration":
		m.importDuration.Observe(float64(duration.Milliseconds()))
	case "sync.duration":
		m.syncDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "circuit_breaker.state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case "review_queue.size":
		m.reviewQueueSize.Set(value)
	case "import.rows":
		if outcome := tags["outcome"]; outcome != "" {
			m.importRowsTotal.WithLabelValues(outcome).Add(value)
		}
	}
}

// NoopMetrics discards every measurement; used by the CLI and tests
type NoopMetrics struct{}

func (NoopMetrics) IncrementCounter(string, map[string]string) {}
func (NoopMetrics) RecordProcessingTime(string, time.Duration) {}
func (NoopMetrics) RecordGauge(string, float64, map[string]string) {}

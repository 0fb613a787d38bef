// Package metrics provides Prometheus metrics for dive-media.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "divemedia"

var (
	// MemoLookups counts result memo lookups.
	MemoLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "memo_lookups_total",
			Help:      "Responsive image memo lookups by result (hit, miss, shared)",
		},
		[]string{"result"},
	)

	// PipelineRuns counts pipeline executions by outcome.
	PipelineRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pipeline_runs_total",
			Help:      "Responsive image pipeline runs by outcome",
		},
		[]string{"outcome"},
	)

	// PipelineDuration measures a full pipeline run.
	PipelineDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pipeline_duration_seconds",
			Help:      "Duration of responsive image pipeline runs in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)

	// OriginFetches counts source image downloads.
	OriginFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "origin_fetches_total",
			Help:      "Origin image fetches by status",
		},
		[]string{"status"},
	)

	// OriginBytes observes downloaded original sizes.
	OriginBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "origin_bytes",
			Help:      "Size of fetched origin images in bytes",
			Buckets:   prometheus.ExponentialBuckets(16*1024, 4, 7),
		},
	)

	// Uploads counts original uploads to object storage.
	Uploads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "original_uploads_total",
			Help:      "Original uploads by outcome (uploaded, exists, conflict, error)",
		},
		[]string{"outcome"},
	)

	// ProbeVerdicts counts transform support verdicts by source.
	ProbeVerdicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transform_probe_verdicts_total",
			Help:      "Transform support verdicts by source (memory, redis, probe) and result",
		},
		[]string{"source", "supported"},
	)

	// Placeholders counts placeholder generation attempts.
	Placeholders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "placeholders_total",
			Help:      "Placeholder generation by status",
		},
		[]string{"status"},
	)

	// ErrorsTotal counts errors by operation and type.
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Total number of errors",
		},
		[]string{"operation", "error_type"},
	)
)

// RecordPipeline records one pipeline run.
func RecordPipeline(outcome string, seconds float64) {
	PipelineRuns.WithLabelValues(outcome).Inc()
	PipelineDuration.WithLabelValues(outcome).Observe(seconds)
}

// RecordMemo records a memo lookup.
func RecordMemo(result string) {
	MemoLookups.WithLabelValues(result).Inc()
}

// RecordOriginFetch records an origin download and, on success, its size.
func RecordOriginFetch(status string, size int) {
	OriginFetches.WithLabelValues(status).Inc()
	if size > 0 {
		OriginBytes.Observe(float64(size))
	}
}

// RecordUpload records an upload outcome.
func RecordUpload(outcome string) {
	Uploads.WithLabelValues(outcome).Inc()
}

// RecordVerdict records a transform support verdict.
func RecordVerdict(source string, supported bool) {
	label := "false"
	if supported {
		label = "true"
	}
	ProbeVerdicts.WithLabelValues(source, label).Inc()
}

// RecordPlaceholder records a placeholder attempt.
func RecordPlaceholder(status string) {
	Placeholders.WithLabelValues(status).Inc()
}

// RecordError records an error.
func RecordError(operation, errorType string) {
	ErrorsTotal.WithLabelValues(operation, errorType).Inc()
}

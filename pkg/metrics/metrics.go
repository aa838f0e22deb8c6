package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Global metrics, registered on the default registry through promauto.

var (
	// HttpRequestsTotal counts requests by method, path and status code.
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lexikit_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	// HttpRequestDuration measures server response time.
	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lexikit_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	// PipelineDuration times calls into the tagger and the stemmer.
	PipelineDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lexikit_pipeline_duration_seconds",
			Help:    "Duration of NLP pipeline operations in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"operation"},
	)

	// PipelineErrors counts failures of the external NLP components.
	PipelineErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lexikit_pipeline_errors_total",
			Help: "Total number of NLP pipeline failures",
		},
		[]string{"operation"},
	)

	// ComparisonRecords counts emitted comparison rows by classification.
	ComparisonRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lexikit_comparison_records_total",
			Help: "Total number of lemma/stem comparison records produced",
		},
		[]string{"difference"},
	)
)

// Package observability exposes Prometheus metrics for the request pipeline.
package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "askdb_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "askdb_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	validationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "askdb_validations_total",
			Help: "Question validation outcomes.",
		},
		[]string{"outcome"},
	)

	translationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "askdb_translations_total",
			Help: "SQL translation outcomes.",
		},
		[]string{"outcome"},
	)

	guardRejectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "askdb_guard_rejections_total",
			Help: "Candidate statements rejected by the safety gate.",
		},
		[]string{"reason"},
	)

	executionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "askdb_query_executions_total",
			Help: "SQL execution outcomes against the embedded store.",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDurationSeconds,
		validationsTotal,
		translationsTotal,
		guardRejectionsTotal,
		executionsTotal,
	)
}

// RecordValidation counts a validation outcome: accepted, rejected or failed.
func RecordValidation(outcome string) {
	validationsTotal.WithLabelValues(outcome).Inc()
}

// RecordTranslation counts a translation outcome: ok or failed.
func RecordTranslation(outcome string) {
	translationsTotal.WithLabelValues(outcome).Inc()
}

// RecordGuardRejection counts a safety-gate rejection by reason:
// destructive, multi_statement or injection.
func RecordGuardRejection(reason string) {
	guardRejectionsTotal.WithLabelValues(reason).Inc()
}

// RecordExecution counts an execution outcome: ok or failed.
func RecordExecution(outcome string) {
	executionsTotal.WithLabelValues(outcome).Inc()
}

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	leadsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_ingested_total",
			Help: "Leads accepted by the ingestion normalizer",
		},
		[]string{"source"}, // refresh | import
	)

	leadsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_skipped_total",
			Help: "Raw records rejected for having no usable id",
		},
		[]string{"source"},
	)

	reconciliations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_reconciliations_total",
			Help: "Single-lead reconciliations by outcome",
		},
		[]string{"outcome"}, // committed | rejected
	)

	bulkAssignments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bulk_assignments_total",
			Help: "Bulk assignment submissions by outcome",
		},
		[]string{"outcome"},
	)

	followUpEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "followup_events_total",
			Help: "Follow-up events derived, by bucket",
		},
		[]string{"bucket"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordIngestion(source string, ingested, skipped int) {
	leadsIngested.WithLabelValues(source).Add(float64(ingested))
	leadsSkipped.WithLabelValues(source).Add(float64(skipped))
}

func RecordReconciliation(outcome string) {
	reconciliations.WithLabelValues(outcome).Inc()
}

func RecordBulkAssignment(outcome string) {
	bulkAssignments.WithLabelValues(outcome).Inc()
}

func RecordFollowUpEvent(bucket string) {
	followUpEvents.WithLabelValues(bucket).Inc()
}

// Package metrics holds the Prometheus collectors shared by the API and workers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vehicle_assess"

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		},
	)
)

// Business Metrics
var (
	BookingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Total number of bookings created",
		},
	)

	WebhookEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_events_total",
			Help:      "Webhook callbacks received by source, event type and outcome",
		},
		[]string{"source", "type", "outcome"},
	)

	AnalysesFinished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vehicle_analyses_finished_total",
			Help:      "Vehicle analyses that reached a terminal status",
		},
		[]string{"status"},
	)

	LLMRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "llm_request_duration_seconds",
			Help:      "Latency of LLM provider calls",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 60},
		},
		[]string{"operation", "outcome"},
	)

	ThrottledRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "throttled_requests_total",
			Help:      "Requests rejected by the rate limiter",
		},
		[]string{"scope"},
	)

	QueueMessagesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queue_messages_processed_total",
			Help:      "Queue messages handled by workers",
		},
		[]string{"queue", "type", "outcome"},
	)
)

// Outcome returns the label value for an operation result
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// EventType bounds a caller supplied event type to the known set. Anything
// else is counted as "other".
func EventType(eventType string, known ...string) string {
	for _, k := range known {
		if eventType == k {
			return eventType
		}
	}
	return "other"
}

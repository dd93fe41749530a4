package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	metricsOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tour_booking",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status.",
		},
		[]string{"method", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tour_booking",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
		},
		[]string{"method"},
	)

	webhookFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tour_booking",
			Name:      "webhook_checkout_failures_total",
			Help:      "Checkout webhook events that verified but could not be resolved into a booking.",
		},
	)
)

// RegisterMetrics registers Prometheus metrics. Safe to call multiple times.
func RegisterMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, webhookFailures)
	})
}

// IncWebhookFailure counts a swallowed webhook resolution failure.
func IncWebhookFailure() {
	webhookFailures.Inc()
}

// Metrics middleware
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		httpRequests.WithLabelValues(r.Method, strconv.Itoa(rw.statusCode)).Inc()
		httpDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
	})
}

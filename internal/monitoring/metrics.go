package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Proxy surface metrics
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_requests_total",
			Help: "Total number of proxy requests served",
		},
		[]string{"endpoint", "status"},
	)

	// Upstream metrics
	upstreamLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_upstream_latency_seconds",
			Help:    "Latency of calls to the exchange API",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)

	upstreamErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_upstream_errors_total",
			Help: "Total number of failed upstream calls",
		},
		[]string{"operation"},
	)

	rateFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_rate_fallbacks_total",
			Help: "Times the THB rate source failed and the fallback rate was used",
		},
	)
)

func init() {
	// Register metrics
	prometheus.MustRegister(requestsTotal)
	prometheus.MustRegister(upstreamLatency)
	prometheus.MustRegister(upstreamErrorsTotal)
	prometheus.MustRegister(rateFallbacksTotal)
}

// Handler returns the Prometheus metrics endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordRequest records a served proxy request
func RecordRequest(endpoint string, status int) {
	requestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
}

// ObserveUpstreamLatency records the duration of an upstream call
func ObserveUpstreamLatency(path string, d time.Duration) {
	upstreamLatency.WithLabelValues(path).Observe(d.Seconds())
}

// RecordUpstreamError records a failed upstream call
func RecordUpstreamError(operation string) {
	upstreamErrorsTotal.WithLabelValues(operation).Inc()
}

// RecordRateFallback records a THB rate source failure
func RecordRateFallback() {
	rateFallbacksTotal.Inc()
}

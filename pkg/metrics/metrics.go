package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "club_site"

// Rejection reasons for public form submissions.
const (
	ReasonRateLimited = "rate_limited"
	ReasonLockHeld    = "lock_held"
)

var (
	// Registry holds every collector of this service; /metrics serves it.
	Registry = prometheus.NewRegistry()

	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	RejectedSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_submissions_total",
			Help:      "Public form submissions refused before persistence",
		},
		[]string{"form", "reason"},
	)

	// ContentRecords is refreshed periodically from the dashboard counts.
	ContentRecords = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "content_records",
			Help:      "Stored records per collection and scope",
		},
		[]string{"collection", "scope"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		RequestCounter,
		RequestDuration,
		RejectedSubmissions,
		ContentRecords,
	)
}

// ObserveRequest records one finished HTTP request. route is the matched
// route template so ids never become label values.
func ObserveRequest(method, route string, status int, latency time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	code := strconv.Itoa(status)
	RequestCounter.WithLabelValues(method, route, code).Inc()
	RequestDuration.WithLabelValues(method, route, code).Observe(latency.Seconds())
}

func RecordRejection(form, reason string) {
	RejectedSubmissions.WithLabelValues(form, reason).Inc()
}

func SetContentRecords(collection, scope string, n int64) {
	ContentRecords.WithLabelValues(collection, scope).Set(float64(n))
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

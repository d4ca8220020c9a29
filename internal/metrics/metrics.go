package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitbook_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitbook_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	SignupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitbook_signups_total",
			Help: "Signup attempts by outcome",
		},
		[]string{"outcome"},
	)

	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitbook_logins_total",
			Help: "Login attempts by outcome",
		},
		[]string{"outcome"},
	)

	ClassesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitbook_classes_created_total",
			Help: "Total number of fitness classes created",
		},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitbook_bookings_total",
			Help: "Booking attempts by outcome",
		},
		[]string{"outcome"},
	)

	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitbook_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"store"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordSignup(outcome string) {
	SignupsTotal.WithLabelValues(outcome).Inc()
}

func RecordLogin(outcome string) {
	LoginsTotal.WithLabelValues(outcome).Inc()
}

func RecordClassCreated() {
	ClassesCreatedTotal.Inc()
}

func RecordBooking(outcome string) {
	BookingsTotal.WithLabelValues(outcome).Inc()
}

func RecordRateLimited(store string) {
	RateLimitedTotal.WithLabelValues(store).Inc()
}

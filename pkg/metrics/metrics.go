package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for FormSubmissions.
const (
	OutcomeInvalid  = "invalid"  // rejected by field validation, never submitted
	OutcomeRejected = "rejected" // backend answered success=false
	OutcomeAccepted = "accepted"
	OutcomeFailed   = "failed" // transport or status failure
)

// FormSubmissions counts login and signup attempts by outcome.
var FormSubmissions = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "authforms_form_submissions_total",
		Help: "Total number of login and signup submissions",
	},
	[]string{"form", "outcome"},
)

// StrengthChecks counts live password strength classifications by label.
var StrengthChecks = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "authforms_strength_checks_total",
		Help: "Total number of password strength classifications",
	},
	[]string{"strength"},
)

// APIDuration observes how long the accounts API took per endpoint.
var APIDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "authforms_api_duration_seconds",
		Help:    "Accounts API request duration in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// RateLimited counts submissions refused by the rate limiter, by route.
var RateLimited = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "authforms_rate_limited_total",
		Help: "Total number of submissions refused by the rate limiter",
	},
	[]string{"route"},
)

// RegisterMetrics registers the package collectors with reg.
// Panics if registration fails (following prometheus convention).
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(FormSubmissions, StrengthChecks, APIDuration, RateLimited)
}

func RecordSubmission(form, outcome string) {
	FormSubmissions.WithLabelValues(form, outcome).Inc()
}

func RecordStrength(label string) {
	StrengthChecks.WithLabelValues(label).Inc()
}

func RecordAPIDuration(endpoint string, d time.Duration) {
	APIDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

func RecordRateLimited(route string) {
	RateLimited.WithLabelValues(route).Inc()
}

// Handler serves reg in the Prometheus text format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

package mymetrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeCreated       = "created"
	OutcomeInvalidAmount = "invalid_amount"
	OutcomeNotConfigured = "not_configured"
	OutcomeProviderError = "provider_error"
)

func init() {
	prometheus.MustRegister(
		checkoutSessionsTotal,
		providerLatencySeconds,
		planSelectionsTotal,
	)
}

var (
	checkoutSessionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_sessions_total",
			Help: "Checkout session requests by outcome (created/invalid_amount/not_configured/provider_error).",
		},
		[]string{"outcome"},
	)

	providerLatencySeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "checkout_provider_latency_seconds",
			Help:    "Latency of the call that creates a session at the payment provider.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 16},
		},
		[]string{"success"},
	)

	planSelectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_plan_selections_total",
			Help: "Plans chosen on the pricing page, labeled by plan and locale.",
		},
		[]string{"plan", "locale"},
	)
)

func IncCheckoutSession(outcome string) {
	checkoutSessionsTotal.WithLabelValues(norm(outcome)).Inc()
}

func ObserveProviderLatency(elapsed time.Duration, success bool) {
	providerLatencySeconds.WithLabelValues(strconv.FormatBool(success)).Observe(elapsed.Seconds())
}

func IncPlanSelection(plan string, locale string) {
	planSelectionsTotal.WithLabelValues(norm(plan), norm(locale)).Inc()
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

func norm(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "unknown"
	}
	return s
}

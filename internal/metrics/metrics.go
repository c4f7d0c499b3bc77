// Package metrics provides Prometheus metrics for the web front-end: inbound
// request counts/latency and upstream fetch outcomes.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Upstream fetch outcome labels
const (
	OutcomeOK             = "ok"
	OutcomeTransportError = "transport_error"
	OutcomeBadStatus      = "bad_status"
	OutcomeDecodeError    = "decode_error"
	OutcomeUpstreamError  = "upstream_error"
)

// Custom registry to avoid the default Go collectors
var registry = prometheus.NewRegistry()

var (
	httpRequests = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "deezer_web",
			Name:      "http_requests_total",
			Help:      "Total inbound HTTP requests by route and status code.",
		},
		[]string{"route", "status"},
	)

	httpRequestDuration = promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "deezer_web",
			Name:      "http_request_duration_seconds",
			Help:      "Inbound HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	upstreamRequests = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "deezer_web",
			Name:      "upstream_requests_total",
			Help:      "Total upstream API fetches by outcome.",
		},
		[]string{"outcome"},
	)

	upstreamDuration = promauto.With(registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "deezer_web",
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream API fetch latency.",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

// ObserveRequest records one handled inbound request
func ObserveRequest(route string, status int, duration time.Duration) {
	httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// ObserveUpstream records one upstream fetch with its classified outcome
func ObserveUpstream(outcome string, duration time.Duration) {
	upstreamRequests.WithLabelValues(outcome).Inc()
	upstreamDuration.Observe(duration.Seconds())
}

// Handler returns the exposition endpoint for the private registry
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

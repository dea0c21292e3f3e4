// Package metrics defines and registers all custom Prometheus metrics for
// the LanhCare admin gateway. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lanhcare"

// ── Upstream metrics ─────────────────────────────────────────────────────────

// UpstreamRequestsTotal counts calls made to the LanhCare backend.
// Labels:
//   - resource: backend resource touched (e.g. "users", "posts", "auth")
//   - method: HTTP method
//   - outcome: "ok", "unauthorized", "forbidden", "rejected",
//     "server_error" or "transport_error"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests issued to the LanhCare backend.",
	},
	[]string{"resource", "method", "outcome"},
)

// UpstreamRequestDuration measures end-to-end upstream call latency.
// Label:
//   - resource: backend resource touched
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of LanhCare backend calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"resource"},
)

// ── Session metrics ──────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by result.
// Label:
//   - result: "success", "invalid_credentials", "not_permitted" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of administrator login attempts, by result.",
	},
	[]string{"result"},
)

// SessionExpiriesTotal counts sessions force-cleared by an upstream 401.
var SessionExpiriesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_expiries_total",
		Help:      "Total number of sessions cleared after an upstream 401.",
	},
)

// ── Export metrics ───────────────────────────────────────────────────────────

// ExportsTotal counts revenue exports by format.
// Label:
//   - format: "CSV", "EXCEL" or "PDF"
var ExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of revenue export downloads, by format.",
	},
	[]string{"format"},
)

// Package metrics defines all custom Prometheus metrics for the adoption
// gateway. It is the single source of truth for metric names, labels, and
// help strings; promauto registers everything with the default registry at
// package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "petadopt"

// ── Upstream metrics ──────────────────────────────────────────────────────────

// UpstreamRequestsTotal counts requests to the remote pet-adoption API.
// Labels:
//   - operation: the logical call (e.g. "pets_list", "auth_login")
//   - outcome: the HTTP status code, or "error" for transport failures
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests sent to the upstream API, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// UpstreamRequestDuration measures upstream round-trip time per operation.
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of upstream API requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionsStartedTotal counts sessions created.
// Label:
//   - method: "login" or "register"
var SessionsStartedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_started_total",
		Help:      "Total number of sessions created, by authentication method.",
	},
	[]string{"method"},
)

// SessionsEndedTotal counts sessions destroyed.
// Label:
//   - reason: "logout" or "expired" (upstream rejected the token)
var SessionsEndedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_ended_total",
		Help:      "Total number of sessions destroyed, by reason.",
	},
	[]string{"reason"},
)

// ── UI plumbing metrics ───────────────────────────────────────────────────────

// NotificationsShownTotal counts notifications published to session slots.
var NotificationsShownTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_shown_total",
		Help:      "Total number of notifications shown, by severity.",
	},
	[]string{"severity"},
)

// InflightRejectedTotal counts duplicate submissions blocked by the in-flight
// guard.
var InflightRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inflight_rejected_total",
		Help:      "Total number of duplicate concurrent actions rejected, by action.",
	},
	[]string{"action"},
)

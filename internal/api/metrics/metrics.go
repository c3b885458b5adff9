// Package metrics defines the custom Prometheus metrics exposed by the
// SustainaLink API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry at package
// initialisation via promauto; /metrics serves that registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sustainalink"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthRejectionsTotal counts requests stopped by the auth pipeline.
// Label:
//   - reason: "missing_credential", "invalid_or_expired", "unknown_subject",
//     "deactivated" or "insufficient_role"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the authenticator or authorizer.",
	},
	[]string{"reason"},
)

// AuthLoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "deactivated" or "error"
var AuthLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsProcessedTotal counts notifications handed to the notifier.
// Labels:
//   - kind: notification kind (e.g. "welcome", "password_reset")
//   - result: "delivered" or "failed"
var NotificationsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_processed_total",
		Help:      "Total number of notifications processed by the dispatcher.",
	},
	[]string{"kind", "result"},
)

// NotificationsQueueDepth tracks notifications waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotificationsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notifications_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── AI metrics ────────────────────────────────────────────────────────────────

// AIRequestsTotal counts calls to the AI endpoints.
// Labels:
//   - operation: "recommendations", "chat", "analyze_product", "generate_esg_report",
//     "optimize_supply_chain"
//   - result: "success" or "error"
var AIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ai_requests_total",
		Help:      "Total number of AI assistant requests, by operation and result.",
	},
	[]string{"operation", "result"},
)

// AIRequestDuration measures the end-to-end latency of an AI assistant call.
// Label:
//   - operation: same values as AIRequestsTotal
var AIRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ai_request_duration_seconds",
		Help:      "Duration of AI assistant requests including the upstream completion call.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 20, 30},
	},
	[]string{"operation"},
)

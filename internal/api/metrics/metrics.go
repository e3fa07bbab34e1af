// Package metrics defines and registers all custom Prometheus metrics for
// the BusyBee admin gateway. It is the single source of truth for metric
// names, labels, and help strings. Metrics self-register with the default
// registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "busybee_admin"

// ── Upstream metrics ──────────────────────────────────────────────────────────

// UpstreamRequestsTotal counts calls made against the BusyBee backend.
// Labels:
//   - method: HTTP verb (GET, POST, PUT, DELETE)
//   - result: "ok", "transport_error", or the failing HTTP status code
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests issued to the BusyBee backend.",
	},
	[]string{"method", "result"},
)

// UpstreamRequestDuration measures the full round-trip time of backend calls.
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of requests to the BusyBee backend.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// ── Screen metrics ────────────────────────────────────────────────────────────

// RefreshesTotal counts list snapshot refreshes per entity screen.
// Labels:
//   - entity: "category", "user", or "work"
//   - result: "ok" or "error"
var RefreshesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "refreshes_total",
		Help:      "Total number of entity list refreshes, by outcome.",
	},
	[]string{"entity", "result"},
)

// MutationsTotal counts create/update/delete/change-role operations.
// Labels:
//   - entity: "category", "user", or "work"
//   - action: "create", "update", "delete", "change_role"
//   - result: "ok" or "error"
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Total number of entity mutations, by action and outcome.",
	},
	[]string{"entity", "action", "result"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "rejected" (no token returned), or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"result"},
)

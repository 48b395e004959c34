// Package metrics defines and registers all custom Prometheus metrics for the
// systrack API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry through promauto, so
// importing the package is enough.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "systrack"

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditEntriesTotal counts audit entries that reached the store.
// Label:
//   - action: the audit action (e.g. "ASSIGN_SYSTEM")
var AuditEntriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_entries_total",
		Help:      "Total number of audit entries written.",
	},
	[]string{"action"},
)

// AuditErrorsTotal counts audit writes that failed. The mutation they describe
// is not rolled back.
// Label:
//   - action: the audit action that could not be recorded
var AuditErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_errors_total",
		Help:      "Total number of audit entries that failed to persist.",
	},
	[]string{"action"},
)

// AuditQueueDepth tracks the current number of entries waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Inventory metrics ─────────────────────────────────────────────────────────

// MutationsTotal counts inventory mutations by operation and outcome.
// Labels:
//   - operation: e.g. "assign", "create_system", "mark_unusable"
//   - result: "ok", "rejected" (domain error) or "error"
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Total number of inventory mutations, by operation and result.",
	},
	[]string{"operation", "result"},
)

// MutationDuration measures how long a mutation takes, lock wait included.
// Label:
//   - operation: same values as MutationsTotal
var MutationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "mutation_duration_seconds",
		Help:      "Duration of inventory mutations including lock acquisition.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"operation"},
)

// Package metrics defines the custom Prometheus metrics for the todo API.
// It is the single source of truth for metric names, labels, and help
// strings. All metrics register with the default registry via promauto at
// package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "todoapi"

// RegistrationsTotal counts registration attempts.
// Label:
//   - outcome: "created", "duplicate_email", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by outcome.",
	},
	[]string{"outcome"},
)

// LoginsTotal counts login attempts.
// Label:
//   - outcome: "success" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// TodoOperationsTotal counts todo store operations that reached the
// service layer.
// Labels:
//   - op: "create", "list", "get", "update", or "delete"
//   - outcome: "ok", "not_found", "forbidden", or "error"
var TodoOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "todo_operations_total",
		Help:      "Total number of todo operations, by operation and outcome.",
	},
	[]string{"op", "outcome"},
)

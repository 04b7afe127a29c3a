// Package metrics defines and registers all custom Prometheus metrics for the
// CRM API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default Prometheus registry via promauto
// at package initialisation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "crm"

// CustomersCreatedTotal counts successfully created customers.
var CustomersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "customers_created_total",
		Help:      "Total number of customers created.",
	},
)

// TasksCreatedTotal counts successfully created tasks.
// Label:
//   - status: the initial task status (e.g. "PENDING")
var TasksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created, by initial status.",
	},
	[]string{"status"},
)

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: short description of the failure (e.g. "invalid_credentials")
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of failed authentication attempts.",
	},
	[]string{"reason"},
)

// ConflictsTotal counts uniqueness-constraint conflicts surfaced to clients.
// Label:
//   - resource: "customer" or "user"
var ConflictsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "conflicts_total",
		Help:      "Total number of uniqueness conflicts returned, by resource.",
	},
	[]string{"resource"},
)

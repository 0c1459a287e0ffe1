// Package metrics defines and registers all custom Prometheus metrics for the
// client management API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Collectors are registered with the default Prometheus registry at package
// init via promauto; the router exposes them on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clients"

// CreatedTotal counts clients registered successfully.
var CreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_total",
		Help:      "Total number of clients created.",
	},
)

// UpdatedTotal counts successful partial updates.
var UpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "updated_total",
		Help:      "Total number of clients updated.",
	},
)

// DeletedTotal counts successful deletions.
var DeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deleted_total",
		Help:      "Total number of clients deleted.",
	},
)

// RequestErrorsTotal counts requests that resolved to an error response.
// Label:
//   - reason: "not_found", "duplicate", "validation", "bad_request",
//     "rate_limited", "store_corrupted", "store_unavailable", or "internal"
var RequestErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "request_errors_total",
		Help:      "Total number of requests that failed, labelled by reason.",
	},
	[]string{"reason"},
)

// OperationDuration measures how long a single store-backed operation takes,
// from handler dispatch to persistence.
// Label:
//   - operation: "create", "get", "list", "update", or "delete"
var OperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "operation_duration_seconds",
		Help:      "Duration of client operations including store round-trips.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"operation"},
)

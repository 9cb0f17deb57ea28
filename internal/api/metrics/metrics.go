// Package metrics defines the custom Prometheus metrics for the bookmark
// API. It is the single source of truth for metric names, labels, and help
// strings; request-level latency metrics come from the echoprometheus
// middleware instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bookmark_api"

// SignupsTotal counts successfully registered accounts.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts registered.",
	},
)

// SigninsTotal counts signin attempts.
// Label:
//   - result: "success" or "failure"
var SigninsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of signin attempts, labelled by result.",
	},
	[]string{"result"},
)

// BookmarksCreatedTotal counts newly created bookmarks.
var BookmarksCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookmarks_created_total",
		Help:      "Total number of bookmarks created.",
	},
)

// BookmarksDeletedTotal counts deleted bookmarks.
var BookmarksDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookmarks_deleted_total",
		Help:      "Total number of bookmarks deleted.",
	},
)

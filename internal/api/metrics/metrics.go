// Package metrics defines the custom Prometheus metrics for the storefront
// API. It is the single source of truth for metric names, labels, and help
// strings; request-level metrics (latency, status codes) come from the
// echoprometheus middleware instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// LoginAttemptsTotal counts credential checks on both login endpoints.
// Labels:
//   - scheme: "token" (product API) or "session" (admin panel)
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by auth scheme and result.",
	},
	[]string{"scheme", "result"},
)

// ProductsCreatedTotal counts products created through the API.
var ProductsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products created.",
	},
)

// UsersCreatedTotal counts users created through the admin panel.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created.",
	},
)

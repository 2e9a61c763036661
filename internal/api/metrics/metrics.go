// Package metrics defines and registers the custom Prometheus metrics for
// the usuários API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the router exposes them on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "usuarios"

// RegistrationsTotal counts successfully created users.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of users successfully registered.",
	},
)

// RegistrationErrorsTotal counts rejected registrations.
// Label:
//   - reason: the offending field name, or "duplicate_email" on a uniqueness conflict
var RegistrationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registration_errors_total",
		Help:      "Total number of rejected registration attempts, by reason.",
	},
	[]string{"reason"},
)

// LoginsTotal counts authentication attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// QueriesTotal counts listing requests.
// Label:
//   - result: "ok" or "rejected" (unknown filter key)
var QueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "queries_total",
		Help:      "Total number of user listing queries, by result.",
	},
	[]string{"result"},
)

// Package metrics defines and registers the custom Prometheus metrics for
// the case tracker API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry at import time; the router
// exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "casetracker"

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "duplicate" or "invalid"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "throttled" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokensRejectedTotal counts tokens turned away by the identity gate.
// Label:
//   - reason: "missing", "malformed", "invalid" or "subject_gone"
var TokensRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_rejected_total",
		Help:      "Total number of bearer tokens rejected by the identity gate.",
	},
	[]string{"reason"},
)

// RecordsCreatedTotal counts created records.
// Label:
//   - kind: "process" or "petition"
var RecordsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Total number of records created, by kind.",
	},
	[]string{"kind"},
)

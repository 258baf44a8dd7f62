// Package metrics exposes prometheus instrumentation for the wallet.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Proposals counts proposed actions.
	Proposals = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quorumwallet_proposals_total",
		Help: "Number of actions proposed.",
	})

	// Confirmations counts recorded owner confirmations, including the
	// proposer's automatic one.
	Confirmations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quorumwallet_confirmations_total",
		Help: "Number of owner confirmations recorded.",
	})

	// Revocations counts removed confirmations.
	Revocations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quorumwallet_revocations_total",
		Help: "Number of owner confirmations revoked.",
	})

	// Executions counts execution attempts by outcome ("success" or
	// "failure").
	Executions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quorumwallet_executions_total",
		Help: "Number of execution attempts by outcome.",
	}, []string{"outcome"})

	// Deposits counts received deposits.
	Deposits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quorumwallet_deposits_total",
		Help: "Number of deposits received.",
	})
)

// Handler returns the HTTP handler serving the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

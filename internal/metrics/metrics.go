package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "govdao"

var (
	rpcRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rpc_requests_total",
		Help:      "JSON-RPC requests sent to the node, by method and outcome.",
	}, []string{"method", "status"})

	transactions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transactions_total",
		Help:      "Transactions submitted by the dashboard, by action and outcome.",
	}, []string{"action", "status"})

	proposalsCached = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "proposals_cached",
		Help:      "Number of proposals held in the dashboard cache.",
	})
)

func status(err error) string {
	if err != nil {
		return "error"
	}

	return "ok"
}

// ObserveRPC counts a node request.
func ObserveRPC(method string, err error) {
	rpcRequests.WithLabelValues(method, status(err)).Inc()
}

// ObserveTx counts a submitted transaction once its outcome is known.
func ObserveTx(action string, err error) {
	transactions.WithLabelValues(action, status(err)).Inc()
}

func SetProposalsCached(n int) {
	proposalsCached.Set(float64(n))
}

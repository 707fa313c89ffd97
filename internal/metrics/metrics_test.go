package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	ObserveRPC("eth_chainId", nil)
	ObserveRPC("eth_chainId", nil)
	ObserveRPC("eth_chainId", errors.New("boom"))

	require.Equal(t, 2.0, testutil.ToFloat64(rpcRequests.WithLabelValues("eth_chainId", "ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(rpcRequests.WithLabelValues("eth_chainId", "error")))

	ObserveTx("vote", errors.New("reverted"))
	require.Equal(t, 1.0, testutil.ToFloat64(transactions.WithLabelValues("vote", "error")))

	SetProposalsCached(7)
	require.Equal(t, 7.0, testutil.ToFloat64(proposalsCached))
}

package oracleloop

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlockDelay_KnownNetworks(t *testing.T) {
	t.Parallel()

	cases := map[string]uint64{
		"pow-mainnet":         6,
		"pow-classic-testnet": 6,
		"single-signer":       0,
		"dev":                 0,
		"poa-testnet":         10,
		"unknown-network":     6,
	}
	for network, want := range cases {
		require.Equal(t, want, blockDelay(network), "network %q", network)
	}
}

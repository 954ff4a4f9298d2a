package oracleloop

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/gravity-bridge/orchestrator/internal/native"
	"github.com/gravity-bridge/orchestrator/internal/remote"
	"github.com/gravity-bridge/orchestrator/internal/types"
)

func TestBuildClaims_OrdersAcrossEventKindsByNonce(t *testing.T) {
	t.Parallel()

	scanned := remote.ScannedEvents{
		BatchExecutions: []types.BatchExecutedEvent{{EventNonce: 5, BlockHeight: 10, BatchNonce: 1}},
		Deposits: []types.DepositEvent{{
			EventNonce:    2,
			BlockHeight:   9,
			TokenContract: common.HexToAddress("0x1"),
			Sender:        common.HexToAddress("0x2"),
			Amount:        types.NewErc20Amount(uint256.NewInt(100)),
		}},
		Erc20Deploys: []types.Erc20DeployedEvent{{EventNonce: 8, BlockHeight: 11}},
	}

	msgs, maxNonce := buildClaims(scanned, "cosmos1abc")

	require.Len(t, msgs, 3)
	require.Equal(t, uint64(8), maxNonce)

	_, ok := msgs[0].(*native.MsgSendToCosmosClaim)
	require.True(t, ok, "expected nonce-2 deposit claim first, got %T", msgs[0])
	_, ok = msgs[1].(*native.MsgBatchSendToEthClaim)
	require.True(t, ok, "expected nonce-5 batch claim second, got %T", msgs[1])
	_, ok = msgs[2].(*native.MsgErc20DeployedClaim)
	require.True(t, ok, "expected nonce-8 deploy claim third, got %T", msgs[2])
}

func TestBuildClaims_EmptyScanYieldsNoMessages(t *testing.T) {
	t.Parallel()

	msgs, maxNonce := buildClaims(remote.ScannedEvents{}, "cosmos1abc")
	require.Empty(t, msgs)
	require.Zero(t, maxNonce)
}

func TestDecodeDestination_TrimsZeroPadding(t *testing.T) {
	t.Parallel()

	var dest [32]byte
	copy(dest[:], "cosmos1abcdefgh")

	require.Equal(t, "cosmos1abcdefgh", decodeDestination(dest))
}

package relayer

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/gravity-bridge/orchestrator/internal/config"
	"github.com/gravity-bridge/orchestrator/internal/orcerr"
	"github.com/gravity-bridge/orchestrator/internal/types"
)

func TestIsFatal_FatalKindsAndTransientKinds(t *testing.T) {
	t.Parallel()

	require.True(t, isFatal(orcerr.New(orcerr.KindWrongContract, "wrong contract")))
	require.True(t, isFatal(orcerr.New(orcerr.KindConfig, "bad config")))
	require.False(t, isFatal(orcerr.New(orcerr.KindInsufficientPower, "not enough signers yet")))
	require.False(t, isFatal(errors.New("plain error")))
}

func TestValueInReferenceToken_ZeroAmountSkipsQuote(t *testing.T) {
	t.Parallel()

	l := &Loop{cfg: config.RelayerConfig{ReferenceToken: common.HexToAddress("0xref").Hex()}}
	got, err := l.valueInReferenceToken(context.Background(), common.HexToAddress("0xtoken"), types.NewErc20Amount(new(uint256.Int)))
	require.NoError(t, err)
	require.Zero(t, got.Sign())
}

func TestValueInReferenceToken_ReferenceTokenItselfSkipsQuote(t *testing.T) {
	t.Parallel()

	ref := common.HexToAddress("0xref")
	l := &Loop{cfg: config.RelayerConfig{ReferenceToken: ref.Hex()}}
	got, err := l.valueInReferenceToken(context.Background(), ref, types.NewErc20Amount(uint256.NewInt(500)))
	require.NoError(t, err)
	require.Equal(t, "500", got.String())
}

func TestValueInReferenceToken_MissingPoolIsConfigError(t *testing.T) {
	t.Parallel()

	l := &Loop{cfg: config.RelayerConfig{ReferenceToken: common.HexToAddress("0x1").Hex(), PricePools: map[string]string{}}}
	_, err := l.valueInReferenceToken(context.Background(), common.HexToAddress("0x2"), types.NewErc20Amount(uint256.NewInt(500)))
	require.Error(t, err)

	var orcErr *orcerr.Error
	require.ErrorAs(t, err, &orcErr)
	require.Equal(t, orcerr.KindConfig, orcErr.Kind)
}

func TestLogicCallFeeExceedsCost_SingleTokenAboveAndBelowCost(t *testing.T) {
	t.Parallel()

	ref := common.HexToAddress("0xref")
	l := &Loop{cfg: config.RelayerConfig{ReferenceToken: ref.Hex()}}

	call := &types.LogicCall{
		Fees: []types.Erc20Token{{
			Amount:               types.NewErc20Amount(uint256.NewInt(1000)),
			TokenContractAddress: ref,
		}},
	}

	exceeds, err := l.logicCallFeeExceedsCost(context.Background(), call, big.NewInt(500))
	require.NoError(t, err)
	require.True(t, exceeds)

	exceeds, err = l.logicCallFeeExceedsCost(context.Background(), call, big.NewInt(5000))
	require.NoError(t, err)
	require.False(t, exceeds)
}

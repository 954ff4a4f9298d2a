package remote

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/gravity-bridge/orchestrator/internal/sigs"
	"github.com/gravity-bridge/orchestrator/internal/types"
)

// valsetTuple mirrors the contract's Valset struct layout; go-ethereum's
// abi encoder matches tuple components to these exported fields by name.
type valsetTuple struct {
	Validators   []common.Address
	Powers       []*big.Int
	ValsetNonce  *big.Int
	RewardAmount *big.Int
	RewardToken  common.Address
}

func toValsetTuple(v *types.ValidatorSet) valsetTuple {
	validators := make([]common.Address, len(v.Members))
	powers := make([]*big.Int, len(v.Members))
	for i, m := range v.Members {
		validators[i] = m.RemoteAddress
		powers[i] = new(big.Int).SetUint64(m.Power)
	}
	rewardAmount := new(big.Int)
	var rewardToken common.Address
	if v.RewardAmount != nil {
		rewardAmount = v.RewardAmount.Value().ToBig()
	}
	if v.RewardToken != nil {
		rewardToken = *v.RewardToken
	}
	return valsetTuple{
		Validators:   validators,
		Powers:       powers,
		ValsetNonce:  new(big.Int).SetUint64(v.Nonce),
		RewardAmount: rewardAmount,
		RewardToken:  rewardToken,
	}
}

func toSigArrays(ordered []sigs.OrderedSig) (v []uint8, r, s [][32]byte) {
	_, _, v, r, s = sigs.ToArrays(ordered)
	return
}

// SubmitValsetUpdate calls updateValset with newValset authorized by
// currentValset's ordered confirmation set (spec §4.7.1).
func (c *Client) SubmitValsetUpdate(ctx context.Context, newValset, currentValset *types.ValidatorSet, ordered []sigs.OrderedSig) (*ethtypes.Receipt, error) {
	v, r, s := toSigArrays(ordered)
	return c.sendTransaction(ctx, "updateValset",
		toValsetTuple(newValset), toValsetTuple(currentValset), v, r, s)
}

// EstimateValsetUpdateCost prices an updateValset call without submitting it.
func (c *Client) EstimateValsetUpdateCost(ctx context.Context, newValset, currentValset *types.ValidatorSet, ordered []sigs.OrderedSig) (*big.Int, error) {
	v, r, s := toSigArrays(ordered)
	return c.estimateCost(ctx, "updateValset", toValsetTuple(newValset), toValsetTuple(currentValset), v, r, s)
}

// SubmitBatch calls submitBatch with a TransactionBatch authorized by
// currentValset's ordered confirmation set (spec §4.7.2).
func (c *Client) SubmitBatch(ctx context.Context, batch *types.TransactionBatch, currentValset *types.ValidatorSet, ordered []sigs.OrderedSig) (*ethtypes.Receipt, error) {
	v, r, s := toSigArrays(ordered)

	amounts := make([]*big.Int, len(batch.Transactions))
	destinations := make([]common.Address, len(batch.Transactions))
	fees := make([]*big.Int, len(batch.Transactions))
	for i, tx := range batch.Transactions {
		amounts[i] = tx.Erc20Token.Amount.Value().ToBig()
		destinations[i] = tx.Destination
		fees[i] = tx.Erc20Fee.Amount.Value().ToBig()
	}

	return c.sendTransaction(ctx, "submitBatch",
		toValsetTuple(currentValset), v, r, s,
		amounts, destinations, fees,
		new(big.Int).SetUint64(batch.Nonce), batch.TokenContract, new(big.Int).SetUint64(batch.BatchTimeout))
}

// EstimateBatchCost prices a submitBatch call without submitting it.
func (c *Client) EstimateBatchCost(ctx context.Context, batch *types.TransactionBatch, currentValset *types.ValidatorSet, ordered []sigs.OrderedSig) (*big.Int, error) {
	v, r, s := toSigArrays(ordered)

	amounts := make([]*big.Int, len(batch.Transactions))
	destinations := make([]common.Address, len(batch.Transactions))
	fees := make([]*big.Int, len(batch.Transactions))
	for i, tx := range batch.Transactions {
		amounts[i] = tx.Erc20Token.Amount.Value().ToBig()
		destinations[i] = tx.Destination
		fees[i] = tx.Erc20Fee.Amount.Value().ToBig()
	}

	return c.estimateCost(ctx, "submitBatch",
		toValsetTuple(currentValset), v, r, s,
		amounts, destinations, fees,
		new(big.Int).SetUint64(batch.Nonce), batch.TokenContract, new(big.Int).SetUint64(batch.BatchTimeout))
}

// logicCallArgsTuple mirrors the contract's LogicCallArgs struct.
type logicCallArgsTuple struct {
	TransferAmounts        []*big.Int
	TransferTokenContracts []common.Address
	FeeAmounts             []*big.Int
	FeeTokenContracts      []common.Address
	LogicContractAddress   common.Address
	Payload                []byte
	TimeOut                *big.Int
	InvalidationId         [32]byte
	InvalidationNonce      *big.Int
}

// SubmitLogicCall calls submitLogicCall with a LogicCall authorized by
// currentValset's ordered confirmation set (spec §4.7.3).
func (c *Client) SubmitLogicCall(ctx context.Context, call *types.LogicCall, currentValset *types.ValidatorSet, ordered []sigs.OrderedSig) (*ethtypes.Receipt, error) {
	v, r, s := toSigArrays(ordered)

	transferAmounts := make([]*big.Int, len(call.Transfers))
	transferTokens := make([]common.Address, len(call.Transfers))
	for i, t := range call.Transfers {
		transferAmounts[i] = t.Amount.Value().ToBig()
		transferTokens[i] = t.TokenContractAddress
	}
	feeAmounts := make([]*big.Int, len(call.Fees))
	feeTokens := make([]common.Address, len(call.Fees))
	for i, f := range call.Fees {
		feeAmounts[i] = f.Amount.Value().ToBig()
		feeTokens[i] = f.TokenContractAddress
	}

	args := logicCallArgsTuple{
		TransferAmounts:        transferAmounts,
		TransferTokenContracts: transferTokens,
		FeeAmounts:             feeAmounts,
		FeeTokenContracts:      feeTokens,
		LogicContractAddress:   call.LogicContractAddress,
		Payload:                call.Payload,
		TimeOut:                new(big.Int).SetUint64(call.Timeout),
		InvalidationId:         call.InvalidationID,
		InvalidationNonce:      new(big.Int).SetUint64(call.InvalidationNonce),
	}

	return c.sendTransaction(ctx, "submitLogicCall", toValsetTuple(currentValset), v, r, s, args)
}

// EstimateLogicCallCost prices a submitLogicCall call without submitting it.
func (c *Client) EstimateLogicCallCost(ctx context.Context, call *types.LogicCall, currentValset *types.ValidatorSet, ordered []sigs.OrderedSig) (*big.Int, error) {
	v, r, s := toSigArrays(ordered)

	transferAmounts := make([]*big.Int, len(call.Transfers))
	transferTokens := make([]common.Address, len(call.Transfers))
	for i, t := range call.Transfers {
		transferAmounts[i] = t.Amount.Value().ToBig()
		transferTokens[i] = t.TokenContractAddress
	}
	feeAmounts := make([]*big.Int, len(call.Fees))
	feeTokens := make([]common.Address, len(call.Fees))
	for i, f := range call.Fees {
		feeAmounts[i] = f.Amount.Value().ToBig()
		feeTokens[i] = f.TokenContractAddress
	}

	args := logicCallArgsTuple{
		TransferAmounts:        transferAmounts,
		TransferTokenContracts: transferTokens,
		FeeAmounts:             feeAmounts,
		FeeTokenContracts:      feeTokens,
		LogicContractAddress:   call.LogicContractAddress,
		Payload:                call.Payload,
		TimeOut:                new(big.Int).SetUint64(call.Timeout),
		InvalidationId:         call.InvalidationID,
		InvalidationNonce:      new(big.Int).SetUint64(call.InvalidationNonce),
	}

	return c.estimateCost(ctx, "submitLogicCall", toValsetTuple(currentValset), v, r, s, args)
}

// SendToCosmos calls sendToCosmos, the remote-chain side of a user-initiated
// deposit, exposed here for operator tooling rather than the loops
// themselves (spec §6.1 lists it as a write method the client must expose;
// the loops only ever observe it as a DepositEvent).
func (c *Client) SendToCosmos(ctx context.Context, tokenContract common.Address, destination [32]byte, amount *big.Int) (*ethtypes.Receipt, error) {
	return c.sendTransaction(ctx, "sendToCosmos", tokenContract, destination, amount)
}

// DeployERC20 calls deployERC20, requesting the contract deploy a
// representation of a native-chain denom (spec §6.1); exposed for operator
// tooling the same way SendToCosmos is.
func (c *Client) DeployERC20(ctx context.Context, cosmosDenom, name, symbol string, decimals uint8) (*ethtypes.Receipt, error) {
	return c.sendTransaction(ctx, "deployERC20", cosmosDenom, name, symbol, decimals)
}

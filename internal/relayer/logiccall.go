package relayer

import (
	"context"
	"encoding/hex"
	"math/big"
	"runtime"
	"sort"

	"github.com/creachadair/taskgroup"

	"github.com/gravity-bridge/orchestrator/internal/codec"
	"github.com/gravity-bridge/orchestrator/internal/native"
	"github.com/gravity-bridge/orchestrator/internal/sigs"
	"github.com/gravity-bridge/orchestrator/internal/types"
)

// submittableLogicCall mirrors submittableBatch, grouped by invalidation ID
// instead of token contract.
type submittableLogicCall struct {
	call    *types.LogicCall
	ordered []sigs.OrderedSig
}

// relayLogicCalls implements the logic call relay sub-task (spec §4.7.3): a
// mirror of batch relay keyed by invalidation_id, with the decision
// function summing fees per fee-token and converting each to the reference
// token, early-exiting as soon as the running total clears the cost.
func (l *Loop) relayLogicCalls(ctx context.Context) error {
	currentValset, err := l.loadCurrentValset(ctx)
	if err != nil {
		return err
	}

	latest, err := l.native.LatestLogicCalls(ctx)
	if err != nil {
		return err
	}

	byScope := make(map[[32]byte][]submittableLogicCall)
	for _, resp := range latest {
		call, err := native.ToLogicCall(resp)
		if err != nil {
			return err
		}

		confirmResps, err := l.native.LogicCallConfirms(ctx, resp.InvalidationId)
		if err != nil {
			return err
		}
		confirmations := make([]types.Confirmation, 0, len(confirmResps))
		for _, c := range confirmResps {
			confirmation, err := native.ToLogicCallConfirmation(c)
			if err != nil {
				return err
			}
			confirmations = append(confirmations, confirmation)
		}

		digest, err := codec.LogicCallConfirmDigest(l.gravityID, call)
		if err != nil {
			return err
		}
		status, err := sigs.OrderSigs(digest, currentValset, confirmations)
		if err != nil {
			continue
		}

		byScope[call.InvalidationID] = append(byScope[call.InvalidationID], submittableLogicCall{call: call, ordered: status.Ordered})
	}

	remoteBlock, err := l.remote.LatestBlock(ctx)
	if err != nil {
		return err
	}

	// Each invalidation scope has its own nonce counter on the remote
	// contract, so scopes relay concurrently on their own workers, same as
	// relayBatches.
	group, start := taskgroup.New(nil).Limit(runtime.NumCPU())
	for invalidationID, calls := range byScope {
		invalidationID, calls := invalidationID, calls
		start(func() error { return l.relayScopeLogicCalls(ctx, invalidationID, calls, currentValset, remoteBlock) })
	}
	return group.Wait()
}

func (l *Loop) relayScopeLogicCalls(ctx context.Context, invalidationID [32]byte, calls []submittableLogicCall, currentValset *types.ValidatorSet, remoteBlock uint64) error {
	sort.Slice(calls, func(i, j int) bool { return calls[i].call.InvalidationNonce < calls[j].call.InvalidationNonce })

	remoteNonce, err := l.remote.LastLogicCallNonce(ctx, invalidationID)
	if err != nil {
		return err
	}

	for _, sc := range calls {
		if sc.call.Expired(remoteBlock) {
			continue
		}
		if sc.call.InvalidationNonce <= remoteNonce {
			continue
		}

		cost, err := l.remote.EstimateLogicCallCost(ctx, sc.call, currentValset, sc.ordered)
		if err != nil {
			return err
		}

		if l.cfg.LogicCallMarketEnabled {
			passes, err := l.logicCallFeeExceedsCost(ctx, sc.call, cost)
			if err != nil {
				return err
			}
			if !passes {
				l.logger.Info("logic call relay skipped: fees do not exceed gas cost",
					"invalidation_id", "0x"+hex.EncodeToString(invalidationID[:]), "invalidation_nonce", sc.call.InvalidationNonce)
				continue
			}
		}

		if _, err := l.remote.SubmitLogicCall(ctx, sc.call, currentValset, sc.ordered); err != nil {
			return err
		}
		remoteNonce = sc.call.InvalidationNonce
	}
	return nil
}

// logicCallFeeExceedsCost sums call's fees per fee-token, converting each to
// the reference token, stopping as soon as the running total exceeds cost.
func (l *Loop) logicCallFeeExceedsCost(ctx context.Context, call *types.LogicCall, cost *big.Int) (bool, error) {
	total := big.NewInt(0)
	for tokenContract, amount := range call.TotalFeeByToken() {
		value, err := l.valueInReferenceToken(ctx, tokenContract, amount)
		if err != nil {
			return false, err
		}
		total.Add(total, value)
		if total.Cmp(cost) > 0 {
			return true, nil
		}
	}
	return false, nil
}

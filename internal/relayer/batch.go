package relayer

import (
	"context"
	"runtime"
	"sort"

	"github.com/creachadair/taskgroup"
	"github.com/ethereum/go-ethereum/common"

	"github.com/gravity-bridge/orchestrator/internal/codec"
	"github.com/gravity-bridge/orchestrator/internal/native"
	"github.com/gravity-bridge/orchestrator/internal/sigs"
	"github.com/gravity-bridge/orchestrator/internal/types"
)

// submittableBatch pairs a decoded batch with the ordered confirmation set
// that clears it to relay.
type submittableBatch struct {
	batch   *types.TransactionBatch
	ordered []sigs.OrderedSig
}

// relayBatches implements the batch relay sub-task (spec §4.7.2).
func (l *Loop) relayBatches(ctx context.Context) error {
	currentValset, err := l.loadCurrentValset(ctx)
	if err != nil {
		return err
	}

	latest, err := l.native.LatestBatches(ctx)
	if err != nil {
		return err
	}

	byToken := make(map[common.Address][]submittableBatch)
	for _, resp := range latest {
		batch, err := native.ToTransactionBatch(resp)
		if err != nil {
			return err
		}

		confirmResps, err := l.native.BatchConfirms(ctx, batch.Nonce, resp.TokenContract)
		if err != nil {
			return err
		}
		confirmations := make([]types.Confirmation, 0, len(confirmResps))
		for _, c := range confirmResps {
			confirmation, err := native.ToBatchConfirmation(c)
			if err != nil {
				return err
			}
			confirmations = append(confirmations, confirmation)
		}

		digest, err := codec.BatchConfirmDigest(l.gravityID, batch)
		if err != nil {
			return err
		}
		status, err := sigs.OrderSigs(digest, currentValset, confirmations)
		if err != nil {
			continue // confirms don't yet clear threshold: not submittable this tick
		}

		byToken[batch.TokenContract] = append(byToken[batch.TokenContract], submittableBatch{batch: batch, ordered: status.Ordered})
	}

	remoteBlock, err := l.remote.LatestBlock(ctx)
	if err != nil {
		return err
	}

	// Nonces are sequential within a token contract but independent across
	// token contracts, so each token's chain relays on its own worker
	// (teacher's oracle/aggregator worker-pool pattern, spec §5: ordering is
	// only guaranteed within a scope, not across scopes).
	group, start := taskgroup.New(nil).Limit(runtime.NumCPU())
	for tokenContract, batches := range byToken {
		tokenContract, batches := tokenContract, batches
		start(func() error { return l.relayTokenBatches(ctx, tokenContract, batches, currentValset, remoteBlock) })
	}
	return group.Wait()
}

func (l *Loop) relayTokenBatches(ctx context.Context, tokenContract common.Address, batches []submittableBatch, currentValset *types.ValidatorSet, remoteBlock uint64) error {
	sort.Slice(batches, func(i, j int) bool { return batches[i].batch.Nonce < batches[j].batch.Nonce })

	remoteNonce, err := l.remote.LastBatchNonce(ctx, tokenContract)
	if err != nil {
		return err
	}

	for _, sb := range batches {
		if sb.batch.Expired(remoteBlock) {
			continue
		}
		if sb.batch.Nonce <= remoteNonce {
			continue
		}

		cost, err := l.remote.EstimateBatchCost(ctx, sb.batch, currentValset, sb.ordered)
		if err != nil {
			return err
		}

		if l.cfg.BatchMarketEnabled {
			feeValue, err := l.valueInReferenceToken(ctx, sb.batch.TotalFee.TokenContractAddress, sb.batch.TotalFee.Amount)
			if err != nil {
				return err
			}
			if feeValue.Cmp(cost) <= 0 {
				l.logger.Info("batch relay skipped: fee does not exceed gas cost",
					"token_contract", tokenContract, "nonce", sb.batch.Nonce)
				continue
			}
		}

		if _, err := l.remote.SubmitBatch(ctx, sb.batch, currentValset, sb.ordered); err != nil {
			return err
		}
		remoteNonce = sb.batch.Nonce
	}
	return nil
}

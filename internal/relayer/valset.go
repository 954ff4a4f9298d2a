package relayer

import (
	"context"
	"math/big"
	"sort"

	"github.com/gravity-bridge/orchestrator/internal/codec"
	"github.com/gravity-bridge/orchestrator/internal/native"
	"github.com/gravity-bridge/orchestrator/internal/sigs"
	"github.com/gravity-bridge/orchestrator/internal/types"
)

// relayValset implements the valset relay sub-task (spec §4.7.1).
func (l *Loop) relayValset(ctx context.Context) error {
	currentValset, err := l.loadCurrentValset(ctx)
	if err != nil {
		return err
	}

	candidates, err := l.native.LastValsets(ctx)
	if err != nil {
		return err
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Nonce > candidates[j].Nonce })

	target, ordered, err := l.findSubmittableValset(ctx, currentValset, candidates)
	if err != nil || target == nil {
		return err
	}

	if target.Nonce <= currentValset.Nonce {
		return nil
	}

	cost, err := l.remote.EstimateValsetUpdateCost(ctx, target, currentValset, ordered)
	if err != nil {
		return err
	}

	if l.cfg.ValsetMarketEnabled {
		reward, err := l.valsetReward(ctx, target)
		if err != nil {
			return err
		}
		if reward.Cmp(cost) <= 0 {
			l.logger.Info("valset relay skipped: reward does not exceed gas cost", "nonce", target.Nonce)
			return nil
		}
	}

	_, err = l.remote.SubmitValsetUpdate(ctx, target, currentValset, ordered)
	return err
}

// findSubmittableValset walks candidates (assumed sorted nonce-descending)
// looking for the highest-numbered one whose confirms, ordered against
// currentValset, clear the signature threshold (spec §4.7.1 step 1, and the
// "finding the latest submittable valset" detail paragraph). It returns a
// nil target with a nil error if no candidate clears the threshold.
func (l *Loop) findSubmittableValset(ctx context.Context, currentValset *types.ValidatorSet, candidates []*native.ValsetResponse) (*types.ValidatorSet, []sigs.OrderedSig, error) {
	for _, resp := range candidates {
		candidate, err := native.ToValidatorSet(resp)
		if err != nil {
			return nil, nil, err
		}

		confirmResps, err := l.native.ValsetConfirmsByNonce(ctx, candidate.Nonce)
		if err != nil {
			return nil, nil, err
		}
		confirmations := make([]types.Confirmation, 0, len(confirmResps))
		for _, c := range confirmResps {
			confirmation, err := native.ToValsetConfirmation(c)
			if err != nil {
				return nil, nil, err
			}
			confirmations = append(confirmations, confirmation)
		}

		digest, err := codec.ValsetConfirmDigest(l.gravityID, candidate)
		if err != nil {
			return nil, nil, err
		}

		status, err := sigs.OrderSigs(digest, currentValset, confirmations)
		if err == nil {
			return candidate, status.Ordered, nil
		}
	}
	return nil, nil, nil
}

// valsetReward converts a candidate valset's reward into the reference
// token (spec §4.7.1 step 4).
func (l *Loop) valsetReward(ctx context.Context, v *types.ValidatorSet) (*big.Int, error) {
	if v.RewardAmount == nil || v.RewardToken == nil {
		return big.NewInt(0), nil
	}
	return l.valueInReferenceToken(ctx, *v.RewardToken, v.RewardAmount)
}

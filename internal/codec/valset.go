package codec

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gravity-bridge/orchestrator/internal/types"
)

// ValsetConfirmBytes returns the canonical byte string for a ValidatorSet
// confirmation: [FixedString(gravityID), FixedString("checkpoint"), nonce,
// addresses[], powers[], reward_amount, reward_token_or_zero], packed per
// standard Solidity ABI rules (spec §4.2).
func ValsetConfirmBytes(gravityID string, v *types.ValidatorSet) ([]byte, error) {
	gid, err := fixedString(gravityID)
	if err != nil {
		return nil, err
	}
	method, err := fixedString("checkpoint")
	if err != nil {
		return nil, err
	}

	addrs := make([]common.Address, len(v.Members))
	powers := make([]*big.Int, len(v.Members))
	for i, m := range v.Members {
		addrs[i] = m.RemoteAddress
		powers[i] = new(big.Int).SetUint64(m.Power)
	}

	reward := big.NewInt(0)
	if v.RewardAmount != nil {
		reward = v.RewardAmount.Value().ToBig()
	}
	rewardToken := common.Address{}
	if v.RewardToken != nil {
		rewardToken = *v.RewardToken
	}

	return pack(
		[]abi.Type{typeBytes32, typeBytes32, typeUint256, typeAddressS, typeUint256S, typeUint256, typeAddress},
		[]string{"gravityId", "methodName", "nonce", "validators", "powers", "rewardAmount", "rewardToken"},
		gid, method, new(big.Int).SetUint64(v.Nonce), addrs, powers, reward, rewardToken,
	)
}

// ValsetConfirmDigest returns the Ethereum signed-message digest over
// ValsetConfirmBytes.
func ValsetConfirmDigest(gravityID string, v *types.ValidatorSet) (common.Hash, error) {
	b, err := ValsetConfirmBytes(gravityID, v)
	if err != nil {
		return common.Hash{}, err
	}
	return ethSignedMessageDigest(b), nil
}

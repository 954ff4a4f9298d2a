package codec

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gravity-bridge/orchestrator/internal/types"
)

// LogicCallConfirmBytes returns the canonical byte string for a LogicCall
// confirmation: [FixedString(gravityID), FixedString("logicCall"),
// transfer_amounts[], transfer_token_contracts[], fee_amounts[],
// fee_token_contracts[], logic_contract_address, payload (dynamic bytes),
// timeout, invalidation_id (bytes32), invalidation_nonce] (spec §4.2).
func LogicCallConfirmBytes(gravityID string, l *types.LogicCall) ([]byte, error) {
	gid, err := fixedString(gravityID)
	if err != nil {
		return nil, err
	}
	method, err := fixedString("logicCall")
	if err != nil {
		return nil, err
	}

	transferAmounts := make([]*big.Int, len(l.Transfers))
	transferTokens := make([]common.Address, len(l.Transfers))
	for i, t := range l.Transfers {
		transferAmounts[i] = t.Amount.Value().ToBig()
		transferTokens[i] = t.TokenContractAddress
	}

	feeAmounts := make([]*big.Int, len(l.Fees))
	feeTokens := make([]common.Address, len(l.Fees))
	for i, f := range l.Fees {
		feeAmounts[i] = f.Amount.Value().ToBig()
		feeTokens[i] = f.TokenContractAddress
	}

	return pack(
		[]abi.Type{
			typeBytes32, typeBytes32,
			typeUint256S, typeAddressS, typeUint256S, typeAddressS,
			typeAddress, typeBytes, typeUint256, typeBytes32, typeUint256,
		},
		[]string{
			"gravityId", "methodName",
			"transferAmounts", "transferTokenContracts", "feeAmounts", "feeTokenContracts",
			"logicContractAddress", "payload", "timeout", "invalidationId", "invalidationNonce",
		},
		gid, method,
		transferAmounts, transferTokens, feeAmounts, feeTokens,
		l.LogicContractAddress, l.Payload, new(big.Int).SetUint64(l.Timeout), l.InvalidationID, new(big.Int).SetUint64(l.InvalidationNonce),
	)
}

// LogicCallConfirmDigest returns the Ethereum signed-message digest over
// LogicCallConfirmBytes.
func LogicCallConfirmDigest(gravityID string, l *types.LogicCall) (common.Hash, error) {
	b, err := LogicCallConfirmBytes(gravityID, l)
	if err != nil {
		return common.Hash{}, err
	}
	return ethSignedMessageDigest(b), nil
}

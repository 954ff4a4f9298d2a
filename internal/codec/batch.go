package codec

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gravity-bridge/orchestrator/internal/types"
)

// BatchConfirmBytes returns the canonical byte string for a
// TransactionBatch confirmation: [FixedString(gravityID),
// FixedString("transactionBatch"), amounts[], destinations[], fees[],
// batch.nonce, token_contract, batch_timeout] (spec §4.2).
func BatchConfirmBytes(gravityID string, b *types.TransactionBatch) ([]byte, error) {
	gid, err := fixedString(gravityID)
	if err != nil {
		return nil, err
	}
	method, err := fixedString("transactionBatch")
	if err != nil {
		return nil, err
	}

	amounts := make([]*big.Int, len(b.Transactions))
	destinations := make([]common.Address, len(b.Transactions))
	fees := make([]*big.Int, len(b.Transactions))
	for i, tx := range b.Transactions {
		amounts[i] = tx.Erc20Token.Amount.Value().ToBig()
		destinations[i] = tx.Destination
		fees[i] = tx.Erc20Fee.Amount.Value().ToBig()
	}

	return pack(
		[]abi.Type{typeBytes32, typeBytes32, typeUint256S, typeAddressS, typeUint256S, typeUint256, typeAddress, typeUint256},
		[]string{"gravityId", "methodName", "amounts", "destinations", "fees", "batchNonce", "tokenContract", "batchTimeout"},
		gid, method, amounts, destinations, fees, new(big.Int).SetUint64(b.Nonce), b.TokenContract, new(big.Int).SetUint64(b.BatchTimeout),
	)
}

// BatchConfirmDigest returns the Ethereum signed-message digest over
// BatchConfirmBytes.
func BatchConfirmDigest(gravityID string, b *types.TransactionBatch) (common.Hash, error) {
	bs, err := BatchConfirmBytes(gravityID, b)
	if err != nil {
		return common.Hash{}, err
	}
	return ethSignedMessageDigest(bs), nil
}

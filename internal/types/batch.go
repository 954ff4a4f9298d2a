package types

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// BatchTransaction is one leg of a TransactionBatch: a native sender moving
// erc20_token (minus erc20_fee, which the relayer keeps) to a destination
// address on the remote chain.
type BatchTransaction struct {
	ID              uint64
	Sender          string // native (bech32) address
	Destination     common.Address
	Erc20Token      Erc20Token
	Erc20Fee        Erc20Token
}

// TransactionBatch is a nonce-ordered set of BatchTransaction sharing a
// single token contract, plus the timeout height after which the remote
// contract will refuse to execute it.
type TransactionBatch struct {
	Nonce         uint64
	BatchTimeout  uint64
	Transactions  []BatchTransaction
	TotalFee      Erc20Token
	TokenContract common.Address
}

// Validate checks the invariants from spec §3: every transaction shares the
// batch's token contract, and TotalFee.Amount equals the sum of the
// transactions' fees.
func (b *TransactionBatch) Validate() error {
	sum := ZeroErc20Amount()
	for i, tx := range b.Transactions {
		if tx.Erc20Token.TokenContractAddress != b.TokenContract {
			return fmt.Errorf("batch tx %d: token contract %s does not match batch token contract %s",
				i, tx.Erc20Token.TokenContractAddress, b.TokenContract)
		}
		if tx.Erc20Fee.TokenContractAddress != b.TokenContract {
			return fmt.Errorf("batch tx %d: fee token contract %s does not match batch token contract %s",
				i, tx.Erc20Fee.TokenContractAddress, b.TokenContract)
		}
		sum = sum.Add(tx.Erc20Fee.Amount)
	}
	if b.TotalFee.TokenContractAddress != b.TokenContract {
		return fmt.Errorf("batch total fee token contract %s does not match batch token contract %s",
			b.TotalFee.TokenContractAddress, b.TokenContract)
	}
	if sum.Value().Cmp(b.TotalFee.Amount.Value()) != 0 {
		return fmt.Errorf("batch total fee %s does not equal sum of transaction fees %s",
			b.TotalFee.Amount.Value(), sum.Value())
	}
	return nil
}

// Expired reports whether the batch can no longer be submitted at the given
// remote block height (spec §8 P7: an expired batch is never submitted).
func (b *TransactionBatch) Expired(currentRemoteBlock uint64) bool {
	return b.BatchTimeout < currentRemoteBlock
}

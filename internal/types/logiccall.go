package types

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// LogicCall is an arbitrary contract invocation relayed through the
// bridge: it moves Transfers to LogicContractAddress, pays Fees to the
// relayer, and is made replay-safe by (InvalidationID, InvalidationNonce) —
// a per-scope monotone counter, mirroring how TransactionBatch uses a
// per-token nonce.
type LogicCall struct {
	Transfers             []Erc20Token
	Fees                  []Erc20Token
	LogicContractAddress  common.Address
	Payload               []byte
	Timeout               uint64
	InvalidationID        [32]byte
	InvalidationNonce     uint64
}

// Validate checks the invariant from spec §3: transfers and fees are both
// non-empty.
func (l *LogicCall) Validate() error {
	if len(l.Transfers) == 0 {
		return fmt.Errorf("logic call has no transfers")
	}
	if len(l.Fees) == 0 {
		return fmt.Errorf("logic call has no fees")
	}
	return nil
}

// Expired reports whether the call can no longer be submitted at the given
// remote block height.
func (l *LogicCall) Expired(currentRemoteBlock uint64) bool {
	return l.Timeout < currentRemoteBlock
}

// TotalFeeByToken sums l.Fees grouped by token contract, for the relayer's
// per-token-contract WETH conversion (spec §4.7.3).
func (l *LogicCall) TotalFeeByToken() map[common.Address]*Erc20Amount {
	out := make(map[common.Address]*Erc20Amount)
	for _, f := range l.Fees {
		if existing, ok := out[f.TokenContractAddress]; ok {
			out[f.TokenContractAddress] = existing.Add(f.Amount)
		} else {
			out[f.TokenContractAddress] = f.Amount
		}
	}
	return out
}

package types

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Erc20Amount wraps a 256-bit unsigned amount. It is never downcast before
// reaching the codec; counters that must fit 64 bits (event nonces, valset
// nonces) are separate fields with their own explicit overflow checks.
type Erc20Amount struct {
	Int *uint256.Int
}

// NewErc20Amount wraps an existing *uint256.Int. A nil Int is treated as
// zero by all accessors.
func NewErc20Amount(v *uint256.Int) *Erc20Amount {
	return &Erc20Amount{Int: v}
}

// ZeroErc20Amount returns a freshly allocated zero amount.
func ZeroErc20Amount() *Erc20Amount {
	return &Erc20Amount{Int: new(uint256.Int)}
}

// Value returns the underlying integer, substituting zero for a nil Int so
// callers never need a nil check before arithmetic.
func (a *Erc20Amount) Value() *uint256.Int {
	if a == nil || a.Int == nil {
		return new(uint256.Int)
	}
	return a.Int
}

// Add returns a new Erc20Amount holding a+b.
func (a *Erc20Amount) Add(b *Erc20Amount) *Erc20Amount {
	out := new(uint256.Int)
	out.Add(a.Value(), b.Value())
	return &Erc20Amount{Int: out}
}

// Erc20Token is a (amount, token_contract_address) pair: the unit of value
// that crosses the remote boundary in deposits, batch transactions, batch
// fees, and logic-call transfers/fees.
type Erc20Token struct {
	Amount              *Erc20Amount
	TokenContractAddress common.Address
}

// Package types holds the bridge's core data model: validator sets,
// ERC20-denominated transfers, transaction batches, logic calls,
// confirmations and the remote events that retire them.
package types

import (
	"sort"

	"github.com/ethereum/go-ethereum/common"
)

// TotalPower is the fixed denominator validator-set power is normalized
// against. It is chosen so that it fits in a uint32 while leaving room for
// a 66% threshold computed in integer arithmetic without overflow.
const TotalPower uint64 = 1<<32 - 1

// PowerThresholdPercent is the minimum percentage of TotalPower a set of
// confirmations must carry before an artifact is considered signed.
const PowerThresholdPercent = 66

// Member is one entry of a ValidatorSet: a signer's remote-chain address
// and its normalized voting power. RemoteAddress may be the zero address,
// meaning this member has not registered a remote signing key; it still
// contributes power but can never satisfy the signature threshold itself.
type Member struct {
	RemoteAddress common.Address
	Power         uint64
}

// HasAddress reports whether this member has registered a remote address.
func (m Member) HasAddress() bool {
	return m.RemoteAddress != (common.Address{})
}

// ValidatorSet is the weighted committee of signers authoritative at Nonce.
// Members are stored in the order the native module emits them; callers
// that sign against a ValidatorSet MUST preserve this order, since the
// remote contract iterates signers positionally.
type ValidatorSet struct {
	Nonce        uint64
	Members      []Member
	RewardAmount *Erc20Amount // may be nil / zero
	RewardToken  *common.Address
}

// TotalMemberPower sums the power of every member, signed or not.
func (v *ValidatorSet) TotalMemberPower() uint64 {
	var total uint64
	for _, m := range v.Members {
		total += m.Power
	}
	return total
}

// SortMembers orders members greatest-power-first, breaking ties by the
// remote address in ascending byte order. This is the ordering the contract constructor and
// valset-update message use when a ValidatorSet is built from scratch; it
// is NOT reapplied before signing an existing set (see package sigs).
func SortMembers(members []Member) {
	sort.SliceStable(members, func(i, j int) bool {
		if members[i].Power != members[j].Power {
			return members[i].Power > members[j].Power
		}
		return bytesGreater(members[j].RemoteAddress.Bytes(), members[i].RemoteAddress.Bytes())
	})
}

func bytesGreater(a, b []byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return false
}

// NewValidatorSet builds a ValidatorSet with members sorted per SortMembers,
// normalizing is the caller's responsibility (the native module is the
// source of truth for power normalization; this constructor only orders).
func NewValidatorSet(nonce uint64, members []Member, rewardAmount *Erc20Amount, rewardToken *common.Address) *ValidatorSet {
	cp := make([]Member, len(members))
	copy(cp, members)
	SortMembers(cp)
	return &ValidatorSet{
		Nonce:        nonce,
		Members:      cp,
		RewardAmount: rewardAmount,
		RewardToken:  rewardToken,
	}
}

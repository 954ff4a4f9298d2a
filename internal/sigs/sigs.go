// Package sigs implements the Signature Engine (spec §4.1): it combines a
// ValidatorSet with a set of Confirmation values into the positionally
// ordered (address[], power[], v[], r[], s[]) arrays the remote contract
// expects, zero-filling any member without a remote address or without a
// confirmation, and rejects the combination outright if the power behind
// valid confirmations falls short of the two-thirds threshold.
package sigs

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gravity-bridge/orchestrator/internal/orcerr"
	"github.com/gravity-bridge/orchestrator/internal/types"
)

// OrderedSig is one positional slot of an ordered confirmation set: it
// carries the member's power alongside its (possibly zero) address and
// signature.
type OrderedSig struct {
	Power         uint64
	RemoteAddress common.Address
	V             uint8
	R             [32]byte
	S             [32]byte
}

// Status summarizes why a set of confirmations did or did not clear the
// two-thirds threshold, for diagnostic logging.
type Status struct {
	Ordered              []OrderedSig
	PowerOfGoodSigs      uint64
	PowerOfUnsetKeys     uint64
	PowerOfNonVoters     uint64
	NumUnsetKeyMembers   int
	NumNonVotingMembers  int
}

// OrderSigs combines valset with confirmations signed over digest,
// producing one OrderedSig per valset member in valset.Members order (spec
// §8 P2). A member with no remote address, or no matching confirmation,
// gets a zero-valued slot. It returns orcerr.KindInsufficientPower if the
// power behind recovered, valid confirmations is below the two-thirds
// threshold.
//
// A confirmation whose signature recovers to an address other than the one
// it claims is a programmer error elsewhere in the pipeline (the native
// module should have rejected it already) and OrderSigs aborts rather than
// silently dropping it.
func OrderSigs(digest common.Hash, valset *types.ValidatorSet, confirmations []types.Confirmation) (*Status, error) {
	bySigner := make(map[common.Address]types.Confirmation, len(confirmations))
	for _, c := range confirmations {
		bySigner[c.RemoteSignerAddress()] = c
	}

	status := &Status{Ordered: make([]OrderedSig, 0, len(valset.Members))}

	for _, member := range valset.Members {
		if !member.HasAddress() {
			status.Ordered = append(status.Ordered, OrderedSig{Power: member.Power})
			status.PowerOfUnsetKeys += member.Power
			status.NumUnsetKeyMembers++
			continue
		}

		confirmation, ok := bySigner[member.RemoteAddress]
		if !ok {
			status.Ordered = append(status.Ordered, OrderedSig{Power: member.Power, RemoteAddress: member.RemoteAddress})
			status.PowerOfNonVoters += member.Power
			status.NumNonVotingMembers++
			continue
		}

		sig := confirmation.Signature()
		recovered, err := recoverAddress(digest, sig)
		if err != nil {
			return nil, orcerr.Wrap(orcerr.KindInvalidSignature, "recover confirmation signer", err)
		}
		if recovered != member.RemoteAddress {
			panic(fmt.Sprintf("confirmation for %s recovers to %s: invalid signature reached the signature engine",
				member.RemoteAddress, recovered))
		}

		status.Ordered = append(status.Ordered, OrderedSig{
			Power:         member.Power,
			RemoteAddress: member.RemoteAddress,
			V:             sig.V,
			R:             sig.R,
			S:             sig.S,
		})
		status.PowerOfGoodSigs += member.Power
	}

	if percentOfTotal(status.PowerOfGoodSigs) < types.PowerThresholdPercent {
		return status, orcerr.New(orcerr.KindInsufficientPower, fmt.Sprintf(
			"%d/%d power voting (%d%% needed): %d members have unset remote keys, %d have not voted",
			status.PowerOfGoodSigs, types.TotalPower, types.PowerThresholdPercent,
			status.NumUnsetKeyMembers, status.NumNonVotingMembers))
	}
	return status, nil
}

// percentOfTotal returns the integer percentage power/types.TotalPower,
// rounded down.
func percentOfTotal(power uint64) uint64 {
	return power * 100 / types.TotalPower
}

// recoverAddress recovers the signer address from an Ethereum signed-message
// digest and a (v, r, s) signature, normalizing the Ethereum-style 27/28
// recovery id to the 0/1 go-ethereum expects.
func recoverAddress(digest common.Hash, sig types.EthSignature) (common.Address, error) {
	v := sig.V
	if v >= 27 {
		v -= 27
	}
	if v != 0 && v != 1 {
		return common.Address{}, fmt.Errorf("invalid recovery id %d", sig.V)
	}

	sigBytes := make([]byte, 65)
	copy(sigBytes[0:32], sig.R[:])
	copy(sigBytes[32:64], sig.S[:])
	sigBytes[64] = v

	pub, err := crypto.SigToPub(digest[:], sigBytes)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// ToArrays flattens an ordered confirmation set into the parallel arrays
// the remote contract's submitBatch/updateValset/submitLogicCall calls
// take: addresses, powers, and split v/r/s arrays.
func ToArrays(ordered []OrderedSig) (addresses []common.Address, powers []uint64, v []uint8, r [][32]byte, s [][32]byte) {
	addresses = make([]common.Address, len(ordered))
	powers = make([]uint64, len(ordered))
	v = make([]uint8, len(ordered))
	r = make([][32]byte, len(ordered))
	s = make([][32]byte, len(ordered))
	for i, o := range ordered {
		addresses[i] = o.RemoteAddress
		powers[i] = o.Power
		v[i] = o.V
		r[i] = o.R
		s[i] = o.S
	}
	return
}

// Equal reports whether two ordered sets are identical, slot by slot.
func Equal(a, b []OrderedSig) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Power != b[i].Power || a[i].RemoteAddress != b[i].RemoteAddress || a[i].V != b[i].V ||
			!bytes.Equal(a[i].R[:], b[i].R[:]) || !bytes.Equal(a[i].S[:], b[i].S[:]) {
			return false
		}
	}
	return true
}

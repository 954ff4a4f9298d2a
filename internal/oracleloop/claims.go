// Package oracleloop implements the Oracle Loop and its startup Resync
// procedure (spec §4.4/§4.5): watching the remote chain's five bridge
// events and claiming them on the native chain in strict event-nonce order.
package oracleloop

import (
	"encoding/hex"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/gravity-bridge/orchestrator/internal/native"
	"github.com/gravity-bridge/orchestrator/internal/remote"
)

// claimEnvelope pairs a claim message with the event nonce it was built
// from, so a mixed batch of event kinds can be ordered before submission
// (spec §4.5 step 5: "ordered by event_nonce ascending").
type claimEnvelope struct {
	nonce uint64
	msg   sdk.Msg
}

// buildClaims converts one window's scanned-and-filtered events into a
// single event-nonce-ordered list of claim messages, and returns the
// highest nonce among them so the caller can verify the native chain
// actually advanced past it (spec §4.5 step 6).
func buildClaims(scanned remote.ScannedEvents, orchestrator string) ([]sdk.Msg, uint64) {
	var envelopes []claimEnvelope

	for _, e := range scanned.Deposits {
		envelopes = append(envelopes, claimEnvelope{e.EventNonce, native.NewSendToCosmosClaim(
			e.EventNonce, e.BlockHeight, orchestrator,
			e.TokenContract.Hex(), e.Amount.Value().String(), e.Sender.Hex(), decodeDestination(e.Destination),
		)})
	}
	for _, e := range scanned.BatchExecutions {
		envelopes = append(envelopes, claimEnvelope{e.EventNonce, native.NewBatchSendToEthClaim(
			e.EventNonce, e.BlockHeight, e.BatchNonce, orchestrator, e.TokenContract.Hex(),
		)})
	}
	for _, e := range scanned.ValsetUpdates {
		members := make([]string, len(e.Members))
		for i, m := range e.Members {
			members[i] = native.FormatMember(m)
		}
		rewardToken := ""
		if e.RewardToken != (common.Address{}) {
			rewardToken = e.RewardToken.Hex()
		}
		envelopes = append(envelopes, claimEnvelope{e.EventNonce, native.NewValsetUpdatedClaim(
			e.EventNonce, e.BlockHeight, e.ValsetNonce, orchestrator, members,
			e.RewardAmount.Value().String(), rewardToken,
		)})
	}
	for _, e := range scanned.Erc20Deploys {
		envelopes = append(envelopes, claimEnvelope{e.EventNonce, native.NewErc20DeployedClaim(
			e.EventNonce, e.BlockHeight, uint64(e.Decimals), orchestrator, e.CosmosDenom, e.TokenContract.Hex(), e.Name, e.Symbol,
		)})
	}
	for _, e := range scanned.LogicCalls {
		envelopes = append(envelopes, claimEnvelope{e.EventNonce, native.NewLogicCallExecutedClaim(
			e.EventNonce, e.BlockHeight, e.InvalidationNonce, orchestrator, hexID(e.InvalidationID),
		)})
	}

	sort.SliceStable(envelopes, func(i, j int) bool { return envelopes[i].nonce < envelopes[j].nonce })

	msgs := make([]sdk.Msg, len(envelopes))
	var maxNonce uint64
	for i, e := range envelopes {
		msgs[i] = e.msg
		if e.nonce > maxNonce {
			maxNonce = e.nonce
		}
	}
	return msgs, maxNonce
}

// decodeDestination recovers the native bech32 receiver address from a
// DepositEvent's 32-byte destination field. The remote contract accepts an
// arbitrary bytes32 "destination" argument; this orchestrator's convention
// (there being no generated contract source to consult — spec §9) is that
// depositors right-pad the UTF-8 bech32 string with zero bytes, the same
// convention the teacher's EVM precompiles use for passing cosmos addresses
// through a fixed-width EVM word. Trailing zero bytes are trimmed back off.
func decodeDestination(dest [32]byte) string {
	return strings.TrimRight(string(dest[:]), "\x00")
}

func hexID(id [32]byte) string {
	return "0x" + hex.EncodeToString(id[:])
}

package oracleloop

import (
	"context"
	"errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/gravity-bridge/orchestrator/internal/native"
	"github.com/gravity-bridge/orchestrator/internal/orcerr"
	"github.com/gravity-bridge/orchestrator/internal/remote"
	"github.com/gravity-bridge/orchestrator/internal/retry"
)

// resyncWindow is the block span Resync scans at a time (spec §4.4 step 3).
const resyncWindow = 5000

// Resync finds the remote block height this orchestrator's oracle should
// resume scanning from, by walking backward from the current remote tip in
// resyncWindow-sized chunks looking for the event this validator last
// claimed (spec §4.4, verbatim 7-step procedure):
//
//  1. read last_event_nonce for this orchestrator (0 is treated as 1 — a
//     validator that has never claimed anything starts from the genesis
//     valset);
//  2/3. scan windows working backward from the remote chain's tip, retrying
//     indefinitely on RPC failure without advancing the window;
//  4. if a decoded event with EventNonce == last_event_nonce is found in a
//     window, its block height is the answer;
//  5/6. ValsetUpdated carries a special case: a ValsetNonce == 0 event is
//     the contract's genesis valset. If last_event_nonce == 1 and one is
//     seen, that is the answer (nothing claimable precedes the genesis
//     valset); if last_event_nonce > 1 and one is seen, resync has walked
//     past the deploy without finding the claimed nonce — fatal
//     misconfiguration. Valset events are checked in reverse position
//     within a window so the deploy marker (always chronologically first)
//     is visited last, after every other valset in the window;
//  7. if the window reaches block 0 without resolving, abort fatally.
func Resync(ctx context.Context, remoteClient *remote.Client, nativeClient *native.Client, orchestrator sdk.AccAddress) (uint64, error) {
	lastNonce, err := nativeClient.LastEventNonce(ctx, orchestrator)
	if err != nil {
		return 0, err
	}
	if lastNonce == 0 {
		lastNonce = 1
	}

	cur, err := remoteClient.LatestBlock(ctx)
	if err != nil {
		return 0, err
	}

	for {
		from := uint64(0)
		if cur > resyncWindow {
			from = cur - resyncWindow
		}

		var scanned remote.ScannedEvents
		for {
			err := retry.Do(ctx, retry.DefaultOptions, func(ctx context.Context) error {
				var scanErr error
				scanned, scanErr = remoteClient.ScanEvents(ctx, from, cur)
				return scanErr
			})
			if err == nil {
				break
			}
			var orcErr *orcerr.Error
			if ctx.Err() != nil || !errors.As(err, &orcErr) || orcErr.Kind != orcerr.KindTransient {
				return 0, err
			}
		}

		if height, ok := findByNonce(scanned, lastNonce); ok {
			return height, nil
		}

		if height, fatal, found := genesisValset(scanned, lastNonce); found {
			if fatal {
				return 0, orcerr.New(orcerr.KindWrongContract,
					"resync walked past the contract's genesis valset without finding the claimed event nonce")
			}
			return height, nil
		}

		if from == 0 {
			return 0, orcerr.New(orcerr.KindWrongContract,
				"resync reached block 0 without finding the last claimed event")
		}
		cur = from
	}
}

// findByNonce searches every decoded event in a window for one whose
// EventNonce matches nonce, across all five event kinds.
func findByNonce(scanned remote.ScannedEvents, nonce uint64) (uint64, bool) {
	for _, e := range scanned.Deposits {
		if e.GetEventNonce() == nonce {
			return e.GetBlockHeight(), true
		}
	}
	for _, e := range scanned.BatchExecutions {
		if e.GetEventNonce() == nonce {
			return e.GetBlockHeight(), true
		}
	}
	for _, e := range scanned.ValsetUpdates {
		if e.GetEventNonce() == nonce {
			return e.GetBlockHeight(), true
		}
	}
	for _, e := range scanned.Erc20Deploys {
		if e.GetEventNonce() == nonce {
			return e.GetBlockHeight(), true
		}
	}
	for _, e := range scanned.LogicCalls {
		if e.GetEventNonce() == nonce {
			return e.GetBlockHeight(), true
		}
	}
	return 0, false
}

// genesisValset looks for the contract-deploy valset (ValsetNonce == 0),
// iterating in reverse within the window per spec §4.4 step 6.
func genesisValset(scanned remote.ScannedEvents, lastNonce uint64) (height uint64, fatal bool, found bool) {
	for i := len(scanned.ValsetUpdates) - 1; i >= 0; i-- {
		v := scanned.ValsetUpdates[i]
		if v.ValsetNonce != 0 {
			continue
		}
		if lastNonce == 1 {
			return v.BlockHeight, false, true
		}
		return 0, true, true
	}
	return 0, false, false
}

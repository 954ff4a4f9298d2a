package oracleloop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/gravity-bridge/orchestrator/internal/native"
	"github.com/gravity-bridge/orchestrator/internal/orcerr"
	"github.com/gravity-bridge/orchestrator/internal/remote"
	"github.com/gravity-bridge/orchestrator/internal/types"
)

// TickInterval is the Oracle Loop's polling cadence (spec §4.5).
const TickInterval = 13 * time.Second

// blockDelay returns the reorg-safety delay (in blocks) applied before a
// remote block is considered final enough to scan, keyed by remote network
// identifier (spec §4.5's block-delay table; config.RemoteChainConfig.Network
// selects the entry).
func blockDelay(network string) uint64 {
	switch network {
	case "pow-mainnet", "pow-classic-testnet":
		return 6
	case "single-signer", "dev":
		return 0
	case "poa-testnet":
		return 10
	default:
		return 6
	}
}

// Loop is the Oracle Loop (spec §4.5): it scans the remote chain for newly
// finalized bridge events and claims them on the native chain in strict
// event-nonce order, never advancing its watermark past a tick whose claims
// failed to land.
type Loop struct {
	remote       *remote.Client
	native       *native.Client
	orchestrator sdk.AccAddress
	network      string
	logger       log.Logger

	lastCheckedBlock uint64
}

// New builds an Oracle Loop. orchestrator is this validator's own address
// (native.Client.OrchestratorAddress()); network selects the block-delay
// table entry for the remote chain being watched.
func New(remoteClient *remote.Client, nativeClient *native.Client, orchestrator sdk.AccAddress, network string, logger log.Logger) *Loop {
	return &Loop{
		remote:       remoteClient,
		native:       nativeClient,
		orchestrator: orchestrator,
		network:      network,
		logger:       logger,
	}
}

// Run resyncs to find a starting watermark, then ticks on TickInterval
// until ctx is cancelled. It returns nil on clean shutdown and a non-nil
// error only for a fatal orcerr.Kind (spec §7's propagation rule: every
// other error is logged and the tick ends).
func (l *Loop) Run(ctx context.Context) error {
	startBlock, err := Resync(ctx, l.remote, l.native, l.orchestrator)
	if err != nil {
		return err
	}
	l.lastCheckedBlock = startBlock
	l.logger.Info("oracle resync complete", "start_block", startBlock)

	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := l.tick(ctx); err != nil {
				var orcErr *orcerr.Error
				if errors.As(err, &orcErr) && orcErr.Kind.Fatal() {
					return err
				}
				l.logger.Error("oracle tick failed", "error", err)
			}
		}
	}
}

// tick implements spec §4.5 steps 1-7 for a single iteration.
func (l *Loop) tick(ctx context.Context) error {
	latest, err := l.remote.LatestBlock(ctx)
	if err != nil {
		return err
	}
	syncing, err := l.remote.SyncProgress(ctx)
	if err != nil {
		return err
	}
	if syncing {
		l.logger.Info("remote node syncing, pausing oracle tick")
		return nil
	}

	delay := blockDelay(l.network)
	if latest < delay {
		return nil
	}
	safeBlock := latest - delay
	if safeBlock <= l.lastCheckedBlock {
		return nil
	}

	scanned, err := l.remote.ScanEvents(ctx, l.lastCheckedBlock+1, safeBlock)
	if err != nil {
		return err
	}

	lastNonce, err := l.native.LastEventNonce(ctx, l.orchestrator)
	if err != nil {
		return err
	}

	scanned.Deposits = types.FilterByEventNonce(lastNonce, scanned.Deposits)
	scanned.BatchExecutions = types.FilterByEventNonce(lastNonce, scanned.BatchExecutions)
	scanned.ValsetUpdates = types.FilterByEventNonce(lastNonce, scanned.ValsetUpdates)
	scanned.Erc20Deploys = types.FilterByEventNonce(lastNonce, scanned.Erc20Deploys)
	scanned.LogicCalls = types.FilterByEventNonce(lastNonce, scanned.LogicCalls)

	msgs, maxNonce := buildClaims(scanned, l.orchestrator.String())
	if len(msgs) == 0 {
		l.lastCheckedBlock = safeBlock
		return nil
	}

	if _, err := l.native.SubmitMsgs(ctx, msgs...); err != nil {
		return err
	}

	advanced, err := l.native.LastEventNonce(ctx, l.orchestrator)
	if err != nil {
		return err
	}
	if advanced < maxNonce {
		return orcerr.New(orcerr.KindNonceStalled, fmt.Sprintf(
			"claim submission did not advance last_event_nonce: want >= %d, got %d", maxNonce, advanced))
	}

	l.logger.Info("oracle claims submitted", "count", len(msgs), "up_to_nonce", maxNonce, "safe_block", safeBlock)
	l.lastCheckedBlock = safeBlock
	return nil
}

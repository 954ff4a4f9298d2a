// Package relayer implements the Relayer Loop (spec §4.7): each tick it
// finds the latest submittable valset, batch and logic call, checks the
// relay-market gate, and submits each to the remote chain.
package relayer

import (
	"context"
	"errors"
	"math/big"
	"time"

	"cosmossdk.io/log"
	"github.com/ethereum/go-ethereum/common"

	"github.com/gravity-bridge/orchestrator/internal/config"
	"github.com/gravity-bridge/orchestrator/internal/native"
	"github.com/gravity-bridge/orchestrator/internal/orcerr"
	"github.com/gravity-bridge/orchestrator/internal/price"
	"github.com/gravity-bridge/orchestrator/internal/remote"
	"github.com/gravity-bridge/orchestrator/internal/types"
)

// TickInterval is the Relayer Loop's cadence (spec §4.7).
const TickInterval = 17 * time.Second

// Loop is the Relayer Loop. Its three sub-tasks run sequentially within a
// tick in a fixed order: valset, then batch, then logic call (spec §5
// ordering guarantees).
type Loop struct {
	remote    *remote.Client
	native    *native.Client
	quoter    *price.Quoter
	cfg       config.RelayerConfig
	gravityID string
	logger    log.Logger
}

// New builds a Relayer Loop. gravityID is the same value shared with the
// Signer Loop, read once at orchestrator startup (spec §4.8).
func New(remoteClient *remote.Client, nativeClient *native.Client, quoter *price.Quoter, cfg config.RelayerConfig, gravityID string, logger log.Logger) *Loop {
	return &Loop{
		remote:    remoteClient,
		native:    nativeClient,
		quoter:    quoter,
		cfg:       cfg,
		gravityID: gravityID,
		logger:    logger,
	}
}

// Run ticks on TickInterval until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
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
				l.logger.Error("relayer tick failed", "error", err)
			}
		}
	}
}

func (l *Loop) tick(ctx context.Context) error {
	syncing, err := l.remote.SyncProgress(ctx)
	if err != nil {
		return err
	}
	if syncing {
		l.logger.Info("remote node syncing, pausing relayer tick")
		return nil
	}

	var fatalErr error
	if err := l.relayValset(ctx); err != nil {
		if isFatal(err) {
			fatalErr = err
		}
		l.logger.Error("relay valset failed", "error", err)
	}
	if err := l.relayBatches(ctx); err != nil {
		if isFatal(err) {
			fatalErr = err
		}
		l.logger.Error("relay batches failed", "error", err)
	}
	if err := l.relayLogicCalls(ctx); err != nil {
		if isFatal(err) {
			fatalErr = err
		}
		l.logger.Error("relay logic calls failed", "error", err)
	}
	return fatalErr
}

func isFatal(err error) bool {
	var orcErr *orcerr.Error
	return errors.As(err, &orcErr) && orcErr.Kind.Fatal()
}

// loadCurrentValset resolves the ValidatorSet the remote contract currently
// holds: its nonce comes from the contract itself, but its member list
// comes from native, which is assumed to retain the historical record
// matching every valset it ever pushed across (spec §4.7's "confirms ...
// ordered against the valset CURRENTLY IN THE REMOTE CONTRACT").
func (l *Loop) loadCurrentValset(ctx context.Context) (*types.ValidatorSet, error) {
	nonce, err := l.remote.CurrentValsetNonce(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := l.native.ValsetByNonce(ctx, nonce)
	if err != nil {
		return nil, err
	}
	return native.ToValidatorSet(resp)
}

// valueInReferenceToken converts amount of tokenContract into the
// configured reference token (spec §4.7's "WETH"), via the configured DEX
// pool. A zero amount, or tokenContract already being the reference token,
// short-circuits without a quote.
func (l *Loop) valueInReferenceToken(ctx context.Context, tokenContract common.Address, amount *types.Erc20Amount) (*big.Int, error) {
	value := amount.Value()
	if value.IsZero() {
		return big.NewInt(0), nil
	}

	reference := common.HexToAddress(l.cfg.ReferenceToken)
	if tokenContract == reference {
		return value.ToBig(), nil
	}

	pool, ok := l.cfg.PricePools[tokenContract.Hex()]
	if !ok {
		return nil, orcerr.New(orcerr.KindConfig, "no price pool configured for reward/fee token "+tokenContract.Hex())
	}
	out, err := l.quoter.Quote(ctx, common.HexToAddress(pool), tokenContract, value)
	if err != nil {
		return nil, err
	}
	return out.ToBig(), nil
}

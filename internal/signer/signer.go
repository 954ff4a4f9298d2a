// Package signer implements the Signer Loop (spec §4.6): each tick, it
// finds the oldest valset/batch/logic-call this validator has not yet
// confirmed, signs its canonical digest with the remote signing key, and
// submits the confirmation to the native chain.
package signer

import (
	"context"
	"errors"
	"time"

	"cosmossdk.io/log"
	"github.com/ethereum/go-ethereum/common"

	"github.com/gravity-bridge/orchestrator/internal/codec"
	"github.com/gravity-bridge/orchestrator/internal/keys"
	"github.com/gravity-bridge/orchestrator/internal/native"
	"github.com/gravity-bridge/orchestrator/internal/orcerr"
	"github.com/gravity-bridge/orchestrator/internal/remote"
	"github.com/gravity-bridge/orchestrator/internal/types"
)

// TickInterval is the Signer Loop's cadence (spec §4.6).
const TickInterval = 11 * time.Second

// Loop is the Signer Loop.
type Loop struct {
	remote    *remote.Client
	native    *native.Client
	signerKey *keys.RemoteSigner
	gravityID string
	logger    log.Logger
}

// New builds a Signer Loop. gravityID is read once at orchestrator
// startup (spec §4.8) and shared with the Relayer Loop's valset lookups.
func New(remoteClient *remote.Client, nativeClient *native.Client, signerKey *keys.RemoteSigner, gravityID string, logger log.Logger) *Loop {
	return &Loop{
		remote:    remoteClient,
		native:    nativeClient,
		signerKey: signerKey,
		gravityID: gravityID,
		logger:    logger,
	}
}

// Run ticks on TickInterval until ctx is cancelled, returning nil on clean
// shutdown and a non-nil error only for a fatal orcerr.Kind.
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
				l.logger.Error("signer tick failed", "error", err)
			}
		}
	}
}

// tick signs the oldest unsigned valset, batch and logic call independently
// (spec §4.6: "no ordering guarantee between valset/batch/logic-call within
// a tick"). Each failure is logged individually; a fatal error from any one
// of the three still propagates, ending the tick and — if fatal — the Loop.
func (l *Loop) tick(ctx context.Context) error {
	syncing, err := l.remote.SyncProgress(ctx)
	if err != nil {
		return err
	}
	if syncing {
		l.logger.Info("remote node syncing, pausing signer tick")
		return nil
	}

	var fatalErr error
	if err := l.signOldestValset(ctx); err != nil {
		if isFatal(err) {
			fatalErr = err
		}
		l.logger.Error("sign valset failed", "error", err)
	}
	if err := l.signOldestBatch(ctx); err != nil {
		if isFatal(err) {
			fatalErr = err
		}
		l.logger.Error("sign batch failed", "error", err)
	}
	if err := l.signOldestLogicCall(ctx); err != nil {
		if isFatal(err) {
			fatalErr = err
		}
		l.logger.Error("sign logic call failed", "error", err)
	}
	return fatalErr
}

func isFatal(err error) bool {
	var orcErr *orcerr.Error
	return errors.As(err, &orcErr) && orcErr.Kind.Fatal()
}

func (l *Loop) signOldestValset(ctx context.Context) error {
	pending, err := l.native.PendingValsetConfirms(ctx, l.native.OrchestratorAddress())
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}
	oldest := pending[0]
	for _, v := range pending[1:] {
		if v.Nonce < oldest.Nonce {
			oldest = v
		}
	}

	vs, err := native.ToValidatorSet(oldest)
	if err != nil {
		return err
	}
	digest, err := codec.ValsetConfirmDigest(l.gravityID, vs)
	if err != nil {
		return err
	}
	sig, err := l.sign(digest)
	if err != nil {
		return err
	}

	msg := &native.MsgValsetConfirm{
		Nonce:        vs.Nonce,
		Orchestrator: l.native.OrchestratorAddress().String(),
		EthAddress:   l.signerKey.Account.Address.Hex(),
		Signature:    native.EncodeSignature(sig),
	}
	_, err = l.native.SubmitMsgs(ctx, msg)
	return err
}

func (l *Loop) signOldestBatch(ctx context.Context) error {
	pending, err := l.native.PendingBatches(ctx, l.native.OrchestratorAddress())
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}
	oldest := pending[0]
	for _, b := range pending[1:] {
		if b.Nonce < oldest.Nonce {
			oldest = b
		}
	}

	batch, err := native.ToTransactionBatch(oldest)
	if err != nil {
		return err
	}
	digest, err := codec.BatchConfirmDigest(l.gravityID, batch)
	if err != nil {
		return err
	}
	sig, err := l.sign(digest)
	if err != nil {
		return err
	}

	msg := &native.MsgConfirmBatch{
		Nonce:         batch.Nonce,
		TokenContract: batch.TokenContract.Hex(),
		Orchestrator:  l.native.OrchestratorAddress().String(),
		EthSigner:     l.signerKey.Account.Address.Hex(),
		Signature:     native.EncodeSignature(sig),
	}
	_, err = l.native.SubmitMsgs(ctx, msg)
	return err
}

func (l *Loop) signOldestLogicCall(ctx context.Context) error {
	pending, err := l.native.PendingLogicCalls(ctx, l.native.OrchestratorAddress())
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}
	oldest := pending[0]
	for _, c := range pending[1:] {
		if c.InvalidationNonce < oldest.InvalidationNonce {
			oldest = c
		}
	}

	call, err := native.ToLogicCall(oldest)
	if err != nil {
		return err
	}
	digest, err := codec.LogicCallConfirmDigest(l.gravityID, call)
	if err != nil {
		return err
	}
	sig, err := l.sign(digest)
	if err != nil {
		return err
	}

	msg := &native.MsgConfirmLogicCall{
		InvalidationId:    oldest.InvalidationId,
		InvalidationNonce: call.InvalidationNonce,
		Orchestrator:      l.native.OrchestratorAddress().String(),
		EthSigner:         l.signerKey.Account.Address.Hex(),
		Signature:         native.EncodeSignature(sig),
	}
	_, err = l.native.SubmitMsgs(ctx, msg)
	return err
}

// sign produces an EthSignature over digest using the unlocked remote key.
// The digest already carries the Ethereum signed-message prefix (see
// package codec), so this is a raw secp256k1 signature over 32 bytes, not a
// second round of personal-message hashing.
func (l *Loop) sign(digest common.Hash) (sig types.EthSignature, err error) {
	raw, err := l.signerKey.Store.SignHash(l.signerKey.Account, digest.Bytes())
	if err != nil {
		return sig, orcerr.Wrap(orcerr.KindTransient, "sign confirmation digest", err)
	}
	copy(sig.R[:], raw[0:32])
	copy(sig.S[:], raw[32:64])
	sig.V = raw[64] + 27
	return sig, nil
}

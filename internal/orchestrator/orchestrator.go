// Package orchestrator wires the Oracle, Signer and Relayer Loops into a
// single running process (spec §4.8), grounded on the teacher's
// oracle/daemon.Daemon: one gravity_id lookup shared by every loop, one
// remote and one native client shared by every loop, and a single Run that
// ends the moment any loop returns a fatal error.
package orchestrator

import (
	"context"
	"strings"
	"time"

	"cosmossdk.io/log"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	"github.com/gravity-bridge/orchestrator/internal/config"
	"github.com/gravity-bridge/orchestrator/internal/keys"
	"github.com/gravity-bridge/orchestrator/internal/native"
	"github.com/gravity-bridge/orchestrator/internal/oracleloop"
	"github.com/gravity-bridge/orchestrator/internal/orcerr"
	"github.com/gravity-bridge/orchestrator/internal/preflight"
	"github.com/gravity-bridge/orchestrator/internal/price"
	"github.com/gravity-bridge/orchestrator/internal/relayer"
	"github.com/gravity-bridge/orchestrator/internal/remote"
	"github.com/gravity-bridge/orchestrator/internal/signer"
)

// Orchestrator owns the clients and loops for one configured bridge
// instance. It is the single-run counterpart to the teacher's Daemon;
// restart-on-failure is a concern of the cli start command, not this type.
type Orchestrator struct {
	remote *remote.Client
	native *native.Client

	oracle  *oracleloop.Loop
	signer  *signer.Loop
	relayer *relayer.Loop // nil when cfg.Orchestrator.RelayerEnabled is false

	logger log.Logger
}

// New opens the native delegate keyring and remote signing keystore, dials
// both chains, reads gravity_id once, and builds every loop this process
// is configured to run.
func New(ctx context.Context, cfg *config.Config, logger log.Logger) (*Orchestrator, error) {
	nativeDelegate, err := keys.OpenNativeDelegate(cfg.Keys.NativeDelegate)
	if err != nil {
		return nil, err
	}
	remoteSigner, err := keys.OpenRemoteSigner(cfg.Keys.RemoteSigner)
	if err != nil {
		return nil, err
	}

	rpcTimeout := time.Duration(cfg.Timeouts.RPCDefaultSeconds) * time.Second

	// Both configured endpoints may be given as bare host:port, so resolve
	// the scheme that is actually reachable before dialing for real (spec
	// §1's "transparent URL-scheme fallback").
	remoteEndpoint, err := preflight.ResolveEndpoint(ctx, cfg.Chain.Remote.RPCEndpoint, rpcTimeout, preflight.DialProbe)
	if err != nil {
		return nil, orcerr.Wrap(orcerr.KindTransient, "resolve remote RPC endpoint", err)
	}
	nativeCfg := cfg.Chain.Native
	nativeCfg.GRPCEndpoint, err = preflight.ResolveEndpoint(ctx, cfg.Chain.Native.GRPCEndpoint, rpcTimeout, preflight.DialProbe)
	if err != nil {
		return nil, orcerr.Wrap(orcerr.KindTransient, "resolve native gRPC endpoint", err)
	}

	remoteClient, err := remote.New(
		ctx,
		remoteEndpoint,
		common.HexToAddress(cfg.Chain.Remote.ContractAddress),
		remoteSigner.Store,
		remoteSigner.Account,
		rpcTimeout,
	)
	if err != nil {
		return nil, err
	}

	nativeClient, err := native.New(ctx, nativeCfg, cfg.Gas, nativeDelegate, logger)
	if err != nil {
		remoteClient.Close()
		return nil, err
	}

	rawGravityID, err := remoteClient.GravityID(ctx)
	if err != nil {
		remoteClient.Close()
		nativeClient.Close()
		return nil, err
	}
	gravityID, err := trimGravityID(rawGravityID)
	if err != nil {
		remoteClient.Close()
		nativeClient.Close()
		return nil, err
	}

	oracle := oracleloop.New(remoteClient, nativeClient, nativeClient.OrchestratorAddress(), cfg.Chain.Remote.Network, logger)
	signerLoop := signer.New(remoteClient, nativeClient, remoteSigner, gravityID, logger)

	o := &Orchestrator{
		remote: remoteClient,
		native: nativeClient,
		oracle: oracle,
		signer: signerLoop,
		logger: logger,
	}

	if cfg.Orchestrator.RelayerEnabled {
		quoter := price.NewQuoter(remoteClient.ContractCaller())
		o.relayer = relayer.New(remoteClient, nativeClient, quoter, cfg.Relayer, gravityID, logger)
	}

	return o, nil
}

// trimGravityID converts the remote contract's fixed bytes32 gravity_id
// into the trimmed string form every codec digest function and the Signer
// and Relayer Loops expect: the field is right-padded with zero bytes
// on-chain.
func trimGravityID(raw [32]byte) (string, error) {
	id := strings.TrimRight(string(raw[:]), "\x00")
	if id == "" {
		return "", orcerr.New(orcerr.KindConfig, "remote contract reports an empty gravity_id")
	}
	return id, nil
}

// Close releases both chain clients. Callers should call Close once Run
// returns, whether it returned an error or not.
func (o *Orchestrator) Close() {
	o.remote.Close()
	o.native.Close()
}

// Run starts the Oracle and Signer Loops, and the Relayer Loop when
// configured, and blocks until ctx is cancelled or one of them returns a
// fatal error (spec §4.8: "the process exits on unrecoverable configuration
// errors and on repeated fee-insufficient signing failures"). A clean
// shutdown via ctx cancellation returns nil; cancelling one loop via
// errgroup cancels the shared context for the others, so no loop outlives
// the failure of its siblings.
func (o *Orchestrator) Run(ctx context.Context) error {
	o.logger.Info("starting bridge loops", "relayer_enabled", o.relayer != nil)

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error { return o.oracle.Run(gctx) })
	group.Go(func() error { return o.signer.Run(gctx) })
	if o.relayer != nil {
		group.Go(func() error { return o.relayer.Run(gctx) })
	}

	return group.Wait()
}

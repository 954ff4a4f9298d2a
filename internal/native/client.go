package native

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/tx"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptocodec "github.com/cosmos/cosmos-sdk/crypto/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdktx "github.com/cosmos/cosmos-sdk/types/tx"
	"github.com/cosmos/cosmos-sdk/types/tx/signing"
	authtx "github.com/cosmos/cosmos-sdk/x/auth/tx"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/gravity-bridge/orchestrator/internal/config"
	"github.com/gravity-bridge/orchestrator/internal/keys"
	"github.com/gravity-bridge/orchestrator/internal/orcerr"
)

// Client is the Native Client (spec §2): a typed wrapper over the bridge
// module's gRPC query service and the cosmos-sdk tx service, built the way
// the teacher's daemon wires its client.Context and tx.Factory
// (oracle/daemon/daemon.go), generalized from the teacher's guru-specific
// EthSecp256k1 keyring to a plain secp256k1 one (see internal/keys).
type Client struct {
	logger log.Logger
	conn   *grpc.ClientConn

	clientCtx   client.Context
	baseFactory tx.Factory
	delegate    *keys.NativeDelegate
	account     *AccountInfo

	chainID string
}

// New dials the native chain's gRPC endpoint and assembles the
// client.Context/tx.Factory pair every submit call reuses.
func New(ctx context.Context, cfg config.NativeChainConfig, gas config.GasConfig, delegate *keys.NativeDelegate, logger log.Logger) (*Client, error) {
	conn, err := grpc.NewClient(cfg.GRPCEndpoint, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, orcerr.Wrap(orcerr.KindConfig, "dial native gRPC endpoint", err)
	}

	registry := codectypes.NewInterfaceRegistry()
	cryptocodec.RegisterInterfaces(registry)
	authtypes.RegisterInterfaces(registry)
	RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)

	clientCtx := client.Context{}.
		WithCodec(cdc).
		WithInterfaceRegistry(registry).
		WithKeyring(delegate.Keyring).
		WithChainID(cfg.ChainID).
		WithFromAddress(delegate.Address).
		WithFromName(delegate.KeyName).
		WithGRPCClient(conn).
		WithBroadcastMode("sync")

	account := NewAccountInfo(authtypes.NewQueryClient(clientCtx), delegate.Address)
	if err := account.Reset(ctx); err != nil {
		logger.Error("failed to reset account info", "error", err)
	}

	baseFactory := tx.Factory{}.
		WithKeybase(delegate.Keyring).
		WithChainID(cfg.ChainID).
		WithGas(gas.Limit).
		WithGasAdjustment(gas.Adjustment).
		WithGasPrices(gas.Price + gas.Denom).
		WithSignMode(signing.SignMode_SIGN_MODE_DIRECT).
		WithTxConfig(authTxConfig(cdc, registry))

	return &Client{
		logger:      logger,
		conn:        conn,
		clientCtx:   clientCtx,
		baseFactory: baseFactory,
		delegate:    delegate,
		account:     account,
		chainID:     cfg.ChainID,
	}, nil
}

func (c *Client) Close() error { return c.conn.Close() }

// OrchestratorAddress is this validator's own orchestrator identity, the
// address every Pending*/LastEventNonce query in this file is scoped by.
// The Oracle Loop receives it once at construction; the Signer Loop reads
// it from here at each signing step. The Relayer Loop does not use it.
func (c *Client) OrchestratorAddress() sdk.AccAddress { return c.delegate.Address }

// query invokes method (a bridge-module query service RPC) against the
// gRPC connection, the same mechanism a generated QueryClient uses under
// the hood (ClientConn.Invoke with the service's full method path).
func (c *Client) query(ctx context.Context, method string, req, resp interface{}) error {
	fullMethod := fmt.Sprintf("/%s.Query/%s", moduleName, method)
	if err := c.conn.Invoke(ctx, fullMethod, req, resp); err != nil {
		return orcerr.Wrap(orcerr.KindTransient, fmt.Sprintf("query %s", method), err)
	}
	return nil
}

func (c *Client) Params(ctx context.Context) (*QueryParamsResponse, error) {
	resp := &QueryParamsResponse{}
	if err := c.query(ctx, "Params", &QueryParamsRequest{}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) CurrentValset(ctx context.Context) (*ValsetResponse, error) {
	resp := &QueryValsetResponse{}
	if err := c.query(ctx, "CurrentValset", &QueryCurrentValsetRequest{}, resp); err != nil {
		return nil, err
	}
	return resp.Valset, nil
}

func (c *Client) ValsetByNonce(ctx context.Context, nonce uint64) (*ValsetResponse, error) {
	resp := &QueryValsetResponse{}
	if err := c.query(ctx, "ValsetRequest", &QueryValsetRequest{Nonce: nonce}, resp); err != nil {
		return nil, err
	}
	return resp.Valset, nil
}

func (c *Client) LastValsets(ctx context.Context) ([]*ValsetResponse, error) {
	resp := &QueryLastValsetsResponse{}
	if err := c.query(ctx, "LastValsetRequests", &QueryLastValsetsRequest{}, resp); err != nil {
		return nil, err
	}
	return resp.Valsets, nil
}

// PendingValsetConfirms is the Signer Loop's "unsigned valsets" source
// (spec §4.6): valsets this orchestrator's validator has not yet confirmed.
func (c *Client) PendingValsetConfirms(ctx context.Context, orchestrator sdk.AccAddress) ([]*ValsetResponse, error) {
	resp := &QueryPendingValsetConfirmsResponse{}
	req := &QueryPendingValsetConfirmsRequest{Address: orchestrator.String()}
	if err := c.query(ctx, "LastPendingValsetRequestByAddr", req, resp); err != nil {
		return nil, err
	}
	return resp.Valsets, nil
}

func (c *Client) ValsetConfirmsByNonce(ctx context.Context, nonce uint64) ([]*ValsetConfirmResponse, error) {
	resp := &QueryValsetConfirmsByNonceResponse{}
	if err := c.query(ctx, "ValsetConfirmsByNonce", &QueryValsetConfirmsByNonceRequest{Nonce: nonce}, resp); err != nil {
		return nil, err
	}
	return resp.Confirms, nil
}

func (c *Client) PendingBatches(ctx context.Context, orchestrator sdk.AccAddress) ([]*BatchResponse, error) {
	resp := &QueryPendingBatchesResponse{}
	req := &QueryPendingBatchesRequest{Address: orchestrator.String()}
	if err := c.query(ctx, "LastPendingBatchRequestByAddr", req, resp); err != nil {
		return nil, err
	}
	return resp.Batches, nil
}

func (c *Client) LatestBatches(ctx context.Context) ([]*BatchResponse, error) {
	resp := &QueryLatestBatchesResponse{}
	if err := c.query(ctx, "OutgoingTxBatches", &QueryLatestBatchesRequest{}, resp); err != nil {
		return nil, err
	}
	return resp.Batches, nil
}

func (c *Client) BatchConfirms(ctx context.Context, nonce uint64, tokenContract string) ([]*BatchConfirmResponse, error) {
	resp := &QueryBatchConfirmsResponse{}
	req := &QueryBatchConfirmsRequest{Nonce: nonce, TokenContract: tokenContract}
	if err := c.query(ctx, "BatchConfirms", req, resp); err != nil {
		return nil, err
	}
	return resp.Confirms, nil
}

func (c *Client) PendingLogicCalls(ctx context.Context, orchestrator sdk.AccAddress) ([]*LogicCallResponse, error) {
	resp := &QueryPendingLogicCallsResponse{}
	req := &QueryPendingLogicCallsRequest{Address: orchestrator.String()}
	if err := c.query(ctx, "LastPendingLogicCallByAddr", req, resp); err != nil {
		return nil, err
	}
	return resp.Calls, nil
}

// LatestLogicCalls is the Relayer Loop's general logic-call relay source
// (spec §6.2 "latest logic calls"), unscoped by orchestrator address.
func (c *Client) LatestLogicCalls(ctx context.Context) ([]*LogicCallResponse, error) {
	resp := &QueryLatestLogicCallsResponse{}
	if err := c.query(ctx, "OutgoingLogicCalls", &QueryLatestLogicCallsRequest{}, resp); err != nil {
		return nil, err
	}
	return resp.Calls, nil
}

func (c *Client) LogicCallConfirms(ctx context.Context, invalidationID string) ([]*LogicCallConfirmResponse, error) {
	resp := &QueryLogicCallConfirmsResponse{}
	req := &QueryLogicCallConfirmsRequest{InvalidationId: invalidationID}
	if err := c.query(ctx, "LogicConfirms", req, resp); err != nil {
		return nil, err
	}
	return resp.Confirms, nil
}

// LastEventNonce is the Oracle Loop's and Oracle Resync's starting point
// (spec §4.4 step 1, §4.5's nonce filter): zero means this validator has
// never claimed an event.
func (c *Client) LastEventNonce(ctx context.Context, orchestrator sdk.AccAddress) (uint64, error) {
	resp := &QueryLastEventNonceByAddrResponse{}
	req := &QueryLastEventNonceByAddrRequest{Address: orchestrator.String()}
	if err := c.query(ctx, "LastEventNonceByAddr", req, resp); err != nil {
		return 0, err
	}
	return resp.EventNonce, nil
}

func (c *Client) DelegateKeysByValidator(ctx context.Context, validator sdk.ValAddress) (*QueryDelegateKeysResponse, error) {
	resp := &QueryDelegateKeysResponse{}
	req := &QueryDelegateKeysByValidatorRequest{ValidatorAddress: validator.String()}
	if err := c.query(ctx, "DelegateKeysByValidatorAddress", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// SubmitMsgs builds, signs and broadcasts one transaction containing msgs
// in order, mirroring submitter.Submitter.submit's sign/broadcast/result-
// code dispatch (oracle/submitter/submitter.go) generalized to an arbitrary
// message list — the Oracle Loop's claim batches and the Signer Loop's
// per-tick confirms both go through this one path.
func (c *Client) SubmitMsgs(ctx context.Context, msgs ...sdk.Msg) (*sdktx.BroadcastTxResponse, error) {
	factory := c.baseFactory.
		WithAccountNumber(c.account.AccountNumber()).
		WithSequence(c.account.CurrentSequenceNumber())

	txBuilder, err := factory.BuildUnsignedTx(msgs...)
	if err != nil {
		return nil, orcerr.Wrap(orcerr.KindDecoding, "build unsigned tx", err)
	}
	if err := tx.Sign(ctx, factory, c.delegate.KeyName, txBuilder, true); err != nil {
		return nil, orcerr.Wrap(orcerr.KindTransient, "sign tx", err)
	}

	txBytes, err := c.clientCtx.TxConfig.TxEncoder()(txBuilder.GetTx())
	if err != nil {
		return nil, orcerr.Wrap(orcerr.KindDecoding, "encode tx", err)
	}

	svcClient := sdktx.NewServiceClient(c.clientCtx)
	resp, err := svcClient.BroadcastTx(ctx, &sdktx.BroadcastTxRequest{
		TxBytes: txBytes,
		Mode:    sdktx.BroadcastMode_BROADCAST_MODE_SYNC,
	})
	if err != nil {
		return nil, orcerr.Wrap(orcerr.KindTransient, "broadcast tx", err)
	}

	return c.dispatchResult(ctx, resp)
}

// dispatchResult interprets the broadcast response code the way
// submitter.go does: success advances the local sequence counter, a
// sequence conflict resets it from chain state, and anything else not
// recognized is surfaced as-is for the caller's own error-kind mapping
// (spec §7 — insufficient fees in particular must reach the caller as
// fatal).
func (c *Client) dispatchResult(ctx context.Context, resp *sdktx.BroadcastTxResponse) (*sdktx.BroadcastTxResponse, error) {
	switch resp.TxResponse.Code {
	case 0:
		c.account.IncrementSequenceNumber()
		c.logger.Info("tx broadcast", "tx_hash", resp.TxResponse.TxHash)
		return resp, nil
	case 32, 33: // ErrWrongSequence, ErrInvalidSequence
		if err := c.account.Reset(ctx); err != nil {
			c.logger.Error("failed to reset account info after sequence error", "error", err)
		}
		return nil, orcerr.New(orcerr.KindTransient, fmt.Sprintf("sequence conflict, code %d: %s", resp.TxResponse.Code, resp.TxResponse.RawLog))
	case 13: // ErrInsufficientFee
		return nil, orcerr.New(orcerr.KindInsufficientFees, resp.TxResponse.RawLog)
	default:
		return nil, orcerr.New(orcerr.KindTransient, fmt.Sprintf("tx rejected, code %d: %s", resp.TxResponse.Code, resp.TxResponse.RawLog))
	}
}

func authTxConfig(cdc codec.Codec, registry codectypes.InterfaceRegistry) client.TxConfig {
	return authtx.NewTxConfig(cdc, authtx.DefaultSignModes)
}

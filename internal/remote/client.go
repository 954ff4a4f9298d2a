package remote

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/gravity-bridge/orchestrator/internal/orcerr"
	"github.com/gravity-bridge/orchestrator/internal/retry"
)

// Client is the Remote Client (spec §2): a typed wrapper over the remote
// chain's JSON-RPC for everything the Oracle Loop, Signer Loop and Relayer
// Loop need from the EVM side.
type Client struct {
	eth             *ethclient.Client
	contractAddress common.Address

	signerStore *keystore.KeyStore
	signer      accounts.Account
	chainID     *big.Int

	rpcTimeout time.Duration
}

// New dials the remote JSON-RPC endpoint and resolves the chain ID the
// signer must sign transactions against.
func New(ctx context.Context, rpcEndpoint string, contractAddress common.Address, signerStore *keystore.KeyStore, signer accounts.Account, rpcTimeout time.Duration) (*Client, error) {
	eth, err := ethclient.DialContext(ctx, rpcEndpoint)
	if err != nil {
		return nil, orcerr.Wrap(orcerr.KindTransient, "dial remote RPC endpoint", err)
	}

	cctx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()
	chainID, err := eth.ChainID(cctx)
	if err != nil {
		return nil, orcerr.Wrap(orcerr.KindTransient, "fetch remote chain id", err)
	}

	return &Client{
		eth:             eth,
		contractAddress: contractAddress,
		signerStore:     signerStore,
		signer:          signer,
		chainID:         chainID,
		rpcTimeout:      rpcTimeout,
	}, nil
}

// Close releases the underlying RPC connection.
func (c *Client) Close() { c.eth.Close() }

// ContractCaller exposes the underlying RPC client for read-only calls
// against contracts other than the bridge contract itself — the
// Relayer Loop's price.Quoter reads DEX pool reserves this way.
func (c *Client) ContractCaller() bind.ContractCaller { return c.eth }

// LatestBlock returns the remote chain's current block height.
func (c *Client) LatestBlock(ctx context.Context) (uint64, error) {
	cctx, cancel := context.WithTimeout(ctx, c.rpcTimeout)
	defer cancel()
	height, err := c.eth.BlockNumber(cctx)
	if err != nil {
		return 0, orcerr.Wrap(orcerr.KindTransient, "get remote block number", err)
	}
	return height, nil
}

// SyncProgress reports whether the remote node is still syncing, one of
// the Oracle/Signer Loop pause conditions (spec §4.5/§4.6).
func (c *Client) SyncProgress(ctx context.Context) (bool, error) {
	cctx, cancel := context.WithTimeout(ctx, c.rpcTimeout)
	defer cancel()
	progress, err := c.eth.SyncProgress(cctx)
	if err != nil {
		return false, orcerr.Wrap(orcerr.KindTransient, "get remote sync progress", err)
	}
	return progress != nil, nil
}

// call invokes a read-only contract method and unpacks its return values.
func (c *Client) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := parsedABI.Pack(method, args...)
	if err != nil {
		return nil, orcerr.Wrap(orcerr.KindDecoding, fmt.Sprintf("pack %s call", method), err)
	}

	cctx, cancel := context.WithTimeout(ctx, c.rpcTimeout)
	defer cancel()

	var result []byte
	err = retry.Do(cctx, retry.DefaultOptions, func(ctx context.Context) error {
		var callErr error
		result, callErr = c.eth.CallContract(ctx, ethereum.CallMsg{To: &c.contractAddress, Data: data}, nil)
		return callErr
	})
	if err != nil {
		return nil, orcerr.Wrap(orcerr.KindTransient, fmt.Sprintf("call %s", method), err)
	}

	values, err := parsedABI.Unpack(method, result)
	if err != nil {
		return nil, orcerr.Wrap(orcerr.KindDecoding, fmt.Sprintf("unpack %s result", method), err)
	}
	return values, nil
}

// GravityID reads the 32-byte chain salt mixed into every canonical
// message (spec §4.2), read once at orchestrator start.
func (c *Client) GravityID(ctx context.Context) ([32]byte, error) {
	values, err := c.call(ctx, "state_gravityId")
	if err != nil {
		return [32]byte{}, err
	}
	return values[0].([32]byte), nil
}

// CurrentValsetNonce reads the nonce of the valset currently held by the
// contract.
func (c *Client) CurrentValsetNonce(ctx context.Context) (uint64, error) {
	values, err := c.call(ctx, "state_lastValsetNonce")
	if err != nil {
		return 0, err
	}
	return asUint64("state_lastValsetNonce", values[0].(*big.Int))
}

// LastBatchNonce reads the contract's current batch nonce for tokenContract.
func (c *Client) LastBatchNonce(ctx context.Context, tokenContract common.Address) (uint64, error) {
	values, err := c.call(ctx, "lastBatchNonce", tokenContract)
	if err != nil {
		return 0, err
	}
	return asUint64("lastBatchNonce", values[0].(*big.Int))
}

// LastLogicCallNonce reads the contract's current invalidation nonce for
// the given invalidation scope.
func (c *Client) LastLogicCallNonce(ctx context.Context, invalidationID [32]byte) (uint64, error) {
	values, err := c.call(ctx, "lastLogicCallNonce", invalidationID)
	if err != nil {
		return 0, err
	}
	return asUint64("lastLogicCallNonce", values[0].(*big.Int))
}

func asUint64(field string, v *big.Int) (uint64, error) {
	if !v.IsUint64() {
		return 0, orcerr.New(orcerr.KindDecoding, fmt.Sprintf("%s overflows uint64: %s", field, v))
	}
	return v.Uint64(), nil
}

// estimateCost packs data for method and returns the estimated gas cost in
// wei (gas limit × suggested gas price), the Relayer Loop's input to its
// reward-vs-cost market gate (spec §4.7.1 step 3, §4.7.2, §4.7.3).
func (c *Client) estimateCost(ctx context.Context, method string, args ...interface{}) (*big.Int, error) {
	data, err := parsedABI.Pack(method, args...)
	if err != nil {
		return nil, orcerr.Wrap(orcerr.KindDecoding, fmt.Sprintf("pack %s call", method), err)
	}

	cctx, cancel := context.WithTimeout(ctx, c.rpcTimeout)
	defer cancel()

	gasPrice, err := c.eth.SuggestGasPrice(cctx)
	if err != nil {
		return nil, orcerr.Wrap(orcerr.KindTransient, "suggest gas price", err)
	}
	gasLimit, err := c.eth.EstimateGas(cctx, ethereum.CallMsg{
		From: c.signer.Address,
		To:   &c.contractAddress,
		Data: data,
	})
	if err != nil {
		return nil, orcerr.Wrap(orcerr.KindTransient, fmt.Sprintf("estimate gas for %s", method), err)
	}

	return new(big.Int).Mul(new(big.Int).SetUint64(gasLimit), gasPrice), nil
}

// sendTransaction packs data for method, estimates gas, signs with the
// unlocked remote key, and broadcasts, returning the mined receipt.
func (c *Client) sendTransaction(ctx context.Context, method string, args ...interface{}) (*ethtypes.Receipt, error) {
	data, err := parsedABI.Pack(method, args...)
	if err != nil {
		return nil, orcerr.Wrap(orcerr.KindDecoding, fmt.Sprintf("pack %s call", method), err)
	}

	cctx, cancel := context.WithTimeout(ctx, c.rpcTimeout)
	defer cancel()

	nonce, err := c.eth.PendingNonceAt(cctx, c.signer.Address)
	if err != nil {
		return nil, orcerr.Wrap(orcerr.KindTransient, "fetch pending nonce", err)
	}
	gasPrice, err := c.eth.SuggestGasPrice(cctx)
	if err != nil {
		return nil, orcerr.Wrap(orcerr.KindTransient, "suggest gas price", err)
	}
	gasLimit, err := c.eth.EstimateGas(cctx, ethereum.CallMsg{
		From: c.signer.Address,
		To:   &c.contractAddress,
		Data: data,
	})
	if err != nil {
		return nil, orcerr.Wrap(orcerr.KindTransient, fmt.Sprintf("estimate gas for %s", method), err)
	}

	tx := ethtypes.NewTx(&ethtypes.LegacyTx{
		Nonce:    nonce,
		To:       &c.contractAddress,
		Value:    big.NewInt(0),
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})

	signedTx, err := c.signerStore.SignTx(c.signer, tx, c.chainID)
	if err != nil {
		return nil, orcerr.Wrap(orcerr.KindTransient, "sign remote transaction", err)
	}

	if err := c.eth.SendTransaction(cctx, signedTx); err != nil {
		return nil, orcerr.Wrap(orcerr.KindTransient, fmt.Sprintf("broadcast %s transaction", method), err)
	}

	return c.waitForReceipt(ctx, signedTx.Hash())
}

// waitForReceipt polls for a transaction's inclusion up to the client's
// rpc timeout, the deadline spec §5 requires transaction confirmation
// polling to respect.
func (c *Client) waitForReceipt(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error) {
	deadline := time.Now().Add(c.rpcTimeout)
	for {
		receipt, err := c.eth.TransactionReceipt(ctx, txHash)
		if err == nil {
			return receipt, nil
		}
		if time.Now().After(deadline) {
			return nil, orcerr.Wrap(orcerr.KindTransient, fmt.Sprintf("transaction %s not confirmed before deadline", txHash), err)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(2 * time.Second):
		}
	}
}

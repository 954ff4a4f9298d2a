// Package keys loads the two signing keys an orchestrator instance runs
// with: a native-chain delegate key (cosmos-sdk keyring, used to sign and
// broadcast claims/confirms to the native chain) and a remote-chain ECDSA
// signing key (a go-ethereum keystore, used to sign checkpoint digests for
// the remote chain). Loading is separated from use: callers get back a
// keyring.Keyring/address pair and a keystore/account pair, then hand those
// to the native and remote clients respectively.
package keys

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	cryptocodec "github.com/cosmos/cosmos-sdk/crypto/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/keystore"

	"github.com/gravity-bridge/orchestrator/internal/config"
	"github.com/gravity-bridge/orchestrator/internal/orcerr"
)

// NativeDelegate is the native-chain signing identity: a keyring holding the
// delegate key, the key's own name within it, and its resolved address.
type NativeDelegate struct {
	Keyring keyring.Keyring
	KeyName string
	Address sdk.AccAddress
}

// OpenNativeDelegate opens the on-disk keyring named in cfg and resolves the
// configured key to its address, failing fast if the key does not exist
// rather than at first broadcast.
//
// Unlike the chain this orchestrator bridges against, the native chain here
// uses plain cosmos-sdk secp256k1 accounts, so the keyring is built with the
// library's default codec and no custom HD algo option.
func OpenNativeDelegate(cfg config.NativeDelegateKeyConfig) (*NativeDelegate, error) {
	registry := codectypes.NewInterfaceRegistry()
	cryptocodec.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)

	var userInput io.Reader = os.Stdin
	if cfg.KeyringBackend == keyring.BackendTest || cfg.KeyringBackend == keyring.BackendMemory {
		userInput = strings.NewReader("")
	}

	kr, err := keyring.New("orchestrator", cfg.KeyringBackend, cfg.KeyringDir, userInput, cdc)
	if err != nil {
		return nil, orcerr.Wrap(orcerr.KindConfig, "open native keyring", err)
	}

	info, err := kr.Key(cfg.KeyringName)
	if err != nil {
		return nil, orcerr.Wrap(orcerr.KindConfig, fmt.Sprintf("look up delegate key %q", cfg.KeyringName), err)
	}
	address, err := info.GetAddress()
	if err != nil {
		return nil, orcerr.Wrap(orcerr.KindConfig, "resolve delegate key address", err)
	}

	return &NativeDelegate{Keyring: kr, KeyName: cfg.KeyringName, Address: address}, nil
}

// RemoteSigner is the remote-chain signing identity: a keystore holding the
// ECDSA key and the unlocked account within it. The key is kept unlocked for
// the lifetime of the process, the same tradeoff an orchestrator's
// always-on signer loop makes for every request signed against it.
type RemoteSigner struct {
	Store   *keystore.KeyStore
	Account accounts.Account
}

// OpenRemoteSigner opens the keystore directory named in cfg, locates its
// (sole) account, and unlocks it using the passphrase read from the
// configured environment variable.
func OpenRemoteSigner(cfg config.RemoteSignerKeyConfig) (*RemoteSigner, error) {
	ks := keystore.NewKeyStore(cfg.KeystorePath, keystore.StandardScryptN, keystore.StandardScryptP)

	accs := ks.Accounts()
	if len(accs) == 0 {
		return nil, orcerr.New(orcerr.KindConfig, fmt.Sprintf("no accounts found in keystore %q", cfg.KeystorePath))
	}
	if len(accs) > 1 {
		return nil, orcerr.New(orcerr.KindConfig, fmt.Sprintf(
			"keystore %q holds %d accounts, expected exactly one signing key", cfg.KeystorePath, len(accs)))
	}
	account := accs[0]

	passphrase := os.Getenv(cfg.PassphraseEnv)
	if passphrase == "" {
		return nil, orcerr.New(orcerr.KindConfig, fmt.Sprintf(
			"remote signer passphrase environment variable %q is unset or empty", cfg.PassphraseEnv))
	}

	if err := ks.Unlock(account, passphrase); err != nil {
		return nil, orcerr.Wrap(orcerr.KindConfig, "unlock remote signing key", err)
	}

	return &RemoteSigner{Store: ks, Account: account}, nil
}

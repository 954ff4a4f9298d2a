package keys

import (
	"strings"
	"testing"

	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptocodec "github.com/cosmos/cosmos-sdk/crypto/codec"
	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	"github.com/ethereum/go-ethereum/accounts/keystore"

	"github.com/gravity-bridge/orchestrator/internal/config"
)

func newTestKeyringWithKey(t *testing.T, dir, keyName string) {
	t.Helper()
	registry := codectypes.NewInterfaceRegistry()
	cryptocodec.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)

	in := strings.NewReader("")
	kr, err := keyring.New("orchestrator", keyring.BackendTest, dir, in, cdc)
	if err != nil {
		t.Fatalf("keyring.New: %v", err)
	}
	if _, _, err := kr.NewMnemonic(keyName, keyring.English, "", keyring.DefaultBIP39Passphrase, hd.Secp256k1); err != nil {
		t.Fatalf("NewMnemonic: %v", err)
	}
}

func TestOpenNativeDelegate_ResolvesAddress(t *testing.T) {
	dir := t.TempDir()
	newTestKeyringWithKey(t, dir, "delegate")

	nd, err := OpenNativeDelegate(config.NativeDelegateKeyConfig{
		KeyringBackend: keyring.BackendTest,
		KeyringName:    "delegate",
		KeyringDir:     dir,
	})
	if err != nil {
		t.Fatalf("OpenNativeDelegate: %v", err)
	}
	if nd.Address.Empty() {
		t.Fatal("expected a resolved, non-empty address")
	}
	if nd.KeyName != "delegate" {
		t.Fatalf("key name: got %q want %q", nd.KeyName, "delegate")
	}
}

func TestOpenNativeDelegate_MissingKey(t *testing.T) {
	dir := t.TempDir()
	newTestKeyringWithKey(t, dir, "delegate")

	if _, err := OpenNativeDelegate(config.NativeDelegateKeyConfig{
		KeyringBackend: keyring.BackendTest,
		KeyringName:    "does-not-exist",
		KeyringDir:     dir,
	}); err == nil {
		t.Fatal("expected an error for a key name absent from the keyring")
	}
}

func TestOpenRemoteSigner_UnlocksAccount(t *testing.T) {
	dir := t.TempDir()
	ks := keystore.NewKeyStore(dir, keystore.LightScryptN, keystore.LightScryptP)
	if _, err := ks.NewAccount("correct horse battery staple"); err != nil {
		t.Fatalf("NewAccount: %v", err)
	}

	t.Setenv("ORCH_REMOTE_SIGNER_PASSPHRASE", "correct horse battery staple")

	rs, err := OpenRemoteSigner(config.RemoteSignerKeyConfig{
		KeystorePath:  dir,
		PassphraseEnv: "ORCH_REMOTE_SIGNER_PASSPHRASE",
	})
	if err != nil {
		t.Fatalf("OpenRemoteSigner: %v", err)
	}
	if rs.Account.Address.Hex() == "0x0000000000000000000000000000000000000000" {
		t.Fatal("expected a non-zero account address")
	}
}

func TestOpenRemoteSigner_WrongPassphrase(t *testing.T) {
	dir := t.TempDir()
	ks := keystore.NewKeyStore(dir, keystore.LightScryptN, keystore.LightScryptP)
	if _, err := ks.NewAccount("correct horse battery staple"); err != nil {
		t.Fatalf("NewAccount: %v", err)
	}

	t.Setenv("ORCH_REMOTE_SIGNER_PASSPHRASE", "wrong passphrase")

	if _, err := OpenRemoteSigner(config.RemoteSignerKeyConfig{
		KeystorePath:  dir,
		PassphraseEnv: "ORCH_REMOTE_SIGNER_PASSPHRASE",
	}); err == nil {
		t.Fatal("expected an error for an incorrect passphrase")
	}
}

func TestOpenRemoteSigner_MultipleAccounts(t *testing.T) {
	dir := t.TempDir()
	ks := keystore.NewKeyStore(dir, keystore.LightScryptN, keystore.LightScryptP)
	if _, err := ks.NewAccount("pass1"); err != nil {
		t.Fatalf("NewAccount: %v", err)
	}
	if _, err := ks.NewAccount("pass2"); err != nil {
		t.Fatalf("NewAccount: %v", err)
	}

	t.Setenv("ORCH_REMOTE_SIGNER_PASSPHRASE", "pass1")

	if _, err := OpenRemoteSigner(config.RemoteSignerKeyConfig{
		KeystorePath:  dir,
		PassphraseEnv: "ORCH_REMOTE_SIGNER_PASSPHRASE",
	}); err == nil {
		t.Fatal("expected an error when the keystore holds more than one account")
	}
}

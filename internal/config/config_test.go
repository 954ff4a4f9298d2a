package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile_NotExists(t *testing.T) {
	t.Parallel()
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoadFile_PathIsDir(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	_, err := LoadFile(dir)
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoadFile_ValidationMissingFields(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	p := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(p, []byte(`[chain.native]
chain_id = ""
grpc_endpoint = ""
cometbft_endpoint = ""

[chain.remote]
rpc_endpoint = ""
network = "unknown"
contract_address = ""

[keys.native_delegate]
keyring_backend = ""
keyring_name = ""

[keys.remote_signer]
keystore_path = ""
`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadFile(p)
	if err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadFile_Valid(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	p := filepath.Join(dir, "config.toml")
	if err := WriteDefaultFile(p); err != nil {
		t.Fatalf("WriteDefaultFile: %v", err)
	}

	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if cfg.Chain.Native.ChainID != "nativechain-1" {
		t.Fatalf("unexpected chain id: %s", cfg.Chain.Native.ChainID)
	}
	if !cfg.Orchestrator.RelayerEnabled {
		t.Fatalf("expected relayer enabled by default")
	}
	if cfg.Relayer.ValsetMarketEnabled {
		t.Fatalf("expected valset market disabled by default")
	}
	if !cfg.Relayer.BatchMarketEnabled || !cfg.Relayer.LogicCallMarketEnabled {
		t.Fatalf("expected batch and logic call markets enabled by default")
	}
}

func TestWriteDefaultFile_CreatesDir(t *testing.T) {
	t.Parallel()
	base := t.TempDir()
	path := filepath.Join(base, "nested", "config.toml")
	if err := WriteDefaultFile(path); err != nil {
		t.Fatalf("WriteDefaultFile error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file to exist: %v", err)
	}
}

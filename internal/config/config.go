// Package config loads the orchestrator's TOML configuration file, modeled
// directly on the teacher's oracle/config package (viper + minimal
// validation, a WriteDefaultFile for `init`), expanded with the bridge's
// two-chain and relayer-market sections (spec §6.3, SPEC_FULL.md Ambient
// Stack/Configuration).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Chain        ChainConfig        `mapstructure:"chain"`
	Keys         KeysConfig         `mapstructure:"keys"`
	Orchestrator OrchestratorConfig `mapstructure:"orchestrator"`
	Relayer      RelayerConfig      `mapstructure:"relayer"`
	Timeouts     TimeoutsConfig     `mapstructure:"timeouts"`
	Gas          GasConfig          `mapstructure:"gas"`
}

// GasConfig configures the native-chain tx.Factory the Signer and Oracle
// Loops build claim/confirm transactions with, mirroring the teacher's
// cfg.Gas block.
type GasConfig struct {
	Denom      string  `mapstructure:"denom"`
	Price      string  `mapstructure:"price"`
	Limit      uint64  `mapstructure:"limit"`
	Adjustment float64 `mapstructure:"adjustment"`
}

type ChainConfig struct {
	Native NativeChainConfig `mapstructure:"native"`
	Remote RemoteChainConfig `mapstructure:"remote"`
}

type NativeChainConfig struct {
	ChainID          string `mapstructure:"chain_id"`
	GRPCEndpoint     string `mapstructure:"grpc_endpoint"`
	CometBFTEndpoint string `mapstructure:"cometbft_endpoint"`
}

type RemoteChainConfig struct {
	RPCEndpoint     string `mapstructure:"rpc_endpoint"`
	Network         string `mapstructure:"network"` // selects the block-delay table entry, spec §4.5
	ContractAddress string `mapstructure:"contract_address"`
}

type KeysConfig struct {
	NativeDelegate NativeDelegateKeyConfig `mapstructure:"native_delegate"`
	RemoteSigner   RemoteSignerKeyConfig   `mapstructure:"remote_signer"`
}

type NativeDelegateKeyConfig struct {
	KeyringBackend string `mapstructure:"keyring_backend"`
	KeyringName    string `mapstructure:"keyring_name"`
	KeyringDir     string `mapstructure:"keyring_dir"`
}

type RemoteSignerKeyConfig struct {
	KeystorePath  string `mapstructure:"keystore_path"`
	PassphraseEnv string `mapstructure:"passphrase_env"`
}

type OrchestratorConfig struct {
	RelayerEnabled bool `mapstructure:"relayer_enabled"`
}

type RelayerConfig struct {
	ValsetMarketEnabled    bool `mapstructure:"valset_market_enabled"`
	BatchMarketEnabled     bool `mapstructure:"batch_market_enabled"`
	LogicCallMarketEnabled bool `mapstructure:"logic_call_market_enabled"`
	// PriceMarginBps biases the reward>cost relay-market comparison by a
	// margin in basis points, decided at DESIGN.md open question (ii).
	PriceMarginBps int64 `mapstructure:"price_margin_bps"`
	// ReferenceToken is the canonical token (spec §4.7: "WETH") reward
	// value is converted into before comparing against gas cost.
	ReferenceToken string `mapstructure:"reference_token"`
	// PricePools maps a reward token contract address to the
	// constant-product pool quoting it against ReferenceToken, for
	// reward tokens that are not already the reference token.
	PricePools map[string]string `mapstructure:"price_pools"`
}

type TimeoutsConfig struct {
	RPCDefaultSeconds    int `mapstructure:"rpc_default_seconds"`
	BatchSubmitSeconds   int `mapstructure:"batch_submit_seconds"`
	ResyncWindowSeconds  int `mapstructure:"resync_window_seconds"`
}

func LoadFile(path string) (*Config, error) {
	if st, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", os.ErrNotExist, path)
		}
		return nil, fmt.Errorf("stat config file: %w", err)
	} else if st.IsDir() {
		return nil, fmt.Errorf("config path is a directory: %s", path)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate performs the minimal structural checks needed before wiring
// clients; deeper validation (e.g. that the remote contract address is a
// deployed contract) happens once the orchestrator actually dials out.
func (c *Config) Validate() error {
	if c.Chain.Native.ChainID == "" {
		return fmt.Errorf("chain.native.chain_id is required")
	}
	if c.Chain.Native.GRPCEndpoint == "" {
		return fmt.Errorf("chain.native.grpc_endpoint is required")
	}
	if c.Chain.Native.CometBFTEndpoint == "" {
		return fmt.Errorf("chain.native.cometbft_endpoint is required")
	}
	if c.Chain.Remote.RPCEndpoint == "" {
		return fmt.Errorf("chain.remote.rpc_endpoint is required")
	}
	if c.Chain.Remote.ContractAddress == "" {
		return fmt.Errorf("chain.remote.contract_address is required")
	}
	if c.Keys.NativeDelegate.KeyringName == "" {
		return fmt.Errorf("keys.native_delegate.keyring_name is required")
	}
	if c.Keys.NativeDelegate.KeyringBackend == "" {
		return fmt.Errorf("keys.native_delegate.keyring_backend is required")
	}
	if c.Keys.RemoteSigner.KeystorePath == "" {
		return fmt.Errorf("keys.remote_signer.keystore_path is required")
	}
	if c.Gas.Denom == "" {
		return fmt.Errorf("gas.denom is required")
	}
	return nil
}

func WriteDefaultFile(path string) error {
	defaultConfig := []byte(`# Bridge orchestrator configuration

[chain.native]
chain_id = "nativechain-1"
grpc_endpoint = "localhost:9090"
cometbft_endpoint = "http://localhost:26657"

[chain.remote]
rpc_endpoint = "http://localhost:8545"
network = "unknown"
contract_address = "0x0000000000000000000000000000000000000000"

[keys.native_delegate]
keyring_backend = "test"
keyring_name = "orchestrator"
keyring_dir = ""

[keys.remote_signer]
keystore_path = ""
passphrase_env = "ORCHESTRATOR_REMOTE_KEY_PASSPHRASE"

[orchestrator]
relayer_enabled = true

[relayer]
valset_market_enabled = false
batch_market_enabled = true
logic_call_market_enabled = true
price_margin_bps = 0
reference_token = "0x0000000000000000000000000000000000000000"

[relayer.price_pools]

[timeouts]
rpc_default_seconds = 30
batch_submit_seconds = 120
resync_window_seconds = 60

[gas]
denom = "stake"
price = "0.025"
limit = 300000
adjustment = 1.5
`)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, defaultConfig, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

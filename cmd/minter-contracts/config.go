package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vocdoni/nft-token-minter/config"
	"github.com/vocdoni/nft-token-minter/log"
	"github.com/vocdoni/nft-token-minter/web3"
)

const (
	defaultNetwork   = "sep"
	defaultFormat    = formatText
	defaultLogLevel  = "info"
	defaultLogOutput = "stderr"

	formatText = "text"
	formatJSON = "json"
	formatCBOR = "cbor"

	envPrefix = "MINTER"
)

// dumpTargets maps the --dump values to contract names.
var dumpTargets = map[string]string{
	"nft":   web3.NFTMinterContract,
	"token": web3.TokenMinterContract,
}

// Config holds the application configuration
type Config struct {
	Web3   Web3Config
	Log    LogConfig
	Format string `mapstructure:"format"`
	Dump   string `mapstructure:"dump"`
}

// Web3Config selects the network and optional address overrides
type Web3Config struct {
	Network     string `mapstructure:"network"`
	NFTMinter   string `mapstructure:"nft"`
	TokenMinter string `mapstructure:"token"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Output string `mapstructure:"output"`
}

// loadConfig loads configuration from flags, environment variables, and defaults
func loadConfig(fs *flag.FlagSet, args []string) (*Config, error) {
	v := viper.New()

	v.SetDefault("web3.network", defaultNetwork)
	v.SetDefault("format", defaultFormat)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("log.output", defaultLogOutput)

	fs.StringP("web3.network", "n", defaultNetwork, fmt.Sprintf("network to use %v", config.AvailableNetworks))
	fs.String("web3.nft", "", "custom nft minter contract address (overrides network default)")
	fs.String("web3.token", "", "custom token minter contract address (overrides network default)")
	fs.StringP("format", "f", defaultFormat, "output format (text or json, cbor only with --dump)")
	fs.String("dump", "", "print the interface descriptor of a contract (nft or token) and exit")
	fs.StringP("log.level", "l", defaultLogLevel, "log level (debug, info, warn, error)")
	fs.StringP("log.output", "o", defaultLogOutput, "log output (stdout, stderr or filepath)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: minter-contracts [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the deployed addresses and interface selectors of the minter contracts.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment variables are also available with the same name as flags,\n")
		fmt.Fprintf(os.Stderr, "  with dots (.) replaced by underscores (_) and the %s_ prefix.\n", envPrefix)
		fmt.Fprintf(os.Stderr, "  For example, %s_WEB3_NETWORK or %s_LOG_LEVEL\n", envPrefix, envPrefix)
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # List the sepolia catalog as JSON\n")
		fmt.Fprintf(os.Stderr, "  minter-contracts --format=json\n\n")
		fmt.Fprintf(os.Stderr, "  # Dump the token minter ABI\n")
		fmt.Fprintf(os.Stderr, "  minter-contracts --dump=token\n\n")
		fmt.Fprintf(os.Stderr, "  # Write the nft minter ABI in binary form\n")
		fmt.Fprintf(os.Stderr, "  minter-contracts --dump=nft --format=cbor > nft.cbor\n")
	}

	fs.SortFlags = false
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("error binding flags: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return cfg, nil
}

// validateConfig validates the loaded configuration
func validateConfig(cfg *Config) error {
	if !slices.Contains(config.AvailableNetworks, cfg.Web3.Network) {
		return fmt.Errorf("invalid network %s, available networks: %v", cfg.Web3.Network, config.AvailableNetworks)
	}
	switch cfg.Format {
	case formatText, formatJSON:
	case formatCBOR:
		if cfg.Dump == "" {
			return fmt.Errorf("format %s requires --dump", formatCBOR)
		}
	default:
		return fmt.Errorf("invalid format %q, use %s, %s or %s", cfg.Format, formatText, formatJSON, formatCBOR)
	}
	if _, ok := dumpTargets[cfg.Dump]; cfg.Dump != "" && !ok {
		return fmt.Errorf("invalid dump target %q, use nft or token", cfg.Dump)
	}
	if !slices.Contains(log.Levels, cfg.Log.Level) {
		return fmt.Errorf("invalid log level %q, available levels: %v", cfg.Log.Level, log.Levels)
	}
	for _, override := range []struct{ name, addr string }{
		{"nft", cfg.Web3.NFTMinter},
		{"token", cfg.Web3.TokenMinter},
	} {
		if override.addr == "" {
			continue
		}
		addr, err := web3.ParseAddress(override.addr)
		if err != nil {
			return fmt.Errorf("web3.%s: %w", override.name, err)
		}
		if addr == (common.Address{}) {
			return fmt.Errorf("web3.%s: zero address override", override.name)
		}
	}
	return nil
}

// addressOverrides returns the custom addresses of the configuration, or
// nil if none was set. It expects a validated configuration.
func addressOverrides(cfg *Config) *web3.Addresses {
	if cfg.Web3.NFTMinter == "" && cfg.Web3.TokenMinter == "" {
		return nil
	}
	overrides := &web3.Addresses{}
	if cfg.Web3.NFTMinter != "" {
		overrides.NFTMinter = common.HexToAddress(cfg.Web3.NFTMinter)
	}
	if cfg.Web3.TokenMinter != "" {
		overrides.TokenMinter = common.HexToAddress(cfg.Web3.TokenMinter)
	}
	return overrides
}

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/viper"

	"github.com/ninja0404/launchpad-go-sdk/pkg/constants"
)

// EnvPrefix prefixes every environment override, e.g. LAUNCHPAD_RPC_URL.
const EnvPrefix = "LAUNCHPAD"

// JitoConfig configures block engine submission.
type JitoConfig struct {
	URL         string
	UUID        string
	TipLamports uint64
}

// Config is the full SDK configuration.
type Config struct {
	RPC       RPCConfig
	ProgramID solana.PublicKey
	Jito      JitoConfig
	LogLevel  string
}

type fileConfig struct {
	Network      string        `mapstructure:"network"`
	RPCURL       string        `mapstructure:"rpc_url"`
	Commitment   string        `mapstructure:"commitment"`
	Timeout      time.Duration `mapstructure:"timeout"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	RateLimit    struct {
		RPS   float64 `mapstructure:"rps"`
		Burst int     `mapstructure:"burst"`
	} `mapstructure:"rate_limit"`
	ProgramID string `mapstructure:"program_id"`
	Jito      struct {
		URL         string `mapstructure:"url"`
		UUID        string `mapstructure:"uuid"`
		TipLamports uint64 `mapstructure:"tip_lamports"`
	} `mapstructure:"jito"`
	LogLevel string `mapstructure:"log_level"`
}

// Load reads configuration from path (any format viper understands) and
// LAUNCHPAD_* environment variables. An empty path loads defaults and
// environment only.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := DefaultRPCConfig()
	defaults := map[string]interface{}{
		"network":           string(def.Network),
		"rpc_url":           "",
		"commitment":        def.Commitment,
		"timeout":           def.Timeout,
		"poll_interval":     def.PollInterval,
		"rate_limit.rps":    def.RateLimit.RPS,
		"rate_limit.burst":  def.RateLimit.Burst,
		"program_id":        constants.LaunchpadProgramID.String(),
		"jito.url":          "",
		"jito.uuid":         "",
		"jito.tip_lamports": uint64(0),
		"log_level":         "info",
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg, err := fc.resolve()
	if err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func (fc fileConfig) resolve() (*Config, error) {
	programID, err := solana.PublicKeyFromBase58(fc.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("invalid program_id %q: %w", fc.ProgramID, err)
	}
	rpcCfg := DefaultRPCConfig()
	rpcCfg.Network = Network(fc.Network)
	rpcCfg.RPCURL = fc.RPCURL
	rpcCfg.Commitment = fc.Commitment
	rpcCfg.Timeout = fc.Timeout
	rpcCfg.PollInterval = fc.PollInterval
	rpcCfg.RateLimit = RateLimitConfig{RPS: fc.RateLimit.RPS, Burst: fc.RateLimit.Burst}
	return &Config{
		RPC:       rpcCfg,
		ProgramID: programID,
		Jito: JitoConfig{
			URL:         fc.Jito.URL,
			UUID:        fc.Jito.UUID,
			TipLamports: fc.Jito.TipLamports,
		},
		LogLevel: fc.LogLevel,
	}, nil
}

// Validate checks the resolved configuration.
func (c *Config) Validate() error {
	switch c.RPC.Network {
	case NetworkMainnet, NetworkTestnet, NetworkDevnet, NetworkLocalnet:
	case NetworkCustom:
		if c.RPC.RPCURL == "" {
			return errors.New("rpc_url is required for custom network")
		}
	default:
		return fmt.Errorf("unknown network %q", c.RPC.Network)
	}
	if err := validateURL(c.RPC.ResolveRPCURL(), "http"); err != nil {
		return fmt.Errorf("rpc_url: %w", err)
	}
	switch c.RPC.Commitment {
	case "processed", "confirmed", "finalized":
	default:
		return fmt.Errorf("invalid commitment %q", c.RPC.Commitment)
	}
	if c.RPC.Timeout < 0 {
		return errors.New("invalid timeout")
	}
	if c.RPC.RateLimit.RPS < 0 || c.RPC.RateLimit.Burst < 0 {
		return errors.New("invalid rate_limit")
	}
	if c.ProgramID.IsZero() {
		return errors.New("program_id cannot be zero")
	}
	if c.Jito.URL != "" {
		if err := validateURL(c.Jito.URL, "http"); err != nil {
			return fmt.Errorf("jito.url: %w", err)
		}
	}
	return nil
}

func validateURL(rawURL, protocol string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errors.New("invalid URL format")
	}
	if !strings.HasPrefix(parsed.Scheme, protocol) {
		return errors.New("invalid URL protocol")
	}
	return nil
}

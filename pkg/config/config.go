package config

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Network defines the target Solana cluster.
type Network string

const (
	NetworkMainnet  Network = "mainnet"
	NetworkTestnet  Network = "testnet"
	NetworkDevnet   Network = "devnet"
	NetworkLocalnet Network = "localnet"
	NetworkCustom   Network = "custom"
)

// DefaultRPCURL returns the standard RPC endpoint for a known network.
func DefaultRPCURL(network Network) string {
	switch network {
	case NetworkMainnet:
		return "https://api.mainnet-beta.solana.com"
	case NetworkTestnet:
		return "https://api.testnet.solana.com"
	case NetworkDevnet:
		return "https://api.devnet.solana.com"
	case NetworkLocalnet:
		return "http://127.0.0.1:8899"
	default:
		return ""
	}
}

// RateLimitConfig throttles outbound RPC calls.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// RPCConfig aggregates runtime settings for RPC usage. Failed calls are not
// retried; callers own their retry policy.
type RPCConfig struct {
	Network    Network
	RPCURL     string
	Commitment string
	Timeout    time.Duration
	// PollInterval is the signature status polling period used while
	// waiting for confirmation.
	PollInterval time.Duration
	RateLimit    RateLimitConfig
	Logger       zerolog.Logger
}

// DefaultRPCConfig yields production-safe defaults (mainnet, confirmed commitment).
func DefaultRPCConfig() RPCConfig {
	return RPCConfig{
		Network:      NetworkMainnet,
		RPCURL:       DefaultRPCURL(NetworkMainnet),
		Commitment:   "confirmed",
		Timeout:      20 * time.Second,
		PollInterval: 500 * time.Millisecond,
		RateLimit: RateLimitConfig{
			RPS:   8,
			Burst: 16,
		},
		Logger: zerolog.New(io.Discard),
	}
}

// ResolveRPCURL returns RPCURL if set, otherwise falls back to network defaults.
func (c RPCConfig) ResolveRPCURL() string {
	if c.RPCURL != "" {
		return c.RPCURL
	}
	return DefaultRPCURL(c.Network)
}

// Package rpc is the chain-access layer: account reads, blockhashes and
// submission of signed transactions over Solana JSON-RPC.
//
// Calls are rate limited and time bounded but never retried. A failed call
// returns a types.RPCError naming the method.
package rpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	solanarpc "github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/ninja0404/launchpad-go-sdk/pkg/config"
	"github.com/ninja0404/launchpad-go-sdk/pkg/types"
)

// Client wraps solana-go rpc.Client with timeout and rate limiting.
type Client struct {
	raw     *solanarpc.Client
	cfg     config.RPCConfig
	limiter *rate.Limiter
	log     zerolog.Logger
}

// NewClient builds a configured Client.
func NewClient(cfg config.RPCConfig) *Client {
	return newClient(solanarpc.New(cfg.ResolveRPCURL()), cfg)
}

func newClient(raw *solanarpc.Client, cfg config.RPCConfig) *Client {
	var limiter *rate.Limiter
	if cfg.RateLimit.RPS > 0 {
		burst := cfg.RateLimit.Burst
		if burst == 0 {
			burst = int(cfg.RateLimit.RPS * 2)
		}
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), burst)
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 500 * time.Millisecond
	}
	if cfg.Commitment == "" {
		cfg.Commitment = string(solanarpc.CommitmentConfirmed)
	}

	log := cfg.Logger
	if log.GetLevel() == zerolog.NoLevel {
		log = zerolog.Nop()
	}

	return &Client{
		raw:     raw,
		cfg:     cfg,
		limiter: limiter,
		log:     log,
	}
}

// Raw exposes the underlying solana-go client.
func (c *Client) Raw() *solanarpc.Client {
	return c.raw
}

func (c *Client) commitment() solanarpc.CommitmentType {
	return solanarpc.CommitmentType(c.cfg.Commitment)
}

// GetAccountBytes returns the data of addr, or nil with no error when the
// account does not exist.
func (c *Client) GetAccountBytes(ctx context.Context, addr solana.PublicKey) ([]byte, error) {
	var out []byte
	err := c.call(ctx, "getAccountInfo", func(ctx context.Context) error {
		res, err := c.raw.GetAccountInfoWithOpts(ctx, addr, &solanarpc.GetAccountInfoOpts{
			Encoding:   solana.EncodingBase64,
			Commitment: c.commitment(),
		})
		if errors.Is(err, solanarpc.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if res == nil || res.Value == nil || res.Value.Data == nil {
			return nil
		}
		out = res.Value.Data.GetBinary()
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.log.Debug().Str("account", addr.String()).Int("bytes", len(out)).Bool("found", out != nil).Msg("account fetched")
	return out, nil
}

// GetMultipleAccountBytes fetches addrs in one call. Absent accounts are nil
// entries at their position.
func (c *Client) GetMultipleAccountBytes(ctx context.Context, addrs ...solana.PublicKey) ([][]byte, error) {
	if len(addrs) == 0 {
		return nil, nil
	}
	out := make([][]byte, len(addrs))
	err := c.call(ctx, "getMultipleAccounts", func(ctx context.Context) error {
		res, err := c.raw.GetMultipleAccountsWithOpts(ctx, addrs, &solanarpc.GetMultipleAccountsOpts{
			Encoding:   solana.EncodingBase64,
			Commitment: c.commitment(),
		})
		if err != nil {
			return err
		}
		for i, v := range res.Value {
			if i >= len(out) {
				break
			}
			if v != nil && v.Data != nil {
				out[i] = v.Data.GetBinary()
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetLatestBlockhash fetches the latest blockhash at the configured commitment.
func (c *Client) GetLatestBlockhash(ctx context.Context) (*solanarpc.GetLatestBlockhashResult, error) {
	var out *solanarpc.GetLatestBlockhashResult
	err := c.call(ctx, "getLatestBlockhash", func(ctx context.Context) error {
		var err error
		out, err = c.raw.GetLatestBlockhash(ctx, c.commitment())
		return err
	})
	return out, err
}

// SendRawTransaction submits signed wire-format transaction bytes.
func (c *Client) SendRawTransaction(ctx context.Context, signedTx []byte) (solana.Signature, error) {
	var sig solana.Signature
	err := c.call(ctx, "sendTransaction", func(ctx context.Context) error {
		var err error
		sig, err = c.raw.SendRawTransactionWithOpts(ctx, signedTx, solanarpc.TransactionOpts{
			PreflightCommitment: c.commitment(),
		})
		return err
	})
	return sig, err
}

// SubmitAndConfirm sends signedTx and waits until it reaches the configured
// commitment, fails on chain, or ctx ends.
func (c *Client) SubmitAndConfirm(ctx context.Context, signedTx []byte) (solana.Signature, error) {
	sig, err := c.SendRawTransaction(ctx, signedTx)
	if err != nil {
		return solana.Signature{}, err
	}
	c.log.Debug().Str("signature", sig.String()).Msg("transaction sent")
	if err := c.WaitForConfirmation(ctx, sig); err != nil {
		return sig, err
	}
	return sig, nil
}

// WaitForConfirmation polls the signature status every PollInterval.
func (c *Client) WaitForConfirmation(ctx context.Context, sig solana.Signature) error {
	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %s: %v", types.ErrConfirmationTimeout, sig, ctx.Err())
		case <-ticker.C:
		}

		var status *solanarpc.SignatureStatusesResult
		err := c.call(ctx, "getSignatureStatuses", func(ctx context.Context) error {
			resp, err := c.raw.GetSignatureStatuses(ctx, true, sig)
			if err != nil {
				return err
			}
			if resp != nil && len(resp.Value) > 0 {
				status = resp.Value[0]
			}
			return nil
		})
		if err != nil {
			return err
		}
		if status == nil {
			continue // not yet visible
		}
		if status.Err != nil {
			return types.TransactionError{Signature: sig.String(), Err: status.Err}
		}
		if reached(status.ConfirmationStatus, c.commitment()) {
			c.log.Debug().Str("signature", sig.String()).Str("status", string(status.ConfirmationStatus)).Msg("transaction confirmed")
			return nil
		}
	}
}

func reached(got solanarpc.ConfirmationStatusType, want solanarpc.CommitmentType) bool {
	switch want {
	case solanarpc.CommitmentProcessed:
		return got != ""
	case solanarpc.CommitmentFinalized:
		return got == solanarpc.ConfirmationStatusFinalized
	default:
		return got == solanarpc.ConfirmationStatusConfirmed || got == solanarpc.ConfirmationStatusFinalized
	}
}

func (c *Client) call(ctx context.Context, op string, fn func(context.Context) error) error {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return types.RPCError{Op: op, Err: err}
		}
	}

	if err := fn(ctx); err != nil {
		c.log.Debug().Str("op", op).Err(err).Msg("rpc call failed")
		return types.RPCError{Op: op, Err: err}
	}
	return nil
}

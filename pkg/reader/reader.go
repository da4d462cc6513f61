// Package reader fetches and decodes launchpad accounts.
//
// The reader never retries and never caches: each call is one fetch of
// the current state. Two calls may observe different snapshots.
package reader

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ninja0404/launchpad-go-sdk/pkg/codec"
	"github.com/ninja0404/launchpad-go-sdk/pkg/pda"
	"github.com/ninja0404/launchpad-go-sdk/pkg/program/launchpad"
	"github.com/ninja0404/launchpad-go-sdk/pkg/types"
)

// AccountFetcher returns raw account data, or nil with no error when the
// account does not exist. *rpc.Client implements it.
type AccountFetcher interface {
	GetAccountBytes(ctx context.Context, addr solana.PublicKey) ([]byte, error)
}

// Reader decodes launchpad accounts read through an AccountFetcher.
type Reader struct {
	fetcher AccountFetcher
	pda     *pda.Deriver
	log     zerolog.Logger
}

// Option configures a Reader.
type Option func(*Reader)

// WithLogger sets the logger used for debug events.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Reader) { r.log = log }
}

// New returns a Reader fetching through fetcher and deriving addresses with deriver.
func New(fetcher AccountFetcher, deriver *pda.Deriver, opts ...Option) *Reader {
	r := &Reader{fetcher: fetcher, pda: deriver, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read fetches addr and decodes it into acc.
func (r *Reader) Read(ctx context.Context, addr solana.PublicKey, acc codec.Account) error {
	data, err := r.fetcher.GetAccountBytes(ctx, addr)
	if err != nil {
		return fmt.Errorf("fetch %s %s: %w", acc.AccountName(), addr, err)
	}
	if data == nil {
		return fmt.Errorf("%s %s: %w", acc.AccountName(), addr, types.ErrAccountNotFound)
	}
	if err := codec.DecodeAccount(data, acc); err != nil {
		return fmt.Errorf("decode %s: %w", addr, err)
	}
	r.log.Debug().Str("account", acc.AccountName()).Str("address", addr.String()).Msg("account decoded")
	return nil
}

// ReadAny fetches addr and decodes it as whichever launchpad account its
// discriminator names.
func (r *Reader) ReadAny(ctx context.Context, addr solana.PublicKey) (codec.Account, error) {
	data, err := r.fetcher.GetAccountBytes(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", addr, err)
	}
	if data == nil {
		return nil, fmt.Errorf("%s: %w", addr, types.ErrAccountNotFound)
	}
	acc, err := launchpad.DecodeAny(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", addr, err)
	}
	return acc, nil
}

func (r *Reader) readDerived(ctx context.Context, addr solana.PublicKey, _ uint8, err error, acc codec.Account) error {
	if err != nil {
		return err
	}
	return r.Read(ctx, addr, acc)
}

// PlatformConfig reads the platform singleton.
func (r *Reader) PlatformConfig(ctx context.Context) (*launchpad.PlatformConfig, error) {
	addr, bump, err := r.pda.PlatformConfig()
	acc := &launchpad.PlatformConfig{}
	if err := r.readDerived(ctx, addr, bump, err, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

// TokenLaunch reads the launch of mint.
func (r *Reader) TokenLaunch(ctx context.Context, mint solana.PublicKey) (*launchpad.TokenLaunch, error) {
	addr, bump, err := r.pda.TokenLaunch(mint)
	acc := &launchpad.TokenLaunch{}
	if err := r.readDerived(ctx, addr, bump, err, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

// UserPosition reads wallet's position on mint.
func (r *Reader) UserPosition(ctx context.Context, wallet, mint solana.PublicKey) (*launchpad.UserPosition, error) {
	addr, bump, err := r.pda.UserPosition(wallet, mint)
	acc := &launchpad.UserPosition{}
	if err := r.readDerived(ctx, addr, bump, err, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

// AmmPool reads the pool of mint.
func (r *Reader) AmmPool(ctx context.Context, mint solana.PublicKey) (*launchpad.AmmPool, error) {
	addr, bump, err := r.pda.AmmPool(mint)
	acc := &launchpad.AmmPool{}
	if err := r.readDerived(ctx, addr, bump, err, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

// Leaderboard reads the volume leaderboard.
func (r *Reader) Leaderboard(ctx context.Context) (*launchpad.Leaderboard, error) {
	addr, bump, err := r.pda.Leaderboard()
	acc := &launchpad.Leaderboard{}
	if err := r.readDerived(ctx, addr, bump, err, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

// Snapshot is the state relevant to one wallet trading one mint.
// Position and Pool are nil when those accounts do not exist yet.
type Snapshot struct {
	Config   *launchpad.PlatformConfig `json:"config"`
	Launch   *launchpad.TokenLaunch    `json:"launch"`
	Position *launchpad.UserPosition   `json:"position,omitempty"`
	Pool     *launchpad.AmmPool        `json:"pool,omitempty"`
}

// Snapshot reads config, launch, position and pool concurrently. The config
// and launch must exist; a zero wallet skips the position.
func (r *Reader) Snapshot(ctx context.Context, wallet, mint solana.PublicKey) (*Snapshot, error) {
	if err := types.RequireKey("mint", mint); err != nil {
		return nil, err
	}
	var s Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		s.Config, err = r.PlatformConfig(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		s.Launch, err = r.TokenLaunch(gctx, mint)
		return err
	})
	if !wallet.IsZero() {
		g.Go(func() error {
			pos, err := r.UserPosition(gctx, wallet, mint)
			if errors.Is(err, types.ErrAccountNotFound) {
				return nil
			}
			s.Position = pos
			return err
		})
	}
	g.Go(func() error {
		pool, err := r.AmmPool(gctx, mint)
		if errors.Is(err, types.ErrAccountNotFound) {
			return nil
		}
		s.Pool = pool
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &s, nil
}

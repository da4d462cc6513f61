// Package quote prices launchpad trades end to end: fees, curve or pool
// math, and slippage bounds in one result.
//
// The pure functions (Buy, Sell, Swap) take reserve state directly. A Quoter
// reads that state through a reader first. All quotes are non-binding
// estimates; the program re-prices on execution.
//
// Example usage:
//
//	q := quote.New(reader.New(client, deriver))
//	res, err := q.BuyQuote(ctx, mint, 100_000_000, 100) // 0.1 SOL, 1% slippage
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Expected tokens: %d (min %d)\n", res.ExpectedOut, res.MinOut)
package quote

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"lukechampine.com/uint128"

	"github.com/ninja0404/launchpad-go-sdk/pkg/constants"
	"github.com/ninja0404/launchpad-go-sdk/pkg/curve"
	"github.com/ninja0404/launchpad-go-sdk/pkg/program/launchpad"
	"github.com/ninja0404/launchpad-go-sdk/pkg/types"
)

// Result contains the result of a price quote.
type Result struct {
	// AmountIn is the gross input (lamports for buys, tokens for sells).
	AmountIn uint64 `json:"amountIn"`
	// ExpectedOut is the estimated output net of fees.
	ExpectedOut uint64 `json:"expectedOut"`
	// MinOut is ExpectedOut reduced by the slippage tolerance.
	MinOut      uint64 `json:"minOut"`
	PlatformFee uint64 `json:"platformFee"`
	CreatorFee  uint64 `json:"creatorFee"`
	// PoolFee is the pool swap fee; zero for bonding-curve trades.
	PoolFee uint64 `json:"poolFee"`
	// SpotPrice is the price before the trade, scaled by constants.PriceScale.
	SpotPrice      uint64 `json:"spotPrice"`
	PriceImpactBps uint64 `json:"priceImpactBps"`
}

// Buy prices spending solLamports on a bonding curve. Fees come off the
// gross SOL; the remainder buys tokens, capped at the real token reserves.
//
// Parameters:
//   - c: launch reserves
//   - platformFeeBps, creatorFeeBps: fee split of the gross input
//   - solLamports: SOL to spend (lamports)
//   - slippageBps: tolerance for MinOut
func Buy(c curve.Curve, platformFeeBps, creatorFeeBps uint16, solLamports, slippageBps uint64) (*Result, error) {
	if err := types.ValidateAmount("solAmount", solLamports); err != nil {
		return nil, err
	}
	spot, err := curve.SpotPrice(c)
	if err != nil {
		return nil, err
	}
	split, err := curve.ApplyFeeSplit(solLamports, platformFeeBps, creatorFeeBps)
	if err != nil {
		return nil, err
	}
	tokens, err := curve.EstimateBuyTokens(split.Net, c)
	if err != nil {
		return nil, err
	}
	if tokens > c.RealTokenReserves {
		tokens = c.RealTokenReserves
	}
	minOut, err := curve.MinOutWithSlippage(tokens, slippageBps)
	if err != nil {
		return nil, err
	}
	return &Result{
		AmountIn:       solLamports,
		ExpectedOut:    tokens,
		MinOut:         minOut,
		PlatformFee:    split.PlatformFee,
		CreatorFee:     split.CreatorFee,
		SpotPrice:      spot,
		PriceImpactBps: impactBps(split.Net, c.VirtualSolReserves),
	}, nil
}

// Sell prices selling tokenAmount to a bonding curve. Fees come off the
// gross SOL the curve pays out.
func Sell(c curve.Curve, platformFeeBps, creatorFeeBps uint16, tokenAmount, slippageBps uint64) (*Result, error) {
	if err := types.ValidateAmount("tokenAmount", tokenAmount); err != nil {
		return nil, err
	}
	spot, err := curve.SpotPrice(c)
	if err != nil {
		return nil, err
	}
	gross, err := curve.EstimateSellReturn(tokenAmount, c)
	if err != nil {
		return nil, err
	}
	if gross > c.RealSolReserves {
		return nil, fmt.Errorf("%w: sell returns %d of %d real lamports", types.ErrInsufficientReserves, gross, c.RealSolReserves)
	}
	split, err := curve.ApplyFeeSplit(gross, platformFeeBps, creatorFeeBps)
	if err != nil {
		return nil, err
	}
	minOut, err := curve.MinOutWithSlippage(split.Net, slippageBps)
	if err != nil {
		return nil, err
	}
	return &Result{
		AmountIn:       tokenAmount,
		ExpectedOut:    split.Net,
		MinOut:         minOut,
		PlatformFee:    split.PlatformFee,
		CreatorFee:     split.CreatorFee,
		SpotPrice:      spot,
		PriceImpactBps: impactBps(tokenAmount, c.VirtualTokenReserves),
	}, nil
}

// Swap prices a pool swap.
func Swap(pool curve.Pool, direction curve.SwapDirection, amountIn uint64, swapFeeBps uint16, slippageBps uint64) (*Result, error) {
	if err := types.ValidateAmount("amountIn", amountIn); err != nil {
		return nil, err
	}
	spot, err := curve.PoolSpotPrice(pool)
	if err != nil {
		return nil, err
	}
	q, err := curve.AmmSwapQuote(direction, amountIn, pool, swapFeeBps)
	if err != nil {
		return nil, err
	}
	minOut, err := curve.MinOutWithSlippage(q.AmountOut, slippageBps)
	if err != nil {
		return nil, err
	}
	return &Result{
		AmountIn:       amountIn,
		ExpectedOut:    q.AmountOut,
		MinOut:         minOut,
		PoolFee:        q.Fee,
		SpotPrice:      spot,
		PriceImpactBps: q.PriceImpactBps,
	}, nil
}

// impactBps is amount relative to reserve in basis points, saturating at
// u64 max.
func impactBps(amount, reserve uint64) uint64 {
	if reserve == 0 {
		return 0
	}
	v := uint128.From64(amount).Mul64(constants.BpsDenominator).Div64(reserve)
	if v.Hi != 0 {
		return ^uint64(0)
	}
	return v.Lo
}

// StateReader reads the accounts a quote needs. *reader.Reader implements it.
type StateReader interface {
	PlatformConfig(ctx context.Context) (*launchpad.PlatformConfig, error)
	TokenLaunch(ctx context.Context, mint solana.PublicKey) (*launchpad.TokenLaunch, error)
	AmmPool(ctx context.Context, mint solana.PublicKey) (*launchpad.AmmPool, error)
}

// Quoter prices trades against live account state.
type Quoter struct {
	state      StateReader
	swapFeeBps uint16
}

// New creates a quoter. Pool swaps use constants.DefaultSwapFeeBps unless
// WithSwapFee says otherwise.
func New(state StateReader) *Quoter {
	return &Quoter{state: state, swapFeeBps: constants.DefaultSwapFeeBps}
}

// WithSwapFee sets the pool fee used for swap quotes.
func (q *Quoter) WithSwapFee(bps uint16) *Quoter {
	q.swapFeeBps = bps
	return q
}

func (q *Quoter) activeLaunch(ctx context.Context, mint solana.PublicKey) (*launchpad.PlatformConfig, *launchpad.TokenLaunch, error) {
	cfg, err := q.state.PlatformConfig(ctx)
	if err != nil {
		return nil, nil, err
	}
	launch, err := q.state.TokenLaunch(ctx, mint)
	if err != nil {
		return nil, nil, err
	}
	if launch.Migrated {
		return nil, nil, types.NewValidationError("mint", fmt.Sprintf("launch %s has migrated to a pool", mint))
	}
	return cfg, launch, nil
}

// BuyQuote estimates the token output for spending solLamports on the
// launch for mint.
//
// Parameters:
//   - ctx: context for RPC calls
//   - mint: token mint address
//   - solLamports: SOL amount to spend (lamports)
//   - slippageBps: slippage for MinOut
func (q *Quoter) BuyQuote(ctx context.Context, mint solana.PublicKey, solLamports, slippageBps uint64) (*Result, error) {
	cfg, launch, err := q.activeLaunch(ctx, mint)
	if err != nil {
		return nil, err
	}
	return Buy(launch.Curve(), cfg.PlatformFeeBps, launch.CreatorFeeBps, solLamports, slippageBps)
}

// SellQuote estimates the SOL output for selling tokenAmount to the launch
// for mint.
func (q *Quoter) SellQuote(ctx context.Context, mint solana.PublicKey, tokenAmount, slippageBps uint64) (*Result, error) {
	cfg, launch, err := q.activeLaunch(ctx, mint)
	if err != nil {
		return nil, err
	}
	return Sell(launch.Curve(), cfg.PlatformFeeBps, launch.CreatorFeeBps, tokenAmount, slippageBps)
}

// SwapQuote estimates a swap against the pool for mint.
func (q *Quoter) SwapQuote(ctx context.Context, mint solana.PublicKey, direction curve.SwapDirection, amountIn, slippageBps uint64) (*Result, error) {
	pool, err := q.state.AmmPool(ctx, mint)
	if err != nil {
		return nil, err
	}
	return Swap(pool.Reserves(), direction, amountIn, q.swapFeeBps, slippageBps)
}

// LaunchPrice returns the bonding-curve spot price, scaled by
// constants.PriceScale.
func (q *Quoter) LaunchPrice(ctx context.Context, mint solana.PublicKey) (uint64, error) {
	launch, err := q.state.TokenLaunch(ctx, mint)
	if err != nil {
		return 0, err
	}
	return curve.SpotPrice(launch.Curve())
}

// PoolPrice returns the pool spot price, scaled by constants.PriceScale.
func (q *Quoter) PoolPrice(ctx context.Context, mint solana.PublicKey) (uint64, error) {
	pool, err := q.state.AmmPool(ctx, mint)
	if err != nil {
		return 0, err
	}
	return curve.PoolSpotPrice(pool.Reserves())
}

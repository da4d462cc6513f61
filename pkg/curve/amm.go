package curve

import (
	"fmt"

	"lukechampine.com/uint128"

	"github.com/ninja0404/launchpad-go-sdk/pkg/constants"
	"github.com/ninja0404/launchpad-go-sdk/pkg/types"
)

// SwapDirection selects the input side of a pool swap.
type SwapDirection uint8

const (
	SolToToken SwapDirection = 0
	TokenToSol SwapDirection = 1
)

func (d SwapDirection) String() string {
	switch d {
	case SolToToken:
		return "sol_to_token"
	case TokenToSol:
		return "token_to_sol"
	default:
		return fmt.Sprintf("SwapDirection(%d)", uint8(d))
	}
}

// ParseSwapDirection accepts "sol_to_token"/"buy" and "token_to_sol"/"sell".
func ParseSwapDirection(s string) (SwapDirection, error) {
	switch s {
	case "sol_to_token", "buy":
		return SolToToken, nil
	case "token_to_sol", "sell":
		return TokenToSol, nil
	}
	return 0, types.NewValidationError("direction", fmt.Sprintf("unknown direction %q", s))
}

// Pool is the reserve state of a constant-product pool.
type Pool struct {
	SolReserve   uint64
	TokenReserve uint64
	LpSupply     uint64
}

// SwapQuote is the result of AmmSwapQuote.
type SwapQuote struct {
	AmountIn       uint64
	Fee            uint64
	NetIn          uint64
	AmountOut      uint64
	PriceImpactBps uint64
}

// AmmSwapQuote prices a swap of amountIn on the input side of direction.
// The fee is taken from the input before the constant-product step.
func AmmSwapQuote(direction SwapDirection, amountIn uint64, pool Pool, swapFeeBps uint16) (SwapQuote, error) {
	if uint64(swapFeeBps) > constants.BpsDenominator {
		return SwapQuote{}, fmt.Errorf("%w: swap fee %d bps", types.ErrInvalidFeeConfig, swapFeeBps)
	}
	var rIn, rOut uint64
	switch direction {
	case SolToToken:
		rIn, rOut = pool.SolReserve, pool.TokenReserve
	case TokenToSol:
		rIn, rOut = pool.TokenReserve, pool.SolReserve
	default:
		return SwapQuote{}, types.NewValidationError("direction", direction.String())
	}
	if rIn == 0 || rOut == 0 {
		return SwapQuote{}, fmt.Errorf("%w: reserves %d/%d", types.ErrZeroLiquidity, pool.SolReserve, pool.TokenReserve)
	}

	fee, err := bpsOf(amountIn, uint64(swapFeeBps))
	if err != nil {
		return SwapQuote{}, err
	}
	netIn := amountIn - fee
	newOut, err := mulDiv(rOut, rIn, sum128(rIn, netIn), false)
	if err != nil {
		return SwapQuote{}, err
	}
	out := rOut - newOut
	if out >= rOut {
		return SwapQuote{}, fmt.Errorf("%w: swap would drain %d reserve", types.ErrInsufficientReserves, rOut)
	}
	impact, err := mulDiv64(netIn, constants.BpsDenominator, rIn, false)
	if err != nil {
		return SwapQuote{}, err
	}
	return SwapQuote{
		AmountIn:       amountIn,
		Fee:            fee,
		NetIn:          netIn,
		AmountOut:      out,
		PriceImpactBps: impact,
	}, nil
}

// LiquidityQuote is the result of a deposit quote.
type LiquidityQuote struct {
	SolIn         uint64
	TokenRequired uint64
	LpMinted      uint64
}

// AmmLiquidityQuote prices a proportional deposit of solIn into an existing
// pool. A pool with no LP supply must be bootstrapped with AmmBootstrapQuote.
func AmmLiquidityQuote(solIn uint64, pool Pool) (LiquidityQuote, error) {
	if pool.LpSupply == 0 {
		return LiquidityQuote{}, types.ErrBootstrapRequired
	}
	if pool.SolReserve == 0 || pool.TokenReserve == 0 {
		return LiquidityQuote{}, fmt.Errorf("%w: reserves %d/%d", types.ErrZeroLiquidity, pool.SolReserve, pool.TokenReserve)
	}
	tokens, err := mulDiv64(solIn, pool.TokenReserve, pool.SolReserve, false)
	if err != nil {
		return LiquidityQuote{}, err
	}
	lp, err := mulDiv64(pool.LpSupply, solIn, pool.SolReserve, false)
	if err != nil {
		return LiquidityQuote{}, err
	}
	return LiquidityQuote{SolIn: solIn, TokenRequired: tokens, LpMinted: lp}, nil
}

// AmmBootstrapQuote describes the genesis deposit of a pool. The amount of
// LP minted at genesis is set by the program, so the caller supplies it.
func AmmBootstrapQuote(solIn, tokenIn, initialLp uint64) (LiquidityQuote, error) {
	if err := types.ValidateAmount("solIn", solIn); err != nil {
		return LiquidityQuote{}, err
	}
	if err := types.ValidateAmount("tokenIn", tokenIn); err != nil {
		return LiquidityQuote{}, err
	}
	if err := types.ValidateAmount("initialLp", initialLp); err != nil {
		return LiquidityQuote{}, err
	}
	return LiquidityQuote{SolIn: solIn, TokenRequired: tokenIn, LpMinted: initialLp}, nil
}

// RemoveQuote is the result of AmmRemoveLiquidityQuote.
type RemoveQuote struct {
	LpIn     uint64
	SolOut   uint64
	TokenOut uint64
}

// AmmRemoveLiquidityQuote returns the proportional reserves for burning lpAmount.
func AmmRemoveLiquidityQuote(lpAmount uint64, pool Pool) (RemoveQuote, error) {
	if pool.LpSupply == 0 {
		return RemoveQuote{}, fmt.Errorf("%w: zero lp supply", types.ErrZeroLiquidity)
	}
	if lpAmount > pool.LpSupply {
		return RemoveQuote{}, fmt.Errorf("%w: %d > %d", types.ErrInsufficientLpSupply, lpAmount, pool.LpSupply)
	}
	supply := uint128.From64(pool.LpSupply)
	sol, err := mulDiv(pool.SolReserve, lpAmount, supply, false)
	if err != nil {
		return RemoveQuote{}, err
	}
	tok, err := mulDiv(pool.TokenReserve, lpAmount, supply, false)
	if err != nil {
		return RemoveQuote{}, err
	}
	return RemoveQuote{LpIn: lpAmount, SolOut: sol, TokenOut: tok}, nil
}

// PoolSpotPrice returns sol/token reserves scaled by constants.PriceScale.
func PoolSpotPrice(pool Pool) (uint64, error) {
	if pool.TokenReserve == 0 {
		return 0, fmt.Errorf("%w: zero token reserve", types.ErrZeroLiquidity)
	}
	return mulDiv64(pool.SolReserve, constants.PriceScale, pool.TokenReserve, false)
}

// Package curve prices bonding-curve trades and constant-product pool
// operations with integer math identical to the on-chain program.
//
// Every function is pure. Intermediates are 128-bit; a result that does not
// fit in u64 fails with types.ErrArithmeticOverflow.
package curve

import (
	"fmt"

	"github.com/ninja0404/launchpad-go-sdk/pkg/constants"
	"github.com/ninja0404/launchpad-go-sdk/pkg/types"
)

// Curve is the reserve state of a token launch.
type Curve struct {
	VirtualSolReserves   uint64
	VirtualTokenReserves uint64
	RealSolReserves      uint64
	RealTokenReserves    uint64
}

// EstimateBuyCost returns the lamports needed to buy tokenAmount,
// ceil(vSol*t / (vTok-t)).
func EstimateBuyCost(tokenAmount uint64, c Curve) (uint64, error) {
	if tokenAmount >= c.VirtualTokenReserves {
		return 0, fmt.Errorf("%w: buy %d of %d virtual tokens", types.ErrInsufficientReserves, tokenAmount, c.VirtualTokenReserves)
	}
	return mulDiv64(c.VirtualSolReserves, tokenAmount, c.VirtualTokenReserves-tokenAmount, true)
}

// EstimateSellReturn returns the lamports received for selling tokenAmount,
// floor(vSol*t / (vTok+t)).
func EstimateSellReturn(tokenAmount uint64, c Curve) (uint64, error) {
	return mulDiv(c.VirtualSolReserves, tokenAmount, sum128(c.VirtualTokenReserves, tokenAmount), false)
}

// EstimateBuyTokens returns the tokens bought with solAmount lamports,
// floor(vTok*s / (vSol+s)).
func EstimateBuyTokens(solAmount uint64, c Curve) (uint64, error) {
	return mulDiv(c.VirtualTokenReserves, solAmount, sum128(c.VirtualSolReserves, solAmount), false)
}

// Buy returns the curve after buying tokenAmount and the lamport cost.
func (c Curve) Buy(tokenAmount uint64) (Curve, uint64, error) {
	if tokenAmount > c.RealTokenReserves {
		return c, 0, fmt.Errorf("%w: buy %d of %d real tokens", types.ErrInsufficientReserves, tokenAmount, c.RealTokenReserves)
	}
	cost, err := EstimateBuyCost(tokenAmount, c)
	if err != nil {
		return c, 0, err
	}
	next := c
	if next.VirtualSolReserves, err = add(c.VirtualSolReserves, cost); err != nil {
		return c, 0, err
	}
	if next.RealSolReserves, err = add(c.RealSolReserves, cost); err != nil {
		return c, 0, err
	}
	next.VirtualTokenReserves -= tokenAmount
	next.RealTokenReserves -= tokenAmount
	return next, cost, nil
}

// Sell returns the curve after selling tokenAmount and the lamport proceeds.
func (c Curve) Sell(tokenAmount uint64) (Curve, uint64, error) {
	proceeds, err := EstimateSellReturn(tokenAmount, c)
	if err != nil {
		return c, 0, err
	}
	if proceeds > c.RealSolReserves {
		return c, 0, fmt.Errorf("%w: sell returns %d of %d real lamports", types.ErrInsufficientReserves, proceeds, c.RealSolReserves)
	}
	next := c
	if next.VirtualTokenReserves, err = add(c.VirtualTokenReserves, tokenAmount); err != nil {
		return c, 0, err
	}
	if next.RealTokenReserves, err = add(c.RealTokenReserves, tokenAmount); err != nil {
		return c, 0, err
	}
	next.VirtualSolReserves -= proceeds
	next.RealSolReserves -= proceeds
	return next, proceeds, nil
}

// SpotPrice returns vSol/vTok scaled by constants.PriceScale.
func SpotPrice(c Curve) (uint64, error) {
	if c.VirtualTokenReserves == 0 {
		return 0, fmt.Errorf("%w: zero virtual token reserves", types.ErrZeroLiquidity)
	}
	return mulDiv64(c.VirtualSolReserves, constants.PriceScale, c.VirtualTokenReserves, false)
}

// CheckMigrationThreshold reports whether a launch holding realSol lamports
// may migrate to a pool.
func CheckMigrationThreshold(realSol, threshold uint64) bool {
	return realSol >= threshold
}

// MigrationProgressBps returns realSol/threshold in basis points, capped at 10000.
func MigrationProgressBps(realSol, threshold uint64) uint64 {
	if realSol >= threshold {
		return constants.BpsDenominator
	}
	// realSol < threshold, so the quotient is below 10000.
	p, _ := mulDiv64(realSol, constants.BpsDenominator, threshold, false)
	return p
}

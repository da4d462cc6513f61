package curve

import (
	"fmt"

	"lukechampine.com/uint128"

	"github.com/ninja0404/launchpad-go-sdk/pkg/constants"
	"github.com/ninja0404/launchpad-go-sdk/pkg/types"
)

// mulDiv returns a*b/den with a 128-bit intermediate.
func mulDiv(a, b uint64, den uint128.Uint128, roundUp bool) (uint64, error) {
	if den.IsZero() {
		return 0, fmt.Errorf("%w: division by zero", types.ErrZeroLiquidity)
	}
	q, r := uint128.From64(a).Mul64(b).QuoRem(den)
	if roundUp && !r.IsZero() {
		q = q.Add64(1)
	}
	if q.Hi != 0 {
		return 0, fmt.Errorf("%w: %s does not fit u64", types.ErrArithmeticOverflow, q)
	}
	return q.Lo, nil
}

func mulDiv64(a, b, den uint64, roundUp bool) (uint64, error) {
	return mulDiv(a, b, uint128.From64(den), roundUp)
}

// bpsOf returns floor(amount*bps/10000).
func bpsOf(amount, bps uint64) (uint64, error) {
	return mulDiv64(amount, bps, constants.BpsDenominator, false)
}

func add(a, b uint64) (uint64, error) {
	s := a + b
	if s < a {
		return 0, fmt.Errorf("%w: %d + %d", types.ErrArithmeticOverflow, a, b)
	}
	return s, nil
}

func sum128(a, b uint64) uint128.Uint128 {
	return uint128.From64(a).Add64(b)
}

// MinOutWithSlippage returns floor(amount*(10000-bps)/10000).
func MinOutWithSlippage(amount uint64, slippageBps uint64) (uint64, error) {
	if err := types.ValidateBps("slippageBps", slippageBps); err != nil {
		return 0, err
	}
	return mulDiv64(amount, constants.BpsDenominator-slippageBps, constants.BpsDenominator, false)
}

// MaxInWithSlippage returns ceil(amount*(10000+bps)/10000).
func MaxInWithSlippage(amount uint64, slippageBps uint64) (uint64, error) {
	if err := types.ValidateBps("slippageBps", slippageBps); err != nil {
		return 0, err
	}
	return mulDiv64(amount, constants.BpsDenominator+slippageBps, constants.BpsDenominator, true)
}

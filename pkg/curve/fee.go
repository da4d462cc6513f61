package curve

import (
	"fmt"

	"github.com/ninja0404/launchpad-go-sdk/pkg/constants"
	"github.com/ninja0404/launchpad-go-sdk/pkg/types"
)

// FeeSplit is a gross amount split into platform fee, creator fee and net.
type FeeSplit struct {
	PlatformFee uint64
	CreatorFee  uint64
	Net         uint64
}

// ApplyFeeSplit takes each fee as floor(gross*bps/10000) and leaves the
// remainder as net, so PlatformFee+CreatorFee+Net == gross.
func ApplyFeeSplit(gross uint64, platformFeeBps, creatorFeeBps uint16) (FeeSplit, error) {
	if uint64(platformFeeBps)+uint64(creatorFeeBps) > constants.BpsDenominator {
		return FeeSplit{}, fmt.Errorf("%w: platform %d + creator %d bps", types.ErrInvalidFeeConfig, platformFeeBps, creatorFeeBps)
	}
	platform, err := bpsOf(gross, uint64(platformFeeBps))
	if err != nil {
		return FeeSplit{}, err
	}
	creator, err := bpsOf(gross, uint64(creatorFeeBps))
	if err != nil {
		return FeeSplit{}, err
	}
	return FeeSplit{
		PlatformFee: platform,
		CreatorFee:  creator,
		Net:         gross - platform - creator,
	}, nil
}

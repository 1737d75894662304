package rewards

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/kiroween-labs/soul-harvest-vault/internal/types"
)

const (
	// SoulTaxBps is withheld from every midnight harvest (13%).
	SoulTaxBps uint64 = 1_300
	// CharityBps is routed to the charity wallet on every midnight harvest (1%).
	CharityBps uint64 = 100
)

// HarvestSplit decomposes a gross reward. Tax and Charity are computed from
// the gross amount independently, so Tax + Charity + Net == Gross.
type HarvestSplit struct {
	Gross   uint64
	Tax     uint64
	Charity uint64
	Net     uint64
}

// SplitHarvest applies the fixed soul tax and charity rates to a reward.
func SplitHarvest(reward uint64) (HarvestSplit, error) {
	tax, err := MulDivBps(reward, SoulTaxBps)
	if err != nil {
		return HarvestSplit{}, err
	}
	charity, err := MulDivBps(reward, CharityBps)
	if err != nil {
		return HarvestSplit{}, err
	}

	if tax > reward || charity > reward-tax {
		return HarvestSplit{}, errorsmod.Wrapf(types.ErrArithmeticOverflow,
			"tax %d and charity %d exceed reward %d", tax, charity, reward)
	}

	return HarvestSplit{
		Gross:   reward,
		Tax:     tax,
		Charity: charity,
		Net:     reward - tax - charity,
	}, nil
}

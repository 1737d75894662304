package rewards

// APY tiers keyed by total value locked in whole-asset units. The more
// value is locked, the higher the yield for everyone.
const (
	TierMaximumTVL  uint64 = 100_000
	TierHighTVL     uint64 = 50_000
	TierModerateTVL uint64 = 10_000

	TierMaximumAPYBps  uint16 = 1500
	TierHighAPYBps     uint16 = 1200
	TierModerateAPYBps uint16 = 800
	TierBaseAPYBps     uint16 = 500
)

// ResolveAPY returns the annual rate in basis points for the given total
// value locked, expressed in whole-asset units.
func ResolveAPY(tvlWhole uint64) uint16 {
	switch {
	case tvlWhole >= TierMaximumTVL:
		return TierMaximumAPYBps
	case tvlWhole >= TierHighTVL:
		return TierHighAPYBps
	case tvlWhole >= TierModerateTVL:
		return TierModerateAPYBps
	default:
		return TierBaseAPYBps
	}
}

// ResolveAPYForTVL converts a smallest-unit TVL to whole units with the
// given scale before resolving the tier. A zero scale is treated as 1.
func ResolveAPYForTVL(totalValueLocked, assetScale uint64) uint16 {
	return ResolveAPY(WholeUnits(totalValueLocked, assetScale))
}

// WholeUnits truncates a smallest-unit amount to whole-asset units.
func WholeUnits(amount, assetScale uint64) uint64 {
	if assetScale == 0 {
		return amount
	}
	return amount / assetScale
}

// TierInfo describes the current APY tier and the distance to the next one.
type TierInfo struct {
	Name           string
	APYBps         uint16
	TVLWhole       uint64
	HasNextTier    bool
	NextTierTVL    uint64
	NextTierAPYBps uint16
}

// DescribeTier reports the tier for a whole-unit TVL.
func DescribeTier(tvlWhole uint64) TierInfo {
	info := TierInfo{
		APYBps:   ResolveAPY(tvlWhole),
		TVLWhole: tvlWhole,
	}

	switch {
	case tvlWhole >= TierMaximumTVL:
		info.Name = "Maximum"
	case tvlWhole >= TierHighTVL:
		info.Name = "High"
		info.HasNextTier = true
		info.NextTierTVL = TierMaximumTVL
		info.NextTierAPYBps = TierMaximumAPYBps
	case tvlWhole >= TierModerateTVL:
		info.Name = "Moderate"
		info.HasNextTier = true
		info.NextTierTVL = TierHighTVL
		info.NextTierAPYBps = TierHighAPYBps
	default:
		info.Name = "Base"
		info.HasNextTier = true
		info.NextTierTVL = TierModerateTVL
		info.NextTierAPYBps = TierModerateAPYBps
	}

	return info
}

// Remaining returns how many whole units are missing to reach the next tier.
func (t TierInfo) Remaining() uint64 {
	if !t.HasNextTier || t.TVLWhole >= t.NextTierTVL {
		return 0
	}
	return t.NextTierTVL - t.TVLWhole
}

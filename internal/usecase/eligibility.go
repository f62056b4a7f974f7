package usecase

import (
	"math"

	"github.com/riskibarqy/nba-projection/internal/domain/player"
	"github.com/riskibarqy/nba-projection/internal/domain/projection"
)

const (
	minSeasonMinutes   = 300.0
	maxUsageVolatility = 5.0
	minOnOffStrength   = 1.5
	tier1MinUsage      = 28.0
	tier1MinMPG        = 30.0
	tier1MinNet        = 2.0
	tier2MinUsage      = 22.0
	tier2MinMPG        = 26.0
	tier2MinNet        = 1.0
	tier3MinMPG        = 15.0
)

// EvaluateEligibility runs the four independent player filters. It is pure.
func EvaluateEligibility(stats player.Stats) projection.Eligibility {
	volatility := math.Abs(stats.UsageLast10 - stats.UsageRate)
	tier := ClassifyTier(stats)

	return projection.Eligibility{
		Tier: tier,
		Filters: projection.FilterResults{
			MinMinutes:   stats.Minutes >= minSeasonMinutes,
			UsageStable:  volatility <= maxUsageVolatility,
			StrongOnOff:  math.Abs(stats.NetRating) > minOnOffStrength,
			TierEligible: tier.Impactful(),
		},
		MPG:             stats.MPG(),
		UsageVolatility: volatility,
	}
}

// ClassifyTier buckets a player by usage, minutes per game and net rating.
// Players under the season minutes floor are always Tier4.
func ClassifyTier(stats player.Stats) projection.Tier {
	if stats.Minutes < minSeasonMinutes {
		return projection.Tier4
	}

	mpg := stats.MPG()
	net := math.Abs(stats.NetRating)
	switch {
	case stats.UsageRate >= tier1MinUsage && mpg >= tier1MinMPG && net >= tier1MinNet:
		return projection.Tier1
	case stats.UsageRate >= tier2MinUsage && mpg >= tier2MinMPG && net >= tier2MinNet:
		return projection.Tier2
	case mpg >= tier3MinMPG:
		return projection.Tier3
	default:
		return projection.Tier4
	}
}

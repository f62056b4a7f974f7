package usecase

import (
	"strings"

	"github.com/riskibarqy/nba-projection/internal/domain/player"
	"github.com/riskibarqy/nba-projection/internal/domain/projection"
	"github.com/riskibarqy/nba-projection/internal/platform/numeric"
)

const (
	leagueAvgRating        = 115.0
	playerRatingWeight     = 0.7
	starterMPGThreshold    = 25.0
	lowSampleGames         = 15
	lowSampleWeight        = 0.6
	rimProtectorWeight     = 1.40
	pointOfAttackWeight    = 1.20
	fullOverlapPct         = 60.0
	partialOverlapPct      = 30.0
	fullLineupWeight       = 1.0
	partialLineupWeight    = 0.8
	specialistLineupWeight = 0.5
)

// RegressedImpact blends an on-court rating 70/30 with the league average, caps the
// resulting differential for the tier and returns (off, def). Tiers below Tier2 yield zeros.
func RegressedImpact(offRating, defRating float64, tier projection.Tier) (float64, float64) {
	if !tier.Impactful() {
		return 0, 0
	}
	off := playerRatingWeight*offRating + (1-playerRatingWeight)*leagueAvgRating - leagueAvgRating
	def := playerRatingWeight*defRating + (1-playerRatingWeight)*leagueAvgRating - leagueAvgRating
	return numeric.Clamp(off, tier.Cap()), numeric.Clamp(def, tier.Cap())
}

func LineupWeight(overlapPct float64) float64 {
	switch {
	case overlapPct >= fullOverlapPct:
		return fullLineupWeight
	case overlapPct >= partialOverlapPct:
		return partialLineupWeight
	default:
		return specialistLineupWeight
	}
}

func DefensiveRoleWeight(pos player.Position) float64 {
	if strings.TrimSpace(string(pos)) == "" {
		return 1.0
	}
	switch pos.DefensiveRole() {
	case player.RoleRimProtector:
		return rimProtectorWeight
	case player.RolePointOfAttack:
		return pointOfAttackWeight
	default:
		return 1.0
	}
}

func SampleWeight(gamesPlayed int) float64 {
	if gamesPlayed < lowSampleGames {
		return lowSampleWeight
	}
	return 1.0
}

// CalculatePlayerImpact filters a player and, when eligible, produces the capped and
// weighted impact. The def-role weight is applied after the cap, so a rim protector's
// def impact may exceed the tier cap.
func CalculatePlayerImpact(stats player.Stats, team string) projection.PlayerImpact {
	elig := EvaluateEligibility(stats)
	out := projection.PlayerImpact{
		PlayerName:      stats.Name,
		Team:            team,
		Tier:            elig.Tier,
		Eligible:        elig.Eligible(),
		Minutes:         numeric.Round1(stats.Minutes),
		MPG:             numeric.Round1(stats.MinutesPerGame),
		UsageRate:       numeric.Round1(stats.UsageRate),
		UsageVolatility: numeric.Round1(elig.UsageVolatility),
		NetRating:       numeric.Round1(stats.NetRating),
		FilterResults:   elig.Filters,
	}
	if !out.Eligible {
		return out
	}

	off, def := RegressedImpact(stats.OffRating, stats.DefRating, elig.Tier)

	overlap := 50.0
	if stats.StarterOverlap != nil {
		overlap = *stats.StarterOverlap
	} else if stats.MinutesPerGame >= starterMPGThreshold {
		overlap = 100.0
	}
	lineup := LineupWeight(overlap)
	role := DefensiveRoleWeight(stats.Position)
	sample := SampleWeight(stats.GamesPlayed)

	out.OffImpact = numeric.Round1(off * lineup * sample)
	out.DefImpact = numeric.Round1(def * lineup * role * sample)
	out.VegasAdjustments = &projection.VegasAdjustments{
		LineupWeight:       numeric.Round2(lineup),
		DefRoleWeight:      numeric.Round2(role),
		SampleWeight:       numeric.Round2(sample),
		TotalOffMultiplier: numeric.Round2(lineup * sample),
		TotalDefMultiplier: numeric.Round2(lineup * role * sample),
	}
	return out
}

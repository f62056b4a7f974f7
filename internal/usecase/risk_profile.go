package usecase

import (
	"math"

	"github.com/riskibarqy/nba-projection/internal/domain/projection"
	"github.com/riskibarqy/nba-projection/internal/domain/stattable"
	"github.com/riskibarqy/nba-projection/internal/platform/numeric"
)

const (
	shootingRegression  = 0.25
	turnoverGapLimit    = 4.0
	paceGapLimit        = 4.0
	defensiveGapLimit   = 6.0
	threePointVolumeCap = 40.0
)

// TeamTables is the pair of dashboard windows fetched for one team.
type TeamTables struct {
	Season stattable.Table
	Last5  stattable.Table
}

func (t TeamTables) weighted(c stattable.Category, field string) float64 {
	return t.Last5.ValueOr(c, field, 0)*last5Weight + t.Season.ValueOr(c, field, 0)*seasonWeight
}

func (t TeamTables) regressedShooting(field string) float64 {
	season := t.Season.ValueOr(stattable.CategoryBase, field, 0)
	last5 := t.Last5.ValueOr(stattable.CategoryBase, field, 0)
	return season + (last5-season)*shootingRegression
}

// BuildRiskProfile reports shooting regression and variance flags for a matchup.
// Absent categories read as zero, so it never fails.
func BuildRiskProfile(home, away TeamTables) projection.RiskProfile {
	out := projection.RiskProfile{
		HomeShooting: projection.ShootingRegression{
			FG3Pct: numeric.Round(home.regressedShooting("FG3_PCT"), 3),
			FGPct:  numeric.Round(home.regressedShooting("FG_PCT"), 3),
		},
		AwayShooting: projection.ShootingRegression{
			FG3Pct: numeric.Round(away.regressedShooting("FG3_PCT"), 3),
			FGPct:  numeric.Round(away.regressedShooting("FG_PCT"), 3),
		},
	}

	if math.Abs(home.weighted(stattable.CategoryFourFactors, "TOV_PCT")-away.weighted(stattable.CategoryFourFactors, "TOV_PCT")) > turnoverGapLimit {
		out.Flags = append(out.Flags, projection.FlagHighTurnoverVariance)
	}
	if math.Abs(home.weighted(stattable.CategoryAdvanced, "PACE")-away.weighted(stattable.CategoryAdvanced, "PACE")) > paceGapLimit {
		out.Flags = append(out.Flags, projection.FlagPaceMismatch)
	}
	if math.Abs(home.weighted(stattable.CategoryAdvanced, "DEF_RATING")-away.weighted(stattable.CategoryAdvanced, "DEF_RATING")) > defensiveGapLimit {
		out.Flags = append(out.Flags, projection.FlagDefensiveGap)
	}
	if home.Last5.ValueOr(stattable.CategoryBase, "FG3A", 0) > threePointVolumeCap || away.Last5.ValueOr(stattable.CategoryBase, "FG3A", 0) > threePointVolumeCap {
		out.Flags = append(out.Flags, projection.FlagExtremeThreeVolume)
	}
	if len(out.Flags) == 0 {
		out.Flags = []string{projection.FlagStandard}
	}
	return out
}

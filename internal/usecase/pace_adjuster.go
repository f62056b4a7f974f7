package usecase

import (
	"github.com/riskibarqy/nba-projection/internal/domain/projection"
	"github.com/riskibarqy/nba-projection/internal/platform/numeric"
)

// PaceTotalAdjustment is a step function of combined pace above twice the league average.
func PaceTotalAdjustment(delta float64) float64 {
	switch {
	case delta > 4:
		return 4
	case delta > 2:
		return 2
	case delta < -4:
		return -4
	case delta < -2:
		return -2
	default:
		return 0
	}
}

// ApplyPace adjusts the baseline total only. Disabled returns the baseline unchanged.
func ApplyPace(baselineTotal, homePace, awayPace float64, enabled bool) projection.PaceAdjustment {
	if !enabled {
		return projection.PaceAdjustment{
			BaselineTotal:   baselineTotal,
			PaceModuleTotal: baselineTotal,
		}
	}

	delta := homePace + awayPace - 2*leagueAvgPace
	adj := PaceTotalAdjustment(delta)
	return projection.PaceAdjustment{
		Enabled:         true,
		PaceDelta:       numeric.Round2(delta),
		PaceTotalAdj:    numeric.Round1(adj),
		BaselineTotal:   baselineTotal,
		PaceModuleTotal: numeric.Round1(baselineTotal + adj),
	}
}

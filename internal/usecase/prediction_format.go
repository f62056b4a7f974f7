package usecase

import (
	"github.com/riskibarqy/nba-projection/internal/domain/prediction"
	"github.com/riskibarqy/nba-projection/internal/domain/projection"
	"github.com/riskibarqy/nba-projection/internal/platform/numeric"
)

// FormatPrediction flattens a pipeline result into its archived form. Adjusted
// lines are only recorded when their module ran.
func FormatPrediction(result projection.Result) prediction.Game {
	game := prediction.Game{
		HomeTeam: result.Home.Team,
		AwayTeam: result.Away.Team,
		Spread: prediction.Spread{
			Baseline: numeric.Round1(result.Projection.HomeSpread()),
		},
		Total: prediction.Total{
			Baseline: result.Projection.Total,
		},
		InjuryImpact: prediction.InjuryImpact{
			HomeTotalAdjustment: numeric.Round2(result.Home.Adjustment.Total()),
			AwayTotalAdjustment: numeric.Round2(result.Away.Adjustment.Total()),
		},
	}
	if result.Rest.Enabled {
		spread := result.Rest.RestModuleSpread
		game.Spread.RestAdjusted = &spread
	}
	if result.Pace.Enabled {
		total := result.Pace.PaceModuleTotal
		game.Total.PaceAdjusted = &total
	}
	return game
}

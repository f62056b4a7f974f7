package usecase

import (
	"math"

	"github.com/riskibarqy/nba-projection/internal/domain/projection"
	"github.com/riskibarqy/nba-projection/internal/platform/numeric"
)

// ProjectGame turns two adjusted ratings into projected points, spread and total.
// The home side gets the home-court bonus and is favorite only when strictly ahead.
func ProjectGame(home, away projection.TeamAdjustedRating) projection.GameProjection {
	possessions := (home.PaceFinal + away.PaceFinal) / 2
	homePoints := (home.OffRatingFinal+away.DefRatingFinal)/2/100*possessions + homeCourtBonus
	awayPoints := (away.OffRatingFinal+home.DefRatingFinal)/2/100*possessions

	diff := numeric.Round1(math.Abs(homePoints - awayPoints))
	out := projection.GameProjection{
		HomeTeam:       home.Team,
		AwayTeam:       away.Team,
		HomePoints:     numeric.Round1(homePoints),
		AwayPoints:     numeric.Round1(awayPoints),
		FavoriteSpread: -diff,
		UnderdogSpread: diff,
		Total:          numeric.Round1(homePoints + awayPoints),
		Possessions:    numeric.Round1(possessions),
	}
	if homePoints > awayPoints {
		out.Favorite, out.Underdog = home.Team, away.Team
	} else {
		out.Favorite, out.Underdog = away.Team, home.Team
	}
	return out
}

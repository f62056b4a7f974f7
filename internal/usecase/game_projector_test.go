package usecase

import (
	"testing"

	"github.com/riskibarqy/nba-projection/internal/domain/projection"
	"github.com/stretchr/testify/require"
)

func rating(team string, off, def, pace float64) projection.TeamAdjustedRating {
	return projection.TeamAdjustedRating{Team: team, OffRatingFinal: off, DefRatingFinal: def, PaceFinal: pace}
}

func TestProjectGame_HomeCourtDecidesEvenMatchup(t *testing.T) {
	t.Parallel()

	got := ProjectGame(rating("Boston Celtics", 115, 115, 100), rating("Los Angeles Lakers", 115, 115, 100))

	require.InDelta(t, 116.8, got.HomePoints, 1e-9)
	require.InDelta(t, 115.0, got.AwayPoints, 1e-9)
	require.InDelta(t, 231.8, got.Total, 1e-9)
	require.InDelta(t, 100.0, got.Possessions, 1e-9)
	if got.Favorite != "Boston Celtics" || got.Underdog != "Los Angeles Lakers" {
		t.Fatalf("expected home favorite, got=%+v", got)
	}
	require.InDelta(t, -1.8, got.FavoriteSpread, 1e-9)
	require.InDelta(t, 1.8, got.UnderdogSpread, 1e-9)
	require.InDelta(t, -1.8, got.HomeSpread(), 1e-9)
}

func TestProjectGame_AwayFavorite(t *testing.T) {
	t.Parallel()

	got := ProjectGame(rating("Boston Celtics", 109, 119.9, 98.5), rating("Los Angeles Lakers", 115, 115, 98.5))

	if got.Favorite != "Los Angeles Lakers" {
		t.Fatalf("expected away favorite, got=%s", got.Favorite)
	}
	require.InDelta(t, 112.1, got.HomePoints, 1e-9)
	require.InDelta(t, 115.7, got.AwayPoints, 1e-9)
	if got.FavoriteSpread != -got.UnderdogSpread {
		t.Fatalf("expected symmetric spreads, got=%v/%v", got.FavoriteSpread, got.UnderdogSpread)
	}
}

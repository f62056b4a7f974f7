package usecase

import (
	"fmt"

	"github.com/riskibarqy/nba-projection/internal/domain/injury"
	"github.com/riskibarqy/nba-projection/internal/domain/projection"
	"github.com/riskibarqy/nba-projection/internal/domain/stattable"
	"github.com/riskibarqy/nba-projection/internal/platform/numeric"
)

const (
	last5Weight    = 0.65
	seasonWeight   = 0.35
	leagueAvgPace  = 98.5
	paceDampening  = 0.6
	homeCourtBonus = 1.8
)

// BuildBaseline blends last-5 and season Advanced ratings 65/35 and pulls pace
// toward the league average. opponent is only read when normalize is set.
func BuildBaseline(team string, season, last5 stattable.Table, opponent *stattable.Table, normalize bool) (projection.Baseline, error) {
	seasonRatings, err := season.Ratings()
	if err != nil {
		return projection.Baseline{}, fmt.Errorf("season ratings for %s: %w", team, err)
	}
	last5Ratings, err := last5.Ratings()
	if err != nil {
		return projection.Baseline{}, fmt.Errorf("last5 ratings for %s: %w", team, err)
	}

	off := last5Ratings.OffRating*last5Weight + seasonRatings.OffRating*seasonWeight
	def := last5Ratings.DefRating*last5Weight + seasonRatings.DefRating*seasonWeight
	pace := last5Ratings.Pace*last5Weight + seasonRatings.Pace*seasonWeight
	pace = leagueAvgPace + (pace-leagueAvgPace)*paceDampening

	if normalize && opponent != nil {
		oppDef := opponent.ValueOr(stattable.CategoryOpponent, "OPP_DEF_RATING", leagueAvgRating)
		oppOff := opponent.ValueOr(stattable.CategoryOpponent, "OPP_OFF_RATING", leagueAvgRating)
		off -= oppDef - leagueAvgRating
		def -= oppOff - leagueAvgRating
	}

	return projection.Baseline{
		Team:      team,
		OffRating: numeric.Round2(off),
		DefRating: numeric.Round2(def),
		Pace:      numeric.Round2(pace),
	}, nil
}

// MergeInjuries sums the sign-flipped impacts of eligible players ruled unavailable.
// Injured players without an impact entry are ignored.
func MergeInjuries(team string, report injury.Report, impacts []projection.PlayerImpact, enabled bool) projection.InjuryAdjustment {
	out := projection.InjuryAdjustment{Team: team, Breakdown: []projection.InjuryBreakdown{}}
	if !enabled {
		return out
	}

	byName := make(map[string]projection.PlayerImpact, len(impacts))
	for _, item := range impacts {
		byName[item.PlayerName] = item
	}

	var off, def float64
	for _, rec := range report.Records {
		impact, ok := byName[rec.PlayerName]
		if !ok || !impact.Eligible || rec.Availability != injury.Unavailable {
			continue
		}
		off += -impact.OffImpact
		def += -impact.DefImpact
		out.Breakdown = append(out.Breakdown, projection.InjuryBreakdown{
			PlayerName:    rec.PlayerName,
			ESPNStatus:    rec.RawStatus,
			Eligible:      true,
			OffImpact:     impact.OffImpact,
			DefImpact:     impact.DefImpact,
			OffAdjustment: -impact.OffImpact,
			DefAdjustment: -impact.DefImpact,
		})
	}

	out.OffAdjustment = numeric.Round2(off)
	out.DefAdjustment = numeric.Round2(def)
	return out
}

// AdjustRatings applies an injury adjustment to a baseline. Pace is unaffected.
func AdjustRatings(base projection.Baseline, adj projection.InjuryAdjustment) projection.TeamAdjustedRating {
	return projection.TeamAdjustedRating{
		Team:           base.Team,
		OffRatingBase:  base.OffRating,
		DefRatingBase:  base.DefRating,
		PaceBase:       base.Pace,
		OffAdjustment:  adj.OffAdjustment,
		DefAdjustment:  adj.DefAdjustment,
		OffRatingFinal: numeric.Round2(base.OffRating + adj.OffAdjustment),
		DefRatingFinal: numeric.Round2(base.DefRating + adj.DefAdjustment),
		PaceFinal:      base.Pace,
	}
}

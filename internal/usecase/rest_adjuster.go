package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/nba-projection/internal/domain/projection"
	"github.com/riskibarqy/nba-projection/internal/domain/schedule"
	"github.com/riskibarqy/nba-projection/internal/platform/logging"
	"github.com/riskibarqy/nba-projection/internal/platform/numeric"
)

const (
	defaultRestDays   = 2
	seasonOpenerGap   = 30
	seasonOpenerRest  = 5
	longRestDays      = 4
	travelSwing       = 0.25
	backToBackPenalty = -1.5
	twoDayRestBonus   = 0.5
	threeDayRestBonus = 1.0
)

// RestDays counts whole days between the previous game and the slate date.
// Gaps over 30 days are treated as a season opener.
func RestDays(lastGame, gameDate time.Time) int {
	last := time.Date(lastGame.Year(), lastGame.Month(), lastGame.Day(), 0, 0, 0, 0, time.UTC)
	cur := time.Date(gameDate.Year(), gameDate.Month(), gameDate.Day(), 0, 0, 0, 0, time.UTC)
	days := int(cur.Sub(last).Hours() / 24)
	if days > seasonOpenerGap {
		return seasonOpenerRest
	}
	return days
}

// RestAdjustmentFor maps rest days to a rating swing, adding a travel swing after
// long breaks when the team changes venue type.
func RestAdjustmentFor(days int, previous, current schedule.Location) float64 {
	var adj float64
	switch {
	case days == 0:
		adj = backToBackPenalty
	case days == 1:
		adj = 0
	case days == 2:
		adj = twoDayRestBonus
	case days >= 3:
		adj = threeDayRestBonus
	}

	if days >= longRestDays {
		switch {
		case previous == schedule.LocationAway && current == schedule.LocationHome:
			adj += travelSwing
		case previous == schedule.LocationHome && current == schedule.LocationAway:
			adj -= travelSwing
		}
	}
	return adj
}

// RestAdjuster shifts the baseline spread by each side's rest advantage.
type RestAdjuster struct {
	games  schedule.GameLogProvider
	season string
	logger *logging.Logger
}

func NewRestAdjuster(games schedule.GameLogProvider, season string, logger *logging.Logger) *RestAdjuster {
	if logger == nil {
		logger = logging.Default()
	}
	return &RestAdjuster{games: games, season: season, logger: logger}
}

// Apply never fails: a missing game log falls back to two rest days.
func (r *RestAdjuster) Apply(ctx context.Context, proj projection.GameProjection, homeTeamID, awayTeamID int64, gameDate time.Time, enabled bool) projection.RestAdjustment {
	baseline := numeric.Round1(proj.HomeSpread())
	if !enabled {
		return projection.RestAdjustment{
			Enabled:          false,
			RestModuleSpread: baseline,
			BaselineSpread:   baseline,
		}
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.RestAdjuster.Apply")
	defer span.End()

	homeDays, homePrev := r.restDays(ctx, homeTeamID, gameDate)
	awayDays, awayPrev := r.restDays(ctx, awayTeamID, gameDate)

	homeAdj := RestAdjustmentFor(homeDays, homePrev, schedule.LocationHome)
	awayAdj := RestAdjustmentFor(awayDays, awayPrev, schedule.LocationAway)
	diff := awayAdj - homeAdj

	return projection.RestAdjustment{
		Enabled:          true,
		RestDaysHome:     &homeDays,
		RestDaysAway:     &awayDays,
		RestAdjHome:      numeric.Round2(homeAdj),
		RestAdjAway:      numeric.Round2(awayAdj),
		RestModuleSpread: numeric.Round1(baseline + diff),
		BaselineSpread:   baseline,
		RestDiff:         numeric.Round2(diff),
	}
}

func (r *RestAdjuster) restDays(ctx context.Context, teamID int64, gameDate time.Time) (int, schedule.Location) {
	if r.games == nil {
		return defaultRestDays, schedule.LocationUnknown
	}
	last, err := r.games.LastGame(ctx, teamID, r.season)
	if err != nil {
		r.logger.WarnContext(ctx, "last game lookup failed, assuming default rest", "team_id", teamID, "rest_days", defaultRestDays, "error", err)
		return defaultRestDays, schedule.LocationUnknown
	}
	return RestDays(last.Date, gameDate), last.Location
}

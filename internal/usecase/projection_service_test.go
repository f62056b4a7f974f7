package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/nba-projection/internal/domain/injury"
	"github.com/riskibarqy/nba-projection/internal/domain/player"
	"github.com/riskibarqy/nba-projection/internal/domain/projection"
	"github.com/riskibarqy/nba-projection/internal/domain/team"
	"github.com/riskibarqy/nba-projection/internal/platform/logging"
	"github.com/stretchr/testify/require"
)

const (
	bostonStatsID = 1610612738
	lakersStatsID = 1610612747
	bostonESPNID  = 2
)

func newProjectionFixture() (*ProjectionService, *stubDashboards, *stubPlayers, *stubInjuries) {
	dashboards := newStubDashboards()
	for _, id := range []int64{bostonStatsID, lakersStatsID} {
		dashboards.set(advancedTable(id, 0, 115, 115, 98.5))
		dashboards.set(advancedTable(id, 5, 115, 115, 98.5))
	}

	players := &stubPlayers{
		rosters: map[int64][]player.RosterEntry{
			bostonStatsID: {
				{ID: 1628369, Name: "Jayson Tatum", Position: "F"},
				{ID: 1, Name: "Two Way", Position: "G"},
			},
		},
		stats:    map[string]player.Stats{"Jayson Tatum": starStats()},
		statErrs: map[string]error{"Two Way": errors.New("no career rows")},
	}
	injuries := &stubInjuries{entries: map[int64][]injury.RawEntry{
		bostonESPNID: {{PlayerName: "Jayson Tatum", Status: "Out"}},
	}}

	logger := logging.NewNop()
	catalog := team.NewCatalog()
	svc := NewProjectionService(ProjectionServiceConfig{
		Stats:    dashboards,
		Players:  players,
		Injuries: NewInjuryService(injuries, catalog, logger),
		Catalog:  catalog,
		Season:   "2025-26",
		Logger:   logger,
	})
	return svc, dashboards, players, injuries
}

func TestProjectionService_InjuredStarFlipsFavorite(t *testing.T) {
	t.Parallel()

	svc, dashboards, _, _ := newProjectionFixture()
	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	got, err := svc.ProjectMatchup(context.Background(), "Boston Celtics", "Los Angeles Lakers", date, projection.DefaultOptions())
	if err != nil {
		t.Fatalf("ProjectMatchup error: %v", err)
	}

	if len(dashboards.calls) != 4 || dashboards.calls[0].lastN != 0 || dashboards.calls[1].lastN != 5 {
		t.Fatalf("expected season then last5 per team, got=%+v", dashboards.calls)
	}
	if len(got.Home.Impacts) != 1 {
		t.Fatalf("expected failing player to be skipped, got=%d impacts", len(got.Home.Impacts))
	}
	require.InDelta(t, -6.0, got.Home.Adjustment.OffAdjustment, 1e-9)
	require.InDelta(t, 4.9, got.Home.Adjustment.DefAdjustment, 1e-9)
	require.InDelta(t, 109.0, got.Home.Rating.OffRatingFinal, 1e-9)
	require.InDelta(t, 119.9, got.Home.Rating.DefRatingFinal, 1e-9)

	require.Equal(t, "Los Angeles Lakers", got.Projection.Favorite)
	require.InDelta(t, 112.1, got.Projection.HomePoints, 1e-9)
	require.InDelta(t, 115.7, got.Projection.AwayPoints, 1e-9)

	if !got.Rest.Enabled || *got.Rest.RestDaysHome != defaultRestDays {
		t.Fatalf("expected default rest without a game log, got=%+v", got.Rest)
	}
	require.InDelta(t, got.Rest.BaselineSpread, got.Rest.RestModuleSpread, 1e-9)
	require.InDelta(t, 0, got.Pace.PaceTotalAdj, 1e-9)
	require.Equal(t, []string{projection.FlagStandard}, got.Risk.Flags)
}

func TestProjectionService_InjuriesDisabled(t *testing.T) {
	t.Parallel()

	svc, _, _, injuries := newProjectionFixture()
	opts := projection.DefaultOptions()
	opts.Injuries = false

	got, err := svc.ProjectMatchup(context.Background(), "Boston Celtics", "Los Angeles Lakers", time.Now(), opts)
	if err != nil {
		t.Fatalf("ProjectMatchup error: %v", err)
	}
	if injuries.calls != 0 {
		t.Fatalf("expected injury provider not to be called, got=%d", injuries.calls)
	}
	if got.Home.Adjustment.OffAdjustment != 0 || len(got.Home.Injuries.Records) != 0 {
		t.Fatalf("expected no injury effect, got=%+v", got.Home.Adjustment)
	}
	if len(got.Home.Impacts) != 1 {
		t.Fatalf("expected impacts computed regardless, got=%d", len(got.Home.Impacts))
	}
	require.Equal(t, "Boston Celtics", got.Projection.Favorite)
}

func TestProjectionService_RosterFailureContinues(t *testing.T) {
	t.Parallel()

	svc, _, players, _ := newProjectionFixture()
	players.rosterErr = errors.New("roster endpoint down")

	got, err := svc.ProjectMatchup(context.Background(), "Boston Celtics", "Los Angeles Lakers", time.Now(), projection.DefaultOptions())
	if err != nil {
		t.Fatalf("ProjectMatchup error: %v", err)
	}
	if got.Home.Impacts == nil || len(got.Home.Impacts) != 0 {
		t.Fatalf("expected empty impacts, got=%v", got.Home.Impacts)
	}
	if got.Home.Adjustment.OffAdjustment != 0 {
		t.Fatalf("expected no adjustment without impacts, got=%+v", got.Home.Adjustment)
	}
}

func TestProjectionService_Errors(t *testing.T) {
	t.Parallel()

	svc, dashboards, _, _ := newProjectionFixture()

	_, err := svc.ProjectMatchup(context.Background(), "Boston Celtics", "Gotham Knights", time.Now(), projection.DefaultOptions())
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown team, got=%v", err)
	}

	_, err = svc.ProjectMatchup(context.Background(), "Boston Celtics", "Boston Celtics", time.Now(), projection.DefaultOptions())
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for same team, got=%v", err)
	}

	dashboards.errs[dashboardKey{teamID: lakersStatsID, lastN: 5}] = ErrDependencyUnavailable
	_, err = svc.ProjectMatchup(context.Background(), "Boston Celtics", "Los Angeles Lakers", time.Now(), projection.DefaultOptions())
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected dependency error to surface, got=%v", err)
	}
}

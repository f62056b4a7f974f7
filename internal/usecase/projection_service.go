package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/nba-projection/internal/domain/injury"
	"github.com/riskibarqy/nba-projection/internal/domain/player"
	"github.com/riskibarqy/nba-projection/internal/domain/projection"
	"github.com/riskibarqy/nba-projection/internal/domain/stattable"
	"github.com/riskibarqy/nba-projection/internal/domain/team"
	"github.com/riskibarqy/nba-projection/internal/platform/logging"
	"github.com/riskibarqy/nba-projection/internal/platform/resilience"
)

const (
	seasonWindow     = 0
	recentWindow     = 5
	assumedOverlapPc = 100.0
)

// ProjectionService runs the per-matchup pipeline: baseline, injuries, player
// impacts, merge, rating adjustment, projection, then the optional rest and pace stages.
type ProjectionService struct {
	stats    stattable.Provider
	players  player.Provider
	injuries *InjuryService
	rest     *RestAdjuster
	catalog  *team.Catalog
	pacer    *resilience.Pacer
	season   string
	logger   *logging.Logger
}

type ProjectionServiceConfig struct {
	Stats    stattable.Provider
	Players  player.Provider
	Injuries *InjuryService
	Rest     *RestAdjuster
	Catalog  *team.Catalog
	Pacer    *resilience.Pacer
	Season   string
	Logger   *logging.Logger
}

func NewProjectionService(cfg ProjectionServiceConfig) *ProjectionService {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	catalog := cfg.Catalog
	if catalog == nil {
		catalog = team.NewCatalog()
	}
	rest := cfg.Rest
	if rest == nil {
		rest = NewRestAdjuster(nil, cfg.Season, logger)
	}
	return &ProjectionService{
		stats:    cfg.Stats,
		players:  cfg.Players,
		injuries: cfg.Injuries,
		rest:     rest,
		catalog:  catalog,
		pacer:    cfg.Pacer,
		season:   cfg.Season,
		logger:   logger,
	}
}

// ProjectMatchup runs every stage for one game. Any error aborts this matchup only.
func (s *ProjectionService) ProjectMatchup(ctx context.Context, homeName, awayName string, date time.Time, opts projection.Options) (projection.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProjectionService.ProjectMatchup")
	defer span.End()

	home, ok := s.catalog.ByName(homeName)
	if !ok {
		return projection.Result{}, fmt.Errorf("%w: unknown home team %q", ErrInvalidInput, homeName)
	}
	away, ok := s.catalog.ByName(awayName)
	if !ok {
		return projection.Result{}, fmt.Errorf("%w: unknown away team %q", ErrInvalidInput, awayName)
	}
	if home.Abbr == away.Abbr {
		return projection.Result{}, fmt.Errorf("%w: home and away team must differ", ErrInvalidInput)
	}

	logger := s.logger.With("home_team", homeName, "away_team", awayName)
	logger.InfoContext(ctx, "projection pipeline started", "date", date.Format("2006-01-02"))

	homeReport, homeTables, err := s.processTeam(ctx, homeName, home, opts)
	if err != nil {
		return projection.Result{}, fmt.Errorf("process home team %s: %w", homeName, err)
	}
	awayReport, awayTables, err := s.processTeam(ctx, awayName, away, opts)
	if err != nil {
		return projection.Result{}, fmt.Errorf("process away team %s: %w", awayName, err)
	}

	proj := ProjectGame(homeReport.Rating, awayReport.Rating)
	rest := s.rest.Apply(ctx, proj, home.StatsID, away.StatsID, date, opts.Rest)
	pace := ApplyPace(proj.Total, homeReport.Rating.PaceFinal, awayReport.Rating.PaceFinal, opts.Pace)

	logger.InfoContext(ctx, "projection pipeline finished",
		"home_points", proj.HomePoints,
		"away_points", proj.AwayPoints,
		"favorite", proj.Favorite,
		"favorite_spread", proj.FavoriteSpread,
		"total", proj.Total,
		"rest_spread", rest.RestModuleSpread,
		"pace_total", pace.PaceModuleTotal,
	)

	return projection.Result{
		Date:       date,
		Home:       homeReport,
		Away:       awayReport,
		Projection: proj,
		Rest:       rest,
		Pace:       pace,
		Risk:       BuildRiskProfile(homeTables, awayTables),
		Options:    opts,
	}, nil
}

func (s *ProjectionService) processTeam(ctx context.Context, name string, item team.Team, opts projection.Options) (projection.TeamReport, TeamTables, error) {
	logger := s.logger.With("team", name)

	tables, err := s.loadTables(ctx, item.StatsID)
	if err != nil {
		return projection.TeamReport{}, TeamTables{}, err
	}
	baseline, err := BuildBaseline(name, tables.Season, tables.Last5, &tables.Last5, opts.NormalizeSchedule)
	if err != nil {
		return projection.TeamReport{}, TeamTables{}, err
	}
	logger.InfoContext(ctx, "baseline loaded", "step", 1, "off_rating", baseline.OffRating, "def_rating", baseline.DefRating, "pace", baseline.Pace)

	report := s.injuryReport(ctx, name, opts.Injuries)
	logger.InfoContext(ctx, "injury report ready", "step", 2, "injuries", len(report.Records), "unavailable", len(Unavailable(report)))

	impacts := s.playerImpacts(ctx, name, item.StatsID)

	adjustment := MergeInjuries(name, report, impacts, opts.Injuries && opts.Merge)
	logger.InfoContext(ctx, "injuries merged", "step", 5, "off_adjustment", adjustment.OffAdjustment, "def_adjustment", adjustment.DefAdjustment)

	rating := AdjustRatings(baseline, adjustment)
	logger.InfoContext(ctx, "ratings adjusted", "step", 6, "off_rating_final", rating.OffRatingFinal, "def_rating_final", rating.DefRatingFinal)

	return projection.TeamReport{
		Team:       name,
		Baseline:   baseline,
		Injuries:   report,
		Impacts:    impacts,
		Adjustment: adjustment,
		Rating:     rating,
	}, tables, nil
}

func (s *ProjectionService) loadTables(ctx context.Context, teamID int64) (TeamTables, error) {
	season, err := s.stats.FetchTeamDashboard(ctx, teamID, seasonWindow)
	if err != nil {
		return TeamTables{}, fmt.Errorf("fetch season dashboard: %w", err)
	}
	last5, err := s.stats.FetchTeamDashboard(ctx, teamID, recentWindow)
	if err != nil {
		return TeamTables{}, fmt.Errorf("fetch last%d dashboard: %w", recentWindow, err)
	}
	return TeamTables{Season: season, Last5: last5}, nil
}

func (s *ProjectionService) injuryReport(ctx context.Context, name string, enabled bool) injury.Report {
	if s.injuries == nil {
		return injury.Report{Team: name, Timestamp: time.Now().UTC(), Records: []injury.Record{}}
	}
	if !enabled {
		return s.injuries.EmptyReport(name)
	}
	return s.injuries.TeamReport(ctx, name)
}

// playerImpacts walks the whole roster; a player whose stats cannot be fetched is skipped.
func (s *ProjectionService) playerImpacts(ctx context.Context, name string, teamID int64) []projection.PlayerImpact {
	out := []projection.PlayerImpact{}
	if s.players == nil {
		return out
	}

	roster, err := s.players.ListRoster(ctx, teamID, s.season)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch roster failed, continuing without player impacts", "team", name, "step", 3, "error", err)
		return out
	}

	for _, entry := range roster {
		if err := s.pacer.Wait(ctx); err != nil {
			s.logger.WarnContext(ctx, "player iteration interrupted", "team", name, "error", err)
			break
		}

		stats, found, err := s.players.FetchSeasonStats(ctx, entry, s.season)
		if err != nil {
			s.logger.WarnContext(ctx, "player skipped", "team", name, "player", entry.Name, "error", err)
			continue
		}
		if !found {
			continue
		}
		if stats.Name == "" {
			stats.Name = entry.Name
		}
		if stats.Position == "" {
			stats.Position = entry.Position
		}
		if stats.StarterOverlap == nil {
			overlap := assumedOverlapPc
			stats.StarterOverlap = &overlap
		}
		out = append(out, CalculatePlayerImpact(stats, name))
	}

	eligible := 0
	for _, item := range out {
		if item.Eligible {
			eligible++
		}
	}
	s.logger.InfoContext(ctx, "player impacts calculated", "team", name, "step", 3, "players", len(out), "eligible", eligible)
	return out
}

// FindTeam resolves a franchise by full name or abbreviation.
func (s *ProjectionService) FindTeam(nameOrAbbr string) (team.Team, bool) {
	if item, ok := s.catalog.ByName(nameOrAbbr); ok {
		return item, true
	}
	return s.catalog.ByAbbr(strings.ToUpper(nameOrAbbr))
}

package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/nba-projection/internal/domain/injury"
	"github.com/riskibarqy/nba-projection/internal/domain/team"
	"github.com/riskibarqy/nba-projection/internal/platform/logging"
)

// InjuryService builds availability reports from the injury provider.
type InjuryService struct {
	provider injury.Provider
	catalog  *team.Catalog
	logger   *logging.Logger
	now      func() time.Time
}

func NewInjuryService(provider injury.Provider, catalog *team.Catalog, logger *logging.Logger) *InjuryService {
	if logger == nil {
		logger = logging.Default()
	}
	if catalog == nil {
		catalog = team.NewCatalog()
	}
	return &InjuryService{
		provider: provider,
		catalog:  catalog,
		logger:   logger,
		now:      time.Now,
	}
}

// TeamReport never fails: an unknown team or a provider error yields an empty report.
func (s *InjuryService) TeamReport(ctx context.Context, teamName string) injury.Report {
	ctx, span := startUsecaseSpan(ctx, "usecase.InjuryService.TeamReport")
	defer span.End()

	report := injury.Report{
		Team:      teamName,
		Timestamp: s.now().UTC(),
		Records:   []injury.Record{},
	}

	item, ok := s.catalog.ByName(teamName)
	if !ok {
		s.logger.WarnContext(ctx, "team missing from espn mapping", "team", teamName)
		return report
	}

	entries, err := s.provider.FetchTeamInjuries(ctx, item.ESPNID)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch team injuries failed", "team", teamName, "espn_team_id", item.ESPNID, "error", err)
		return report
	}

	for _, entry := range entries {
		report.Records = append(report.Records, injury.Resolve(entry))
	}
	return report
}

// EmptyReport is the report used when injury processing is switched off.
func (s *InjuryService) EmptyReport(teamName string) injury.Report {
	return injury.Report{Team: teamName, Timestamp: s.now().UTC(), Records: []injury.Record{}}
}

// Unavailable lists players ruled out on a report.
func Unavailable(report injury.Report) []string {
	out := make([]string, 0, len(report.Records))
	for _, rec := range report.Records {
		if rec.Availability == injury.Unavailable {
			out = append(out, rec.PlayerName)
		}
	}
	return out
}

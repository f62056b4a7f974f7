package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/nba-projection/internal/domain/stattable"
)

const (
	defaultDashboardWindow = 5
	maxDashboardWindow     = 82
)

// DashboardService serves raw team dashboards to API clients.
type DashboardService struct {
	provider stattable.Provider
}

func NewDashboardService(provider stattable.Provider) *DashboardService {
	return &DashboardService{provider: provider}
}

// ResolveDashboardWindow applies the default window and bounds a requested one.
func ResolveDashboardWindow(lastNGames *int) (int, error) {
	if lastNGames == nil {
		return defaultDashboardWindow, nil
	}
	n := *lastNGames
	if n < 0 || n > maxDashboardWindow {
		return 0, fmt.Errorf("%w: last_n_games must be between 0 and %d", ErrInvalidInput, maxDashboardWindow)
	}
	return n, nil
}

func (s *DashboardService) Get(ctx context.Context, teamID int64, lastNGames int) (stattable.Table, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Get")
	defer span.End()

	if teamID <= 0 {
		return stattable.Table{}, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}
	table, err := s.provider.FetchTeamDashboard(ctx, teamID, lastNGames)
	if err != nil {
		return stattable.Table{}, fmt.Errorf("fetch team dashboard %d: %w", teamID, err)
	}
	return table, nil
}

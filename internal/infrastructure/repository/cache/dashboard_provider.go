package cache

import (
	"context"
	"fmt"

	"github.com/riskibarqy/nba-projection/internal/domain/stattable"
)

// DashboardBackend stores team dashboards by key, loading on miss.
type DashboardBackend interface {
	GetOrLoad(ctx context.Context, key string, loader func(context.Context) (stattable.Table, error)) (stattable.Table, error)
}

// DashboardProvider decorates a stat provider with a dashboard cache.
type DashboardProvider struct {
	next    stattable.Provider
	backend DashboardBackend
}

func NewDashboardProvider(next stattable.Provider, backend DashboardBackend) *DashboardProvider {
	return &DashboardProvider{next: next, backend: backend}
}

func DashboardKey(teamID int64, lastNGames int) string {
	return fmt.Sprintf("team-dashboard:%d:%d", teamID, lastNGames)
}

func (p *DashboardProvider) FetchTeamDashboard(ctx context.Context, teamID int64, lastNGames int) (stattable.Table, error) {
	return p.backend.GetOrLoad(ctx, DashboardKey(teamID, lastNGames), func(ctx context.Context) (stattable.Table, error) {
		return p.next.FetchTeamDashboard(ctx, teamID, lastNGames)
	})
}

// Warmup forwards to the wrapped provider when it supports warming.
func (p *DashboardProvider) Warmup(ctx context.Context) error {
	if w, ok := p.next.(stattable.Warmer); ok {
		return w.Warmup(ctx)
	}
	return nil
}

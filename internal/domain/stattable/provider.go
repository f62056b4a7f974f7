package stattable

import "context"

// Provider fetches a team dashboard for the last N games (0 = season to date).
type Provider interface {
	FetchTeamDashboard(ctx context.Context, teamID int64, lastNGames int) (Table, error)
}

// Warmer is implemented by providers hosted on instances that sleep when idle.
type Warmer interface {
	Warmup(ctx context.Context) error
}

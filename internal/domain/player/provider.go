package player

import "context"

// Provider lists rosters and season stat lines from the upstream stats service.
type Provider interface {
	ListRoster(ctx context.Context, teamID int64, season string) ([]RosterEntry, error)
	FetchSeasonStats(ctx context.Context, entry RosterEntry, season string) (Stats, bool, error)
}

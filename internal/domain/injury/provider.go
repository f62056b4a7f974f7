package injury

import "context"

// Provider returns the currently injured athletes on a team roster.
type Provider interface {
	FetchTeamInjuries(ctx context.Context, espnTeamID int64) ([]RawEntry, error)
}

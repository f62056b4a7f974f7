package schedule

import (
	"context"
	"time"
)

type Provider interface {
	Matchups(ctx context.Context, date time.Time) ([]Matchup, error)
}

type ResultsProvider interface {
	FinalGames(ctx context.Context, date time.Time) ([]FinalGame, error)
}

type OddsProvider interface {
	MarketLine(ctx context.Context, eventID, competitionID string) (MarketLine, bool, error)
}

type GameLogProvider interface {
	LastGame(ctx context.Context, teamID int64, season string) (LastGame, error)
}

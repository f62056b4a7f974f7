package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/nba-projection/internal/domain/performance"
	"github.com/riskibarqy/nba-projection/internal/platform/logging"
)

// PerformanceLogger validates pick records and appends them to the log store.
type PerformanceLogger struct {
	repo   performance.Repository
	logger *logging.Logger
}

func NewPerformanceLogger(repo performance.Repository, logger *logging.Logger) *PerformanceLogger {
	if logger == nil {
		logger = logging.Default()
	}
	return &PerformanceLogger{repo: repo, logger: logger}
}

// Log derives the confidence band and appends the record. An invalid record is
// rejected before anything is written.
func (l *PerformanceLogger) Log(ctx context.Context, record performance.Record) (performance.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PerformanceLogger.Log")
	defer span.End()

	record.ConfidenceBand = performance.BandForEdge(record.EdgePoints)
	if err := record.Validate(); err != nil {
		return performance.Record{}, fmt.Errorf("%w: performance record %s/%s: %v", ErrInvalidInput, record.GameID, record.PickType, err)
	}
	if err := l.repo.Append(ctx, record); err != nil {
		return performance.Record{}, fmt.Errorf("append performance record: %w", err)
	}

	l.logger.InfoContext(ctx, "performance record logged",
		"date", record.Date,
		"game_id", record.GameID,
		"pick_type", record.PickType,
		"edge_points", record.EdgePoints,
		"result_correct", record.ResultCorrect,
		"confidence_band", record.ConfidenceBand,
	)
	return record, nil
}

// ExistingKeys returns the (date, game_id, pick_type) keys already in the log.
func (l *PerformanceLogger) ExistingKeys(ctx context.Context) (map[performance.Key]struct{}, error) {
	keys, err := l.repo.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("load performance log keys: %w", err)
	}
	return keys, nil
}

package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/nba-projection/internal/domain/performance"
	"github.com/riskibarqy/nba-projection/internal/platform/logging"
)

const (
	MinRecommendEdge    = 3.0
	MinRecommendWinRate = 0.57
	MinRecommendSample  = 5
)

const (
	ReasonInvalidPickType  = "invalid pick type"
	ReasonInsufficientData = "insufficient historical data"
	ReasonEdgeTooSmall     = "edge too small"
	ReasonUnderperforming  = "category underperforms"
	ReasonEdgeAndHistory   = "edge and historical success aligned"
)

type Recommendation struct {
	PickType          string   `json:"pick_type"`
	EdgePoints        float64  `json:"edge_points"`
	Recommended       bool     `json:"recommended"`
	Reason            string   `json:"reason"`
	HistoricalWinRate *float64 `json:"historical_win_rate"`
	SampleSize        int      `json:"sample_size"`
}

// RecommendationService is a read-only view over the performance log. It never
// feeds back into projections.
type RecommendationService struct {
	repo   performance.Repository
	logger *logging.Logger

	mu    sync.RWMutex
	stats map[performance.PickType]performance.Stats
}

func NewRecommendationService(repo performance.Repository, logger *logging.Logger) *RecommendationService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RecommendationService{
		repo:   repo,
		logger: logger,
		stats:  map[performance.PickType]performance.Stats{},
	}
}

// Reload recomputes per pick type win rates from the log.
func (s *RecommendationService) Reload(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecommendationService.Reload")
	defer span.End()

	records, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list performance records: %w", err)
	}

	stats := AggregatePickStats(records)
	s.mu.Lock()
	s.stats = stats
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "recommendation stats reloaded", "records", len(records), "pick_types", len(stats))
	return nil
}

// AggregatePickStats counts wins per valid pick type. Win rate is only set once
// a pick type reaches the minimum sample.
func AggregatePickStats(records []performance.Record) map[performance.PickType]performance.Stats {
	out := make(map[performance.PickType]performance.Stats)
	for _, rec := range records {
		if !rec.PickType.Valid() {
			continue
		}
		item := out[rec.PickType]
		item.PickType = rec.PickType
		item.Total++
		if rec.ResultCorrect {
			item.Wins++
		}
		out[rec.PickType] = item
	}
	for pickType, item := range out {
		if item.Total >= MinRecommendSample {
			rate := float64(item.Wins) / float64(item.Total)
			item.WinRate = &rate
		}
		out[pickType] = item
	}
	return out
}

func (s *RecommendationService) ShouldRecommend(pickType string, edge float64) Recommendation {
	out := Recommendation{PickType: pickType, EdgePoints: edge}

	pt := performance.PickType(pickType)
	if !pt.Valid() {
		out.Reason = ReasonInvalidPickType
		return out
	}

	s.mu.RLock()
	stats := s.stats[pt]
	s.mu.RUnlock()

	out.SampleSize = stats.Total
	if stats.Total < MinRecommendSample {
		out.Reason = ReasonInsufficientData
		return out
	}

	out.HistoricalWinRate = stats.WinRate
	switch {
	case edge < MinRecommendEdge:
		out.Reason = ReasonEdgeTooSmall
	case stats.WinRate == nil || *stats.WinRate < MinRecommendWinRate:
		out.Reason = ReasonUnderperforming
	default:
		out.Recommended = true
		out.Reason = ReasonEdgeAndHistory
	}
	return out
}

// Summary lists every pick type in reporting order, including ones never logged.
func (s *RecommendationService) Summary() []performance.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]performance.Stats, 0, len(performance.PickTypes))
	for _, pickType := range performance.PickTypes {
		item, ok := s.stats[pickType]
		if !ok {
			item = performance.Stats{PickType: pickType}
		}
		out = append(out, item)
	}
	return out
}

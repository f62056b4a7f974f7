package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/nba-projection/internal/domain/performance"
	qb "github.com/riskibarqy/nba-projection/internal/platform/querybuilder"
)

const performanceLogTable = "performance_log"

type PerformanceLogRepository struct {
	db *sqlx.DB
}

func NewPerformanceLogRepository(db *sqlx.DB) *PerformanceLogRepository {
	return &PerformanceLogRepository{db: db}
}

// Append inserts one row. A row with an existing (date, game_id, pick_type) is ignored.
func (r *PerformanceLogRepository) Append(ctx context.Context, record performance.Record) error {
	date, err := time.Parse(dateLayout, record.Date)
	if err != nil {
		return fmt.Errorf("parse performance record date %q: %w", record.Date, err)
	}

	insertModel := performanceLogInsertModel{
		Date:           date,
		GameID:         record.GameID,
		PickType:       string(record.PickType),
		EdgePoints:     record.EdgePoints,
		ModelLine:      record.ModelLine,
		MarketLine:     record.MarketLine,
		ResultCorrect:  record.ResultCorrect,
		ConfidenceBand: string(record.ConfidenceBand),
		VarianceFlag:   string(record.VarianceFlag),
		InjuryFlag:     string(record.InjuryFlag),
		Notes:          record.Notes,
	}
	query, args, err := qb.InsertModel(performanceLogTable, insertModel, qb.OnConflictDoNothing("date", "game_id", "pick_type"))
	if err != nil {
		return fmt.Errorf("build insert performance record query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert performance record game_id=%s pick_type=%s: %w", record.GameID, record.PickType, err)
	}
	return nil
}

func (r *PerformanceLogRepository) Keys(ctx context.Context) (map[performance.Key]struct{}, error) {
	query, args, err := qb.Select("date", "game_id", "pick_type").From(performanceLogTable).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build performance keys query: %w", err)
	}

	var rows []performanceLogKeyModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list performance keys: %w", err)
	}

	out := make(map[performance.Key]struct{}, len(rows))
	for _, row := range rows {
		out[performance.Key{
			Date:     row.Date.Format(dateLayout),
			GameID:   row.GameID,
			PickType: performance.PickType(row.PickType),
		}] = struct{}{}
	}
	return out, nil
}

func (r *PerformanceLogRepository) List(ctx context.Context) ([]performance.Record, error) {
	query, args, err := qb.Select("*").From(performanceLogTable).OrderBy("date", "id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list performance records query: %w", err)
	}

	var rows []performanceLogTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list performance records: %w", err)
	}

	out := make([]performance.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, performance.Record{
			Date:           row.Date.Format(dateLayout),
			GameID:         row.GameID,
			PickType:       performance.PickType(row.PickType),
			EdgePoints:     row.EdgePoints,
			ModelLine:      row.ModelLine,
			MarketLine:     row.MarketLine,
			ResultCorrect:  row.ResultCorrect,
			ConfidenceBand: performance.ConfidenceBand(row.ConfidenceBand),
			VarianceFlag:   performance.VarianceFlag(row.VarianceFlag),
			InjuryFlag:     performance.InjuryFlag(row.InjuryFlag),
			Notes:          row.Notes,
		})
	}
	return out, nil
}

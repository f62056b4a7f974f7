package postgres

import (
	"context"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/nba-projection/internal/domain/prediction"
	qb "github.com/riskibarqy/nba-projection/internal/platform/querybuilder"
)

const predictionArchiveTable = "prediction_archive"

var archiveKey = []string{"archive_date"}

// PredictionArchiveRepository keeps one JSONB archive row per slate date.
type PredictionArchiveRepository struct {
	db *sqlx.DB
}

func NewPredictionArchiveRepository(db *sqlx.DB) *PredictionArchiveRepository {
	return &PredictionArchiveRepository{db: db}
}

func (r *PredictionArchiveRepository) Save(ctx context.Context, archive prediction.Archive, overwrite bool) error {
	if err := archive.Validate(); err != nil {
		return err
	}
	date, _ := time.Parse(prediction.DateLayout, archive.Date)

	payload, err := sonic.Marshal(archive)
	if err != nil {
		return fmt.Errorf("encode prediction archive date=%s: %w", archive.Date, err)
	}

	suffix := qb.OnConflictDoNothing(archiveKey...)
	if overwrite {
		suffix = qb.OnConflictUpdate(archiveKey, []string{"run_id", "generated_at", "payload"}, "updated_at = NOW()")
	}
	query, args, err := qb.InsertModel(predictionArchiveTable, predictionArchiveInsertModel{
		ArchiveDate: date,
		RunID:       archive.RunID,
		GeneratedAt: archive.Timestamp,
		Payload:     payload,
	}, suffix)
	if err != nil {
		return fmt.Errorf("build insert prediction archive query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("insert prediction archive date=%s: %w", archive.Date, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read affected rows for prediction archive date=%s: %w", archive.Date, err)
	}
	if affected == 0 && !overwrite {
		return fmt.Errorf("%w: date=%s", prediction.ErrArchiveExists, archive.Date)
	}
	return nil
}

func (r *PredictionArchiveRepository) Get(ctx context.Context, date string) (prediction.Archive, bool, error) {
	archiveDate, err := time.Parse(prediction.DateLayout, date)
	if err != nil {
		return prediction.Archive{}, false, fmt.Errorf("parse archive date %q: %w", date, err)
	}

	query, args, err := qb.Select("*").From(predictionArchiveTable).
		Where(qb.Eq("archive_date", archiveDate)).
		Limit(1).
		ToSQL()
	if err != nil {
		return prediction.Archive{}, false, fmt.Errorf("build get prediction archive query: %w", err)
	}

	var row predictionArchiveTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return prediction.Archive{}, false, nil
		}
		return prediction.Archive{}, false, fmt.Errorf("get prediction archive date=%s: %w", date, err)
	}

	var archive prediction.Archive
	if err := sonic.Unmarshal(row.Payload, &archive); err != nil {
		return prediction.Archive{}, false, fmt.Errorf("decode prediction archive date=%s: %w", date, err)
	}
	return archive, true, nil
}

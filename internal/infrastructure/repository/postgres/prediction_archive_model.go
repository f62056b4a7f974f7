package postgres

import "time"

type predictionArchiveTableModel struct {
	ArchiveDate time.Time `db:"archive_date"`
	RunID       string    `db:"run_id"`
	GeneratedAt time.Time `db:"generated_at"`
	Payload     []byte    `db:"payload"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type predictionArchiveInsertModel struct {
	ArchiveDate time.Time `db:"archive_date"`
	RunID       string    `db:"run_id"`
	GeneratedAt time.Time `db:"generated_at"`
	Payload     []byte    `db:"payload"`
}

package querybuilder

import (
	"testing"
	"time"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("date", "game_id").
		From("performance_log").
		Where(Eq("pick_type", "spread_big_edge"), Eq("confidence_band", "high")).
		OrderBy("date", "id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT date, game_id FROM performance_log WHERE pick_type = $1 AND confidence_band = $2 ORDER BY date, id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "spread_big_edge" || args[1] != "high" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_RequiresTable(t *testing.T) {
	if _, _, err := Select("*").ToSQL(); err == nil {
		t.Fatalf("expected error without table")
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("performance_log").
		Columns("game_id", "pick_type").
		Values("LAL@BOS", "spread_big_edge").
		Suffix(OnConflictDoNothing("date", "game_id", "pick_type")).
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO performance_log (game_id, pick_type) VALUES ($1, $2) ON CONFLICT (date, game_id, pick_type) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "LAL@BOS" || args[1] != "spread_big_edge" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_ValueCountMismatch(t *testing.T) {
	if _, _, err := InsertInto("t").Columns("a", "b").Values(1).ToSQL(); err == nil {
		t.Fatalf("expected mismatch error")
	}
}

func TestInsertModel(t *testing.T) {
	type archiveRow struct {
		ArchiveDate time.Time `db:"archive_date"`
		RunID       string    `db:"run_id"`
		Payload     []byte    `db:"payload"`
		ignored     string
		Skipped     string `db:"-"`
	}

	suffix := OnConflictUpdate([]string{"archive_date"}, []string{"run_id", "payload"}, "updated_at = NOW()")
	query, args, err := InsertModel("prediction_archive", archiveRow{RunID: "r1"}, suffix)
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}

	wantQuery := "INSERT INTO prediction_archive (archive_date, run_id, payload) VALUES ($1, $2, $3) " +
		"ON CONFLICT (archive_date) DO UPDATE SET run_id = EXCLUDED.run_id, payload = EXCLUDED.payload, updated_at = NOW()"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[1] != "r1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel_RejectsNonStruct(t *testing.T) {
	if _, _, err := InsertModel("t", 42, ""); err == nil {
		t.Fatalf("expected error for non-struct model")
	}
	var nilRow *struct{}
	if _, _, err := InsertModel("t", nilRow, ""); err == nil {
		t.Fatalf("expected error for nil model")
	}
}

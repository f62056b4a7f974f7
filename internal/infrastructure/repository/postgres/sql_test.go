package postgres

import (
	"database/sql"
	"fmt"
	"strings"
	"testing"

	qb "github.com/riskibarqy/nba-projection/internal/platform/querybuilder"
)

func TestIsNotFound(t *testing.T) {
	t.Run("matches wrapped no rows", func(t *testing.T) {
		if !isNotFound(fmt.Errorf("get archive: %w", sql.ErrNoRows)) {
			t.Fatalf("expected true for wrapped sql.ErrNoRows")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		if isNotFound(fmt.Errorf("pq: relation prediction_archive does not exist")) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestPerformanceLogInsertModel_Columns(t *testing.T) {
	query, args, err := qb.InsertModel(performanceLogTable, performanceLogInsertModel{GameID: "LAL@BOS"}, qb.OnConflictDoNothing("date", "game_id", "pick_type"))
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}
	if len(args) != 11 {
		t.Fatalf("expected 11 bound values, got=%d", len(args))
	}
	wantPrefix := "INSERT INTO performance_log (date, game_id, pick_type, edge_points, model_line, market_line, result_correct, confidence_band, variance_flag, injury_flag, notes)"
	if !strings.HasPrefix(query, wantPrefix) {
		t.Fatalf("unexpected insert columns:\nwant prefix: %s\ngot: %s", wantPrefix, query)
	}
	if !strings.HasSuffix(query, "ON CONFLICT (date, game_id, pick_type) DO NOTHING") {
		t.Fatalf("expected duplicate rows to be ignored, got=%s", query)
	}
}

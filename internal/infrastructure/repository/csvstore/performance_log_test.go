package csvstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/riskibarqy/nba-projection/internal/domain/performance"
)

func sampleRecord() performance.Record {
	return performance.Record{
		Date:           "2025-12-07",
		GameID:         "LAL@BOS",
		PickType:       performance.PickSpreadBigEdge,
		EdgePoints:     4.5,
		ModelLine:      -7.1,
		MarketLine:     -2.6,
		ResultCorrect:  true,
		ConfidenceBand: performance.ConfidenceHigh,
		VarianceFlag:   performance.VarianceNormal,
		InjuryFlag:     performance.InjuryMajor,
		Notes:          "Actual: +10, ATS vs market: +7.4",
	}
}

func TestPerformanceLog_AppendWritesHeaderOnce(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "model_performance", "model_performance_log.csv")
	store := NewPerformanceLog(path)

	first := sampleRecord()
	second := sampleRecord()
	second.PickType = performance.PickTotalOverValue
	second.ResultCorrect = false

	if err := store.Append(context.Background(), first); err != nil {
		t.Fatalf("append first: %v", err)
	}
	if err := store.Append(context.Background(), second); err != nil {
		t.Fatalf("append second: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus two rows, got=%d lines:\n%s", len(lines), raw)
	}
	if lines[0] != strings.Join(header, ",") {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], ",TRUE,") || !strings.Contains(lines[2], ",FALSE,") {
		t.Fatalf("expected TRUE/FALSE serialization, got:\n%s", raw)
	}
	if !strings.HasSuffix(lines[1], `"Actual: +10, ATS vs market: +7.4"`) {
		t.Fatalf("expected notes with a comma to be quoted, got=%s", lines[1])
	}
}

func TestPerformanceLog_ListAndKeys(t *testing.T) {
	t.Parallel()

	store := NewPerformanceLog(filepath.Join(t.TempDir(), "log.csv"))
	if err := store.Append(context.Background(), sampleRecord()); err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected one record, got=%d", len(records))
	}
	if records[0] != sampleRecord() {
		t.Fatalf("expected round-tripped record, got=%+v", records[0])
	}

	keys, err := store.Keys(context.Background())
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if _, ok := keys[sampleRecord().Key()]; !ok || len(keys) != 1 {
		t.Fatalf("expected the appended key, got=%v", keys)
	}
}

func TestPerformanceLog_MissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	store := NewPerformanceLog(filepath.Join(t.TempDir(), "absent.csv"))
	records, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty log, got=%d", len(records))
	}
}

func TestPerformanceLog_ReadsPythonStyleBooleans(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "log.csv")
	content := strings.Join(header, ",") + "\n" +
		"2025-12-06,NYK@MIA,total_under_value,2.4,221.1,223.5,True,medium,normal,none,\"Actual: 219, vs market under (-4.5)\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("seed log: %v", err)
	}

	records, err := NewPerformanceLog(path).List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 || !records[0].ResultCorrect || records[0].GameID != "NYK@MIA" {
		t.Fatalf("unexpected records: %+v", records)
	}
}

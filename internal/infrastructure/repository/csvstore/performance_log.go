package csvstore

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/riskibarqy/nba-projection/internal/domain/performance"
	"github.com/valyala/bytebufferpool"
)

var header = []string{
	"date",
	"game_id",
	"pick_type",
	"edge_points",
	"model_line",
	"market_line",
	"result_correct",
	"confidence_band",
	"variance_flag",
	"injury_flag",
	"notes",
}

// PerformanceLog is the append-only CSV form of the performance log. The header
// is written only when the file is created.
type PerformanceLog struct {
	path string
	mu   sync.Mutex
}

func NewPerformanceLog(path string) *PerformanceLog {
	return &PerformanceLog{path: path}
}

func (l *PerformanceLog) Append(ctx context.Context, record performance.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create performance log dir: %w", err)
	}
	info, statErr := os.Stat(l.path)
	created := errors.Is(statErr, fs.ErrNotExist) || (statErr == nil && info.Size() == 0)

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	w := csv.NewWriter(buf)
	if created {
		_ = w.Write(header)
	}
	_ = w.Write(toRow(record))
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("encode performance row: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open performance log: %w", err)
	}
	if _, err := f.Write(buf.B); err != nil {
		_ = f.Close()
		return fmt.Errorf("append performance row: %w", err)
	}
	return f.Close()
}

func (l *PerformanceLog) Keys(ctx context.Context) (map[performance.Key]struct{}, error) {
	records, err := l.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[performance.Key]struct{}, len(records))
	for _, record := range records {
		out[record.Key()] = struct{}{}
	}
	return out, nil
}

// List reads every row. A missing file is an empty log.
func (l *PerformanceLog) List(ctx context.Context) ([]performance.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []performance.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open performance log: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	columns, err := r.Read()
	if errors.Is(err, io.EOF) {
		return []performance.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read performance log header: %w", err)
	}
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		index[strings.TrimSpace(name)] = i
	}

	out := make([]performance.Record, 0)
	for line := 2; ; line++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read performance log line %d: %w", line, err)
		}
		record, err := fromRow(row, index)
		if err != nil {
			return nil, fmt.Errorf("parse performance log line %d: %w", line, err)
		}
		out = append(out, record)
	}
	return out, nil
}

func toRow(r performance.Record) []string {
	correct := "FALSE"
	if r.ResultCorrect {
		correct = "TRUE"
	}
	return []string{
		r.Date,
		r.GameID,
		string(r.PickType),
		formatFloat(r.EdgePoints),
		formatFloat(r.ModelLine),
		formatFloat(r.MarketLine),
		correct,
		string(r.ConfidenceBand),
		string(r.VarianceFlag),
		string(r.InjuryFlag),
		r.Notes,
	}
}

func fromRow(row []string, index map[string]int) (performance.Record, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	edge, err := parseFloat(field("edge_points"))
	if err != nil {
		return performance.Record{}, fmt.Errorf("edge_points: %w", err)
	}
	model, err := parseFloat(field("model_line"))
	if err != nil {
		return performance.Record{}, fmt.Errorf("model_line: %w", err)
	}
	market, err := parseFloat(field("market_line"))
	if err != nil {
		return performance.Record{}, fmt.Errorf("market_line: %w", err)
	}

	return performance.Record{
		Date:           field("date"),
		GameID:         field("game_id"),
		PickType:       performance.PickType(field("pick_type")),
		EdgePoints:     edge,
		ModelLine:      model,
		MarketLine:     market,
		ResultCorrect:  strings.EqualFold(field("result_correct"), "true"),
		ConfidenceBand: performance.ConfidenceBand(field("confidence_band")),
		VarianceFlag:   performance.VarianceFlag(field("variance_flag")),
		InjuryFlag:     performance.InjuryFlag(field("injury_flag")),
		Notes:          field("notes"),
	}, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloat(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

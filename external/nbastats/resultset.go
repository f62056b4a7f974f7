package nbastats

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/nba-projection/internal/domain/stattable"
)

type response struct {
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// row is one rowSet entry addressed by header name.
type row map[string]any

func (r response) first() (resultSet, error) {
	if len(r.ResultSets) == 0 {
		return resultSet{}, fmt.Errorf("%w: response has no result sets", stattable.ErrDataShape)
	}
	return r.ResultSets[0], nil
}

func (s resultSet) rows() []row {
	out := make([]row, 0, len(s.RowSet))
	for _, values := range s.RowSet {
		item := make(row, len(s.Headers))
		for i, header := range s.Headers {
			if i < len(values) {
				item[header] = values[i]
			}
		}
		out = append(out, item)
	}
	return out
}

func (r row) number(field string) (float64, bool) {
	switch v := r[field].(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

func (r row) floatOr(field string, fallback float64) float64 {
	if v, ok := r.number(field); ok {
		return v
	}
	return fallback
}

func (r row) integer(field string) int64 {
	v, _ := r.number(field)
	return int64(v)
}

func (r row) text(field string) string {
	s, _ := r[field].(string)
	return strings.TrimSpace(s)
}

func (r row) record() stattable.Record {
	return stattable.RecordFromValues(r)
}

package stattable

import (
	"errors"
	"fmt"
)

// ErrDataShape marks an upstream payload that lacks a required category or field.
var ErrDataShape = errors.New("unexpected stat payload shape")

type Category string

const (
	CategoryBase        Category = "Base"
	CategoryAdvanced    Category = "Advanced"
	CategoryMisc        Category = "Misc"
	CategoryFourFactors Category = "Four Factors"
	CategoryScoring     Category = "Scoring"
	CategoryOpponent    Category = "Opponent"
)

// Categories lists every category a team dashboard may carry, in request order.
var Categories = []Category{
	CategoryBase,
	CategoryAdvanced,
	CategoryMisc,
	CategoryFourFactors,
	CategoryScoring,
	CategoryOpponent,
}

func (c Category) Valid() bool {
	for _, item := range Categories {
		if item == c {
			return true
		}
	}
	return false
}

// Record is one category's flat field to value mapping.
type Record map[string]float64

// Table holds one team's aggregate statistics over one window. LastNGames == 0
// means season to date. A Table is never mutated after the provider builds it.
type Table struct {
	TeamID     int64               `json:"team_id"`
	LastNGames int                 `json:"last_n_games"`
	Categories map[Category]Record `json:"categories"`
}

func (t Table) Category(c Category) (Record, bool) {
	rec, ok := t.Categories[c]
	return rec, ok && rec != nil
}

// Value returns a field or ErrDataShape when the category or field is absent.
func (t Table) Value(c Category, field string) (float64, error) {
	rec, ok := t.Category(c)
	if !ok {
		return 0, fmt.Errorf("%w: team_id=%d last_n=%d missing category %q", ErrDataShape, t.TeamID, t.LastNGames, c)
	}
	v, ok := rec[field]
	if !ok {
		return 0, fmt.Errorf("%w: team_id=%d last_n=%d missing %s.%s", ErrDataShape, t.TeamID, t.LastNGames, c, field)
	}
	return v, nil
}

// ValueOr returns a field, or fallback when it is absent.
func (t Table) ValueOr(c Category, field string, fallback float64) float64 {
	rec, ok := t.Category(c)
	if !ok {
		return fallback
	}
	if v, ok := rec[field]; ok {
		return v
	}
	return fallback
}

// Ratings are the Advanced-category fields the projection pipeline depends on.
type Ratings struct {
	OffRating float64
	DefRating float64
	Pace      float64
}

func (t Table) Ratings() (Ratings, error) {
	off, err := t.Value(CategoryAdvanced, "OFF_RATING")
	if err != nil {
		return Ratings{}, err
	}
	def, err := t.Value(CategoryAdvanced, "DEF_RATING")
	if err != nil {
		return Ratings{}, err
	}
	pace, err := t.Value(CategoryAdvanced, "PACE")
	if err != nil {
		return Ratings{}, err
	}
	return Ratings{OffRating: off, DefRating: def, Pace: pace}, nil
}

// RecordFromValues keeps the numeric entries of a decoded JSON object. Strings such
// as TEAM_NAME and nulls are dropped.
func RecordFromValues(values map[string]any) Record {
	rec := make(Record, len(values))
	for field, raw := range values {
		switch v := raw.(type) {
		case float64:
			rec[field] = v
		case int64:
			rec[field] = float64(v)
		case int:
			rec[field] = float64(v)
		}
	}
	return rec
}

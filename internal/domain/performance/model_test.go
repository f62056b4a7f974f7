package performance

import (
	"math"
	"testing"
)

func TestBandForEdge(t *testing.T) {
	t.Parallel()

	cases := map[float64]ConfidenceBand{
		0:    ConfidenceLow,
		1.99: ConfidenceLow,
		2:    ConfidenceMedium,
		-3.5: ConfidenceMedium,
		4:    ConfidenceHigh,
		5.99: ConfidenceHigh,
		6:    ConfidenceElite,
		-9:   ConfidenceElite,
	}
	for edge, want := range cases {
		if got := BandForEdge(edge); got != want {
			t.Fatalf("BandForEdge(%v) expected=%s got=%s", edge, want, got)
		}
	}
}

func TestValidGameID(t *testing.T) {
	t.Parallel()

	valid := []string{"GSW@BOS", "LAC@NOP", "A1@B2"}
	invalid := []string{"gsw@BOS", "GSW-BOS", "GSW@", "@BOS", "GSW@BOS@LAL", "GS W@BOS", "12@34"}
	for _, id := range valid {
		if !ValidGameID(id) {
			t.Fatalf("expected %q to be valid", id)
		}
	}
	for _, id := range invalid {
		if ValidGameID(id) {
			t.Fatalf("expected %q to be invalid", id)
		}
	}
}

func TestPickType_Valid(t *testing.T) {
	t.Parallel()

	if len(PickTypes) != 8 {
		t.Fatalf("expected 8 pick types, got=%d", len(PickTypes))
	}
	if !PickFlippedFavorite.Valid() {
		t.Fatalf("expected flipped_favorite to be valid")
	}
	if PickType("moneyline_value").Valid() {
		t.Fatalf("expected unknown pick type to be invalid")
	}
}

func validRecord() Record {
	return Record{
		Date:         "2026-01-14",
		GameID:       "LAL@BOS",
		PickType:     PickSpreadBigEdge,
		EdgePoints:   4.5,
		ModelLine:    -7.1,
		MarketLine:   -2.6,
		VarianceFlag: VarianceNormal,
		InjuryFlag:   InjuryNone,
	}
}

func TestRecord_Validate(t *testing.T) {
	t.Parallel()

	if err := validRecord().Validate(); err != nil {
		t.Fatalf("expected valid record, got=%v", err)
	}

	cases := map[string]func(*Record){
		"missing date":        func(r *Record) { r.Date = "" },
		"bad date":            func(r *Record) { r.Date = "01/14/2026" },
		"lowercase game id":   func(r *Record) { r.GameID = "lal@bos" },
		"game id no sep":      func(r *Record) { r.GameID = "LALBOS" },
		"unknown pick type":   func(r *Record) { r.PickType = "moneyline" },
		"nan edge":            func(r *Record) { r.EdgePoints = math.NaN() },
		"infinite line":       func(r *Record) { r.MarketLine = math.Inf(1) },
		"bad variance flag":   func(r *Record) { r.VarianceFlag = "wild" },
		"missing injury flag": func(r *Record) { r.InjuryFlag = "" },
	}
	for name, mutate := range cases {
		rec := validRecord()
		mutate(&rec)
		if err := rec.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

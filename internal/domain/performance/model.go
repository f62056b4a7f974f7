package performance

import (
	"math"
	"strings"
)

type PickType string

const (
	PickSpreadDogValue    PickType = "spread_dog_value"
	PickSpreadFavSmall    PickType = "spread_fav_small"
	PickSpreadBigEdge     PickType = "spread_big_edge"
	PickFlippedFavorite   PickType = "flipped_favorite"
	PickTotalOverValue    PickType = "total_over_value"
	PickTotalOverBigEdge  PickType = "total_over_big_edge"
	PickTotalUnderValue   PickType = "total_under_value"
	PickTotalUnderBigEdge PickType = "total_under_big_edge"
)

// PickTypes lists every pick type in reporting order.
var PickTypes = []PickType{
	PickSpreadDogValue,
	PickSpreadFavSmall,
	PickSpreadBigEdge,
	PickFlippedFavorite,
	PickTotalOverValue,
	PickTotalOverBigEdge,
	PickTotalUnderValue,
	PickTotalUnderBigEdge,
}

func (p PickType) Valid() bool {
	for _, item := range PickTypes {
		if item == p {
			return true
		}
	}
	return false
}

type ConfidenceBand string

const (
	ConfidenceLow    ConfidenceBand = "low"
	ConfidenceMedium ConfidenceBand = "medium"
	ConfidenceHigh   ConfidenceBand = "high"
	ConfidenceElite  ConfidenceBand = "elite"
)

// BandForEdge buckets the absolute edge: <2 low, <4 medium, <6 high, else elite.
func BandForEdge(edge float64) ConfidenceBand {
	switch abs := math.Abs(edge); {
	case abs < 2:
		return ConfidenceLow
	case abs < 4:
		return ConfidenceMedium
	case abs < 6:
		return ConfidenceHigh
	default:
		return ConfidenceElite
	}
}

type VarianceFlag string

const (
	VarianceNormal VarianceFlag = "normal"
	VarianceHigh   VarianceFlag = "high_variance"
)

type InjuryFlag string

const (
	InjuryNone  InjuryFlag = "none"
	InjuryMinor InjuryFlag = "minor"
	InjuryMajor InjuryFlag = "major"
)

// Record is one row of the append-only performance log.
type Record struct {
	Date           string         `json:"date" db:"date" validate:"required,datetime=2006-01-02"`
	GameID         string         `json:"game_id" db:"game_id" validate:"required,game_id"`
	PickType       PickType       `json:"pick_type" db:"pick_type" validate:"required,oneof=spread_dog_value spread_fav_small spread_big_edge flipped_favorite total_over_value total_over_big_edge total_under_value total_under_big_edge"`
	EdgePoints     float64        `json:"edge_points" db:"edge_points" validate:"finite"`
	ModelLine      float64        `json:"model_line" db:"model_line" validate:"finite"`
	MarketLine     float64        `json:"market_line" db:"market_line" validate:"finite"`
	ResultCorrect  bool           `json:"result_correct" db:"result_correct"`
	ConfidenceBand ConfidenceBand `json:"confidence_band" db:"confidence_band"`
	VarianceFlag   VarianceFlag   `json:"variance_flag" db:"variance_flag" validate:"required,oneof=normal high_variance"`
	InjuryFlag     InjuryFlag     `json:"injury_flag" db:"injury_flag" validate:"required,oneof=none minor major"`
	Notes          string         `json:"notes" db:"notes"`
}

// Key identifies a record for duplicate suppression.
type Key struct {
	Date     string
	GameID   string
	PickType PickType
}

func (r Record) Key() Key {
	return Key{Date: r.Date, GameID: r.GameID, PickType: r.PickType}
}

// ValidGameID accepts AWAY@HOME where both sides are non-empty and upper case.
func ValidGameID(gameID string) bool {
	parts := strings.Split(gameID, "@")
	if len(parts) != 2 {
		return false
	}
	for _, part := range parts {
		if part == "" || part != strings.ToUpper(part) || strings.ContainsAny(part, " \t") {
			return false
		}
		if strings.ToLower(part) == part {
			return false
		}
	}
	return true
}

// Stats is the historical record of one pick type.
type Stats struct {
	PickType PickType `json:"pick_type"`
	Wins     int      `json:"wins"`
	Total    int      `json:"total"`
	WinRate  *float64 `json:"win_rate"`
}

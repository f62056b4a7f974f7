package prediction

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

type Spread struct {
	Baseline     float64  `json:"baseline"`
	RestAdjusted *float64 `json:"rest_adjusted"`
}

type Total struct {
	Baseline     float64  `json:"baseline"`
	PaceAdjusted *float64 `json:"pace_adjusted"`
}

type InjuryImpact struct {
	HomeTotalAdjustment float64 `json:"home_total_adjustment"`
	AwayTotalAdjustment float64 `json:"away_total_adjustment"`
}

// Game is the archived projection for one matchup.
type Game struct {
	HomeTeam     string       `json:"home_team"`
	AwayTeam     string       `json:"away_team"`
	Spread       Spread       `json:"spread"`
	Total        Total        `json:"total"`
	InjuryImpact InjuryImpact `json:"injury_impact"`
}

// ModelSpread prefers the rest-adjusted line when one was produced.
func (g Game) ModelSpread() float64 {
	if g.Spread.RestAdjusted != nil {
		return *g.Spread.RestAdjusted
	}
	return g.Spread.Baseline
}

// ModelTotal prefers the pace-adjusted total when one was produced.
func (g Game) ModelTotal() float64 {
	if g.Total.PaceAdjusted != nil {
		return *g.Total.PaceAdjusted
	}
	return g.Total.Baseline
}

// Archive is one slate date's saved projections.
type Archive struct {
	Date      string    `json:"date"`
	RunID     string    `json:"run_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Games     []Game    `json:"games"`
}

func (a Archive) Validate() error {
	if _, err := time.Parse(DateLayout, a.Date); err != nil {
		return fmt.Errorf("archive date %q must be YYYY-MM-DD: %w", a.Date, err)
	}
	return nil
}

func (a Archive) Find(homeTeam, awayTeam string) (Game, bool) {
	for _, g := range a.Games {
		if g.HomeTeam == homeTeam && g.AwayTeam == awayTeam {
			return g, true
		}
	}
	return Game{}, false
}

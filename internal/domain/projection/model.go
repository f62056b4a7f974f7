package projection

import (
	"time"

	"github.com/riskibarqy/nba-projection/internal/domain/injury"
)

type Tier string

const (
	Tier1 Tier = "Tier1"
	Tier2 Tier = "Tier2"
	Tier3 Tier = "Tier3"
	Tier4 Tier = "Tier4"
)

// Impactful reports whether players of this tier can move team ratings.
func (t Tier) Impactful() bool { return t == Tier1 || t == Tier2 }

// Cap is the absolute bound on a player's regressed impact for the tier.
func (t Tier) Cap() float64 {
	switch t {
	case Tier1:
		return 6.0
	case Tier2:
		return 3.0
	default:
		return 0
	}
}

type FilterResults struct {
	MinMinutes   bool `json:"min_minutes"`
	UsageStable  bool `json:"usage_stable"`
	StrongOnOff  bool `json:"strong_onoff"`
	TierEligible bool `json:"tier_eligible"`
}

func (f FilterResults) All() bool {
	return f.MinMinutes && f.UsageStable && f.StrongOnOff && f.TierEligible
}

type Eligibility struct {
	Tier            Tier
	Filters         FilterResults
	MPG             float64
	UsageVolatility float64
}

func (e Eligibility) Eligible() bool { return e.Filters.All() }

// VegasAdjustments are the multipliers applied to a player's capped impact.
type VegasAdjustments struct {
	LineupWeight       float64 `json:"lineup_weight"`
	DefRoleWeight      float64 `json:"def_role_weight"`
	SampleWeight       float64 `json:"sample_weight"`
	TotalOffMultiplier float64 `json:"total_off_multiplier"`
	TotalDefMultiplier float64 `json:"total_def_multiplier"`
}

type PlayerImpact struct {
	PlayerName       string            `json:"player_name"`
	Team             string            `json:"team"`
	Tier             Tier              `json:"tier"`
	Eligible         bool              `json:"eligible"`
	OffImpact        float64           `json:"off_impact"`
	DefImpact        float64           `json:"def_impact"`
	Minutes          float64           `json:"minutes"`
	MPG              float64           `json:"mpg"`
	UsageRate        float64           `json:"usage"`
	UsageVolatility  float64           `json:"usage_volatility"`
	NetRating        float64           `json:"net_rating"`
	FilterResults    FilterResults     `json:"filter_results"`
	VegasAdjustments *VegasAdjustments `json:"vegas_adjustments,omitempty"`
}

type Baseline struct {
	Team      string  `json:"team"`
	OffRating float64 `json:"off_rating"`
	DefRating float64 `json:"def_rating"`
	Pace      float64 `json:"pace"`
}

type InjuryBreakdown struct {
	PlayerName    string  `json:"player_name"`
	ESPNStatus    string  `json:"espn_status"`
	Eligible      bool    `json:"eligible"`
	OffImpact     float64 `json:"off_impact"`
	DefImpact     float64 `json:"def_impact"`
	OffAdjustment float64 `json:"off_adjustment"`
	DefAdjustment float64 `json:"def_adjustment"`
}

type InjuryAdjustment struct {
	Team          string            `json:"team"`
	OffAdjustment float64           `json:"off_adjustment"`
	DefAdjustment float64           `json:"def_adjustment"`
	Breakdown     []InjuryBreakdown `json:"breakdown"`
}

// Total is the combined off and def swing, as archived for the injury flag.
func (a InjuryAdjustment) Total() float64 { return a.OffAdjustment + a.DefAdjustment }

type TeamAdjustedRating struct {
	Team           string  `json:"team"`
	OffRatingBase  float64 `json:"off_rating_base"`
	DefRatingBase  float64 `json:"def_rating_base"`
	PaceBase       float64 `json:"pace_base"`
	OffAdjustment  float64 `json:"off_adjustment"`
	DefAdjustment  float64 `json:"def_adjustment"`
	OffRatingFinal float64 `json:"off_rating_final"`
	DefRatingFinal float64 `json:"def_rating_final"`
	PaceFinal      float64 `json:"pace_final"`
}

type GameProjection struct {
	HomeTeam       string  `json:"home_team"`
	AwayTeam       string  `json:"away_team"`
	HomePoints     float64 `json:"home_points"`
	AwayPoints     float64 `json:"away_points"`
	Favorite       string  `json:"favorite"`
	Underdog       string  `json:"underdog"`
	FavoriteSpread float64 `json:"favorite_spread"`
	UnderdogSpread float64 `json:"underdog_spread"`
	Total          float64 `json:"total"`
	Possessions    float64 `json:"possessions"`
}

// HomeSpread is the baseline line from the home side's perspective
// (negative when home is favored).
func (g GameProjection) HomeSpread() float64 { return g.AwayPoints - g.HomePoints }

type RestAdjustment struct {
	Enabled          bool    `json:"enabled"`
	RestDaysHome     *int    `json:"rest_days_home"`
	RestDaysAway     *int    `json:"rest_days_away"`
	RestAdjHome      float64 `json:"rest_adj_home"`
	RestAdjAway      float64 `json:"rest_adj_away"`
	RestModuleSpread float64 `json:"rest_module_spread"`
	BaselineSpread   float64 `json:"baseline_spread"`
	RestDiff         float64 `json:"rest_diff"`
}

type PaceAdjustment struct {
	Enabled         bool    `json:"enabled"`
	PaceDelta       float64 `json:"pace_delta"`
	PaceTotalAdj    float64 `json:"pace_total_adj"`
	BaselineTotal   float64 `json:"baseline_total"`
	PaceModuleTotal float64 `json:"pace_module_total"`
}

type ShootingRegression struct {
	FG3Pct float64 `json:"fg3_pct"`
	FGPct  float64 `json:"fg_pct"`
}

// RiskProfile is informational; it never feeds the spread or total.
type RiskProfile struct {
	HomeShooting ShootingRegression `json:"home_shooting"`
	AwayShooting ShootingRegression `json:"away_shooting"`
	Flags        []string           `json:"flags"`
}

const (
	FlagHighTurnoverVariance = "high_turnover_variance"
	FlagPaceMismatch         = "pace_mismatch"
	FlagDefensiveGap         = "defensive_gap"
	FlagExtremeThreeVolume   = "extreme_three_point_volume"
	FlagStandard             = "standard"
)

type TeamReport struct {
	Team       string             `json:"team"`
	Baseline   Baseline           `json:"baseline"`
	Injuries   injury.Report      `json:"injury_report"`
	Impacts    []PlayerImpact     `json:"player_impacts"`
	Adjustment InjuryAdjustment   `json:"injury_adjustment"`
	Rating     TeamAdjustedRating `json:"adjusted_rating"`
}

// Options toggles the optional pipeline stages.
type Options struct {
	Injuries          bool `json:"injuries"`
	Merge             bool `json:"merge"`
	Rest              bool `json:"rest"`
	Pace              bool `json:"pace"`
	NormalizeSchedule bool `json:"normalize_schedule"`
}

func DefaultOptions() Options {
	return Options{Injuries: true, Merge: true, Rest: true, Pace: true}
}

// Result is the terminal record of one matchup run.
type Result struct {
	Date       time.Time      `json:"date"`
	Home       TeamReport     `json:"home"`
	Away       TeamReport     `json:"away"`
	Projection GameProjection `json:"projection"`
	Rest       RestAdjustment `json:"rest_adjustment"`
	Pace       PaceAdjustment `json:"pace_adjustment"`
	Risk       RiskProfile    `json:"risk_profile"`
	Options    Options        `json:"options"`
}

package schedule

import "time"

// Matchup pairs two franchises by full name.
type Matchup struct {
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
}

// FinalGame is a completed game as reported by the scoreboard.
type FinalGame struct {
	EventID       string
	CompetitionID string
	GameID        string
	HomeTeam      string
	AwayTeam      string
	HomeScore     int
	AwayScore     int
}

func (g FinalGame) Margin() int { return g.HomeScore - g.AwayScore }

func (g FinalGame) Total() int { return g.HomeScore + g.AwayScore }

// MarketLine is the closing spread (home perspective) and total for one game.
type MarketLine struct {
	Spread    float64
	OverUnder float64
	Provider  string
}

type Location string

const (
	LocationHome    Location = "home"
	LocationAway    Location = "away"
	LocationUnknown Location = "unknown"
)

// LastGame is a team's most recent completed game before the slate date.
type LastGame struct {
	Date     time.Time
	Location Location
}

package team

import (
	"fmt"
	"strings"
)

// Team is an NBA franchise with the identifiers each upstream provider uses for it.
type Team struct {
	Name    string
	Abbr    string
	StatsID int64
	ESPNID  int64
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if len(t.Abbr) != 3 {
		return fmt.Errorf("team abbreviation must have 3 letters, got %q", t.Abbr)
	}
	if t.StatsID <= 0 {
		return fmt.Errorf("team stats id is required")
	}
	if t.ESPNID <= 0 {
		return fmt.Errorf("team espn id is required")
	}
	return nil
}

var franchises = []Team{
	{Name: "Atlanta Hawks", Abbr: "ATL", StatsID: 1610612737, ESPNID: 1},
	{Name: "Boston Celtics", Abbr: "BOS", StatsID: 1610612738, ESPNID: 2},
	{Name: "Brooklyn Nets", Abbr: "BKN", StatsID: 1610612751, ESPNID: 17},
	{Name: "Charlotte Hornets", Abbr: "CHA", StatsID: 1610612766, ESPNID: 30},
	{Name: "Chicago Bulls", Abbr: "CHI", StatsID: 1610612741, ESPNID: 4},
	{Name: "Cleveland Cavaliers", Abbr: "CLE", StatsID: 1610612739, ESPNID: 5},
	{Name: "Dallas Mavericks", Abbr: "DAL", StatsID: 1610612742, ESPNID: 6},
	{Name: "Denver Nuggets", Abbr: "DEN", StatsID: 1610612743, ESPNID: 7},
	{Name: "Detroit Pistons", Abbr: "DET", StatsID: 1610612765, ESPNID: 8},
	{Name: "Golden State Warriors", Abbr: "GSW", StatsID: 1610612744, ESPNID: 9},
	{Name: "Houston Rockets", Abbr: "HOU", StatsID: 1610612745, ESPNID: 10},
	{Name: "Indiana Pacers", Abbr: "IND", StatsID: 1610612754, ESPNID: 11},
	{Name: "Los Angeles Clippers", Abbr: "LAC", StatsID: 1610612746, ESPNID: 12},
	{Name: "Los Angeles Lakers", Abbr: "LAL", StatsID: 1610612747, ESPNID: 13},
	{Name: "Memphis Grizzlies", Abbr: "MEM", StatsID: 1610612763, ESPNID: 29},
	{Name: "Miami Heat", Abbr: "MIA", StatsID: 1610612748, ESPNID: 14},
	{Name: "Milwaukee Bucks", Abbr: "MIL", StatsID: 1610612749, ESPNID: 15},
	{Name: "Minnesota Timberwolves", Abbr: "MIN", StatsID: 1610612750, ESPNID: 16},
	{Name: "New Orleans Pelicans", Abbr: "NOP", StatsID: 1610612740, ESPNID: 3},
	{Name: "New York Knicks", Abbr: "NYK", StatsID: 1610612752, ESPNID: 18},
	{Name: "Oklahoma City Thunder", Abbr: "OKC", StatsID: 1610612760, ESPNID: 25},
	{Name: "Orlando Magic", Abbr: "ORL", StatsID: 1610612753, ESPNID: 19},
	{Name: "Philadelphia 76ers", Abbr: "PHI", StatsID: 1610612755, ESPNID: 20},
	{Name: "Phoenix Suns", Abbr: "PHX", StatsID: 1610612756, ESPNID: 21},
	{Name: "Portland Trail Blazers", Abbr: "POR", StatsID: 1610612757, ESPNID: 22},
	{Name: "Sacramento Kings", Abbr: "SAC", StatsID: 1610612758, ESPNID: 23},
	{Name: "San Antonio Spurs", Abbr: "SAS", StatsID: 1610612759, ESPNID: 24},
	{Name: "Toronto Raptors", Abbr: "TOR", StatsID: 1610612761, ESPNID: 28},
	{Name: "Utah Jazz", Abbr: "UTA", StatsID: 1610612762, ESPNID: 26},
	{Name: "Washington Wizards", Abbr: "WAS", StatsID: 1610612764, ESPNID: 27},
}

var nameAliases = map[string]string{
	"LA Clippers": "LAC",
}

var espnAbbrFixes = map[string]string{
	"WSH":  "WAS",
	"UTAH": "UTA",
	"GS":   "GSW",
	"SA":   "SAS",
	"NY":   "NYK",
	"NO":   "NOP",
}

// NormalizeESPNAbbr maps ESPN short codes onto NBA abbreviations; unknown codes pass through.
func NormalizeESPNAbbr(abbr string) string {
	abbr = strings.ToUpper(strings.TrimSpace(abbr))
	if fixed, ok := espnAbbrFixes[abbr]; ok {
		return fixed
	}
	return abbr
}

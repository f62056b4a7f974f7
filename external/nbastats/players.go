package nbastats

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"

	"github.com/riskibarqy/nba-projection/internal/domain/player"
)

const (
	leagueAvgRating = 115.0
	averageScorer   = 15.0
)

func (c *Client) ListRoster(ctx context.Context, teamID int64, season string) ([]player.RosterEntry, error) {
	query := url.Values{}
	query.Set("TeamID", strconv.FormatInt(teamID, 10))
	query.Set("Season", season)
	query.Set("LeagueID", leagueID)

	var payload response
	if _, err := c.http.GetJSON(ctx, c.endpoint("commonteamroster", query), &payload); err != nil {
		return nil, fmt.Errorf("fetch roster team_id=%d: %w", teamID, err)
	}
	set, err := payload.first()
	if err != nil {
		return nil, err
	}

	rows := set.rows()
	out := make([]player.RosterEntry, 0, len(rows))
	for _, item := range rows {
		id := item.integer("PLAYER_ID")
		if id <= 0 {
			continue
		}
		position := item.text("POSITION")
		if position == "" {
			position = "F"
		}
		out = append(out, player.RosterEntry{
			ID:       id,
			Name:     item.text("PLAYER"),
			Position: player.Position(position),
		})
	}
	return out, nil
}

// FetchSeasonStats reads the player's career totals and derives the season line
// for season. found is false when the player has not appeared in that season.
func (c *Client) FetchSeasonStats(ctx context.Context, entry player.RosterEntry, season string) (player.Stats, bool, error) {
	query := url.Values{}
	query.Set("PlayerID", strconv.FormatInt(entry.ID, 10))
	query.Set("PerMode", "Totals")
	query.Set("LeagueID", leagueID)

	var payload response
	if _, err := c.http.GetJSON(ctx, c.endpoint("playercareerstats", query), &payload); err != nil {
		return player.Stats{}, false, fmt.Errorf("fetch career stats player_id=%d: %w", entry.ID, err)
	}
	set, err := payload.first()
	if err != nil {
		return player.Stats{}, false, err
	}

	for _, item := range set.rows() {
		if item.text("SEASON_ID") != season {
			continue
		}
		stats := deriveSeasonStats(item)
		stats.PlayerID = entry.ID
		stats.Name = entry.Name
		stats.Position = entry.Position
		return stats, true, nil
	}
	return player.Stats{}, false, nil
}

// deriveSeasonStats approximates the advanced line from box score totals. The
// feed has no on/off split, so usage over the last ten games equals the season value.
func deriveSeasonStats(item row) player.Stats {
	games := item.floatOr("GP", 0)
	minutes := item.floatOr("MIN", 0)

	var mpg, usage, ppg float64
	if games > 0 {
		mpg = minutes / games
	}
	if minutes > 0 {
		usage = (item.floatOr("FGA", 0) + 0.44*item.floatOr("FTA", 0) + item.floatOr("TOV", 0)) / minutes * 48
	}
	ppg = averageScorer
	if games > 0 {
		ppg = item.floatOr("PTS", 0) / games
	}

	net := (ppg - averageScorer) / 3
	offImpact := (item.floatOr("FG_PCT", 0.45)-0.45)*10 + math.Min((ppg-averageScorer)/5, 3)

	return player.Stats{
		GamesPlayed:    int(games),
		Minutes:        minutes,
		MinutesPerGame: mpg,
		UsageRate:      usage,
		UsageLast10:    usage,
		NetRating:      net,
		OffRating:      leagueAvgRating + offImpact,
		DefRating:      leagueAvgRating + net*0.4,
	}
}

package nbastats

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/nba-projection/internal/domain/schedule"
	"github.com/riskibarqy/nba-projection/internal/domain/stattable"
)

// GAME_DATE arrives as "DEC 07, 2025"; month parsing is case-insensitive.
const gameDateLayout = "Jan 02, 2006"

// LastGame returns the first row of the team's regular season game log, which is
// the most recent game played.
func (c *Client) LastGame(ctx context.Context, teamID int64, season string) (schedule.LastGame, error) {
	query := url.Values{}
	query.Set("TeamID", strconv.FormatInt(teamID, 10))
	query.Set("Season", season)
	query.Set("SeasonType", defaultSeasonType)
	query.Set("LeagueID", leagueID)

	var payload response
	if _, err := c.http.GetJSON(ctx, c.endpoint("teamgamelog", query), &payload); err != nil {
		return schedule.LastGame{}, fmt.Errorf("fetch game log team_id=%d: %w", teamID, err)
	}
	set, err := payload.first()
	if err != nil {
		return schedule.LastGame{}, err
	}
	rows := set.rows()
	if len(rows) == 0 {
		return schedule.LastGame{}, fmt.Errorf("%w: team_id=%d has no games in %s", stattable.ErrDataShape, teamID, season)
	}

	latest := rows[0]
	played, err := time.Parse(gameDateLayout, latest.text("GAME_DATE"))
	if err != nil {
		return schedule.LastGame{}, fmt.Errorf("parse GAME_DATE %q: %w", latest.text("GAME_DATE"), err)
	}

	location := schedule.LocationAway
	if strings.Contains(latest.text("MATCHUP"), "vs.") {
		location = schedule.LocationHome
	}
	return schedule.LastGame{Date: played, Location: location}, nil
}

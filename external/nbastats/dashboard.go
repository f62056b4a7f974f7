package nbastats

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/riskibarqy/nba-projection/internal/domain/stattable"
)

// FetchTeamDashboard requests teamdashboardbygeneralsplits once per category and
// keeps the overall row of each. Advanced is mandatory, the rest are optional.
func (c *Client) FetchTeamDashboard(ctx context.Context, teamID int64, lastNGames int) (stattable.Table, error) {
	table := stattable.Table{
		TeamID:     teamID,
		LastNGames: lastNGames,
		Categories: make(map[stattable.Category]stattable.Record, len(stattable.Categories)),
	}

	for _, category := range stattable.Categories {
		rec, err := c.fetchDashboardCategory(ctx, teamID, lastNGames, category)
		if err != nil {
			if category == stattable.CategoryAdvanced {
				return stattable.Table{}, err
			}
			c.logger.WarnContext(ctx, "dashboard category unavailable",
				"team_id", teamID,
				"last_n_games", lastNGames,
				"category", string(category),
				"error", err,
			)
			continue
		}
		table.Categories[category] = rec
	}

	if _, err := table.Ratings(); err != nil {
		return stattable.Table{}, err
	}
	return table, nil
}

func (c *Client) fetchDashboardCategory(ctx context.Context, teamID int64, lastNGames int, category stattable.Category) (stattable.Record, error) {
	query := url.Values{}
	query.Set("TeamID", strconv.FormatInt(teamID, 10))
	query.Set("LastNGames", strconv.Itoa(lastNGames))
	query.Set("MeasureType", string(category))
	query.Set("PerMode", "PerGame")
	query.Set("SeasonType", defaultSeasonType)
	query.Set("LeagueID", leagueID)
	query.Set("Month", "0")
	query.Set("OpponentTeamID", "0")
	query.Set("PaceAdjust", "N")
	query.Set("Period", "0")
	query.Set("PlusMinus", "N")
	query.Set("Rank", "N")

	var payload response
	if _, err := c.http.GetJSON(ctx, c.endpoint("teamdashboardbygeneralsplits", query), &payload); err != nil {
		return nil, fmt.Errorf("fetch %s dashboard team_id=%d: %w", category, teamID, err)
	}
	set, err := payload.first()
	if err != nil {
		return nil, err
	}
	rows := set.rows()
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s dashboard team_id=%d has no rows", stattable.ErrDataShape, category, teamID)
	}
	return rows[0].record(), nil
}

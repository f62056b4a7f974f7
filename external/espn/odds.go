package espn

import (
	"context"
	"fmt"
	"net/url"

	"github.com/riskibarqy/nba-projection/internal/domain/schedule"
)

type oddsResponse struct {
	Items []oddsItem `json:"items"`
}

type oddsItem struct {
	Spread    *float64 `json:"spread"`
	OverUnder *float64 `json:"overUnder"`
	Provider  struct {
		Name string `json:"name"`
	} `json:"provider"`
}

// MarketLine returns the first provider line that carries both a spread and a
// total. The spread is from the home team's perspective.
func (c *Client) MarketLine(ctx context.Context, eventID, competitionID string) (schedule.MarketLine, bool, error) {
	fullURL := fmt.Sprintf("%s/events/%s/competitions/%s/odds", c.coreBaseURL, url.PathEscape(eventID), url.PathEscape(competitionID))

	var payload oddsResponse
	if _, err := c.http.GetJSON(ctx, fullURL, &payload); err != nil {
		return schedule.MarketLine{}, false, fmt.Errorf("fetch odds event_id=%s: %w", eventID, err)
	}

	for _, item := range payload.Items {
		if item.Spread == nil || item.OverUnder == nil {
			continue
		}
		return schedule.MarketLine{
			Spread:    *item.Spread,
			OverUnder: *item.OverUnder,
			Provider:  item.Provider.Name,
		}, true, nil
	}
	return schedule.MarketLine{}, false, nil
}

package espn

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/nba-projection/internal/domain/injury"
)

type rosterResponse struct {
	Athletes []rosterAthlete `json:"athletes"`
}

type rosterAthlete struct {
	DisplayName string          `json:"displayName"`
	Injuries    []athleteInjury `json:"injuries"`
}

type athleteInjury struct {
	Status string `json:"status"`
	Date   string `json:"date"`
}

// FetchTeamInjuries lists athletes on the ESPN roster that carry an injury note.
// The first note is the most recent one.
func (c *Client) FetchTeamInjuries(ctx context.Context, espnTeamID int64) ([]injury.RawEntry, error) {
	var payload rosterResponse
	fullURL := fmt.Sprintf("%s/teams/%d/roster", c.siteBaseURL, espnTeamID)
	if _, err := c.http.GetJSON(ctx, fullURL, &payload); err != nil {
		return nil, fmt.Errorf("fetch roster espn_team_id=%d: %w", espnTeamID, err)
	}

	out := make([]injury.RawEntry, 0)
	for _, athlete := range payload.Athletes {
		if len(athlete.Injuries) == 0 {
			continue
		}
		latest := athlete.Injuries[0]
		status := strings.ToUpper(strings.TrimSpace(latest.Status))
		if status == "" {
			status = string(injury.StatusActive)
		}
		out = append(out, injury.RawEntry{
			PlayerName: athlete.DisplayName,
			Status:     status,
			Date:       latest.Date,
		})
	}
	return out, nil
}

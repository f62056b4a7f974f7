package espn

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/nba-projection/internal/domain/schedule"
)

const statusFinal = "STATUS_FINAL"

type scoreboardResponse struct {
	Events []scoreboardEvent `json:"events"`
}

type scoreboardEvent struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Status       eventStatus   `json:"status"`
	Competitions []competition `json:"competitions"`
}

type eventStatus struct {
	Type struct {
		Name string `json:"name"`
	} `json:"type"`
}

type competition struct {
	ID          string       `json:"id"`
	Competitors []competitor `json:"competitors"`
}

type competitor struct {
	HomeAway string `json:"homeAway"`
	Score    any    `json:"score"`
	Team     struct {
		Abbreviation string `json:"abbreviation"`
		DisplayName  string `json:"displayName"`
	} `json:"team"`
}

func (c competitor) score() int {
	switch v := c.Score.(type) {
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func (e scoreboardEvent) sides() (competition, competitor, competitor, bool) {
	if len(e.Competitions) == 0 {
		return competition{}, competitor{}, competitor{}, false
	}
	comp := e.Competitions[0]
	if len(comp.Competitors) != 2 {
		return competition{}, competitor{}, competitor{}, false
	}

	var home, away competitor
	var hasHome, hasAway bool
	for _, item := range comp.Competitors {
		switch item.HomeAway {
		case "home":
			home, hasHome = item, true
		case "away":
			away, hasAway = item, true
		}
	}
	return comp, home, away, hasHome && hasAway
}

func (c *Client) scoreboard(ctx context.Context, date time.Time) (scoreboardResponse, error) {
	query := url.Values{}
	query.Set("dates", date.Format(scoreboardLayout))

	var payload scoreboardResponse
	if _, err := c.http.GetJSON(ctx, c.siteBaseURL+"/scoreboard?"+query.Encode(), &payload); err != nil {
		return scoreboardResponse{}, fmt.Errorf("fetch scoreboard date=%s: %w", date.Format("2006-01-02"), err)
	}
	return payload, nil
}

// Matchups lists the date's games by full franchise name.
func (c *Client) Matchups(ctx context.Context, date time.Time) ([]schedule.Matchup, error) {
	payload, err := c.scoreboard(ctx, date)
	if err != nil {
		return nil, err
	}

	out := make([]schedule.Matchup, 0, len(payload.Events))
	for _, event := range payload.Events {
		_, home, away, ok := event.sides()
		if !ok {
			c.logger.WarnContext(ctx, "scoreboard event skipped", "event_id", event.ID, "name", event.Name)
			continue
		}
		out = append(out, schedule.Matchup{
			HomeTeam: c.catalog.NameForESPNAbbr(home.Team.Abbreviation),
			AwayTeam: c.catalog.NameForESPNAbbr(away.Team.Abbreviation),
		})
	}
	return out, nil
}

// FinalGames keeps only events that reached STATUS_FINAL.
func (c *Client) FinalGames(ctx context.Context, date time.Time) ([]schedule.FinalGame, error) {
	payload, err := c.scoreboard(ctx, date)
	if err != nil {
		return nil, err
	}

	out := make([]schedule.FinalGame, 0, len(payload.Events))
	for _, event := range payload.Events {
		if event.Status.Type.Name != statusFinal {
			c.logger.DebugContext(ctx, "skipping unfinished game", "name", event.Name, "status", event.Status.Type.Name)
			continue
		}
		comp, home, away, ok := event.sides()
		if !ok {
			continue
		}
		out = append(out, schedule.FinalGame{
			EventID:       event.ID,
			CompetitionID: comp.ID,
			GameID:        c.catalog.GameID(home.Team.DisplayName, away.Team.DisplayName),
			HomeTeam:      home.Team.DisplayName,
			AwayTeam:      away.Team.DisplayName,
			HomeScore:     home.score(),
			AwayScore:     away.score(),
		})
	}
	return out, nil
}

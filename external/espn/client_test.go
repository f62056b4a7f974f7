package espn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/nba-projection/internal/domain/injury"
	"github.com/riskibarqy/nba-projection/internal/platform/logging"
)

const scoreboardFixture = `{"events":[
  {"id":"401810001","name":"Los Angeles Lakers at Boston Celtics","status":{"type":{"name":"STATUS_FINAL"}},
   "competitions":[{"id":"401810001","competitors":[
     {"homeAway":"home","score":"118","team":{"abbreviation":"BOS","displayName":"Boston Celtics"}},
     {"homeAway":"away","score":"108","team":{"abbreviation":"LAL","displayName":"Los Angeles Lakers"}}]}]},
  {"id":"401810002","name":"Washington Wizards at Utah Jazz","status":{"type":{"name":"STATUS_SCHEDULED"}},
   "competitions":[{"id":"401810002","competitors":[
     {"homeAway":"home","score":"0","team":{"abbreviation":"UTAH","displayName":"Utah Jazz"}},
     {"homeAway":"away","score":"0","team":{"abbreviation":"WSH","displayName":"Washington Wizards"}}]}]},
  {"id":"401810003","name":"Exhibition","status":{"type":{"name":"STATUS_SCHEDULED"}},
   "competitions":[{"id":"401810003","competitors":[
     {"homeAway":"home","score":"0","team":{"abbreviation":"XYZ","displayName":"Ratiopharm Ulm"}},
     {"homeAway":"away","score":"0","team":{"abbreviation":"GS","displayName":"Golden State Warriors"}}]}]}
]}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(ClientConfig{
		SiteBaseURL: srv.URL + "/site",
		CoreBaseURL: srv.URL + "/core",
		Timeout:     time.Second,
		Logger:      logging.NewNop(),
	})
}

func scoreboardHandler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/site/scoreboard" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("dates") != "20251207" {
			t.Errorf("expected dates=20251207, got=%s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(scoreboardFixture))
	}
}

func TestClient_FetchTeamInjuries(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/site/teams/2/roster" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"athletes":[
			{"displayName":"Jayson Tatum","injuries":[{"status":"Out","date":"2025-12-06T01:16Z"},{"status":"Day-To-Day","date":"2025-11-01T00:00Z"}]},
			{"displayName":"Jaylen Brown","injuries":[]},
			{"displayName":"Derrick White"}
		]}`))
	})

	entries, err := client.FetchTeamInjuries(context.Background(), 2)
	if err != nil {
		t.Fatalf("FetchTeamInjuries error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only injured athletes, got=%d", len(entries))
	}
	want := injury.RawEntry{PlayerName: "Jayson Tatum", Status: "OUT", Date: "2025-12-06T01:16Z"}
	if entries[0] != want {
		t.Fatalf("expected %+v, got=%+v", want, entries[0])
	}
}

func TestClient_Matchups(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, scoreboardHandler(t))

	matchups, err := client.Matchups(context.Background(), time.Date(2025, time.December, 7, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Matchups error: %v", err)
	}
	if len(matchups) != 3 {
		t.Fatalf("expected 3 matchups, got=%d", len(matchups))
	}
	if matchups[0].HomeTeam != "Boston Celtics" || matchups[0].AwayTeam != "Los Angeles Lakers" {
		t.Fatalf("unexpected first matchup: %+v", matchups[0])
	}
	if matchups[1].HomeTeam != "Utah Jazz" || matchups[1].AwayTeam != "Washington Wizards" {
		t.Fatalf("expected ESPN abbreviations to be normalized, got=%+v", matchups[1])
	}
	if matchups[2].HomeTeam != "XYZ" || matchups[2].AwayTeam != "Golden State Warriors" {
		t.Fatalf("expected unknown abbreviation to pass through, got=%+v", matchups[2])
	}
}

func TestClient_FinalGames(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, scoreboardHandler(t))

	games, err := client.FinalGames(context.Background(), time.Date(2025, time.December, 7, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("FinalGames error: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("expected only final games, got=%d", len(games))
	}
	game := games[0]
	if game.GameID != "LAL@BOS" {
		t.Fatalf("expected game id LAL@BOS, got=%s", game.GameID)
	}
	if game.HomeScore != 118 || game.AwayScore != 108 || game.Margin() != 10 {
		t.Fatalf("unexpected score: %+v", game)
	}
	if game.EventID != "401810001" || game.CompetitionID != "401810001" {
		t.Fatalf("unexpected ids: %+v", game)
	}
}

func TestClient_MarketLine(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/core/events/1/competitions/1/odds":
			_, _ = w.Write([]byte(`{"items":[
				{"provider":{"name":"Live"},"overUnder":229.5},
				{"provider":{"name":"ESPN BET"},"spread":-2.5,"overUnder":228.5}
			]}`))
		case "/core/events/2/competitions/2/odds":
			_, _ = w.Write([]byte(`{"items":[{"provider":{"name":"Live"},"spread":-1.5}]}`))
		default:
			http.NotFound(w, r)
		}
	})

	line, found, err := client.MarketLine(context.Background(), "1", "1")
	if err != nil || !found {
		t.Fatalf("expected a market line, got found=%v err=%v", found, err)
	}
	if line.Spread != -2.5 || line.OverUnder != 228.5 || line.Provider != "ESPN BET" {
		t.Fatalf("expected first complete item, got=%+v", line)
	}

	_, found, err = client.MarketLine(context.Background(), "2", "2")
	if err != nil || found {
		t.Fatalf("expected found=false without a complete item, got found=%v err=%v", found, err)
	}
}

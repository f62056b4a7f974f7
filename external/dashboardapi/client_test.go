package dashboardapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/nba-projection/internal/domain/stattable"
	"github.com/riskibarqy/nba-projection/internal/platform/logging"
	"github.com/riskibarqy/nba-projection/internal/platform/resilience"
)

const celticsDashboard = `{
  "team_id": 1610612738,
  "last_n_games": 5,
  "Base": {"TEAM_NAME": "Boston Celtics", "FG3A": 42.4, "FG_PCT": 0.481},
  "Advanced": {"OFF_RATING": 118.2, "DEF_RATING": 109.8, "PACE": 99.1}
}`

func newTestClient(baseURL string, sleeps *[]time.Duration) *Client {
	policy := resilience.DefaultRetryPolicy()
	policy.Sleep = func(_ context.Context, d time.Duration) error {
		if sleeps != nil {
			*sleeps = append(*sleeps, d)
		}
		return nil
	}
	return NewClient(ClientConfig{
		BaseURL:    baseURL,
		Timeout:    time.Second,
		WarmupWait: 10 * time.Second,
		Retry:      policy,
		Logger:     logging.NewNop(),
	})
}

func TestClient_FetchTeamDashboard(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/team-dashboard/1610612738" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("last_n_games") != "5" {
			t.Errorf("expected last_n_games=5, got=%s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(celticsDashboard))
	}))
	defer srv.Close()

	table, err := newTestClient(srv.URL, nil).FetchTeamDashboard(context.Background(), 1610612738, 5)
	if err != nil {
		t.Fatalf("FetchTeamDashboard error: %v", err)
	}
	ratings, err := table.Ratings()
	if err != nil {
		t.Fatalf("Ratings error: %v", err)
	}
	if ratings.OffRating != 118.2 || ratings.DefRating != 109.8 || ratings.Pace != 99.1 {
		t.Fatalf("unexpected ratings: %+v", ratings)
	}
	if got := table.ValueOr(stattable.CategoryBase, "FG3A", 0); got != 42.4 {
		t.Fatalf("expected FG3A=42.4, got=%v", got)
	}
	if _, ok := table.Categories[stattable.CategoryBase]["TEAM_NAME"]; ok {
		t.Fatalf("expected string fields to be dropped")
	}
}

func TestClient_FetchTeamDashboard_NestedCategories(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"team_id":1,"last_n_games":0,"categories":{"Advanced":{"OFF_RATING":112,"DEF_RATING":114,"PACE":97}}}`))
	}))
	defer srv.Close()

	table, err := newTestClient(srv.URL, nil).FetchTeamDashboard(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("FetchTeamDashboard error: %v", err)
	}
	if table.LastNGames != 0 {
		t.Fatalf("expected season window, got=%d", table.LastNGames)
	}
}

func TestClient_FetchTeamDashboard_MissingAdvanced(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"team_id":1,"last_n_games":5,"Base":{"PTS":110}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, nil).FetchTeamDashboard(context.Background(), 1, 5)
	if !errors.Is(err, stattable.ErrDataShape) {
		t.Fatalf("expected ErrDataShape, got=%v", err)
	}
}

func TestClient_FetchTeamDashboard_ClientErrorNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "no such team", http.StatusNotFound)
	}))
	defer srv.Close()

	var sleeps []time.Duration
	_, err := newTestClient(srv.URL, &sleeps).FetchTeamDashboard(context.Background(), 99, 5)
	if err == nil {
		t.Fatalf("expected error for 404")
	}
	if calls.Load() != 1 || len(sleeps) != 0 {
		t.Fatalf("expected one attempt without backoff, got calls=%d sleeps=%d", calls.Load(), len(sleeps))
	}
}

func TestClient_Warmup(t *testing.T) {
	t.Parallel()

	var pinged atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			pinged.Store(true)
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	var sleeps []time.Duration
	if err := newTestClient(srv.URL, &sleeps).Warmup(context.Background()); err != nil {
		t.Fatalf("Warmup error: %v", err)
	}
	if !pinged.Load() {
		t.Fatalf("expected /health to be requested")
	}
	if len(sleeps) != 1 || sleeps[0] != 10*time.Second {
		t.Fatalf("expected a single 10s warm-up wait, got=%v", sleeps)
	}
}

func TestClient_WarmupWaitsEvenWhenPingFails(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "waking up", http.StatusBadGateway)
	}))
	defer srv.Close()

	var sleeps []time.Duration
	err := newTestClient(srv.URL, &sleeps).Warmup(context.Background())
	if err == nil {
		t.Fatalf("expected warm-up error")
	}
	if len(sleeps) != 1 {
		t.Fatalf("expected warm-up wait despite failure, got=%v", sleeps)
	}
}

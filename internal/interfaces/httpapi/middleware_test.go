package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/nba-projection/internal/platform/logging"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	t.Parallel()

	handler := CORS([]string{"https://projections.example.com"})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/v1/performance/summary", nil)
	req.Header.Set("Origin", "https://projections.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://projections.example.com" {
		t.Fatalf("unexpected Access-Control-Allow-Origin: %q", got)
	}
	if got := rec.Header().Get("Vary"); got != "Origin" {
		t.Fatalf("expected Vary=Origin, got=%q", got)
	}
}

func TestCORS_OptionsPreflight(t *testing.T) {
	t.Parallel()

	handler := CORS([]string{"*"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/v1/projections/matchup", nil)
	req.Header.Set("Origin", "https://projections.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got=%d", http.StatusNoContent, rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("unexpected Access-Control-Allow-Origin: %q", got)
	}
}

func TestCORS_DisallowsUnconfiguredOrigin(t *testing.T) {
	t.Parallel()

	handler := CORS([]string{"https://allowed.example.com", " "})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/v1/performance/summary", nil)
	req.Header.Set("Origin", "https://not-allowed.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected empty Access-Control-Allow-Origin, got=%q", got)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected request to pass through, got=%d", rec.Code)
	}
}

func TestIsProbePath(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/healthz", "/health", "/livez", "/readyz", " /HEALTHZ "} {
		if !isProbePath(path) {
			t.Fatalf("expected %q to be a probe", path)
		}
	}
	for _, path := range []string{"/v1/performance/summary", "/team-dashboard/1610612738", "/", "/docs"} {
		if isProbePath(path) {
			t.Fatalf("expected %q to be traced", path)
		}
	}
}

func TestChain_Order(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	chain(okHandler(), mark("outer"), mark("inner")).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Fatalf("expected [outer inner], got=%v", order)
	}
}

func TestRecoverPanic_WritesInternalError(t *testing.T) {
	t.Parallel()

	boom := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("nil table") })
	rec := httptest.NewRecorder()
	recoverPanic(logging.NewNop())(boom).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/performance/summary", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got=%d", rec.Code)
	}
}

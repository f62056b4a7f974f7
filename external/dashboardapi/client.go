package dashboardapi

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/nba-projection/internal/domain/stattable"
	"github.com/riskibarqy/nba-projection/internal/platform/logging"
	"github.com/riskibarqy/nba-projection/internal/platform/resilience"
	"github.com/riskibarqy/nba-projection/internal/usecase"
	"github.com/valyala/fasthttp"
)

const maxBodyBytes = 6 << 20

var errDashboardTransient = crerr.New("dashboard api transient failure")

type ClientConfig struct {
	HTTPClient     *fasthttp.Client
	BaseURL        string
	Timeout        time.Duration
	WarmupWait     time.Duration
	Retry          resilience.RetryPolicy
	CircuitBreaker resilience.CircuitBreakerConfig
	Logger         *logging.Logger
}

// Client reads team dashboards from the hosted wrapper service. The host sleeps
// when idle, so Warmup should run once before a slate.
type Client struct {
	httpClient *fasthttp.Client
	baseURL    string
	timeout    time.Duration
	warmupWait time.Duration
	retry      resilience.RetryPolicy
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	flight     resilience.Flight[[]byte]
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:                "nba-projection",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxBodyBytes,
		}
	}
	retry := cfg.Retry
	if retry.Retryable == nil {
		retry.Retryable = isTimeout
	}

	c := &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		timeout:    timeout,
		warmupWait: cfg.WarmupWait,
		retry:      retry,
		logger:     logger.With("provider", "dashboard_api"),
		breaker:    resilience.NewCircuitBreaker("dashboard_api", cfg.CircuitBreaker),
	}
	c.breaker.OnStateChange(func(from, to resilience.CircuitState) {
		c.logger.Warn("circuit breaker state changed", "from", from, "to", to)
	})
	return c
}

// Warmup pings /health and then gives the host time to load its upstream client.
// The wait happens even when the ping fails.
func (c *Client) Warmup(ctx context.Context) error {
	_, pingErr := c.get(ctx, c.baseURL+"/health")
	if pingErr != nil {
		c.logger.WarnContext(ctx, "dashboard api warm-up ping failed", "error", pingErr)
	}

	sleep := c.retry.Sleep
	if sleep == nil {
		sleep = resilience.SleepContext
	}
	if err := sleep(ctx, c.warmupWait); err != nil {
		return err
	}
	if pingErr != nil {
		return fmt.Errorf("warm up dashboard api: %w", pingErr)
	}
	return nil
}

func (c *Client) FetchTeamDashboard(ctx context.Context, teamID int64, lastNGames int) (stattable.Table, error) {
	query := url.Values{}
	query.Set("last_n_games", strconv.Itoa(lastNGames))
	fullURL := fmt.Sprintf("%s/team-dashboard/%d?%s", c.baseURL, teamID, query.Encode())

	raw, _, err := c.flight.Do(ctx, fullURL, func() ([]byte, error) {
		settle, err := c.breaker.Allow(isTransient)
		if err != nil {
			c.logger.WarnContext(ctx, "circuit breaker rejected dashboard request", "team_id", teamID, "state", c.breaker.State())
			return nil, fmt.Errorf("%w: dashboard api is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}

		var raw []byte
		reqErr := c.retry.Do(ctx, func(ctx context.Context) error {
			body, err := c.get(ctx, fullURL)
			if err != nil {
				return err
			}
			raw = body
			return nil
		})
		settle(reqErr)
		return raw, reqErr
	})
	if err != nil {
		return stattable.Table{}, fmt.Errorf("fetch team dashboard team_id=%d last_n=%d: %w", teamID, lastNGames, err)
	}
	return decodeTable(raw, teamID, lastNGames)
}

func (c *Client) get(ctx context.Context, fullURL string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if err := c.httpClient.DoTimeout(req, resp, timeout); err != nil {
		return nil, crerr.Wrapf(transientError{err}, "send request")
	}

	body := append([]byte(nil), resp.Body()...)
	status := resp.StatusCode()
	if status >= 200 && status < 300 {
		return body, nil
	}
	if status == fasthttp.StatusTooManyRequests || status >= fasthttp.StatusInternalServerError {
		return nil, fmt.Errorf("%w: dashboard api status=%d body=%s", errDashboardTransient, status, abbreviateBody(body))
	}
	return nil, fmt.Errorf("dashboard api status=%d body=%s", status, abbreviateBody(body))
}

// decodeTable accepts the categories either nested under "categories" or as
// top-level keys next to team_id and last_n_games.
func decodeTable(raw []byte, teamID int64, lastNGames int) (stattable.Table, error) {
	var payload map[string]any
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		return stattable.Table{}, fmt.Errorf("decode dashboard payload: %w", err)
	}

	source := payload
	if nested, ok := payload["categories"].(map[string]any); ok {
		source = nested
	}

	table := stattable.Table{
		TeamID:     teamID,
		LastNGames: lastNGames,
		Categories: make(map[stattable.Category]stattable.Record, len(stattable.Categories)),
	}
	for _, category := range stattable.Categories {
		values, ok := source[string(category)].(map[string]any)
		if !ok {
			continue
		}
		table.Categories[category] = stattable.RecordFromValues(values)
	}

	if _, err := table.Ratings(); err != nil {
		return stattable.Table{}, err
	}
	return table, nil
}

type transientError struct{ err error }

func (e transientError) Error() string { return e.err.Error() }

func (e transientError) Unwrap() error { return e.err }

func (e transientError) Is(target error) bool { return target == errDashboardTransient }

func isTransient(err error) bool {
	return stderrors.Is(err, errDashboardTransient)
}

func isTimeout(err error) bool {
	return resilience.IsTimeout(err) || stderrors.Is(err, fasthttp.ErrTimeout)
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

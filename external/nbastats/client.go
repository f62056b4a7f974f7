package nbastats

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/riskibarqy/nba-projection/external/httpjson"
	"github.com/riskibarqy/nba-projection/internal/platform/logging"
	"github.com/riskibarqy/nba-projection/internal/platform/resilience"
)

const (
	defaultBaseURL    = "https://stats.nba.com/stats"
	defaultSeasonType = "Regular Season"
	leagueID          = "00"
)

// stats.nba.com drops requests that do not look like they came from the site.
var browserHeaders = map[string]string{
	"Referer":            "https://www.nba.com/",
	"Origin":             "https://www.nba.com",
	"User-Agent":         "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36",
	"x-nba-stats-origin": "stats",
	"x-nba-stats-token":  "true",
}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	Retry          resilience.RetryPolicy
	CircuitBreaker resilience.CircuitBreakerConfig
	Logger         *logging.Logger
}

// Client talks to the public stats.nba.com endpoints. It serves team dashboards,
// rosters, per-player season lines and team game logs.
type Client struct {
	http    *httpjson.Client
	baseURL string
	logger  *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	retry := cfg.Retry
	if retry.Retryable == nil {
		retry.Retryable = resilience.IsTimeout
	}

	return &Client{
		http: httpjson.New(httpjson.Config{
			Name:           "nba_stats",
			HTTPClient:     cfg.HTTPClient,
			Timeout:        cfg.Timeout,
			Headers:        browserHeaders,
			Retry:          retry,
			CircuitBreaker: cfg.CircuitBreaker,
			Logger:         logger,
		}),
		baseURL: baseURL,
		logger:  logger.With("provider", "nba_stats"),
	}
}

func (c *Client) endpoint(name string, query url.Values) string {
	return c.baseURL + "/" + name + "?" + query.Encode()
}

package espn

import (
	"net/http"
	"strings"
	"time"

	"github.com/riskibarqy/nba-projection/external/httpjson"
	"github.com/riskibarqy/nba-projection/internal/domain/team"
	"github.com/riskibarqy/nba-projection/internal/platform/logging"
	"github.com/riskibarqy/nba-projection/internal/platform/resilience"
)

const (
	defaultSiteBaseURL = "https://site.api.espn.com/apis/site/v2/sports/basketball/nba"
	defaultCoreBaseURL = "https://sports.core.api.espn.com/v2/sports/basketball/leagues/nba"
	scoreboardLayout   = "20060102"
)

type ClientConfig struct {
	HTTPClient     *http.Client
	SiteBaseURL    string
	CoreBaseURL    string
	Timeout        time.Duration
	Retry          resilience.RetryPolicy
	CircuitBreaker resilience.CircuitBreakerConfig
	Catalog        *team.Catalog
	Logger         *logging.Logger
}

// Client reads rosters with injury notes, the daily scoreboard and closing odds
// from ESPN's public JSON API.
type Client struct {
	http        *httpjson.Client
	siteBaseURL string
	coreBaseURL string
	catalog     *team.Catalog
	logger      *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	catalog := cfg.Catalog
	if catalog == nil {
		catalog = team.NewCatalog()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	retry := cfg.Retry
	if retry.Retryable == nil {
		retry.Retryable = resilience.IsTimeout
	}

	return &Client{
		http: httpjson.New(httpjson.Config{
			Name:           "espn",
			HTTPClient:     cfg.HTTPClient,
			Timeout:        timeout,
			Retry:          retry,
			CircuitBreaker: cfg.CircuitBreaker,
			Logger:         logger,
		}),
		siteBaseURL: baseURLOr(cfg.SiteBaseURL, defaultSiteBaseURL),
		coreBaseURL: baseURLOr(cfg.CoreBaseURL, defaultCoreBaseURL),
		catalog:     catalog,
		logger:      logger.With("provider", "espn"),
	}
}

func baseURLOr(value, fallback string) string {
	value = strings.TrimRight(strings.TrimSpace(value), "/")
	if value == "" {
		return fallback
	}
	return value
}

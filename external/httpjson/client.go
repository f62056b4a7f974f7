package httpjson

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/nba-projection/internal/platform/logging"
	"github.com/riskibarqy/nba-projection/internal/platform/resilience"
	"github.com/riskibarqy/nba-projection/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxBodyBytes = 6 << 20

// ErrTransient marks failures that count against the circuit breaker.
var ErrTransient = crerr.New("provider transient failure")

type Config struct {
	Name           string
	HTTPClient     *http.Client
	Timeout        time.Duration
	Headers        map[string]string
	Retry          resilience.RetryPolicy
	CircuitBreaker resilience.CircuitBreakerConfig
	Logger         *logging.Logger
}

// Client performs GET requests that decode JSON, shared by the net/http providers.
// Identical in-flight URLs are collapsed into one request.
type Client struct {
	name       string
	httpClient *http.Client
	headers    map[string]string
	retry      resilience.RetryPolicy
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	flight     resilience.Flight[[]byte]
}

func New(cfg Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 30 * time.Second
	}

	c := &Client{
		name:       cfg.Name,
		httpClient: httpClient,
		headers:    cfg.Headers,
		retry:      cfg.Retry,
		logger:     logger.With("provider", cfg.Name),
		breaker:    resilience.NewCircuitBreaker(cfg.Name, cfg.CircuitBreaker),
	}
	c.breaker.OnStateChange(func(from, to resilience.CircuitState) {
		c.logger.Warn("circuit breaker state changed", "from", from, "to", to)
	})
	return c
}

// GetJSON fetches fullURL and decodes the body into target. The raw body is returned.
func (c *Client) GetJSON(ctx context.Context, fullURL string, target any) ([]byte, error) {
	raw, _, err := c.flight.Do(ctx, fullURL, func() ([]byte, error) {
		settle, err := c.breaker.Allow(IsTransient)
		if err != nil {
			c.logger.WarnContext(ctx, "circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: %s is temporarily unavailable", usecase.ErrDependencyUnavailable, c.name)
		}

		var raw []byte
		reqErr := c.retry.Do(ctx, func(ctx context.Context) error {
			body, err := c.execute(ctx, fullURL)
			if err != nil {
				return err
			}
			raw = body
			return nil
		})
		settle(reqErr)
		if reqErr != nil {
			c.logger.WarnContext(ctx, "provider request failed", "url", fullURL, "error", reqErr)
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}
	if target != nil {
		if err := sonic.Unmarshal(raw, target); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", c.name, err)
		}
	}
	return raw, nil
}

func (c *Client) execute(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Keep the timeout visible to the retry predicate.
		return nil, crerr.Wrapf(transientError{err}, "send request")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, crerr.Wrapf(transientError{err}, "read response body")
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, nil
	}
	if IsRetryableStatus(resp.StatusCode) {
		return nil, fmt.Errorf("%w: %s status=%d body=%s", ErrTransient, c.name, resp.StatusCode, AbbreviateBody(raw))
	}
	return nil, fmt.Errorf("%s status=%d body=%s", c.name, resp.StatusCode, AbbreviateBody(raw))
}

// transientError wraps a transport error so it matches ErrTransient while
// keeping its Timeout method reachable through errors.As.
type transientError struct{ err error }

func (e transientError) Error() string { return e.err.Error() }

func (e transientError) Unwrap() error { return e.err }

func (e transientError) Is(target error) bool { return target == ErrTransient }

func IsTransient(err error) bool {
	return err != nil && stderrors.Is(err, ErrTransient)
}

func IsRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func AbbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

package resilience

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sony/gobreaker"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

// CircuitBreakerConfig is shared by every upstream client. A disabled breaker
// admits every call and records nothing.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      30 * time.Second,
		HalfOpenMaxReq:   2,
	}
}

func (c CircuitBreakerConfig) normalized() CircuitBreakerConfig {
	defaults := DefaultCircuitBreakerConfig()
	if c.FailureThreshold < 1 {
		c.FailureThreshold = defaults.FailureThreshold
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = defaults.OpenTimeout
	}
	if c.HalfOpenMaxReq < 1 {
		c.HalfOpenMaxReq = defaults.HalfOpenMaxReq
	}
	return c
}

// CircuitBreaker stops calling a provider after FailureThreshold consecutive
// failures. After OpenTimeout it lets HalfOpenMaxReq probes through and closes
// once that many succeed in a row.
type CircuitBreaker struct {
	enabled bool
	breaker *gobreaker.TwoStepCircuitBreaker

	mu       sync.RWMutex
	onChange func(from, to CircuitState)
}

func NewCircuitBreaker(name string, cfg CircuitBreakerConfig) *CircuitBreaker {
	cfg = cfg.normalized()
	b := &CircuitBreaker{enabled: cfg.Enabled}
	threshold := uint32(cfg.FailureThreshold)
	b.breaker = gobreaker.NewTwoStepCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: uint32(cfg.HalfOpenMaxReq),
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(_ string, from, to gobreaker.State) {
			b.mu.RLock()
			fn := b.onChange
			b.mu.RUnlock()
			if fn != nil {
				fn(circuitState(from), circuitState(to))
			}
		},
	})
	return b
}

// OnStateChange registers fn to run on every transition. fn must not call back
// into the breaker.
func (b *CircuitBreaker) OnStateChange(fn func(from, to CircuitState)) {
	b.mu.Lock()
	b.onChange = fn
	b.mu.Unlock()
}

func (b *CircuitBreaker) Enabled() bool {
	return b != nil && b.enabled
}

// Allow admits a call or fails with ErrCircuitOpen. The returned settle func
// must run exactly once with the call's outcome. Only errors matched by trips
// count as failures; a permanent error such as a 404 settles as a success.
func (b *CircuitBreaker) Allow(trips func(error) bool) (settle func(error), err error) {
	if !b.Enabled() {
		return func(error) {}, nil
	}

	done, err := b.breaker.Allow()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCircuitOpen, err)
	}
	return func(callErr error) {
		failed := callErr != nil && (trips == nil || trips(callErr))
		done(!failed)
	}, nil
}

// State moves an expired open breaker to half_open before reporting.
func (b *CircuitBreaker) State() CircuitState {
	if !b.Enabled() {
		return CircuitStateClosed
	}
	return circuitState(b.breaker.State())
}

func circuitState(state gobreaker.State) CircuitState {
	switch state {
	case gobreaker.StateOpen:
		return CircuitStateOpen
	case gobreaker.StateHalfOpen:
		return CircuitStateHalfOpen
	default:
		return CircuitStateClosed
	}
}

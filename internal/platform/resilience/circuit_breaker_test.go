package resilience

import (
	"errors"
	"sync"
	"testing"
	"time"
)

var errUpstream = errors.New("status 503")

func failOnce(t *testing.T, b *CircuitBreaker, err error, trips func(error) bool) {
	t.Helper()
	settle, allowErr := b.Allow(trips)
	if allowErr != nil {
		t.Fatalf("expected call to be admitted, got=%v", allowErr)
	}
	settle(err)
}

func TestCircuitBreaker_OpensAndRecovers(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreaker("test", CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: 30 * time.Millisecond, HalfOpenMaxReq: 1})

	var (
		mu          sync.Mutex
		transitions []CircuitState
	)
	b.OnStateChange(func(_, to CircuitState) {
		mu.Lock()
		transitions = append(transitions, to)
		mu.Unlock()
	})

	failOnce(t, b, errUpstream, nil)
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got=%s", state)
	}
	failOnce(t, b, errUpstream, nil)
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold, got=%s", state)
	}
	if _, err := b.Allow(nil); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got=%v", err)
	}

	time.Sleep(50 * time.Millisecond)
	settle, err := b.Allow(nil)
	if err != nil {
		t.Fatalf("expected half-open probe to pass, got=%v", err)
	}
	if _, err := b.Allow(nil); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected second probe to be rejected, got=%v", err)
	}
	settle(nil)
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after probe success, got=%s", state)
	}

	mu.Lock()
	defer mu.Unlock()
	want := []CircuitState{CircuitStateOpen, CircuitStateHalfOpen, CircuitStateClosed}
	if len(transitions) != len(want) {
		t.Fatalf("expected transitions %v, got=%v", want, transitions)
	}
	for i := range want {
		if transitions[i] != want[i] {
			t.Fatalf("expected transitions %v, got=%v", want, transitions)
		}
	}
}

func TestCircuitBreaker_ProbeFailureReopens(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreaker("test", CircuitBreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: 20 * time.Millisecond, HalfOpenMaxReq: 2})
	failOnce(t, b, errUpstream, nil)

	time.Sleep(40 * time.Millisecond)
	failOnce(t, b, errUpstream, nil)
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected reopen after failed probe, got=%s", state)
	}
}

func TestCircuitBreaker_OnlyTripsOnMatchingErrors(t *testing.T) {
	t.Parallel()

	trips := func(err error) bool { return errors.Is(err, errUpstream) }
	b := NewCircuitBreaker("test", CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: time.Minute, HalfOpenMaxReq: 1})

	failOnce(t, b, errors.New("status 404"), trips)
	failOnce(t, b, errors.New("status 400"), trips)
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected permanent errors to leave breaker closed, got=%s", state)
	}

	failOnce(t, b, errUpstream, trips)
	failOnce(t, b, errUpstream, trips)
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected transient errors to open breaker, got=%s", state)
	}
}

func TestCircuitBreaker_DisabledAlwaysAllows(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreaker("test", CircuitBreakerConfig{Enabled: false, FailureThreshold: 1})
	for i := 0; i < 3; i++ {
		failOnce(t, b, errUpstream, nil)
	}
	if _, err := b.Allow(nil); err != nil {
		t.Fatalf("expected disabled breaker to allow, got=%v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected disabled breaker to report closed, got=%s", state)
	}
}

func TestCircuitBreakerConfig_NormalizedFillsDefaults(t *testing.T) {
	t.Parallel()

	got := CircuitBreakerConfig{Enabled: true}.normalized()
	want := DefaultCircuitBreakerConfig()
	if got != want {
		t.Fatalf("expected %+v, got=%+v", want, got)
	}
}

package resilience

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestFlight_CollapsesConcurrentLoads(t *testing.T) {
	t.Parallel()

	var f Flight[string]
	var calls atomic.Int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			got, _, err := f.Do(context.Background(), "team-dashboard:1610612738:5", func() (string, error) {
				calls.Add(1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil || got != "ok" {
				t.Errorf("expected ok, got=%q err=%v", got, err)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected one load, got=%d", got)
	}
}

func TestFlight_CallerCancellation(t *testing.T) {
	t.Parallel()

	var f Flight[int]
	release := make(chan struct{})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := f.Do(ctx, "slow", func() (int, error) {
		<-release
		return 1, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got=%v", err)
	}
}

func TestFlight_PropagatesError(t *testing.T) {
	t.Parallel()

	var f Flight[int]
	boom := errors.New("boom")
	_, _, err := f.Do(context.Background(), "k", func() (int, error) { return 0, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got=%v", err)
	}
}

package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/nba-projection/internal/domain/stattable"
	basecache "github.com/riskibarqy/nba-projection/internal/platform/cache"
	"github.com/riskibarqy/nba-projection/internal/platform/logging"
)

type countingProvider struct {
	mu    sync.Mutex
	calls int
}

func (p *countingProvider) FetchTeamDashboard(_ context.Context, teamID int64, lastN int) (stattable.Table, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	return stattable.Table{
		TeamID:     teamID,
		LastNGames: lastN,
		Categories: map[stattable.Category]stattable.Record{
			stattable.CategoryAdvanced: {"OFF_RATING": 118.2, "DEF_RATING": 110.4, "PACE": 99.1},
		},
	}, nil
}

func TestDashboardProvider_MemoryBackendCachesPerWindow(t *testing.T) {
	t.Parallel()

	next := &countingProvider{}
	provider := NewDashboardProvider(next, basecache.NewStore[stattable.Table](time.Hour))

	for i := 0; i < 3; i++ {
		if _, err := provider.FetchTeamDashboard(context.Background(), 1610612738, 5); err != nil {
			t.Fatalf("FetchTeamDashboard error: %v", err)
		}
	}
	if _, err := provider.FetchTeamDashboard(context.Background(), 1610612738, 0); err != nil {
		t.Fatalf("FetchTeamDashboard error: %v", err)
	}

	if next.calls != 2 {
		t.Fatalf("expected one upstream call per window, got=%d", next.calls)
	}
	if err := provider.Warmup(context.Background()); err != nil {
		t.Fatalf("expected warmup without warmer to be a no-op, got=%v", err)
	}
}

type fakeRedis struct {
	mu     sync.Mutex
	values map[string]string
	getErr error
	sets   int
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	f.values[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func TestRedisBackend_LoadsOnceThenServesFromRedis(t *testing.T) {
	t.Parallel()

	client := &fakeRedis{values: map[string]string{}}
	next := &countingProvider{}
	provider := NewDashboardProvider(next, NewRedisBackend(client, time.Hour, logging.NewNop()))

	first, err := provider.FetchTeamDashboard(context.Background(), 1610612747, 5)
	if err != nil {
		t.Fatalf("FetchTeamDashboard error: %v", err)
	}
	second, err := provider.FetchTeamDashboard(context.Background(), 1610612747, 5)
	if err != nil {
		t.Fatalf("FetchTeamDashboard error: %v", err)
	}

	if next.calls != 1 || client.sets != 1 {
		t.Fatalf("expected single load and write, calls=%d sets=%d", next.calls, client.sets)
	}
	if second.ValueOr(stattable.CategoryAdvanced, "PACE", 0) != first.ValueOr(stattable.CategoryAdvanced, "PACE", 0) {
		t.Fatalf("expected cached table to round trip, got=%+v", second)
	}
	if _, ok := client.values[redisKeyPrefix+DashboardKey(1610612747, 5)]; !ok {
		t.Fatalf("expected prefixed key in redis, got=%v", client.values)
	}
}

func TestRedisBackend_RedisDownFallsThrough(t *testing.T) {
	t.Parallel()

	client := &fakeRedis{values: map[string]string{}, getErr: errors.New("connection refused")}
	next := &countingProvider{}
	provider := NewDashboardProvider(next, NewRedisBackend(client, time.Hour, logging.NewNop()))

	if _, err := provider.FetchTeamDashboard(context.Background(), 1610612747, 5); err != nil {
		t.Fatalf("expected redis failure to degrade, got=%v", err)
	}
	if next.calls != 1 {
		t.Fatalf("expected upstream load, got=%d", next.calls)
	}
}

func TestRedisBackend_DiscardsCorruptEntry(t *testing.T) {
	t.Parallel()

	key := redisKeyPrefix + DashboardKey(1, 0)
	client := &fakeRedis{values: map[string]string{key: "{not json"}}
	next := &countingProvider{}
	backend := NewRedisBackend(client, time.Hour, logging.NewNop())

	table, err := backend.GetOrLoad(context.Background(), DashboardKey(1, 0), func(ctx context.Context) (stattable.Table, error) {
		return next.FetchTeamDashboard(ctx, 1, 0)
	})
	if err != nil || table.TeamID != 1 {
		t.Fatalf("expected reload after corrupt entry, table=%+v err=%v", table, err)
	}

	var stored stattable.Table
	if err := sonic.UnmarshalString(client.values[key], &stored); err != nil {
		t.Fatalf("expected corrupt entry to be replaced: %v", err)
	}
}

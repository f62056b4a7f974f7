package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/nba-projection/internal/domain/stattable"
	"github.com/riskibarqy/nba-projection/internal/platform/logging"
	"github.com/riskibarqy/nba-projection/internal/platform/resilience"
)

const redisKeyPrefix = "nba-projection:"

type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// RedisBackend shares dashboards between processes. Redis failures degrade to
// loading from the provider; they never fail the request.
type RedisBackend struct {
	client redisClient
	ttl    time.Duration
	logger *logging.Logger
	flight resilience.Flight[stattable.Table]
}

func NewRedisBackend(client redisClient, ttl time.Duration, logger *logging.Logger) *RedisBackend {
	if logger == nil {
		logger = logging.Default()
	}
	return &RedisBackend{client: client, ttl: ttl, logger: logger}
}

// NewRedisClient parses REDIS_URL and pings the server.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (b *RedisBackend) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (stattable.Table, error)) (stattable.Table, error) {
	fullKey := redisKeyPrefix + key
	if table, ok := b.get(ctx, fullKey); ok {
		return table, nil
	}

	table, _, err := b.flight.Do(ctx, fullKey, func() (stattable.Table, error) {
		loaded, err := loader(ctx)
		if err != nil {
			return stattable.Table{}, err
		}
		b.set(ctx, fullKey, loaded)
		return loaded, nil
	})
	return table, err
}

func (b *RedisBackend) get(ctx context.Context, key string) (stattable.Table, bool) {
	raw, err := b.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			b.logger.WarnContext(ctx, "redis get failed", "key", key, "error", err)
		}
		return stattable.Table{}, false
	}

	var table stattable.Table
	if err := sonic.Unmarshal(raw, &table); err != nil {
		b.logger.WarnContext(ctx, "discarding undecodable cached dashboard", "key", key, "error", err)
		return stattable.Table{}, false
	}
	return table, true
}

func (b *RedisBackend) set(ctx context.Context, key string, table stattable.Table) {
	raw, err := sonic.Marshal(table)
	if err != nil {
		b.logger.WarnContext(ctx, "encode dashboard for redis failed", "key", key, "error", err)
		return
	}
	if err := b.client.Set(ctx, key, raw, b.ttl).Err(); err != nil {
		b.logger.WarnContext(ctx, "redis set failed", "key", key, "error", err)
	}
}

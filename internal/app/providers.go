package app

import (
	"context"

	"github.com/riskibarqy/nba-projection/external/dashboardapi"
	"github.com/riskibarqy/nba-projection/external/espn"
	"github.com/riskibarqy/nba-projection/external/nbastats"
	"github.com/riskibarqy/nba-projection/internal/config"
	"github.com/riskibarqy/nba-projection/internal/domain/stattable"
	"github.com/riskibarqy/nba-projection/internal/domain/team"
	"github.com/riskibarqy/nba-projection/internal/infrastructure/repository/cache"
	platformcache "github.com/riskibarqy/nba-projection/internal/platform/cache"
	"github.com/riskibarqy/nba-projection/internal/platform/logging"
	"github.com/riskibarqy/nba-projection/internal/platform/resilience"
)

type providerSet struct {
	nbaStats     *nbastats.Client
	dashboardAPI *dashboardapi.Client
	espn         *espn.Client
	playerPacer  *resilience.Pacer
}

func newProviders(cfg config.Config, catalog *team.Catalog, logger *logging.Logger) providerSet {
	retry := resilience.RetryPolicy{
		MaxAttempts: cfg.RetryMaxAttempts,
		Backoff:     resilience.Fixed(cfg.RetryBackoff),
		OnRetry: func(attempt int, err error) {
			logger.Warn("retrying provider request", "attempt", attempt, "error", err)
		},
	}
	breaker := resilience.CircuitBreakerConfig{
		Enabled:          cfg.ProviderCircuitEnabled,
		FailureThreshold: cfg.ProviderCircuitFailures,
		OpenTimeout:      cfg.ProviderCircuitOpenTimeout,
		HalfOpenMaxReq:   cfg.ProviderCircuitHalfOpenMax,
	}

	return providerSet{
		nbaStats: nbastats.NewClient(nbastats.ClientConfig{
			BaseURL:        cfg.NBAStatsBaseURL,
			Timeout:        cfg.NBAStatsTimeout,
			Retry:          retry,
			CircuitBreaker: breaker,
			Logger:         logger,
		}),
		dashboardAPI: dashboardapi.NewClient(dashboardapi.ClientConfig{
			BaseURL:        cfg.DashboardAPIBaseURL,
			Timeout:        cfg.DashboardAPITimeout,
			WarmupWait:     cfg.DashboardAPIWarmupWait,
			Retry:          retry,
			CircuitBreaker: breaker,
			Logger:         logger,
		}),
		espn: espn.NewClient(espn.ClientConfig{
			SiteBaseURL:    cfg.ESPNSiteBaseURL,
			CoreBaseURL:    cfg.ESPNCoreBaseURL,
			Timeout:        cfg.ESPNTimeout,
			Retry:          retry,
			CircuitBreaker: breaker,
			Catalog:        catalog,
			Logger:         logger,
		}),
		playerPacer: resilience.NewPacer(cfg.PlayerRequestDelay),
	}
}

func (p providerSet) statSource(source string) stattable.Provider {
	if source == config.StatSourceNBAStats {
		return p.nbaStats
	}
	return p.dashboardAPI
}

func cachedStatProvider(next stattable.Provider, backend cache.DashboardBackend) *cache.DashboardProvider {
	return cache.NewDashboardProvider(next, backend)
}

func newDashboardBackend(ctx context.Context, cfg config.Config, logger *logging.Logger, c *Container) (cache.DashboardBackend, error) {
	if cfg.CacheBackend != config.CacheBackendRedis {
		return platformcache.NewStore[stattable.Table](cfg.CacheTTL), nil
	}

	client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, client.Close)
	logger.Info("redis dashboard cache selected", "ttl", cfg.CacheTTL.String())

	return cache.NewRedisBackend(client, cfg.CacheTTL, logger), nil
}

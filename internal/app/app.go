package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/nba-projection/internal/config"
	"github.com/riskibarqy/nba-projection/internal/domain/performance"
	"github.com/riskibarqy/nba-projection/internal/domain/prediction"
	"github.com/riskibarqy/nba-projection/internal/domain/team"
	"github.com/riskibarqy/nba-projection/internal/infrastructure/repository/csvstore"
	"github.com/riskibarqy/nba-projection/internal/infrastructure/repository/filestore"
	"github.com/riskibarqy/nba-projection/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/nba-projection/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/nba-projection/internal/platform/id"
	"github.com/riskibarqy/nba-projection/internal/platform/logging"
	"github.com/riskibarqy/nba-projection/internal/usecase"
)

// Container holds every wired service. Close releases the database and cache
// connections it opened.
type Container struct {
	Dashboard       *usecase.DashboardService
	Projection      *usecase.ProjectionService
	Predictions     *usecase.PredictionService
	Recommendations *usecase.RecommendationService
	Evaluation      *usecase.EvaluationService
	Slate           *usecase.SlateService

	closers []func() error
}

func (c *Container) Close() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	return firstErr
}

func Build(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Container, error) {
	if logger == nil {
		logger = logging.Default()
	}

	c := &Container{}
	catalog := team.NewCatalog()
	providers := newProviders(cfg, catalog, logger)

	dashboardBackend, err := newDashboardBackend(ctx, cfg, logger, c)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	perfRepo, archiveRepo, err := newStores(ctx, cfg, logger, c)
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	stats := cachedStatProvider(providers.statSource(cfg.StatSource), dashboardBackend)

	injuries := usecase.NewInjuryService(providers.espn, catalog, logger)
	rest := usecase.NewRestAdjuster(providers.nbaStats, cfg.Season, logger)
	c.Projection = usecase.NewProjectionService(usecase.ProjectionServiceConfig{
		Stats:    stats,
		Players:  providers.nbaStats,
		Injuries: injuries,
		Rest:     rest,
		Catalog:  catalog,
		Pacer:    providers.playerPacer,
		Season:   cfg.Season,
		Logger:   logger,
	})

	c.Evaluation = usecase.NewEvaluationService(usecase.EvaluationServiceConfig{
		Results:     providers.espn,
		Odds:        providers.espn,
		Archives:    archiveRepo,
		Performance: usecase.NewPerformanceLogger(perfRepo, logger),
		Catalog:     catalog,
		Workers:     cfg.EvaluatorWorkers,
		Logger:      logger,
	})
	c.Slate = usecase.NewSlateService(usecase.SlateServiceConfig{
		Schedule:  providers.espn,
		Projector: c.Projection,
		Archives:  archiveRepo,
		Evaluator: c.Evaluation,
		Warmer:    stats,
		IDs:       idgen.NewUUIDGenerator(),
		Workers:   cfg.SlateWorkers,
		Logger:    logger,
	})

	// The API is itself the team-dashboard wrapper, so it always reads
	// stats.nba.com no matter which source feeds projections.
	c.Dashboard = usecase.NewDashboardService(cachedStatProvider(providers.nbaStats, dashboardBackend))
	c.Predictions = usecase.NewPredictionService(archiveRepo)
	c.Recommendations = usecase.NewRecommendationService(perfRepo, logger)

	logger.Info("container built",
		"stat_source", cfg.StatSource,
		"cache_backend", cfg.CacheBackend,
		"store_backend", cfg.StoreBackend,
		"season", cfg.Season,
	)
	return c, nil
}

func newStores(ctx context.Context, cfg config.Config, logger *logging.Logger, c *Container) (performance.Repository, prediction.Repository, error) {
	if cfg.StoreBackend != config.StoreBackendPostgres {
		logger.Info("file stores selected", "output_dir", cfg.OutputDir, "performance_log", cfg.PerformanceLogPath)
		return csvstore.NewPerformanceLog(cfg.PerformanceLogPath), filestore.NewPredictionArchive(cfg.OutputDir), nil
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	c.closers = append(c.closers, db.Close)
	logger.Info("postgres stores selected", "db_name", dbNameFromURL(cfg.DBURL))

	return postgres.NewPerformanceLogRepository(db), postgres.NewPredictionArchiveRepository(db), nil
}

func NewHTTPServer(cfg config.Config, c *Container, logger *logging.Logger) (*http.Server, error) {
	if c == nil {
		return nil, fmt.Errorf("container is required")
	}

	handler := httpapi.NewHandler(
		c.Dashboard,
		c.Projection,
		c.Predictions,
		c.Recommendations,
		cfg.SlateTimezone,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

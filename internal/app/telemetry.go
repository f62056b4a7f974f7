package app

import (
	"context"
	"fmt"

	"github.com/riskibarqy/nba-projection/internal/config"
	"github.com/riskibarqy/nba-projection/internal/observability"
	"github.com/riskibarqy/nba-projection/internal/platform/logging"
)

// StartTelemetry brings up tracing, profiling and the pprof listener for one
// binary. The returned stop tears them down in reverse order.
func StartTelemetry(cfg config.Config, binary string, logger *logging.Logger) (func(context.Context), error) {
	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init uptrace: %w", err)
	}

	stopProfiling, err := observability.InitPyroscope(cfg, binary, logger)
	if err != nil {
		_ = shutdownTracing(context.Background())
		return nil, fmt.Errorf("init pyroscope: %w", err)
	}

	pprofServer := observability.StartPprofServer(cfg, logger)

	return func(ctx context.Context) {
		if err := observability.StopPprofServer(ctx, pprofServer); err != nil {
			logger.Warn("pprof shutdown failed", "error", err)
		}
		if err := stopProfiling(); err != nil {
			logger.Warn("pyroscope stop failed", "error", err)
		}
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("uptrace shutdown failed", "error", err)
		}
	}, nil
}

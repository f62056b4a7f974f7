package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/riskibarqy/nba-projection/internal/app"
	"github.com/riskibarqy/nba-projection/internal/config"
	"github.com/riskibarqy/nba-projection/internal/platform/logging"
)

const usage = `usage: %[1]s <command> [flags]

commands:
  run        project the slate for a day and archive it
  evaluate   score an archived slate against finals and closing lines
  recommend  check a pick against the historical performance log
  project    project a single matchup without archiving
  daemon     run the slate on SLATE_CRON until interrupted
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewJSON(os.Stderr, cfg.LogLevel).With("binary", "projector")
	logging.SetDefault(logger)

	os.Exit(run(cfg, logger, os.Args[1:]))
}

func run(cfg config.Config, logger *logging.Logger, args []string) int {
	defer func() { _ = logger.Sync() }()

	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, usage, filepath.Base(os.Args[0]))
		return 2
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", args[0])
		fmt.Fprintf(os.Stderr, usage, filepath.Base(os.Args[0]))
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stopTelemetry, err := app.StartTelemetry(cfg, "projector", logger)
	if err != nil {
		logger.Error("start telemetry", "error", err)
		return 1
	}
	defer stopTelemetry(context.Background())

	container, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		return 1
	}
	defer func() {
		if err := container.Close(); err != nil {
			logger.Warn("close app resources", "error", err)
		}
	}()

	env := commandEnv{cfg: cfg, container: container, logger: logger, out: os.Stdout}
	if err := cmd(ctx, env, args[1:]); err != nil {
		if errors.Is(err, errFlagUsage) {
			return 2
		}
		logger.Error("command failed", "command", args[0], "error", err)
		return 1
	}
	return 0
}

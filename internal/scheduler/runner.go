package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/nba-projection/internal/config"
	"github.com/riskibarqy/nba-projection/internal/platform/logging"
	"github.com/robfig/cron/v3"
)

// Runner fires jobs on six-field cron specs in a fixed timezone. A job still
// running when its next tick arrives is skipped, not queued.
type Runner struct {
	cron    *cron.Cron
	logger  *logging.Logger
	baseCtx context.Context
}

func New(baseCtx context.Context, location *time.Location, logger *logging.Logger) *Runner {
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = logging.Default()
	}

	adapter := cronLogger{logger: logger}
	return &Runner{
		cron: cron.New(
			cron.WithParser(config.CronParser),
			cron.WithLocation(location),
			cron.WithLogger(adapter),
			cron.WithChain(cron.Recover(adapter), cron.SkipIfStillRunning(adapter)),
		),
		logger:  logger,
		baseCtx: baseCtx,
	}
}

func (r *Runner) Add(name, spec string, job func(context.Context) error) (cron.EntryID, error) {
	id, err := r.cron.AddFunc(spec, func() {
		started := time.Now()
		r.logger.InfoContext(r.baseCtx, "scheduled job started", "job", name)
		if err := job(r.baseCtx); err != nil {
			r.logger.ErrorContext(r.baseCtx, "scheduled job failed", "job", name, "error", err, "duration_ms", time.Since(started).Milliseconds())
			return
		}
		r.logger.InfoContext(r.baseCtx, "scheduled job finished", "job", name, "duration_ms", time.Since(started).Milliseconds())
	})
	if err != nil {
		return 0, fmt.Errorf("schedule %s with %q: %w", name, spec, err)
	}
	return id, nil
}

// Next reports the next fire time of an entry, zero before Start.
func (r *Runner) Next(id cron.EntryID) time.Time {
	return r.cron.Entry(id).Next
}

func (r *Runner) Start() {
	r.cron.Start()
	r.logger.Info("cron started", "entries", len(r.cron.Entries()))
}

// Stop waits for running jobs to return.
func (r *Runner) Stop() {
	<-r.cron.Stop().Done()
	r.logger.Info("cron stopped")
}

type cronLogger struct {
	logger *logging.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}

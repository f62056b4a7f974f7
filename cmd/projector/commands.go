package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/nba-projection/internal/app"
	"github.com/riskibarqy/nba-projection/internal/config"
	"github.com/riskibarqy/nba-projection/internal/domain/prediction"
	"github.com/riskibarqy/nba-projection/internal/domain/projection"
	"github.com/riskibarqy/nba-projection/internal/platform/logging"
	"github.com/riskibarqy/nba-projection/internal/scheduler"
	"github.com/riskibarqy/nba-projection/internal/usecase"
)

var errFlagUsage = errors.New("invalid flags")

type commandEnv struct {
	cfg       config.Config
	container *app.Container
	logger    *logging.Logger
	out       io.Writer
}

type commandFunc func(ctx context.Context, env commandEnv, args []string) error

var commands = map[string]commandFunc{
	"run":       runSlate,
	"evaluate":  evaluateSlate,
	"recommend": recommendPick,
	"project":   projectMatchup,
	"daemon":    runDaemon,
}

type stageFlags struct {
	noInjuries bool
	noRest     bool
	noPace     bool
}

func (f *stageFlags) register(fs *flag.FlagSet) {
	fs.BoolVar(&f.noInjuries, "no-injuries", false, "skip injury adjustments")
	fs.BoolVar(&f.noRest, "no-rest", false, "skip the rest-days adjustment")
	fs.BoolVar(&f.noPace, "no-pace", false, "skip the pace adjustment")
}

func (f stageFlags) options() projection.Options {
	opts := projection.DefaultOptions()
	opts.Injuries = !f.noInjuries
	opts.Rest = !f.noRest
	opts.Pace = !f.noPace
	return opts
}

func newFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet("projector "+name, flag.ContinueOnError)
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errFlagUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", errFlagUsage, fs.Args())
	}
	return nil
}

// resolveDate parses raw as a slate date, falling back to today shifted by
// offsetDays in loc.
func resolveDate(raw string, loc *time.Location, now time.Time, offsetDays int) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		local := now.In(loc).AddDate(0, 0, offsetDays)
		return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc), nil
	}
	date, err := time.ParseInLocation(prediction.DateLayout, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", errFlagUsage, raw)
	}
	return date, nil
}

func runSlate(ctx context.Context, env commandEnv, args []string) error {
	fs := newFlagSet("run")
	var stages stageFlags
	stages.register(fs)
	dateRaw := fs.String("date", "", "slate date (YYYY-MM-DD), defaults to today in SLATE_TIMEZONE")
	resave := fs.Bool("resave", false, "overwrite an existing archive for the date")
	skipEval := fs.Bool("skip-evaluation", false, "do not evaluate the previous slate first")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	date, err := resolveDate(*dateRaw, env.cfg.SlateTimezone, time.Now(), 0)
	if err != nil {
		return err
	}

	result, err := env.container.Slate.Run(ctx, date, usecase.SlateOptions{
		Projection:     stages.options(),
		Overwrite:      *resave,
		SkipEvaluation: *skipEval,
	})
	if err != nil {
		return err
	}
	return writeLines(env.out, usecase.SummaryLines(result))
}

func evaluateSlate(ctx context.Context, env commandEnv, args []string) error {
	fs := newFlagSet("evaluate")
	dateRaw := fs.String("date", "", "slate date to evaluate (YYYY-MM-DD), defaults to yesterday")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	date, err := resolveDate(*dateRaw, env.cfg.SlateTimezone, time.Now(), -1)
	if err != nil {
		return err
	}

	report, err := env.container.Evaluation.Evaluate(ctx, date)
	if err != nil {
		return err
	}
	return writeLines(env.out, []string{fmt.Sprintf(
		"Evaluation %s: %d final, %d evaluated, %d logged, %d duplicates, %d skipped",
		report.Date, report.FinalGames, report.Evaluated, report.Logged, report.Duplicates, report.Skipped,
	)})
}

func recommendPick(ctx context.Context, env commandEnv, args []string) error {
	fs := newFlagSet("recommend")
	pickType := fs.String("pick-type", "", "pick type, e.g. big_edge_spread")
	edge := fs.Float64("edge", 0, "edge in points between model and market")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if strings.TrimSpace(*pickType) == "" {
		return fmt.Errorf("%w: --pick-type is required", errFlagUsage)
	}

	svc := env.container.Recommendations
	if err := svc.Reload(ctx); err != nil {
		return err
	}
	return writeJSON(env.out, svc.ShouldRecommend(strings.TrimSpace(*pickType), *edge))
}

func projectMatchup(ctx context.Context, env commandEnv, args []string) error {
	fs := newFlagSet("project")
	var stages stageFlags
	stages.register(fs)
	home := fs.String("home", "", "home team name or abbreviation")
	away := fs.String("away", "", "away team name or abbreviation")
	dateRaw := fs.String("date", "", "game date (YYYY-MM-DD), defaults to today")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if strings.TrimSpace(*home) == "" || strings.TrimSpace(*away) == "" {
		return fmt.Errorf("%w: --home and --away are required", errFlagUsage)
	}

	date, err := resolveDate(*dateRaw, env.cfg.SlateTimezone, time.Now(), 0)
	if err != nil {
		return err
	}

	svc := env.container.Projection
	homeTeam, ok := svc.FindTeam(*home)
	if !ok {
		return fmt.Errorf("unknown team %q", *home)
	}
	awayTeam, ok := svc.FindTeam(*away)
	if !ok {
		return fmt.Errorf("unknown team %q", *away)
	}

	result, err := svc.ProjectMatchup(ctx, homeTeam.Name, awayTeam.Name, date, stages.options())
	if err != nil {
		return err
	}
	return writeJSON(env.out, usecase.FormatPrediction(result))
}

func runDaemon(ctx context.Context, env commandEnv, args []string) error {
	fs := newFlagSet("daemon")
	var stages stageFlags
	stages.register(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	runner := scheduler.New(ctx, env.cfg.SlateTimezone, env.logger)
	id, err := runner.Add("slate", env.cfg.SlateCron, func(ctx context.Context) error {
		date, _ := resolveDate("", env.cfg.SlateTimezone, time.Now(), 0)
		result, err := env.container.Slate.Run(ctx, date, usecase.SlateOptions{Projection: stages.options()})
		if err != nil {
			return err
		}
		for _, line := range usecase.SummaryLines(result) {
			env.logger.InfoContext(ctx, line, "run_id", result.RunID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	runner.Start()
	env.logger.Info("projector daemon waiting", "cron", env.cfg.SlateCron, "timezone", env.cfg.SlateTimezone.String(), "next_run", runner.Next(id))
	<-ctx.Done()
	runner.Stop()
	return nil
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	raw, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(raw))
	return err
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/nba-projection/internal/domain/prediction"
	"github.com/riskibarqy/nba-projection/internal/domain/projection"
	"github.com/riskibarqy/nba-projection/internal/domain/schedule"
	"github.com/riskibarqy/nba-projection/internal/domain/stattable"
	"github.com/riskibarqy/nba-projection/internal/platform/id"
	"github.com/riskibarqy/nba-projection/internal/platform/logging"
)

// MatchupProjector runs the projection pipeline for one game.
type MatchupProjector interface {
	ProjectMatchup(ctx context.Context, homeName, awayName string, date time.Time, opts projection.Options) (projection.Result, error)
}

type SlateOptions struct {
	Projection     projection.Options
	Overwrite      bool
	SkipEvaluation bool
}

type FailedMatchup struct {
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
	Error    string `json:"error"`
}

type SlateResult struct {
	Date       string              `json:"date"`
	RunID      string              `json:"run_id"`
	Matchups   int                 `json:"matchups"`
	Projected  []projection.Result `json:"projected"`
	Failed     []FailedMatchup     `json:"failed"`
	Archive    prediction.Archive  `json:"archive"`
	Saved      bool                `json:"saved"`
	Evaluation *EvaluationReport   `json:"evaluation,omitempty"`
}

// SlateService runs a whole day: evaluate the previous slate, project every
// matchup, then archive the predictions.
type SlateService struct {
	schedule  schedule.Provider
	projector MatchupProjector
	archives  prediction.Repository
	evaluator *EvaluationService
	warmer    stattable.Warmer
	ids       id.Generator
	workers   int
	logger    *logging.Logger
	now       func() time.Time
}

type SlateServiceConfig struct {
	Schedule  schedule.Provider
	Projector MatchupProjector
	Archives  prediction.Repository
	Evaluator *EvaluationService
	Warmer    stattable.Warmer
	IDs       id.Generator
	Workers   int
	Logger    *logging.Logger
}

func NewSlateService(cfg SlateServiceConfig) *SlateService {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	ids := cfg.IDs
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	return &SlateService{
		schedule:  cfg.Schedule,
		projector: cfg.Projector,
		archives:  cfg.Archives,
		evaluator: cfg.Evaluator,
		warmer:    cfg.Warmer,
		ids:       ids,
		workers:   workers,
		logger:    logger,
		now:       time.Now,
	}
}

type matchupOutcome struct {
	result projection.Result
	err    error
}

// Run projects the slate for date. A failed matchup is reported and excluded;
// only schedule and archive failures abort the run.
func (s *SlateService) Run(ctx context.Context, date time.Time, opts SlateOptions) (SlateResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SlateService.Run")
	defer span.End()

	runID, err := s.ids.NewID()
	if err != nil {
		return SlateResult{}, fmt.Errorf("generate run id: %w", err)
	}
	dateStr := date.Format(prediction.DateLayout)
	logger := s.logger.With("run_id", runID, "date", dateStr)
	result := SlateResult{
		Date:      dateStr,
		RunID:     runID,
		Projected: []projection.Result{},
		Failed:    []FailedMatchup{},
	}

	if s.evaluator != nil && !opts.SkipEvaluation {
		previous := date.AddDate(0, 0, -1)
		report, err := s.evaluator.Evaluate(ctx, previous)
		if err != nil {
			logger.WarnContext(ctx, "previous slate evaluation failed", "evaluated_date", previous.Format(prediction.DateLayout), "error", err)
		} else {
			result.Evaluation = &report
		}
	}

	if s.warmer != nil {
		if err := s.warmer.Warmup(ctx); err != nil {
			logger.WarnContext(ctx, "stat provider warmup failed", "error", err)
		}
	}

	matchups, err := s.schedule.Matchups(ctx, date)
	if err != nil {
		return result, fmt.Errorf("fetch matchups for %s: %w", dateStr, err)
	}
	result.Matchups = len(matchups)
	if len(matchups) == 0 {
		logger.InfoContext(ctx, "no games scheduled")
		return result, nil
	}
	logger.InfoContext(ctx, "slate started", "matchups", len(matchups), "workers", s.workers)

	outcomes, err := s.projectAll(ctx, matchups, date, opts.Projection)
	if err != nil {
		return result, err
	}

	games := make([]prediction.Game, 0, len(matchups))
	for i, outcome := range outcomes {
		m := matchups[i]
		if outcome.err != nil {
			logger.ErrorContext(ctx, "matchup projection failed", "home_team", m.HomeTeam, "away_team", m.AwayTeam, "error", outcome.err)
			result.Failed = append(result.Failed, FailedMatchup{HomeTeam: m.HomeTeam, AwayTeam: m.AwayTeam, Error: outcome.err.Error()})
			continue
		}
		result.Projected = append(result.Projected, outcome.result)
		games = append(games, FormatPrediction(outcome.result))
	}

	result.Archive = prediction.Archive{
		Date:      dateStr,
		RunID:     runID,
		Timestamp: s.now().UTC(),
		Games:     games,
	}
	if len(games) == 0 {
		logger.WarnContext(ctx, "no matchup projected, archive not written", "failed", len(result.Failed))
		return result, nil
	}

	switch err := s.archives.Save(ctx, result.Archive, opts.Overwrite); {
	case errors.Is(err, ErrArchiveExists):
		logger.WarnContext(ctx, "prediction archive already exists, leaving it intact")
	case err != nil:
		return result, fmt.Errorf("save prediction archive: %w", err)
	default:
		result.Saved = true
	}

	logger.InfoContext(ctx, "slate finished", "projected", len(result.Projected), "failed", len(result.Failed), "saved", result.Saved)
	return result, nil
}

func (s *SlateService) projectAll(ctx context.Context, matchups []schedule.Matchup, date time.Time, opts projection.Options) ([]matchupOutcome, error) {
	outcomes := make([]matchupOutcome, len(matchups))

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, m := range matchups {
		i, m := i, m
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			defer func() {
				if r := recover(); r != nil {
					outcomes[i] = matchupOutcome{err: fmt.Errorf("matchup %s vs %s panicked: %v", m.HomeTeam, m.AwayTeam, r)}
				}
			}()
			res, err := s.projector.ProjectMatchup(ctx, m.HomeTeam, m.AwayTeam, date, opts)
			outcomes[i] = matchupOutcome{result: res, err: err}
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit matchup to worker pool: %w", err)
		}
	}
	workers.Wait()
	return outcomes, nil
}

// SummaryLines renders the human-readable slate summary, one line per game.
func SummaryLines(result SlateResult) []string {
	lines := make([]string, 0, len(result.Projected)+len(result.Failed)+1)
	lines = append(lines, fmt.Sprintf("Slate %s: %d projected, %d failed", result.Date, len(result.Projected), len(result.Failed)))
	for _, r := range result.Projected {
		p := r.Projection
		line := fmt.Sprintf("%s @ %s: %.1f-%.1f, %s %.1f, total %.1f",
			p.AwayTeam, p.HomeTeam, p.AwayPoints, p.HomePoints, p.Favorite, p.FavoriteSpread, p.Total)
		if r.Rest.Enabled {
			line += fmt.Sprintf(", rest spread %+.1f", r.Rest.RestModuleSpread)
		}
		if r.Pace.Enabled {
			line += fmt.Sprintf(", pace total %.1f", r.Pace.PaceModuleTotal)
		}
		lines = append(lines, line)
	}
	for _, f := range result.Failed {
		lines = append(lines, fmt.Sprintf("FAILED %s @ %s: %s", f.AwayTeam, f.HomeTeam, f.Error))
	}
	return lines
}

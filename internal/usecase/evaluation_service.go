package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/riskibarqy/nba-projection/internal/domain/performance"
	"github.com/riskibarqy/nba-projection/internal/domain/prediction"
	"github.com/riskibarqy/nba-projection/internal/domain/schedule"
	"github.com/riskibarqy/nba-projection/internal/domain/team"
	"github.com/riskibarqy/nba-projection/internal/platform/logging"
	"github.com/riskibarqy/nba-projection/internal/platform/numeric"
	"github.com/sourcegraph/conc/pool"
)

const (
	minSpreadEdge      = 1.0
	minTotalEdge       = 2.0
	smallEdgeThreshold = 2.0
	bigEdgeThreshold   = 4.0
	closeGameMargin    = 3
	shootoutTotal      = 260
	majorInjurySwing   = 2.0
	minorInjurySwing   = 0.5
	defaultOddsWorkers = 4
)

// EvaluationReport summarizes one evaluation pass over a completed slate.
type EvaluationReport struct {
	Date       string               `json:"date"`
	FinalGames int                  `json:"final_games"`
	Evaluated  int                  `json:"evaluated"`
	Logged     int                  `json:"logged"`
	Duplicates int                  `json:"duplicates"`
	Skipped    int                  `json:"skipped"`
	Records    []performance.Record `json:"records"`
}

// EvaluationService compares archived projections with final scores and
// closing lines, logging a pick whenever the model disagreed enough with the market.
type EvaluationService struct {
	results  schedule.ResultsProvider
	odds     schedule.OddsProvider
	archives prediction.Repository
	log      *PerformanceLogger
	catalog  *team.Catalog
	workers  int
	logger   *logging.Logger
}

type EvaluationServiceConfig struct {
	Results     schedule.ResultsProvider
	Odds        schedule.OddsProvider
	Archives    prediction.Repository
	Performance *PerformanceLogger
	Catalog     *team.Catalog
	Workers     int
	Logger      *logging.Logger
}

func NewEvaluationService(cfg EvaluationServiceConfig) *EvaluationService {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	catalog := cfg.Catalog
	if catalog == nil {
		catalog = team.NewCatalog()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultOddsWorkers
	}
	return &EvaluationService{
		results:  cfg.Results,
		odds:     cfg.Odds,
		archives: cfg.Archives,
		log:      cfg.Performance,
		catalog:  catalog,
		workers:  workers,
		logger:   logger,
	}
}

type pendingGame struct {
	index      int
	final      schedule.FinalGame
	prediction prediction.Game
}

type oddsResult struct {
	game  pendingGame
	line  schedule.MarketLine
	found bool
	err   error
}

// Evaluate logs picks for every final game on date that has both an archived
// prediction and a market line. Re-running a date never duplicates rows.
func (s *EvaluationService) Evaluate(ctx context.Context, date time.Time) (EvaluationReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EvaluationService.Evaluate")
	defer span.End()

	dateStr := date.Format(prediction.DateLayout)
	report := EvaluationReport{Date: dateStr, Records: []performance.Record{}}

	existing, err := s.log.ExistingKeys(ctx)
	if err != nil {
		return report, err
	}

	finals, err := s.results.FinalGames(ctx, date)
	if err != nil {
		return report, fmt.Errorf("fetch final games for %s: %w", dateStr, err)
	}
	report.FinalGames = len(finals)
	if len(finals) == 0 {
		s.logger.InfoContext(ctx, "no completed games to evaluate", "date", dateStr)
		return report, nil
	}

	archive, found, err := s.archives.Get(ctx, dateStr)
	if err != nil {
		return report, fmt.Errorf("load prediction archive for %s: %w", dateStr, err)
	}
	if !found {
		return report, fmt.Errorf("%w: no prediction archive for %s", ErrNotFound, dateStr)
	}

	predictions := make(map[string]prediction.Game, len(archive.Games))
	for _, g := range archive.Games {
		predictions[s.catalog.GameID(g.HomeTeam, g.AwayTeam)] = g
	}

	pending := make([]pendingGame, 0, len(finals))
	for i, final := range finals {
		pred, ok := predictions[final.GameID]
		if !ok {
			s.logger.WarnContext(ctx, "no prediction found for final game", "date", dateStr, "game_id", final.GameID)
			report.Skipped++
			continue
		}
		pending = append(pending, pendingGame{index: i, final: final, prediction: pred})
	}

	for _, res := range s.fetchOdds(ctx, pending) {
		gameID := res.game.final.GameID
		if res.err != nil {
			s.logger.WarnContext(ctx, "fetch market line failed, skipping game", "date", dateStr, "game_id", gameID, "error", res.err)
			report.Skipped++
			continue
		}
		if !res.found {
			s.logger.WarnContext(ctx, "no market line available, skipping game", "date", dateStr, "game_id", gameID)
			report.Skipped++
			continue
		}

		report.Evaluated++
		for _, rec := range EvaluateGame(dateStr, res.game.final, res.game.prediction, res.line) {
			if _, dup := existing[rec.Key()]; dup {
				report.Duplicates++
				continue
			}
			logged, err := s.log.Log(ctx, rec)
			if err != nil {
				if errors.Is(err, ErrInvalidInput) {
					s.logger.WarnContext(ctx, "performance record rejected", "game_id", gameID, "pick_type", rec.PickType, "error", err)
					continue
				}
				return report, err
			}
			existing[logged.Key()] = struct{}{}
			report.Logged++
			report.Records = append(report.Records, logged)
		}
	}

	s.logger.InfoContext(ctx, "evaluation finished",
		"date", dateStr,
		"final_games", report.FinalGames,
		"evaluated", report.Evaluated,
		"logged", report.Logged,
		"duplicates", report.Duplicates,
		"skipped", report.Skipped,
	)
	return report, nil
}

func (s *EvaluationService) fetchOdds(ctx context.Context, games []pendingGame) []oddsResult {
	if len(games) == 0 {
		return nil
	}

	p := pool.NewWithResults[oddsResult]().WithMaxGoroutines(s.workers)
	for _, g := range games {
		g := g
		p.Go(func() oddsResult {
			line, found, err := s.odds.MarketLine(ctx, g.final.EventID, g.final.CompetitionID)
			return oddsResult{game: g, line: line, found: found, err: err}
		})
	}
	results := p.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].game.index < results[j].game.index })
	return results
}

// EvaluateGame builds the spread and total records for one game. Either may be
// absent when the model edge is below its threshold.
func EvaluateGame(date string, final schedule.FinalGame, pred prediction.Game, line schedule.MarketLine) []performance.Record {
	variance := VarianceFlagFor(final)
	injuryFlag := InjuryFlagFor(pred.InjuryImpact)
	out := make([]performance.Record, 0, 2)

	modelSpread := pred.ModelSpread()
	spreadEdge := line.Spread - modelSpread
	if math.Abs(spreadEdge) >= minSpreadEdge {
		margin := final.Margin()
		ats := float64(margin) + line.Spread
		correct := ats < 0
		if modelSpread < line.Spread {
			correct = ats > 0
		}
		out = append(out, performance.Record{
			Date:          date,
			GameID:        final.GameID,
			PickType:      ClassifySpreadPick(spreadEdge, modelSpread, line.Spread),
			EdgePoints:    numeric.Round2(math.Abs(spreadEdge)),
			ModelLine:     numeric.Round1(modelSpread),
			MarketLine:    numeric.Round1(line.Spread),
			ResultCorrect: correct,
			VarianceFlag:  variance,
			InjuryFlag:    injuryFlag,
			Notes:         fmt.Sprintf("Actual: %+d, ATS vs market: %+.1f", margin, ats),
		})
	}

	modelTotal := pred.ModelTotal()
	totalEdge := modelTotal - line.OverUnder
	if math.Abs(totalEdge) >= minTotalEdge {
		actual := final.Total()
		over := modelTotal > line.OverUnder
		correct := float64(actual) < line.OverUnder
		if over {
			correct = float64(actual) > line.OverUnder
		}
		out = append(out, performance.Record{
			Date:          date,
			GameID:        final.GameID,
			PickType:      ClassifyTotalPick(totalEdge, modelTotal, line.OverUnder),
			EdgePoints:    numeric.Round2(math.Abs(totalEdge)),
			ModelLine:     numeric.Round1(modelTotal),
			MarketLine:    numeric.Round1(line.OverUnder),
			ResultCorrect: correct,
			VarianceFlag:  variance,
			InjuryFlag:    injuryFlag,
			Notes:         fmt.Sprintf("Actual: %d, vs market %v (%+.1f)", actual, line.OverUnder, float64(actual)-line.OverUnder),
		})
	}
	return out
}

// ClassifySpreadPick buckets a spread pick. Both lines are home-perspective.
func ClassifySpreadPick(edge, modelLine, marketLine float64) performance.PickType {
	if (modelLine < 0) != (marketLine < 0) {
		return performance.PickFlippedFavorite
	}
	switch abs := math.Abs(edge); {
	case abs >= bigEdgeThreshold:
		return performance.PickSpreadBigEdge
	case abs >= smallEdgeThreshold && marketLine <= 0:
		return performance.PickSpreadFavSmall
	default:
		return performance.PickSpreadDogValue
	}
}

func ClassifyTotalPick(edge, modelLine, marketLine float64) performance.PickType {
	over := modelLine > marketLine
	big := math.Abs(edge) >= bigEdgeThreshold
	switch {
	case over && big:
		return performance.PickTotalOverBigEdge
	case over:
		return performance.PickTotalOverValue
	case big:
		return performance.PickTotalUnderBigEdge
	default:
		return performance.PickTotalUnderValue
	}
}

// VarianceFlagFor marks close games and shootouts.
func VarianceFlagFor(final schedule.FinalGame) performance.VarianceFlag {
	margin := final.Margin()
	if margin < 0 {
		margin = -margin
	}
	if margin <= closeGameMargin || final.Total() >= shootoutTotal {
		return performance.VarianceHigh
	}
	return performance.VarianceNormal
}

func InjuryFlagFor(impact prediction.InjuryImpact) performance.InjuryFlag {
	swing := math.Max(math.Abs(impact.HomeTotalAdjustment), math.Abs(impact.AwayTotalAdjustment))
	switch {
	case swing >= majorInjurySwing:
		return performance.InjuryMajor
	case swing >= minorInjurySwing:
		return performance.InjuryMinor
	default:
		return performance.InjuryNone
	}
}

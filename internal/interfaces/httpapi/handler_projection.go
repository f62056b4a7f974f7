package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/nba-projection/internal/domain/prediction"
	"github.com/riskibarqy/nba-projection/internal/domain/projection"
	"github.com/riskibarqy/nba-projection/internal/usecase"
)

type projectMatchupRequest struct {
	HomeTeam string `json:"home_team" validate:"required,max=64"`
	AwayTeam string `json:"away_team" validate:"required,max=64,nefield=HomeTeam"`
	Date     string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Injuries *bool  `json:"injuries"`
	Rest     *bool  `json:"rest"`
	Pace     *bool  `json:"pace"`
}

func (r projectMatchupRequest) options() projection.Options {
	opts := projection.DefaultOptions()
	if r.Injuries != nil {
		opts.Injuries = *r.Injuries
	}
	if r.Rest != nil {
		opts.Rest = *r.Rest
	}
	if r.Pace != nil {
		opts.Pace = *r.Pace
	}
	return opts
}

type matchupProjectionDTO struct {
	Result     projection.Result `json:"result"`
	Prediction prediction.Game   `json:"prediction"`
}

func (h *Handler) GetProjections(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetProjections")
	defer span.End()

	date := strings.TrimSpace(r.PathValue("date"))
	archive, err := h.predictionService.GetArchive(ctx, date)
	if err != nil {
		if !errors.Is(err, usecase.ErrNotFound) && !errors.Is(err, usecase.ErrInvalidInput) {
			h.logger.ErrorContext(ctx, "get prediction archive failed", "date", date, "error", err)
		}
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, archive)
}

func (h *Handler) ProjectMatchup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ProjectMatchup")
	defer span.End()

	var req projectMatchupRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			writeError(ctx, w, fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput))
			return
		}
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	req.HomeTeam = strings.TrimSpace(req.HomeTeam)
	req.AwayTeam = strings.TrimSpace(req.AwayTeam)
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	home, ok := h.projectionService.FindTeam(req.HomeTeam)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: unknown home team %q", usecase.ErrInvalidInput, req.HomeTeam))
		return
	}
	away, ok := h.projectionService.FindTeam(req.AwayTeam)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: unknown away team %q", usecase.ErrInvalidInput, req.AwayTeam))
		return
	}

	date := h.today()
	if req.Date != "" {
		parsed, err := time.ParseInLocation(prediction.DateLayout, req.Date, h.slateLocation)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: date must be YYYY-MM-DD", usecase.ErrInvalidInput))
			return
		}
		date = parsed
	}

	result, err := h.projectionService.ProjectMatchup(ctx, home.Name, away.Name, date, req.options())
	if err != nil {
		h.logger.ErrorContext(ctx, "project matchup failed", "home_team", home.Name, "away_team", away.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchupProjectionDTO{
		Result:     result,
		Prediction: usecase.FormatPrediction(result),
	})
}

package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/nba-projection/internal/domain/performance"
	"github.com/riskibarqy/nba-projection/internal/usecase"
)

type recommendationQuery struct {
	PickType string  `validate:"required"`
	Edge     float64 `validate:"gte=0"`
}

type performanceSummaryDTO struct {
	MinEdge    float64             `json:"min_edge"`
	MinWinRate float64             `json:"min_win_rate"`
	MinSample  int                 `json:"min_sample"`
	PickTypes  []performance.Stats `json:"pick_types"`
}

func (h *Handler) GetPerformanceSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPerformanceSummary")
	defer span.End()

	if err := h.recommendationService.Reload(ctx); err != nil {
		h.logger.ErrorContext(ctx, "reload performance stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, performanceSummaryDTO{
		MinEdge:    usecase.MinRecommendEdge,
		MinWinRate: usecase.MinRecommendWinRate,
		MinSample:  usecase.MinRecommendSample,
		PickTypes:  h.recommendationService.Summary(),
	})
}

func (h *Handler) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRecommendation")
	defer span.End()

	query := r.URL.Query()
	req := recommendationQuery{PickType: strings.TrimSpace(query.Get("pick_type"))}
	if raw := strings.TrimSpace(query.Get("edge")); raw != "" {
		edge, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: edge must be a number", usecase.ErrInvalidInput))
			return
		}
		req.Edge = edge
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.recommendationService.Reload(ctx); err != nil {
		h.logger.ErrorContext(ctx, "reload performance stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, h.recommendationService.ShouldRecommend(req.PickType, req.Edge))
}

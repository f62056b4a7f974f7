package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/nba-projection/internal/platform/logging"
	"github.com/riskibarqy/nba-projection/internal/usecase"
)

type Handler struct {
	dashboardService      *usecase.DashboardService
	projectionService     *usecase.ProjectionService
	predictionService     *usecase.PredictionService
	recommendationService *usecase.RecommendationService
	slateLocation         *time.Location
	now                   func() time.Time
	logger                *logging.Logger
	validator             *validator.Validate
}

func NewHandler(
	dashboardService *usecase.DashboardService,
	projectionService *usecase.ProjectionService,
	predictionService *usecase.PredictionService,
	recommendationService *usecase.RecommendationService,
	slateLocation *time.Location,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if slateLocation == nil {
		slateLocation = time.UTC
	}

	return &Handler{
		dashboardService:      dashboardService,
		projectionService:     projectionService,
		predictionService:     predictionService,
		recommendationService: recommendationService,
		slateLocation:         slateLocation,
		now:                   time.Now,
		logger:                logger,
		validator:             validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// today is the current slate date in the configured timezone.
func (h *Handler) today() time.Time {
	now := h.now().In(h.slateLocation)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.slateLocation)
}

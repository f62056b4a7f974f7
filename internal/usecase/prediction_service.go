package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/nba-projection/internal/domain/prediction"
)

// PredictionService reads archived slates.
type PredictionService struct {
	repo prediction.Repository
}

func NewPredictionService(repo prediction.Repository) *PredictionService {
	return &PredictionService{repo: repo}
}

func (s *PredictionService) GetArchive(ctx context.Context, date string) (prediction.Archive, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.GetArchive")
	defer span.End()

	date = strings.TrimSpace(date)
	if _, err := time.Parse(prediction.DateLayout, date); err != nil {
		return prediction.Archive{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	archive, found, err := s.repo.Get(ctx, date)
	if err != nil {
		return prediction.Archive{}, fmt.Errorf("get prediction archive %s: %w", date, err)
	}
	if !found {
		return prediction.Archive{}, fmt.Errorf("%w: no predictions archived for %s", ErrNotFound, date)
	}
	return archive, nil
}

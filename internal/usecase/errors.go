package usecase

import (
	"errors"

	"github.com/riskibarqy/nba-projection/internal/domain/prediction"
	"github.com/riskibarqy/nba-projection/internal/domain/stattable"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrDataShape             = stattable.ErrDataShape
	ErrArchiveExists         = prediction.ErrArchiveExists
)

package prediction

import (
	"context"
	"errors"
)

// ErrArchiveExists is returned when saving over an existing date without overwrite.
var ErrArchiveExists = errors.New("prediction archive already exists")

// Repository persists one Archive per date.
type Repository interface {
	Save(ctx context.Context, archive Archive, overwrite bool) error
	Get(ctx context.Context, date string) (Archive, bool, error)
}

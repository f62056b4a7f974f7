package performance

import "context"

// Repository is the append-only performance log store.
type Repository interface {
	Append(ctx context.Context, record Record) error
	Keys(ctx context.Context) (map[Key]struct{}, error)
	List(ctx context.Context) ([]Record, error)
}

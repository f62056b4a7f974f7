package resilience

import (
	"context"

	"golang.org/x/sync/singleflight"
)

// Flight collapses concurrent loads of the same key into one call. A caller
// whose context ends stops waiting; the shared load keeps running for the others.
type Flight[V any] struct {
	group singleflight.Group
}

func (f *Flight[V]) Do(ctx context.Context, key string, fn func() (V, error)) (V, bool, error) {
	ch := f.group.DoChan(key, func() (any, error) {
		return fn()
	})

	select {
	case <-ctx.Done():
		var zero V
		return zero, false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			var zero V
			return zero, res.Shared, res.Err
		}
		return res.Val.(V), res.Shared, nil
	}
}

// Forget drops an in-flight key so the next Do starts a fresh load.
func (f *Flight[V]) Forget(key string) {
	f.group.Forget(key)
}

// Package fanout fetches the same resource for many keys concurrently.
//
// One goroutine is started per key with no concurrency cap. Fetches are not
// cancelled when a sibling fails; every fetch runs to completion and the
// join happens once all have returned.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of a single fetch.
type Result[V any] struct {
	Value V
	Err   error
}

// FetchAll fetches every key concurrently and returns one entry per distinct
// key. If any fetch fails, FetchAll returns the first error reported and no
// map. Duplicate keys are fetched independently; the last one in keys wins.
func FetchAll[K comparable, V any](ctx context.Context, keys []K, fetch func(context.Context, K) (V, error)) (map[K]V, error) {
	values := make([]V, len(keys))

	var g errgroup.Group
	for i, key := range keys {
		g.Go(func() error {
			v, err := fetch(ctx, key)
			if err != nil {
				return err
			}
			values[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[K]V, len(keys))
	for i, key := range keys {
		out[key] = values[i]
	}
	return out, nil
}

// FetchEach fetches every key concurrently and reports each outcome
// separately, so one failing key does not hide the others.
func FetchEach[K comparable, V any](ctx context.Context, keys []K, fetch func(context.Context, K) (V, error)) map[K]Result[V] {
	results := make([]Result[V], len(keys))

	var g errgroup.Group
	for i, key := range keys {
		g.Go(func() error {
			v, err := fetch(ctx, key)
			results[i] = Result[V]{Value: v, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[K]Result[V], len(keys))
	for i, key := range keys {
		out[key] = results[i]
	}
	return out
}

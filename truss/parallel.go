package truss

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// chunkBounds splits n units of work into at most workers contiguous
// [lo,hi) chunks of near-equal size. Returns nil when n == 0.
func chunkBounds(n, workers int) [][2]int {
	if n == 0 {
		return nil
	}
	if workers > n {
		workers = n
	}
	size := (n + workers - 1) / workers
	bounds := make([][2]int, 0, workers)
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		bounds = append(bounds, [2]int{lo, hi})
	}
	return bounds
}

// parallelFor runs fn over the chunks of [0,n) on up to workers
// goroutines and waits for all of them — a plain fork-join barrier. fn
// receives the chunk ordinal (stable across runs with the same worker
// count) and its [lo,hi) bounds, plus a context that is cancelled as soon
// as any chunk fails.
func parallelFor(ctx context.Context, n, workers int, fn func(ctx context.Context, chunk, lo, hi int) error) error {
	bounds := chunkBounds(n, workers)
	if len(bounds) == 0 {
		return nil
	}
	if len(bounds) == 1 {
		return fn(ctx, 0, bounds[0][0], bounds[0][1])
	}

	g, gctx := errgroup.WithContext(ctx)
	for ci, b := range bounds {
		ci, b := ci, b
		g.Go(func() error {
			return fn(gctx, ci, b[0], b[1])
		})
	}
	return g.Wait()
}

// Package tsp - concurrent solving of independent requests.
//
// Each request runs the full Solve pipeline on its own goroutine with its own
// RNG stream, so results match sequential Solve calls with the same seeds.
package tsp

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tourplan/costmatrix"
)

// SolveAll solves independent requests concurrently, at most
// opts.Parallelism at a time. Request i runs with its own RNG seeded by
// deriveSeed(opts.Seed, i), so its result does not depend on scheduling and
// equals Solve with that seed.
//
// provider must be safe for concurrent use. The first failure cancels the
// context passed to pending provider calls and is returned; results are
// returned only when every request succeeded.
func SolveAll(ctx context.Context, reqs []Request, provider costmatrix.Provider, opts Options) ([]Result, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	limit := opts.Parallelism
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	out := make([]Result, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := range reqs {
		i := i
		g.Go(func() error {
			o := opts
			o.Seed = RequestSeed(opts.Seed, i)
			res, err := Solve(gctx, reqs[i], provider, o)
			if err != nil {
				return fmt.Errorf("request %d: %w", i, err)
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// RequestSeed returns the seed SolveAll uses for request i.
func RequestSeed(base int64, i int) int64 {
	return deriveSeed(base, uint64(i))
}

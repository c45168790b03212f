// Package tsp - solve entry points and result assembly.
//
// Control flow of one solve, strictly in this order:
//
//	locations → Dedupe → cost matrix (Geometric or Provider) → Select →
//	Solver.Solve → rotate to start → Result
//
// Only the provider call takes ctx; once the matrix exists the solver runs
// to completion on the calling goroutine.
package tsp

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/tourplan/costmatrix"
	"github.com/katalvlaran/tourplan/waypoint"
)

// Request describes one tour to optimize. Zero Mode/Metric select the
// defaults (Driving, MinimizeTime).
type Request struct {
	Locations     []waypoint.Location
	Mode          costmatrix.TravelMode
	Metric        costmatrix.Metric
	DepartureTime *time.Time
}

// Solve deduplicates req.Locations, builds the cost matrix and returns the
// optimized tour. MinimizeStraightLine builds the matrix geometrically and
// never calls provider; the other metrics require a provider.
//
// Errors: ErrInsufficientInput, ErrMatrixUnavailable,
// waypoint.ErrNoCoordinates (geometric path), ErrInvalidOptions,
// ErrUnsupportedAlgorithm. No partial result is returned on failure.
func Solve(ctx context.Context, req Request, provider costmatrix.Provider, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	metric := resolveMetric(req.Metric, opts)
	mode := resolveMode(req.Mode, opts)

	locs, err := waypoint.Dedupe(req.Locations)
	if err != nil {
		return Result{}, err
	}

	m, err := buildMatrix(ctx, provider, locs, metric, mode, req.DepartureTime)
	if err != nil {
		return Result{}, err
	}
	opts.logger().Debug().
		Int("locations", len(locs)).
		Int("duplicates", len(req.Locations)-len(locs)).
		Stringer("metric", metric).
		Stringer("mode", mode).
		Msg("cost matrix ready")

	return solveWith(m, metric, mode, opts)
}

// SolveMatrix solves over a pre-built matrix. Result locations are mapped
// only if the matrix carries them. A matrix without a travel mode reports
// DefaultMode.
func SolveMatrix(m *costmatrix.Matrix, metric costmatrix.Metric, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if m == nil {
		return Result{}, fmt.Errorf("solve: nil matrix: %w", ErrMatrixUnavailable)
	}
	if err := m.Validate(); err != nil {
		return Result{}, err
	}
	return solveWith(m, resolveMetric(metric, opts), resolveMode(m.Mode(), opts), opts)
}

func buildMatrix(
	ctx context.Context,
	provider costmatrix.Provider,
	locs []waypoint.Location,
	metric costmatrix.Metric,
	mode costmatrix.TravelMode,
	departure *time.Time,
) (*costmatrix.Matrix, error) {
	if metric == costmatrix.MinimizeStraightLine {
		return costmatrix.Geometric(locs, mode)
	}
	return costmatrix.Build(ctx, provider, locs, metric, costmatrix.Request{Mode: mode, DepartureTime: departure})
}

func solveWith(m *costmatrix.Matrix, metric costmatrix.Metric, mode costmatrix.TravelMode, opts Options) (Result, error) {
	solver, err := NewSolver(m.Size(), opts)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	tour, weight, err := solver.Solve(m, metric)
	if err != nil {
		return Result{}, err
	}
	res, err := assemble(solver.Algorithm(), tour, weight, metric, mode, m)
	if err != nil {
		return Result{}, err
	}

	opts.logger().Debug().
		Stringer("algorithm", res.algo).
		Int("locations", m.Size()).
		Float64("weight", weight).
		Dur("elapsed", time.Since(start)).
		Msg("tour solved")
	return res, nil
}

// assemble normalizes the winning tour to start at index 0 and maps it back
// to locations.
func assemble(
	algo Algorithm,
	tour []int,
	weight float64,
	metric costmatrix.Metric,
	mode costmatrix.TravelMode,
	m *costmatrix.Matrix,
) (Result, error) {
	order, err := RotateToStart(tour, 0)
	if err != nil {
		return Result{}, err
	}
	if err = ValidatePermutation(order, m.Size()); err != nil {
		return Result{}, err
	}

	var locs []waypoint.Location
	if all := m.Locations(); all != nil {
		locs = make([]waypoint.Location, len(order))
		for i, idx := range order {
			locs[i] = all[idx]
		}
	}

	return Result{
		algo:   algo,
		order:  order,
		locs:   locs,
		weight: weight,
		metric: metric,
		mode:   mode,
		matrix: m,
	}, nil
}

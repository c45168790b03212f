// Package tsp - algorithm selection.
//
// The strategy set is closed: Exact for small instances, Genetic above the
// threshold. Both satisfy Solver so the dispatcher never switches on the
// concrete type.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tourplan/costmatrix"
)

// Solver is one TSP strategy. Solve returns an open tour (len n) starting at
// index 0 and its closed-cycle weight under metric. Implementations hold no
// state between calls.
type Solver interface {
	Algorithm() Algorithm
	Solve(m *costmatrix.Matrix, metric costmatrix.Metric) ([]int, float64, error)
}

// Select picks the strategy for k unique locations:
// k < 2 → ErrInsufficientInput, k ≤ threshold → Exact, otherwise Genetic.
//
// Complexity: O(1).
func Select(k, threshold int) (Algorithm, error) {
	if k < 2 {
		return Auto, fmt.Errorf("select: %d locations: %w", k, ErrInsufficientInput)
	}
	if k <= threshold {
		return Exact, nil
	}
	return Genetic, nil
}

// NewSolver returns the strategy for k locations. opts.Algo other than Auto
// forces that strategy (k must still be ≥ 2).
func NewSolver(k int, opts Options) (Solver, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	algo, err := Select(k, opts.ExactThreshold)
	if err != nil {
		return nil, err
	}
	if opts.Algo != Auto {
		algo = opts.Algo
	}
	switch algo {
	case Exact:
		return NewExact(), nil
	case Genetic:
		return NewGenetic(opts), nil
	default:
		return nil, fmt.Errorf("%s: %w", algo, ErrUnsupportedAlgorithm)
	}
}

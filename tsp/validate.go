// Package tsp - validation of Options and request normalization.
//
// Design principles:
//   - Deterministic, side-effect free functions (logging aside).
//   - Unknown metric / travel mode never fails a solve: it falls back to the
//     documented defaults and the fallback is logged with ErrInvalidMetric.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tourplan/costmatrix"
)

// validateOptions checks internal consistency of Options.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.ExactThreshold < 2 {
		return fmt.Errorf("exact threshold %d < 2: %w", opts.ExactThreshold, ErrInvalidOptions)
	}
	if opts.Generations < 0 {
		return fmt.Errorf("generations %d < 0: %w", opts.Generations, ErrInvalidOptions)
	}
	if math.IsNaN(opts.MutationRate) || opts.MutationRate < 0 || opts.MutationRate > 1 {
		return fmt.Errorf("mutation rate %v outside [0,1]: %w", opts.MutationRate, ErrInvalidOptions)
	}
	switch opts.Algo {
	case Auto, Exact, Genetic:
	default:
		return fmt.Errorf("%s: %w", opts.Algo, ErrUnsupportedAlgorithm)
	}
	return nil
}

// resolveMetric applies defaults: unspecified → MinimizeTime, unknown →
// MinimizeTime plus a logged ErrInvalidMetric.
func resolveMetric(metric costmatrix.Metric, opts Options) costmatrix.Metric {
	if metric == costmatrix.MetricUnspecified {
		return DefaultMetric
	}
	if !metric.Valid() {
		opts.logger().Warn().
			Err(fmt.Errorf("metric %s: %w", metric, ErrInvalidMetric)).
			Stringer("fallback", DefaultMetric).
			Msg("unknown optimization metric, using default")
		return DefaultMetric
	}
	return metric
}

// resolveMode applies defaults: unspecified → Driving, unknown → Driving plus
// a logged ErrInvalidMetric.
func resolveMode(mode costmatrix.TravelMode, opts Options) costmatrix.TravelMode {
	if mode == costmatrix.ModeUnspecified {
		return DefaultMode
	}
	if !mode.Valid() {
		opts.logger().Warn().
			Err(fmt.Errorf("mode %s: %w", mode, ErrInvalidMetric)).
			Stringer("fallback", DefaultMode).
			Msg("unknown travel mode, using default")
		return DefaultMode
	}
	return mode
}

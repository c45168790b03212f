// Package tsp - shared types, options and sentinels.
package tsp

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/tourplan/costmatrix"
	"github.com/katalvlaran/tourplan/waypoint"
)

// Sentinel errors. Upstream sentinels are re-exported so callers of this
// package can match every failure without importing the lower layers.
var (
	// ErrInsufficientInput: fewer than 2 unique locations.
	ErrInsufficientInput = waypoint.ErrInsufficientInput

	// ErrMatrixUnavailable: the cost matrix could not be obtained.
	ErrMatrixUnavailable = costmatrix.ErrMatrixUnavailable

	// ErrInvalidMetric marks a metric/mode the solver does not know. Solve
	// never returns it: it logs it and falls back to MinimizeTime / Driving.
	ErrInvalidMetric = errors.New("tsp: invalid metric or travel mode")

	// ErrInvalidOptions indicates out-of-range Options fields.
	ErrInvalidOptions = errors.New("tsp: invalid options")

	// ErrUnsupportedAlgorithm indicates an unknown Algorithm value.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrInvalidTour indicates a sequence that is not a permutation of the
	// matrix indices, or lacks the requested start.
	ErrInvalidTour = errors.New("tsp: invalid tour")
)

// Algorithm identifies a solver strategy.
type Algorithm int

const (
	// Auto lets the selector choose by location count.
	Auto Algorithm = iota
	// Exact enumerates every tour with a fixed start.
	Exact
	// Genetic runs the population-based heuristic.
	Genetic
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case Auto:
		return "auto"
	case Exact:
		return "exact"
	case Genetic:
		return "genetic"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps "auto", "exact" and "genetic" to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "", "auto":
		return Auto, nil
	case "exact":
		return Exact, nil
	case "genetic":
		return Genetic, nil
	default:
		return Auto, fmt.Errorf("algorithm %q: %w", s, ErrUnsupportedAlgorithm)
	}
}

// Defaults.
const (
	// DefaultExactThreshold is the largest location count solved exactly
	// (10! ≈ 3.6M permutations).
	DefaultExactThreshold = 10

	// DefaultGenerations is the number of genetic steps.
	DefaultGenerations = 10000

	// DefaultMutationRate is the probability that a generation runs a
	// crossover step rather than a mutation step.
	DefaultMutationRate = 0.2

	// DefaultMetric and DefaultMode apply when a request leaves them unset.
	DefaultMetric = costmatrix.MinimizeTime
	DefaultMode   = costmatrix.Driving
)

// Options configures selection and the solvers.
type Options struct {
	// Algo forces a strategy; Auto selects by location count.
	Algo Algorithm

	// ExactThreshold: counts in [2..ExactThreshold] are solved exactly.
	ExactThreshold int

	// Generations is the number of genetic steps (0 keeps the seeded population).
	Generations int

	// MutationRate in [0,1]: probability of a crossover step per generation.
	MutationRate float64

	// Seed for the per-solve RNG; 0 selects a fixed default seed.
	Seed int64

	// Parallelism bounds SolveAll; ≤ 0 means runtime.NumCPU().
	Parallelism int

	// Logger receives debug/warn events; nil disables logging.
	Logger *zerolog.Logger
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Algo:           Auto,
		ExactThreshold: DefaultExactThreshold,
		Generations:    DefaultGenerations,
		MutationRate:   DefaultMutationRate,
		Seed:           0,
		Parallelism:    runtime.NumCPU(),
	}
}

// logger returns the configured logger or a no-op one.
func (o Options) logger() *zerolog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	nop := zerolog.Nop()
	return &nop
}

// Result is the assembled outcome of one solve. Fields are unexported so the
// record stays immutable; accessors return copies.
type Result struct {
	algo   Algorithm
	order  []int
	locs   []waypoint.Location
	weight float64
	metric costmatrix.Metric
	mode   costmatrix.TravelMode
	matrix *costmatrix.Matrix
}

// Algorithm returns the strategy that produced the result.
func (r Result) Algorithm() Algorithm { return r.algo }

// Order returns the optimized open tour; Order()[0] == 0.
func (r Result) Order() []int { return CopyTour(r.order) }

// ClosedOrder returns the tour with the start re-appended.
func (r Result) ClosedOrder() []int { return CloseTour(r.order) }

// Locations returns the optimized order mapped to locations, or nil when the
// matrix carried no locations.
func (r Result) Locations() []waypoint.Location {
	if r.locs == nil {
		return nil
	}
	return append([]waypoint.Location(nil), r.locs...)
}

// ClosedLocations returns Locations with the start re-appended.
func (r Result) ClosedLocations() []waypoint.Location {
	if len(r.locs) == 0 {
		return nil
	}
	out := make([]waypoint.Location, 0, len(r.locs)+1)
	out = append(out, r.locs...)
	return append(out, r.locs[0])
}

// Weight is the closed-cycle cost of Order under Metric.
func (r Result) Weight() float64 { return r.weight }

// Metric is the optimization metric used.
func (r Result) Metric() costmatrix.Metric { return r.metric }

// Mode is the travel mode used.
func (r Result) Mode() costmatrix.TravelMode { return r.mode }

// Matrix is the cost matrix the tour was optimized over.
func (r Result) Matrix() *costmatrix.Matrix { return r.matrix }

// Totals reports the closed-cycle time (seconds) and distance (metres) of
// the optimized order, independent of the metric that was minimized.
func (r Result) Totals() (seconds, metres float64, err error) {
	if r.matrix == nil {
		return 0, 0, fmt.Errorf("totals: %w", ErrMatrixUnavailable)
	}
	if seconds, err = r.matrix.EdgeCost(r.order, true, costmatrix.MinimizeTime); err != nil {
		return 0, 0, err
	}
	if metres, err = r.matrix.EdgeCost(r.order, true, costmatrix.MinimizeDistance); err != nil {
		return 0, 0, err
	}
	return seconds, metres, nil
}

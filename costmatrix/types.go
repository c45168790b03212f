// SPDX-License-Identifier: MIT

package costmatrix

import (
	"errors"
	"fmt"
)

var (
	// ErrMatrixUnavailable is returned when no usable matrix could be obtained
	// from the provider (transport error, error payload, empty or misshaped
	// resource).
	ErrMatrixUnavailable = errors.New("costmatrix: matrix unavailable")

	// ErrDimensionMismatch indicates a bad size or an index outside [0..n-1].
	ErrDimensionMismatch = errors.New("costmatrix: dimension mismatch")

	// ErrNegativeWeight indicates a negative travel cost.
	ErrNegativeWeight = errors.New("costmatrix: negative weight")

	// ErrNonZeroDiagonal indicates a non-zero self cost.
	ErrNonZeroDiagonal = errors.New("costmatrix: diagonal not zero")

	// ErrInvalidValue indicates a NaN cost.
	ErrInvalidValue = errors.New("costmatrix: NaN cost")

	// ErrUnsupportedMetric is returned when a metric has no grid or cannot be
	// served by the requested construction strategy.
	ErrUnsupportedMetric = errors.New("costmatrix: unsupported metric")
)

// Metric selects which quantity a tour minimizes.
type Metric int

const (
	// MetricUnspecified lets the caller fall back to the default (MinimizeTime).
	MetricUnspecified Metric = iota
	// MinimizeTime minimizes total travel time from the provider matrix.
	MinimizeTime
	// MinimizeDistance minimizes total travel distance from the provider matrix.
	MinimizeDistance
	// MinimizeStraightLine minimizes total great-circle distance, computed
	// locally without a provider.
	MinimizeStraightLine
)

// Valid reports whether m is a concrete, known metric.
func (m Metric) Valid() bool {
	return m >= MinimizeTime && m <= MinimizeStraightLine
}

// String implements fmt.Stringer.
func (m Metric) String() string {
	switch m {
	case MetricUnspecified:
		return "unspecified"
	case MinimizeTime:
		return "time"
	case MinimizeDistance:
		return "distance"
	case MinimizeStraightLine:
		return "straight-line"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// TravelMode mirrors the mode vocabulary of distance-matrix services.
type TravelMode int

const (
	// ModeUnspecified lets the caller fall back to the default (Driving).
	ModeUnspecified TravelMode = iota
	// Driving is road-vehicle travel; the only mode that accepts a departure time.
	Driving
	// Walking is pedestrian travel.
	Walking
	// Bicycling is bicycle travel.
	Bicycling
	// Transit is public transport.
	Transit
)

// Valid reports whether t is a concrete, known travel mode.
func (t TravelMode) Valid() bool {
	return t >= Driving && t <= Transit
}

// String returns the wire name used by distance-matrix services.
func (t TravelMode) String() string {
	switch t {
	case ModeUnspecified:
		return "unspecified"
	case Driving:
		return "driving"
	case Walking:
		return "walking"
	case Bicycling:
		return "bicycling"
	case Transit:
		return "transit"
	default:
		return fmt.Sprintf("TravelMode(%d)", int(t))
	}
}

// averageSpeed returns the speed (m/s) used to estimate the time grid of a
// geometric matrix.
func (t TravelMode) averageSpeed() float64 {
	switch t {
	case Walking:
		return 1.4
	case Bicycling:
		return 5.5
	case Transit:
		return 8.3
	default:
		return 11.1
	}
}

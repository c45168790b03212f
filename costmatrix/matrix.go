// SPDX-License-Identifier: MIT

// Package costmatrix - dense storage (row-major) & safe accessors.
//
// Purpose:
//   - One flat buffer per grid with the explicit index formula i*n + j.
//   - At/Set return errors instead of panicking on bad indices.
//   - EdgeCost is the single query surface used by the solvers.

package costmatrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tourplan/waypoint"
)

// roundScale controls cost stabilization precision (1e-9). Sums of the same
// edges in a different order must compare equal, otherwise tie-breaking
// between equal-weight tours would depend on summation order.
const roundScale = 1e9

// Matrix is an n×n pair of cost grids. The zero value is not usable; build
// one with New, FromRows, Geometric or Build.
type Matrix struct {
	n     int
	times []float64
	dists []float64
	locs  []waypoint.Location
	mode  TravelMode
}

// matrixErrorf wraps err with the method name and coordinates.
func matrixErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, i, j, err)
}

// New returns a zero-filled n×n matrix. n must be ≥ 1.
//
// Complexity: O(n²).
func New(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrDimensionMismatch)
	}
	return &Matrix{
		n:     n,
		times: make([]float64, n*n),
		dists: make([]float64, n*n),
	}, nil
}

// FromRows builds a matrix from square time and distance tables. Either
// table may be nil, in which case the corresponding grid stays zero. The
// result is validated.
//
// Complexity: O(n²).
func FromRows(times, dists [][]float64) (*Matrix, error) {
	n := len(times)
	if n == 0 {
		n = len(dists)
	}
	if (times != nil && len(times) != n) || (dists != nil && len(dists) != n) {
		return nil, fmt.Errorf("FromRows: %w", ErrDimensionMismatch)
	}
	m, err := New(n)
	if err != nil {
		return nil, err
	}
	if err = fillGrid(m.times, times, n); err != nil {
		return nil, fmt.Errorf("FromRows(times): %w", err)
	}
	if err = fillGrid(m.dists, dists, n); err != nil {
		return nil, fmt.Errorf("FromRows(dists): %w", err)
	}
	if err = m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func fillGrid(dst []float64, rows [][]float64, n int) error {
	if rows == nil {
		return nil
	}
	var i int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return fmt.Errorf("row %d has %d columns, want %d: %w", i, len(rows[i]), n, ErrDimensionMismatch)
		}
		copy(dst[i*n:(i+1)*n], rows[i])
	}
	return nil
}

// Size returns n.
func (m *Matrix) Size() int { return m.n }

// Mode returns the travel mode the matrix was built for (ModeUnspecified for
// hand-built matrices).
func (m *Matrix) Mode() TravelMode { return m.mode }

// Locations returns a copy of the locations the matrix was built for, or nil
// for hand-built matrices.
func (m *Matrix) Locations() []waypoint.Location {
	if m.locs == nil {
		return nil
	}
	out := make([]waypoint.Location, len(m.locs))
	copy(out, m.locs)
	return out
}

// WithLocations attaches the locations (len must equal Size) that row/column
// indices refer to, so solve results can map indices back.
func (m *Matrix) WithLocations(locs []waypoint.Location, mode TravelMode) error {
	if len(locs) != m.n {
		return fmt.Errorf("WithLocations: %d locations for size %d: %w", len(locs), m.n, ErrDimensionMismatch)
	}
	m.locs = make([]waypoint.Location, len(locs))
	copy(m.locs, locs)
	m.mode = mode
	return nil
}

// grid returns the backing buffer for metric. Straight-line distance is held
// in the distance grid.
func (m *Matrix) grid(metric Metric) ([]float64, error) {
	switch metric {
	case MinimizeTime:
		return m.times, nil
	case MinimizeDistance, MinimizeStraightLine:
		return m.dists, nil
	default:
		return nil, fmt.Errorf("metric %s: %w", metric, ErrUnsupportedMetric)
	}
}

// Set writes the time and distance of the edge i→j.
func (m *Matrix) Set(i, j int, seconds, metres float64) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return matrixErrorf("Set", i, j, ErrDimensionMismatch)
	}
	if math.IsNaN(seconds) || math.IsNaN(metres) {
		return matrixErrorf("Set", i, j, ErrInvalidValue)
	}
	if seconds < 0 || metres < 0 {
		return matrixErrorf("Set", i, j, ErrNegativeWeight)
	}
	m.times[i*m.n+j] = seconds
	m.dists[i*m.n+j] = metres
	return nil
}

// At returns the cost of the edge i→j under metric.
func (m *Matrix) At(i, j int, metric Metric) (float64, error) {
	g, err := m.grid(metric)
	if err != nil {
		return 0, err
	}
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, matrixErrorf("At", i, j, ErrDimensionMismatch)
	}
	return g[i*m.n+j], nil
}

// EdgeCost sums the costs of consecutive edges order[k]→order[k+1] under
// metric. When closeCycle is true the closing edge order[last]→order[0] is
// added too. An order with fewer than two indices costs 0.
//
// The sum is rounded to 1e-9 so that equal tours compare equal across
// summation orders.
//
// Complexity: O(len(order)).
func (m *Matrix) EdgeCost(order []int, closeCycle bool, metric Metric) (float64, error) {
	g, err := m.grid(metric)
	if err != nil {
		return 0, err
	}
	var (
		sum float64
		k   int
		u   int
		v   int
		n   = m.n
		L   = len(order)
	)
	for k = 0; k < L; k++ {
		u = order[k]
		if u < 0 || u >= n {
			return 0, fmt.Errorf("EdgeCost: index %d at position %d: %w", u, k, ErrDimensionMismatch)
		}
		if k+1 < L {
			v = order[k+1]
		} else if closeCycle && L > 1 {
			v = order[0]
		} else {
			break
		}
		if v < 0 || v >= n {
			return 0, fmt.Errorf("EdgeCost: index %d: %w", v, ErrDimensionMismatch)
		}
		sum += g[u*n+v]
	}
	return round1e9(sum), nil
}

// Validate enforces the matrix invariants on both grids: zero diagonal, no
// NaN, no negative values. +Inf off the diagonal is allowed (unreachable).
//
// Complexity: O(n²).
func (m *Matrix) Validate() error {
	if m == nil || m.n <= 0 || len(m.times) != m.n*m.n || len(m.dists) != m.n*m.n {
		return fmt.Errorf("Validate: %w", ErrDimensionMismatch)
	}
	var (
		i, j int
		t, d float64
	)
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			t = m.times[i*m.n+j]
			d = m.dists[i*m.n+j]
			if math.IsNaN(t) || math.IsNaN(d) {
				return matrixErrorf("Validate", i, j, ErrInvalidValue)
			}
			if t < 0 || d < 0 {
				return matrixErrorf("Validate", i, j, ErrNegativeWeight)
			}
			if i == j && (t != 0 || d != 0) {
				return matrixErrorf("Validate", i, j, ErrNonZeroDiagonal)
			}
		}
	}
	return nil
}

// round1e9 returns x rounded to 1e-9 absolute precision. Infinite sums are
// returned unchanged.
func round1e9(x float64) float64 {
	if math.IsInf(x, 0) {
		return x
	}
	return math.Round(x*roundScale) / roundScale
}

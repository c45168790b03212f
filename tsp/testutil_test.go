// Package tsp_test - helpers shared across *_test.go files in this package.
package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tourplan/costmatrix"
	"github.com/katalvlaran/tourplan/tsp"
	"github.com/katalvlaran/tourplan/waypoint"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet is the fixed seed used by determinism tests.
	seedDet = int64(42)

	// gensSmall keeps genetic tests fast on CI.
	gensSmall = 2000
)

// matrixFrom builds a matrix whose time and distance grids are both rows.
func matrixFrom(t testing.TB, rows [][]float64) *costmatrix.Matrix {
	t.Helper()
	m, err := costmatrix.FromRows(rows, rows)
	require.NoError(t, err)
	return m
}

// rippledCircle returns n points on a slightly perturbed circle. The
// perturbation avoids exact ties between mirrored tours.
func rippledCircle(n int) [][2]float64 {
	pts := make([][2]float64, n)
	var (
		i     int
		th, r float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = 1.0 + 0.02*float64((i*5)%7)
		pts[i] = [2]float64{r * math.Cos(th), r * math.Sin(th)}
	}
	return pts
}

// euclid builds a symmetric Euclidean matrix with zero diagonal.
func euclid(t testing.TB, pts [][2]float64) *costmatrix.Matrix {
	t.Helper()
	n := len(pts)
	a := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		a[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i != j {
				a[i][j] = math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
			}
		}
	}
	return matrixFrom(t, a)
}

// euclidAsym adds bias to every edge i→j with i > j.
func euclidAsym(t testing.TB, pts [][2]float64, bias float64) *costmatrix.Matrix {
	t.Helper()
	n := len(pts)
	a := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		a[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			a[i][j] = math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
			if i > j {
				a[i][j] += bias
			}
		}
	}
	return matrixFrom(t, a)
}

// circleLocations returns n coordinate stops around Berlin's centre.
func circleLocations(n int) []waypoint.Location {
	out := make([]waypoint.Location, n)
	for i, p := range rippledCircle(n) {
		out[i] = waypoint.FromLatLng(52.52+0.05*p[1], 13.405+0.08*p[0])
	}
	return out
}

// bruteForceMin enumerates every permutation of 1..n-1 behind 0
// recursively (independent of NextPermutation) and returns the minimum
// closed-cycle weight.
func bruteForceMin(t testing.TB, m *costmatrix.Matrix, metric costmatrix.Metric) float64 {
	t.Helper()
	n := m.Size()
	perm := make([]int, n)
	used := make([]bool, n)
	used[0] = true
	best := math.Inf(1)

	var rec func(pos int)
	rec = func(pos int) {
		if pos == n {
			w, err := m.EdgeCost(perm, true, metric)
			require.NoError(t, err)
			if w < best {
				best = w
			}
			return
		}
		for v := 1; v < n; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			perm[pos] = v
			rec(pos + 1)
			used[v] = false
		}
	}
	rec(1)
	return best
}

// requirePermutation asserts tour is a permutation of 0..n-1.
func requirePermutation(t testing.TB, tour []int, n int) {
	t.Helper()
	require.NoError(t, tsp.ValidatePermutation(tour, n), "tour %v", tour)
}

// genOpts returns options forcing the genetic solver.
func genOpts(seed int64, generations int) tsp.Options {
	opts := tsp.DefaultOptions()
	opts.Algo = tsp.Genetic
	opts.Seed = seed
	opts.Generations = generations
	return opts
}

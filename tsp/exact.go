// Package tsp - exact permutation solver.
//
// Every ordering with index 0 pinned to the front is enumerated in
// lexicographic order and its closed-cycle weight evaluated. Because 0 is
// the smallest index, the first permutation that moves it away from
// position 0 ends the fixed-start block, so enumeration stops there after
// (n-1)! candidates.
//
// Time complexity:  O(n · (n-1)!)
// Memory complexity: O(n)
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tourplan/costmatrix"
)

type exactSolver struct{}

// NewExact returns the brute-force permutation solver. It is deterministic:
// among equal-weight tours the lexicographically first one wins.
func NewExact() Solver { return exactSolver{} }

func (exactSolver) Algorithm() Algorithm { return Exact }

func (exactSolver) Solve(m *costmatrix.Matrix, metric costmatrix.Metric) ([]int, float64, error) {
	n := m.Size()
	if n < 2 {
		return nil, 0, fmt.Errorf("exact: %d locations: %w", n, ErrInsufficientInput)
	}

	perm := make([]int, n)
	var i int
	for i = range perm {
		perm[i] = i
	}

	best := CopyTour(perm)
	bestW, err := m.EdgeCost(perm, true, metric)
	if err != nil {
		return nil, 0, err
	}

	var w float64
	for NextPermutation(perm) {
		if perm[0] != 0 {
			break
		}
		if w, err = m.EdgeCost(perm, true, metric); err != nil {
			return nil, 0, err
		}
		// strict: the first tour seen at the minimum is kept
		if w < bestW {
			bestW = w
			copy(best, perm)
		}
	}
	return best, bestW, nil
}

// NextPermutation rearranges p into the lexicographically next permutation
// and reports whether one existed. When p is the last (non-increasing)
// permutation it is left unchanged and false is returned.
//
// Algorithm: find the longest non-increasing suffix, swap its left
// neighbour (the pivot) with the rightmost suffix element greater than it,
// then reverse the suffix.
//
// Complexity: O(n).
func NextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]

	var l, r int
	for l, r = i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
	return true
}

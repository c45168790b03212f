// Package tsp - partially-mapped crossover (PMX).
//
// Each child keeps the segment [cp1, cp2) of the opposite parent, then tries
// to keep its own parent's value everywhere else. Positions whose own value
// is already taken by the segment receive a uniformly random value among
// those still unused, so every child is a permutation.
package tsp

import (
	"fmt"
	"math/rand"
)

// pmxScratch holds reusable buffers so the genetic loop does not allocate.
type pmxScratch struct {
	used []bool
	free []int
}

func newPMXScratch(n int) *pmxScratch {
	return &pmxScratch{used: make([]bool, n), free: make([]int, 0, n)}
}

// PMX crosses parents p1 and p2 between cut points cp1 < cp2 (0 ≤ cp1,
// cp2 ≤ n) and writes the offspring into c1 (derived from p1, segment from
// p2) and c2 (derived from p2, segment from p1). All four slices must have
// the same length n and both parents must be permutations of 0..n-1.
//
// Complexity: O(n) time, O(n) scratch space.
func PMX(p1, p2 []int, cp1, cp2 int, c1, c2 []int, rng *rand.Rand) error {
	n := len(p1)
	if len(p2) != n || len(c1) != n || len(c2) != n {
		return fmt.Errorf("pmx: length mismatch: %w", ErrInvalidTour)
	}
	if cp1 < 0 || cp2 > n || cp1 >= cp2 {
		return fmt.Errorf("pmx: cut points (%d,%d) for n=%d: %w", cp1, cp2, n, ErrInvalidTour)
	}
	if err := ValidatePermutation(p1, n); err != nil {
		return err
	}
	if err := ValidatePermutation(p2, n); err != nil {
		return err
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}
	s := newPMXScratch(n)
	pmxChild(p1, p2, cp1, cp2, c1, s, rng)
	pmxChild(p2, p1, cp1, cp2, c2, s, rng)
	return nil
}

// pmxChild builds one offspring of own with other's segment. Inputs are
// trusted.
func pmxChild(own, other []int, cp1, cp2 int, child []int, s *pmxScratch, rng *rand.Rand) {
	var (
		n = len(own)
		i int
		k int
		v int
	)
	for i = 0; i < n; i++ {
		s.used[i] = false
		child[i] = -1
	}

	// 1) segment from the opposite parent
	for i = cp1; i < cp2; i++ {
		v = other[i]
		child[i] = v
		s.used[v] = true
	}

	// 2) own values where still free
	for i = 0; i < n; i++ {
		if i >= cp1 && i < cp2 {
			continue
		}
		v = own[i]
		if !s.used[v] {
			child[i] = v
			s.used[v] = true
		}
	}

	// 3) random unused values for the rest
	s.free = s.free[:0]
	for v = 0; v < n; v++ {
		if !s.used[v] {
			s.free = append(s.free, v)
		}
	}
	for i = 0; i < n; i++ {
		if child[i] != -1 {
			continue
		}
		k = rng.Intn(len(s.free))
		child[i] = s.free[k]
		s.free[k] = s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
	}
}

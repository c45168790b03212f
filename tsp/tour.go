// Package tsp - tour utilities shared by both solvers and the result
// assembler.
//
// Provided helpers:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - RotateToStart: cyclic shift so the tour starts at a given vertex.
//   - CloseTour: append the start to represent the closed loop.
//   - IndexOf: locate a vertex in the open part of a tour.
//   - CopyTour: independent copy of a tour slice.
//   - EqualCycles: equality under rotation and, optionally, reflection.
//
// Design:
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n) time for every helper.
package tsp

import "fmt"

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return fmt.Errorf("permutation length %d, want %d: %w", len(perm), n, ErrInvalidTour)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("permutation position %d holds %d: %w", i, v, ErrInvalidTour)
		}
		seen[v] = true
	}
	return nil
}

// openLen returns the number of distinct vertices in tour, treating a tour
// whose first and last entries match as closed.
func openLen(tour []int) int {
	if len(tour) > 1 && tour[0] == tour[len(tour)-1] {
		return len(tour) - 1
	}
	return len(tour)
}

// IndexOf returns the position of v within the open part of tour, or -1.
//
// Complexity: O(n).
func IndexOf(tour []int, v int) int {
	var (
		n = openLen(tour)
		i int
	)
	for i = 0; i < n; i++ {
		if tour[i] == v {
			return i
		}
	}
	return -1
}

// RotateToStart returns a fresh open tour (len n) shifted so out[0]==start.
// The input may be open (len n) or closed (len n+1). Tours are cycles, so
// every rotation represents the same route. If start is already first the
// result is a plain copy.
//
// Complexity: O(n) time, O(n) space.
func RotateToStart(tour []int, start int) ([]int, error) {
	pivot := IndexOf(tour, start)
	if pivot == -1 {
		return nil, fmt.Errorf("rotate: start %d not in tour %v: %w", start, tour, ErrInvalidTour)
	}
	var (
		n   = openLen(tour)
		out = make([]int, n)
		i   int
	)
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}
	return out, nil
}

// CloseTour returns a copy of the open tour with tour[0] appended.
// An empty tour stays empty.
func CloseTour(tour []int) []int {
	if len(tour) == 0 {
		return nil
	}
	out := make([]int, len(tour)+1)
	copy(out, tour)
	out[len(tour)] = tour[0]
	return out
}

// CopyTour returns an independent copy of the input tour slice.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)
	return out
}

// EqualCycles reports whether two open tours describe the same cycle up to
// rotation. With reflect, the reversed direction also matches (symmetric
// instances).
//
// Complexity: O(n).
func EqualCycles(a, b []int, reflect bool) bool {
	if len(a) != len(b) {
		return false
	}
	n := len(a)
	if n == 0 {
		return true
	}
	p := IndexOf(b, a[0])
	if p == -1 {
		return false
	}

	var (
		i       int
		forward = true
	)
	for i = 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			forward = false
			break
		}
	}
	if forward || !reflect {
		return forward
	}
	for i = 0; i < n; i++ {
		if a[i] != b[((p-i)%n+n)%n] {
			return false
		}
	}
	return true
}

package waypoint

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Dedupe returns the first-seen unique locations of in, preserving order.
// Locations are the same stop when their address and coordinates match; the
// first entry's Name is kept. The input slice is not modified.
//
// It fails with ErrInsufficientInput when fewer than two unique locations
// remain.
//
// Complexity: O(n) time, O(n) space.
func Dedupe(in []Location) ([]Location, error) {
	seen := make(map[key]struct{}, len(in))
	out := make([]Location, 0, len(in))

	var (
		l  Location
		k  key
		ok bool
	)
	for _, l = range in {
		k = l.key()
		if _, ok = seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, l)
	}

	if len(out) < 2 {
		return nil, fmt.Errorf("dedupe: %d unique of %d: %w", len(out), len(in), ErrInsufficientInput)
	}
	return out, nil
}

// Points extracts the coordinates of locs in order. It fails with
// ErrNoCoordinates (wrapped with the offending index) if any location is
// address-only.
func Points(locs []Location) ([]orb.Point, error) {
	out := make([]orb.Point, len(locs))
	for i := range locs {
		if !locs[i].HasPoint {
			return nil, fmt.Errorf("location %d (%q): %w", i, locs[i].Address, ErrNoCoordinates)
		}
		out[i] = locs[i].Point
	}
	return out, nil
}

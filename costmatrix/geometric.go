// SPDX-License-Identifier: MIT

package costmatrix

import (
	"fmt"

	"github.com/paulmach/orb/geo"

	"github.com/katalvlaran/tourplan/waypoint"
)

// Geometric computes every pairwise great-circle (haversine) distance
// between locs directly from their coordinates. The result is symmetric.
// The time grid is an estimate: distance divided by the average speed of
// mode (ModeUnspecified is treated as Driving).
//
// No departure time is involved: straight-line costs do not depend on it.
//
// Errors: ErrDimensionMismatch for an empty input, waypoint.ErrNoCoordinates
// if any location lacks coordinates.
//
// Complexity: O(n²) time, O(n²) space.
func Geometric(locs []waypoint.Location, mode TravelMode) (*Matrix, error) {
	pts, err := waypoint.Points(locs)
	if err != nil {
		return nil, fmt.Errorf("Geometric: %w", err)
	}
	m, err := New(len(pts))
	if err != nil {
		return nil, err
	}
	if !mode.Valid() {
		mode = Driving
	}

	var (
		n     = len(pts)
		speed = mode.averageSpeed()
		i, j  int
		d     float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = geo.DistanceHaversine(pts[i], pts[j])
			m.dists[i*n+j] = d
			m.dists[j*n+i] = d
			m.times[i*n+j] = d / speed
			m.times[j*n+i] = d / speed
		}
	}
	m.locs = append([]waypoint.Location(nil), locs...)
	m.mode = mode
	return m, nil
}

// Package tourplan plans round trips: given a set of stops, it returns the
// order that visits each one exactly once and comes back to the start with
// the least total travel time, road distance or straight-line distance.
//
// Layout:
//
//	waypoint/   - stop type (address or coordinate) and first-seen deduplication
//	costmatrix/ - dense time/distance matrix, provider-backed and haversine builders
//	tsp/        - algorithm selection, exact and genetic solvers, result assembly
//	config/     - viper-backed settings and zerolog logger construction
//	examples/   - runnable program
//
// Quick start:
//
//	res, err := tsp.Solve(ctx, tsp.Request{
//		Locations: stops,
//		Metric:    costmatrix.MinimizeStraightLine,
//	}, nil, tsp.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	for _, loc := range res.ClosedLocations() {
//		fmt.Println(loc)
//	}
//
// Up to ten unique stops are solved exactly by enumerating every tour with a
// fixed start; larger sets use a seeded genetic heuristic whose output is
// reproducible for a given Options.Seed.
package tourplan

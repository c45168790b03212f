// Package tsp orders a set of stops into a minimum-weight round trip over a
// precomputed cost matrix.
//
// Two strategies sit behind the Solver interface:
//
//	Exact    enumerates every ordering with stop 0 pinned to the front
//	         (NextPermutation) and keeps the first minimum seen.
//	         O(n·(n-1)!); used for 2 ≤ n ≤ 10 unique stops by default.
//
//	Genetic  evolves a population of n tours with binary tournaments,
//	         partially-mapped crossover (PMX), swap mutation and elitist
//	         replacement for a fixed number of generations.
//	         O(G·n) after an O(n²) initialization; deterministic per seed.
//
// Solve is the full pipeline (deduplicate, build matrix, select, solve,
// normalize). SolveMatrix accepts a pre-built costmatrix.Matrix. SolveAll
// runs independent requests concurrently with per-request RNG streams.
//
// Costs come from package costmatrix. +Inf marks an unreachable pair; such
// tours weigh +Inf and are never preferred over a finite tour.
//
// Every returned order starts at index 0 (the first unique stop). Use
// Result.ClosedOrder when the consumer needs the start repeated at the end.
package tsp

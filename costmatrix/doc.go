// SPDX-License-Identifier: MIT

// Package costmatrix holds the pairwise travel costs a tour is optimized over.
//
// A Matrix is n×n and carries two grids in row-major order: travel time
// (seconds) and travel distance (metres). Row i is "from location i",
// column j is "to location j"; the grids may be asymmetric. +Inf marks an
// unreachable pair. NaN, negative values and a non-zero diagonal are
// rejected.
//
// Two construction strategies exist:
//
//   - Geometric: haversine great-circle distances computed directly from
//     coordinates (always symmetric, no collaborator involved).
//   - Build: a full matrix requested from a Provider, the transport-cost
//     collaborator (a distance-matrix service client living outside this
//     module). Any provider failure surfaces as ErrMatrixUnavailable.
//
// Once built, solvers only read a Matrix through At and EdgeCost.
//
// Complexity quicksheet:
//   - New: O(n²) zero-init; At/Set: O(1); EdgeCost: O(len(order));
//     Geometric: O(n²) haversine evaluations; Validate: O(n²).
package costmatrix

// Package graph models a delivery instance as a complete weighted directed
// graph over plane nodes, filtered and scored against polygonal no-fly zones,
// and provides the single route evaluator every solver shares.
//
// # What & Why
//
// A Graph is built once per instance and is immutable afterwards: any number
// of solver invocations may read it concurrently without synchronization.
// Edges exist for every ordered pair i ≠ j; an edge whose segment crosses a
// no-fly zone is retained but marked invalid so solvers can detect
// infeasibility instead of chasing missing entries.
//
// # Cost model
//
//   - distance: Euclidean length of the edge segment;
//   - risk ∈ [0,1]: 1 below 1 unit of zone clearance, 0 above 20 units,
//     linear in between;
//   - battery: distance / 100 units, out of a full charge of 100 units.
//
// EvaluateRoute simulates the battery along the route: a post-edge level
// below 20 forces a recharge event (reset to full); arriving at a charging
// station below 80 tops up to full without counting as a recharge.
//
// # Input Requirements
//
// Node ids must form {0..N−1} with the hub at id 0. Polygons need ≥3
// vertices. The JSON codec enforces these invariants with sentinel errors.
package graph

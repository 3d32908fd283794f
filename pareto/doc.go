// Package pareto implements the multi-objective bookkeeping of the routing
// engine: the three-objective vector (distance, risk, recharges), the
// dominance order, the non-dominated front with monotone insertion, and the
// two scalar front-quality metrics (2-D hypervolume and spread).
//
// # Invariants
//
// A Front upholds, after every public operation:
//  1. no two members dominate one another;
//  2. infeasible solutions are never admitted;
//  3. at most one member per distinct objective triple (strict duplicates
//     are rejected on Add).
//
// # Determinism & Stability
//
// Objective scalars are stabilized to 1e-9 on construction (Round) so equal
// routes compare equal across platforms. Metric sweeps sort by distance with
// risk as tie-break, making Hypervolume and Spread pure functions of the
// member set.
//
// Fronts are not safe for concurrent mutation; solvers own their front until
// solve returns (callers then receive the only reference).
package pareto

// Package heuristic provides the constructive solver: a battery of geometric
// seed tours, each polished by first-improvement 2-opt, feeding one shared
// non-dominated front.
//
// # Constructions
//
//   - Weighted nearest-neighbor over the scalarization grid
//     (w_d, w_r) ∈ {0.0, 0.2, …, 1.0}², w_d + w_r ≤ 1 (21 runs);
//   - cheapest insertion with six (w_d, w_r) pairs, seeded by the hub and the
//     two nodes farthest from it;
//   - angular sweep from twelve start angles in both directions (24 runs);
//   - convex-hull insertion (hull boundary first, interior nodes by cheapest
//     distance delta).
//
// Constructions that dead-end (no valid edge onward) fall through to an
// arbitrary unvisited node: the tour is still scored, marked infeasible, and
// may be repaired by the 2-opt pass, which only accepts fully valid proposals.
//
// # Determinism
//
// No randomness anywhere: grids and angle sets are fixed, every tie breaks on
// the lowest node id, 2-opt scans in canonical order with first-improvement
// restarts. Two runs on the same graph return identical fronts.
//
// Complexity: O(R·N²) construction work for R ≈ 50 seeds plus the 2-opt
// passes (O(N²) scans per accepted move).
package heuristic

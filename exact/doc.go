// Package exact provides the branch-and-bound solver: exhaustive depth-first
// enumeration of Hamiltonian circuits from the hub with Pareto-dominance
// pruning against an MST bound (a lower bound on the remaining distance; its
// risk component is aggregated along the tree edges, not a lower bound).
//
// # What & Why
//
// For small instances the engine returns the exact Pareto front under the
// shared cost model: every non-dominated feasible circuit and nothing else.
// Larger instances degrade gracefully under a node budget - the front
// discovered so far is always consistent.
//
// # Search
//
//   - Branching: from the current tail, unvisited neighbors with a valid edge,
//     in ascending edge distance (input-id tiebreak). Cheap-neighbor-first
//     tightens incumbents early and keeps runs reproducible.
//   - Per-step updates mirror graph.EvaluateRoute (threshold recharge, charging
//     top-up). The closing edge counts a recharge only when the level would go
//     below zero; intermediate steps use the usual threshold.
//   - Bound: Prim MST over {tail} ∪ {hub} ∪ unvisited on valid edges keyed by
//     distance, with risk aggregated along the chosen edges; recharges carry
//     over unchanged. A subtree is pruned when any front member dominates the
//     bound, or when the MST cannot connect (no valid completion exists).
//
// # Complexity
//
// Worst case exponential in N (exact search). Per node: O(N²) bound +
// O(N log N) branching order. Memory: Θ(N) recursion state.
package exact

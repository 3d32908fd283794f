// Package nsga implements the evolutionary solver: NSGA-II over the
// permutation encoding of delivery circuits.
//
// # What & Why
//
// The exact solver is exponential and the constructive battery explores a
// fixed seed set; NSGA-II covers the middle ground, evolving a population of
// circuits under the three-objective Pareto order with elitist (μ+λ)
// survival.
//
// # Generation loop
//
//  1. Fast non-dominated sort assigns ranks; crowding distances are computed
//     per rank class.
//  2. Binary tournaments (lower rank, then larger crowding) select parents;
//     order crossover (OX) on the route interior produces offspring, a
//     three-op mutation (swap / segment reversal / reinsertion) perturbs
//     them, and repair restores the permutation property.
//  3. Parents and offspring merge (2P), are re-sorted, and truncate back to P
//     by (rank ascending, crowding descending).
//
// The returned front admits every feasible rank-0 individual of the final
// population; a degenerate instance with no feasible rank-0 member falls back
// to admitting every feasible individual.
//
// # Determinism
//
// Every random draw - initial permutations, tournament picks, crossover
// cuts, mutation choices - comes from one seeded stream (Seed==0 maps to a
// fixed default), so runs are reproducible bit-for-bit.
//
// Route evaluations are memoized in a bounded LRU keyed by the packed
// interior, since identical permutations recur across generations.
//
// Memory: Θ(P·N) population plus Θ(P²) domination lists during sorting.
package nsga

// Package nsga - the NSGA-II generation loop and public entrypoint.
package nsga

import (
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/droneroute/graph"
	"github.com/katalvlaran/droneroute/pareto"
)

// Solve evolves a population of circuits over g and returns the admitted
// final front.
func Solve(g *graph.Graph, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	front := pareto.NewFront()

	// Trivial instance: the hub alone.
	if g.N() == 1 {
		sol, err := g.EvaluateRoute([]int{0})
		if err != nil {
			return Result{}, err
		}
		front.Add(sol)

		return Result{Front: front}, nil
	}

	ev, err := newEvaluator(g, evalCacheFactor*opts.Population)
	if err != nil {
		return Result{}, err
	}

	var (
		n   = g.N()
		rng = rngFromSeed(opts.Seed)
		pop = make([]pareto.Solution, 0, opts.Population)
		i   int
	)

	// Initialization: P uniformly random interiors, each evaluated.
	for i = 0; i < opts.Population; i++ {
		sol, eerr := ev.evaluate(randomInterior(n, rng))
		if eerr != nil {
			return Result{}, eerr
		}
		pop = append(pop, sol)
	}

	log.Debug("nsga: evolution start",
		zap.Int("population", opts.Population),
		zap.Int("generations", opts.Generations),
		zap.Int("route_nodes", n))

	var gen int
	for gen = 0; gen < opts.Generations; gen++ {
		// Rank and crowd the current population.
		fronts := rankPopulation(pop)
		var f int
		for f = 0; f < len(fronts); f++ {
			assignCrowding(pop, fronts[f])
		}

		// Produce P offspring.
		var (
			ranks    = make([]int, len(pop))
			crowding = make([]float64, len(pop))
		)
		for i = 0; i < len(pop); i++ {
			ranks[i] = pop[i].Rank
			crowding[i] = pop[i].Crowding
		}

		offspring := make([]pareto.Solution, 0, opts.Population)
		for i = 0; i < opts.Population; i++ {
			var (
				p1 = tournament(ranks, crowding, rng)
				p2 = tournament(ranks, crowding, rng)
			)

			child := interiorOf(pop[p1].Route)
			if rng.Float64() < opts.CrossoverRate {
				child = orderCrossover(interiorOf(pop[p1].Route), interiorOf(pop[p2].Route), rng)
			}
			if rng.Float64() < opts.MutationRate {
				mutate(child, rng)
			}
			child = repair(child, n)

			sol, eerr := ev.evaluate(child)
			if eerr != nil {
				return Result{}, eerr
			}
			offspring = append(offspring, sol)
		}

		// Elitist merge and truncation back to P.
		pop = truncate(append(pop, offspring...), opts.Population)
	}

	// Final admission: feasible rank-0 members, with a feasible-only fallback
	// for degenerate instances.
	rankPopulation(pop)
	for i = 0; i < len(pop); i++ {
		if pop[i].Rank == 0 && pop[i].Feasible {
			front.Add(pop[i])
		}
	}
	if front.Size() == 0 {
		for i = 0; i < len(pop); i++ {
			if pop[i].Feasible {
				front.Add(pop[i])
			}
		}
	}

	log.Info("nsga: evolution done",
		zap.Int("evaluations", ev.misses),
		zap.Int("front", front.Size()))

	return Result{Front: front, Evaluations: ev.misses}, nil
}

// interiorOf returns a copy of the route without its hub endpoints.
func interiorOf(route []int) []int {
	if len(route) <= 2 {
		return []int{}
	}

	return append([]int(nil), route[1:len(route)-1]...)
}

// truncate re-sorts the merged population and keeps the best size members by
// (rank ascending, crowding descending).
func truncate(merged []pareto.Solution, size int) []pareto.Solution {
	fronts := rankPopulation(merged)

	var f int
	for f = 0; f < len(fronts); f++ {
		assignCrowding(merged, fronts[f])
	}

	idx := make([]int, len(merged))
	var i int
	for i = 0; i < len(merged); i++ {
		idx[i] = i
	}
	sort.SliceStable(idx, func(x, y int) bool {
		var (
			a = merged[idx[x]]
			b = merged[idx[y]]
		)
		if a.Rank != b.Rank {
			return a.Rank < b.Rank
		}
		if a.Crowding != b.Crowding {
			return a.Crowding > b.Crowding
		}

		return false
	})

	out := make([]pareto.Solution, 0, size)
	for i = 0; i < size && i < len(idx); i++ {
		out = append(out, merged[idx[i]])
	}

	return out
}

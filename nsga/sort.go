// Package nsga - fast non-dominated sort and crowding distances.
//
// The sort follows the canonical NSGA-II peeling scheme: count dominators per
// individual, peel the zero-counter front, decrement through the dominated
// lists, repeat. Crowding runs per rank class and per objective axis, with
// infinite distance at the extremes.
//
// Complexity: O(3·P²) dominance comparisons, O(P log P) per crowding axis.
package nsga

import (
	"math"
	"sort"

	"github.com/katalvlaran/droneroute/pareto"
)

// rankPopulation assigns Rank to every individual and returns the rank
// classes in order (fronts[0] = non-dominated).
func rankPopulation(pop []pareto.Solution) [][]int {
	var (
		n          = len(pop)
		dominates  = make([][]int, n)
		dominators = make([]int, n)
		current    = make([]int, 0, n)
		i, j       int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if pop[i].Dominates(pop[j]) {
				dominates[i] = append(dominates[i], j)
			} else if pop[j].Dominates(pop[i]) {
				dominators[i]++
			}
		}
		if dominators[i] == 0 {
			pop[i].Rank = 0
			current = append(current, i)
		}
	}

	fronts := make([][]int, 0, 4)
	for len(current) > 0 {
		fronts = append(fronts, current)

		next := make([]int, 0)
		for _, i = range current {
			for _, j = range dominates[i] {
				dominators[j]--
				if dominators[j] == 0 {
					pop[j].Rank = len(fronts)
					next = append(next, j)
				}
			}
		}
		current = next
	}

	return fronts
}

// assignCrowding computes crowding distances within one rank class.
func assignCrowding(pop []pareto.Solution, class []int) {
	m := len(class)
	if m == 0 {
		return
	}
	if m <= 2 {
		var k int
		for _, k = range class {
			pop[k].Crowding = math.Inf(1)
		}

		return
	}

	var k int
	for _, k = range class {
		pop[k].Crowding = 0
	}

	idx := make([]int, m)
	var axis pareto.Axis
	for _, axis = range pareto.Axes {
		copy(idx, class)
		a := axis
		sort.Slice(idx, func(x, y int) bool {
			return pop[idx[x]].Objectives.Project(a) < pop[idx[y]].Objectives.Project(a)
		})

		var (
			lo      = pop[idx[0]].Objectives.Project(a)
			hi      = pop[idx[m-1]].Objectives.Project(a)
			axRange = hi - lo
		)
		pop[idx[0]].Crowding = math.Inf(1)
		pop[idx[m-1]].Crowding = math.Inf(1)
		if axRange == 0 {
			continue
		}

		var p int
		for p = 1; p < m-1; p++ {
			gap := pop[idx[p+1]].Objectives.Project(a) - pop[idx[p-1]].Objectives.Project(a)
			pop[idx[p]].Crowding += gap / axRange
		}
	}
}

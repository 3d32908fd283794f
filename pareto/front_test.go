// Package pareto_test exercises dominance, front invariants, and merging.
package pareto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/droneroute/pareto"
)

// sol builds a feasible solution with the given objectives.
func sol(dist, risk float64, rech int) pareto.Solution {
	return pareto.Solution{
		Route:      []int{0, 1, 0},
		Objectives: pareto.NewObjectives(dist, risk, rech),
		Feasible:   true,
	}
}

func TestObjectivesDominates(t *testing.T) {
	a := pareto.NewObjectives(100, 5, 0)

	assert.True(t, a.Dominates(pareto.NewObjectives(120, 5, 0)), "better distance, equal rest")
	assert.True(t, a.Dominates(pareto.NewObjectives(100, 6, 1)))
	assert.False(t, a.Dominates(a), "no strict improvement")
	assert.False(t, a.Dominates(pareto.NewObjectives(90, 9, 0)), "trade-off is incomparable")
	assert.False(t, pareto.NewObjectives(90, 9, 0).Dominates(a))
}

func TestSolutionDominates_Feasibility(t *testing.T) {
	var (
		feasible   = sol(100, 5, 0)
		infeasible = sol(1, 0, 0)
	)
	infeasible.Feasible = false

	assert.True(t, feasible.Dominates(infeasible), "feasible beats any infeasible")
	assert.False(t, infeasible.Dominates(feasible))
	assert.False(t, infeasible.Dominates(infeasible))
}

func TestFrontAdd_InvariantMutualNonDominance(t *testing.T) {
	f := pareto.NewFront()

	require.True(t, f.Add(sol(200, 5, 0)))
	require.True(t, f.Add(sol(100, 10, 0)), "incomparable member joins")
	require.Equal(t, 2, f.Size())

	// A dominating solution evicts everything it dominates.
	require.True(t, f.Add(sol(100, 5, 0)))
	assert.Equal(t, 1, f.Size())

	// A dominated offer is rejected outright.
	assert.False(t, f.Add(sol(150, 6, 0)))
	assert.Equal(t, 1, f.Size())

	// Pairwise non-dominance holds after every operation.
	members := f.Members()
	var i, j int
	for i = 0; i < len(members); i++ {
		for j = 0; j < len(members); j++ {
			if i != j {
				assert.False(t, members[i].Dominates(members[j]))
			}
		}
	}
}

func TestFrontAdd_RejectsInfeasibleAndDuplicates(t *testing.T) {
	f := pareto.NewFront()

	bad := sol(10, 0, 0)
	bad.Feasible = false
	assert.False(t, f.Add(bad), "infeasible never enters")
	assert.Zero(t, f.Size())

	require.True(t, f.Add(sol(100, 5, 0)))
	assert.False(t, f.Add(sol(100, 5, 0)), "strict duplicate rejected")
	assert.Equal(t, 1, f.Size())
}

func TestFrontMerge_ClonesMembers(t *testing.T) {
	var (
		a = pareto.NewFront()
		b = pareto.NewFront()
	)
	require.True(t, a.Add(sol(100, 10, 0)))
	require.True(t, b.Add(sol(150, 2, 0)))
	require.True(t, b.Add(sol(90, 20, 1)))

	a.Merge(b)
	assert.Equal(t, 3, a.Size())

	// Mutating the source front's route must not leak into the merged copy.
	b.Members()[0].Route[0] = 99
	var m pareto.Solution
	for _, m = range a.Members() {
		assert.Equal(t, 0, m.Route[0])
	}

	a.Merge(nil) // no-op
	assert.Equal(t, 3, a.Size())
}

func TestProjectAxes(t *testing.T) {
	o := pareto.NewObjectives(12.5, 0.25, 3)

	assert.Equal(t, 12.5, o.Project(pareto.Distance))
	assert.Equal(t, 0.25, o.Project(pareto.Risk))
	assert.Equal(t, 3.0, o.Project(pareto.Recharges))
}

// Package exact_test exercises the branch-and-bound solver via the public
// API. Focus: exactness on small instances (cross-checked against brute-force
// enumeration), boundary instances, pruning diagnostics, and the node budget.
package exact_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/droneroute/exact"
	"github.com/katalvlaran/droneroute/geom"
	"github.com/katalvlaran/droneroute/graph"
	"github.com/katalvlaran/droneroute/pareto"
)

// squareInstance is the reference layout: hub (50,50) and the four corners of
// a 100×100 map, no zones.
func squareInstance(t *testing.T) *graph.Graph {
	t.Helper()

	g, err := graph.Build([]graph.Node{
		{ID: 0, Pos: geom.Point{X: 50, Y: 50}, Hub: true},
		{ID: 1, Pos: geom.Point{X: 0, Y: 0}},
		{ID: 2, Pos: geom.Point{X: 100, Y: 0}},
		{ID: 3, Pos: geom.Point{X: 100, Y: 100}},
		{ID: 4, Pos: geom.Point{X: 0, Y: 100}},
	}, nil, 100)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	return g
}

// bruteForceFront enumerates every Hamiltonian circuit through the shared
// evaluator and collects the non-dominated feasible set.
func bruteForceFront(t *testing.T, g *graph.Graph) *pareto.Front {
	t.Helper()

	var (
		n     = g.N()
		front = pareto.NewFront()
		perm  = make([]int, 0, n-1)
		used  = make([]bool, n)
	)

	var recurse func()
	recurse = func() {
		if len(perm) == n-1 {
			route := make([]int, 0, n+1)
			route = append(route, 0)
			route = append(route, perm...)
			route = append(route, 0)
			sol, err := g.EvaluateRoute(route)
			if err != nil {
				t.Fatalf("EvaluateRoute(%v): %v", route, err)
			}
			front.Add(sol)

			return
		}
		var v int
		for v = 1; v < n; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			perm = append(perm, v)
			recurse()
			perm = perm[:len(perm)-1]
			used[v] = false
		}
	}
	recurse()

	return front
}

func TestSolve_SquareSingletonFront(t *testing.T) {
	res, err := exact.Solve(squareInstance(t), exact.DefaultOptions())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Front.Size() != 1 {
		t.Fatalf("front size = %d, want 1 (rotations share one objective triple)", res.Front.Size())
	}

	// Three square sides plus the two hub diagonals to adjacent corners.
	var (
		want = 300 + 100*math.Sqrt2
		got  = res.Front.Members()[0].Objectives
	)
	if math.Abs(got.Distance-want) > 1e-6 {
		t.Fatalf("distance = %.6f, want %.6f", got.Distance, want)
	}
	if got.Risk != 0 || got.Recharges != 0 {
		t.Fatalf("risk/recharges = %v/%v, want 0/0", got.Risk, got.Recharges)
	}
	if res.NodesExplored == 0 {
		t.Fatal("diagnostics: no nodes explored")
	}
}

func TestSolve_MatchesBruteForce(t *testing.T) {
	// Six nodes around one zone: the front is non-trivial (distance/risk
	// trade-offs) and small enough for full enumeration.
	zone := geom.Polygon{Vertices: []geom.Point{
		{X: 45, Y: 35}, {X: 62, Y: 42}, {X: 58, Y: 62}, {X: 40, Y: 55},
	}}
	g, err := graph.Build([]graph.Node{
		{ID: 0, Pos: geom.Point{X: 18, Y: 50}, Hub: true},
		{ID: 1, Pos: geom.Point{X: 80, Y: 18}},
		{ID: 2, Pos: geom.Point{X: 85, Y: 55}, Charging: true},
		{ID: 3, Pos: geom.Point{X: 72, Y: 88}},
		{ID: 4, Pos: geom.Point{X: 30, Y: 85}},
		{ID: 5, Pos: geom.Point{X: 25, Y: 15}},
	}, []geom.Polygon{zone}, 100)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	res, err := exact.Solve(g, exact.DefaultOptions())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.BudgetExhausted {
		t.Fatal("unlimited run reported budget exhaustion")
	}

	want := bruteForceFront(t, g)
	if res.Front.Size() != want.Size() {
		t.Fatalf("front size = %d, want %d", res.Front.Size(), want.Size())
	}

	// Every brute-force member must be present with identical objectives.
	var wm, gm pareto.Solution
	for _, wm = range want.Members() {
		found := false
		for _, gm = range res.Front.Members() {
			if gm.Objectives.Equal(wm.Objectives) {
				found = true

				break
			}
		}
		if !found {
			t.Fatalf("missing Pareto-optimal objectives %+v", wm.Objectives)
		}
	}
}

func TestSolve_BlockedPairYieldsEmptyFront(t *testing.T) {
	g, err := graph.Build([]graph.Node{
		{ID: 0, Pos: geom.Point{X: 20, Y: 50}, Hub: true},
		{ID: 1, Pos: geom.Point{X: 80, Y: 50}},
	}, []geom.Polygon{{Vertices: []geom.Point{
		{X: 40, Y: 40}, {X: 60, Y: 40}, {X: 60, Y: 60}, {X: 40, Y: 60},
	}}}, 100)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	res, err := exact.Solve(g, exact.DefaultOptions())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Front.Size() != 0 {
		t.Fatalf("front size = %d, want 0 (no Hamiltonian circuit exists)", res.Front.Size())
	}
}

func TestSolve_TrivialAndPairInstances(t *testing.T) {
	// N=1: the hub alone, one all-zero member.
	g1, err := graph.Build([]graph.Node{{ID: 0, Hub: true}}, nil, 100)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	res, err := exact.Solve(g1, exact.DefaultOptions())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Front.Size() != 1 {
		t.Fatalf("N=1 front size = %d, want 1", res.Front.Size())
	}
	if o := res.Front.Members()[0].Objectives; o.Distance != 0 || o.Risk != 0 || o.Recharges != 0 {
		t.Fatalf("N=1 objectives = %+v, want zeros", o)
	}

	// N=2 unobstructed: the unique circuit [0 1 0].
	g2, err := graph.Build([]graph.Node{
		{ID: 0, Hub: true},
		{ID: 1, Pos: geom.Point{X: 30, Y: 40}},
	}, nil, 100)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	res, err = exact.Solve(g2, exact.DefaultOptions())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Front.Size() != 1 {
		t.Fatalf("N=2 front size = %d, want 1", res.Front.Size())
	}
	if d := res.Front.Members()[0].Objectives.Distance; math.Abs(d-100) > 1e-9 {
		t.Fatalf("N=2 distance = %v, want 100", d)
	}
}

func TestSolve_NodeBudgetStopsCleanly(t *testing.T) {
	opts := exact.DefaultOptions()
	opts.MaxNodes = 2

	res, err := exact.Solve(squareInstance(t), opts)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !res.BudgetExhausted {
		t.Fatal("expected budget exhaustion")
	}
	if res.NodesExplored > opts.MaxNodes+1 {
		t.Fatalf("explored %d nodes beyond the budget", res.NodesExplored)
	}

	// Whatever front exists must still be mutually non-dominated.
	members := res.Front.Members()
	var i, j int
	for i = 0; i < len(members); i++ {
		for j = 0; j < len(members); j++ {
			if i != j && members[i].Dominates(members[j]) {
				t.Fatal("front members dominate one another")
			}
		}
	}
}

func TestSolve_NilGraph(t *testing.T) {
	if _, err := exact.Solve(nil, exact.DefaultOptions()); err != exact.ErrNilGraph {
		t.Fatalf("err = %v, want ErrNilGraph", err)
	}
}

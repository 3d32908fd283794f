// Package heuristic - white-box tests of the seed constructions and 2-opt.
package heuristic

import (
	"math"
	"testing"

	"github.com/katalvlaran/droneroute/geom"
	"github.com/katalvlaran/droneroute/graph"
)

// mustBuild wraps graph.Build for test fixtures.
func mustBuild(t *testing.T, nodes []graph.Node, zones []geom.Polygon) *graph.Graph {
	t.Helper()
	g, err := graph.Build(nodes, zones, 100)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	return g
}

// hubCorners is hub (50,50) plus the four map corners.
func hubCorners(t *testing.T) *graph.Graph {
	t.Helper()

	return mustBuild(t, []graph.Node{
		{ID: 0, Pos: geom.Point{X: 50, Y: 50}, Hub: true},
		{ID: 1, Pos: geom.Point{X: 0, Y: 0}},
		{ID: 2, Pos: geom.Point{X: 100, Y: 0}},
		{ID: 3, Pos: geom.Point{X: 100, Y: 100}},
		{ID: 4, Pos: geom.Point{X: 0, Y: 100}},
	}, nil)
}

// isPermutationRoute checks the closed-circuit shape over n nodes.
func isPermutationRoute(route []int, n int) bool {
	if len(route) != n+1 || route[0] != 0 || route[n] != 0 {
		return false
	}
	seen := make([]bool, n)
	seen[0] = true
	var i int
	for i = 1; i < n; i++ {
		v := route[i]
		if v <= 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}

func TestNearestNeighbor_TieBreakLowestID(t *testing.T) {
	g := hubCorners(t)

	// All four corners are equidistant from the hub; pure-distance weights
	// must open with node 1.
	route := nearestNeighbor(g, 1, 0)
	if !isPermutationRoute(route, 5) {
		t.Fatalf("malformed route %v", route)
	}
	if route[1] != 1 {
		t.Fatalf("first hop = %d, want 1 (lowest id on ties)", route[1])
	}
}

func TestNearestNeighbor_DeadEndFallsThrough(t *testing.T) {
	// Node 1 is boxed in by a surrounding zone: every edge touching it is
	// invalid, so greedy extension dead-ends and falls through.
	box := geom.Polygon{Vertices: []geom.Point{
		{X: 70, Y: 40}, {X: 90, Y: 40}, {X: 90, Y: 60}, {X: 70, Y: 60},
	}}
	g := mustBuild(t, []graph.Node{
		{ID: 0, Pos: geom.Point{X: 20, Y: 50}, Hub: true},
		{ID: 1, Pos: geom.Point{X: 80, Y: 50}},
		{ID: 2, Pos: geom.Point{X: 20, Y: 20}},
	}, []geom.Polygon{box})

	route := nearestNeighbor(g, 1, 0)
	if !isPermutationRoute(route, 3) {
		t.Fatalf("malformed route %v", route)
	}
}

func TestCheapestInsertion_SeedAndShape(t *testing.T) {
	g := hubCorners(t)

	var i int
	for i = 0; i <= 10; i += 2 {
		d := float64(i)
		route := cheapestInsertion(g, d/10, (10-d)/10)
		if !isPermutationRoute(route, 5) {
			t.Fatalf("weights (%.1f, %.1f): malformed route %v", d/10, (10-d)/10, route)
		}
	}
}

func TestAngularSweep_OrdersByAngle(t *testing.T) {
	g := hubCorners(t)

	// θ=0, counter-clockwise: corner angles around the hub are 225°(1),
	// 315°(2), 45°(3), 135°(4) → ascending order 3, 4, 1, 2.
	route := angularSweep(g, 0, false)
	want := []int{0, 3, 4, 1, 2, 0}
	var i int
	for i = 0; i < len(want); i++ {
		if route[i] != want[i] {
			t.Fatalf("ccw sweep = %v, want %v", route, want)
		}
	}

	// The clockwise run visits the same cycle in reverse node order.
	cw := angularSweep(g, 0, true)
	if !isPermutationRoute(cw, 5) {
		t.Fatalf("malformed cw route %v", cw)
	}
}

func TestHullInsertion_HubOnHullAndInteriorNodes(t *testing.T) {
	// Hub on the hull; node 4 interior.
	g := mustBuild(t, []graph.Node{
		{ID: 0, Pos: geom.Point{X: 0, Y: 0}, Hub: true},
		{ID: 1, Pos: geom.Point{X: 100, Y: 0}},
		{ID: 2, Pos: geom.Point{X: 100, Y: 100}},
		{ID: 3, Pos: geom.Point{X: 0, Y: 100}},
		{ID: 4, Pos: geom.Point{X: 40, Y: 45}},
	}, nil)

	route := hullInsertion(g)
	if !isPermutationRoute(route, 5) {
		t.Fatalf("malformed route %v", route)
	}

	// Hub interior: it must be prepended and the route stays well-formed.
	g2 := mustBuild(t, []graph.Node{
		{ID: 0, Pos: geom.Point{X: 50, Y: 50}, Hub: true},
		{ID: 1, Pos: geom.Point{X: 0, Y: 0}},
		{ID: 2, Pos: geom.Point{X: 100, Y: 0}},
		{ID: 3, Pos: geom.Point{X: 100, Y: 100}},
		{ID: 4, Pos: geom.Point{X: 0, Y: 100}},
	}, nil)
	route2 := hullInsertion(g2)
	if !isPermutationRoute(route2, 5) {
		t.Fatalf("malformed route %v", route2)
	}
}

func TestTwoOpt_RemovesCrossing(t *testing.T) {
	// Square tour visiting corners in crossing order 1→3→2→4; 2-opt must
	// uncross it down to the perimeter order.
	g := mustBuild(t, []graph.Node{
		{ID: 0, Pos: geom.Point{X: 0, Y: 0}, Hub: true},
		{ID: 1, Pos: geom.Point{X: 100, Y: 0}},
		{ID: 2, Pos: geom.Point{X: 100, Y: 100}},
		{ID: 3, Pos: geom.Point{X: 0, Y: 100}},
	}, nil)

	var (
		crossed  = []int{0, 1, 3, 2, 0}
		polished = twoOpt(g, crossed)
	)
	if !isPermutationRoute(polished, 4) {
		t.Fatalf("malformed route %v", polished)
	}

	before, err := g.EvaluateRoute(crossed)
	if err != nil {
		t.Fatalf("EvaluateRoute: %v", err)
	}
	after, err := g.EvaluateRoute(polished)
	if err != nil {
		t.Fatalf("EvaluateRoute: %v", err)
	}
	if after.Objectives.Distance >= before.Objectives.Distance {
		t.Fatalf("no improvement: %.4f → %.4f", before.Objectives.Distance, after.Objectives.Distance)
	}

	// Perimeter length of the square tour.
	if math.Abs(after.Objectives.Distance-400) > 1e-9 {
		t.Fatalf("distance = %.6f, want 400", after.Objectives.Distance)
	}
}

func TestTwoOpt_RejectsInvalidProposals(t *testing.T) {
	// Same crossing square tour as above, but the edge 1↔2 the uncrossing
	// move needs is blocked by a small wall: the tour must stay unchanged.
	wall := geom.Polygon{Vertices: []geom.Point{
		{X: 95, Y: 45}, {X: 105, Y: 45}, {X: 105, Y: 55}, {X: 95, Y: 55},
	}}
	g := mustBuild(t, []graph.Node{
		{ID: 0, Pos: geom.Point{X: 0, Y: 0}, Hub: true},
		{ID: 1, Pos: geom.Point{X: 100, Y: 0}},
		{ID: 2, Pos: geom.Point{X: 100, Y: 100}},
		{ID: 3, Pos: geom.Point{X: 0, Y: 100}},
	}, []geom.Polygon{wall})

	seed := []int{0, 1, 3, 2, 0}
	out := twoOpt(g, seed)

	var i int
	for i = 0; i < len(seed); i++ {
		if out[i] != seed[i] {
			t.Fatalf("tour changed to %v despite invalid proposals", out)
		}
	}
}

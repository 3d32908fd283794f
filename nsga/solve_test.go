// Package nsga_test exercises the evolutionary solver via the public API:
// determinism under a pinned seed, front feasibility, boundary instances,
// and parameter validation.
package nsga_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/droneroute/geom"
	"github.com/katalvlaran/droneroute/graph"
	"github.com/katalvlaran/droneroute/nsga"
)

// smallOptions shrinks the evolution for test runtimes.
func smallOptions(seed int64) nsga.Options {
	opts := nsga.DefaultOptions()
	opts.Population = 24
	opts.Generations = 30
	opts.Seed = seed

	return opts
}

func buildSquare(t *testing.T) *graph.Graph {
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

func TestSolve_SquareReachesOptimum(t *testing.T) {
	// Five nodes, 24 individuals, 30 generations: the 4!-sized search space
	// is tiny, the optimum is reliably found.
	res, err := nsga.Solve(buildSquare(t), smallOptions(42))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Front.Size() == 0 {
		t.Fatal("empty front on a fully connected instance")
	}

	var (
		want = 300 + 100*math.Sqrt2
		best = math.Inf(1)
	)
	for _, m := range res.Front.Members() {
		if !m.Feasible {
			t.Fatalf("infeasible member in front: %+v", m)
		}
		if m.Objectives.Distance < best {
			best = m.Objectives.Distance
		}
	}
	if math.Abs(best-want) > 1e-6 {
		t.Fatalf("best distance = %.6f, want %.6f", best, want)
	}
}

func TestSolve_DeterministicPerSeed(t *testing.T) {
	g := buildSquare(t)

	a, err := nsga.Solve(g, smallOptions(7))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	b, err := nsga.Solve(g, smallOptions(7))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	if a.Front.Size() != b.Front.Size() || a.Evaluations != b.Evaluations {
		t.Fatalf("same seed diverged: %d/%d fronts, %d/%d evaluations",
			a.Front.Size(), b.Front.Size(), a.Evaluations, b.Evaluations)
	}
	var i int
	for i = 0; i < a.Front.Size(); i++ {
		if !a.Front.Members()[i].Objectives.Equal(b.Front.Members()[i].Objectives) {
			t.Fatalf("member %d objectives diverged", i)
		}
	}
}

func TestSolve_BlockedPairEmptyFront(t *testing.T) {
	g, err := graph.Build([]graph.Node{
		{ID: 0, Pos: geom.Point{X: 20, Y: 50}, Hub: true},
		{ID: 1, Pos: geom.Point{X: 80, Y: 50}},
	}, []geom.Polygon{{Vertices: []geom.Point{
		{X: 40, Y: 40}, {X: 60, Y: 40}, {X: 60, Y: 60}, {X: 40, Y: 60},
	}}}, 100)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	res, err := nsga.Solve(g, smallOptions(1))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Front.Size() != 0 {
		t.Fatalf("front size = %d, want 0 (every circuit crosses the zone)", res.Front.Size())
	}
}

func TestSolve_TrivialInstance(t *testing.T) {
	g, err := graph.Build([]graph.Node{{ID: 0, Hub: true}}, nil, 100)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	res, err := nsga.Solve(g, smallOptions(1))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Front.Size() != 1 {
		t.Fatalf("front size = %d, want 1", res.Front.Size())
	}
}

func TestSolve_ParameterValidation(t *testing.T) {
	g := buildSquare(t)

	bad := nsga.DefaultOptions()
	bad.Population = 0
	if _, err := nsga.Solve(g, bad); err != nsga.ErrBadParams {
		t.Fatalf("err = %v, want ErrBadParams", err)
	}

	bad = nsga.DefaultOptions()
	bad.CrossoverRate = 1.5
	if _, err := nsga.Solve(g, bad); err != nsga.ErrBadParams {
		t.Fatalf("err = %v, want ErrBadParams", err)
	}

	if _, err := nsga.Solve(nil, nsga.DefaultOptions()); err != nsga.ErrNilGraph {
		t.Fatalf("err = %v, want ErrNilGraph", err)
	}
}

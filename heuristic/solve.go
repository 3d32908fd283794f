// Package heuristic - the constructive solver entrypoint.
package heuristic

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/droneroute/graph"
	"github.com/katalvlaran/droneroute/pareto"
)

// Solve runs the full constructive battery on g, polishes every seed tour
// with 2-opt, and returns the resulting non-dominated front.
func Solve(g *graph.Graph, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	res := Result{Front: pareto.NewFront()}

	offer := func(route []int) {
		res.Seeds++
		polished := twoOpt(g, route)
		sol, err := g.EvaluateRoute(polished)
		if err != nil {
			return
		}
		if res.Front.Add(sol) {
			res.Admitted++
		}
	}

	if g.N() == 1 {
		offer([]int{0})
		log.Info("heuristic: trivial instance", zap.Int("front", res.Front.Size()))

		return res, nil
	}

	// 1) Nearest-neighbor scalarization grid: w_d + w_r ≤ 1.
	var i, j int
	for i = 0; float64(i)*weightStep <= 1.0+1e-9; i++ {
		for j = 0; float64(i+j)*weightStep <= 1.0+1e-9; j++ {
			offer(nearestNeighbor(g, float64(i)*weightStep, float64(j)*weightStep))
		}
	}

	// 2) Cheapest insertion over six weight pairs (d/10, (10−d)/10).
	for i = 0; i < insertionSteps; i++ {
		d := float64(2 * i)
		offer(cheapestInsertion(g, d/10, (10-d)/10))
	}

	// 3) Angular sweep: twelve start angles, both directions.
	for i = 0; i < sweepAngles; i++ {
		theta := float64(i) * (2 * math.Pi / float64(sweepAngles))
		offer(angularSweep(g, theta, false))
		offer(angularSweep(g, theta, true))
	}

	// 4) Convex-hull insertion.
	offer(hullInsertion(g))

	log.Info("heuristic: battery done",
		zap.Int("seeds", res.Seeds),
		zap.Int("admitted", res.Admitted),
		zap.Int("front", res.Front.Size()))

	return res, nil
}

// Package experiment - sequential solver execution with resource probes.
package experiment

import (
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/droneroute/exact"
	"github.com/katalvlaran/droneroute/graph"
	"github.com/katalvlaran/droneroute/heuristic"
	"github.com/katalvlaran/droneroute/nsga"
	"github.com/katalvlaran/droneroute/pareto"
)

// Algorithm keys of the result document.
const (
	KeyExact     = "exact"
	KeyHeuristic = "heuristic"
	KeyMeta      = "meta"
	KeyCombined  = "combined"
)

// Run is the measured outcome of one solver on one instance.
type Run struct {
	// Front is the solver's discovered front.
	Front *pareto.Front

	// Seconds is the wall-clock solve time.
	Seconds float64

	// MemoryMB is the heap growth over the solve call (clamped at zero).
	MemoryMB float64

	// Hypervolume and Diversity score the front against the run's reference
	// point.
	Hypervolume float64
	Diversity   float64
}

// Outcome maps algorithm keys to their measured runs, plus the merged front
// under KeyCombined.
type Outcome map[string]Run

// Execute runs all three solvers sequentially on g and merges their fronts.
func Execute(g *graph.Graph, params Params, log *zap.Logger) (Outcome, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	out := make(Outcome, 4)

	exactRun, err := measure(params, func() (*pareto.Front, error) {
		opts := exact.DefaultOptions()
		opts.MaxNodes = params.MaxNodes
		opts.Logger = log

		res, serr := exact.Solve(g, opts)
		if serr != nil {
			return nil, serr
		}

		return res.Front, nil
	})
	if err != nil {
		return nil, err
	}
	out[KeyExact] = exactRun

	heurRun, err := measure(params, func() (*pareto.Front, error) {
		opts := heuristic.DefaultOptions()
		opts.Logger = log

		res, serr := heuristic.Solve(g, opts)
		if serr != nil {
			return nil, serr
		}

		return res.Front, nil
	})
	if err != nil {
		return nil, err
	}
	out[KeyHeuristic] = heurRun

	metaRun, err := measure(params, func() (*pareto.Front, error) {
		opts := nsga.DefaultOptions()
		opts.Population = params.Population
		opts.Generations = params.Generations
		opts.CrossoverRate = params.CrossoverRate
		opts.MutationRate = params.MutationRate
		opts.Seed = params.Seed
		opts.Logger = log

		res, serr := nsga.Solve(g, opts)
		if serr != nil {
			return nil, serr
		}

		return res.Front, nil
	})
	if err != nil {
		return nil, err
	}
	out[KeyMeta] = metaRun

	merged := pareto.NewFront()
	merged.Merge(exactRun.Front)
	merged.Merge(heurRun.Front)
	merged.Merge(metaRun.Front)
	out[KeyCombined] = Run{
		Front:       merged,
		Hypervolume: merged.Hypervolume(params.RefPoint()),
		Diversity:   merged.Spread(),
	}

	log.Info("experiment: all solvers done",
		zap.Int("exact_front", exactRun.Front.Size()),
		zap.Int("heuristic_front", heurRun.Front.Size()),
		zap.Int("meta_front", metaRun.Front.Size()),
		zap.Int("combined_front", merged.Size()))

	return out, nil
}

// measure wraps one solve call with wall-clock and heap probes and scores the
// resulting front.
func measure(params Params, solve func() (*pareto.Front, error)) (Run, error) {
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)

	start := time.Now()
	front, err := solve()
	elapsed := time.Since(start)

	runtime.ReadMemStats(&after)
	if err != nil {
		return Run{}, err
	}

	var heapMB float64
	if after.HeapAlloc > before.HeapAlloc {
		heapMB = float64(after.HeapAlloc-before.HeapAlloc) / (1024 * 1024)
	}

	return Run{
		Front:       front,
		Seconds:     elapsed.Seconds(),
		MemoryMB:    heapMB,
		Hypervolume: front.Hypervolume(params.RefPoint()),
		Diversity:   front.Spread(),
	}, nil
}

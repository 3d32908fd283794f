// Package nsga - memoized route evaluation.
//
// Identical interiors recur across generations (elitism keeps good routes
// alive, crossover recreates them), so evaluations are memoized in a bounded
// LRU keyed by the packed interior bytes. The cache is per-run and holds only
// the evaluation outcome; Rank/Crowding scratch never enters it.
package nsga

import (
	"encoding/binary"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/droneroute/graph"
	"github.com/katalvlaran/droneroute/pareto"
)

// cachedEval is the memoized outcome of one route evaluation.
type cachedEval struct {
	objectives pareto.Objectives
	feasible   bool
}

// evaluator scores interiors against the graph with LRU memoization.
type evaluator struct {
	g      *graph.Graph
	cache  *lru.Cache[string, cachedEval]
	misses int
}

// newEvaluator builds an evaluator with a cache of the given size.
func newEvaluator(g *graph.Graph, size int) (*evaluator, error) {
	c, err := lru.New[string, cachedEval](size)
	if err != nil {
		return nil, err
	}

	return &evaluator{g: g, cache: c}, nil
}

// key packs the interior into a compact string key.
func (ev *evaluator) key(interior []int) string {
	buf := make([]byte, 4*len(interior))

	var i int
	for i = 0; i < len(interior); i++ {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(interior[i]))
	}

	return string(buf)
}

// evaluate scores the closed route [0, interior..., 0] and returns a fresh
// Solution (never aliasing cache storage).
func (ev *evaluator) evaluate(interior []int) (pareto.Solution, error) {
	k := ev.key(interior)
	if hit, ok := ev.cache.Get(k); ok {
		return pareto.Solution{
			Route:      closeRoute(interior),
			Objectives: hit.objectives,
			Feasible:   hit.feasible,
		}, nil
	}

	sol, err := ev.g.EvaluateRoute(closeRoute(interior))
	if err != nil {
		return pareto.Solution{}, err
	}
	ev.misses++
	ev.cache.Add(k, cachedEval{objectives: sol.Objectives, feasible: sol.Feasible})

	return sol, nil
}

// closeRoute wraps an interior with the hub on both ends. An empty interior
// (single-node instance) closes to the one-element route [0].
func closeRoute(interior []int) []int {
	if len(interior) == 0 {
		return []int{0}
	}

	route := make([]int, 0, len(interior)+2)
	route = append(route, 0)
	route = append(route, interior...)

	return append(route, 0)
}

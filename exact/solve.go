// Package exact - the branch-and-bound engine and public entrypoint.
//
// We use a dedicated engine struct (instead of anonymous closures) to keep
// dependencies explicit, testing simpler, and hot-path state predictable.
// Branching order is recomputed per node by sorting the unvisited candidates
// on edge distance with input-id tiebreak, so the whole search is a pure
// function of the instance.
package exact

import (
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/droneroute/graph"
	"github.com/katalvlaran/droneroute/pareto"
)

// engine holds all search data and policies for one Solve call.
type engine struct {
	g        *graph.Graph
	n        int
	maxNodes int

	// Search state.
	visited []bool
	path    []int

	// Scratch buffer reused by the bound (member flags of the remaining set).
	member []bool

	// Outcome.
	front    *pareto.Front
	explored int
	pruned   int
	stopped  bool
}

// Solve runs the branch-and-bound search over g and returns the discovered
// front with diagnostics. A nil graph yields ErrNilGraph.
func Solve(g *graph.Graph, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	e := &engine{
		g:        g,
		n:        g.N(),
		maxNodes: opts.MaxNodes,
		visited:  make([]bool, g.N()),
		path:     make([]int, 0, g.N()+1),
		member:   make([]bool, g.N()),
		front:    pareto.NewFront(),
	}

	log.Debug("exact: search start",
		zap.Int("nodes", e.n),
		zap.Int("max_nodes", e.maxNodes))

	// Trivial instance: the hub alone forms the unique (empty) circuit.
	if e.n == 1 {
		if sol, err := g.EvaluateRoute([]int{0}); err == nil {
			e.front.Add(sol)
		}
	} else {
		e.visited[0] = true
		e.path = append(e.path, 0)
		e.dfs(0, 0, 0, 0, graph.FullBattery)
	}

	log.Info("exact: search done",
		zap.Int("explored", e.explored),
		zap.Int("pruned", e.pruned),
		zap.Int("front", e.front.Size()),
		zap.Bool("budget_exhausted", e.stopped))

	return Result{
		Front:           e.front,
		NodesExplored:   e.explored,
		NodesPruned:     e.pruned,
		BudgetExhausted: e.stopped,
	}, nil
}

// candidate is one branching option from the current tail.
type candidate struct {
	id   int
	dist float64
}

// dfs expands the partial path ending at last with the running objective
// accumulators and simulated battery.
func (e *engine) dfs(last int, dist, risk float64, recharges int, battery float64) {
	if e.stopped {
		return
	}
	e.explored++
	if e.maxNodes > 0 && e.explored > e.maxNodes {
		e.stopped = true

		return
	}

	// Prune when valid edges cannot connect the remaining set, then against
	// the front via the MST lower bound.
	lbDist, lbRisk, connected := e.remainingBound(last)
	if !connected {
		e.pruned++

		return
	}
	if e.front.Size() > 0 {
		lb := pareto.NewObjectives(dist+lbDist, risk+lbRisk, recharges)
		for _, m := range e.front.Members() {
			if m.Objectives.Dominates(lb) {
				e.pruned++

				return
			}
		}
	}

	// Complete: close the circuit back to the hub.
	if len(e.path) == e.n {
		e.closeCircuit(last, dist, risk, recharges, battery)

		return
	}

	// Branch: unvisited neighbors over valid edges, cheapest distance first.
	var (
		cands = make([]candidate, 0, e.n-len(e.path))
		v     int
	)
	for v = 0; v < e.n; v++ {
		if e.visited[v] {
			continue
		}
		edge, ok := e.g.Edge(last, v)
		if !ok || !edge.Valid {
			continue
		}
		cands = append(cands, candidate{id: v, dist: edge.Weight.Distance})
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].dist == cands[j].dist {
			return cands[i].id < cands[j].id
		}

		return cands[i].dist < cands[j].dist
	})

	var c candidate
	for _, c = range cands {
		edge, _ := e.g.Edge(last, c.id)

		var (
			b = battery - edge.Weight.Battery
			r = recharges
		)
		if b < graph.RechargeThreshold {
			r++
			b = graph.FullBattery
		}
		if e.g.Node(c.id).Charging && b < graph.TopUpThreshold {
			b = graph.FullBattery
		}

		e.visited[c.id] = true
		e.path = append(e.path, c.id)
		e.dfs(c.id, dist+edge.Weight.Distance, risk+edge.Weight.Risk, r, b)
		e.path = e.path[:len(e.path)-1]
		e.visited[c.id] = false

		if e.stopped {
			return
		}
	}
}

// closeCircuit attempts the final edge tail→hub and offers the completed
// circuit to the front. The closing leg counts a recharge only when the
// battery would go negative; the usual threshold applies to inner legs only.
func (e *engine) closeCircuit(last int, dist, risk float64, recharges int, battery float64) {
	edge, ok := e.g.Edge(last, 0)
	if !ok || !edge.Valid {
		return
	}

	if battery-edge.Weight.Battery < 0 {
		recharges++
	}

	route := make([]int, len(e.path)+1)
	copy(route, e.path)
	route[len(e.path)] = 0

	e.front.Add(pareto.Solution{
		Route:      route,
		Objectives: pareto.NewObjectives(dist+edge.Weight.Distance, risk+edge.Weight.Risk, recharges),
		Feasible:   true,
	})
}

// remainingBound flags {last} ∪ {hub} ∪ unvisited and delegates to mstBound.
func (e *engine) remainingBound(last int) (dist, risk float64, connected bool) {
	var v int
	for v = 0; v < e.n; v++ {
		e.member[v] = !e.visited[v]
	}
	e.member[last] = true
	e.member[0] = true

	return e.mstBound(e.member, last)
}

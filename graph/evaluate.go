// Package graph - the shared route evaluator (battery simulation).
//
// EvaluateRoute is the single cost model of the engine: every solver scores
// candidates through it (the exact solver mirrors its per-step updates
// incrementally, see the exact package). It is a pure function of
// (graph, route); identical inputs yield identical objectives.
//
// Battery model per traversed edge u→v:
//  1. battery -= weight.Battery;
//  2. battery < RechargeThreshold ⇒ recharges++ and battery = FullBattery
//     (implicit in-flight recharge);
//  3. v is a charging station and battery < TopUpThreshold ⇒ battery =
//     FullBattery (free opportunistic top-up, not a recharge event).
//
// Invalid or missing edges mark the solution infeasible; scalar objectives
// still accumulate over the edges that do exist, so diagnostics can compare
// infeasible candidates.
//
// Complexity: O(len(route)) time, O(1) extra space beyond the result.
package graph

import "github.com/katalvlaran/droneroute/pareto"

// EvaluateRoute scores a closed route. The route must start and end at the
// hub (id 0); the trivial single-node instance uses the one-element route [0].
func (g *Graph) EvaluateRoute(route []int) (pareto.Solution, error) {
	if err := g.checkRouteShape(route); err != nil {
		return pareto.Solution{}, err
	}

	sol := pareto.Solution{
		Route:    append([]int(nil), route...),
		Feasible: true,
	}

	var (
		distance  float64
		risk      float64
		recharges int
		battery   = FullBattery
		i         int
	)
	for i = 0; i+1 < len(route); i++ {
		e, ok := g.Edge(route[i], route[i+1])
		if !ok {
			sol.Feasible = false

			continue
		}
		if !e.Valid {
			sol.Feasible = false
		}

		distance += e.Weight.Distance
		risk += e.Weight.Risk

		battery -= e.Weight.Battery
		if battery < RechargeThreshold {
			recharges++
			battery = FullBattery
		}
		if g.nodes[route[i+1]].Charging && battery < TopUpThreshold {
			battery = FullBattery
		}
	}

	sol.Objectives = pareto.NewObjectives(distance, risk, recharges)

	return sol, nil
}

// checkRouteShape verifies the minimal closed-circuit shape: non-empty,
// every id in range, hub at both ends (single-node routes are just [0]).
func (g *Graph) checkRouteShape(route []int) error {
	if len(route) == 0 {
		return ErrBadRoute
	}

	var i int
	for i = 0; i < len(route); i++ {
		if route[i] < 0 || route[i] >= len(g.nodes) {
			return ErrBadRoute
		}
	}
	if route[0] != 0 || route[len(route)-1] != 0 {
		return ErrBadRoute
	}

	return nil
}

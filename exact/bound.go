// Package exact - Prim MST lower bound over the remaining vertex set.
//
// Any completion of the current partial path is a walk covering
// {tail} ∪ {hub} ∪ unvisited on valid edges, so its distance is bounded below
// by the MST of that induced subgraph. Risk is aggregated along the chosen
// distance-minimizing edges; it is not an independent lower bound on risk,
// which is acceptable for dominance pruning because a front member must beat
// the bound on at least one axis while not losing on the others.
//
// Prim runs in O(m²) without a heap (m = remaining vertices), matching the
// dense edge table.
package exact

import "math"

// mstBound computes the (distance, risk) MST aggregate over the vertices
// flagged in member. Returns ok=false when valid edges cannot connect the
// set, i.e. no feasible completion exists.
func (e *engine) mstBound(member []bool, seedVertex int) (dist, risk float64, ok bool) {
	var (
		n     = e.g.N()
		count int
		v     int
	)
	for v = 0; v < n; v++ {
		if member[v] {
			count++
		}
	}
	if count <= 1 {
		return 0, 0, true
	}

	var (
		inTree   = make([]bool, n)
		bestDist = make([]float64, n)
		bestRisk = make([]float64, n)
		i, u     int
	)
	for i = 0; i < n; i++ {
		bestDist[i] = math.Inf(1)
	}
	bestDist[seedVertex] = 0

	for i = 0; i < count; i++ {
		// Pick the cheapest non-tree member (index tiebreak via strict <).
		u = -1
		minW := math.Inf(1)
		for v = 0; v < n; v++ {
			if member[v] && !inTree[v] && bestDist[v] < minW {
				minW = bestDist[v]
				u = v
			}
		}
		if u == -1 {
			// Disconnected under valid edges: no Hamiltonian completion.
			return 0, 0, false
		}

		inTree[u] = true
		dist += bestDist[u]
		risk += bestRisk[u]

		// Relax members through u over valid edges.
		for v = 0; v < n; v++ {
			if !member[v] || inTree[v] {
				continue
			}
			edge, ok2 := e.g.Edge(u, v)
			if !ok2 || !edge.Valid {
				continue
			}
			if edge.Weight.Distance < bestDist[v] {
				bestDist[v] = edge.Weight.Distance
				bestRisk[v] = edge.Weight.Risk
			}
		}
	}

	return dist, risk, true
}

// Package heuristic - first-improvement 2-opt polish.
//
// twoOpt reverses internal segments [i..j], 1 ≤ i < j < len−1, never touching
// the closing hub positions. A move is accepted only when every edge of the
// proposed route is valid and the total distance strictly improves by more
// than twoOptMinGain; acceptance restarts the scan. Edge weights are
// symmetric by construction, so the distance delta of a reversal is decided
// by the four boundary edges.
//
// The validity precondition makes the pass a repair step too: an infeasible
// seed tour can only leave 2-opt improved AND fully valid, or unchanged.
//
// Complexity: O(N²) candidate checks per accepted move.
package heuristic

import "github.com/katalvlaran/droneroute/graph"

// routeValid reports whether every consecutive edge of route exists and is
// valid.
func routeValid(g *graph.Graph, route []int) bool {
	var i int
	for i = 0; i+1 < len(route); i++ {
		edge, ok := g.Edge(route[i], route[i+1])
		if !ok || !edge.Valid {
			return false
		}
	}

	return true
}

// edgeDistance returns the distance of u→v, zero when the edge is missing
// (u == v on degenerate routes).
func edgeDistance(g *graph.Graph, u, v int) float64 {
	edge, ok := g.Edge(u, v)
	if !ok {
		return 0
	}

	return edge.Weight.Distance
}

// twoOpt polishes a closed route in place of a fresh copy and returns it.
func twoOpt(g *graph.Graph, route []int) []int {
	cur := append([]int(nil), route...)
	if len(cur) < 5 {
		// Fewer than three internal nodes: no reversible segment exists.
		return cur
	}

	var (
		last = len(cur) - 1
		prop = make([]int, len(cur))
	)
	for {
		improved := false

		var i, j, k int
		for i = 1; i < last-1 && !improved; i++ {
			for j = i + 1; j < last; j++ {
				// Distance delta of reversing [i..j]: boundary edges only.
				var (
					a, b = cur[i-1], cur[i]
					c, d = cur[j], cur[j+1]
				)
				gain := edgeDistance(g, a, b) + edgeDistance(g, c, d) -
					edgeDistance(g, a, c) - edgeDistance(g, b, d)
				if gain <= twoOptMinGain {
					continue
				}

				// Build the proposal and insist on full validity.
				copy(prop, cur)
				for k = 0; k <= j-i; k++ {
					prop[i+k] = cur[j-k]
				}
				if !routeValid(g, prop) {
					continue
				}

				copy(cur, prop)
				improved = true

				break
			}
		}
		if !improved {
			return cur
		}
	}
}

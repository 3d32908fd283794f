// Package heuristic - the four seed-tour constructions.
//
// All constructions return a closed route starting and ending at the hub.
// They never fail: when no valid continuation exists, nearest-neighbor falls
// through to the lowest-id unvisited node and cheapest insertion takes the
// cheapest invalid slot; angular sweep and hull insertion do not check
// validity. Evaluation marks such tours infeasible.
package heuristic

import (
	"math"
	"sort"

	"github.com/katalvlaran/droneroute/geom"
	"github.com/katalvlaran/droneroute/graph"
)

// nearestNeighbor greedily extends the path by the unvisited neighbor
// minimizing wd·distance + wr·risk over valid edges (lowest id on ties).
func nearestNeighbor(g *graph.Graph, wd, wr float64) []int {
	var (
		n       = g.N()
		visited = make([]bool, n)
		route   = make([]int, 0, n+1)
		cur     = 0
		step    int
	)
	visited[0] = true
	route = append(route, 0)

	for step = 1; step < n; step++ {
		var (
			best     = -1
			bestCost = math.Inf(1)
			v        int
		)
		for v = 0; v < n; v++ {
			if visited[v] {
				continue
			}
			edge, ok := g.Edge(cur, v)
			if !ok || !edge.Valid {
				continue
			}
			if c := wd*edge.Weight.Distance + wr*edge.Weight.Risk; c < bestCost {
				bestCost = c
				best = v
			}
		}
		if best == -1 {
			// Dead end: fall through to the lowest-id unvisited node.
			for v = 0; v < n; v++ {
				if !visited[v] {
					best = v

					break
				}
			}
		}
		visited[best] = true
		route = append(route, best)
		cur = best
	}

	return append(route, 0)
}

// insertionDelta is the weighted cost change of inserting node v between
// route positions p and p+1.
func insertionDelta(g *graph.Graph, route []int, p, v int, wd, wr float64) float64 {
	var (
		prev = route[p]
		next = route[p+1]
	)
	ePrevNew, _ := g.Edge(prev, v)
	eNewNext, _ := g.Edge(v, next)
	ePrevNext, _ := g.Edge(prev, next)

	dd := ePrevNew.Weight.Distance + eNewNext.Weight.Distance - ePrevNext.Weight.Distance
	dr := ePrevNew.Weight.Risk + eNewNext.Weight.Risk - ePrevNext.Weight.Risk

	return wd*dd + wr*dr
}

// insertionValid reports whether both new edges of the insertion are valid.
func insertionValid(g *graph.Graph, route []int, p, v int) bool {
	ePrevNew, ok1 := g.Edge(route[p], v)
	eNewNext, ok2 := g.Edge(v, route[p+1])

	return ok1 && ok2 && ePrevNew.Valid && eNewNext.Valid
}

// cheapestInsertion grows a tour from the hub and the two nodes farthest from
// it, inserting the (node, position) pair of minimal weighted delta at every
// step. Positions with an invalid incident edge are skipped; when no valid
// pair remains the cheapest invalid one is taken (the tour is scored anyway).
func cheapestInsertion(g *graph.Graph, wd, wr float64) []int {
	n := g.N()
	if n <= 2 {
		return trivialRoute(n)
	}

	// Seed: hub, the farthest node, the farthest node excluding it.
	var (
		hub    = g.Node(0).Pos
		f1, f2 = -1, -1
		d1, d2 = -1.0, -1.0
		v      int
	)
	for v = 1; v < n; v++ {
		if d := geom.Dist(hub, g.Node(v).Pos); d > d1 {
			d1 = d
			f1 = v
		}
	}
	for v = 1; v < n; v++ {
		if v == f1 {
			continue
		}
		if d := geom.Dist(hub, g.Node(v).Pos); d > d2 {
			d2 = d
			f2 = v
		}
	}

	var (
		route     = []int{0, f1, f2, 0}
		remaining = make([]bool, n)
		left      = n - 3
	)
	for v = 1; v < n; v++ {
		remaining[v] = v != f1 && v != f2
	}

	for ; left > 0; left-- {
		var (
			bestNode, bestPos = -1, -1
			bestDelta         = math.Inf(1)
			anyNode, anyPos   = -1, -1
			anyDelta          = math.Inf(1)
			p                 int
		)
		for v = 1; v < n; v++ {
			if !remaining[v] {
				continue
			}
			for p = 0; p < len(route)-1; p++ {
				delta := insertionDelta(g, route, p, v, wd, wr)
				if delta < anyDelta {
					anyDelta = delta
					anyNode, anyPos = v, p
				}
				if !insertionValid(g, route, p, v) {
					continue
				}
				if delta < bestDelta {
					bestDelta = delta
					bestNode, bestPos = v, p
				}
			}
		}
		if bestNode == -1 {
			bestNode, bestPos = anyNode, anyPos
		}
		route = insertAt(route, bestPos+1, bestNode)
		remaining[bestNode] = false
	}

	return route
}

// angularSweep orders the non-hub nodes by polar angle around the hub, offset
// by theta, in the given direction.
func angularSweep(g *graph.Graph, theta float64, clockwise bool) []int {
	n := g.N()
	if n <= 2 {
		return trivialRoute(n)
	}

	type angled struct {
		id  int
		key float64
	}

	var (
		hub   = g.Node(0).Pos
		order = make([]angled, 0, n-1)
		v     int
	)
	for v = 1; v < n; v++ {
		a := geom.PolarAngle(hub, g.Node(v).Pos) - theta
		if clockwise {
			a = -a
		}
		a = math.Mod(a, 2*math.Pi)
		if a < 0 {
			a += 2 * math.Pi
		}
		order = append(order, angled{id: v, key: a})
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].key == order[j].key {
			return order[i].id < order[j].id
		}

		return order[i].key < order[j].key
	})

	route := make([]int, 0, n+1)
	route = append(route, 0)
	for v = 0; v < len(order); v++ {
		route = append(route, order[v].id)
	}

	return append(route, 0)
}

// hullInsertion starts from the convex-hull boundary (hub prepended when
// interior) and inserts the remaining nodes at the cheapest position by
// distance only.
func hullInsertion(g *graph.Graph) []int {
	n := g.N()
	if n <= 2 {
		return trivialRoute(n)
	}

	var (
		pts = make([]geom.Point, n)
		v   int
	)
	for v = 0; v < n; v++ {
		pts[v] = g.Node(v).Pos
	}
	hull, err := geom.ConvexHull(pts)
	if err != nil {
		return trivialRoute(n)
	}

	// Map hull points back to node ids (positions originate from the nodes,
	// so exact equality holds; the lowest id wins duplicate positions).
	var (
		tour   = make([]int, 0, n+1)
		inTour = make([]bool, n)
		h      int
	)
	for h = 0; h < len(hull); h++ {
		for v = 0; v < n; v++ {
			if !inTour[v] && pts[v] == hull[h] {
				tour = append(tour, v)
				inTour[v] = true

				break
			}
		}
	}
	if len(tour) == 0 || tour[0] != 0 {
		// Hub off the hull boundary: prepend it.
		if !inTour[0] {
			tour = append([]int{0}, tour...)
			inTour[0] = true
		} else {
			tour = rotateToHub(tour)
		}
	}
	tour = append(tour, 0)

	// Insert interior nodes one by one at the cheapest distance position.
	for v = 1; v < n; v++ {
		if inTour[v] {
			continue
		}
		var (
			bestPos   = 0
			bestDelta = math.Inf(1)
			p         int
		)
		for p = 0; p < len(tour)-1; p++ {
			if delta := insertionDelta(g, tour, p, v, 1, 0); delta < bestDelta {
				bestDelta = delta
				bestPos = p
			}
		}
		tour = insertAt(tour, bestPos+1, v)
		inTour[v] = true
	}

	return tour
}

// trivialRoute covers the degenerate instances: [0] for N=1, [0 1 0] for N=2.
func trivialRoute(n int) []int {
	if n == 1 {
		return []int{0}
	}

	return []int{0, 1, 0}
}

// insertAt returns route with v inserted before index pos.
func insertAt(route []int, pos, v int) []int {
	route = append(route, 0)
	copy(route[pos+1:], route[pos:])
	route[pos] = v

	return route
}

// rotateToHub rotates an open tour so the hub leads.
func rotateToHub(tour []int) []int {
	var i int
	for i = 0; i < len(tour); i++ {
		if tour[i] == 0 {
			break
		}
	}
	out := make([]int, 0, len(tour))
	out = append(out, tour[i:]...)
	out = append(out, tour[:i]...)

	return out
}

// Package graph - dense graph construction against no-fly zones.
//
// Build validates the node set, then fills the full N×N edge table in one
// pass: validity is a visibility test of the edge segment against every
// polygon, risk is the linear clearance band over [RiskNear, RiskFar].
//
// Complexity: O(N²·Z·k) for Z polygons of ≤k vertices; memory Θ(N²).
package graph

import "github.com/katalvlaran/droneroute/geom"

// Build constructs the immutable instance graph. The zones slice is copied;
// callers may reuse their storage afterwards.
func Build(nodes []Node, zones []geom.Polygon, mapSize float64) (*Graph, error) {
	if err := validateNodes(nodes); err != nil {
		return nil, err
	}
	var zi int
	for zi = 0; zi < len(zones); zi++ {
		if err := zones[zi].Validate(); err != nil {
			return nil, ErrBadPolygon
		}
	}

	g := &Graph{
		nodes:   append([]Node(nil), nodes...),
		zones:   append([]geom.Polygon(nil), zones...),
		mapSize: mapSize,
	}

	var (
		n    = len(nodes)
		i, j int
	)
	g.edges = make([][]Edge, n)
	for i = 0; i < n; i++ {
		g.edges[i] = make([]Edge, n)
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			g.edges[i][j] = buildEdge(nodes[i], nodes[j], g.zones)
		}
	}

	return g, nil
}

// validateNodes enforces: non-empty, ids form {0..N−1}, exactly one hub at id 0.
func validateNodes(nodes []Node) error {
	n := len(nodes)
	if n == 0 {
		return ErrNoNodes
	}

	var (
		seen = make([]bool, n)
		hubs int
		i    int
	)
	for i = 0; i < n; i++ {
		id := nodes[i].ID
		if id < 0 || id >= n || seen[id] {
			return ErrBadNodeIDs
		}
		seen[id] = true
		if nodes[i].Hub {
			hubs++
			if id != 0 {
				return ErrHubID
			}
		}
	}
	if hubs == 0 {
		return ErrMissingHub
	}
	if hubs > 1 {
		return ErrHubID
	}

	return nil
}

// buildEdge scores a single directed edge against every zone.
func buildEdge(src, dst Node, zones []geom.Polygon) Edge {
	var (
		seg  = geom.Segment{A: src.Pos, B: dst.Pos}
		dist = geom.Dist(src.Pos, dst.Pos)
	)

	e := Edge{
		Source: src.ID,
		Target: dst.ID,
		Valid:  true,
		Weight: EdgeWeight{
			Distance: dist,
			Battery:  dist * BatteryPerDistance,
		},
	}

	var (
		clearance = riskFarPlus
		z         int
	)
	for z = 0; z < len(zones); z++ {
		if geom.SegmentIntersectsPolygon(seg, zones[z]) {
			e.Valid = false
			clearance = 0

			continue
		}
		if d := geom.SegmentToPolygonDistance(seg, zones[z]); d < clearance {
			clearance = d
		}
	}
	e.Weight.Risk = riskFromClearance(clearance)

	return e
}

// riskFarPlus is the clearance sentinel meaning "no zone anywhere near".
const riskFarPlus = RiskFar + 1

// riskFromClearance maps zone clearance to the [0,1] risk band:
// 1 below RiskNear, 0 above RiskFar, linear in between.
func riskFromClearance(d float64) float64 {
	switch {
	case d < RiskNear:
		return 1
	case d > RiskFar:
		return 0
	default:
		return 1 - (d-RiskNear)/(RiskFar-RiskNear)
	}
}

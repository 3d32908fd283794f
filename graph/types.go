// Package graph - instance types, battery-model constants, sentinel errors.
package graph

import (
	"errors"

	"github.com/katalvlaran/droneroute/geom"
)

// Battery model constants. A full charge is 100 units; traversing one
// distance unit consumes 1/100 of a battery unit.
const (
	// FullBattery is the capacity the drone starts with and resets to.
	FullBattery = 100.0

	// RechargeThreshold forces a recharge event when the simulated level
	// drops below it after an edge.
	RechargeThreshold = 20.0

	// TopUpThreshold triggers a free top-up on arrival at a charging station.
	TopUpThreshold = 80.0

	// BatteryPerDistance converts edge distance to battery consumption.
	BatteryPerDistance = 1.0 / 100.0
)

// Risk band bounds: clearance below RiskNear scores 1, above RiskFar scores 0,
// linear in between.
const (
	RiskNear = 1.0
	RiskFar  = 20.0
)

// Sentinel errors (instance validation and route evaluation).
var (
	// ErrNoNodes indicates an instance without nodes.
	ErrNoNodes = errors.New("graph: instance has no nodes")

	// ErrMissingHub indicates no node is flagged as the hub.
	ErrMissingHub = errors.New("graph: no hub node")

	// ErrHubID indicates the hub is not node 0 or more than one hub exists.
	ErrHubID = errors.New("graph: hub must be the unique node with id 0")

	// ErrBadNodeIDs indicates ids do not form the contiguous range {0..N−1}.
	ErrBadNodeIDs = errors.New("graph: node ids must form {0..N-1} without duplicates")

	// ErrBadPolygon indicates a no-fly zone with fewer than three vertices.
	ErrBadPolygon = errors.New("graph: no-fly zone needs at least three vertices")

	// ErrBadRoute indicates a route that is not a closed circuit over the
	// instance's nodes.
	ErrBadRoute = errors.New("graph: malformed route")
)

// Node is a waypoint: the hub, a delivery point, or a charging station.
// Flags are independent; a node with both false is a pure delivery point.
type Node struct {
	ID       int
	Pos      geom.Point
	Hub      bool
	Charging bool
}

// EdgeWeight is the three-component cost of traversing an edge.
type EdgeWeight struct {
	Distance float64
	Risk     float64
	Battery  float64
}

// Dominates reports componentwise dominance (≤ everywhere, < somewhere).
func (w EdgeWeight) Dominates(other EdgeWeight) bool {
	if w.Distance > other.Distance || w.Risk > other.Risk || w.Battery > other.Battery {
		return false
	}

	return w.Distance < other.Distance || w.Risk < other.Risk || w.Battery < other.Battery
}

// Edge is a directed connection with its weight and a validity flag. Invalid
// edges cross at least one no-fly zone; they stay in the table so solvers can
// score infeasible routes.
type Edge struct {
	Source int
	Target int
	Weight EdgeWeight
	Valid  bool
}

// Graph is the immutable instance: nodes, dense adjacency, no-fly zones, and
// the map side length. Build is the only constructor.
type Graph struct {
	nodes   []Node
	edges   [][]Edge // edges[i][j], diagonal unused
	zones   []geom.Polygon
	mapSize float64
}

// N returns the node count.
func (g *Graph) N() int { return len(g.nodes) }

// MapSize returns the side length of the square plane.
func (g *Graph) MapSize() float64 { return g.mapSize }

// Node returns the node with the given id.
func (g *Graph) Node(id int) Node { return g.nodes[id] }

// Nodes returns the node slice; callers must treat it as read-only.
func (g *Graph) Nodes() []Node { return g.nodes }

// Zones returns the no-fly polygons; callers must treat them as read-only.
func (g *Graph) Zones() []geom.Polygon { return g.zones }

// Edge returns the directed edge i→j and whether it exists (i ≠ j, in range).
func (g *Graph) Edge(i, j int) (Edge, bool) {
	if i < 0 || j < 0 || i >= len(g.nodes) || j >= len(g.nodes) || i == j {
		return Edge{}, false
	}

	return g.edges[i][j], true
}

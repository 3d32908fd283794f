// Package instance - parameters and the seeded generator.
package instance

import (
	"errors"
	"math"
	"math/rand"

	"github.com/katalvlaran/droneroute/geom"
	"github.com/katalvlaran/droneroute/graph"
)

// Sentinel errors.
var (
	// ErrBadParams indicates a non-positive node count or map size, or a
	// negative zone count.
	ErrBadParams = errors.New("instance: invalid generator parameters")

	// ErrPlacement indicates rejection sampling could not place a node or
	// zone within the attempt budget (map too crowded).
	ErrPlacement = errors.New("instance: could not place nodes clear of zones")
)

// Placement constants.
const (
	// NodeClearance is the minimal zone clearance of delivery nodes.
	NodeClearance = 3.0

	// HubClearance is the minimal zone clearance of the hub.
	HubClearance = 5.0

	// ChargingShare is the fraction of non-hub nodes made charging stations
	// (at least one on any non-trivial instance).
	ChargingShare = 0.15

	// hubCenterBand bounds the hub offset from the map center (±10%).
	hubCenterBand = 0.10

	// zoneVertexMin/Max bound accepted convex-hull sizes.
	zoneVertexMin = 4
	zoneVertexMax = 7

	// maxAttempts bounds every rejection-sampling loop.
	maxAttempts = 10_000
)

// defaultGenSeed is the fixed "zero" seed used when callers pass Seed==0.
const defaultGenSeed int64 = 1

// Params configures the generator.
type Params struct {
	// Nodes is the total node count including the hub.
	Nodes int

	// Zones is the number of convex no-fly polygons.
	Zones int

	// MapSize is the side length of the square plane.
	MapSize float64

	// Seed drives the PRNG; zero maps to a fixed default stream.
	Seed int64
}

// DefaultParams returns a small benchmark-friendly instance shape.
func DefaultParams() Params {
	return Params{
		Nodes:   10,
		Zones:   3,
		MapSize: 100,
		Seed:    0,
	}
}

// Generate builds a random instance graph from params.
func Generate(params Params) (*graph.Graph, error) {
	if params.Nodes <= 0 || params.MapSize <= 0 || params.Zones < 0 {
		return nil, ErrBadParams
	}

	seed := params.Seed
	if seed == 0 {
		seed = defaultGenSeed
	}
	rng := rand.New(rand.NewSource(seed))

	zones, err := generateZones(rng, params)
	if err != nil {
		return nil, err
	}

	nodes, err := generateNodes(rng, params, zones)
	if err != nil {
		return nil, err
	}

	return graph.Build(nodes, zones, params.MapSize)
}

// generateZones draws convex polygons with 4-7 vertices each.
func generateZones(rng *rand.Rand, params Params) ([]geom.Polygon, error) {
	var (
		zones = make([]geom.Polygon, 0, params.Zones)
		z     int
	)
	for z = 0; z < params.Zones; z++ {
		var (
			placed  bool
			attempt int
		)
		for attempt = 0; attempt < maxAttempts; attempt++ {
			// Zone disc: center away from the borders, modest radius.
			var (
				cx     = (0.15 + 0.7*rng.Float64()) * params.MapSize
				cy     = (0.15 + 0.7*rng.Float64()) * params.MapSize
				radius = (0.05 + 0.07*rng.Float64()) * params.MapSize
				pts    = make([]geom.Point, zoneVertexMax)
				i      int
			)
			for i = 0; i < zoneVertexMax; i++ {
				var (
					a = 2 * math.Pi * rng.Float64()
					r = radius * math.Sqrt(rng.Float64())
				)
				pts[i] = geom.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
			}
			hull, herr := geom.ConvexHull(pts)
			if herr != nil || len(hull) < zoneVertexMin || len(hull) > zoneVertexMax {
				continue
			}
			zones = append(zones, geom.Polygon{Vertices: hull})
			placed = true

			break
		}
		if !placed {
			return nil, ErrPlacement
		}
	}

	return zones, nil
}

// generateNodes places the hub near the center and delivery nodes anywhere on
// the map, all with the required zone clearance, then flags charging stations.
func generateNodes(rng *rand.Rand, params Params, zones []geom.Polygon) ([]graph.Node, error) {
	nodes := make([]graph.Node, params.Nodes)

	// Hub: map center ± hubCenterBand, clearance ≥ HubClearance.
	var (
		center = params.MapSize / 2
		band   = hubCenterBand * params.MapSize
		placed bool
		i      int
	)
	for i = 0; i < maxAttempts; i++ {
		p := geom.Point{
			X: center + (2*rng.Float64()-1)*band,
			Y: center + (2*rng.Float64()-1)*band,
		}
		if pointClearance(p, zones) >= HubClearance {
			nodes[0] = graph.Node{ID: 0, Pos: p, Hub: true}
			placed = true

			break
		}
	}
	if !placed {
		return nil, ErrPlacement
	}

	// Delivery nodes: anywhere on the map, clearance ≥ NodeClearance.
	var id int
	for id = 1; id < params.Nodes; id++ {
		placed = false
		for i = 0; i < maxAttempts; i++ {
			p := geom.Point{
				X: rng.Float64() * params.MapSize,
				Y: rng.Float64() * params.MapSize,
			}
			if pointClearance(p, zones) >= NodeClearance {
				nodes[id] = graph.Node{ID: id, Pos: p}
				placed = true

				break
			}
		}
		if !placed {
			return nil, ErrPlacement
		}
	}

	// Charging stations: ~ChargingShare of non-hub nodes, at least one.
	if params.Nodes > 1 {
		count := int(math.Round(ChargingShare * float64(params.Nodes-1)))
		if count < 1 {
			count = 1
		}
		ids := make([]int, params.Nodes-1)
		for i = 0; i < len(ids); i++ {
			ids[i] = i + 1
		}
		rng.Shuffle(len(ids), func(a, b int) { ids[a], ids[b] = ids[b], ids[a] })
		for i = 0; i < count; i++ {
			nodes[ids[i]].Charging = true
		}
	}

	return nodes, nil
}

// pointClearance returns the distance from p to the nearest zone boundary,
// zero when p lies inside any zone.
func pointClearance(p geom.Point, zones []geom.Polygon) float64 {
	var (
		best = math.Inf(1)
		z    int
	)
	for z = 0; z < len(zones); z++ {
		if geom.PointInPolygon(p, zones[z]) {
			return 0
		}
		zones[z].Edges(func(e geom.Segment) bool {
			if d := geom.PointToSegmentDistance(p, e); d < best {
				best = d
			}

			return true
		})
	}

	return best
}

// Package graph - instance JSON codec.
//
// The on-disk schema carries only the instance inputs (nodes, zones, map
// size); the dense edge table is rebuilt deterministically by Build on load,
// so Graph → JSON → Graph reproduces nodes, zones, and map size exactly.
//
// I/O failures wrap the underlying error; schema violations surface the
// validation sentinels from types.go.
package graph

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/droneroute/geom"
)

// nodeJSON mirrors one instance node on disk.
type nodeJSON struct {
	ID         int     `json:"id"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	IsHub      bool    `json:"is_hub"`
	IsCharging bool    `json:"is_charging"`
}

// zoneJSON mirrors one no-fly polygon on disk.
type zoneJSON struct {
	Vertices [][2]float64 `json:"vertices"`
}

// instanceJSON is the full instance document.
type instanceJSON struct {
	Nodes      []nodeJSON `json:"nodes"`
	NoFlyZones []zoneJSON `json:"no_fly_zones"`
	MapSize    float64    `json:"map_size"`
}

// MarshalJSON encodes the instance inputs (not the derived edge table).
func (g *Graph) MarshalJSON() ([]byte, error) {
	doc := instanceJSON{
		Nodes:      make([]nodeJSON, len(g.nodes)),
		NoFlyZones: make([]zoneJSON, len(g.zones)),
		MapSize:    g.mapSize,
	}

	var i, v int
	for i = 0; i < len(g.nodes); i++ {
		doc.Nodes[i] = nodeJSON{
			ID:         g.nodes[i].ID,
			X:          g.nodes[i].Pos.X,
			Y:          g.nodes[i].Pos.Y,
			IsHub:      g.nodes[i].Hub,
			IsCharging: g.nodes[i].Charging,
		}
	}
	for i = 0; i < len(g.zones); i++ {
		verts := make([][2]float64, len(g.zones[i].Vertices))
		for v = 0; v < len(g.zones[i].Vertices); v++ {
			verts[v] = [2]float64{g.zones[i].Vertices[v].X, g.zones[i].Vertices[v].Y}
		}
		doc.NoFlyZones[i] = zoneJSON{Vertices: verts}
	}

	return json.MarshalIndent(doc, "", "  ")
}

// FromJSON decodes an instance document and rebuilds the graph (edge table
// included) through Build, so all validation sentinels apply.
func FromJSON(data []byte) (*Graph, error) {
	var doc instanceJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("graph: decode instance: %w", err)
	}

	var (
		nodes = make([]Node, len(doc.Nodes))
		zones = make([]geom.Polygon, len(doc.NoFlyZones))
		i, v  int
	)
	for i = 0; i < len(doc.Nodes); i++ {
		nodes[i] = Node{
			ID:       doc.Nodes[i].ID,
			Pos:      geom.Point{X: doc.Nodes[i].X, Y: doc.Nodes[i].Y},
			Hub:      doc.Nodes[i].IsHub,
			Charging: doc.Nodes[i].IsCharging,
		}
	}
	for i = 0; i < len(doc.NoFlyZones); i++ {
		verts := make([]geom.Point, len(doc.NoFlyZones[i].Vertices))
		for v = 0; v < len(doc.NoFlyZones[i].Vertices); v++ {
			verts[v] = geom.Point{
				X: doc.NoFlyZones[i].Vertices[v][0],
				Y: doc.NoFlyZones[i].Vertices[v][1],
			}
		}
		zones[i] = geom.Polygon{Vertices: verts}
	}

	return Build(nodes, zones, doc.MapSize)
}

// LoadFile reads and decodes an instance file.
func LoadFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graph: read instance file: %w", err)
	}

	return FromJSON(data)
}

// SaveFile encodes the instance and writes it to path.
func (g *Graph) SaveFile(path string) error {
	data, err := g.MarshalJSON()
	if err != nil {
		return fmt.Errorf("graph: encode instance: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("graph: write instance file: %w", err)
	}

	return nil
}

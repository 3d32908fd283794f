// Package geom provides the planar geometry kernel shared by the routing
// engine: points, segments, simple polygons, orientation/intersection
// predicates, point-in-polygon, point/segment/polygon distances, Andrew's
// monotone-chain convex hull, and polar angles.
//
// # What & Why
//
// Every higher layer (graph construction, edge risk scoring, heuristic
// constructions) reduces to a handful of primitives implemented here once,
// with a single floating-point tolerance Eps governing all comparisons.
//
// # Determinism & Stability
//
//   - No randomness anywhere in this package.
//   - All predicates collapse |value| < Eps to zero, so verdicts are stable
//     under harmless FP noise.
//   - ConvexHull sorts lexicographically by (x, y) with Eps equality; output
//     order is therefore a pure function of the input multiset.
//
// # Input Requirements
//
// Polygons must be simple and closed with at least three vertices; the
// constructor-level check lives in the graph/instance layers (sentinel
// ErrDegeneratePolygon here). Vertices may wind in either direction.
//
// Complexity: all predicates are O(1); polygon queries are O(k) in the vertex
// count; ConvexHull is O(n log n).
package geom

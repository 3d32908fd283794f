// Package geom - Andrew's monotone-chain convex hull and polar angles.
//
// ConvexHull is the seed of the hull-insertion construction in the heuristic
// solver; PolarAngle drives the angular-sweep construction. Both are kept here
// so every consumer agrees on tie-breaking and tolerance.
//
// Complexity: ConvexHull O(n log n) time, O(n) space; PolarAngle O(1).
package geom

import (
	"math"
	"sort"
)

// cross returns the z-component of (b−a) × (c−a).
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// ConvexHull returns the convex hull of pts in counter-clockwise order without
// repeating the first vertex. Collinear boundary points are discarded
// (cross ≤ 0 is a non-left turn). Inputs with fewer than three points are
// returned sorted, duplicates included; all-collinear inputs reduce to their
// two extreme points.
func ConvexHull(pts []Point) ([]Point, error) {
	if len(pts) == 0 {
		return nil, ErrEmptyPointSet
	}

	// Lexicographic sort by (x, y) with Eps equality on x.
	sorted := make([]Point, len(pts))
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool {
		if math.Abs(sorted[i].X-sorted[j].X) < Eps {
			return sorted[i].Y < sorted[j].Y
		}

		return sorted[i].X < sorted[j].X
	})

	n := len(sorted)
	if n < 3 {
		out := make([]Point, n)
		copy(out, sorted)

		return out, nil
	}

	var (
		hull = make([]Point, 0, 2*n)
		i    int
	)

	// Lower hull.
	for i = 0; i < n; i++ {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], sorted[i]) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, sorted[i])
	}

	// Upper hull.
	lower := len(hull) + 1
	for i = n - 2; i >= 0; i-- {
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], sorted[i]) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, sorted[i])
	}

	// Drop the duplicated starting vertex closing the chain.
	return hull[:len(hull)-1], nil
}

// PolarAngle returns the angle of point relative to center in (−π, π].
func PolarAngle(center, point Point) float64 {
	return math.Atan2(point.Y-center.Y, point.X-center.X)
}

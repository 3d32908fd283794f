// Package pareto - scalar front-quality metrics.
//
// Hypervolume is the classical 2-D dominated-area sweep over the (distance,
// risk) projection against an explicit reference point; Spread is the mean
// Euclidean gap between adjacent members in full 3-D objective space.
//
// Both metrics sort by distance (risk tie-break) and are pure functions of
// the member set.
//
// Complexity: O(m log m) for a front of m members.
package pareto

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RefPoint is the hypervolume reference point on the (distance, risk) plane.
type RefPoint struct {
	Distance float64
	Risk     float64
}

// DefaultRefPoint suits instances on a 100×100 map: distance is bounded well
// below 1000 and accumulated risk well below 100.
func DefaultRefPoint() RefPoint {
	return RefPoint{Distance: 1000, Risk: 100}
}

// sortedByDistance returns the members ordered by (distance, risk) ascending.
func (f *Front) sortedByDistance() []Solution {
	out := make([]Solution, len(f.members))
	copy(out, f.members)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Objectives.Distance == out[j].Objectives.Distance {
			return out[i].Objectives.Risk < out[j].Objectives.Risk
		}

		return out[i].Objectives.Distance < out[j].Objectives.Distance
	})

	return out
}

// Hypervolume returns the area of the (distance, risk) region dominated by
// the front and bounded by ref. Members at or beyond ref on either axis, or
// not improving on the running risk level, contribute zero.
func (f *Front) Hypervolume(ref RefPoint) float64 {
	if len(f.members) == 0 {
		return 0
	}

	var (
		pts   = f.sortedByDistance()
		prevY = ref.Risk
		hv    float64
		i     int
	)
	for i = 0; i < len(pts); i++ {
		var (
			x = pts[i].Objectives.Distance
			y = pts[i].Objectives.Risk
		)
		if x < ref.Distance && y < prevY {
			hv += (ref.Distance - x) * (prevY - y)
			prevY = y
		}
	}

	return hv
}

// Spread returns the mean 3-D Euclidean gap between consecutive members after
// sorting by distance. Fronts with fewer than two members have zero spread.
func (f *Front) Spread() float64 {
	if len(f.members) < 2 {
		return 0
	}

	var (
		pts  = f.sortedByDistance()
		gaps = make([]float64, 0, len(pts)-1)
		a    [3]float64
		b    [3]float64
		i    int
	)
	for i = 1; i < len(pts); i++ {
		a[0], a[1], a[2] = pts[i-1].Objectives.Distance, pts[i-1].Objectives.Risk, float64(pts[i-1].Objectives.Recharges)
		b[0], b[1], b[2] = pts[i].Objectives.Distance, pts[i].Objectives.Risk, float64(pts[i].Objectives.Recharges)
		gaps = append(gaps, floats.Distance(a[:], b[:], 2))
	}

	return stat.Mean(gaps, nil)
}

// Package geom - orientation and segment-intersection predicates.
//
// Orientation and SegmentsIntersect are the backbone of every visibility query
// in the graph layer. Both follow the classical four-orientation test with the
// collinear sub-cases resolved by bounding-box containment under Eps slack.
//
// Complexity: O(1) per call, no allocations.
package geom

// Orientation classifies the ordered triple (p, q, r):
//
//	+1 → clockwise turn
//	-1 → counter-clockwise turn
//	 0 → collinear (|cross| < Eps)
func Orientation(p, q, r Point) int {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	if val > -Eps && val < Eps {
		return 0
	}
	if val > 0 {
		return 1
	}

	return -1
}

// OnSegment reports whether point q lies inside the bounding box of segment
// pr, with Eps slack on every side. Callers must have established that p, q, r
// are collinear; combined with collinearity this is exact segment containment.
func OnSegment(p, q, r Point) bool {
	return q.X <= max(p.X, r.X)+Eps && q.X >= min(p.X, r.X)-Eps &&
		q.Y <= max(p.Y, r.Y)+Eps && q.Y >= min(p.Y, r.Y)-Eps
}

// SegmentsIntersect reports whether s1 and s2 share at least one point,
// touching endpoints included.
func SegmentsIntersect(s1, s2 Segment) bool {
	var (
		o1 = Orientation(s1.A, s1.B, s2.A)
		o2 = Orientation(s1.A, s1.B, s2.B)
		o3 = Orientation(s2.A, s2.B, s1.A)
		o4 = Orientation(s2.A, s2.B, s1.B)
	)

	// General position: the endpoints of each segment straddle the other.
	if o1 != o2 && o3 != o4 {
		return true
	}

	// Collinear sub-cases: an endpoint of one segment lies on the other.
	if o1 == 0 && OnSegment(s1.A, s2.A, s1.B) {
		return true
	}
	if o2 == 0 && OnSegment(s1.A, s2.B, s1.B) {
		return true
	}
	if o3 == 0 && OnSegment(s2.A, s1.A, s2.B) {
		return true
	}
	if o4 == 0 && OnSegment(s2.A, s1.B, s2.B) {
		return true
	}

	return false
}

// Package pareto - the non-dominated front with monotone insertion.
//
// Add is the single mutation point and preserves all front invariants; Merge
// clones members so the receiving front never aliases solver-owned slices.
//
// Complexity: Add O(m) against a front of m members; Merge O(m·m').
package pareto

// Front is a set of mutually non-dominated feasible solutions.
// The zero value is an empty, ready-to-use front.
type Front struct {
	members []Solution
}

// NewFront returns an empty front.
func NewFront() *Front {
	return &Front{}
}

// Size returns the number of members.
func (f *Front) Size() int { return len(f.members) }

// Members returns the member slice; callers must treat it as read-only.
func (f *Front) Members() []Solution { return f.members }

// Add offers s to the front. It returns true when s was admitted, in which
// case every previously present member dominated by s has been evicted.
// Infeasible solutions and strict objective duplicates are rejected.
func (f *Front) Add(s Solution) bool {
	if !s.Feasible {
		return false
	}

	var i int
	for i = 0; i < len(f.members); i++ {
		if f.members[i].Dominates(s) || f.members[i].Objectives.Equal(s.Objectives) {
			return false
		}
	}

	// Evict members dominated by s, compacting in place.
	kept := f.members[:0]
	for i = 0; i < len(f.members); i++ {
		if !s.Dominates(f.members[i]) {
			kept = append(kept, f.members[i])
		}
	}
	f.members = append(kept, s.Clone())

	return true
}

// Merge offers every member of other to f. Members are cloned on admission,
// so the two fronts share no storage afterwards.
func (f *Front) Merge(other *Front) {
	if other == nil {
		return
	}
	var i int
	for i = 0; i < len(other.members); i++ {
		f.Add(other.members[i])
	}
}

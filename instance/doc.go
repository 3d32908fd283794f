// Package instance generates random delivery instances: convex no-fly zones,
// a hub near the map center, delivery nodes with guaranteed zone clearance,
// and a share of charging stations.
//
// Generation is driven entirely by a seeded PRNG - the same (Params, Seed)
// always produces the same graph, which is what the experiment harness and
// the test suite rely on.
//
// Placement uses rejection sampling against the zones already drawn: the hub
// keeps at least HubClearance units of clearance, every other node at least
// NodeClearance. Zones are convex hulls of random discs, redrawn until the
// hull has 4-7 vertices.
package instance

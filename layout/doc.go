// Package layout models a layered dungeon as room listings plus a
// forward-edge graph, and validates that the two stay consistent.
//
// What:
//
//   - Room is an opaque host handle; nil marks a hole (kept slot, no room).
//   - Coord addresses a slot as (Layer, Room); Position is an optional Coord.
//   - Graph stores forward edges per slot, layer l to layer l+1 only.
//   - Validate cross-checks a room listing against a Graph.
//   - Generate produces deterministic pseudo-random layouts for tests.
//
// Why:
//
//   - Roguelike floors: one-way descent through layered rooms.
//   - Stage graphs: branching level selection with dead ends and holes.
//   - Any DAG whose nodes naturally bucket into ordered ranks.
//
// Complexity:
//
//   - Connect / Next / Degree:  O(d)            (d = out-degree, Next sorts).
//   - Validate:                 O(L·R·d), Memory: O(1).
//   - Generate:                 O(L·R·b), Memory: O(L·R)  (b = branching cap).
//
// Options (Generate only):
//
//   - WithSeed: RNG seed; 0 selects a fixed default stream.
//   - WithHoleChance: probability in [0,1] that a slot is a hole.
//   - WithBranching: cap on forward edges per room, at least 1.
//
// Errors:
//
//   - ErrNilListing / ErrNilGraph: Validate got nothing to check.
//   - ErrLayerCount: graph has fewer layers than the listing.
//   - ErrNilListingRow / ErrNilGraphRow: a layer is missing on one side.
//   - ErrRoomCount: a graph layer is narrower than the listing's.
//   - ErrEdgeTarget: an edge points past the next layer's room range.
//   - ErrCoordOutOfRange: Connect called with a source outside the graph.
//   - ErrGenShape / ErrGenChance / ErrGenBranch: bad Generate parameters.
package layout

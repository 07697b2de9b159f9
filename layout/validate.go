package layout

import "fmt"

// Validate cross-checks the room-by-layer listing against the forward-edge
// graph and returns nil when the two structures are consistent, or a
// descriptive error naming the first inconsistency found. It is a read-only
// diagnostic: it mutates nothing, and a failing layout does not prevent the
// search from running on whatever is there.
//
// Checks, in order, short-circuiting on the first failure:
//  1. Listing or graph entirely absent.
//  2. Graph covering fewer layers than the listing.
//  3. Per layer: nil listing row, nil graph row, graph row narrower than
//     the listing row.
//  4. Per edge leaving a non-final layer: target index must address an
//     existing room of the next layer.
//
// The listing is the authority on which rooms exist; the graph is the
// authority on edges. Graph rows wider than their listing row are tolerated,
// and only the listing's room range is scanned for edges.
//
// Complexity: O(total rooms + total edges).
func Validate(rooms [][]Room, g *Graph) error {
	// 1) Absent inputs.
	if rooms == nil {
		return ErrNilListing
	}
	if g == nil {
		return ErrNilGraph
	}

	// 2) Layer coverage.
	if g.Layers() < len(rooms) {
		return fmt.Errorf("%w: graph has %d, listing has %d", ErrLayerCount, g.Layers(), len(rooms))
	}

	// 3) Per-layer shape.
	for l := range rooms {
		if rooms[l] == nil {
			return fmt.Errorf("%w: layer %d", ErrNilListingRow, l)
		}
		if !g.HasRow(l) {
			return fmt.Errorf("%w: layer %d", ErrNilGraphRow, l)
		}
		if g.Rooms(l) < len(rooms[l]) {
			return fmt.Errorf("%w: layer %d lists %d rooms, graph has %d",
				ErrRoomCount, l, len(rooms[l]), g.Rooms(l))
		}
	}

	// 4) Edge targets, non-final layers only.
	for l := 0; l < len(rooms)-1; l++ {
		limit := len(rooms[l+1])
		for r := range rooms[l] {
			for _, t := range g.Next(Coord{Layer: l, Room: r}) {
				if t >= limit {
					return fmt.Errorf("%w: edge (%d,%d)→%d, next layer has %d rooms",
						ErrEdgeTarget, l, r, t, limit)
				}
			}
		}
	}

	return nil
}

// Package layout defines core types and sentinel errors for layered
// dungeon layouts: room coordinates, the optional player position, and
// the forward-edge graph connecting each layer to the next.
package layout

import (
	"errors"
	"fmt"
)

// Sentinel errors for layout construction and validation.
var (
	// ErrNilListing indicates the room-by-layer listing is absent.
	ErrNilListing = errors.New("layout: room listing is absent")

	// ErrNilGraph indicates the forward-edge graph is absent.
	ErrNilGraph = errors.New("layout: forward-edge graph is absent")

	// ErrLayerCount indicates the graph covers fewer layers than the listing.
	ErrLayerCount = errors.New("layout: graph has fewer layers than the listing")

	// ErrNilListingRow indicates a layer row of the listing is nil.
	ErrNilListingRow = errors.New("layout: listing layer row is nil")

	// ErrNilGraphRow indicates a layer row of the graph is nil.
	ErrNilGraphRow = errors.New("layout: graph layer row is nil")

	// ErrRoomCount indicates a graph layer is narrower than the listing layer.
	ErrRoomCount = errors.New("layout: graph layer narrower than the listing")

	// ErrEdgeTarget indicates an edge references a room outside the next layer.
	ErrEdgeTarget = errors.New("layout: edge target outside the next layer")

	// ErrCoordOutOfRange indicates a coordinate addresses no room in the graph.
	ErrCoordOutOfRange = errors.New("layout: coordinate outside the layout")

	// ErrGenShape indicates Generate was asked for zero layers or zero rooms.
	ErrGenShape = errors.New("layout: generator needs at least one layer and one room")

	// ErrGenChance indicates a hole chance outside the closed interval [0,1].
	ErrGenChance = errors.New("layout: hole chance must be within [0,1]")

	// ErrGenBranch indicates a branching factor below one.
	ErrGenBranch = errors.New("layout: branching must be at least 1")
)

// Room is an opaque handle for a single room as supplied by the host
// environment. The engine never inspects it; it is only handed back to the
// weight calculator. A nil entry in a listing row marks a hole: a missing
// or destroyed room whose slot still counts toward the layer's width.
type Room interface{}

// Coord identifies a room as a (layer, room-index) pair.
// Two coordinates are equal iff both components match.
type Coord struct {
	Layer int // rank of the layer, 0-based, increasing with depth
	Room  int // index of the room within its layer, 0-based
}

// Less reports whether c orders before o lexicographically:
// first by Layer, then by Room. Used for deterministic tie-breaks.
// Complexity: O(1).
func (c Coord) Less(o Coord) bool {
	if c.Layer != o.Layer {
		return c.Layer < o.Layer
	}

	return c.Room < o.Room
}

// String renders the coordinate as "(layer,room)" for diagnostics.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Layer, c.Room)
}

// Position is an optional room coordinate, typically the player's
// location. The zero value is "unknown". Using an explicit optional
// instead of a magic (-1,-1) pair keeps negative indices from ever
// looking like valid coordinates.
type Position struct {
	coord Coord
	known bool
}

// At returns a known Position at (layer, room).
func At(layer, room int) Position {
	return Position{coord: Coord{Layer: layer, Room: room}, known: true}
}

// Unknown returns the "position not known" value.
func Unknown() Position {
	return Position{}
}

// FromSentinel adapts the host-side encoding, where any negative component
// means "unknown", into an explicit Position.
func FromSentinel(layer, room int) Position {
	if layer < 0 || room < 0 {
		return Unknown()
	}

	return At(layer, room)
}

// Coord returns the underlying coordinate and whether it is known.
func (p Position) Coord() (Coord, bool) {
	return p.coord, p.known
}

// Known reports whether the position holds a coordinate.
func (p Position) Known() bool {
	return p.known
}

// String renders "(layer,room)" for a known position and "unknown" otherwise.
func (p Position) String() string {
	if !p.known {
		return "unknown"
	}

	return p.coord.String()
}

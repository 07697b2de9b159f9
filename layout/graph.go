// Package layout provides the forward-edge graph over a layered room
// layout: per (layer, room), the set of room indices in the next layer
// reachable by a single directed edge.
package layout

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Graph holds the directed connections of a layered layout. Edges only run
// from a room in layer L to rooms in layer L+1; the rule is structural:
// Connect and FromTargets never record anything else, so the graph can hold
// no cycles, back-edges, or skip-layer edges.
//
// A layer row may be nil when the host supplied none for that layer; Validate
// reports this, and every accessor treats a nil row as "no rooms". An empty
// target set (or a room outside the graph) is a dead end.
type Graph struct {
	// rows[layer][room] = set of room indices in layer+1.
	rows [][]mapset.Set[int]
}

// NewGraph allocates a graph shaped by the given per-layer room counts,
// with every target set empty. Negative counts are treated as zero.
// Complexity: O(total rooms).
func NewGraph(roomsPerLayer ...int) *Graph {
	rows := make([][]mapset.Set[int], len(roomsPerLayer))
	for l, n := range roomsPerLayer {
		if n < 0 {
			n = 0
		}
		row := make([]mapset.Set[int], n)
		for r := range row {
			row[r] = mapset.New[int]()
		}
		rows[l] = row
	}

	return &Graph{rows: rows}
}

// FromTargets wraps host-shaped edge data: targets[layer][room] lists the
// next-layer room indices reachable from that room. Values are copied
// verbatim (duplicates collapse into the set); a nil layer slice is
// preserved as a nil row so Validate can report it. Range-checking the
// targets themselves is Validate's job, not ours.
// Complexity: O(total targets).
func FromTargets(targets [][][]int) *Graph {
	rows := make([][]mapset.Set[int], len(targets))
	for l, layer := range targets {
		if layer == nil {
			continue // preserve absent row
		}
		row := make([]mapset.Set[int], len(layer))
		for r, ts := range layer {
			set := mapset.New[int]()
			for _, t := range ts {
				set.Put(t)
			}
			row[r] = set
		}
		rows[l] = row
	}

	return &Graph{rows: rows}
}

// Layers returns the number of layer rows the graph covers.
// Complexity: O(1).
func (g *Graph) Layers() int {
	return len(g.rows)
}

// Rooms returns the number of rooms the graph records for layer, or 0 when
// the layer is out of range or its row is nil.
// Complexity: O(1).
func (g *Graph) Rooms(layer int) int {
	if layer < 0 || layer >= len(g.rows) {
		return 0
	}

	return len(g.rows[layer])
}

// HasRow reports whether the host supplied a (possibly empty) row for layer.
// Complexity: O(1).
func (g *Graph) HasRow(layer int) bool {
	return layer >= 0 && layer < len(g.rows) && g.rows[layer] != nil
}

// Connect records forward edges from a room to the given next-layer room
// indices. Returns ErrCoordOutOfRange if from addresses no room in the
// graph, or ErrEdgeTarget for a negative target index. Target indices are
// otherwise recorded as given; whether they land on existing rooms is
// checked by Validate against the listing.
// Complexity: O(len(to)).
func (g *Graph) Connect(from Coord, to ...int) error {
	if from.Layer < 0 || from.Layer >= len(g.rows) {
		return fmt.Errorf("%w: %s", ErrCoordOutOfRange, from)
	}
	row := g.rows[from.Layer]
	if from.Room < 0 || from.Room >= len(row) {
		return fmt.Errorf("%w: %s", ErrCoordOutOfRange, from)
	}
	for _, t := range to {
		if t < 0 {
			return fmt.Errorf("%w: %s→%d", ErrEdgeTarget, from, t)
		}
		row[from.Room].Put(t)
	}

	return nil
}

// Next returns the next-layer room indices reachable from c, in ascending
// order, or nil when c is a dead end or addresses no room. The ascending
// order makes neighbor iteration deterministic regardless of set internals.
// Complexity: O(d log d) for out-degree d.
func (g *Graph) Next(c Coord) []int {
	if c.Layer < 0 || c.Layer >= len(g.rows) {
		return nil
	}
	row := g.rows[c.Layer]
	if c.Room < 0 || c.Room >= len(row) {
		return nil
	}
	set := row[c.Room]
	if set.Size() == 0 {
		return nil
	}
	out := make([]int, 0, set.Size())
	set.Each(func(t int) {
		out = append(out, t)
	})
	sort.Ints(out)

	return out
}

// Degree returns the number of distinct forward edges leaving c.
// Complexity: O(1).
func (g *Graph) Degree(c Coord) int {
	if c.Layer < 0 || c.Layer >= len(g.rows) {
		return 0
	}
	row := g.rows[c.Layer]
	if c.Room < 0 || c.Room >= len(row) {
		return 0
	}

	return row[c.Room].Size()
}

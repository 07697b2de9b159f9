package weightgrid

import (
	"fmt"
	"strings"
)

// Grid is a row-major rectangular grid of room weights: one row per layer,
// every row padded to the widest layer's room count. Cells past a layer's
// true room count exist but are never read by the search; they stay at the
// zero weight they were allocated with.
type Grid struct {
	layers, width int       // row and column counts
	cells         []float64 // flat backing storage, length == layers*width
}

// cellErrorf wraps an underlying error with Grid method context.
func cellErrorf(method string, layer, room int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, layer, room, err)
}

// NewGrid allocates a layers × width grid of zero weights.
// Complexity: O(layers·width).
func NewGrid(layers, width int) (*Grid, error) {
	if layers <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrGridDims, layers, width)
	}

	return &Grid{layers: layers, width: width, cells: make([]float64, layers*width)}, nil
}

// Layers returns the number of grid rows.
// Complexity: O(1).
func (g *Grid) Layers() int {
	return g.layers
}

// Width returns the number of grid columns (the widest layer's room count).
// Complexity: O(1).
func (g *Grid) Width() int {
	return g.width
}

// InBounds reports whether (layer, room) addresses a cell of the grid.
// Note this is a rectangular check only; whether the cell corresponds to a
// real room of that layer is the listing's knowledge, not the grid's.
// Complexity: O(1).
func (g *Grid) InBounds(layer, room int) bool {
	return layer >= 0 && layer < g.layers && room >= 0 && room < g.width
}

// indexOf computes the flat index of (layer, room) or ErrCellOutOfRange.
// Complexity: O(1).
func (g *Grid) indexOf(method string, layer, room int) (int, error) {
	if !g.InBounds(layer, room) {
		return 0, cellErrorf(method, layer, room, ErrCellOutOfRange)
	}

	return layer*g.width + room, nil
}

// At retrieves the weight stored at (layer, room).
// Complexity: O(1).
func (g *Grid) At(layer, room int) (float64, error) {
	idx, err := g.indexOf("At", layer, room)
	if err != nil {
		return 0, err
	}

	return g.cells[idx], nil
}

// Set assigns weight w at (layer, room).
// Complexity: O(1).
func (g *Grid) Set(layer, room int, w float64) error {
	idx, err := g.indexOf("Set", layer, room)
	if err != nil {
		return err
	}
	g.cells[idx] = w

	return nil
}

// Clone returns a deep copy of the grid.
// Complexity: O(layers·width).
func (g *Grid) Clone() *Grid {
	cells := make([]float64, len(g.cells))
	copy(cells, g.cells)

	return &Grid{layers: g.layers, width: g.width, cells: cells}
}

// String renders one bracketed row per layer for debugging.
// Complexity: O(layers·width).
func (g *Grid) String() string {
	var b strings.Builder
	for l := 0; l < g.layers; l++ {
		b.WriteByte('[')
		for r := 0; r < g.width; r++ {
			if r > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", g.cells[l*g.width+r])
		}
		b.WriteString("]\n")
	}

	return b.String()
}

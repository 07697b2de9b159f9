// Package weightgrid builds the per-room weight grid consumed by the path
// search: a rectangular float64 grid sized layers × widest layer, plus the
// per-room debug annotations collected alongside each weight.
package weightgrid

import (
	"errors"

	"github.com/katalvlaran/delvepath/layout"
)

// ErrGridDims indicates requested grid dimensions are non-positive.
var ErrGridDims = errors.New("weightgrid: dimensions must be positive")

// ErrCellOutOfRange indicates a (layer, room) cell outside the grid.
var ErrCellOutOfRange = errors.New("weightgrid: cell outside the grid")

// Calculator scores a single room. Evaluate returns the room's weight and a
// free-form debug annotation in one query; Build calls it exactly once per
// present room per rebuild, so implementations may be expensive but must be
// side-effect free from the grid's perspective. Weight values pass through
// uninterpreted: negative, zero, or non-finite values are all legal inputs
// to the search.
type Calculator interface {
	Evaluate(room layout.Room) (weight float64, annotation string)
}

// CalcFunc adapts a plain function to the Calculator interface.
type CalcFunc func(room layout.Room) (float64, string)

// Evaluate implements Calculator by calling f.
func (f CalcFunc) Evaluate(room layout.Room) (float64, string) {
	return f(room)
}

// Annotations maps each present room's coordinate to the debug text its
// calculator returned. Holes never get an entry, so presence in the map
// doubles as "a room existed here when the grid was built". Purely
// informational; the search never reads it.
type Annotations map[layout.Coord]string

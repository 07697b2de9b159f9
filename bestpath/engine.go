package bestpath

import (
	"github.com/katalvlaran/delvepath/layout"
	"github.com/katalvlaran/delvepath/weightgrid"
)

// Engine ties weight-grid construction and the path search into the
// per-cycle flow a host runs each refresh: rebuild weights, search, hand
// the outcome to presentation. It owns the grid, annotations, and best
// path between cycles and replaces them wholesale on each call, so a
// consumer never observes a half-updated cycle.
//
// An Engine is not safe for concurrent use: the host serializes cycles
// (rebuild → search → present) on the thread that owns the layout
// snapshot, and no call is reentrant.
type Engine struct {
	calc weightgrid.Calculator
	base []Option // applied to every search run, before the player option

	grid  *weightgrid.Grid
	notes weightgrid.Annotations
	last  *Result
	best  []layout.Coord
}

// NewEngine returns an Engine that scores rooms with calc and applies opts
// to every search run. A nil calc is tolerated: weight rebuilds then yield
// an absent grid and searches return empty paths.
func NewEngine(calc weightgrid.Calculator, opts ...Option) *Engine {
	return &Engine{calc: calc, base: opts}
}

// RebuildWeights replaces the engine's weight grid and annotations from the
// given listing. The previous grid is discarded unconditionally, even when
// the new listing is absent or empty (the grid then becomes absent and the
// next search returns an empty path).
func (e *Engine) RebuildWeights(rooms [][]layout.Room) {
	e.grid, e.notes = weightgrid.Build(rooms, e.calc)
}

// FindBestPath runs the search over the engine's current grid and replaces
// the stored result and best path. The previous path is discarded wholesale;
// an empty path is a normal outcome, never a fault.
func (e *Engine) FindBestPath(g *layout.Graph, rooms [][]layout.Room, player layout.Position) []layout.Coord {
	opts := make([]Option, 0, len(e.base)+1)
	opts = append(opts, e.base...)
	opts = append(opts, WithPlayer(player))

	e.last = Search(e.grid, g, rooms, opts...)
	e.best = e.last.Best()

	return e.best
}

// Recompute runs one full cycle: rebuild weights, then search. It returns
// the new best path for convenience; Grid, Annotations, Result and
// BestPath expose the same cycle's artifacts until the next call.
func (e *Engine) Recompute(g *layout.Graph, rooms [][]layout.Room, player layout.Position) []layout.Coord {
	e.RebuildWeights(rooms)

	return e.FindBestPath(g, rooms, player)
}

// Grid returns the current weight grid, nil when the last rebuild had
// nothing to build.
func (e *Engine) Grid() *weightgrid.Grid {
	return e.grid
}

// Annotations returns the current per-room debug annotations, nil when the
// last rebuild had nothing to build.
func (e *Engine) Annotations() weightgrid.Annotations {
	return e.notes
}

// Result returns the last search outcome, nil before the first search.
func (e *Engine) Result() *Result {
	return e.last
}

// BestPath returns the last computed best path, nil before the first
// search or when nothing was reachable.
func (e *Engine) BestPath() []layout.Coord {
	return e.best
}

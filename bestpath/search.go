// Package bestpath implements the longest-path search over a layered room
// layout: a label-correcting relaxation that maximizes cumulative room
// weight, in the shape of Dijkstra but with a max-heap and no finalization.
//
// Nodes carry the weights (not edges), and a node's weight is added when the
// node is entered. That makes the pop sequence non-monotone: a coordinate
// popped early can later be improved through a heavier parent and must then
// be re-scheduled. The indexed heap re-keys in-place entries and re-admits
// already-popped ones, so every improvement propagates and the run still
// terminates: each re-schedule strictly raises a cost, and a layered DAG
// admits only finitely many path costs per node.
//
// Complexity:
//
//   - Time:  O(P log V) worst case, where P bounds distinct path costs;
//     in practice near O((V + E) log V) for layouts without extreme
//     weight spreads.
//   - Space: O(V + E).
package bestpath

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/delvepath/layout"
	"github.com/katalvlaran/delvepath/weightgrid"
)

// Search runs the longest-path relaxation from a resolved start coordinate
// and returns the per-coordinate outcome. It never fails: absent or empty
// inputs, an invalid player position, or a start that cannot be resolved
// all degrade to an empty Result. The host's layout snapshot is inherently
// racy between frames, so the search is tolerant by policy, not strict.
//
// Inputs are read-only and not retained; callers that mutate the layout
// concurrently must snapshot it first.
//
// Start resolution, in order:
//  1. The player position, when known and within the listing and grid.
//  2. The lowest layer with at least one room, at room index 0.
//  3. Neither resolves: empty Result.
func Search(grid *weightgrid.Grid, g *layout.Graph, rooms [][]layout.Room, opts ...Option) *Result {
	// 1) Apply functional options over defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Guard: nothing to search on. Empty result, never an error.
	if grid == nil || grid.Layers() == 0 || grid.Width() == 0 || g == nil || len(rooms) == 0 {
		return emptyResult()
	}

	// 3) Resolve the start coordinate.
	start, ok := resolveStart(cfg.Player, grid, rooms)
	if !ok {
		return emptyResult()
	}

	// 4) Run the relaxation.
	w := &walker{
		grid:    grid,
		g:       g,
		rooms:   rooms,
		opts:    cfg,
		cost:    make(map[layout.Coord]float64),
		parent:  make(map[layout.Coord]layout.Coord),
		hops:    make(map[layout.Coord]int),
		pending: make(map[layout.Coord]*entry),
	}
	w.init(start)
	w.process()

	// 5) Package the outcome as an owned snapshot.
	return &Result{
		Start:  layout.At(start.Layer, start.Room),
		Cost:   w.cost,
		Parent: w.parent,
		Hops:   w.hops,
	}
}

// resolveStart picks the search start: the player when valid, else the
// first populated layer at room 0. An out-of-range player silently falls
// back rather than failing.
func resolveStart(player layout.Position, grid *weightgrid.Grid, rooms [][]layout.Room) (layout.Coord, bool) {
	if c, known := player.Coord(); known &&
		c.Layer >= 0 && c.Layer < len(rooms) &&
		c.Room >= 0 && c.Room < len(rooms[c.Layer]) &&
		grid.InBounds(c.Layer, c.Room) {
		return c, true
	}
	for l := range rooms {
		if len(rooms[l]) > 0 && grid.InBounds(l, 0) {
			return layout.Coord{Layer: l, Room: 0}, true
		}
	}

	return layout.Coord{}, false
}

// walker holds the mutable state of a single search run.
type walker struct {
	grid  *weightgrid.Grid
	g     *layout.Graph
	rooms [][]layout.Room
	opts  Options

	cost    map[layout.Coord]float64      // best cumulative weight per reached coord
	parent  map[layout.Coord]layout.Coord // predecessor on the best path
	hops    map[layout.Coord]int          // best path length in coords, start = 1
	pending map[layout.Coord]*entry       // coords currently in the heap
	pq      costPQ
}

// init seeds the start coordinate: its cost is its own weight and it
// reaches itself via a one-element path.
func (w *walker) init(start layout.Coord) {
	w.cost[start] = w.weightAt(start)
	w.hops[start] = 1

	heap.Init(&w.pq)
	w.push(start, w.cost[start])
}

// process pops the highest-cost coordinate until the heap drains, relaxing
// forward edges at each settle.
func (w *walker) process() {
	for w.pq.Len() > 0 {
		e := heap.Pop(&w.pq).(*entry)
		delete(w.pending, e.coord)

		w.opts.OnSettle(e.coord, e.cost)
		if w.opts.Verbose {
			fmt.Printf("bestpath: settle %s cost=%g hops=%d\n", e.coord, e.cost, w.hops[e.coord])
		}

		w.relax(e.coord)
	}
}

// relax tries to improve every forward neighbor of from. Edge targets that
// point past the next layer's true room count or outside the grid are
// skipped; the validator reports them, the search just works around them.
func (w *walker) relax(from layout.Coord) {
	next := from.Layer + 1
	if next >= len(w.rooms) {
		return // edges past the final listing layer lead nowhere
	}
	for _, t := range w.g.Next(from) {
		if t >= len(w.rooms[next]) || !w.grid.InBounds(next, t) {
			continue
		}
		to := layout.Coord{Layer: next, Room: t}

		// Entering a node pays that node's weight. An unreached neighbor
		// ranks as negative infinity: only a strictly greater candidate
		// records it, which keeps NaN and -Inf sums out of the labels.
		cand := w.cost[from] + w.weightAt(to)
		cur, seen := w.cost[to]
		if !seen {
			cur = math.Inf(-1)
		}
		if !(cand > cur) {
			continue
		}

		w.cost[to] = cand
		w.parent[to] = from
		w.hops[to] = w.hops[from] + 1
		w.opts.OnImprove(from, to, cand)
		w.schedule(to, cand)
	}
}

// schedule re-keys to in place when it is already in the heap, otherwise
// (first visit or already popped) pushes a fresh entry.
func (w *walker) schedule(to layout.Coord, cost float64) {
	if e, ok := w.pending[to]; ok {
		e.cost = cost
		heap.Fix(&w.pq, e.index)
		return
	}
	w.push(to, cost)
}

// push inserts a new heap entry and records it as pending.
func (w *walker) push(c layout.Coord, cost float64) {
	e := &entry{coord: c, cost: cost}
	heap.Push(&w.pq, e)
	w.pending[c] = e
}

// weightAt reads the grid cell for c; cells the guards let through are
// always in bounds, but a mismatched grid degrades to negative infinity
// rather than a fault, keeping the no-fatal-outcomes policy airtight.
func (w *walker) weightAt(c layout.Coord) float64 {
	v, err := w.grid.At(c.Layer, c.Room)
	if err != nil {
		return math.Inf(-1)
	}

	return v
}

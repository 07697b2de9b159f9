package bestpath

import (
	"math"

	"github.com/katalvlaran/delvepath/layout"
)

// Result holds the outcome of one search run:
//   - Start: the resolved start position; unknown when nothing could run.
//   - Cost: best cumulative weight per reached coordinate. Presence in the
//     map means "reached"; absent coordinates were never relaxed.
//   - Parent: predecessor per reached coordinate on its best path. The
//     start has no entry, which is what terminates reconstruction.
//   - Hops: length in coordinates of the best path to each reached
//     coordinate; the start counts as 1.
//
// A Result is a snapshot owned by its caller and replaced wholesale on the
// next run; nothing inside is shared with the search that produced it.
type Result struct {
	Start  layout.Position
	Cost   map[layout.Coord]float64
	Parent map[layout.Coord]layout.Coord
	Hops   map[layout.Coord]int
}

// emptyResult is the "nothing to search" outcome: unknown start, no
// coordinates reached. Methods on it yield empty, never panic.
func emptyResult() *Result {
	return &Result{
		Start:  layout.Unknown(),
		Cost:   map[layout.Coord]float64{},
		Parent: map[layout.Coord]layout.Coord{},
		Hops:   map[layout.Coord]int{},
	}
}

// PathTo reconstructs the best path from the start to dest by walking the
// parent chain backwards, then reversing. Returns nil when dest was never
// reached; an unreached destination is a normal outcome, not a fault.
// Complexity: O(path length).
func (r *Result) PathTo(dest layout.Coord) []layout.Coord {
	if _, ok := r.Cost[dest]; !ok {
		return nil
	}
	path := []layout.Coord{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Best selects the winning destination and returns its full path: deepest
// reached coordinate first (greatest hop count), then greatest cumulative
// cost, then lowest coordinate. The total order makes the winner unique, so
// map iteration order never shows through. Returns nil when nothing was
// reached.
// Complexity: O(reached + path length).
func (r *Result) Best() []layout.Coord {
	var (
		have    bool
		win     layout.Coord
		winHops int
		winCost float64
	)
	for c, cost := range r.Cost {
		if !have || beats(r.Hops[c], cost, c, winHops, winCost, win) {
			have, win, winHops, winCost = true, c, r.Hops[c], cost
		}
	}
	if !have {
		return nil
	}

	return r.PathTo(win)
}

// beats reports whether candidate (h, cost, c) outranks the current winner
// (wh, wcost, w): more hops, then more cost, then lower coordinate. A NaN
// cost ranks below every ordered cost, and NaN-against-NaN breaks on the
// coordinate, so even a hand-built Result selects a unique winner.
func beats(h int, cost float64, c layout.Coord, wh int, wcost float64, w layout.Coord) bool {
	if h != wh {
		return h > wh
	}
	if cNaN, wNaN := math.IsNaN(cost), math.IsNaN(wcost); cNaN != wNaN {
		return wNaN
	}
	if cost > wcost {
		return true
	}
	if cost < wcost {
		return false
	}

	return c.Less(w)
}

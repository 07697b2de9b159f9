package bestpath_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/delvepath/bestpath"
	"github.com/katalvlaran/delvepath/layout"
)

// chainResult hand-builds a Result for selection tests without running a
// search: start (0,0), plus whatever extra coords the caller wires in.
func chainResult() *bestpath.Result {
	start := layout.Coord{Layer: 0, Room: 0}

	return &bestpath.Result{
		Start:  layout.At(start.Layer, start.Room),
		Cost:   map[layout.Coord]float64{start: 1},
		Parent: map[layout.Coord]layout.Coord{},
		Hops:   map[layout.Coord]int{start: 1},
	}
}

// reach wires coord c into r as reached via parent p.
func reach(r *bestpath.Result, c, p layout.Coord, cost float64, hops int) {
	r.Cost[c] = cost
	r.Parent[c] = p
	r.Hops[c] = hops
}

// TestPathTo_Unreached verifies the nil result for coordinates the search
// never touched.
func TestPathTo_Unreached(t *testing.T) {
	r := chainResult()
	if got := r.PathTo(layout.Coord{Layer: 5, Room: 5}); got != nil {
		t.Errorf("PathTo(unreached) = %v; want nil", got)
	}
}

// TestPathTo_StartOnly verifies the one-element path for the start itself.
func TestPathTo_StartOnly(t *testing.T) {
	r := chainResult()
	want := []layout.Coord{{Layer: 0, Room: 0}}
	if got := r.PathTo(want[0]); !reflect.DeepEqual(got, want) {
		t.Errorf("PathTo(start) = %v; want %v", got, want)
	}
}

// TestPathTo_WalksParents verifies the reconstruction order start→dest.
func TestPathTo_WalksParents(t *testing.T) {
	r := chainResult()
	a := layout.Coord{Layer: 1, Room: 2}
	b := layout.Coord{Layer: 2, Room: 0}
	reach(r, a, layout.Coord{Layer: 0, Room: 0}, 3, 2)
	reach(r, b, a, 7, 3)

	want := []layout.Coord{{Layer: 0, Room: 0}, a, b}
	if got := r.PathTo(b); !reflect.DeepEqual(got, want) {
		t.Errorf("PathTo(%v) = %v; want %v", b, got, want)
	}
	if len(r.PathTo(b)) != r.Hops[b] {
		t.Errorf("path length %d disagrees with Hops %d", len(r.PathTo(b)), r.Hops[b])
	}
}

// TestBest_SelectionOrder verifies the three-stage winner rule: hops beat
// cost, cost beats coordinate, and the coordinate breaks the final tie.
func TestBest_SelectionOrder(t *testing.T) {
	start := layout.Coord{Layer: 0, Room: 0}

	// A shallow heavy node loses to a deeper light one.
	r := chainResult()
	shallow := layout.Coord{Layer: 1, Room: 0}
	deep := layout.Coord{Layer: 2, Room: 0}
	reach(r, shallow, start, 100, 2)
	reach(r, layout.Coord{Layer: 1, Room: 1}, start, -4, 2)
	reach(r, deep, layout.Coord{Layer: 1, Room: 1}, -3, 3)
	if got := r.Best(); !reflect.DeepEqual(got, []layout.Coord{start, {Layer: 1, Room: 1}, deep}) {
		t.Errorf("Best() = %v; want the deeper node despite lower cost", got)
	}

	// Equal depth: greater cost wins.
	r = chainResult()
	reach(r, layout.Coord{Layer: 1, Room: 0}, start, 2, 2)
	reach(r, layout.Coord{Layer: 1, Room: 1}, start, 9, 2)
	if got := r.Best(); got[len(got)-1] != (layout.Coord{Layer: 1, Room: 1}) {
		t.Errorf("Best() ends at %v; want the heavier (1,1)", got[len(got)-1])
	}

	// Equal depth and cost: lowest coordinate wins.
	r = chainResult()
	reach(r, layout.Coord{Layer: 1, Room: 0}, start, 5, 2)
	reach(r, layout.Coord{Layer: 1, Room: 1}, start, 5, 2)
	if got := r.Best(); got[len(got)-1] != (layout.Coord{Layer: 1, Room: 0}) {
		t.Errorf("Best() ends at %v; want the lower (1,0)", got[len(got)-1])
	}
}

// TestBest_UnorderedCostRanksLast verifies that a NaN cost inside the
// deepest group loses to every ordered cost no matter which scan order the
// map hands out: repeated selection on one Result never wavers.
func TestBest_UnorderedCostRanksLast(t *testing.T) {
	start := layout.Coord{Layer: 0, Room: 0}
	r := chainResult()
	reach(r, layout.Coord{Layer: 1, Room: 0}, start, 0, 2)
	reach(r, layout.Coord{Layer: 1, Room: 1}, start, math.NaN(), 2)
	reach(r, layout.Coord{Layer: 1, Room: 2}, start, 5, 2)

	want := []layout.Coord{start, {Layer: 1, Room: 2}}
	for run := 0; run < 100; run++ {
		if got := r.Best(); !reflect.DeepEqual(got, want) {
			t.Fatalf("run %d: Best() = %v; want %v (ordered cost must win)", run, got, want)
		}
	}

	// Two NaN costs at equal depth break on the coordinate.
	r = chainResult()
	reach(r, layout.Coord{Layer: 1, Room: 0}, start, math.NaN(), 2)
	reach(r, layout.Coord{Layer: 1, Room: 1}, start, math.NaN(), 2)
	want = []layout.Coord{start, {Layer: 1, Room: 0}}
	for run := 0; run < 100; run++ {
		if got := r.Best(); !reflect.DeepEqual(got, want) {
			t.Fatalf("run %d: Best() = %v; want %v (NaN tie breaks on coordinate)", run, got, want)
		}
	}
}

// TestBest_SingleNode verifies that a start with no reachable neighbors
// still yields its one-element path.
func TestBest_SingleNode(t *testing.T) {
	r := chainResult()
	want := []layout.Coord{{Layer: 0, Room: 0}}
	if got := r.Best(); !reflect.DeepEqual(got, want) {
		t.Errorf("Best() = %v; want %v", got, want)
	}
}

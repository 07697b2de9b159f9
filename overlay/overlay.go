// Package overlay renders the search artifacts for presentation: per-room
// debug labels and a compact ASCII sketch of the layered layout.
package overlay

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/delvepath/layout"
	"github.com/katalvlaran/delvepath/weightgrid"
)

// Label renders the debug text a host draws over one room: the weight with
// no decimals, a newline, then the room's annotation. Returns "" when the
// grid is absent or the coordinate lies outside it; missing annotations
// leave the second line empty.
// Complexity: O(1).
func Label(grid *weightgrid.Grid, notes weightgrid.Annotations, c layout.Coord) string {
	if grid == nil {
		return ""
	}
	w, err := grid.At(c.Layer, c.Room)
	if err != nil {
		return ""
	}

	return fmt.Sprintf("Weight: %.0f\n%s", w, notes[c])
}

// Sketch renders the layout one layer per line, marking the best path and
// the player:
//
//	( )  room        [*]  room on the best path
//	(@)  player      [@]  player on the best path
//	...  hole
//
// Empty input yields "". Purely diagnostic; the format is stable enough to
// pin in tests but not a machine interface.
// Complexity: O(total rooms).
func Sketch(rooms [][]layout.Room, best []layout.Coord, player layout.Position) string {
	if len(rooms) == 0 {
		return ""
	}
	onBest := make(map[layout.Coord]bool, len(best))
	for _, c := range best {
		onBest[c] = true
	}
	pc, playerKnown := player.Coord()

	var b strings.Builder
	for l, row := range rooms {
		fmt.Fprintf(&b, "%d:", l)
		for r, room := range row {
			c := layout.Coord{Layer: l, Room: r}
			b.WriteByte(' ')
			b.WriteString(cell(room == nil, onBest[c], playerKnown && pc == c))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// cell picks the three-char marker for one slot. The player wins over the
// hole marker: where the player stands matters more than what they stand on.
func cell(hole, best, player bool) string {
	switch {
	case player && best:
		return "[@]"
	case player:
		return "(@)"
	case hole:
		return "..."
	case best:
		return "[*]"
	default:
		return "( )"
	}
}

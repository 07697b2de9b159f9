package weightgrid

import "github.com/katalvlaran/delvepath/layout"

// Build constructs a fresh weight grid and annotation set from a room
// listing, replacing nothing in place: callers swap the results in
// wholesale, so no stale cell from a previous cycle can survive.
//
// Per present room, calc.Evaluate is called exactly once and both returned
// values are recorded. Holes (nil rooms) are skipped: their cell keeps the
// zero weight and no annotation entry is made. A nil listing row counts as
// a zero-room layer here; reporting it is Validate's job.
//
// Returns (nil, nil) when there is nothing to build: the listing is nil or
// empty, every layer is empty, or calc is nil. That absence is a normal
// outcome, not an error, and downstream consumers treat a nil grid as
// "no search possible".
//
// Complexity: O(total rooms) evaluations, O(layers·width) memory.
func Build(rooms [][]layout.Room, calc Calculator) (*Grid, Annotations) {
	if len(rooms) == 0 || calc == nil {
		return nil, nil
	}

	// Width is the widest layer; zero width means no rooms anywhere.
	width := 0
	for _, row := range rooms {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return nil, nil
	}

	g := &Grid{
		layers: len(rooms),
		width:  width,
		cells:  make([]float64, len(rooms)*width),
	}
	notes := make(Annotations)
	for l, row := range rooms {
		for r, room := range row {
			if room == nil {
				continue // hole: zero weight, no annotation
			}
			w, note := calc.Evaluate(room)
			g.cells[l*width+r] = w
			notes[layout.Coord{Layer: l, Room: r}] = note
		}
	}

	return g, notes
}

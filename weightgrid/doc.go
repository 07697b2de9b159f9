// Package weightgrid turns a layered room listing plus a per-room scoring
// callback into the rectangular weight grid the path search runs on.
//
// What:
//
//   - Grid is a row-major layers × width float64 grid, padded to the widest
//     layer; padding cells hold zero and are never read.
//   - Calculator scores one room, returning weight and debug annotation in
//     a single query; CalcFunc adapts plain functions.
//   - Annotations keeps the debug text per present room's coordinate.
//   - Build walks the listing once, querying the calculator exactly once
//     per present room and skipping holes.
//
// Why:
//
//   - The search wants O(1) weight lookups in a shape it can bound-check
//     cheaply, not repeated calls into host scoring code.
//   - Full rebuild per cycle keeps the "no stale cell" invariant trivial.
//
// Complexity:
//
//   - Build:           O(rooms) calculator calls, O(layers·width) memory.
//   - At / Set / InBounds: O(1).
//
// Errors:
//
//   - ErrGridDims: NewGrid asked for a non-positive dimension.
//   - ErrCellOutOfRange: At or Set addressed a cell outside the grid.
//   - Build itself never errors: absent or empty input yields (nil, nil).
package weightgrid

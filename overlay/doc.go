// Package overlay turns search artifacts into presentation text: the
// per-room weight label a host draws over each room, and an ASCII layer
// sketch for quick eyeballing of a layout and its best path.
//
// What:
//
//   - Label: "Weight: <value, no decimals>\n<annotation>" for one room.
//   - Sketch: one line per layer, rooms as ( ), best path as [*], player
//     as (@) or [@], holes as "...".
//
// Why:
//
//   - Hosts overlay debug text per room; the format lives here so every
//     consumer draws it identically.
//   - A terminal sketch makes failed layouts and odd paths obvious without
//     a renderer.
//
// Errors:
//
//   - None. Absent grids and out-of-range coordinates render as "", in
//     line with the tolerant core they decorate.
package overlay

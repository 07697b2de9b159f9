// Package delvepath is the route-finding core for layered dungeon crawls:
// it scores every room, then finds the descent that collects the most
// value, layer by layer.
//
// 🚀 What is delvepath?
//
//	A small, host-embeddable engine that brings together:
//		• Layout modeling: layered rooms, forward edges, holes, validation
//		• Weight grids: one scored cell per room, rebuilt fresh each cycle
//		• Best-path search: label-correcting longest path over the layered DAG
//		• Presentation helpers: per-room debug labels & ASCII layer sketches
//
// ✨ Why choose delvepath?
//
//   - Tolerant by contract – racy, half-built layouts degrade to empty
//     results instead of faults
//   - Deterministic – identical inputs always pick the identical path
//   - Observable – settle/improve hooks and a verbose trace mode
//   - Pure Go – no cgo, no services, embeds in any refresh loop
//
// Under the hood, everything is organized under four subpackages:
//
//	layout/     — rooms, coordinates, forward-edge graph, validation, generator
//	weightgrid/ — calculator boundary + the rectangular weight grid
//	bestpath/   — the search itself, result selection, and the cycle engine
//	overlay/    — debug labels & layer sketches for hosts to draw
//
// Quick ASCII example:
//
//	0: [@]
//	1: ( ) [*]
//	2: [*]
//
//	the player at the gate, with the best descent starred.
//
// Dive into the per-package docs for contracts, options and complexity
// notes.
//
//	go get github.com/katalvlaran/delvepath
package delvepath

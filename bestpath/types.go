// Package bestpath provides tunable options and observation hooks for the
// longest-path search over a layered room layout.
package bestpath

import "github.com/katalvlaran/delvepath/layout"

// Option configures a search run via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search run.
//
// There are no invalid combinations and no option errors: every field has a
// safe zero behavior, matching the engine's policy of degrading instead of
// failing on imperfect input.
type Options struct {
	// Player is the current player position. When known and valid it pins
	// the start of the search; otherwise the search falls back to the first
	// populated layer, room 0.
	Player layout.Position

	// OnSettle is called each time a coordinate is popped with its current
	// best cumulative cost. A coordinate may settle more than once when a
	// later relaxation improves an already-popped node.
	OnSettle func(c layout.Coord, cost float64)

	// OnImprove is called each time an edge relaxation raises a
	// coordinate's best known cumulative cost.
	OnImprove func(from, to layout.Coord, cost float64)

	// Verbose enables stdout tracing of settle events, in the same spirit
	// as the step traces of classic algorithm walkthroughs.
	Verbose bool
}

// DefaultOptions returns Options with sane defaults:
//   - unknown player position (fallback start resolution),
//   - no-op hooks,
//   - tracing off.
func DefaultOptions() Options {
	return Options{
		Player:    layout.Unknown(),
		OnSettle:  func(layout.Coord, float64) {},
		OnImprove: func(layout.Coord, layout.Coord, float64) {},
		Verbose:   false,
	}
}

// WithPlayer pins the search start to the player's position when valid.
func WithPlayer(p layout.Position) Option {
	return func(o *Options) { o.Player = p }
}

// WithOnSettle registers a callback to run on every settle.
func WithOnSettle(fn func(c layout.Coord, cost float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithOnImprove registers a callback to run on every cost improvement.
func WithOnImprove(fn func(from, to layout.Coord, cost float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnImprove = fn
		}
	}
}

// WithVerbose enables stdout tracing of the search.
func WithVerbose() Option {
	return func(o *Options) { o.Verbose = true }
}

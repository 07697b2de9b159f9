package layout

import (
	"fmt"
	"math/rand"
)

// defaultGenSeed is the fixed seed used when callers pass seed==0, keeping
// generated layouts reproducible by default.
const defaultGenSeed int64 = 1

// roomIDFmt is the fixed handle scheme for generated rooms: "layer,room".
const roomIDFmt = "%d,%d"

// GenOptions holds tunable parameters for Generate.
type GenOptions struct {
	// Seed drives the deterministic RNG; 0 selects a fixed default seed.
	Seed int64
	// HoleChance is the probability in [0,1] that a generated room slot is
	// a hole (nil handle). Holes keep their slot, weight zero.
	HoleChance float64
	// Branching caps the number of forward edges leaving each room; at
	// least one edge per room is always emitted, so every layer stays
	// reachable from the one above.
	Branching int
}

// GenOption mutates GenOptions via the functional-options pattern.
type GenOption func(*GenOptions)

// DefaultGenOptions returns the generator defaults:
// Seed 0 (fixed default stream), no holes, branching 2.
func DefaultGenOptions() GenOptions {
	return GenOptions{
		Seed:       0,
		HoleChance: 0,
		Branching:  2,
	}
}

// WithSeed sets the RNG seed; 0 keeps the fixed default stream.
func WithSeed(seed int64) GenOption {
	return func(o *GenOptions) { o.Seed = seed }
}

// WithHoleChance sets the probability that a room slot is generated as a
// hole. Values outside [0,1] surface as ErrGenChance from Generate.
func WithHoleChance(p float64) GenOption {
	return func(o *GenOptions) { o.HoleChance = p }
}

// WithBranching caps forward edges per room. Values below 1 surface as
// ErrGenBranch from Generate.
func WithBranching(n int) GenOption {
	return func(o *GenOptions) { o.Branching = n }
}

// Generate builds a deterministic pseudo-random layered layout: a
// room-by-layer listing (handles of the form "layer,room", holes as nil)
// and a matching forward-edge graph. Every layer holds between 1 and
// maxRooms rooms, every room gets at least one forward edge (except in the
// final layer), and all edges land on existing next-layer rooms, so the
// result always passes Validate.
//
// Intended for tests, benchmarks and demos; hosts supply real layouts.
//
// Complexity: O(layers·maxRooms·branching).
func Generate(layers, maxRooms int, opts ...GenOption) ([][]Room, *Graph, error) {
	cfg := DefaultGenOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Validate shape and option values, fail fast.
	if layers < 1 || maxRooms < 1 {
		return nil, nil, fmt.Errorf("%w: layers=%d, maxRooms=%d", ErrGenShape, layers, maxRooms)
	}
	if cfg.HoleChance < 0 || cfg.HoleChance > 1 {
		return nil, nil, fmt.Errorf("%w: %g", ErrGenChance, cfg.HoleChance)
	}
	if cfg.Branching < 1 {
		return nil, nil, fmt.Errorf("%w: %d", ErrGenBranch, cfg.Branching)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = defaultGenSeed
	}
	rng := rand.New(rand.NewSource(seed))

	// 1) Room counts per layer, then the listing with optional holes.
	sizes := make([]int, layers)
	rooms := make([][]Room, layers)
	for l := 0; l < layers; l++ {
		sizes[l] = 1 + rng.Intn(maxRooms)
		row := make([]Room, sizes[l])
		for r := range row {
			if rng.Float64() < cfg.HoleChance {
				continue // hole: slot kept, handle nil
			}
			row[r] = fmt.Sprintf(roomIDFmt, l, r)
		}
		rooms[l] = row
	}

	// 2) Forward edges: each room gets 1..Branching distinct targets. Hole
	//    slots are wired too; edges are layout structure, not room contents.
	g := NewGraph(sizes...)
	for l := 0; l < layers-1; l++ {
		width := sizes[l+1]
		for r := 0; r < sizes[l]; r++ {
			fanout := 1 + rng.Intn(cfg.Branching)
			if fanout > width {
				fanout = width
			}
			from := Coord{Layer: l, Room: r}
			for k := 0; k < fanout; k++ {
				// Duplicates collapse in the set; fanout is a cap, not a promise.
				if err := g.Connect(from, rng.Intn(width)); err != nil {
					return nil, nil, err
				}
			}
		}
	}

	return rooms, g, nil
}

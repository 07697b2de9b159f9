// Package bestpath finds the maximum-cumulative-weight path through a
// layered room layout: which run of rooms, descending one layer per step,
// collects the most value.
//
// What:
//
//   - Search runs a label-correcting relaxation (Dijkstra-shaped, max-heap)
//     from a resolved start coordinate over the forward-edge graph.
//   - Result records cost, parent, and hop count per reached coordinate;
//     Best picks the winner (deepest, then heaviest, then lowest coord) and
//     PathTo reconstructs any reached coordinate's path.
//   - Engine wraps the full refresh cycle: rebuild the weight grid, search,
//     keep the artifacts for presentation.
//   - Hooks (OnSettle, OnImprove) and Verbose expose the run for tooling.
//
// Why:
//
//   - Dungeon crawlers and roguelikes: steer toward the most rewarding
//     descent from the player's room.
//   - Any layered DAG where nodes carry value and a deepest-heaviest route
//     is wanted, such as level-select screens or staged build pipelines.
//
// Determinism: equal-cost pops leave the heap in ascending coordinate
// order, ties in the final selection break by cost then lowest coordinate,
// and neighbor enumeration is ascending, so identical inputs always yield
// the identical path.
//
// Complexity:
//
//   - Search:  O(P log V), P = relaxations (near (V+E) log V in practice).
//   - Best:    O(reached).
//   - PathTo:  O(path length).
//
// Options:
//
//   - WithPlayer: pin the start to a known player position.
//   - WithOnSettle / WithOnImprove: observation hooks.
//   - WithVerbose: stdout settle trace.
//
// Errors:
//
//   - None. Absent, empty, or mismatched inputs degrade to an empty Result
//     and invalid player positions fall back to the default start; the host
//     layout is racy between frames, so tolerance is the contract.
package bestpath

// Package grid holds the fixed-extent 2-D terrain grid a route search runs on.
//
// What:
//
//   - Grid is a Width×Height row-major array of Cells. Every coordinate in
//     [0,Width)×[0,Height) always has a cell; fresh cells carry terrain.Unset.
//   - Cell is one position's search record: terrain, heuristic H, accumulated
//     cost G and predecessor Prev. The grid is the shared mutable state of a
//     search, cells are written in place.
//   - Neighbors enumerates adjacent coordinates (Conn8 or Conn4), always
//     filtered to the grid extent.
//   - Region and Connected flood-fill the passable area around a coordinate.
//
// Ownership:
//
//	A Grid is owned by one search at a time and is not safe for concurrent
//	use. Reset clears per-search state (G, H, Prev) so an instance can be
//	reused; Clone gives an independent copy.
//
// Contract violations:
//
//	Dereferencing a coordinate outside the extent (At, Get, Set, SetTerrain)
//	panics with an error wrapping ErrOutOfRange. Producers of coordinates
//	(Neighbors, the classifiers) never hand out such coordinates.
//
// Complexity:
//
//   - New, Reset, Clone:  O(W×H) time and memory.
//   - At, Get, Set:       O(1).
//   - Neighbors:          O(d), d = 4 or 8.
//   - Region:             O(W×H×d) time, O(W×H) memory.
package grid

// Package search finds a least-cost route between two cells of a terrain grid
// with a best-first expansion loop.
//
// Overview:
//
//   - Initialize: the heuristic is written into every cell once for the goal;
//     the start cell enters the open set and the seen set with G = 0.
//   - Expanding: the open-set member with the smallest F = G+H is removed
//     (first inserted wins on ties). Reaching the goal ends the search;
//     otherwise the cell is settled and its unseen, passable neighbors are
//     copied into the open set and marked seen. No coordinate is ever
//     enqueued twice.
//   - Found: predecessor links are walked from the goal back to the start.
//   - Exhausted: the open set ran dry; the result is an empty path, not an error.
//
// Parent policies:
//
//   - ParentRolling (default): a settled cell's predecessor is the cell
//     expanded just before it, and its G is its terrain cost plus that cell's
//     G. The driver keeps one rolling "previous" coordinate. The resulting
//     path follows expansion order, not discovery order, so it is not a
//     shortest path in general, and consecutive cells need not be adjacent.
//   - ParentDiscovery: a cell's predecessor and G are assigned when it is
//     discovered and lowered while it is still open if a cheaper parent
//     appears. This is the textbook parent-pointer discipline; with the
//     default squared-Euclidean heuristic it is still not guaranteed optimal
//     because that heuristic is not admissible.
//
// Frontiers:
//
//   - FrontierLinear (default): slice with an O(n) scan per pick, O(n²)
//     over a search of n expansions. Fine for small grids.
//   - FrontierHeap: binary heap keyed on (F, insertion sequence), O(log n)
//     per pick. Selection order is identical to the linear scan.
//
// Forbidden terrain:
//
//	Cells whose category costs terrain.MaxCost are never enqueued. A goal on
//	forbidden terrain is therefore unreachable unless it is the start.
//
// Errors:
//
//   - ErrNilGrid:         Search was given a nil grid.
//   - grid.ErrOutOfRange: start or goal lies outside the grid (wrapped).
//   - ErrOptionViolation: an Option received an invalid value.
//   - ErrExpansionLimit:  WithMaxExpansions cap was reached first.
//   - ErrBrokenChain:     Reconstruct could not walk back to the start.
//   - context errors from WithContext, checked once per expansion.
//
// Thread safety:
//
//	A search mutates the grid in place and must own it exclusively. Run
//	concurrent searches on separate grids (see grid.Grid.Clone).
package search

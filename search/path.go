package search

import (
	"fmt"

	"github.com/katalvlaran/orienteer/grid"
)

// Reconstruct walks predecessor links from goal back to start and returns
// the visited cells goal first, with the start cell appended last.
//
// The walk is bounded by the number of cells in g: a chain that does not
// reach start within that many steps, or that leaves the grid, yields
// ErrBrokenChain instead of looping forever.
// Complexity: O(path length).
func Reconstruct(g *grid.Grid, start, goal grid.Coordinate) ([]grid.Cell, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(start) || !g.InBounds(goal) {
		return nil, fmt.Errorf("search: reconstruct %s→%s: %w", goal, start, grid.ErrOutOfRange)
	}

	var path []grid.Cell
	limit := g.Len()
	for current := goal; current != start; {
		if len(path) >= limit {
			return nil, fmt.Errorf("%w: no start after %d steps from %s", ErrBrokenChain, limit, goal)
		}
		cell := g.Get(current)
		path = append(path, cell)
		current = cell.Prev
		if !g.InBounds(current) {
			return nil, fmt.Errorf("%w: %s links to %s", ErrBrokenChain, cell.Pos, current)
		}
	}
	path = append(path, g.Get(start))

	return path, nil
}

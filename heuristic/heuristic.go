// Package heuristic estimates the remaining cost from a grid cell to a goal
// and precomputes that estimate for every cell of a grid.
//
// The default estimator is the squared Euclidean distance between the two
// coordinates. It ignores terrain entirely and is not scaled to terrain cost
// units, so it is neither admissible nor consistent with respect to real
// costs. It is computed once per goal for the whole grid in a single
// O(W×H) pass instead of per edge.
package heuristic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/orienteer/grid"
)

// ErrUnknownHeuristic indicates ByName received an unsupported name.
var ErrUnknownHeuristic = errors.New("heuristic: unknown heuristic")

// Func estimates the cost of reaching to from from.
type Func func(from, to grid.Coordinate) int64

// SquaredEuclidean returns dx² + dy².
func SquaredEuclidean(from, to grid.Coordinate) int64 {
	dx := int64(to.X - from.X)
	dy := int64(to.Y - from.Y)
	return dx*dx + dy*dy
}

// Manhattan returns |dx| + |dy|.
func Manhattan(from, to grid.Coordinate) int64 {
	return abs(int64(to.X-from.X)) + abs(int64(to.Y-from.Y))
}

// Chebyshev returns max(|dx|, |dy|), the step count under 8-connectivity.
func Chebyshev(from, to grid.Coordinate) int64 {
	dx, dy := abs(int64(to.X-from.X)), abs(int64(to.Y-from.Y))
	if dx > dy {
		return dx
	}
	return dy
}

// Zero always returns 0, reducing best-first selection to accumulated cost.
func Zero(_, _ grid.Coordinate) int64 { return 0 }

var byName = map[string]Func{
	"squared_euclidean": SquaredEuclidean,
	"manhattan":         Manhattan,
	"chebyshev":         Chebyshev,
	"zero":              Zero,
}

// Names lists the names accepted by ByName.
func Names() []string {
	return []string{"squared_euclidean", "manhattan", "chebyshev", "zero"}
}

// ByName resolves a heuristic by its snake_case name. An empty name selects
// SquaredEuclidean.
func ByName(name string) (Func, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return SquaredEuclidean, nil
	}
	if fn, ok := byName[key]; ok {
		return fn, nil
	}
	return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownHeuristic, name, strings.Join(Names(), ", "))
}

// SetAll writes fn(cell, goal) into H of every cell of g.
// A nil fn selects SquaredEuclidean.
// Must be rerun whenever the goal changes.
func SetAll(g *grid.Grid, goal grid.Coordinate, fn Func) {
	if fn == nil {
		fn = SquaredEuclidean
	}
	cells := g.Cells()
	for i := range cells {
		cells[i].H = fn(cells[i].Pos, goal)
	}
}

// SetHeuristics writes the squared Euclidean distance to goal into every cell.
func SetHeuristics(g *grid.Grid, goal grid.Coordinate) {
	SetAll(g, goal, SquaredEuclidean)
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

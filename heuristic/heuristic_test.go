package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orienteer/grid"
	"github.com/katalvlaran/orienteer/heuristic"
	"github.com/katalvlaran/orienteer/terrain"
)

func TestSquaredEuclidean(t *testing.T) {
	a := grid.Coordinate{X: 1, Y: 2}
	assert.Equal(t, int64(0), heuristic.SquaredEuclidean(a, a))
	assert.Equal(t, int64(25), heuristic.SquaredEuclidean(grid.Coordinate{}, grid.Coordinate{X: 3, Y: 4}))
	// symmetric in its arguments
	b := grid.Coordinate{X: 7, Y: 0}
	assert.Equal(t, heuristic.SquaredEuclidean(a, b), heuristic.SquaredEuclidean(b, a))
	// dy uses the y components; a transposed coordinate gives the same value
	assert.Equal(t, int64(13), heuristic.SquaredEuclidean(grid.Coordinate{X: 0, Y: 5}, grid.Coordinate{X: 2, Y: 2}))
}

// TestSetHeuristics_GoalZeroAndMonotone checks h(goal) == 0 and that h
// strictly increases with squared distance to the goal.
func TestSetHeuristics_GoalZeroAndMonotone(t *testing.T) {
	g, err := grid.Filled(9, 7, terrain.OpenLand)
	require.NoError(t, err)
	goal := grid.Coordinate{X: 4, Y: 3}

	heuristic.SetHeuristics(g, goal)
	assert.Zero(t, g.Get(goal).H)

	cells := g.Cells()
	for _, a := range cells {
		for _, b := range cells {
			da := heuristic.SquaredEuclidean(a.Pos, goal)
			db := heuristic.SquaredEuclidean(b.Pos, goal)
			if da < db {
				assert.Less(t, a.H, b.H, "%s vs %s", a.Pos, b.Pos)
			}
		}
	}
}

func TestSetAll_RecomputesForNewGoal(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	heuristic.SetHeuristics(g, grid.Coordinate{X: 0, Y: 0})
	assert.Equal(t, int64(8), g.Get(grid.Coordinate{X: 2, Y: 2}).H)

	heuristic.SetAll(g, grid.Coordinate{X: 2, Y: 2}, nil)
	assert.Zero(t, g.Get(grid.Coordinate{X: 2, Y: 2}).H)
	assert.Equal(t, int64(8), g.Get(grid.Coordinate{X: 0, Y: 0}).H)

	heuristic.SetAll(g, grid.Coordinate{X: 2, Y: 2}, heuristic.Manhattan)
	assert.Equal(t, int64(4), g.Get(grid.Coordinate{X: 0, Y: 0}).H)
}

func TestAlternativeEstimators(t *testing.T) {
	from, to := grid.Coordinate{X: 1, Y: 1}, grid.Coordinate{X: 4, Y: 6}
	assert.Equal(t, int64(8), heuristic.Manhattan(from, to))
	assert.Equal(t, int64(5), heuristic.Chebyshev(from, to))
	assert.Equal(t, int64(0), heuristic.Zero(from, to))
}

func TestByName(t *testing.T) {
	for _, name := range heuristic.Names() {
		fn, err := heuristic.ByName(name)
		require.NoError(t, err, name)
		require.NotNil(t, fn)
	}

	fn, err := heuristic.ByName("")
	require.NoError(t, err)
	assert.Equal(t, int64(25), fn(grid.Coordinate{}, grid.Coordinate{X: 3, Y: 4}))

	_, err = heuristic.ByName("octile")
	assert.ErrorIs(t, err, heuristic.ErrUnknownHeuristic)
}

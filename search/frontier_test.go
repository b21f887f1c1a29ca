package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orienteer/grid"
)

func cellAt(x int, g, h int64) grid.Cell {
	return grid.Cell{Pos: grid.Coordinate{X: x}, G: g, H: h}
}

func TestSelectBest(t *testing.T) {
	open := []grid.Cell{cellAt(0, 0, 9), cellAt(1, 2, 3), cellAt(2, 0, 5), cellAt(3, 1, 7)}
	// (1) F=5 and (2) F=5 tie; the earlier one wins
	assert.Equal(t, 1, SelectBest(open))

	assert.Equal(t, 0, SelectBest(open[:1]))
	assert.Panics(t, func() { SelectBest(nil) })
}

func TestSelectBest_AllEqualPicksFirst(t *testing.T) {
	open := []grid.Cell{cellAt(0, 4, 4), cellAt(1, 0, 8), cellAt(2, 8, 0)}
	assert.Equal(t, 0, SelectBest(open))
}

func TestFrontier_PopOrder(t *testing.T) {
	for _, kind := range []FrontierKind{FrontierLinear, FrontierHeap} {
		f := newFrontier(kind, 0)
		f.Push(cellAt(0, 0, 5)) // F=5
		f.Push(cellAt(1, 0, 3)) // F=3
		f.Push(cellAt(2, 1, 2)) // F=3, later
		f.Push(cellAt(3, 0, 1)) // F=1
		require.Equal(t, 4, f.Len(), kind.String())

		var got []int
		for f.Len() > 0 {
			got = append(got, f.PopBest().Pos.X)
		}
		assert.Equal(t, []int{3, 1, 2, 0}, got, kind.String())
	}
}

func TestFrontier_UpdateKeepsInsertionRank(t *testing.T) {
	for _, kind := range []FrontierKind{FrontierLinear, FrontierHeap} {
		f := newFrontier(kind, 0)
		f.Push(cellAt(0, 10, 0))
		f.Push(cellAt(1, 4, 0))
		f.Push(cellAt(2, 9, 0))

		// lower member 2 to tie with member 1; member 1 was inserted first
		assert.True(t, f.Update(cellAt(2, 4, 0)), kind.String())
		assert.False(t, f.Update(cellAt(7, 0, 0)), kind.String())

		assert.Equal(t, 1, f.PopBest().Pos.X, kind.String())
		c := f.PopBest()
		assert.Equal(t, 2, c.Pos.X, kind.String())
		assert.Equal(t, int64(4), c.G, kind.String())
		assert.Equal(t, 0, f.PopBest().Pos.X, kind.String())

		// popped members can no longer be updated
		assert.False(t, f.Update(cellAt(1, 0, 0)), kind.String())
	}
}

func TestHeapFrontier_PopEmptyPanics(t *testing.T) {
	f := newFrontier(FrontierHeap, 0)
	assert.Panics(t, func() { f.PopBest() })
}

package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orienteer/grid"
	"github.com/katalvlaran/orienteer/terrain"
)

// legend used by gridFromRows.
var testLegend = map[rune]terrain.Category{
	'.': terrain.OpenLand,
	'R': terrain.Road,
	'P': terrain.Path,
	'D': terrain.DenseForest,
	'#': terrain.Impassable,
	'~': terrain.Water,
	'?': terrain.Unset,
}

// gridFromRows builds a grid whose row y is rows[y], one rune per cell.
func gridFromRows(t testing.TB, rows ...string) *grid.Grid {
	t.Helper()
	g, err := grid.New(len(rows[0]), len(rows))
	require.NoError(t, err)
	for y, row := range rows {
		require.Len(t, row, g.Width(), "row %d", y)
		for x, ch := range row {
			cat, ok := testLegend[ch]
			require.True(t, ok, "unknown rune %q", ch)
			g.SetTerrain(grid.Coordinate{X: x, Y: y}, cat)
		}
	}
	return g
}

// positions projects a path onto its coordinates.
func positions(path []grid.Cell) []grid.Coordinate {
	out := make([]grid.Coordinate, len(path))
	for i, c := range path {
		out[i] = c.Pos
	}
	return out
}

func xy(x, y int) grid.Coordinate { return grid.Coordinate{X: x, Y: y} }

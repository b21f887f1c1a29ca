package grid

import (
	"fmt"

	"github.com/katalvlaran/orienteer/terrain"
)

// New allocates a width×height grid. Every cell gets its Pos set and
// terrain.Unset as its category.
// Returns ErrEmptyGrid if width or height is below one.
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, width, height)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[g.index(x, y)] = Cell{
				Pos:     Coordinate{X: x, Y: y},
				Terrain: terrain.Unset,
			}
		}
	}

	return g, nil
}

// Filled allocates a width×height grid with every cell set to cat.
func Filled(width, height int, cat terrain.Category) (*Grid, error) {
	g, err := New(width, height)
	if err != nil {
		return nil, err
	}
	for i := range g.cells {
		g.cells[i].Terrain = cat
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether c lies within the grid extent.
func (g *Grid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// index maps (x,y) to the row-major offset. No bounds check.
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Coordinate maps a row-major index back to a coordinate.
func (g *Grid) Coordinate(idx int) Coordinate {
	return Coordinate{X: idx % g.width, Y: idx / g.width}
}

// mustIndex is the single choke point for dereferencing coordinates.
func (g *Grid) mustIndex(c Coordinate) int {
	if !g.InBounds(c) {
		panic(fmt.Errorf("%w: %s outside %dx%d", ErrOutOfRange, c, g.width, g.height))
	}
	return g.index(c.X, c.Y)
}

// At returns a pointer to the cell at c for in-place mutation.
// Panics if c is out of range.
func (g *Grid) At(c Coordinate) *Cell {
	return &g.cells[g.mustIndex(c)]
}

// Get returns a copy of the cell at c. Panics if c is out of range.
func (g *Grid) Get(c Coordinate) Cell {
	return g.cells[g.mustIndex(c)]
}

// Set stores cell at c. The stored cell's Pos is forced to c.
// Panics if c is out of range.
func (g *Grid) Set(c Coordinate, cell Cell) {
	cell.Pos = c
	g.cells[g.mustIndex(c)] = cell
}

// SetTerrain classifies the cell at c. Panics if c is out of range.
func (g *Grid) SetTerrain(c Coordinate, cat terrain.Category) {
	g.cells[g.mustIndex(c)].Terrain = cat
}

// Cells returns the backing row-major slice. Callers may mutate cell search
// state but must not append or reslice.
func (g *Grid) Cells() []Cell {
	return g.cells
}

// Reset clears G, H and Prev on every cell, keeping terrain.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].G = 0
		g.cells[i].H = 0
		g.cells[i].Prev = Coordinate{}
	}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)

	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Histogram counts cells per terrain category.
func (g *Grid) Histogram() map[terrain.Category]int {
	h := make(map[terrain.Category]int)
	for i := range g.cells {
		h[g.cells[i].Terrain]++
	}
	return h
}

package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/orienteer/terrain"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a requested extent with no columns or no rows.
	ErrEmptyGrid = errors.New("grid: extent must have at least one column and one row")
	// ErrOutOfRange indicates a coordinate outside [0,Width)×[0,Height).
	ErrOutOfRange = errors.New("grid: coordinate out of range")
	// ErrBadCoordinate indicates text that does not parse as "x,y".
	ErrBadCoordinate = errors.New("grid: malformed coordinate")
)

// Extent of the reference orienteering map raster.
const (
	ReferenceWidth  = 395
	ReferenceHeight = 500
)

// Coordinate identifies a cell by column X and row Y.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String renders c as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// ParseCoordinate reads "x,y" (optionally wrapped in parentheses, spaces
// ignored). Bounds are not checked.
func ParseCoordinate(s string) (Coordinate, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimSuffix(strings.TrimPrefix(t, "("), ")")
	xs, ys, ok := strings.Cut(t, ",")
	if !ok {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}
	return Coordinate{X: x, Y: y}, nil
}

// Cell is the per-position search record.
//
// G and Prev are meaningless until the cell has been processed by a search.
// H is fixed once computed for a given goal.
type Cell struct {
	Pos     Coordinate       // position of this cell, immutable once assigned
	Prev    Coordinate       // predecessor on the route back to the start
	Terrain terrain.Category // ground classification
	H       int64            // heuristic estimate of the remaining cost
	G       int64            // accumulated cost from the start
}

// F returns the best-first score G+H.
func (c Cell) F() int64 {
	return c.G + c.H
}

// Connectivity selects neighbor connectivity: with diagonals (Conn8) or orthogonal only (Conn4).
type Connectivity int

const (
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8 Connectivity = iota
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4
)

// String returns "conn8" or "conn4".
func (c Connectivity) String() string {
	if c == Conn4 {
		return "conn4"
	}
	return "conn8"
}

// ParseConnectivity resolves "conn8"/"8" or "conn4"/"4"; empty selects Conn8.
func ParseConnectivity(s string) (Connectivity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "8", "conn8":
		return Conn8, nil
	case "4", "conn4":
		return Conn4, nil
	}
	return Conn8, fmt.Errorf("grid: unknown connectivity %q", s)
}

var (
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
)

// Offsets returns the neighbor offset table for c.
func (c Connectivity) Offsets() [][2]int {
	if c == Conn4 {
		return offsets4
	}
	return offsets8
}

// Grid is a fixed-extent, row-major collection of cells.
type Grid struct {
	width, height int
	cells         []Cell
}

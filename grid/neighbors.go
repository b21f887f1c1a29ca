package grid

// Neighbors returns the coordinates adjacent to c under conn, in offset
// table order. Coordinates with a negative component or a component at or
// beyond the extent are filtered out; c itself need not be in range.
// Complexity: O(d).
func (g *Grid) Neighbors(c Coordinate, conn Connectivity) []Coordinate {
	offsets := conn.Offsets()
	out := make([]Coordinate, 0, len(offsets))
	for _, d := range offsets {
		n := Coordinate{X: c.X + d[0], Y: c.Y + d[1]}
		if !g.InBounds(n) {
			continue
		}
		out = append(out, n)
	}
	return out
}

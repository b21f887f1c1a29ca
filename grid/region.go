package grid

// Region returns every coordinate reachable from start through cells whose
// terrain is not forbidden, according to conn. The start cell is always
// included first, even if its own terrain is forbidden; the rest follow in
// breadth-first order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
// Panics if start is out of range.
func (g *Grid) Region(start Coordinate, conn Connectivity) []Coordinate {
	i0 := g.mustIndex(start)
	seen := make([]bool, len(g.cells))
	seen[i0] = true
	queue := []int{i0}
	offsets := conn.Offsets()

	for qi := 0; qi < len(queue); qi++ {
		u := g.Coordinate(queue[qi])
		for _, d := range offsets {
			vx, vy := u.X+d[0], u.Y+d[1]
			if !g.InBounds(Coordinate{X: vx, Y: vy}) {
				continue
			}
			vi := g.index(vx, vy)
			if seen[vi] || g.cells[vi].Terrain.Forbidden() {
				continue
			}
			seen[vi] = true
			queue = append(queue, vi)
		}
	}

	out := make([]Coordinate, len(queue))
	for i, idx := range queue {
		out[i] = g.Coordinate(idx)
	}
	return out
}

// Connected reports whether b can be reached from a through passable terrain.
// A forbidden b is never connected unless a == b.
// Panics if a or b is out of range.
func (g *Grid) Connected(a, b Coordinate, conn Connectivity) bool {
	g.mustIndex(b)
	if a == b {
		g.mustIndex(a)
		return true
	}
	for _, c := range g.Region(a, conn) {
		if c == b {
			return true
		}
	}
	return false
}

// Regions partitions all passable cells into connected components, in
// row-major order of their first cell. Forbidden cells belong to no region.
// Time: O(W·H·d), Memory: O(W·H).
func (g *Grid) Regions(conn Connectivity) [][]Coordinate {
	assigned := make([]bool, len(g.cells))
	var comps [][]Coordinate
	for i := range g.cells {
		if assigned[i] || g.cells[i].Terrain.Forbidden() {
			continue
		}
		comp := g.Region(g.Coordinate(i), conn)
		for _, c := range comp {
			assigned[g.index(c.X, c.Y)] = true
		}
		comps = append(comps, comp)
	}
	return comps
}

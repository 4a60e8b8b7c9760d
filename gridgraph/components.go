package gridgraph

// Components finds all 4-connected regions of walkable (non-Blocked) cells.
// Visitation state is ignored, so the result describes the terrain alone.
// Returns a slice of components; each component is a slice of buffer indices
// in breadth-first discovery order, components ordered by their first cell
// in row-major order.
//
// To convert an index back to a Coord, use Coordinate(idx).
//
// Time:   O(XMax·YMax·4).
// Memory: O(XMax·YMax) for seen flags and output.
func (g *Grid) Components() [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int

	for i0, c := range g.cells {
		if c.Kind == Blocked || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			for _, d := range neighborOffsets {
				v := Coord{X: u.X + d[0], Y: u.Y + d[1]}
				if !g.InBounds(v) {
					continue
				}
				vi := g.Index(v)
				if g.cells[vi].Kind == Blocked || seen[vi] {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// Connected reports whether a and b are walkable cells in the same
// 4-connected region.
// Complexity: O(XMax·YMax) worst case.
func (g *Grid) Connected(a, b Coord) bool {
	_, err := g.ShortestPath(a, b)
	return err == nil
}

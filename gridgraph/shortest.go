package gridgraph

import "fmt"

// ShortestPath finds a minimum-length 4-directional walk from a to b over
// walkable cells, ignoring visitation state. It is the breadth-first
// reference the backtracking search can be measured against.
// Returns the coordinates from a to b inclusive.
//
// Behavior:
//  1. Validate both endpoints (in bounds, populated, walkable).
//  2. BFS from a in the fixed neighbor order.
//  3. Stop when b is dequeued.
//  4. Reconstruct the walk via predecessor indices.
//
// Complexity: O(XMax·YMax) time and memory.
func (g *Grid) ShortestPath(a, b Coord) ([]Coord, error) {
	if g.cells == nil {
		return nil, ErrNotPopulated
	}
	for _, c := range [2]Coord{a, b} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
		}
		if g.cells[g.Index(c)].Kind == Blocked {
			return nil, fmt.Errorf("%w: %v is blocked", ErrNoPath, c)
		}
	}

	prev := make([]int, len(g.cells))
	for i := range prev {
		prev[i] = -1
	}
	src, dst := g.Index(a), g.Index(b)
	prev[src] = src
	queue := []int{src}
	found := false

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == dst {
			found = true
			break
		}
		uc := g.Coordinate(u)
		for _, d := range neighborOffsets {
			vc := Coord{X: uc.X + d[0], Y: uc.Y + d[1]}
			if !g.InBounds(vc) {
				continue
			}
			v := g.Index(vc)
			if prev[v] >= 0 || g.cells[v].Kind == Blocked {
				continue
			}
			prev[v] = u
			queue = append(queue, v)
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %v → %v", ErrNoPath, a, b)
	}

	// Reconstruct path
	var path []Coord
	for at := dst; ; at = prev[at] {
		path = append(path, g.Coordinate(at))
		if at == src {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

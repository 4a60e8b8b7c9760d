// Package gridgraph provides the terrain grid searched by package route.
// It supports:
//
//   - Construction from dimensions plus start and target coordinates
//   - Bulk insertion of a flat, row-major terrain sequence
//   - Deterministic 4-directional neighbor queries
//   - Commit and dead-end marking of visitation state
//
// Cells are stored by value in one buffer; nothing holds pointers into it.
package gridgraph

import "fmt"

// New constructs an empty grid for unit with xMax rows and yMax columns.
// start and target must lie inside the grid. The grid is unpopulated until
// InsertNodes succeeds.
// Returns ErrInvalidUnit if unit < 1, ErrEmptyGrid if a dimension is not positive,
// ErrOutOfBounds if start or target lies outside the grid.
// Complexity: O(1).
func New(unit, xMax, yMax int, start, target Coord) (*Grid, error) {
	if unit < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidUnit, unit)
	}
	if xMax < 1 || yMax < 1 {
		return nil, fmt.Errorf("%w: %d×%d", ErrEmptyGrid, xMax, yMax)
	}
	g := &Grid{
		unit:   unit,
		xMax:   xMax,
		yMax:   yMax,
		start:  start,
		target: target,
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v in %d×%d grid", ErrOutOfBounds, start, xMax, yMax)
	}
	if !g.InBounds(target) {
		return nil, fmt.Errorf("%w: target %v in %d×%d grid", ErrOutOfBounds, target, xMax, yMax)
	}

	return g, nil
}

// InsertNodes populates the grid from a flat row-major terrain sequence:
// element i becomes cell (i / YMax, i % YMax). Costs are Manhattan distances
// to the construction-time start and target, zero on Blocked cells.
//
// The sequence is decoded into a fresh buffer which replaces the grid's cells
// only on success; on error the grid keeps its previous contents.
// Returns ErrSizeMismatch if len(codes) != XMax×YMax,
// ErrUnknownTerrain for an unmapped code.
// Complexity: O(XMax×YMax) time and memory.
func (g *Grid) InsertNodes(codes []float64) error {
	total := g.xMax * g.yMax
	if len(codes) != total {
		return fmt.Errorf("%w: got %d cells, want %d×%d=%d",
			ErrSizeMismatch, len(codes), g.xMax, g.yMax, total)
	}
	cells := make([]Cell, total)
	for i, code := range codes {
		kind, err := KindOf(code)
		if err != nil {
			return fmt.Errorf("gridgraph: cell %v: %w", g.Coordinate(i), err)
		}
		c := Cell{Coord: g.Coordinate(i), Kind: kind}
		if kind != Blocked {
			c.CostFromStart = g.start.Manhattan(c.Coord)
			c.CostToTarget = c.Coord.Manhattan(g.target)
		}
		cells[i] = c
	}
	g.cells = cells

	return nil
}

// Populated reports whether InsertNodes has succeeded.
func (g *Grid) Populated() bool {
	return g.cells != nil
}

// Unit returns the owning unit id supplied at construction.
func (g *Grid) Unit() int {
	return g.unit
}

// Dims returns (XMax, YMax): rows and columns.
func (g *Grid) Dims() (xMax, yMax int) {
	return g.xMax, g.yMax
}

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.xMax && c.Y >= 0 && c.Y < g.yMax
}

// Index maps c to its buffer index x*YMax + y.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.X*g.yMax + c.Y
}

// Coordinate converts a buffer index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{X: idx / g.yMax, Y: idx % g.yMax}
}

// Cell returns a copy of the cell at c. ok is false when c is out of bounds
// or the grid is unpopulated.
func (g *Grid) Cell(c Coord) (cell Cell, ok bool) {
	if !g.InBounds(c) || g.cells == nil {
		return Cell{}, false
	}
	return g.cells[g.Index(c)], true
}

// Cells returns a copy of every cell in row-major order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Start returns the start cell.
func (g *Grid) Start() Cell {
	c, _ := g.Cell(g.start)
	return c
}

// Target returns the target cell.
func (g *Grid) Target() Cell {
	c, _ := g.Cell(g.target)
	return c
}

// Neighbors returns the coordinates adjacent to c, in the order
// -x, +x, -y, +y, that are in bounds, not Blocked, and not DeadEnd.
// Out-of-bounds candidates are omitted, never reported.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	if g.cells == nil {
		return nil
	}
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Coord{X: c.X + d[0], Y: c.Y + d[1]}
		if !g.InBounds(n) {
			continue
		}
		cell := g.cells[g.Index(n)]
		if cell.Kind == Blocked || cell.Visit == DeadEnd {
			continue
		}
		out = append(out, n)
	}
	return out
}

// MarkCommitted sets the cell's visit state to owner and its on-path flag.
// Blocked and out-of-bounds cells are left untouched.
func (g *Grid) MarkCommitted(c Coord, owner int) {
	if cell := g.mutable(c); cell != nil {
		cell.Visit = VisitState(owner)
		cell.OnPath = true
	}
}

// MarkDeadEnd sets the cell's visit state to DeadEnd and clears its on-path
// flag. The cell never again appears in Neighbors until Reset.
// Blocked and out-of-bounds cells are left untouched.
func (g *Grid) MarkDeadEnd(c Coord) {
	if cell := g.mutable(c); cell != nil {
		cell.Visit = DeadEnd
		cell.OnPath = false
	}
}

// SetOnPath sets the on-path flag without changing visit state.
func (g *Grid) SetOnPath(c Coord, on bool) {
	if cell := g.mutable(c); cell != nil {
		cell.OnPath = on
	}
}

// Reset returns every cell to Unvisited and clears all on-path flags.
// Terrain and costs are unchanged.
// Complexity: O(XMax×YMax).
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].Visit = Unvisited
		g.cells[i].OnPath = false
	}
}

// Clone returns an independent deep copy, including visitation state.
// Complexity: O(XMax×YMax).
func (g *Grid) Clone() *Grid {
	cp := *g
	if g.cells != nil {
		cp.cells = make([]Cell, len(g.cells))
		copy(cp.cells, g.cells)
	}
	return &cp
}

// mutable returns a pointer into the buffer for a walkable in-bounds cell.
func (g *Grid) mutable(c Coord) *Cell {
	if !g.InBounds(c) || g.cells == nil {
		return nil
	}
	cell := &g.cells[g.Index(c)]
	if cell.Kind == Blocked {
		return nil
	}
	return cell
}

// Package gridgraph defines core types, terrain codes, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/navgrid.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates a grid dimension is zero or negative.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrInvalidUnit indicates a unit id that is not positive.
	ErrInvalidUnit = errors.New("gridgraph: unit id must be positive")
	// ErrOutOfBounds indicates a start or target coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrSizeMismatch indicates the terrain sequence length is not XMax×YMax.
	ErrSizeMismatch = errors.New("gridgraph: terrain length does not match grid dimensions")
	// ErrUnknownTerrain indicates a terrain code outside the fixed mapping.
	ErrUnknownTerrain = errors.New("gridgraph: unknown terrain code")
	// ErrNotPopulated indicates the grid has no inserted nodes.
	ErrNotPopulated = errors.New("gridgraph: grid is not populated")
	// ErrNoPath indicates no walkable connection exists between two cells.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)

// Terrain codes read from map data.
const (
	CodeOpen    = -1
	CodeTarget  = 0
	CodeBlocked = 3
	CodeStart   = 8 // any code ≥ CodeStart is a start marker
)

// CellKind is the immutable terrain classification of a cell.
type CellKind uint8

const (
	// Open is walkable ground.
	Open CellKind = iota
	// Blocked is elevated, impassable terrain.
	Blocked
	// Start is the unit's spawn cell.
	Start
	// Target is the unit's destination cell.
	Target
)

// String returns the kind name.
func (k CellKind) String() string {
	switch k {
	case Open:
		return "open"
	case Blocked:
		return "blocked"
	case Start:
		return "start"
	case Target:
		return "target"
	}
	return fmt.Sprintf("CellKind(%d)", uint8(k))
}

// KindOf maps a terrain code to its CellKind.
// Returns ErrUnknownTerrain for codes outside {-1, 0, 3, ≥8}.
func KindOf(code float64) (CellKind, error) {
	switch {
	case code == CodeOpen:
		return Open, nil
	case code == CodeBlocked:
		return Blocked, nil
	case code == CodeTarget:
		return Target, nil
	case code >= CodeStart:
		return Start, nil
	}
	return Open, fmt.Errorf("%w: %v", ErrUnknownTerrain, code)
}

// VisitState is the search visitation marker of a cell:
// Unvisited, DeadEnd, or a positive owner id of the committing unit.
type VisitState int

const (
	// Unvisited marks a cell no search has touched.
	Unvisited VisitState = 0
	// DeadEnd marks a cell proven not to lead to the target. It is sticky.
	DeadEnd VisitState = -1
)

// Owner returns the committing unit id, if any.
func (v VisitState) Owner() (int, bool) {
	if v > Unvisited {
		return int(v), true
	}
	return 0, false
}

// IsUnvisited reports v == Unvisited.
func (v VisitState) IsUnvisited() bool { return v == Unvisited }

// IsDeadEnd reports v == DeadEnd.
func (v VisitState) IsDeadEnd() bool { return v == DeadEnd }

// String returns "unvisited", "dead-end" or "owner:<id>".
func (v VisitState) String() string {
	switch {
	case v == Unvisited:
		return "unvisited"
	case v == DeadEnd:
		return "dead-end"
	case v > Unvisited:
		return fmt.Sprintf("owner:%d", int(v))
	}
	return fmt.Sprintf("VisitState(%d)", int(v))
}

// Coord addresses a cell: X is the row, Y the column.
type Coord struct {
	X, Y int
}

// String formats the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Manhattan returns |c.X-o.X| + |c.Y-o.Y|.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// Cell is one grid position. Kind and costs are fixed by InsertNodes;
// Visit and OnPath are mutated only through Grid methods.
type Cell struct {
	Coord
	Kind          CellKind
	CostFromStart int // Manhattan distance from start; 0 on Blocked cells
	CostToTarget  int // Manhattan distance to target; 0 on Blocked cells
	Visit         VisitState
	OnPath        bool
}

// TotalCost returns CostFromStart + CostToTarget.
func (c Cell) TotalCost() int {
	return c.CostFromStart + c.CostToTarget
}

// Walkable reports whether the cell may ever appear in a neighbor list.
func (c Cell) Walkable() bool {
	return c.Kind != Blocked
}

// Grid is an XMax×YMax terrain grid with fixed start and target coordinates.
// cells is nil until InsertNodes succeeds.
type Grid struct {
	unit       int
	xMax, yMax int
	start      Coord
	target     Coord
	cells      []Cell
}

// neighborOffsets is the fixed neighbor order: -x, +x, -y, +y.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

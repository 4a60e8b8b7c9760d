package tilemap

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/navgrid/gridgraph"
)

var (
	// ErrNoStart indicates no cell carries a start code (≥ 8).
	ErrNoStart = errors.New("tilemap: no start marker")
	// ErrNoTarget indicates no cell carries the target code (0).
	ErrNoTarget = errors.New("tilemap: no target marker")
	// ErrDuplicateStart indicates more than one start marker.
	ErrDuplicateStart = errors.New("tilemap: more than one start marker")
	// ErrDuplicateTarget indicates more than one target marker.
	ErrDuplicateTarget = errors.New("tilemap: more than one target marker")
)

// Locate finds the start and target markers in a row-major terrain sequence
// with rowLen cells per row: element i is (i / rowLen, i % rowLen).
// Exactly one of each marker must be present.
func Locate(codes []float64, rowLen int) (start, target gridgraph.Coord, err error) {
	if rowLen < 1 {
		return start, target, fmt.Errorf("tilemap: row length %d: %w", rowLen, gridgraph.ErrEmptyGrid)
	}
	var haveStart, haveTarget bool
	for i, code := range codes {
		c := gridgraph.Coord{X: i / rowLen, Y: i % rowLen}
		switch {
		case code >= gridgraph.CodeStart:
			if haveStart {
				return start, target, fmt.Errorf("%w: %v and %v", ErrDuplicateStart, start, c)
			}
			start, haveStart = c, true
		case code == gridgraph.CodeTarget:
			if haveTarget {
				return start, target, fmt.Errorf("%w: %v and %v", ErrDuplicateTarget, target, c)
			}
			target, haveTarget = c, true
		}
	}
	if !haveStart {
		return start, target, ErrNoStart
	}
	if !haveTarget {
		return start, target, ErrNoTarget
	}
	return start, target, nil
}

// Build validates codes against xMax×yMax, locates the markers, and returns
// a populated grid for unit. The length check runs before anything else.
func Build(unit, xMax, yMax int, codes []float64) (*gridgraph.Grid, error) {
	if xMax < 1 || yMax < 1 {
		return nil, fmt.Errorf("tilemap: %w: %d×%d", gridgraph.ErrEmptyGrid, xMax, yMax)
	}
	if len(codes) != xMax*yMax {
		return nil, fmt.Errorf("tilemap: %w: got %d cells, want %d×%d=%d",
			gridgraph.ErrSizeMismatch, len(codes), xMax, yMax, xMax*yMax)
	}
	start, target, err := Locate(codes, yMax)
	if err != nil {
		return nil, err
	}
	g, err := gridgraph.New(unit, xMax, yMax, start, target)
	if err != nil {
		return nil, fmt.Errorf("tilemap: %w", err)
	}
	if err = g.InsertNodes(codes); err != nil {
		return nil, fmt.Errorf("tilemap: %w", err)
	}
	return g, nil
}

// SPDX-License-Identifier: MIT
// Package: navgrid/mapgen
//
// mapgen.go — Config, Terrain, validation and seeded RNG.

package mapgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/navgrid/gridgraph"
	"github.com/katalvlaran/navgrid/tilemap"
)

// ErrInvalidSize indicates Rows or Cols below one, or a single-cell grid.
var ErrInvalidSize = errors.New("mapgen: grid too small")

// ErrInvalidDensity indicates a Density outside the closed interval [0,1].
var ErrInvalidDensity = errors.New("mapgen: density out of range")

// ErrSameCell indicates Start and Target refer to the same cell.
var ErrSameCell = errors.New("mapgen: start and target coincide")

// defaultSeed is used when Config.Seed == 0.
const defaultSeed int64 = 1

// Config selects dimensions, obstacle density, seed and optional markers.
type Config struct {
	Rows, Cols int
	// Density is the blocked-cell probability for Random and the braiding
	// ratio for Maze.
	Density float64
	Seed    int64
	Start   *gridgraph.Coord // nil = top-left
	Target  *gridgraph.Coord // nil = bottom-right (nearest passage for Maze)
}

// Terrain is a generated map: Codes is row-major with Rows×Cols entries.
type Terrain struct {
	Rows, Cols int
	Codes      []float64
	Start      gridgraph.Coord
	Target     gridgraph.Coord
}

// Grid builds and populates a gridgraph.Grid for unit from t.
func (t *Terrain) Grid(unit int) (*gridgraph.Grid, error) {
	g, err := gridgraph.New(unit, t.Rows, t.Cols, t.Start, t.Target)
	if err != nil {
		return nil, fmt.Errorf("mapgen: %w", err)
	}
	if err = g.InsertNodes(t.Codes); err != nil {
		return nil, fmt.Errorf("mapgen: %w", err)
	}
	return g, nil
}

// ToMap wraps t in a tilemap.Map with a single "world" layer.
func (t *Terrain) ToMap() *tilemap.Map {
	data := make([]float64, len(t.Codes))
	copy(data, t.Codes)
	return &tilemap.Map{
		Width:  t.Cols,
		Height: t.Rows,
		Layers: []tilemap.Layer{{
			Name:   tilemap.WorldLayer,
			Width:  t.Cols,
			Height: t.Rows,
			Data:   data,
		}},
	}
}

// validate checks size and density and resolves default markers.
func (cfg Config) validate(defTarget gridgraph.Coord) (start, target gridgraph.Coord, err error) {
	if cfg.Rows < 1 || cfg.Cols < 1 || cfg.Rows*cfg.Cols < 2 {
		return start, target, fmt.Errorf("%w: %d×%d", ErrInvalidSize, cfg.Rows, cfg.Cols)
	}
	if cfg.Density < 0 || cfg.Density > 1 {
		return start, target, fmt.Errorf("%w: %v", ErrInvalidDensity, cfg.Density)
	}
	start, target = gridgraph.Coord{}, defTarget
	if cfg.Start != nil {
		start = *cfg.Start
	}
	if cfg.Target != nil {
		target = *cfg.Target
	}
	for _, c := range [2]gridgraph.Coord{start, target} {
		if c.X < 0 || c.X >= cfg.Rows || c.Y < 0 || c.Y >= cfg.Cols {
			return start, target, fmt.Errorf("mapgen: marker %v: %w", c, gridgraph.ErrOutOfBounds)
		}
	}
	if start == target {
		return start, target, fmt.Errorf("%w: %v", ErrSameCell, start)
	}
	return start, target, nil
}

// rngFromSeed returns a deterministic *rand.Rand; seed==0 ⇒ defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// fill returns a Rows×Cols code slice set to code.
func fill(rows, cols int, code float64) []float64 {
	codes := make([]float64, rows*cols)
	for i := range codes {
		codes[i] = code
	}
	return codes
}

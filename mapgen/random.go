// SPDX-License-Identifier: MIT
// Package: navgrid/mapgen
//
// random.go — Bernoulli obstacle maps.
//
// Contract:
//   • Every cell is Blocked with probability Density, Open otherwise.
//   • Start and Target cells are always written last, overriding obstacles.
//   • Cells are drawn in row-major order, one rng.Float64 per cell.
//
// Complexity: O(Rows*Cols) time and memory.

package mapgen

import (
	"github.com/katalvlaran/navgrid/gridgraph"
)

// Random generates a Rows×Cols map with randomly placed obstacles.
func Random(cfg Config) (*Terrain, error) {
	start, target, err := cfg.validate(gridgraph.Coord{X: cfg.Rows - 1, Y: cfg.Cols - 1})
	if err != nil {
		return nil, err
	}

	rng := rngFromSeed(cfg.Seed)
	codes := fill(cfg.Rows, cfg.Cols, gridgraph.CodeOpen)
	for i := range codes {
		if rng.Float64() < cfg.Density {
			codes[i] = gridgraph.CodeBlocked
		}
	}
	codes[start.X*cfg.Cols+start.Y] = gridgraph.CodeStart
	codes[target.X*cfg.Cols+target.Y] = gridgraph.CodeTarget

	return &Terrain{
		Rows:   cfg.Rows,
		Cols:   cfg.Cols,
		Codes:  codes,
		Start:  start,
		Target: target,
	}, nil
}

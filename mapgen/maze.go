// SPDX-License-Identifier: MIT
// Package: navgrid/mapgen
//
// maze.go — randomized depth-first maze carving.
//
// Canonical model:
//   • Rooms sit on even (x,y); walls between two rooms sit on cells with
//     exactly one odd coordinate; cells with two odd coordinates are pillars.
//   • Carving starts at room (0,0) and uses an explicit stack; a random
//     unvisited room two cells away is opened together with the wall between.
//   • The result is a spanning tree of rooms ("perfect" maze). Braiding then
//     opens each remaining inner wall between two rooms with probability
//     Density, adding cycles.
//   • Default target is the bottom-right-most room.
//
// Complexity: O(Rows*Cols) time and memory.

package mapgen

import (
	"github.com/katalvlaran/navgrid/gridgraph"
)

// roomSteps are the four room-to-room moves in -x, +x, -y, +y order.
var roomSteps = [4][2]int{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}

// Maze generates a Rows×Cols maze map.
func Maze(cfg Config) (*Terrain, error) {
	lastRoom := gridgraph.Coord{X: (cfg.Rows - 1) / 2 * 2, Y: (cfg.Cols - 1) / 2 * 2}
	start, target, err := cfg.validate(lastRoom)
	if err != nil {
		return nil, err
	}

	rng := rngFromSeed(cfg.Seed)
	rows, cols := cfg.Rows, cfg.Cols
	codes := fill(rows, cols, gridgraph.CodeBlocked)
	idx := func(x, y int) int { return x*cols + y }
	inside := func(x, y int) bool { return x >= 0 && x < rows && y >= 0 && y < cols }

	// 1) Carve a spanning tree of rooms.
	visited := make([]bool, rows*cols)
	stack := []gridgraph.Coord{{}}
	visited[0] = true
	codes[0] = gridgraph.CodeOpen
	var cand []gridgraph.Coord
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		cand = cand[:0]
		for _, d := range roomSteps {
			nx, ny := cur.X+d[0], cur.Y+d[1]
			if inside(nx, ny) && !visited[idx(nx, ny)] {
				cand = append(cand, gridgraph.Coord{X: nx, Y: ny})
			}
		}
		if len(cand) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		next := cand[rng.Intn(len(cand))]
		codes[idx((cur.X+next.X)/2, (cur.Y+next.Y)/2)] = gridgraph.CodeOpen
		codes[idx(next.X, next.Y)] = gridgraph.CodeOpen
		visited[idx(next.X, next.Y)] = true
		stack = append(stack, next)
	}

	// 2) Braid: open leftover walls between two rooms.
	if cfg.Density > 0 {
		for x := 0; x < rows; x++ {
			for y := 0; y < cols; y++ {
				if (x+y)%2 == 0 || codes[idx(x, y)] != gridgraph.CodeBlocked {
					continue // room, pillar, or already open
				}
				var a, b gridgraph.Coord
				if x%2 == 1 {
					a, b = gridgraph.Coord{X: x - 1, Y: y}, gridgraph.Coord{X: x + 1, Y: y}
				} else {
					a, b = gridgraph.Coord{X: x, Y: y - 1}, gridgraph.Coord{X: x, Y: y + 1}
				}
				if !inside(a.X, a.Y) || !inside(b.X, b.Y) {
					continue // border wall on an even dimension
				}
				if rng.Float64() < cfg.Density {
					codes[idx(x, y)] = gridgraph.CodeOpen
				}
			}
		}
	}

	codes[idx(start.X, start.Y)] = gridgraph.CodeStart
	codes[idx(target.X, target.Y)] = gridgraph.CodeTarget

	return &Terrain{
		Rows:   rows,
		Cols:   cols,
		Codes:  codes,
		Start:  start,
		Target: target,
	}, nil
}

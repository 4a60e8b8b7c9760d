package route_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/navgrid/gridgraph"
	"github.com/katalvlaran/navgrid/mapgen"
	"github.com/katalvlaran/navgrid/route"
)

// checkRoute asserts the structural properties of a search outcome on g.
func checkRoute(t *testing.T, g *gridgraph.Grid, res *route.Result, reachable bool) {
	t.Helper()
	require.Equal(t, reachable, res.Found, "search outcome must match connectivity")

	onPath := make(map[gridgraph.Coord]bool)
	for _, c := range g.Cells() {
		if c.OnPath {
			onPath[c.Coord] = true
		}
		if c.Kind == gridgraph.Blocked {
			assert.True(t, c.Visit.IsUnvisited(), "blocked cell %v visited", c.Coord)
		}
		if !g.Connected(g.Start().Coord, c.Coord) {
			assert.True(t, c.Visit.IsUnvisited(), "unreachable cell %v visited", c.Coord)
		}
	}

	if !res.Found {
		assert.Nil(t, res.Route)
		assert.Empty(t, onPath, "failed search leaves no path marks")
		assert.Equal(t, res.Committed, res.DeadEnds, "every committed cell was retreated from")
		return
	}

	require.NotEmpty(t, res.Route)
	assert.Equal(t, g.Start().Coord, res.Route[0])
	assert.Equal(t, g.Target().Coord, res.Route[len(res.Route)-1])
	assert.Len(t, onPath, len(res.Route))

	seen := make(map[gridgraph.Coord]bool, len(res.Route))
	for i, c := range res.Route {
		assert.False(t, seen[c], "route repeats %v", c)
		seen[c] = true
		assert.True(t, onPath[c], "route cell %v not on-path", c)

		cell, ok := g.Cell(c)
		require.True(t, ok)
		assert.NotEqual(t, gridgraph.Blocked, cell.Kind, "route crosses blocked %v", c)
		if i > 0 {
			assert.Equal(t, 1, res.Route[i-1].Manhattan(c), "route jumps %v -> %v", res.Route[i-1], c)
		}
	}

	if sp, err := g.ShortestPath(g.Start().Coord, g.Target().Coord); assert.NoError(t, err) {
		assert.GreaterOrEqual(t, len(res.Route), len(sp))
	}
}

// TestFind_RandomMaps runs the search over seeded obstacle maps of varying
// size and density, with connectivity as the oracle.
func TestFind_RandomMaps(t *testing.T) {
	sizes := [][2]int{{1, 2}, {2, 2}, {3, 7}, {8, 8}, {16, 11}, {25, 25}}
	densities := []float64{0, 0.2, 0.35, 0.5}
	for _, sz := range sizes {
		for _, d := range densities {
			for seed := int64(1); seed <= 8; seed++ {
				name := fmt.Sprintf("%dx%d/d%.2f/s%d", sz[0], sz[1], d, seed)
				t.Run(name, func(t *testing.T) {
					tr, err := mapgen.Random(mapgen.Config{Rows: sz[0], Cols: sz[1], Density: d, Seed: seed})
					require.NoError(t, err)
					g, err := tr.Grid(1)
					require.NoError(t, err)
					reachable := g.Connected(tr.Start, tr.Target)

					res, err := route.Find(g)
					require.NoError(t, err)
					checkRoute(t, g, res, reachable)
				})
			}
		}
	}
}

// TestFind_Mazes always finds the target: mazes are connected by construction.
func TestFind_Mazes(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		for _, braid := range []float64{0, 0.3} {
			tr, err := mapgen.Maze(mapgen.Config{Rows: 21, Cols: 31, Density: braid, Seed: seed})
			require.NoError(t, err)
			g, err := tr.Grid(1)
			require.NoError(t, err)

			res, err := route.Find(g)
			require.NoError(t, err)
			checkRoute(t, g, res, true)

			if braid == 0 {
				// A perfect maze has exactly one simple path.
				sp, err := g.ShortestPath(tr.Start, tr.Target)
				require.NoError(t, err)
				assert.Equal(t, sp, res.Route, "seed %d", seed)
			}
		}
	}
}

// TestFind_Deterministic reruns identical searches on clones.
func TestFind_Deterministic(t *testing.T) {
	tr, err := mapgen.Random(mapgen.Config{Rows: 30, Cols: 30, Density: 0.3, Seed: 11})
	require.NoError(t, err)
	g, err := tr.Grid(1)
	require.NoError(t, err)

	a, b := g.Clone(), g.Clone()
	ra, err := route.Find(a)
	require.NoError(t, err)
	rb, err := route.Find(b)
	require.NoError(t, err)
	assert.Equal(t, ra, rb)
	assert.Equal(t, a.Cells(), b.Cells())
}

package route_test

import (
	"testing"

	"github.com/katalvlaran/navgrid/mapgen"
	"github.com/katalvlaran/navgrid/route"
)

// BenchmarkFind_Random measures a search on a 200×200 map with 30% obstacles.
// Each iteration resets visitation state first.
// Complexity: O(X×Y)
func BenchmarkFind_Random(b *testing.B) {
	benchFind(b, mapgen.Random, mapgen.Config{Rows: 200, Cols: 200, Density: 0.3, Seed: 42})
}

// BenchmarkFind_Maze measures a search through a 201×201 perfect maze,
// where most of the work is backtracking.
func BenchmarkFind_Maze(b *testing.B) {
	benchFind(b, mapgen.Maze, mapgen.Config{Rows: 201, Cols: 201, Seed: 42})
}

func benchFind(b *testing.B, gen func(mapgen.Config) (*mapgen.Terrain, error), cfg mapgen.Config) {
	tr, err := gen(cfg)
	if err != nil {
		b.Fatalf("setup generate failed: %v", err)
	}
	g, err := tr.Grid(1)
	if err != nil {
		b.Fatalf("setup Grid failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Reset()
		if _, err = route.Find(g); err != nil {
			b.Fatalf("Find failed: %v", err)
		}
	}
}

// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

func mustGrid(t *testing.T, xMax, yMax int, start, target Coord, codes []float64) *Grid {
	t.Helper()
	g, err := New(1, xMax, yMax, start, target)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err = g.InsertNodes(codes); err != nil {
		t.Fatalf("InsertNodes failed: %v", err)
	}
	return g
}

// TestComponents_TwoRegions tests Components on a 3×4 grid split by a wall.
//
// Grid (S start, T target, # blocked, . open):
//
//	S . # .
//	. . # .
//	# # # T
//
// Expected: 2 regions of sizes 4 and 3.
func TestComponents_TwoRegions(t *testing.T) {
	g := mustGrid(t, 3, 4, Coord{0, 0}, Coord{2, 3}, []float64{
		8, -1, 3, -1,
		-1, -1, 3, -1,
		3, 3, 3, 0,
	})

	comps := g.Components()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	if want := []int{3, 4}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
	if g.Connected(Coord{0, 0}, Coord{2, 3}) {
		t.Error("start and target must be disconnected")
	}
	if !g.Connected(Coord{0, 3}, Coord{2, 3}) {
		t.Error("(0,3) and target share a region")
	}
}

// TestComponents_IgnoresVisitState checks that dead ends do not split regions.
func TestComponents_IgnoresVisitState(t *testing.T) {
	g := mustGrid(t, 1, 3, Coord{0, 0}, Coord{0, 2}, []float64{8, -1, 0})
	g.MarkDeadEnd(Coord{0, 1})

	comps := g.Components()
	if len(comps) != 1 || len(comps[0]) != 3 {
		t.Fatalf("components = %v; want one region of 3", comps)
	}
	if !g.Connected(Coord{0, 0}, Coord{0, 2}) {
		t.Error("Connected must ignore dead-end marks")
	}
}

// TestComponents_AllBlocked covers the no-walkable-cell edge case.
func TestComponents_AllBlocked(t *testing.T) {
	g := mustGrid(t, 2, 2, Coord{0, 0}, Coord{1, 1}, []float64{3, 3, 3, 3})
	if comps := g.Components(); len(comps) != 0 {
		t.Errorf("got %d components; want 0", len(comps))
	}
}

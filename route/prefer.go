package route

import "github.com/katalvlaran/navgrid/gridgraph"

// Compare ranks cand against cur, the best candidate seen so far.
// It returns a negative value when cand should replace cur, and zero or a
// positive value when cur stays. Stages, each consulted only on a tie:
//
//  1. cand is Unvisited while cur is not → cand.
//  2. lower TotalCost wins.
//  3. lower CostToTarget wins.
//
// Stage 1 is one-sided: an Unvisited cur facing a visited cand falls
// through to the cost stages.
func Compare(cur, cand gridgraph.Cell) int {
	if cand.Visit.IsUnvisited() && !cur.Visit.IsUnvisited() {
		return -1
	}
	if d := cand.TotalCost() - cur.TotalCost(); d != 0 {
		return d
	}
	return cand.CostToTarget - cur.CostToTarget
}

// Prefer returns cand if it beats cur under Compare, otherwise cur.
// Full ties keep cur, so the first-seen candidate wins.
func Prefer(cur, cand gridgraph.Cell) gridgraph.Cell {
	if Compare(cur, cand) < 0 {
		return cand
	}
	return cur
}

// Best folds Prefer left over cells, starting from cells[0].
// ok is false for an empty slice.
func Best(cells []gridgraph.Cell) (best gridgraph.Cell, ok bool) {
	if len(cells) == 0 {
		return gridgraph.Cell{}, false
	}
	best = cells[0]
	for _, c := range cells[1:] {
		best = Prefer(best, c)
	}
	return best, true
}

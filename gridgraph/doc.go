// Package gridgraph models a rectangular terrain grid for single-unit route
// finding, treating every walkable cell as a graph vertex with implicit
// 4-directional edges.
//
// What:
//
//   - Grid owns one contiguous buffer of Cell values indexed by x*YMax + y,
//     where x is the row and y the column.
//   - Each Cell carries an immutable terrain Kind (Open, Blocked, Start, Target),
//     Manhattan costs to the start and target fixed at insertion time, and a
//     search-mutable VisitState plus on-path flag.
//   - Neighbors(c) yields in-bounds, non-Blocked, non-DeadEnd neighbors in the
//     fixed order -x, +x, -y, +y.
//   - MarkCommitted / MarkDeadEnd are the only visitation transitions.
//   - Components and Connected analyse walkable regions independently of any
//     search state; ShortestPath gives the breadth-first optimum for comparison.
//
// Why:
//
//   - Game and simulation maps: walk a unit from its spawn to an objective.
//   - Deterministic replay: identical grids and identical searches yield
//     identical routes, even on maps with many tied costs.
//
// Terrain codes:
//
//	-1  → Open
//	 3  → Blocked (elevated terrain)
//	 0  → Target
//	≥8  → Start
//
// Complexity:
//
//   - New, InsertNodes, Clone, Reset:  O(XMax×YMax) time and memory.
//   - Neighbors, MarkCommitted, MarkDeadEnd, Cell: O(1).
//   - Components, ShortestPath:        O(XMax×YMax), Memory: O(XMax×YMax).
//
// Errors:
//
//   - ErrInvalidUnit:    the unit id is not positive.
//   - ErrEmptyGrid:      a dimension is not positive.
//   - ErrOutOfBounds:    start or target lies outside the grid.
//   - ErrSizeMismatch:   terrain sequence length differs from XMax×YMax.
//   - ErrUnknownTerrain: a terrain code outside the fixed mapping.
//   - ErrNotPopulated:   the grid has no successfully inserted nodes.
//   - ErrNoPath:         ShortestPath found no walkable connection.
//
// Concurrency: a Grid is not safe for concurrent use. Visitation state is
// mutated in place by a search, so concurrent searches need one Clone each.
package gridgraph

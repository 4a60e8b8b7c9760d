// Package route finds a single walkable route between the start and target
// cells of a gridgraph.Grid using greedy depth-first search with backtracking.
//
// What:
//
//   - Compare / Prefer / Best: the tie-break resolver. Between two candidate
//     cells it prefers, in strict order:
//     1. an Unvisited candidate over one that is committed or dead-ended;
//     2. the lower CostFromStart + CostToTarget;
//     3. the lower CostToTarget;
//     and otherwise keeps the first-seen candidate.
//   - Find: the route search. One explicit frontier stack of committed cells;
//     each step either commits the best Unvisited neighbor of the top cell or
//     marks the top cell DeadEnd and pops it.
//
// Why:
//
//   - Identical grids always yield identical routes, even when many
//     neighbors tie on cost, because the neighbor order and the resolver are
//     both fixed.
//   - Dead ends are sticky, so every cell is entered at most once and the
//     search is linear in the grid size.
//
// The route is not guaranteed to be shortest. Compare it with
// gridgraph.(*Grid).ShortestPath when optimality matters.
//
// Key Types:
//
//   - Option / SearchOptions: owner id, OnCommit / OnDeadEnd hooks, MaxSteps
//   - Result: Found flag, Route coordinates, Committed / DeadEnds counters
//
// Complexity:
//
//   - Find: Time O(X·Y) (each cell committed and dead-ended at most once,
//     fan-out ≤ 4), Memory O(X·Y) for the frontier stack.
//
// Errors:
//
//   - ErrGridNil               grid pointer is nil
//   - gridgraph.ErrNotPopulated grid has no inserted nodes
//   - ErrOptionViolation       invalid option value
//   - ErrStepLimit             MaxSteps exhausted before the search finished
//   - hook errors              propagated from OnCommit or OnDeadEnd
//
// A search that exhausts the grid without reaching the target is not an
// error: Find returns Result{Found: false} with a nil Route.
//
// Concurrency: Find mutates the grid's visitation state in place. Run at
// most one search per Grid at a time; give each concurrent unit its own
// Clone. Call Reset before searching the same grid again.
package route

// Package route implements the backtracking route search over gridgraph.Grid.
//
// Key features:
//   - Find(g, opts...): walk from start to target, committing the preferred
//     Unvisited neighbor or retreating from dead ends
//   - Hooks: OnCommit & OnDeadEnd with error aborts
//   - Limits: MaxSteps
//
// Complexity:
//
//   - Time:   O(X·Y); every cell is committed and dead-ended at most once.
//   - Memory: O(X·Y) for the frontier stack.
package route

import (
	"fmt"

	"github.com/katalvlaran/navgrid/gridgraph"
)

// walker encapsulates state during a search.
type walker struct {
	grid   *gridgraph.Grid   // grid being searched and marked
	opts   SearchOptions     // search options
	owner  int               // unit id written into committed cells
	target gridgraph.Coord   // fixed target coordinate
	stack  []gridgraph.Coord // frontier stack; stack[0] is start, so it is also the route
	res    *Result           // result collector
}

// Find searches g from its start to its target and marks visitation state
// in place. On success Result.Route runs from start to target inclusive and
// every route cell is on-path. When the frontier stack empties, Found is
// false and Route is nil.
//
// A grid whose start is already DeadEnd (left by an earlier failed search)
// fails immediately without further mutation.
//
// Returns ErrGridNil, gridgraph.ErrNotPopulated, ErrOptionViolation,
// ErrStepLimit, or a wrapped hook error. On error Found is false and Route nil.
func Find(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	// 1. Validate input grid
	if g == nil {
		return nil, ErrGridNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Populated() {
		return nil, gridgraph.ErrNotPopulated
	}

	owner := o.Owner
	if owner == 0 {
		owner = g.Unit()
	}

	res := &Result{}
	start := g.Start()
	if start.Visit.IsDeadEnd() {
		return res, nil
	}

	xMax, yMax := g.Dims()
	w := &walker{
		grid:   g,
		opts:   o,
		owner:  owner,
		target: g.Target().Coord,
		stack:  make([]gridgraph.Coord, 0, xMax+yMax),
		res:    res,
	}

	// 3. Initialize with the start cell
	if err := w.commit(start.Coord); err != nil {
		return res, err
	}

	// 4. Loop until success or exhaustion
	if err := w.run(); err != nil {
		res.Found = false
		res.Route = nil
		return res, err
	}

	return res, nil
}

// run drives the frontier stack until the target is on top or the stack empties.
func (w *walker) run() error {
	steps := 0
	for len(w.stack) > 0 {
		if w.opts.MaxSteps > 0 && steps >= w.opts.MaxSteps {
			return fmt.Errorf("%w: %d steps", ErrStepLimit, steps)
		}
		steps++

		top := w.stack[len(w.stack)-1]
		if top == w.target {
			w.succeed()
			return nil
		}

		next, ok := w.best(top)
		if ok {
			if err := w.commit(next); err != nil {
				return err
			}
			continue
		}
		if err := w.retreat(top); err != nil {
			return err
		}
	}

	return nil
}

// best returns the preferred Unvisited neighbor of c, if any.
func (w *walker) best(c gridgraph.Coord) (gridgraph.Coord, bool) {
	var (
		chosen gridgraph.Cell
		found  bool
	)
	for _, n := range w.grid.Neighbors(c) {
		cell, _ := w.grid.Cell(n)
		if !cell.Visit.IsUnvisited() {
			continue
		}
		if !found {
			chosen, found = cell, true
			continue
		}
		chosen = Prefer(chosen, cell)
	}

	return chosen.Coord, found
}

// commit marks c as owned and on-path and pushes it. Pushing onto the
// stack is also the route append.
func (w *walker) commit(c gridgraph.Coord) error {
	w.grid.MarkCommitted(c, w.owner)
	w.stack = append(w.stack, c)
	w.res.Committed++

	if w.opts.OnCommit != nil {
		if err := w.opts.OnCommit(c); err != nil {
			return fmt.Errorf("route: OnCommit hook for %v: %w", c, err)
		}
	}

	return nil
}

// retreat marks c DeadEnd and pops it, undoing the route append made by
// its commit.
func (w *walker) retreat(c gridgraph.Coord) error {
	w.grid.MarkDeadEnd(c)
	w.stack = w.stack[:len(w.stack)-1]
	w.res.DeadEnds++

	if w.opts.OnDeadEnd != nil {
		if err := w.opts.OnDeadEnd(c); err != nil {
			return fmt.Errorf("route: OnDeadEnd hook for %v: %w", c, err)
		}
	}

	return nil
}

// succeed records the route held by the stack.
func (w *walker) succeed() {
	w.grid.SetOnPath(w.target, true)
	w.res.Found = true
	w.res.Route = make([]gridgraph.Coord, len(w.stack))
	copy(w.res.Route, w.stack)
}

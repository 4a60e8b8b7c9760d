// Package route defines options, results and sentinel errors for the
// backtracking route search.
package route

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/navgrid/gridgraph"
)

var (
	// ErrGridNil is returned when a nil *gridgraph.Grid is passed to Find.
	ErrGridNil = errors.New("route: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("route: invalid option supplied")

	// ErrStepLimit is returned when MaxSteps is reached before the search
	// succeeds or exhausts the grid.
	ErrStepLimit = errors.New("route: step limit reached")
)

// Option configures optional behavior of Find.
// Use with Find(g, opts...).
type Option func(*SearchOptions)

// SearchOptions holds configurable parameters for a route search.
type SearchOptions struct {
	// Owner is the unit id written into committed cells.
	// Zero means "use the grid's unit id".
	Owner int

	// OnCommit, if non-nil, is invoked after a cell is committed and pushed,
	// including the start cell. Returning an error aborts the search.
	OnCommit func(c gridgraph.Coord) error

	// OnDeadEnd, if non-nil, is invoked after a cell is marked DeadEnd and
	// popped. Returning an error aborts the search.
	OnDeadEnd func(c gridgraph.Coord) error

	// MaxSteps, if positive, bounds the number of loop iterations.
	// Default is 0 (no limit).
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a SearchOptions struct with:
//   - the grid's unit as owner
//   - no hooks
//   - no step limit
func DefaultOptions() SearchOptions {
	return SearchOptions{
		Owner:     0,
		OnCommit:  nil,
		OnDeadEnd: nil,
		MaxSteps:  0,
	}
}

// WithOwner returns an Option that commits cells under unit id owner.
// A non-positive owner is recorded as ErrOptionViolation.
func WithOwner(owner int) Option {
	return func(o *SearchOptions) {
		if owner < 1 {
			o.err = fmt.Errorf("%w: owner must be positive (%d)", ErrOptionViolation, owner)
			return
		}
		o.Owner = owner
	}
}

// WithOnCommit returns an Option that installs fn as the commit hook.
func WithOnCommit(fn func(c gridgraph.Coord) error) Option {
	return func(o *SearchOptions) {
		o.OnCommit = fn
	}
}

// WithOnDeadEnd returns an Option that installs fn as the dead-end hook.
func WithOnDeadEnd(fn func(c gridgraph.Coord) error) Option {
	return func(o *SearchOptions) {
		o.OnDeadEnd = fn
	}
}

// WithMaxSteps returns an Option that bounds the search loop.
//
//	n > 0:  at most n iterations
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *SearchOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// Result captures the outcome of Find.
type Result struct {
	// Found reports whether the target was reached.
	Found bool

	// Route lists the coordinates from start to target inclusive.
	// It is nil when Found is false.
	Route []gridgraph.Coord

	// Committed counts cells committed by this search, start included.
	Committed int

	// DeadEnds counts cells marked DeadEnd by this search.
	DeadEnds int
}

// Len returns the number of moves along Route (cells minus one), or 0.
func (r *Result) Len() int {
	if len(r.Route) == 0 {
		return 0
	}
	return len(r.Route) - 1
}

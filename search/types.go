// Package search provides tunable options, results and error definitions
// for the grid searches.
package search

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrBrokenChain is returned when the parent table has no entry for a
	// cell on the way back to the start.
	ErrBrokenChain = errors.New("search: broken parent chain")
)

// Algorithm names used in Results and reports.
const (
	NameBFS   = "BFS"
	NameAStar = "A*"
)

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds callbacks and switches shared by BFS and AStar.
type Options struct {
	// OnExpand is called for every processed pop with the cell and the
	// expansion count so far (1-based).
	OnExpand func(c grid.Cell, expanded int)

	// OnPush is called after every frontier insertion with the inserted cell
	// and the resulting frontier length.
	OnPush func(c grid.Cell, frontier int)

	// StaleExpansion makes AStar process heap entries whose g-cost has since
	// been improved, counting them as expansions. BFS ignores it.
	StaleExpansion bool
}

// DefaultOptions returns Options with no-op hooks and stale entries skipped.
func DefaultOptions() Options {
	return Options{
		OnExpand:       func(grid.Cell, int) {},
		OnPush:         func(grid.Cell, int) {},
		StaleExpansion: false,
	}
}

// WithOnExpand registers a callback run on every expansion.
func WithOnExpand(fn func(c grid.Cell, expanded int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnPush registers a callback run after every frontier insertion.
func WithOnPush(fn func(c grid.Cell, frontier int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithStaleExpansion makes AStar expand stale heap entries instead of
// dropping them. The path is unaffected; Expanded may grow.
func WithStaleExpansion() Option {
	return func(o *Options) {
		o.StaleExpansion = true
	}
}

// Result holds the outcome of one search:
//   - Moves: start→goal move sequence; nil when Found is false.
//   - Found: false is the "no solution" sentinel.
//   - Expanded: processed frontier pops.
//   - PeakFrontier: largest frontier length seen.
type Result struct {
	Algorithm    string
	Moves        []grid.Move
	Found        bool
	Expanded     int
	PeakFrontier int
}

// Steps returns the path length, or -1 when no path was found.
func (r *Result) Steps() int {
	if !r.Found {
		return -1
	}
	return len(r.Moves)
}

// Func is the common signature of BFS and AStar.
type Func func(g *grid.Grid, opts ...Option) (*Result, error)

// buildOptions applies opts over DefaultOptions.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

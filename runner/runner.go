// Package runner runs a set of search algorithms on independent copies of one
// grid, times each run, and renders the comparison report.
package runner

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/metrics"
	"github.com/katalvlaran/gridpath/search"
)

// Algorithm binds a configuration key to a search function.
type Algorithm struct {
	Key     string
	Name    string
	Run     search.Func
	Overlay bool // render the grid with the path marked
}

// catalog lists the known algorithms in report order.
var catalog = []Algorithm{
	{Key: config.AlgorithmBFS, Name: search.NameBFS, Run: search.BFS},
	{Key: config.AlgorithmAStar, Name: search.NameAStar, Run: search.AStar},
}

// Algorithms resolves keys to Algorithms in the order given. overlay decides
// per key whether the report shows the marked grid.
func Algorithms(keys []string, overlay func(key string) bool) ([]Algorithm, error) {
	out := make([]Algorithm, 0, len(keys))
	for _, k := range keys {
		var found bool
		for _, a := range catalog {
			if a.Key == k {
				a.Overlay = overlay != nil && overlay(k)
				out = append(out, a)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("runner: unknown algorithm %q", k)
		}
	}
	return out, nil
}

// Outcome is one timed algorithm run.
type Outcome struct {
	Algorithm Algorithm
	Result    *search.Result
	Elapsed   time.Duration
	// Marked is a copy of the grid with the path overlaid; nil unless the
	// algorithm asks for an overlay and a path was found.
	Marked *grid.Grid
}

// Runner executes algorithms and records their effort.
type Runner struct {
	log        logrus.FieldLogger
	algorithms []Algorithm
	metrics    *metrics.Metrics
	searchOpts []search.Option
}

// Option configures a Runner.
type Option func(*Runner)

// WithMetrics records every run in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithSearchOptions passes opts to every search.
func WithSearchOptions(opts ...search.Option) Option {
	return func(r *Runner) { r.searchOpts = append(r.searchOpts, opts...) }
}

// New returns a Runner for algorithms. A nil log discards log output.
func New(log logrus.FieldLogger, algorithms []Algorithm, opts ...Option) *Runner {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	r := &Runner{log: log, algorithms: algorithms}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Solve runs every algorithm, in order, on its own clone of g. g itself is
// never modified. name labels the log entries.
func (r *Runner) Solve(name string, g *grid.Grid) ([]Outcome, error) {
	if g == nil {
		return nil, search.ErrGridNil
	}
	entry := r.log.WithFields(logrus.Fields{
		"run_id": uuid.NewString(),
		"map":    name,
		"rows":   g.Rows(),
		"cols":   g.Cols(),
	})
	entry.WithField("reachable_cells", len(g.Reachable(g.Start()))).Debug("map loaded")

	outcomes := make([]Outcome, 0, len(r.algorithms))
	for _, alg := range r.algorithms {
		work := g.Clone()
		began := time.Now()
		res, err := alg.Run(work, r.searchOpts...)
		elapsed := time.Since(began)
		if err != nil {
			return nil, fmt.Errorf("%s on %s: %w", alg.Name, name, err)
		}

		entry.WithFields(logrus.Fields{
			"algorithm":     alg.Name,
			"found":         res.Found,
			"steps":         res.Steps(),
			"expanded":      res.Expanded,
			"peak_frontier": res.PeakFrontier,
			"elapsed":       elapsed,
		}).Info("search finished")

		if r.metrics != nil {
			r.metrics.Observe(alg.Name, res.Found, res.Expanded, res.PeakFrontier, elapsed)
		}

		o := Outcome{Algorithm: alg, Result: res, Elapsed: elapsed}
		if alg.Overlay && res.Found {
			o.Marked = g.Clone()
			if err := o.Marked.Overlay(res.Moves); err != nil {
				return nil, fmt.Errorf("%s on %s: overlay: %w", alg.Name, name, err)
			}
		}
		outcomes = append(outcomes, o)
	}

	return outcomes, nil
}

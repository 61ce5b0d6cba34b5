package search

import (
	"github.com/katalvlaran/gridpath/grid"
)

// walker encapsulates mutable BFS state for a single run.
type walker struct {
	grid    *grid.Grid
	opts    Options
	queue   []grid.Cell
	visited map[grid.Cell]struct{}
	parents parents
	res     *Result
}

// BFS runs breadth-first search from g.Start() to g.Goal().
// The returned path has the minimum number of moves. An unreachable goal
// yields Found == false together with the statistics gathered.
// Returns ErrGridNil for a nil grid.
func BFS(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := buildOptions(opts)

	n := g.Rows() * g.Cols()
	w := &walker{
		grid:    g,
		opts:    o,
		queue:   make([]grid.Cell, 0, n),
		visited: make(map[grid.Cell]struct{}, n),
		parents: newParents(g.Start(), n),
		res:     &Result{Algorithm: NameBFS},
	}

	// Seed queue with start; the start is visited from the outset.
	w.visited[g.Start()] = struct{}{}
	w.queue = append(w.queue, g.Start())
	w.res.PeakFrontier = 1

	return w.res, w.loop()
}

// loop processes the queue until the goal is popped or the queue is empty.
func (w *walker) loop() error {
	goal := w.grid.Goal()
	for len(w.queue) > 0 {
		cur := w.dequeue()
		w.res.Expanded++
		w.opts.OnExpand(cur, w.res.Expanded)

		if cur == goal {
			moves, err := w.parents.reconstruct(cur)
			if err != nil {
				return err
			}
			w.res.Moves, w.res.Found = moves, true
			return nil
		}
		w.enqueueNeighbors(cur)
	}
	return nil
}

// dequeue pops the head of the queue.
func (w *walker) dequeue() grid.Cell {
	c := w.queue[0]
	w.queue = w.queue[1:]
	return c
}

// enqueueNeighbors appends every unvisited neighbor of cur in generator order.
func (w *walker) enqueueNeighbors(cur grid.Cell) {
	for m, nbr := range w.grid.Neighbors(cur) {
		if _, seen := w.visited[nbr]; seen {
			continue
		}
		w.visited[nbr] = struct{}{}
		w.parents.set(nbr, cur, m)
		w.queue = append(w.queue, nbr)
		w.res.PeakFrontier = max(w.res.PeakFrontier, len(w.queue))
		w.opts.OnPush(nbr, len(w.queue))
	}
}

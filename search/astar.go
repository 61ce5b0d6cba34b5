package search

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/grid"
)

// Manhattan returns |Δrow| + |Δcol|. Without diagonal moves and with unit
// costs it never overestimates the remaining distance.
func Manhattan(a, b grid.Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	grid    *grid.Grid
	opts    Options
	goal    grid.Cell
	gScore  map[grid.Cell]int // best known cost from start
	parents parents
	pq      openPQ
	res     *Result
}

// AStar runs A* from g.Start() to g.Goal() with the Manhattan heuristic.
// The first time the goal is popped its path is cost-optimal.
// An unreachable goal yields Found == false together with the statistics
// gathered. Returns ErrGridNil for a nil grid.
func AStar(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := buildOptions(opts)

	n := g.Rows() * g.Cols()
	r := &runner{
		grid:    g,
		opts:    o,
		goal:    g.Goal(),
		gScore:  make(map[grid.Cell]int, n),
		parents: newParents(g.Start(), n),
		pq:      make(openPQ, 0, n),
		res:     &Result{Algorithm: NameAStar},
	}
	r.init()

	return r.res, r.process()
}

// init seeds g(start) = 0 and pushes the start with f = h(start).
func (r *runner) init() {
	start := r.grid.Start()
	r.gScore[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, entry{cell: start, f: Manhattan(start, r.goal), g: 0})
	r.res.PeakFrontier = 1
}

// process pops the lowest-f entry until the goal is reached or the heap is empty.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(entry)

		// Skip entries superseded by a cheaper push for the same cell.
		if !r.opts.StaleExpansion && item.g > r.gScore[item.cell] {
			continue
		}
		r.res.Expanded++
		r.opts.OnExpand(item.cell, r.res.Expanded)

		if item.cell == r.goal {
			moves, err := r.parents.reconstruct(item.cell)
			if err != nil {
				return err
			}
			r.res.Moves, r.res.Found = moves, true
			return nil
		}
		r.relax(item.cell)
	}
	return nil
}

// relax offers every neighbor of u the cost g(u)+1 and pushes the ones that improve.
// The candidate cost comes from the g table, not the popped entry, so a stale
// expansion relaxes with the current best cost.
func (r *runner) relax(u grid.Cell) {
	cand := r.gScore[u] + 1
	for m, v := range r.grid.Neighbors(u) {
		if old, ok := r.gScore[v]; ok && cand >= old {
			continue
		}
		r.gScore[v] = cand
		r.parents.set(v, u, m)
		heap.Push(&r.pq, entry{cell: v, f: cand + Manhattan(v, r.goal), g: cand})
		r.res.PeakFrontier = max(r.res.PeakFrontier, r.pq.Len())
		r.opts.OnPush(v, r.pq.Len())
	}
}

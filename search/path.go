package search

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/gridpath/grid"
)

// link records how a cell was reached: from prev by move.
// The start cell carries root == true and no predecessor.
type link struct {
	prev grid.Cell
	move grid.Move
	root bool
}

// parents maps each discovered cell to its link. For AStar an entry is
// overwritten when a cheaper path to the cell is found.
type parents map[grid.Cell]link

// newParents returns a table seeded with the root link for start.
func newParents(start grid.Cell, sizeHint int) parents {
	p := make(parents, sizeHint)
	p[start] = link{root: true}
	return p
}

// set records that c is reached from prev via m.
func (p parents) set(c, prev grid.Cell, m grid.Move) {
	p[c] = link{prev: prev, move: m}
}

// reconstruct walks the table backwards from end to the root link and
// returns the moves in start→end order. The walk is an explicit loop, so
// stack depth does not grow with path length. A table that loops or lacks
// an entry yields ErrBrokenChain.
// Complexity: O(path length).
func (p parents) reconstruct(end grid.Cell) ([]grid.Move, error) {
	moves := []grid.Move{}
	for cur := end; ; {
		l, ok := p[cur]
		if !ok {
			return nil, fmt.Errorf("%w: no entry for %v", ErrBrokenChain, cur)
		}
		if l.root {
			break
		}
		if len(moves) >= len(p) {
			return nil, fmt.Errorf("%w: cycle through %v", ErrBrokenChain, cur)
		}
		moves = append(moves, l.move)
		cur = l.prev
	}
	slices.Reverse(moves)

	return moves, nil
}

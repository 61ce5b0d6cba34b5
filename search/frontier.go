package search

import "github.com/katalvlaran/gridpath/grid"

// entry is one A* frontier item. g is the cost the cell had when pushed, so a
// pop can tell whether the entry has since been superseded.
type entry struct {
	cell grid.Cell
	f, g int
}

// openPQ is a min-heap of entries ordered by f, then row, then column.
// Duplicate entries for one cell are allowed (lazy decrease-key); their f
// values always differ because h is fixed per cell and g strictly improves.
type openPQ []entry

// Len returns the number of entries in the heap.
func (pq openPQ) Len() int { return len(pq) }

// Less orders by f ascending; equal f falls back to the cell coordinates.
func (pq openPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.cell.Row != b.cell.Row {
		return a.cell.Row < b.cell.Row
	}
	return a.cell.Col < b.cell.Col
}

// Swap swaps two elements in the heap.
func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x to the heap. Called by heap.Push; x must be an entry.
func (pq *openPQ) Push(x any) { *pq = append(*pq, x.(entry)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *openPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

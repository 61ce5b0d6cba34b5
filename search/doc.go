// Package search finds shortest move sequences on a grid.Grid with two
// strategies and reports how much work each one did.
//
// What
//
//   - BFS: uninformed breadth-first search over a FIFO frontier.
//   - AStar: A* over a min-heap ordered by f = g + h, with the Manhattan
//     distance to the goal as h.
//   - Both return a Result holding the move sequence (Found == false when
//     the goal is unreachable), the number of expansions and the peak
//     frontier size.
//
// Why
//
//	All moves cost 1, so BFS already returns a minimum-length path. A* returns
//	a path of the same length (Manhattan distance is admissible and consistent
//	without diagonal moves) while usually expanding fewer cells.
//
// Determinism
//
//	Neighbors are generated in grid order Up, Down, Left, Right. BFS enqueues
//	them in that order. A* orders equal f-scores by row, then column.
//	Repeated runs on the same grid give identical Results.
//
// Statistics
//
//   - Expanded counts every frontier pop that is processed (goal check plus
//     neighbor generation). The start is always expanded, so Expanded ≥ 1.
//   - PeakFrontier is the largest frontier length, sampled after every
//     insertion. The frontier starts with the start cell, so PeakFrontier ≥ 1.
//
// Stale entries
//
//	AStar uses lazy decrease-key: an improved cell is pushed again and the old
//	entry stays in the heap. By default a popped entry whose g is worse than
//	the recorded best is dropped without counting an expansion.
//	WithStaleExpansion() processes and counts such pops instead.
//
// Complexity (N = free cells)
//
//   - BFS:   O(N) time, O(N) memory.
//   - AStar: O(N log N) time, O(N) memory.
//
// Errors
//
//   - ErrGridNil     if the grid pointer is nil.
//   - ErrBrokenChain if a parent link is missing during path reconstruction.
//
// An unreachable goal is not an error: it is reported as Result.Found == false.
package search

// Package grid models a rectangular 2D map of free and blocked cells with a
// single start and a single goal, and generates the legal unit moves out of
// any cell.
//
// What:
//
//   - Grid wraps the raw map characters; it is read-only while a search runs.
//   - Neighbors yields (Move, Cell) pairs lazily, in the fixed order
//     Up, Down, Left, Right, skipping walls and out-of-bounds cells.
//   - Parse / Load read the text map format: one row per line,
//     '#' = wall, 'S' = start, 'G' = goal, anything else = free.
//   - Overlay marks a move sequence on the grid with '*', leaving S and G intact.
//   - Reachable floods the region around a cell; Connected asks whether G is in S's region.
//
// Why:
//
//   - The neighbor order is the tie-breaker of every search built on top of
//     it, so it is fixed and documented here rather than left to callers.
//   - Clone gives each algorithm its own copy; the original stays untouched
//     for the final path overlay.
//
// Complexity:
//
//   - New / Parse: O(R×C) time and memory.
//   - At, InBounds: O(1).
//   - Neighbors: O(1) per cell, at most 4 pairs.
//   - Overlay, Apply: O(len(moves)).
//   - Reachable, Connected: O(R×C).
//
// Errors:
//
//   - ErrInvalidMap: wraps ErrEmptyGrid, ErrNonRectangular, ErrMissingStart,
//     ErrMissingGoal, ErrDuplicateStart or ErrDuplicateGoal.
//   - ErrOutOfBounds: a lookup or a replayed move left the rectangle.
//   - ErrBlockedMove: a replayed move stepped onto a wall.
package grid

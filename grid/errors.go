package grid

import "errors"

var (
	// ErrInvalidMap indicates the input cannot form a searchable grid.
	// It is always returned wrapped together with one of the detail errors below.
	ErrInvalidMap = errors.New("grid: invalid map")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrMissingStart indicates no 'S' marker was found.
	ErrMissingStart = errors.New("grid: missing start marker")
	// ErrMissingGoal indicates no 'G' marker was found.
	ErrMissingGoal = errors.New("grid: missing goal marker")
	// ErrDuplicateStart indicates more than one 'S' marker.
	ErrDuplicateStart = errors.New("grid: more than one start marker")
	// ErrDuplicateGoal indicates more than one 'G' marker.
	ErrDuplicateGoal = errors.New("grid: more than one goal marker")

	// ErrOutOfBounds indicates a cell outside the grid rectangle.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrBlockedMove indicates a move onto a wall cell.
	ErrBlockedMove = errors.New("grid: move onto a wall")
)

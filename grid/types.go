// Package grid defines the cell, marker and move types shared by the grid
// model and the searches built on it.
package grid

import "fmt"

// Cell is a (Row, Col) coordinate. It is comparable and used directly as a map key.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Step returns the cell reached from c by applying m.
// Complexity: O(1).
func (c Cell) Step(m Move) Cell {
	dr, dc := m.Delta()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Marker classifies a grid cell.
type Marker byte

const (
	// Free is any traversable cell that is not the start or the goal.
	Free Marker = '.'
	// Wall blocks movement.
	Wall Marker = '#'
	// Start is the unique start cell.
	Start Marker = 'S'
	// Goal is the unique goal cell.
	Goal Marker = 'G'
	// Path marks a cell on an overlaid solution.
	Path Marker = '*'
)

// classify maps a raw map character to its Marker.
func classify(ch byte) Marker {
	switch Marker(ch) {
	case Wall, Start, Goal, Path:
		return Marker(ch)
	default:
		return Free
	}
}

// Move is one of the four orthogonal unit moves. Its value is the symbol
// used when a move sequence is printed.
type Move byte

const (
	Up    Move = 'U'
	Down  Move = 'D'
	Left  Move = 'L'
	Right Move = 'R'
)

// moveOrder is the fixed neighbor order. Searches break ties by it.
var moveOrder = [4]Move{Up, Down, Left, Right}

// Moves returns the four moves in neighbor order.
func Moves() [4]Move {
	return moveOrder
}

// Delta returns the (row, column) offset of m. An unknown move has offset (0,0).
func (m Move) Delta() (dr, dc int) {
	switch m {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

// Valid reports whether m is one of the four moves.
func (m Move) Valid() bool {
	switch m {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

// String returns the one-letter symbol of m.
func (m Move) String() string {
	return string(rune(m))
}

// FormatMoves renders a move sequence as a compact symbol string, e.g. "DDRR".
func FormatMoves(moves []Move) string {
	b := make([]byte, len(moves))
	for i, m := range moves {
		b[i] = byte(m)
	}
	return string(b)
}

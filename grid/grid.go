package grid

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
)

// Grid is a rectangular map with exactly one start and one goal.
// cells[r][c] holds the raw map character so rendering reproduces the input.
// A Grid is not safe for concurrent mutation; searches only read it.
type Grid struct {
	rows, cols  int
	cells       [][]byte
	start, goal Cell
}

// New builds a Grid from marker rows. The input is copied.
// Returns ErrInvalidMap wrapping the specific defect when the rows are empty,
// not rectangular, or do not hold exactly one 'S' and one 'G'.
// Complexity: O(R×C) time and memory.
func New(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMap, ErrEmptyGrid)
	}
	h, w := len(rows), len(rows[0])
	cells := make([][]byte, h)
	var (
		start, goal       Cell
		hasStart, hasGoal bool
	)
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: %w: row %d has %d columns, want %d",
				ErrInvalidMap, ErrNonRectangular, r, len(row), w)
		}
		cells[r] = []byte(row)
		for c := 0; c < w; c++ {
			switch Marker(row[c]) {
			case Start:
				if hasStart {
					return nil, fmt.Errorf("%w: %w at %v and %v", ErrInvalidMap, ErrDuplicateStart, start, Cell{r, c})
				}
				start, hasStart = Cell{r, c}, true
			case Goal:
				if hasGoal {
					return nil, fmt.Errorf("%w: %w at %v and %v", ErrInvalidMap, ErrDuplicateGoal, goal, Cell{r, c})
				}
				goal, hasGoal = Cell{r, c}, true
			}
		}
	}
	if !hasStart {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMap, ErrMissingStart)
	}
	if !hasGoal {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMap, ErrMissingGoal)
	}

	return &Grid{rows: h, cols: w, cells: cells, start: start, goal: goal}, nil
}

// Parse reads a text map, one row per line. Carriage returns are stripped so
// CRLF files parse the same as LF files, and trailing blank lines are dropped.
func Parse(r io.Reader) (*Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read map: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return New(rows)
}

// Load parses the map file at path.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: open map: %w", err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the start cell.
func (g *Grid) Start() Cell { return g.start }

// Goal returns the goal cell.
func (g *Grid) Goal() Cell { return g.goal }

// InBounds reports whether c lies within the grid rectangle.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the marker at c, or ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid) At(c Cell) (Marker, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	return classify(g.cells[c.Row][c.Col]), nil
}

// passable is the bounds-and-wall test used by the neighbor generator.
func (g *Grid) passable(c Cell) bool {
	return g.InBounds(c) && Marker(g.cells[c.Row][c.Col]) != Wall
}

// Neighbors yields the traversable cells adjacent to c together with the
// move that reaches each, in the order Up, Down, Left, Right.
// Moves leaving the grid or landing on a wall are skipped.
// Complexity: O(1) per call, at most 4 pairs.
func (g *Grid) Neighbors(c Cell) iter.Seq2[Move, Cell] {
	return func(yield func(Move, Cell) bool) {
		for _, m := range moveOrder {
			n := c.Step(m)
			if !g.passable(n) {
				continue
			}
			if !yield(m, n) {
				return
			}
		}
	}
}

// Apply replays moves from the cell from and returns the cell reached.
// It fails with ErrOutOfBounds or ErrBlockedMove on the first illegal step.
// Complexity: O(len(moves)).
func (g *Grid) Apply(from Cell, moves []Move) (Cell, error) {
	cur := from
	for i, m := range moves {
		if !m.Valid() {
			return cur, fmt.Errorf("grid: step %d: unknown move %q", i, byte(m))
		}
		next := cur.Step(m)
		if !g.InBounds(next) {
			return cur, fmt.Errorf("%w: step %d %s from %v", ErrOutOfBounds, i, m, cur)
		}
		if Marker(g.cells[next.Row][next.Col]) == Wall {
			return cur, fmt.Errorf("%w: step %d %s from %v", ErrBlockedMove, i, m, cur)
		}
		cur = next
	}
	return cur, nil
}

// Overlay marks every cell visited by moves (walking from Start) with the
// Path marker. The start and goal markers are never overwritten.
// The sequence is validated first, so a failing call leaves g unchanged.
func (g *Grid) Overlay(moves []Move) error {
	if _, err := g.Apply(g.start, moves); err != nil {
		return err
	}
	cur := g.start
	for _, m := range moves {
		cur = cur.Step(m)
		if cur != g.start && cur != g.goal {
			g.cells[cur.Row][cur.Col] = byte(Path)
		}
	}
	return nil
}

// Clone returns a deep copy of g.
// Complexity: O(R×C).
func (g *Grid) Clone() *Grid {
	cells := make([][]byte, g.rows)
	for r := range g.cells {
		cells[r] = make([]byte, g.cols)
		copy(cells[r], g.cells[r])
	}
	return &Grid{rows: g.rows, cols: g.cols, cells: cells, start: g.start, goal: g.goal}
}

// WriteTo renders the grid, one row per line, each line newline-terminated.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, row := range g.cells {
		k, err := w.Write(append(append(make([]byte, 0, len(row)+1), row...), '\n'))
		n += int64(k)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// String renders the grid as WriteTo does.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	_, _ = g.WriteTo(&sb)
	return sb.String()
}

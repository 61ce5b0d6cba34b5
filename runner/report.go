package runner

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// WriteReport renders one block per outcome:
//
//	--- BFS ---
//	Minimal steps: 4
//	Moves: DDRR
//	Nodes expanded: 8
//	Peak frontier: 2
//	Time: 0.000012s
//
// "No solution." replaces the steps and moves lines when the goal was not
// reached. The marked grid, when present, follows the moves line.
func WriteReport(w io.Writer, outcomes []Outcome) error {
	var sb strings.Builder
	for _, o := range outcomes {
		fmt.Fprintf(&sb, "\n--- %s ---\n", o.Algorithm.Name)
		if !o.Result.Found {
			sb.WriteString("No solution.\n")
		} else {
			fmt.Fprintf(&sb, "Minimal steps: %d\n", len(o.Result.Moves))
			fmt.Fprintf(&sb, "Moves: %s\n", grid.FormatMoves(o.Result.Moves))
			if o.Marked != nil {
				sb.WriteString(o.Marked.String())
			}
		}
		fmt.Fprintf(&sb, "Nodes expanded: %d\n", o.Result.Expanded)
		fmt.Fprintf(&sb, "Peak frontier: %d\n", o.Result.PeakFrontier)
		fmt.Fprintf(&sb, "Time: %.6fs\n", o.Elapsed.Seconds())
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

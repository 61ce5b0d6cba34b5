package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// ExampleBFS solves the 3×3 map with a wall in the centre. BFS tries Down
// before Right, so it goes around the wall on the left.
func ExampleBFS() {
	g, _ := grid.New([]string{
		"S..",
		".#.",
		"..G",
	})
	res, err := search.BFS(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Steps(), grid.FormatMoves(res.Moves), res.Expanded, res.PeakFrontier)
	// Output:
	// 4 DDRR 8 2
}

// ExampleAStar solves the same map. Every frontier entry has f = 4, so the
// row-then-column tie-break sends A* along the top row first.
func ExampleAStar() {
	g, _ := grid.New([]string{
		"S..",
		".#.",
		"..G",
	})
	res, _ := search.AStar(g)
	fmt.Println(res.Steps(), grid.FormatMoves(res.Moves), res.Expanded, res.PeakFrontier)

	marked := g.Clone()
	_ = marked.Overlay(res.Moves)
	fmt.Print(marked)
	// Output:
	// 4 RRDD 8 2
	// S**
	// .#*
	// ..G
}

// ExampleAStar_noSolution shows the result for a walled-off goal.
func ExampleAStar_noSolution() {
	g, _ := grid.New([]string{"S#G"})
	res, _ := search.AStar(g)
	fmt.Println(res.Found, res.Steps(), res.Expanded)
	// Output:
	// false -1 1
}

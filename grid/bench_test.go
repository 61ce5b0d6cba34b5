package grid_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

// BenchmarkNeighbors measures neighbor generation over every cell of an
// open 200×200 map.
func BenchmarkNeighbors(b *testing.B) {
	const n = 200
	rows := make([]string, n)
	for i := range rows {
		rows[i] = strings.Repeat(".", n)
	}
	rows[0] = "S" + rows[0][1:]
	rows[n-1] = rows[n-1][:n-1] + "G"
	g, err := grid.New(rows)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				for range g.Neighbors(grid.Cell{Row: r, Col: c}) {
				}
			}
		}
	}
}

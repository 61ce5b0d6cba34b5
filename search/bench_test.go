package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/search"
)

// benchmark runs fn on a deterministic 300×300 map with 25% walls.
func benchmark(b *testing.B, fn search.Func) {
	r := rand.New(rand.NewSource(42))
	g := randomGrid(b, r, 300, 300, 0.25)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fn(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBFS measures breadth-first search. Complexity: O(N).
func BenchmarkBFS(b *testing.B) { benchmark(b, search.BFS) }

// BenchmarkAStar measures A*. Complexity: O(N log N).
func BenchmarkAStar(b *testing.B) { benchmark(b, search.AStar) }

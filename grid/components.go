package grid

// Reachable returns every cell reachable from `from` through non-wall cells,
// `from` included, in the order a flood fill over Neighbors discovers them.
// A wall or out-of-bounds `from` yields nil.
//
// Time:   O(R·C).
// Memory: O(R·C) for the seen set and output.
func (g *Grid) Reachable(from Cell) []Cell {
	if !g.passable(from) {
		return nil
	}
	seen := map[Cell]bool{from: true}
	region := []Cell{from}
	for i := 0; i < len(region); i++ {
		for _, n := range g.Neighbors(region[i]) {
			if !seen[n] {
				seen[n] = true
				region = append(region, n)
			}
		}
	}
	return region
}

// Connected reports whether the goal lies in the start's region, i.e.
// whether any search can succeed.
func (g *Grid) Connected() bool {
	for _, c := range g.Reachable(g.start) {
		if c == g.goal {
			return true
		}
	}
	return false
}

package core

// IsClique reports whether every distinct pair in K is adjacent. Grounded on
// original_source/src/graph.cpp::is_clique. O(|K|^2).
func (g *Graph) IsClique(k []int) bool {
	for i := 0; i < len(k); i++ {
		for j := i + 1; j < len(k); j++ {
			if !g.HasEdge(k[i], k[j]) {
				return false
			}
		}
	}
	return true
}

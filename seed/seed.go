package seed

import "github.com/katalvlaran/maxclique/core"

// Produce returns a valid clique (spec §4.3): start with the vertex of
// maximum degree, maintain the set C of common neighbors of the clique built
// so far, and repeatedly add the vertex v in C maximizing |C ∩ N(v)|,
// terminating when C is empty. Ties are broken by smallest vertex id, for
// reproducibility (spec §5).
//
// Returns an empty clique for n==0; never fails otherwise.
func Produce(g *core.Graph) []int {
	n := g.VertexCount()
	if n == 0 {
		return nil
	}

	start := maxDegreeVertex(g)
	clique := []int{start}

	c := make(map[int]struct{})
	startNbrs, _ := g.Neighbors(start)
	for _, u := range startNbrs {
		c[u] = struct{}{}
	}

	for len(c) > 0 {
		best, bestScore := -1, -1
		for v := range c {
			score := 0
			nbrs, _ := g.Neighbors(v)
			for _, u := range nbrs {
				if _, ok := c[u]; ok {
					score++
				}
			}
			if score > bestScore || (score == bestScore && v < best) {
				best, bestScore = v, score
			}
		}

		clique = append(clique, best)
		delete(c, best)

		bestNbrSet := make(map[int]struct{})
		nbrs, _ := g.Neighbors(best)
		for _, u := range nbrs {
			bestNbrSet[u] = struct{}{}
		}
		for v := range c {
			if _, ok := bestNbrSet[v]; !ok {
				delete(c, v)
			}
		}
	}

	return clique
}

func maxDegreeVertex(g *core.Graph) int {
	best, bestDeg := 0, -1
	for v := 0; v < g.VertexCount(); v++ {
		d, _ := g.Degree(v)
		if d > bestDeg {
			best, bestDeg = v, d
		}
	}
	return best
}

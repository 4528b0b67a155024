package seed

import (
	"sort"

	"github.com/katalvlaran/maxclique/core"
)

// GreedyDegreeClique is the supplemental degree-sorted heuristic from
// original_source/src/greedy.cpp: sort vertices by descending degree, then
// greedily add each vertex that is adjacent to every vertex already in the
// clique. It is a different construction from Produce (spec §4.3's
// common-neighbor greedy) and is exposed so the CLI's --seed-only mode can
// report both, and so seed-safety tests (property 6) can exercise two
// structurally different seeds against the same graph.
func GreedyDegreeClique(g *core.Graph) []int {
	n := g.VertexCount()
	if n == 0 {
		return nil
	}

	order := make([]int, n)
	for v := range order {
		order[v] = v
	}
	sort.Slice(order, func(i, j int) bool {
		di, _ := g.Degree(order[i])
		dj, _ := g.Degree(order[j])
		if di != dj {
			return di > dj
		}
		return order[i] < order[j]
	})

	var clique []int
	for _, v := range order {
		connectedToAll := true
		for _, u := range clique {
			if !g.HasEdge(v, u) {
				connectedToAll = false
				break
			}
		}
		if connectedToAll {
			clique = append(clique, v)
		}
	}
	return clique
}

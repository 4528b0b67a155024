package clique

import "github.com/katalvlaran/maxclique/bitset"

// PickPivot selects u ∈ P∪X maximizing |P ∩ N(u)| (spec §4.5). Ties break
// to the smallest vertex id, so pivot choice — and therefore node counts —
// is reproducible across runs (spec §5). Returns (0, false) when P and X are
// both empty (no candidate exists).
//
// Grounded on original_source/src/tomita.cpp::choose_pivot (linear scan over
// P then X, tracking the best) and
// other_examples/kubernetes-kubernetes__bron_kerbosch.go's choosePivotFrom
// (same contract, gonum's graph.Undirected representation).
func PickPivot(layer *bitset.Layer, p, x bitset.Set) (int, bool) {
	best, bestScore, found := 0, -1, false

	consider := func(u int) {
		score := intersectCount(p, layer.Neighbor[u])
		if score > bestScore || (score == bestScore && (!found || u < best)) {
			best, bestScore, found = u, score, true
		}
	}

	p.Iterate(consider)
	x.Iterate(consider)

	return best, found
}

// intersectCount returns |a ∩ b| without allocating a combined Set.
func intersectCount(a, b bitset.Set) int {
	count := 0
	a.Iterate(func(i int) {
		if b.Test(i) {
			count++
		}
	})
	return count
}

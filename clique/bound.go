package clique

import "github.com/katalvlaran/maxclique/bitset"

// GreedyColor computes an upper bound on ω(G[P]) by greedy first-fit
// coloring (spec §4.6). priority gives the order vertices are offered to the
// coloring pass; vertices not in p are skipped. It returns parallel slices
// (vertices, colors) with len == p.Popcount(): colors[i] is a 1-based color
// class, non-decreasing in i, so branching over vertices in reverse index
// order and pruning on "colors[i] + |R| <= best" is sound (the same
// emission-order property the skeleton's color engine relies on).
//
// Grounded on original_source/src/bbmc.cpp::bb_colour (bitset-driven
// first-fit: repeatedly peel a maximal independent subset of the residual
// set via Q &= invN[v]) generalized to accept an explicit priority instead
// of a fixed ascending bit scan, so Ostergard's degree-descending candidate
// order and BBMC's three reorder strategies (SPEC_FULL.md supplement) both
// flow through the same coloring routine.
func GreedyColor(layer *bitset.Layer, p bitset.Set, priority []int) (vertices []int, colors []int) {
	total := p.Popcount()
	if total == 0 {
		return nil, nil
	}
	vertices = make([]int, 0, total)
	colors = make([]int, 0, total)

	residual := p.Clone()
	q, _ := bitset.New(layer.N)
	complement, _ := bitset.New(layer.N)

	colorClass := 0
	for !residual.None() {
		colorClass++
		q = residual.Clone()

		for !q.None() {
			v := firstInPriority(q, priority)

			residual.ClearBit(v)
			q.ClearBit(v)

			bitset.Complement(complement, layer.Neighbor[v])
			bitset.Intersect(q, q, complement)

			vertices = append(vertices, v)
			colors = append(colors, colorClass)
		}
	}

	return vertices, colors
}

// firstInPriority returns the first vertex in priority that is set in q, or
// q's own first set bit if priority is nil (natural ascending order).
func firstInPriority(q bitset.Set, priority []int) int {
	if priority == nil {
		v, _ := q.FirstSetBit()
		return v
	}
	for _, v := range priority {
		if q.Test(v) {
			return v
		}
	}
	// Unreachable while priority enumerates every vertex in [0,N) and q is
	// non-empty; fall back defensively to the lowest set bit.
	v, _ := q.FirstSetBit()
	return v
}

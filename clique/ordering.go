package clique

import (
	"sort"

	"github.com/katalvlaran/maxclique/bitset"
	"github.com/katalvlaran/maxclique/core"
)

// naturalOrder returns branch's members in ascending id order (spec §4.7
// "Natural: insertion order into P" — dense ids are assigned in a stable
// ascending order at Build time, so ascending bit order is a faithful stand-in
// for insertion order here).
func naturalOrder(_ *bitset.Layer, branch bitset.Set) []int {
	var out []int
	branch.Iterate(func(i int) { out = append(out, i) })
	return out
}

// residualDegreeDescOrder returns branch's members sorted by descending
// |branch ∩ N(v)| (spec §4.7 "By residual degree (descending)"), ties
// broken by ascending id.
func residualDegreeDescOrder(layer *bitset.Layer, branch bitset.Set) []int {
	out := naturalOrder(layer, branch)
	sort.Slice(out, func(i, j int) bool {
		di := intersectCount(branch, layer.Neighbor[out[i]])
		dj := intersectCount(branch, layer.Neighbor[out[j]])
		if di != dj {
			return di > dj
		}
		return out[i] < out[j]
	})
	return out
}

// degreeDescPriority returns every vertex in [0,n) sorted by descending
// degree (ties: ascending id) — the candidate order
// original_source/src/ostergard.cpp::find_maximum_clique builds once before
// branch_and_bound.
func degreeDescPriority(g *core.Graph) []int {
	n := g.VertexCount()
	order := identityOrder(n)
	sort.Slice(order, func(i, j int) bool {
		di, _ := g.Degree(order[i])
		dj, _ := g.Degree(order[j])
		if di != dj {
			return di > dj
		}
		return order[i] < order[j]
	})
	return order
}

// bbmcPriority builds the vertex priority BBMC colors and branches in,
// per the chosen BBMCOrderingStyle (original_source/src/bbmc.cpp's
// order_vertices/min_width_order).
func bbmcPriority(g *core.Graph, style BBMCOrderingStyle) []int {
	switch style {
	case OrderingMinWidth:
		order, _ := g.DegeneracyOrder()
		// bbmc.cpp's min_width_order emits vertices in removal order (lowest
		// residual degree first); BBMC then colors/branches over that same
		// sequence, so the priority is the degeneracy order itself.
		return order
	case OrderingMCR:
		n := g.VertexCount()
		order := identityOrder(n)
		nebDegree := make([]int, n)
		for v := 0; v < n; v++ {
			nbrs, _ := g.Neighbors(v)
			sum := 0
			for _, u := range nbrs {
				d, _ := g.Degree(u)
				sum += d
			}
			nebDegree[v] = sum
		}
		sort.Slice(order, func(i, j int) bool {
			if nebDegree[order[i]] != nebDegree[order[j]] {
				return nebDegree[order[i]] > nebDegree[order[j]]
			}
			di, _ := g.Degree(order[i])
			dj, _ := g.Degree(order[j])
			if di != dj {
				return di > dj
			}
			return order[i] < order[j]
		})
		return order
	default: // OrderingDegree
		return degreeDescPriority(g)
	}
}

func identityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

package core

import "sort"

// Edge is an external-ID edge as consumed by Build. IDs are arbitrary
// non-negative integers in the caller's own numbering.
type Edge struct {
	U, V int
}

// Build constructs a Graph from an edge sequence (spec §4.1, grounded on
// original_source/src/graph.cpp::load_from_snap's two-pass remap).
//
// Pass 1 collects the set of distinct external vertex IDs touched by any
// edge and assigns them dense IDs in ascending external-ID order (matching
// the reference implementation's std::set<int> iteration order, so results
// are reproducible across reruns on the same input).
//
// Pass 2 adds edges under the dense numbering. Self-loops (u==v) are
// dropped; duplicate edges are idempotent (I-1). A negative external ID
// fails with ErrNegativeVertexID.
func Build(edges []Edge) (*Graph, error) {
	seen := make(map[int]struct{}, len(edges)*2)
	for _, e := range edges {
		if e.U < 0 || e.V < 0 {
			return nil, ErrNegativeVertexID
		}
		seen[e.U] = struct{}{}
		seen[e.V] = struct{}{}
	}

	idMap := make([]int, 0, len(seen))
	for id := range seen {
		idMap = append(idMap, id)
	}
	sort.Ints(idMap)

	dense := make(map[int]int, len(idMap))
	for i, id := range idMap {
		dense[id] = i
	}

	n := len(idMap)
	words := (n + 63) / 64
	g := &Graph{
		n:         n,
		neighbors: make([][]int, n),
		adjBits:   make([]uint64, n*words),
		words:     words,
		idMap:     idMap,
	}

	neighborSets := make([]map[int]struct{}, n)
	for i := range neighborSets {
		neighborSets[i] = make(map[int]struct{})
	}

	for _, e := range edges {
		u, v := dense[e.U], dense[e.V]
		if u == v {
			continue // drop self-loops
		}
		if _, dup := neighborSets[u][v]; dup {
			continue // idempotent duplicate
		}
		neighborSets[u][v] = struct{}{}
		neighborSets[v][u] = struct{}{}
		g.setEdgeBit(u, v)
		g.setEdgeBit(v, u)
		g.m++
	}

	for v := 0; v < n; v++ {
		nbrs := make([]int, 0, len(neighborSets[v]))
		for u := range neighborSets[v] {
			nbrs = append(nbrs, u)
		}
		sort.Ints(nbrs)
		g.neighbors[v] = nbrs
	}

	return g, nil
}

func (g *Graph) setEdgeBit(u, v int) {
	word, bit := u*g.words+v/64, uint(v%64)
	g.adjBits[word] |= 1 << bit
}

// BuildDense constructs a Graph directly over the dense vertex range [0,n),
// for formats that declare their vertex count up front (spec §6.1's DIMACS
// "p edge n m" line, grounded on original_source/src/graph.cpp::
// load_from_dimacs). Unlike Build, vertices with no incident edge are still
// part of the graph — the only way to represent an isolated vertex, since
// Build's external-ID remap only learns about vertices an edge mentions.
func BuildDense(n int, edges []Edge) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeVertexID
	}

	words := (n + 63) / 64
	g := &Graph{
		n:         n,
		neighbors: make([][]int, n),
		adjBits:   make([]uint64, n*words),
		words:     words,
		idMap:     identityIDMap(n),
	}

	neighborSets := make([]map[int]struct{}, n)
	for i := range neighborSets {
		neighborSets[i] = make(map[int]struct{})
	}

	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, ErrVertexOutOfRange
		}
		u, v := e.U, e.V
		if u == v {
			continue
		}
		if _, dup := neighborSets[u][v]; dup {
			continue
		}
		neighborSets[u][v] = struct{}{}
		neighborSets[v][u] = struct{}{}
		g.setEdgeBit(u, v)
		g.setEdgeBit(v, u)
		g.m++
	}

	for v := 0; v < n; v++ {
		nbrs := make([]int, 0, len(neighborSets[v]))
		for u := range neighborSets[v] {
			nbrs = append(nbrs, u)
		}
		sort.Ints(nbrs)
		g.neighbors[v] = nbrs
	}

	return g, nil
}

func identityIDMap(n int) []int {
	m := make([]int, n)
	for i := range m {
		m[i] = i
	}
	return m
}

package core

// Graph is a simple, undirected, loopless graph over a dense vertex range
// [0,n). It materializes two equivalent representations (spec §3):
//
//   - neighbors[v]: the sorted, deduplicated neighbor list of v.
//   - adjBits:      a row-major bitset, ceil(n/64) 64-bit words per row, giving
//     O(1) HasEdge regardless of degree.
//
// Both are built once in Build and never mutated afterward; a Graph has no
// exported mutator and no internal lock, because nothing in this module
// changes a Graph once constructed (spec §5: read-only shared state).
type Graph struct {
	n int
	m int

	neighbors [][]int // neighbors[v] sorted ascending
	adjBits   []uint64
	words     int // uint64 words per adjacency row

	// idMap[v] is the external vertex ID that Build remapped to dense id v.
	idMap []int
}

// VertexCount returns n = |V|. O(1).
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns m = |E|. O(1).
func (g *Graph) EdgeCount() int { return g.m }

// OriginalID returns the external ID that Build remapped to dense vertex v,
// or (0, false) if v is out of [0,n).
func (g *Graph) OriginalID(v int) (int, bool) {
	if v < 0 || v >= g.n {
		return 0, false
	}
	return g.idMap[v], true
}

// HasEdge reports whether u and v are adjacent. Reflexive pairs (u==v)
// always report false (no self-loops, invariant I-2). Out-of-range vertices
// report false rather than erroring (spec §4.1 failure semantics).
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n || u == v {
		return false
	}
	word, bit := u*g.words+v/64, uint(v%64)
	return g.adjBits[word]&(1<<bit) != 0
}

// Neighbors returns the immutable, ascending-sorted neighbor list of v.
// The returned slice must not be mutated by callers.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if v < 0 || v >= g.n {
		return nil, ErrVertexOutOfRange
	}
	return g.neighbors[v], nil
}

// Degree returns |neighbors(v)|.
func (g *Graph) Degree(v int) (int, error) {
	if v < 0 || v >= g.n {
		return 0, ErrVertexOutOfRange
	}
	return len(g.neighbors[v]), nil
}

// Density returns 2m / (n(n-1)) for n>=2, else 0.
func (g *Graph) Density() float64 {
	if g.n < 2 {
		return 0
	}
	return 2 * float64(g.m) / (float64(g.n) * float64(g.n-1))
}

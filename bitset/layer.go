package bitset

import "github.com/katalvlaran/maxclique/core"

// Layer is the per-search bitset materialization of a Graph (spec §4.2,
// component 2): one n-bit neighbor mask per vertex, built once before
// recursion starts and read-only thereafter. All five exact variants,
// BK-basic included, search through this layer instead of re-querying the
// Graph.
type Layer struct {
	N        int
	Neighbor []Set // Neighbor[v] has bit i set iff g.HasEdge(v, i)
}

// Build materializes a Layer from g. O(n + m).
func Build(g *core.Graph) (*Layer, error) {
	n := g.VertexCount()
	l := &Layer{N: n, Neighbor: make([]Set, n)}
	for v := 0; v < n; v++ {
		s, err := New(n)
		if err != nil {
			return nil, err
		}
		nbrs, err := g.Neighbors(v)
		if err != nil {
			return nil, err
		}
		for _, u := range nbrs {
			s.SetBit(u)
		}
		l.Neighbor[v] = s
	}
	return l, nil
}

// Full returns a Set with every bit in [0,N) set — the initial P for a
// search that starts with all vertices as candidates.
func (l *Layer) Full() (Set, error) {
	s, err := New(l.N)
	if err != nil {
		return Set{}, err
	}
	for v := 0; v < l.N; v++ {
		s.SetBit(v)
	}
	return s, nil
}

// Empty returns an all-clear Set over [0,N).
func (l *Layer) Empty() (Set, error) {
	return New(l.N)
}

// Package gonumx adapts core.Graph to gonum's graph.Undirected interface,
// so this module's own algorithms can be cross-checked against gonum's
// independently implemented graph/topo package instead of only against each
// other (spec §8's cross-variant agreement property, extended one step
// further for test-only oracle comparison).
//
// Grounded on gilchrisn-graph-clustering-service's graph_adapter.go (the
// dense-id-to-gonum-node mapping pattern) and other_examples/
// kubernetes-kubernetes__bron_kerbosch.go (the graph.Undirected surface the
// adapter must satisfy).
package gonumx

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/maxclique/core"
)

// ToGonum builds a simple.UndirectedGraph whose node IDs are g's dense
// vertex ids verbatim (unlike the clustering-service adapter, no remapping
// is needed: core.Graph already numbers vertices [0,n)).
func ToGonum(g *core.Graph) *simple.UndirectedGraph {
	gg := simple.NewUndirectedGraph()

	n := g.VertexCount()
	for v := 0; v < n; v++ {
		gg.AddNode(simple.Node(int64(v)))
	}

	for v := 0; v < n; v++ {
		nbrs, _ := g.Neighbors(v)
		for _, u := range nbrs {
			if u <= v {
				continue // each undirected edge added once
			}
			gg.SetEdge(simple.Edge{F: simple.Node(int64(v)), T: simple.Node(int64(u))})
		}
	}

	return gg
}

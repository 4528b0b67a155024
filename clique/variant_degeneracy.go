package clique

import (
	"github.com/katalvlaran/maxclique/bitset"
	"github.com/katalvlaran/maxclique/core"
)

// runDegeneracyTomita drives the pivoted rpxEngine from a degeneracy-ordered
// outer loop (spec §4.3): for each vertex v_i in degeneracy order, R={v_i},
// P is v_i's later neighbors, X is v_i's earlier neighbors, bounding the
// branching factor at each top-level call by the graph's degeneracy.
// Grounded on original_source/src/degeneracy_bk.cpp::solve and gonum's
// topo.BronKerbosch outer loop (other_examples/
// kubernetes-kubernetes__bron_kerbosch.go).
func runDegeneracyTomita(g *core.Graph, layer *bitset.Layer, seed []int, opts Options) (Result, error) {
	order, _ := g.DegeneracyOrder()
	pos := make([]int, len(order))
	for i, v := range order {
		pos[v] = i
	}

	e := &rpxEngine{
		layer:      layer,
		usePivot:   true,
		order:      naturalOrder,
		bestK:      append([]int(nil), seed...),
		bestSize:   len(seed),
		ctx:        opts.ctx(),
		checkEvery: int64(opts.checkInterval()),
	}

	for _, v := range order {
		if e.interrupted {
			break
		}

		p, err := bitset.New(layer.N)
		if err != nil {
			return Result{}, err
		}
		x, err := bitset.New(layer.N)
		if err != nil {
			return Result{}, err
		}

		layer.Neighbor[v].Iterate(func(u int) {
			if pos[u] > pos[v] {
				p.SetBit(u)
			} else {
				x.SetBit(u)
			}
		})

		e.search([]int{v}, p, x, 0)
	}

	return Result{Clique: e.bestK, Proven: !e.interrupted, Nodes: e.nodes}, nil
}

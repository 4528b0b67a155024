package clique

import (
	"context"

	"github.com/katalvlaran/maxclique/bitset"
)

// colorEngine is the coloring-bounded branch-and-bound skeleton shared by
// Ostergard and BBMC (spec §4.4's "colour" bound variant; neither
// original_source/src/ostergard.cpp nor bbmc.cpp tracks an excluded set, so
// this engine carries only R and P — see clique/doc.go for why that is a
// grounded divergence from rpxEngine rather than an omission).
//
// Backtracking here never needs to populate an X set: a vertex v is removed
// from p for the remainder of the loop (p.ClearBit(v)) once its branch
// returns, and is never revisited, matching
// original_source/src/ostergard.cpp::branch_and_bound's single backward scan.
type colorEngine struct {
	layer    *bitset.Layer
	priority []int

	bestK    []int
	bestSize int
	nodes    int64

	ctx         context.Context
	checkEvery  int64
	interrupted bool

	scratchP []bitset.Set
}

func runColor(layer *bitset.Layer, priority []int, r []int, p bitset.Set, seed []int, opts Options) Result {
	e := &colorEngine{
		layer:      layer,
		priority:   priority,
		bestK:      append([]int(nil), seed...),
		bestSize:   len(seed),
		ctx:        opts.ctx(),
		checkEvery: int64(opts.checkInterval()),
	}
	e.search(r, p, 0)
	return Result{Clique: e.bestK, Proven: !e.interrupted, Nodes: e.nodes}
}

func (e *colorEngine) search(r []int, p bitset.Set, depth int) {
	if e.interrupted {
		return
	}
	e.nodes++
	if e.nodes%e.checkEvery == 0 {
		select {
		case <-e.ctx.Done():
			e.interrupted = true
			return
		default:
		}
	}

	sizeR := len(r)
	if p.None() {
		if sizeR > e.bestSize {
			e.bestSize = sizeR
			e.bestK = append([]int(nil), r...)
		}
		return
	}

	vertices, colors := GreedyColor(e.layer, p, e.priority)

	// Branch in reverse (highest color class first): colors is
	// non-decreasing, so colors[i] is also an upper bound on
	// ω(G[{vertices[0..i]}]), the candidates still left in the reversed
	// scan — once |R| + colors[i] can no longer
	// beat the incumbent, nothing further in the reversed scan can either.
	for i := len(vertices) - 1; i >= 0; i-- {
		if e.interrupted {
			return
		}
		if sizeR+colors[i] <= e.bestSize {
			return
		}

		v := vertices[i]
		childP := e.scratch(depth)
		bitset.Intersect(childP, p, e.layer.Neighbor[v])

		childR := append(r[:len(r):len(r)], v)
		e.search(childR, childP, depth+1)

		p.ClearBit(v)
	}
}

func (e *colorEngine) scratch(depth int) bitset.Set {
	for len(e.scratchP) <= depth {
		s, _ := bitset.New(e.layer.N)
		e.scratchP = append(e.scratchP, s)
	}
	return e.scratchP[depth]
}

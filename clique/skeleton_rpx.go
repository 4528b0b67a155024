package clique

import (
	"context"

	"github.com/katalvlaran/maxclique/bitset"
)

// stepOrderFunc produces the branch iteration order for a recursion node,
// given the (already pivot-restricted, if applicable) candidate set.
type stepOrderFunc func(layer *bitset.Layer, branch bitset.Set) []int

// rpxEngine is the classical R/P/X Bron–Kerbosch recursion skeleton (spec
// §4.4), parameterized by pivot use and branch order — the "pick_pivot,
// choose_next" capabilities from spec §9's Design Notes. Modeled as a
// dedicated struct rather than closures, in the idiom of tsp/bb.go's
// bbEngine: explicit fields, predictable hot-path state, and child P/X and
// pivot-difference bitsets drawn from depth-indexed scratch pools rather than
// allocated per call (the branch order slice and the child R still are).
type rpxEngine struct {
	layer    *bitset.Layer
	usePivot bool
	order    stepOrderFunc

	bestK    []int
	bestSize int
	nodes    int64

	ctx         context.Context
	checkEvery  int64
	interrupted bool

	scratchP    []bitset.Set
	scratchX    []bitset.Set
	scratchDiff []bitset.Set
}

// runRPX drives one top-level (R,P,X) call through the rpxEngine, seeding
// the incumbent from seed. Used by BKBasic/Tomita; DegeneracyTomita builds
// its own rpxEngine instead and calls search once per outer-loop vertex, so
// the incumbent and node counter are shared across those calls.
func runRPX(layer *bitset.Layer, usePivot bool, order stepOrderFunc, r []int, p, x bitset.Set, seed []int, opts Options) Result {
	e := &rpxEngine{
		layer:      layer,
		usePivot:   usePivot,
		order:      order,
		bestK:      append([]int(nil), seed...),
		bestSize:   len(seed),
		ctx:        opts.ctx(),
		checkEvery: int64(opts.checkInterval()),
	}
	e.search(r, p, x, 0)
	return Result{Clique: e.bestK, Proven: !e.interrupted, Nodes: e.nodes}
}

func (e *rpxEngine) search(r []int, p, x bitset.Set, depth int) {
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
	if sizeR+p.Popcount() <= e.bestSize {
		return
	}

	if p.None() && x.None() {
		if sizeR > e.bestSize {
			e.bestSize = sizeR
			e.bestK = append([]int(nil), r...)
		}
		return
	}

	branch := p
	if e.usePivot {
		if u, ok := PickPivot(e.layer, p, x); ok {
			diff := e.scratch(&e.scratchDiff, depth)
			bitset.Difference(diff, p, e.layer.Neighbor[u])
			branch = diff
		}
	}

	for _, v := range e.order(e.layer, branch) {
		if e.interrupted {
			return
		}
		if sizeR+1+p.Popcount() <= e.bestSize {
			break
		}

		childP := e.scratch(&e.scratchP, depth)
		childX := e.scratch(&e.scratchX, depth)
		bitset.Intersect(childP, p, e.layer.Neighbor[v])
		bitset.Intersect(childX, x, e.layer.Neighbor[v])

		childR := append(r[:len(r):len(r)], v)
		e.search(childR, childP, childX, depth+1)

		p.ClearBit(v)
		x.SetBit(v)
	}
}

// scratch returns the depth-th buffer from pool, allocating on first use.
// Reused across sibling branches at the same depth since only one child is
// active at a time (single-threaded recursion, spec §5).
func (e *rpxEngine) scratch(pool *[]bitset.Set, depth int) bitset.Set {
	for len(*pool) <= depth {
		s, _ := bitset.New(e.layer.N) // n >= 0 always holds here; never errors
		*pool = append(*pool, s)
	}
	return (*pool)[depth]
}

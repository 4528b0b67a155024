package clique

import (
	"github.com/katalvlaran/maxclique/bitset"
	"github.com/katalvlaran/maxclique/core"
	"github.com/katalvlaran/maxclique/seed"
)

// FindMaximumClique searches g for a maximum clique using the named variant
// (spec §6.4's find_maximum_clique operation). It builds the bitset.Layer
// once, resolves the starting incumbent — opts.Seed if given (validated
// against g, or ErrInvalidSeed), otherwise seed.Produce(g) — and dispatches
// to the corresponding recursion engine.
func FindMaximumClique(g *core.Graph, variant Variant, opts Options) (Result, error) {
	layer, err := bitset.Build(g)
	if err != nil {
		return Result{}, err
	}

	initial := opts.Seed
	if initial != nil {
		if !g.IsClique(initial) {
			return Result{}, ErrInvalidSeed
		}
	} else {
		initial = seed.Produce(g)
	}

	switch variant {
	case BKBasic:
		return runBKBasic(layer, initial, opts)
	case Tomita:
		return runTomita(layer, initial, opts)
	case DegeneracyTomita:
		return runDegeneracyTomita(g, layer, initial, opts)
	case Ostergard:
		return runOstergard(layer, degreeDescPriority(g), initial, opts)
	case BBMC:
		return runBBMC(layer, bbmcPriority(g, opts.BBMCOrdering), initial, opts)
	default:
		return Result{}, ErrUnknownVariant
	}
}

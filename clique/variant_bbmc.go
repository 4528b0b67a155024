package clique

import "github.com/katalvlaran/maxclique/bitset"

// runBBMC is Ostergard's coloring bound realized with BBMC's configurable
// vertex reorder (spec §4.6 + SPEC_FULL.md supplement), grounded on
// original_source/src/bbmc.cpp::bb_max_clique. Shares runColor's skeleton
// with Ostergard; the only difference is which priority drives GreedyColor
// and the branch order.
func runBBMC(layer *bitset.Layer, priority []int, seed []int, opts Options) (Result, error) {
	full, err := layer.Full()
	if err != nil {
		return Result{}, err
	}
	return runColor(layer, priority, nil, full, seed, opts), nil
}

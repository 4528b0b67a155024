package clique

import "github.com/katalvlaran/maxclique/bitset"

// runOstergard is the coloring-bounded branch-and-bound (spec §4.5),
// grounded on original_source/src/ostergard.cpp::branch_and_bound: no pivot,
// candidates offered to GreedyColor in descending-degree order, branches
// taken in reverse color-class order.
func runOstergard(layer *bitset.Layer, priority []int, seed []int, opts Options) (Result, error) {
	full, err := layer.Full()
	if err != nil {
		return Result{}, err
	}
	return runColor(layer, priority, nil, full, seed, opts), nil
}

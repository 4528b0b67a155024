package clique

import "github.com/katalvlaran/maxclique/bitset"

// runBKBasic is the unpivoted Bron–Kerbosch skeleton: branch order is
// insertion (ascending id) order, no pivot restricts the branch set, pruning
// relies solely on |R| + |P| <= best (spec §4.1, grounded on
// original_source/src/bron_kerbosch.cpp::bron_kerbosch_basic).
func runBKBasic(layer *bitset.Layer, seed []int, opts Options) (Result, error) {
	full, err := layer.Full()
	if err != nil {
		return Result{}, err
	}
	empty, err := layer.Empty()
	if err != nil {
		return Result{}, err
	}
	return runRPX(layer, false, naturalOrder, nil, full, empty, seed, opts), nil
}

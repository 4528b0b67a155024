package clique

import "github.com/katalvlaran/maxclique/bitset"

// runTomita adds pivoting (branch restricted to P \ N(pivot)) and a
// residual-degree-descending branch order on top of runBKBasic's skeleton
// (spec §4.2, grounded on original_source/src/tomita.cpp::expand).
func runTomita(layer *bitset.Layer, seed []int, opts Options) (Result, error) {
	full, err := layer.Full()
	if err != nil {
		return Result{}, err
	}
	empty, err := layer.Empty()
	if err != nil {
		return Result{}, err
	}
	return runRPX(layer, true, residualDegreeDescOrder, nil, full, empty, seed, opts), nil
}

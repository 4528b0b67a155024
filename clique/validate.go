package clique

import "github.com/katalvlaran/maxclique/core"

// Validate reports whether k is a clique in g (spec §6.4's validate_clique
// operation) — a thin, exported wrapper so callers outside this package
// (report, cmd/maxclique) don't need to import core directly just to sanity
// check a Result.
func Validate(g *core.Graph, k []int) bool {
	return g.IsClique(k)
}

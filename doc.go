// Command and library module maxclique implements exact branch-and-bound
// solvers for the Maximum Clique Problem over simple undirected graphs:
//
//	core/    — the Graph type: dense vertex IDs, adjacency list + bitset
//	bitset/  — dynamic-width word-parallel set operations (core/bitset layer)
//	seed/    — greedy incumbent producers (common-neighbor and degree-sorted)
//	clique/  — the five solver variants: bk-basic, tomita, degeneracy-tomita,
//	           ostergard, bbmc — plus the shared pivot/coloring/ordering
//	           policies they're built from
//	loader/  — SNAP/DIMACS graph file loading, gzip-transparent
//	report/  — CSV benchmark result writer
//	cmd/maxclique/ — the CLI driver tying the above together
//
// Every variant is exact: given unlimited time, all five return a clique of
// the same, provably maximum size for the same graph. They differ in pivot
// use, branch ordering, and pruning bound (size-only vs. greedy-coloring),
// trading constant-factor search efficiency for code complexity.
package maxclique

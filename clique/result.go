package clique

// Result is the outcome of a single FindMaximumClique invocation.
type Result struct {
	// Clique is the best clique found, as dense vertex ids.
	Clique []int

	// Proven is true iff Clique is certified optimal (the search completed
	// without cancellation). False means the search was interrupted and
	// Clique is only the best incumbent found so far (spec §5, §7) — it is
	// still guaranteed to be a valid clique (testable property 7).
	Proven bool

	// Nodes is the number of recursion nodes visited, for diagnostics and
	// CSV/CLI reporting.
	Nodes int64
}

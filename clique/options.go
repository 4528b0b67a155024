package clique

import "context"

// Variant names one of the five composed solvers (spec §4.8). Values are
// for traceability only — all variants must return the same optimum size on
// the same graph (testable property 3, Agreement).
type Variant int

const (
	// BKBasic is the unpivoted R/P/X skeleton, size bound only.
	BKBasic Variant = iota
	// Tomita is the pivoted R/P/X skeleton, size bound only.
	Tomita
	// DegeneracyTomita drives Tomita from a degeneracy-ordered outer loop.
	DegeneracyTomita
	// Ostergard is the coloring-bounded branch-and-bound (MaxCliqueDyn style).
	Ostergard
	// BBMC is Ostergard's coloring bound realized over the bitset substrate
	// with a degree/min-width/MCR vertex reorder.
	BBMC
)

// String renders the variant name used in CSV reports and CLI output.
func (v Variant) String() string {
	switch v {
	case BKBasic:
		return "bk-basic"
	case Tomita:
		return "tomita"
	case DegeneracyTomita:
		return "degeneracy-tomita"
	case Ostergard:
		return "ostergard"
	case BBMC:
		return "bbmc"
	default:
		return "unknown"
	}
}

// Options configures a single FindMaximumClique invocation (spec §6.4).
type Options struct {
	// Ctx, when non-nil, is polled between recursion nodes; cancellation
	// unwinds the search and returns the current incumbent with
	// Result.Proven == false (spec §5, §7).
	Ctx context.Context

	// Seed, when non-nil, primes the incumbent instead of running the
	// default Seed Producer (spec §6.4 "optional seed clique"). Must be a
	// valid clique in the target graph or FindMaximumClique returns
	// ErrInvalidSeed.
	Seed []int

	// BBMCOrdering selects BBMC's vertex reorder strategy. Ignored by all
	// other variants. Zero value is OrderingDegree.
	BBMCOrdering BBMCOrderingStyle

	// NodeCheckInterval overrides how many recursion nodes elapse between
	// Ctx.Done() polls (default 256 — spec §5 "rare deadline checks keep
	// overhead negligible", grounded on tsp/bb.go's deadlineCheck using a
	// power-of-two node counter). Values <= 0 fall back to the default.
	NodeCheckInterval int
}

const defaultNodeCheckInterval = 256

func (o Options) checkInterval() int {
	if o.NodeCheckInterval <= 0 {
		return defaultNodeCheckInterval
	}
	return o.NodeCheckInterval
}

func (o Options) ctx() context.Context {
	if o.Ctx == nil {
		return context.Background()
	}
	return o.Ctx
}

// BBMCOrderingStyle selects the vertex reorder BBMC applies before coloring
// (spec's SPEC_FULL.md supplement, grounded on original_source/src/
// bbmc.cpp's OrderingStyle enum).
type BBMCOrderingStyle int

const (
	// OrderingDegree sorts vertices by descending degree (ties: ascending id).
	OrderingDegree BBMCOrderingStyle = iota
	// OrderingMinWidth applies a degeneracy-style minimum-degree removal order.
	OrderingMinWidth
	// OrderingMCR ("maximum cardinality ratio") sorts by descending sum of
	// neighbor degrees, ties broken by descending own degree.
	OrderingMCR
)

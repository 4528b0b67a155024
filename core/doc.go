// Package core defines the canonical simple undirected graph used by every
// clique solver variant: a dense 0-based vertex range, an O(1) edge
// predicate, and ordered neighbor iteration.
//
// A Graph is built once from an edge sequence via Build and is immutable for
// the remainder of its lifetime — there is no AddVertex/AddEdge surface and
// no internal locking, because nothing in this module mutates a Graph after
// construction (spec invariant: graphs are read-only shared state for the
// duration of a search).
//
// External vertex IDs may be arbitrary non-negative integers; Build remaps
// them to a dense [0,n) range and retains the mapping (Graph.OriginalID) so solvers can
// render results back in the caller's original ID space.
package core

// Package clique implements the exact branch-and-bound maximum clique
// solvers (spec §4.4–§4.8): a shared recursion skeleton over the R/P/X
// Bron–Kerbosch invariants, a pivot policy, a greedy-coloring bound policy,
// and five named solver variants composed from those pieces plus the
// core/bitset substrate.
//
// Two recursion shapes are used, grounded on the reference C++
// implementations in original_source/ (see DESIGN.md):
//
//   - rpxEngine (BK-basic, Tomita, Degeneracy-Tomita): the classical R/P/X
//     skeleton, optionally pivoted, pruned by the size bound |R|+|P| alone.
//   - colorEngine (Ostergard/MaxCliqueDyn, BBMC): a leaner P-only
//     branch-and-bound pruned by the coloring bound |R|+χ(P), iterating
//     candidates in reverse color-class order. Neither reference
//     implementation (ostergard.cpp, bbmc.cpp) tracks an X set — maximality
//     w.r.t. duplicate maximal cliques is irrelevant when the goal is a
//     single maximum clique and every v in P is eventually tried at its own
//     branch, so this module follows the reference rather than forcing X
//     bookkeeping where it buys nothing (spec §9 Design Notes: "color order
//     plus the per-i prune subsumes pivoting" — subsumes X too, in practice).
//
// All variants share the bitset.Layer substrate; the pivoted rpxEngine
// variants (Tomita, Degeneracy-Tomita) use PickPivot (pivot.go) and the
// colorEngine variants use GreedyColor (bound.go). They differ only in which
// engine they drive and with what ordering/outer-loop policy (ordering.go).
package clique

// Package bitset provides a dense, dynamic-width bitmap and the word-
// parallel set operations the clique recursion skeleton needs: intersect,
// difference, union, complement, popcount, and bit iteration over a fixed
// domain [0,n) (spec §4.2).
//
// A Set is a thin wrapper over a []uint64 word slice; all operations are
// O(n/64). Sets are not safe for concurrent mutation, mirroring the
// single-threaded-per-invocation model of the recursion skeleton (spec §5).
//
// Grounded on original_source/src/bbmc.cpp's std::bitset<MAX_VERTICES> usage,
// generalized to a caller-chosen dynamic width instead of a compile-time
// constant (spec §4.2 explicitly requires dynamic width; the fixed-width
// specialization the reference implementation uses is listed there as an
// optional, not required, optimization — see DESIGN.md).
package bitset

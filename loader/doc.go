// Package loader reads a graph from a line-oriented text file, auto-
// detecting SNAP edge-list and DIMACS syntax per line (spec §6.1), and
// builds a core.Graph with a dense vertex remapping.
//
// Grounded on original_source/src/graph.cpp::load_from_snap's two-pass
// scheme (collect the distinct vertex IDs the edges mention, then remap and
// construct), re-expressed with core.Build doing the remap/dedup instead of
// a hand-rolled std::map, plus transparent gzip decompression
// (compress/gzip — stdlib, no third-party gzip reader in the retrieved pack
// improves on it for a plain line stream) for the common
// "dataset shipped as a .gz" case.
package loader

// Package report writes benchmark results to the CSV layout spec §6.3
// defines: one row per (dataset, algorithm) pair, a fixed header, booleans
// as lowercase true/false, density to six fraction digits.
//
// Uses encoding/csv (stdlib) rather than a third-party CSV library — no
// repo in the retrieved pack wires one, and the row shape here is flat and
// quoting-free, exactly what the standard writer is for.
package report

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// Header is the fixed CSV column order (spec §6.3).
var Header = []string{
	"dataset", "algorithm", "time_us", "time_ms",
	"clique_size", "num_vertices", "num_edges", "density", "valid",
}

// Row is one (dataset, algorithm) result.
type Row struct {
	Dataset     string
	Algorithm   string
	Elapsed     time.Duration
	CliqueSize  int
	NumVertices int
	NumEdges    int
	Density     float64
	Valid       bool
}

// Writer appends Rows to a CSV stream, writing Header exactly once on the
// first Write call.
type Writer struct {
	csv         *csv.Writer
	wroteHeader bool
}

// NewWriter wraps w for CSV output.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// Write appends one row, writing the header first if this is the first call.
func (rw *Writer) Write(r Row) error {
	if !rw.wroteHeader {
		if err := rw.csv.Write(Header); err != nil {
			return fmt.Errorf("report: write header: %w", err)
		}
		rw.wroteHeader = true
	}

	record := []string{
		r.Dataset,
		r.Algorithm,
		strconv.FormatInt(r.Elapsed.Microseconds(), 10),
		strconv.FormatFloat(float64(r.Elapsed.Microseconds())/1000, 'f', -1, 64),
		strconv.Itoa(r.CliqueSize),
		strconv.Itoa(r.NumVertices),
		strconv.Itoa(r.NumEdges),
		strconv.FormatFloat(r.Density, 'f', 6, 64),
		strconv.FormatBool(r.Valid),
	}
	if err := rw.csv.Write(record); err != nil {
		return fmt.Errorf("report: write row: %w", err)
	}
	return nil
}

// Flush flushes buffered CSV output and returns the first error encountered.
func (rw *Writer) Flush() error {
	rw.csv.Flush()
	return rw.csv.Error()
}

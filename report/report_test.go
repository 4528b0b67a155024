package report_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxclique/report"
)

func TestWriter_HeaderAndRow(t *testing.T) {
	var buf bytes.Buffer
	w := report.NewWriter(&buf)

	err := w.Write(report.Row{
		Dataset:     "triangle",
		Algorithm:   "bk-basic",
		Elapsed:     1500 * time.Microsecond,
		CliqueSize:  3,
		NumVertices: 3,
		NumEdges:    3,
		Density:     1.0,
		Valid:       true,
	})
	require.NoError(t, err)
	require.NoError(t, w.Flush())

	r := csv.NewReader(bytes.NewReader(buf.Bytes()))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, report.Header, records[0])
	require.Equal(t, []string{
		"triangle", "bk-basic", "1500", "1.5", "3", "3", "3", "1.000000", "true",
	}, records[1])
}

func TestWriter_HeaderWrittenOnce(t *testing.T) {
	var buf bytes.Buffer
	w := report.NewWriter(&buf)

	require.NoError(t, w.Write(report.Row{Dataset: "a", Algorithm: "tomita"}))
	require.NoError(t, w.Write(report.Row{Dataset: "b", Algorithm: "bbmc"}))
	require.NoError(t, w.Flush())

	r := csv.NewReader(bytes.NewReader(buf.Bytes()))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, report.Header, records[0])
}

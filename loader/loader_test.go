package loader_test

import (
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxclique/loader"
	"github.com/katalvlaran/maxclique/mcerr"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(contents), 0o644))
	return p
}

func TestLoad_SNAPFormat(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "snap.txt", "# comment\n0 1\n1 2\n0 2\n")

	res, err := loader.Load(p)
	require.NoError(t, err)
	require.Equal(t, 3, res.Graph.VertexCount())
	require.Equal(t, 3, res.Graph.EdgeCount())
}

func TestLoad_DIMACSFormat(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "dimacs.txt", "c a comment\np edge 3 3\ne 0 1\ne 1 2\ne 0 2\n")

	res, err := loader.Load(p)
	require.NoError(t, err)
	require.Equal(t, 3, res.Graph.VertexCount())
	require.Equal(t, 3, res.Graph.EdgeCount())
}

func TestLoad_IgnoresSelfLoopsAndDuplicates(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "dups.txt", "0 1\n0 0\n1 0\n")

	res, err := loader.Load(p)
	require.NoError(t, err)
	require.Equal(t, 1, res.Graph.EdgeCount())
	require.Equal(t, 1, res.IgnoredSelfLoops)
	require.Equal(t, 1, res.IgnoredDuplicates)
}

func TestLoad_GzipTransparent(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "graph.txt.gz")

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte("0 1\n1 2\n0 2\n"))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, os.WriteFile(p, buf.Bytes(), 0o644))

	res, err := loader.Load(p)
	require.NoError(t, err)
	require.Equal(t, 3, res.Graph.VertexCount())
}

func TestLoad_NoEdgesIsError(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "empty.txt", "# only comments\n\n")

	_, err := loader.Load(p)
	require.ErrorIs(t, err, loader.ErrNoEdges)
	require.ErrorIs(t, err, mcerr.ErrInvalidInput)
}

func TestLoad_MalformedLine(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "bad.txt", "0 1\nnot-a-number here\n")

	_, err := loader.Load(p)
	require.True(t, errors.Is(err, loader.ErrMalformedLine))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := loader.Load("/nonexistent/path/graph.txt")
	require.Error(t, err)
}

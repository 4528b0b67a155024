package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxclique/core"
	"github.com/katalvlaran/maxclique/mcerr"
)

func TestBuild_Triangle(t *testing.T) {
	g, err := core.Build([]core.Edge{{0, 1}, {0, 2}, {1, 2}})
	require.NoError(t, err)
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(1, 0))
	require.False(t, g.HasEdge(0, 0))
}

func TestBuild_IgnoresSelfLoopsAndDuplicates(t *testing.T) {
	g, err := core.Build([]core.Edge{{0, 0}, {0, 1}, {1, 0}, {0, 1}})
	require.NoError(t, err)
	require.Equal(t, 1, g.EdgeCount())
	require.False(t, g.HasEdge(0, 0))
}

func TestBuild_RemapsSparseExternalIDs(t *testing.T) {
	g, err := core.Build([]core.Edge{{100, 200}, {200, 300}})
	require.NoError(t, err)
	require.Equal(t, 3, g.VertexCount())

	id, ok := g.OriginalID(0)
	require.True(t, ok)
	require.Equal(t, 100, id)
	id, ok = g.OriginalID(2)
	require.True(t, ok)
	require.Equal(t, 300, id)
}

func TestBuild_NegativeID(t *testing.T) {
	_, err := core.Build([]core.Edge{{-1, 0}})
	require.Error(t, err)
	require.True(t, errors.Is(err, mcerr.ErrInvalidInput))
	require.True(t, errors.Is(err, core.ErrNegativeVertexID))
}

func TestGraph_NeighborsAndDegreeOutOfRange(t *testing.T) {
	g, err := core.Build([]core.Edge{{0, 1}})
	require.NoError(t, err)

	_, err = g.Neighbors(5)
	require.True(t, errors.Is(err, mcerr.ErrOutOfRange))

	_, err = g.Degree(-1)
	require.True(t, errors.Is(err, mcerr.ErrOutOfRange))
}

func TestGraph_Density(t *testing.T) {
	g, err := core.Build([]core.Edge{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}})
	require.NoError(t, err)
	require.InDelta(t, 1.0, g.Density(), 1e-9) // K4 is complete
}

func TestGraph_EmptyGraph(t *testing.T) {
	g, err := core.Build(nil)
	require.NoError(t, err)
	require.Equal(t, 0, g.VertexCount())
	require.Equal(t, 0.0, g.Density())
}

func TestBuildDense_IsolatedVertex(t *testing.T) {
	g, err := core.BuildDense(1, nil)
	require.NoError(t, err)
	require.Equal(t, 1, g.VertexCount())
	require.Equal(t, 0, g.EdgeCount())
}

func TestBuildDense_KeepsIsolatedVertexAmongEdges(t *testing.T) {
	g, err := core.BuildDense(4, []core.Edge{{0, 1}})
	require.NoError(t, err)
	require.Equal(t, 4, g.VertexCount())
	d, err := g.Degree(3)
	require.NoError(t, err)
	require.Equal(t, 0, d)
}

func TestBuildDense_VertexOutOfRange(t *testing.T) {
	_, err := core.BuildDense(2, []core.Edge{{0, 5}})
	require.True(t, errors.Is(err, mcerr.ErrOutOfRange))
}

func TestBuildDense_NegativeN(t *testing.T) {
	_, err := core.BuildDense(-1, nil)
	require.True(t, errors.Is(err, mcerr.ErrInvalidInput))
}

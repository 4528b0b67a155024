package clique

import (
	"testing"

	"github.com/katalvlaran/maxclique/core"
	"github.com/stretchr/testify/require"
)

var allVariants = []Variant{BKBasic, Tomita, DegeneracyTomita, Ostergard, BBMC}

func buildGraph(t *testing.T, edges [][2]int) *core.Graph {
	t.Helper()
	es := make([]core.Edge, len(edges))
	for i, e := range edges {
		es[i] = core.Edge{U: e[0], V: e[1]}
	}
	g, err := core.Build(es)
	require.NoError(t, err)
	return g
}

// requireAgreement runs every variant on g and asserts each returns a
// provably optimal clique of exactly wantSize, valid in g (testable
// properties 1-3 from spec §8: validity, optimality, cross-variant
// agreement).
func requireAgreement(t *testing.T, g *core.Graph, wantSize int) {
	t.Helper()
	for _, v := range allVariants {
		res, err := FindMaximumClique(g, v, Options{})
		require.NoErrorf(t, err, "variant %s", v)
		require.Truef(t, res.Proven, "variant %s should run to completion unbounded", v)
		require.Lenf(t, res.Clique, wantSize, "variant %s clique size", v)
		require.Truef(t, g.IsClique(res.Clique), "variant %s result %v is not a clique", v, res.Clique)
	}
}

func TestFindMaximumClique_Triangle(t *testing.T) {
	g := buildGraph(t, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	requireAgreement(t, g, 3)
}

func TestFindMaximumClique_K4(t *testing.T) {
	g := buildGraph(t, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}})
	requireAgreement(t, g, 4)
}

func TestFindMaximumClique_FiveCycle(t *testing.T) {
	// C5 is triangle-free: omega == 2.
	g := buildGraph(t, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
	requireAgreement(t, g, 2)
}

func TestFindMaximumClique_TwoTrianglesSharingEdge(t *testing.T) {
	// Vertices 0,1 shared; {0,1,2} and {0,1,3} are triangles, 2-3 not adjacent.
	g := buildGraph(t, [][2]int{{0, 1}, {0, 2}, {1, 2}, {0, 3}, {1, 3}})
	requireAgreement(t, g, 3)
}

func TestFindMaximumClique_DisjointCliques(t *testing.T) {
	// K4 on {0,1,2,3} plus a disjoint triangle on {4,5,6}: omega == 4.
	g := buildGraph(t, [][2]int{
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
		{4, 5}, {5, 6}, {4, 6},
	})
	requireAgreement(t, g, 4)
}

func TestFindMaximumClique_EmptyGraph(t *testing.T) {
	g := buildGraph(t, nil)
	requireAgreement(t, g, 0)
}

func TestFindMaximumClique_SingleEdge(t *testing.T) {
	g := buildGraph(t, [][2]int{{0, 1}})
	requireAgreement(t, g, 2)
}

func TestFindMaximumClique_PetersenGraph(t *testing.T) {
	// Petersen graph: triangle-free, omega == 2.
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, // outer 5-cycle
		{5, 7}, {7, 9}, {9, 6}, {6, 8}, {8, 5}, // inner 5-cycle (step 2)
		{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9}, // spokes
	}
	g := buildGraph(t, edges)
	requireAgreement(t, g, 2)
}

func TestFindMaximumClique_InvalidSeedRejected(t *testing.T) {
	g := buildGraph(t, [][2]int{{0, 1}, {1, 2}})
	_, err := FindMaximumClique(g, BKBasic, Options{Seed: []int{0, 2}})
	require.ErrorIs(t, err, ErrInvalidSeed)
}

func TestFindMaximumClique_ValidSeedAccepted(t *testing.T) {
	g := buildGraph(t, [][2]int{{0, 1}, {0, 2}, {1, 2}, {0, 3}, {1, 3}, {2, 3}})
	res, err := FindMaximumClique(g, BKBasic, Options{Seed: []int{0, 1}})
	require.NoError(t, err)
	require.Len(t, res.Clique, 4)
}

func TestFindMaximumClique_UnknownVariant(t *testing.T) {
	g := buildGraph(t, [][2]int{{0, 1}})
	_, err := FindMaximumClique(g, Variant(99), Options{})
	require.ErrorIs(t, err, ErrUnknownVariant)
}

func TestVariant_String(t *testing.T) {
	require.Equal(t, "bk-basic", BKBasic.String())
	require.Equal(t, "bbmc", BBMC.String())
	require.Equal(t, "unknown", Variant(99).String())
}

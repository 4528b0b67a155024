package bitset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxclique/bitset"
	"github.com/katalvlaran/maxclique/mcerr"
)

func TestSet_Basics(t *testing.T) {
	s, err := bitset.New(70) // spans two words
	require.NoError(t, err)

	require.True(t, s.None())
	s.SetBit(3)
	s.SetBit(65)
	require.True(t, s.Test(3))
	require.True(t, s.Test(65))
	require.False(t, s.Test(4))
	require.Equal(t, 2, s.Popcount())

	s.ClearBit(3)
	require.False(t, s.Test(3))
	require.Equal(t, 1, s.Popcount())
}

func TestSet_FirstSetBitAndIterate(t *testing.T) {
	s, err := bitset.New(10)
	require.NoError(t, err)
	s.SetBit(7)
	s.SetBit(2)
	s.SetBit(9)

	first, ok := s.FirstSetBit()
	require.True(t, ok)
	require.Equal(t, 2, first)

	var got []int
	s.Iterate(func(i int) { got = append(got, i) })
	require.Equal(t, []int{2, 7, 9}, got)
}

func TestSet_EmptyFirstSetBit(t *testing.T) {
	s, err := bitset.New(5)
	require.NoError(t, err)
	_, ok := s.FirstSetBit()
	require.False(t, ok)
}

func TestOps_IntersectDifferenceUnion(t *testing.T) {
	a, _ := bitset.New(8)
	b, _ := bitset.New(8)
	a.SetBit(1)
	a.SetBit(2)
	a.SetBit(3)
	b.SetBit(2)
	b.SetBit(3)
	b.SetBit(4)

	inter, _ := bitset.New(8)
	bitset.Intersect(inter, a, b)
	require.Equal(t, 2, inter.Popcount())
	require.True(t, inter.Test(2) && inter.Test(3))

	diff, _ := bitset.New(8)
	bitset.Difference(diff, a, b)
	require.Equal(t, 1, diff.Popcount())
	require.True(t, diff.Test(1))

	union, _ := bitset.New(8)
	bitset.Union(union, a, b)
	require.Equal(t, 4, union.Popcount())
}

func TestComplement_RespectsDomain(t *testing.T) {
	a, _ := bitset.New(5)
	a.SetBit(0)

	comp, _ := bitset.New(5)
	bitset.Complement(comp, a)
	require.Equal(t, 4, comp.Popcount())
	for i := 1; i < 5; i++ {
		require.True(t, comp.Test(i))
	}
}

func TestNegativeWidth(t *testing.T) {
	_, err := bitset.New(-1)
	require.Error(t, err)
}

func TestNew_WidthTooLarge(t *testing.T) {
	_, err := bitset.New(1 << 25)
	require.Error(t, err)
	require.ErrorIs(t, err, mcerr.ErrResourceExhausted)
}

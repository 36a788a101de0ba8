package subset_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/trajecta/core"
	"github.com/katalvlaran/trajecta/subset"
	"github.com/stretchr/testify/require"
)

func requireRandomNilIffAllEmpty(t *testing.T, n core.Neighbourhood[*subset.SubsetSolution], s *subset.SubsetSolution, rng *rand.Rand) {
	t.Helper()
	all := n.AllMoves(s)
	for i := 0; i < 50; i++ {
		m := n.RandomMove(s, rng)
		if len(all) == 0 {
			require.Nil(t, m)
		} else {
			require.NotNil(t, m)
		}
	}
}

func TestSingleSwapNeighbourhood(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s, err := subset.New(universe(5), []int{0, 1})
	require.NoError(t, err)

	n, err := subset.NewSingleSwap()
	require.NoError(t, err)
	requireRandomNilIffAllEmpty(t, n, s, rng)
	require.Len(t, n.AllMoves(s), 2*3)

	empty, err := subset.New(universe(3), []int{0, 1, 2})
	require.NoError(t, err)
	require.Empty(t, n.AllMoves(empty))
	require.Nil(t, n.RandomMove(empty, rng))
}

func TestSingleAdditionNeighbourhood_RespectsMaxSize(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	s, err := subset.New(universe(5), []int{0, 1})
	require.NoError(t, err)

	n, err := subset.NewSingleAddition(subset.WithMaxSize(2))
	require.NoError(t, err)
	require.Empty(t, n.AllMoves(s), "already at maxSize, no addition should be offered")
	require.Nil(t, n.RandomMove(s, rng))

	n2, err := subset.NewSingleAddition(subset.WithMaxSize(4))
	require.NoError(t, err)
	requireRandomNilIffAllEmpty(t, n2, s, rng)
	require.Len(t, n2.AllMoves(s), 3)
}

func TestSingleDeletionNeighbourhood_RespectsMinSize(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	s, err := subset.New(universe(5), []int{0, 1})
	require.NoError(t, err)

	n, err := subset.NewSingleDeletion(subset.WithMinSize(2))
	require.NoError(t, err)
	require.Empty(t, n.AllMoves(s))
	require.Nil(t, n.RandomMove(s, rng))

	n2, err := subset.NewSingleDeletion(subset.WithMinSize(0))
	require.NoError(t, err)
	requireRandomNilIffAllEmpty(t, n2, s, rng)
	require.Len(t, n2.AllMoves(s), 2)
}

func TestFixedIDs_ExcludedFromEveryKind(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	s, err := subset.New(universe(4), []int{0, 1})
	require.NoError(t, err)

	n, err := subset.NewSinglePerturbation(subset.WithFixedIDs(2, 3, 0))
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		m := n.RandomMove(s, rng)
		switch mv := m.(type) {
		case subset.AdditionMove:
			require.NotEqual(t, 2, mv.ID)
			require.NotEqual(t, 3, mv.ID)
		case subset.DeletionMove:
			require.NotEqual(t, 0, mv.ID)
		case subset.SwapMove:
			require.NotEqual(t, 2, mv.Add)
			require.NotEqual(t, 3, mv.Add)
			require.NotEqual(t, 0, mv.Del)
		}
	}
}

func TestMultiAdditionNeighbourhood_AggregatesKMoves(t *testing.T) {
	s, err := subset.New(universe(10), nil)
	require.NoError(t, err)

	n, err := subset.NewMultiAddition(3)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(5))
	m := n.RandomMove(s, rng)
	require.NotNil(t, m)
	gm, ok := m.(subset.GeneralSubsetMove)
	require.True(t, ok)
	require.Len(t, gm.AddIDs, 3)

	snapshot := s.Copy()
	m.Apply(s)
	require.Equal(t, 3, s.NumSelected())
	m.Undo(s)
	require.True(t, s.Equals(snapshot))
}

func TestMultiSwapNeighbourhood_PreservesSize(t *testing.T) {
	s, err := subset.New(universe(10), []int{0, 1, 2, 3})
	require.NoError(t, err)

	n, err := subset.NewMultiSwap(2)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(6))

	m := n.RandomMove(s, rng)
	require.NotNil(t, m)
	before := s.NumSelected()
	m.Apply(s)
	require.Equal(t, before, s.NumSelected())
}

func TestNeighbourhoodOption_RejectsInvertedSizeWindow(t *testing.T) {
	_, err := subset.NewSinglePerturbation(subset.WithMinSize(5), subset.WithMaxSize(2))
	require.Error(t, err)
}

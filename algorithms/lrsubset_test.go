package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trajecta/algorithms"
	"github.com/katalvlaran/trajecta/subset"
)

func TestLRSubsetSearch_RejectsEqualLAndR(t *testing.T) {
	p := buildProblem(t, 3)
	_, err := algorithms.LRSubsetSearch[struct{}](p, 2, 2)
	require.Error(t, err)
}

func TestLRSubsetSearch_RejectsNegativeBounds(t *testing.T) {
	p := buildProblem(t, 3)
	_, err := algorithms.LRSubsetSearch[struct{}](p, -1, 0)
	require.Error(t, err)
}

func TestLRSubsetSearch_GrowingFromEmptyReachesTheFullUniverse(t *testing.T) {
	p := buildProblem(t, 3)
	b, err := algorithms.LRSubsetSearch[struct{}](p, 2, 0)
	require.NoError(t, err)

	seed := seedAt(t, 0, 1, 2)
	require.NoError(t, b.SetCurrentSolution(seed))
	require.NoError(t, b.Start())

	sol, ev, val, ok := b.CurrentSolution()
	require.True(t, ok)
	require.True(t, val.Passed())
	require.ElementsMatch(t, universe(10), sol.Selected())
	require.Equal(t, float64(45), ev.Value())
}

func TestLRSubsetSearch_ShrinkingFromFullReachesTheEmptySet(t *testing.T) {
	p := buildProblem(t, 3)
	b, err := algorithms.LRSubsetSearch[struct{}](p, 0, 2)
	require.NoError(t, err)

	seed := seedAt(t, 0, 1, 2)
	require.NoError(t, b.SetCurrentSolution(seed))
	require.NoError(t, b.Start())

	sol, _, _, ok := b.CurrentSolution()
	require.True(t, ok)
	require.Empty(t, sol.Selected())
}

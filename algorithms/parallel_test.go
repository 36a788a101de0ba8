package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trajecta/algorithms"
	"github.com/katalvlaran/trajecta/search"
	"github.com/katalvlaran/trajecta/subset"
)

func TestBasicParallelSearch_RejectsEmptyBag(t *testing.T) {
	p := buildProblem(t, 3)
	_, err := algorithms.BasicParallelSearch[*subset.SubsetSolution, struct{}](p, nil)
	require.Error(t, err)
}

func TestBasicParallelSearch_ReturnsTheBestAcrossSubSearches(t *testing.T) {
	p := buildProblem(t, 3)
	n, err := subset.NewSingleSwap()
	require.NoError(t, err)

	random, err := algorithms.RandomDescent[*subset.SubsetSolution, struct{}](
		p, n,
		search.WithStopCriterion[*subset.SubsetSolution, struct{}](search.MaxSteps[*subset.SubsetSolution, struct{}](200)),
	)
	require.NoError(t, err)
	steepest, err := algorithms.SteepestDescent[*subset.SubsetSolution, struct{}](p, n)
	require.NoError(t, err)

	bag := []*search.Base[*subset.SubsetSolution, struct{}]{random, steepest}
	b, err := algorithms.BasicParallelSearch[*subset.SubsetSolution, struct{}](p, bag)
	require.NoError(t, err)

	seed, err := subset.New(universe(10), []int{0, 1, 2})
	require.NoError(t, err)
	require.NoError(t, b.SetCurrentSolution(seed))
	require.NoError(t, b.Start())

	ev, val, ok := b.BestSolution()
	require.True(t, ok)
	require.True(t, val.Passed())
	require.Equal(t, float64(24), ev.Value())
}

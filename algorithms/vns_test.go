package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trajecta/algorithms"
	"github.com/katalvlaran/trajecta/core"
	"github.com/katalvlaran/trajecta/search"
	"github.com/katalvlaran/trajecta/subset"
)

func TestVariableNeighbourhoodSearch_RejectsEmptyShakeList(t *testing.T) {
	p := buildProblem(t, 3)
	n, err := subset.NewSingleSwap()
	require.NoError(t, err)

	_, err = algorithms.VariableNeighbourhoodSearch[*subset.SubsetSolution, struct{}](p, nil, n)
	require.Error(t, err)
}

func TestVariableNeighbourhoodSearch_ConvergesToTheOptimum(t *testing.T) {
	p := buildProblem(t, 3)
	swap, err := subset.NewSingleSwap()
	require.NoError(t, err)
	perturb, err := subset.NewSinglePerturbation(subset.WithMinSize(3), subset.WithMaxSize(3))
	require.NoError(t, err)

	shake := []core.Neighbourhood[*subset.SubsetSolution]{perturb, perturb}
	b, err := algorithms.VariableNeighbourhoodSearch[*subset.SubsetSolution, struct{}](
		p, shake, swap,
		search.WithStopCriterion[*subset.SubsetSolution, struct{}](search.MaxSteps[*subset.SubsetSolution, struct{}](30)),
	)
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

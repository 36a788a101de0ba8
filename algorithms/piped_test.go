package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trajecta/algorithms"
	"github.com/katalvlaran/trajecta/search"
	"github.com/katalvlaran/trajecta/subset"
)

func TestPipedLocalSearch_RejectsEmptyPipe(t *testing.T) {
	p := buildProblem(t, 3)
	_, err := algorithms.PipedLocalSearch[*subset.SubsetSolution, struct{}](p, nil)
	require.Error(t, err)
}

func TestPipedLocalSearch_ChainsStagesAndReturnsTheFinalResult(t *testing.T) {
	p := buildProblem(t, 3)
	n, err := subset.NewSingleSwap()
	require.NoError(t, err)

	stage1, err := algorithms.SteepestDescent[*subset.SubsetSolution, struct{}](p, n)
	require.NoError(t, err)
	stage2, err := algorithms.SteepestDescent[*subset.SubsetSolution, struct{}](p, n)
	require.NoError(t, err)

	pipe, err := algorithms.PipedLocalSearch[*subset.SubsetSolution, struct{}](p, []*search.Base[*subset.SubsetSolution, struct{}]{stage1, stage2})
	require.NoError(t, err)

	seed, err := subset.New(universe(10), []int{0, 1, 2})
	require.NoError(t, err)
	require.NoError(t, pipe.SetCurrentSolution(seed))
	require.NoError(t, pipe.Start())

	ev, val, ok := pipe.BestSolution()
	require.True(t, ok)
	require.True(t, val.Passed())
	require.Equal(t, float64(24), ev.Value())
}

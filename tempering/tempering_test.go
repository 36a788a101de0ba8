package tempering_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trajecta/search"
	"github.com/katalvlaran/trajecta/subset"
	"github.com/katalvlaran/trajecta/tempering"
)

func TestParallelTempering_RejectsTooFewReplicas(t *testing.T) {
	p := buildProblem(t, 3)
	n, err := subset.NewSingleSwap()
	require.NoError(t, err)

	_, err = tempering.ParallelTempering[*subset.SubsetSolution, struct{}](p, n, 1, 1, 100)
	require.Error(t, err)
}

func TestParallelTempering_RejectsBadTemperatureOrdering(t *testing.T) {
	p := buildProblem(t, 3)
	n, err := subset.NewSingleSwap()
	require.NoError(t, err)

	_, err = tempering.ParallelTempering[*subset.SubsetSolution, struct{}](p, n, 4, 100, 1)
	require.Error(t, err)

	_, err = tempering.ParallelTempering[*subset.SubsetSolution, struct{}](p, n, 4, 0, 100)
	require.Error(t, err)
}

func TestParallelTempering_ConvergesToTheSteepestDescentOptimum(t *testing.T) {
	p := buildProblem(t, 3)
	n, err := subset.NewSingleSwap()
	require.NoError(t, err)

	b, err := tempering.ParallelTempering[*subset.SubsetSolution, struct{}](
		p, n, 4, 1, 100,
		tempering.WithReplicaSteps[*subset.SubsetSolution, struct{}](50),
		tempering.WithOuterOption[*subset.SubsetSolution, struct{}](
			search.WithStopCriterion[*subset.SubsetSolution, struct{}](search.MaxSteps[*subset.SubsetSolution, struct{}](10)),
		),
		tempering.WithOuterOption[*subset.SubsetSolution, struct{}](
			search.WithCheckInterval[*subset.SubsetSolution, struct{}](time.Millisecond),
		),
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

	sol, ok := b.BestSolutionCopy()
	require.True(t, ok)
	require.ElementsMatch(t, []int{7, 8, 9}, sol.Selected())
}

func TestParallelTempering_IdempotentStop(t *testing.T) {
	p := buildProblem(t, 3)
	n, err := subset.NewSingleSwap()
	require.NoError(t, err)

	b, err := tempering.ParallelTempering[*subset.SubsetSolution, struct{}](
		p, n, 2, 1, 10,
		tempering.WithReplicaSteps[*subset.SubsetSolution, struct{}](5),
		tempering.WithOuterOption[*subset.SubsetSolution, struct{}](
			search.WithStopCriterion[*subset.SubsetSolution, struct{}](search.MaxSteps[*subset.SubsetSolution, struct{}](2)),
		),
		tempering.WithOuterOption[*subset.SubsetSolution, struct{}](
			search.WithCheckInterval[*subset.SubsetSolution, struct{}](time.Millisecond),
		),
	)
	require.NoError(t, err)

	b.Stop()
	b.Stop()
	require.NoError(t, b.Start())
}

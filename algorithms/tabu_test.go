package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trajecta/algorithms"
	"github.com/katalvlaran/trajecta/search"
	"github.com/katalvlaran/trajecta/subset"
)

func seedAt(t *testing.T, ids ...int) *subset.SubsetSolution {
	t.Helper()
	s, err := subset.New(universe(10), ids)
	require.NoError(t, err)
	return s
}

func TestTabuSearch_WithRejectAllMemory_OnlyAspirationMovesAccept(t *testing.T) {
	p := buildProblem(t, 3)
	n, err := subset.NewSingleSwap()
	require.NoError(t, err)

	memory := algorithms.NewRejectAllMemory[*subset.SubsetSolution]()
	b, err := algorithms.TabuSearch[*subset.SubsetSolution, struct{}](p, n, memory)
	require.NoError(t, err)

	require.NoError(t, b.SetCurrentSolution(seedAt(t, 0, 1, 2)))
	require.NoError(t, b.Start())

	ev, val, ok := b.BestSolution()
	require.True(t, ok)
	require.True(t, val.Passed())
	require.Equal(t, float64(24), ev.Value())
}

func TestTabuSearch_WithSolutionFIFOMemory_AvoidsImmediateCycling(t *testing.T) {
	p := buildProblem(t, 3)
	n, err := subset.NewSingleSwap()
	require.NoError(t, err)

	// A 5-entry FIFO never makes all swaps tabu, so TabuSearch would not
	// stop on its own here.
	memory := algorithms.NewSolutionFIFOMemory[*subset.SubsetSolution](5)
	b, err := algorithms.TabuSearch[*subset.SubsetSolution, struct{}](
		p, n, memory,
		search.WithStopCriterion[*subset.SubsetSolution, struct{}](search.MaxSteps[*subset.SubsetSolution, struct{}](50)),
	)
	require.NoError(t, err)

	require.NoError(t, b.SetCurrentSolution(seedAt(t, 0, 1, 2)))
	require.NoError(t, b.Start())

	ev, val, ok := b.BestSolution()
	require.True(t, ok)
	require.True(t, val.Passed())
	require.Equal(t, float64(24), ev.Value())
}

func TestFirstBestAdmissibleTabuSearch_ReachesTheOptimum(t *testing.T) {
	p := buildProblem(t, 3)
	n, err := subset.NewSingleSwap()
	require.NoError(t, err)

	memory := algorithms.NewSubsetIDFIFOMemory(4)
	b, err := algorithms.FirstBestAdmissibleTabuSearch[*subset.SubsetSolution, struct{}](
		p, n, memory,
		search.WithStopCriterion[*subset.SubsetSolution, struct{}](search.MaxSteps[*subset.SubsetSolution, struct{}](50)),
	)
	require.NoError(t, err)

	require.NoError(t, b.SetCurrentSolution(seedAt(t, 0, 1, 2)))
	require.NoError(t, b.Start())

	ev, val, ok := b.BestSolution()
	require.True(t, ok)
	require.True(t, val.Passed())
	require.Equal(t, float64(24), ev.Value())
}

func TestSubsetIDFIFOMemory_ForbidsUndoingTheLastSwapWithinCapacity(t *testing.T) {
	memory := algorithms.NewSubsetIDFIFOMemory(2)
	cur := seedAt(t, 1, 2, 3)

	move := subset.SwapMove{Add: 9, Del: 1}
	require.False(t, memory.IsTabu(move, cur))
	memory.RememberAccepted(move, cur)

	reverse := subset.SwapMove{Add: 1, Del: 9}
	require.True(t, memory.IsTabu(reverse, cur))
}

func TestFullSolutionSetMemory_ForbidsRevisitingAnyPastSolution(t *testing.T) {
	memory := algorithms.NewFullSolutionSetMemory[*subset.SubsetSolution]()
	cur := seedAt(t, 0, 1, 2)

	visited := seedAt(t, 1, 2, 9) // the result of swapping Add:9, Del:0 from cur
	memory.RememberAccepted(nil, visited)

	require.True(t, memory.IsTabu(subset.SwapMove{Add: 9, Del: 0}, cur))
	require.False(t, memory.IsTabu(subset.SwapMove{Add: 8, Del: 0}, cur))
}

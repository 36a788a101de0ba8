package search_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trajecta/search"
	"github.com/katalvlaran/trajecta/subset"
)

type sOpt = *subset.SubsetSolution
type dOpt = struct{}

func TestMaxSteps_ShouldStopAfterThreshold(t *testing.T) {
	p := buildProblem(t, 3)
	n, err := subset.NewSingleSwap()
	require.NoError(t, err)

	b, err := search.NewBase[sOpt, dOpt](p, steepestDescentStep(n))
	require.NoError(t, err)
	require.NoError(t, b.Start())

	rt := b.Runtime()
	require.False(t, search.MaxSteps[sOpt, dOpt](rt.TotalSteps+1).ShouldStop(b))
	require.True(t, search.MaxSteps[sOpt, dOpt](rt.TotalSteps).ShouldStop(b))
}

func TestWithCheckInterval_ActuallyHaltsALongRunningSearch(t *testing.T) {
	p := buildProblem(t, 3)
	n, err := subset.NewSingleSwap()
	require.NoError(t, err)

	// randomWalkStep never terminates on its own: it keeps accepting or
	// rejecting random swaps forever, so only the background checker
	// (polling MaxRuntime) can end the run.
	step := func(b *search.Base[sOpt, dOpt]) (bool, error) {
		cur, _, _, ok := b.CurrentSolution()
		if !ok {
			return true, nil
		}
		move := n.RandomMove(cur, b.RNG())
		if move == nil {
			return true, nil
		}
		improving, err := b.IsImprovement(move)
		if err != nil {
			return false, err
		}
		if improving {
			_, err = b.Accept(move)
			return false, err
		}
		b.Reject(move)
		return false, nil
	}

	b, err := search.NewBase[sOpt, dOpt](
		p, step,
		search.WithStopCriterion[sOpt, dOpt](search.MaxRuntime[sOpt, dOpt](20*time.Millisecond)),
		search.WithCheckInterval[sOpt, dOpt](2*time.Millisecond),
	)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- b.Start() }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("search did not stop within the expected window")
	}
}

func TestAnyOf_FiresWhenEitherFires(t *testing.T) {
	p := buildProblem(t, 3)
	n, err := subset.NewSingleSwap()
	require.NoError(t, err)

	b, err := search.NewBase[sOpt, dOpt](p, steepestDescentStep(n))
	require.NoError(t, err)
	require.NoError(t, b.Start())

	never := search.MaxSteps[sOpt, dOpt](1_000_000)
	always := search.MaxSteps[sOpt, dOpt](0)
	combined := search.AnyOf[sOpt, dOpt](never, always)
	require.True(t, combined.ShouldStop(b))
}

func TestAllOf_RequiresEveryCriterion(t *testing.T) {
	p := buildProblem(t, 3)
	n, err := subset.NewSingleSwap()
	require.NoError(t, err)

	b, err := search.NewBase[sOpt, dOpt](p, steepestDescentStep(n))
	require.NoError(t, err)
	require.NoError(t, b.Start())

	always := search.MaxSteps[sOpt, dOpt](0)
	never := search.MaxSteps[sOpt, dOpt](1_000_000)
	require.False(t, search.AllOf[sOpt, dOpt](always, never).ShouldStop(b))
	require.True(t, search.AllOf[sOpt, dOpt](always, always).ShouldStop(b))
}

func TestTargetValueReached_MaximizingOrientation(t *testing.T) {
	p := buildProblem(t, 3)
	n, err := subset.NewSingleSwap()
	require.NoError(t, err)

	b, err := search.NewBase[sOpt, dOpt](p, steepestDescentStep(n))
	require.NoError(t, err)
	require.NoError(t, b.Start())

	require.True(t, search.TargetValueReached[sOpt, dOpt](20).ShouldStop(b))
	require.False(t, search.TargetValueReached[sOpt, dOpt](1000).ShouldStop(b))
}

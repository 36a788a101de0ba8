package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trajecta/algorithms"
	"github.com/katalvlaran/trajecta/search"
	"github.com/katalvlaran/trajecta/subset"
)

// fixedCandidates replays a fixed list of candidate solutions, the
// simplest possible SolutionIterator for testing ExhaustiveSearch.
type fixedCandidates struct {
	candidates []*subset.SubsetSolution
	next       int
}

func (f *fixedCandidates) Next() (*subset.SubsetSolution, bool) {
	if f.next >= len(f.candidates) {
		var zero *subset.SubsetSolution
		return zero, false
	}
	s := f.candidates[f.next]
	f.next++
	return s, true
}

func TestExhaustiveSearch_FindsTheBestAmongEnumeratedCandidates(t *testing.T) {
	p := buildProblem(t, 3)

	it := &fixedCandidates{candidates: []*subset.SubsetSolution{
		seedAt(t, 0, 1, 2),
		seedAt(t, 7, 8, 9),
		seedAt(t, 3, 4, 5),
	}}

	b, err := algorithms.ExhaustiveSearch[*subset.SubsetSolution, struct{}](p, it)
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

func TestExhaustiveSearch_TerminatesWhenExhausted(t *testing.T) {
	p := buildProblem(t, 3)
	it := &fixedCandidates{candidates: []*subset.SubsetSolution{seedAt(t, 4, 5, 6)}}

	b, err := algorithms.ExhaustiveSearch[*subset.SubsetSolution, struct{}](p, it)
	require.NoError(t, err)

	seed, err := subset.New(universe(10), []int{0, 1, 2})
	require.NoError(t, err)
	require.NoError(t, b.SetCurrentSolution(seed))
	require.NoError(t, b.Start())

	require.Equal(t, search.StatusIdle, b.Status())
}

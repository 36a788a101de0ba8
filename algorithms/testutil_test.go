package algorithms_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trajecta/core"
	"github.com/katalvlaran/trajecta/errs"
	"github.com/katalvlaran/trajecta/eval"
	"github.com/katalvlaran/trajecta/problem"
	"github.com/katalvlaran/trajecta/subset"
)

// sumObjective maximises the sum of selected IDs, the representative
// toy objective used across this package's tests.
type sumObjective struct{}

func (sumObjective) Evaluate(s *subset.SubsetSolution, _ struct{}) eval.Evaluation {
	var sum int
	for _, id := range s.Selected() {
		sum += id
	}
	return eval.SimpleEvaluation(sum)
}

func (sumObjective) EvaluateDelta(move core.Move[*subset.SubsetSolution], _ *subset.SubsetSolution, curEval eval.Evaluation, _ struct{}) (eval.Evaluation, error) {
	base := curEval.Value()
	switch m := move.(type) {
	case subset.AdditionMove:
		return eval.SimpleEvaluation(base + float64(m.ID)), nil
	case subset.DeletionMove:
		return eval.SimpleEvaluation(base - float64(m.ID)), nil
	case subset.SwapMove:
		return eval.SimpleEvaluation(base - float64(m.Del) + float64(m.Add)), nil
	case subset.GeneralSubsetMove:
		for _, id := range m.AddIDs {
			base += float64(id)
		}
		for _, id := range m.DelIDs {
			base -= float64(id)
		}
		return eval.SimpleEvaluation(base), nil
	default:
		return nil, errs.NewIncompatibleDelta("sumObjective", move)
	}
}

func (sumObjective) IsMinimizing() bool { return false }

// fixedSizeGenerator draws a uniformly random fixed-size selection from
// a universe at search start.
type fixedSizeGenerator struct {
	all  []int
	size int
}

func (g fixedSizeGenerator) Create(rng *rand.Rand, _ struct{}) *subset.SubsetSolution {
	perm := rng.Perm(len(g.all))
	selected := make([]int, g.size)
	for i := 0; i < g.size; i++ {
		selected[i] = g.all[perm[i]]
	}
	s, err := subset.New(g.all, selected)
	if err != nil {
		panic(err)
	}
	return s
}

func universe(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	return ids
}

func buildProblem(t *testing.T, size int) *problem.Problem[*subset.SubsetSolution, struct{}] {
	t.Helper()
	p, err := problem.New[*subset.SubsetSolution, struct{}](
		struct{}{},
		sumObjective{},
		fixedSizeGenerator{all: universe(10), size: size},
		nil, nil,
	)
	require.NoError(t, err)
	return p
}

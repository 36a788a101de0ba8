package algorithms

import (
	"github.com/katalvlaran/trajecta/core"
	"github.com/katalvlaran/trajecta/errs"
	"github.com/katalvlaran/trajecta/eval"
	"github.com/katalvlaran/trajecta/problem"
	"github.com/katalvlaran/trajecta/search"
)

// VariableNeighbourhoodSearch owns a prioritised list of shaking
// neighbourhoods and an embedded local search. At level l (starting at
// 0), each step shakes the current solution with l+1 random moves drawn
// from shakeNeighbourhoods[l], runs SteepestDescent over
// localNeighbourhood from the shaken point to convergence, and accepts
// the refined result if it strictly improves the pre-shake current
// solution — resetting l to 0 — or else advances to l+1, wrapping back
// to 0 once every shaking level has been tried. It never terminates on
// its own; pair it with a stop criterion.
func VariableNeighbourhoodSearch[S core.Solution[S], D any](p *problem.Problem[S, D], shakeNeighbourhoods []core.Neighbourhood[S], localNeighbourhood core.Neighbourhood[S], opts ...search.Option[S, D]) (*search.Base[S, D], error) {
	if len(shakeNeighbourhoods) == 0 {
		return nil, errs.NewConfigurationError("algorithms.VariableNeighbourhoodSearch", "at least one shaking neighbourhood is required", nil)
	}
	if localNeighbourhood == nil {
		return nil, errs.NewConfigurationError("algorithms.VariableNeighbourhoodSearch", "local search neighbourhood must not be nil", nil)
	}

	level := 0
	step := func(b *search.Base[S, D]) (bool, error) {
		cur, curEval, curVal, ok := b.CurrentSolution()
		if !ok {
			return true, nil
		}

		shaken := cur.Copy()
		nh := shakeNeighbourhoods[level]
		for i := 0; i <= level; i++ {
			move := nh.RandomMove(shaken, b.RNG())
			if move == nil {
				break
			}
			move.Apply(shaken)
		}

		inner, err := SteepestDescent[S, D](b.Problem(), localNeighbourhood, search.WithRNG[S, D](b.RNG()))
		if err != nil {
			return true, err
		}
		if err := inner.SetCurrentSolution(shaken); err != nil {
			return true, err
		}
		if err := inner.Start(); err != nil {
			return true, err
		}
		refined, found := inner.BestSolutionCopy()
		if !found {
			refined, _, _, found = inner.CurrentSolution()
			if !found {
				level = (level + 1) % len(shakeNeighbourhoods)
				return false, nil
			}
		}

		refinedEval := b.Problem().Evaluate(refined)
		refinedVal := b.Problem().Validate(refined)
		improves := refinedVal.Passed() && (!curVal.Passed() || eval.Better(refinedEval, curEval, b.Problem().IsMinimizing()))
		if improves {
			b.UpdateCurrentSolution(refined)
			level = 0
		} else {
			level = (level + 1) % len(shakeNeighbourhoods)
		}
		return false, nil
	}
	return search.NewBase[S, D](p, step, opts...)
}

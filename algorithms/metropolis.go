package algorithms

import (
	"math"

	"github.com/katalvlaran/trajecta/core"
	"github.com/katalvlaran/trajecta/errs"
	"github.com/katalvlaran/trajecta/eval"
	"github.com/katalvlaran/trajecta/problem"
	"github.com/katalvlaran/trajecta/search"
)

// MetropolisSearch draws a random move at every step and accepts any
// improving move unconditionally. A non-improving move is accepted with
// probability exp(delta/temperature), delta being the signed improvement
// (negative for a worsening move), so higher temperatures tolerate
// larger regressions. temperature must be strictly positive. It
// terminates on its own only when the neighbourhood is exhausted.
func MetropolisSearch[S core.Solution[S], D any](p *problem.Problem[S, D], n core.Neighbourhood[S], temperature float64, opts ...search.Option[S, D]) (*search.Base[S, D], error) {
	if temperature <= 0 {
		return nil, errs.NewConfigurationError("algorithms.MetropolisSearch", "temperature must be strictly positive", nil)
	}

	step := func(b *search.Base[S, D]) (bool, error) {
		cur, curEval, curVal, ok := b.CurrentSolution()
		if !ok {
			return true, nil
		}
		move := n.RandomMove(cur, b.RNG())
		if move == nil {
			return true, nil
		}

		newVal, err := b.Problem().ValidateDelta(move, cur, curVal)
		if err != nil {
			return false, err
		}
		if !newVal.Passed() {
			b.Reject(move)
			return false, nil
		}
		newEval, err := b.Problem().EvaluateDelta(move, cur, curEval)
		if err != nil {
			return false, err
		}
		delta := eval.Delta(newEval, curEval, b.Problem().IsMinimizing())

		if delta >= 0 || b.RNG().Float64() < math.Exp(delta/temperature) {
			_, err = b.Accept(move)
			return false, err
		}
		b.Reject(move)
		return false, nil
	}
	return search.NewBase[S, D](p, step, opts...)
}

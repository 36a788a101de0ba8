package algorithms

import (
	"github.com/katalvlaran/trajecta/core"
	"github.com/katalvlaran/trajecta/problem"
	"github.com/katalvlaran/trajecta/search"
)

// RandomDescent draws a random move from the neighbourhood at every
// step, accepting it if it strictly improves the current solution and
// rejecting it otherwise. It terminates on its own only when the
// neighbourhood is exhausted (RandomMove returns nil).
func RandomDescent[S core.Solution[S], D any](p *problem.Problem[S, D], n core.Neighbourhood[S], opts ...search.Option[S, D]) (*search.Base[S, D], error) {
	step := func(b *search.Base[S, D]) (bool, error) {
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
	return search.NewBase[S, D](p, step, opts...)
}

// SteepestDescent enumerates every move reachable from the current
// solution at each step and commits the single most-improving one. It
// stops the moment no improving move remains: the current solution is
// then a local optimum under n.
func SteepestDescent[S core.Solution[S], D any](p *problem.Problem[S, D], n core.Neighbourhood[S], opts ...search.Option[S, D]) (*search.Base[S, D], error) {
	step := func(b *search.Base[S, D]) (bool, error) {
		cur, _, _, ok := b.CurrentSolution()
		if !ok {
			return true, nil
		}
		moves := n.AllMoves(cur)
		best, err := b.GetBestMove(moves, true, false, nil)
		if err != nil {
			return true, err
		}
		if best == nil {
			return true, nil
		}
		_, err = b.Accept(best)
		return false, err
	}
	return search.NewBase[S, D](p, step, opts...)
}

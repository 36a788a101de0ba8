package algorithms

import (
	"github.com/katalvlaran/trajecta/core"
	"github.com/katalvlaran/trajecta/problem"
	"github.com/katalvlaran/trajecta/search"
)

// SolutionIterator enumerates a problem-specific solution space one
// candidate at a time. Next returns (zero, false) once exhausted; it
// must never be called again afterwards.
type SolutionIterator[S any] interface {
	Next() (S, bool)
}

// ExhaustiveSearch drives the current solution through every candidate
// produced by it, one per step, relying on Base's own best-so-far
// tracking to retain the best valid candidate seen. It terminates once
// it is exhausted.
func ExhaustiveSearch[S core.Solution[S], D any](p *problem.Problem[S, D], it SolutionIterator[S], opts ...search.Option[S, D]) (*search.Base[S, D], error) {
	step := func(b *search.Base[S, D]) (bool, error) {
		s, ok := it.Next()
		if !ok {
			return true, nil
		}
		b.UpdateCurrentSolution(s)
		return false, nil
	}
	return search.NewBase[S, D](p, step, opts...)
}

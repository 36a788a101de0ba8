package algorithms

import (
	"github.com/katalvlaran/trajecta/core"
	"github.com/katalvlaran/trajecta/errs"
	"github.com/katalvlaran/trajecta/problem"
	"github.com/katalvlaran/trajecta/search"
)

// PipedLocalSearch composes stages into a sequential pipeline: the
// solution seeded into the pipe is fed as the starting point of stages[0],
// whose output seeds stages[1], and so on; the last stage's output is
// the pipe's own result. Every stage runs to its own completion (its own
// stop criteria apply) before the next one starts. A single call to
// Start runs the whole pipe exactly once.
func PipedLocalSearch[S core.Solution[S], D any](p *problem.Problem[S, D], stages []*search.Base[S, D], opts ...search.Option[S, D]) (*search.Base[S, D], error) {
	if len(stages) == 0 {
		return nil, errs.NewConfigurationError("algorithms.PipedLocalSearch", "at least one stage is required", nil)
	}

	step := func(b *search.Base[S, D]) (bool, error) {
		current, _, _, ok := b.CurrentSolution()
		if !ok {
			return true, nil
		}

		for _, stage := range stages {
			if err := stage.SetCurrentSolution(current); err != nil {
				return true, err
			}
			if err := stage.Start(); err != nil {
				return true, err
			}
			out, found := stage.BestSolutionCopy()
			if !found {
				out, _, _, found = stage.CurrentSolution()
				if !found {
					return true, nil
				}
			}
			current = out
		}

		b.UpdateCurrentSolution(current)
		return true, nil
	}
	return search.NewBase[S, D](p, step, opts...)
}

package algorithms

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/trajecta/core"
	"github.com/katalvlaran/trajecta/errs"
	"github.com/katalvlaran/trajecta/eval"
	"github.com/katalvlaran/trajecta/problem"
	"github.com/katalvlaran/trajecta/search"
)

// cascadeInterval is how often BasicParallelSearch polls its own
// StopRequested flag to propagate an outer Stop into the sub-searches it
// is running.
const cascadeInterval = 10 * time.Millisecond

// BasicParallelSearch runs a bag of heterogeneous searches concurrently,
// each seeded with its own independent copy of the solution seeded into
// the parallel search (if any, via errgroup-coordinated goroutines — one
// per sub-search, joined by a barrier-like Wait). Per-search stop
// criteria apply as configured on each sub-search; an outer Stop also
// cascades to every sub-search. A single call to Start runs one round
// and reports the best valid result across every sub-search as its own.
func BasicParallelSearch[S core.Solution[S], D any](p *problem.Problem[S, D], searches []*search.Base[S, D], opts ...search.Option[S, D]) (*search.Base[S, D], error) {
	if len(searches) == 0 {
		return nil, errs.NewConfigurationError("algorithms.BasicParallelSearch", "at least one sub-search is required", nil)
	}

	step := func(b *search.Base[S, D]) (bool, error) {
		seed, _, _, hasSeed := b.CurrentSolution()

		cascadeDone := make(chan struct{})
		go func() {
			ticker := time.NewTicker(cascadeInterval)
			defer ticker.Stop()
			for {
				select {
				case <-cascadeDone:
					return
				case <-ticker.C:
					if b.StopRequested() {
						for _, s := range searches {
							s.Stop()
						}
						return
					}
				}
			}
		}()

		g, _ := errgroup.WithContext(context.Background())
		for _, s := range searches {
			s := s
			g.Go(func() error {
				if hasSeed {
					if err := s.SetCurrentSolution(seed.Copy()); err != nil {
						return err
					}
				}
				return s.Start()
			})
		}
		runErr := g.Wait()
		close(cascadeDone)
		if runErr != nil {
			return true, runErr
		}

		var winner S
		var winnerEval eval.Evaluation
		found := false
		for _, s := range searches {
			sol, ok := s.BestSolutionCopy()
			if !ok {
				continue
			}
			ev, _, _ := s.BestSolution()
			if !found || eval.Better(ev, winnerEval, b.Problem().IsMinimizing()) {
				winner, winnerEval, found = sol, ev, true
			}
		}
		if found {
			b.UpdateCurrentSolution(winner)
		}
		return true, nil
	}
	return search.NewBase[S, D](p, step, opts...)
}

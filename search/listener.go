package search

import "github.com/katalvlaran/trajecta/eval"

// Listener observes a Search's lifecycle. All methods are invoked
// synchronously from whichever goroutine drives the event (the main loop
// for everything except NewBestSolution during ParallelTempering, which
// fires from whichever replica goroutine mutated the parent's best under
// its lock). A listener callback that panics aborts the current step.
type Listener[S any, D any] interface {
	SearchStarted(s *Base[S, D])
	SearchStopped(s *Base[S, D])
	NewBestSolution(s *Base[S, D], sol S, ev eval.Evaluation, val eval.Validation)
	NewCurrentSolution(s *Base[S, D], sol S, ev eval.Evaluation, val eval.Validation)
	StepCompleted(s *Base[S, D], stepsSoFar int64)
	StopCriterionChecked(s *Base[S, D])
}

// BaseListener is the no-op Listener implementation. Embed it to
// implement only the callbacks a particular listener cares about.
type BaseListener[S any, D any] struct{}

func (BaseListener[S, D]) SearchStarted(*Base[S, D])                                          {}
func (BaseListener[S, D]) SearchStopped(*Base[S, D])                                          {}
func (BaseListener[S, D]) NewBestSolution(*Base[S, D], S, eval.Evaluation, eval.Validation)    {}
func (BaseListener[S, D]) NewCurrentSolution(*Base[S, D], S, eval.Evaluation, eval.Validation) {}
func (BaseListener[S, D]) StepCompleted(*Base[S, D], int64)                                   {}
func (BaseListener[S, D]) StopCriterionChecked(*Base[S, D])                                   {}

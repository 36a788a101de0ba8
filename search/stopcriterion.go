package search

import "time"

// StopCriterion is polled by the background checker at CheckInterval.
// ShouldStop must be cheap: it never invokes the Problem's objective or
// constraints, only the Runtime snapshot already maintained by Base.
type StopCriterion[S any, D any] interface {
	ShouldStop(b *Base[S, D]) bool
}

type stopCriterionFunc[S any, D any] func(b *Base[S, D]) bool

func (f stopCriterionFunc[S, D]) ShouldStop(b *Base[S, D]) bool { return f(b) }

// MaxRuntime stops the search once its total wall-clock runtime reaches
// or exceeds d.
func MaxRuntime[S any, D any](d time.Duration) StopCriterion[S, D] {
	return stopCriterionFunc[S, D](func(b *Base[S, D]) bool {
		return b.Runtime().TotalRuntime >= d
	})
}

// MaxSteps stops the search once totalSteps reaches n.
func MaxSteps[S any, D any](n int64) StopCriterion[S, D] {
	return stopCriterionFunc[S, D](func(b *Base[S, D]) bool {
		return b.Runtime().TotalSteps >= n
	})
}

// MaxStepsWithoutImprovement stops the search once n steps have elapsed
// since the best-so-far solution last improved.
func MaxStepsWithoutImprovement[S any, D any](n int64) StopCriterion[S, D] {
	return stopCriterionFunc[S, D](func(b *Base[S, D]) bool {
		rt := b.Runtime()
		return rt.TotalSteps != InvalidCount && rt.StepsSinceImprovement >= n
	})
}

// MaxTimeWithoutImprovement stops the search once d has elapsed since the
// best-so-far solution last improved.
func MaxTimeWithoutImprovement[S any, D any](d time.Duration) StopCriterion[S, D] {
	return stopCriterionFunc[S, D](func(b *Base[S, D]) bool {
		rt := b.Runtime()
		return rt.TimeSinceImprovement != InvalidDuration && rt.TimeSinceImprovement >= d
	})
}

// MinDelta stops the search once the most recently accepted move's
// improvement delta drops below threshold, signalling the search has
// stalled near a plateau.
func MinDelta[S any, D any](threshold float64) StopCriterion[S, D] {
	return stopCriterionFunc[S, D](func(b *Base[S, D]) bool {
		last, ok := b.lastAcceptedDelta()
		return ok && last < threshold
	})
}

// TargetValueReached stops the search once the best-so-far evaluation is
// at least as good as target under the problem's orientation.
func TargetValueReached[S any, D any](target float64) StopCriterion[S, D] {
	return stopCriterionFunc[S, D](func(b *Base[S, D]) bool {
		bestEval, _, ok := b.BestSolution()
		if !ok {
			return false
		}
		if b.problem.IsMinimizing() {
			return bestEval.Value() <= target
		}
		return bestEval.Value() >= target
	})
}

// AnyOf combines criteria with logical OR: stop as soon as one fires.
func AnyOf[S any, D any](criteria ...StopCriterion[S, D]) StopCriterion[S, D] {
	return stopCriterionFunc[S, D](func(b *Base[S, D]) bool {
		for _, c := range criteria {
			if c.ShouldStop(b) {
				return true
			}
		}
		return false
	})
}

// AllOf combines criteria with logical AND: stop only once every
// criterion fires.
func AllOf[S any, D any](criteria ...StopCriterion[S, D]) StopCriterion[S, D] {
	return stopCriterionFunc[S, D](func(b *Base[S, D]) bool {
		for _, c := range criteria {
			if !c.ShouldStop(b) {
				return false
			}
		}
		return len(criteria) > 0
	})
}

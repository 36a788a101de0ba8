package algorithms

import (
	"github.com/katalvlaran/trajecta/core"
	"github.com/katalvlaran/trajecta/eval"
	"github.com/katalvlaran/trajecta/problem"
	"github.com/katalvlaran/trajecta/search"
)

// tabuCandidate pairs a move with its evaluated delta, used by both
// TabuSearch and FirstBestAdmissibleTabuSearch to track the best
// admissible candidate seen so far during one step's enumeration.
type tabuCandidate[S any] struct {
	move  core.Move[S]
	delta float64
}

// admissible reports whether move is admissible this step: either not
// tabu, or tabu but aspiration-admissible (its resulting evaluation
// beats the best-so-far). newEval is move's evaluated neighbour.
func admissible[S core.Solution[S], D any](b *search.Base[S, D], memory TabuMemory[S], move core.Move[S], cur S, newEval eval.Evaluation) bool {
	if !memory.IsTabu(move, cur) {
		return true
	}
	bestEval, _, hasBest := b.BestSolution()
	if !hasBest {
		return false
	}
	return eval.Better(newEval, bestEval, b.Problem().IsMinimizing())
}

// TabuSearch enumerates every move at each step, filters out tabu moves
// unless the aspiration criterion admits them (the move's resulting
// evaluation would beat the global best), and commits the best
// admissible move regardless of whether it improves on the current
// solution. memory is consulted for admissibility and updated with
// every move TabuSearch actually accepts. It stops once no admissible
// move remains.
func TabuSearch[S core.Solution[S], D any](p *problem.Problem[S, D], n core.Neighbourhood[S], memory TabuMemory[S], opts ...search.Option[S, D]) (*search.Base[S, D], error) {
	step := func(b *search.Base[S, D]) (bool, error) {
		cur, curEval, curVal, ok := b.CurrentSolution()
		if !ok {
			return true, nil
		}

		var best *tabuCandidate[S]
		for _, m := range n.AllMoves(cur) {
			newVal, err := b.Problem().ValidateDelta(m, cur, curVal)
			if err != nil {
				return true, err
			}
			if !newVal.Passed() {
				continue
			}
			newEval, err := b.Problem().EvaluateDelta(m, cur, curEval)
			if err != nil {
				return true, err
			}
			if !admissible(b, memory, m, cur, newEval) {
				continue
			}
			delta := eval.Delta(newEval, curEval, b.Problem().IsMinimizing())
			if best == nil || delta > best.delta {
				best = &tabuCandidate[S]{move: m, delta: delta}
			}
		}
		if best == nil {
			return true, nil
		}
		if _, err := b.Accept(best.move); err != nil {
			return true, err
		}
		newSol, _, _, _ := b.CurrentSolution()
		memory.RememberAccepted(best.move, newSol)
		return false, nil
	}
	return search.NewBase[S, D](p, step, opts...)
}

// FirstBestAdmissibleTabuSearch is TabuSearch with its per-step
// enumeration order shuffled: it commits the first improving admissible
// move it finds, or, failing that, the best admissible move seen (which
// may be non-improving), matching ordinary TabuSearch's fallback.
func FirstBestAdmissibleTabuSearch[S core.Solution[S], D any](p *problem.Problem[S, D], n core.Neighbourhood[S], memory TabuMemory[S], opts ...search.Option[S, D]) (*search.Base[S, D], error) {
	step := func(b *search.Base[S, D]) (bool, error) {
		cur, curEval, curVal, ok := b.CurrentSolution()
		if !ok {
			return true, nil
		}

		moves := n.AllMoves(cur)
		b.RNG().Shuffle(len(moves), func(i, j int) { moves[i], moves[j] = moves[j], moves[i] })

		var best *tabuCandidate[S]
		for _, m := range moves {
			newVal, err := b.Problem().ValidateDelta(m, cur, curVal)
			if err != nil {
				return true, err
			}
			if !newVal.Passed() {
				continue
			}
			newEval, err := b.Problem().EvaluateDelta(m, cur, curEval)
			if err != nil {
				return true, err
			}
			if !admissible(b, memory, m, cur, newEval) {
				continue
			}
			delta := eval.Delta(newEval, curEval, b.Problem().IsMinimizing())
			if delta > 0 {
				if _, err := b.Accept(m); err != nil {
					return true, err
				}
				newSol, _, _, _ := b.CurrentSolution()
				memory.RememberAccepted(m, newSol)
				return false, nil
			}
			if best == nil || delta > best.delta {
				best = &tabuCandidate[S]{move: m, delta: delta}
			}
		}
		if best == nil {
			return true, nil
		}
		if _, err := b.Accept(best.move); err != nil {
			return true, err
		}
		newSol, _, _, _ := b.CurrentSolution()
		memory.RememberAccepted(best.move, newSol)
		return false, nil
	}
	return search.NewBase[S, D](p, step, opts...)
}

package algorithms

import (
	"sort"

	"github.com/katalvlaran/trajecta/core"
	"github.com/katalvlaran/trajecta/errs"
	"github.com/katalvlaran/trajecta/eval"
	"github.com/katalvlaran/trajecta/problem"
	"github.com/katalvlaran/trajecta/search"
	"github.com/katalvlaran/trajecta/subset"
)

// rankedID pairs a candidate ID with the objective delta its single
// addition or deletion would produce, used to rank LRSubsetSearch's
// per-step candidates best-first.
type rankedID struct {
	id    int
	delta float64
}

func rankIDs[D any](b *search.Base[*subset.SubsetSolution, D], cur *subset.SubsetSolution, curEval eval.Evaluation, ids []int, build func(int) core.Move[*subset.SubsetSolution]) []rankedID {
	ranked := make([]rankedID, 0, len(ids))
	for _, id := range ids {
		newEval, err := b.Problem().EvaluateDelta(build(id), cur, curEval)
		if err != nil {
			continue
		}
		ranked = append(ranked, rankedID{id: id, delta: eval.Delta(newEval, curEval, b.Problem().IsMinimizing())})
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].delta > ranked[j].delta })
	return ranked
}

// LRSubsetSearch greedily grows or shrinks a subset solution up to l
// additions and up to r deletions at a time (l != r, both non-negative):
// it starts from the full subset when r > l (net shrinking) or the empty
// subset when l > r (net growing), then at each step ranks every
// unselected ID's single-addition delta and every selected ID's single-
// deletion delta, commits the best min(l, available) additions and
// min(r, available) deletions as one aggregated move, and repeats. It
// stops once neither side has anything left to commit — the size has
// converged against the universe bound.
func LRSubsetSearch[D any](p *problem.Problem[*subset.SubsetSolution, D], l, r int, opts ...search.Option[*subset.SubsetSolution, D]) (*search.Base[*subset.SubsetSolution, D], error) {
	if l == r {
		return nil, errs.NewConfigurationError("algorithms.LRSubsetSearch", "L and R must differ", nil)
	}
	if l < 0 || r < 0 {
		return nil, errs.NewConfigurationError("algorithms.LRSubsetSearch", "L and R must be non-negative", nil)
	}

	seeded := false
	stepFn := func(b *search.Base[*subset.SubsetSolution, D]) (bool, error) {
		cur, curEval, _, ok := b.CurrentSolution()
		if !ok {
			return true, nil
		}

		if !seeded {
			seeded = true
			universe := cur.All()
			var start *subset.SubsetSolution
			var err error
			if r > l {
				start, err = subset.New(universe, universe)
			} else {
				start, err = subset.New(universe, nil)
			}
			if err != nil {
				return true, err
			}
			b.UpdateCurrentSolution(start)
			cur, curEval, _, ok = b.CurrentSolution()
			if !ok {
				return true, nil
			}
		}

		addRanked := rankIDs(b, cur, curEval, cur.Unselected(), func(id int) core.Move[*subset.SubsetSolution] { return subset.AdditionMove{ID: id} })
		delRanked := rankIDs(b, cur, curEval, cur.Selected(), func(id int) core.Move[*subset.SubsetSolution] { return subset.DeletionMove{ID: id} })

		addK, delK := l, r
		if len(addRanked) < addK {
			addK = len(addRanked)
		}
		if len(delRanked) < delK {
			delK = len(delRanked)
		}
		if addK == 0 && delK == 0 {
			return true, nil
		}

		addIDs := make([]int, addK)
		for i := 0; i < addK; i++ {
			addIDs[i] = addRanked[i].id
		}
		delIDs := make([]int, delK)
		for i := 0; i < delK; i++ {
			delIDs[i] = delRanked[i].id
		}

		move := subset.GeneralSubsetMove{AddIDs: addIDs, DelIDs: delIDs}
		accepted, err := b.Accept(move)
		if err != nil {
			return true, err
		}
		if !accepted {
			return true, nil
		}
		return false, nil
	}
	return search.NewBase[*subset.SubsetSolution, D](p, stepFn, opts...)
}

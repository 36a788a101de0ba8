package subset

import (
	"math/rand"

	"github.com/katalvlaran/trajecta/core"
)

// MultiAdditionNeighbourhood performs k independent additions in one
// step, aggregated into a single GeneralSubsetMove, respecting maxSize.
type MultiAdditionNeighbourhood struct {
	cfg *neighbourhoodConfig
	k   int
}

// NewMultiAddition builds a MultiAdditionNeighbourhood selecting k
// distinct IDs to add per move.
func NewMultiAddition(k int, opts ...NeighbourhoodOption) (*MultiAdditionNeighbourhood, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}
	return &MultiAdditionNeighbourhood{cfg: cfg, k: k}, nil
}

func (n *MultiAdditionNeighbourhood) candidates(s *SubsetSolution) []int {
	if n.k <= 0 || s.NumSelected()+n.k > n.cfg.maxSize {
		return nil
	}
	cands := n.cfg.eligible(s.Unselected())
	if len(cands) < n.k {
		return nil
	}
	return cands
}

// RandomMove draws k distinct unselected IDs uniformly at random and
// aggregates their addition into one GeneralSubsetMove, or nil if fewer
// than k eligible candidates remain or the size window forbids it.
func (n *MultiAdditionNeighbourhood) RandomMove(s *SubsetSolution, rng *rand.Rand) core.Move[*SubsetSolution] {
	cands := n.candidates(s)
	if cands == nil {
		return nil
	}
	return GeneralSubsetMove{AddIDs: reservoirSample(cands, n.k, rng)}
}

// AllMoves enumerates every k-combination of eligible unselected IDs as
// a GeneralSubsetMove. Complexity is O(C(n, k)); intended for small n.
func (n *MultiAdditionNeighbourhood) AllMoves(s *SubsetSolution) []core.Move[*SubsetSolution] {
	cands := n.candidates(s)
	if cands == nil {
		return nil
	}
	var moves []core.Move[*SubsetSolution]
	forEachCombination(cands, n.k, func(combo []int) {
		moves = append(moves, GeneralSubsetMove{AddIDs: append([]int(nil), combo...)})
	})
	return moves
}

// MultiDeletionNeighbourhood performs k independent deletions in one
// step, aggregated into a single GeneralSubsetMove, respecting minSize.
type MultiDeletionNeighbourhood struct {
	cfg *neighbourhoodConfig
	k   int
}

// NewMultiDeletion builds a MultiDeletionNeighbourhood selecting k
// distinct IDs to remove per move.
func NewMultiDeletion(k int, opts ...NeighbourhoodOption) (*MultiDeletionNeighbourhood, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}
	return &MultiDeletionNeighbourhood{cfg: cfg, k: k}, nil
}

func (n *MultiDeletionNeighbourhood) candidates(s *SubsetSolution) []int {
	if n.k <= 0 || s.NumSelected()-n.k < n.cfg.minSize {
		return nil
	}
	cands := n.cfg.eligible(s.Selected())
	if len(cands) < n.k {
		return nil
	}
	return cands
}

// RandomMove draws k distinct selected IDs uniformly at random and
// aggregates their removal into one GeneralSubsetMove, or nil if the
// size window or fixed-ID filter forbids it.
func (n *MultiDeletionNeighbourhood) RandomMove(s *SubsetSolution, rng *rand.Rand) core.Move[*SubsetSolution] {
	cands := n.candidates(s)
	if cands == nil {
		return nil
	}
	return GeneralSubsetMove{DelIDs: reservoirSample(cands, n.k, rng)}
}

// AllMoves enumerates every k-combination of eligible selected IDs as a
// GeneralSubsetMove. Complexity is O(C(n, k)); intended for small n.
func (n *MultiDeletionNeighbourhood) AllMoves(s *SubsetSolution) []core.Move[*SubsetSolution] {
	cands := n.candidates(s)
	if cands == nil {
		return nil
	}
	var moves []core.Move[*SubsetSolution]
	forEachCombination(cands, n.k, func(combo []int) {
		moves = append(moves, GeneralSubsetMove{DelIDs: append([]int(nil), combo...)})
	})
	return moves
}

// MultiSwapNeighbourhood performs k independent single swaps in one
// step — k distinct unselected IDs traded for k distinct selected IDs —
// aggregated into a single GeneralSubsetMove. The selected-set size is
// unchanged, so no size window applies.
type MultiSwapNeighbourhood struct {
	cfg *neighbourhoodConfig
	k   int
}

// NewMultiSwap builds a MultiSwapNeighbourhood performing k independent
// swaps per move.
func NewMultiSwap(k int, opts ...NeighbourhoodOption) (*MultiSwapNeighbourhood, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}
	return &MultiSwapNeighbourhood{cfg: cfg, k: k}, nil
}

func (n *MultiSwapNeighbourhood) candidates(s *SubsetSolution) (add, del []int) {
	if n.k <= 0 {
		return nil, nil
	}
	add = n.cfg.eligible(s.Unselected())
	del = n.cfg.eligible(s.Selected())
	if len(add) < n.k || len(del) < n.k {
		return nil, nil
	}
	return add, del
}

// RandomMove draws k distinct unselected and k distinct selected IDs
// uniformly at random and aggregates the k swaps into one
// GeneralSubsetMove, or nil if fewer than k candidates exist on either
// side.
func (n *MultiSwapNeighbourhood) RandomMove(s *SubsetSolution, rng *rand.Rand) core.Move[*SubsetSolution] {
	add, del := n.candidates(s)
	if add == nil {
		return nil
	}
	return GeneralSubsetMove{
		AddIDs: reservoirSample(add, n.k, rng),
		DelIDs: reservoirSample(del, n.k, rng),
	}
}

// AllMoves enumerates every pairing of a k-combination of eligible
// unselected IDs with a k-combination of eligible selected IDs.
// Complexity is O(C(n, k) * C(m, k)); intended for small n, m, k.
func (n *MultiSwapNeighbourhood) AllMoves(s *SubsetSolution) []core.Move[*SubsetSolution] {
	add, del := n.candidates(s)
	if add == nil {
		return nil
	}
	var moves []core.Move[*SubsetSolution]
	forEachCombination(add, n.k, func(addCombo []int) {
		forEachCombination(del, n.k, func(delCombo []int) {
			moves = append(moves, GeneralSubsetMove{
				AddIDs: append([]int(nil), addCombo...),
				DelIDs: append([]int(nil), delCombo...),
			})
		})
	})
	return moves
}

// forEachCombination invokes fn once per k-combination of items, in
// lexicographic index order. fn must not retain the slice it is given.
func forEachCombination(items []int, k int, fn func(combo []int)) {
	n := len(items)
	if k <= 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	combo := make([]int, k)
	for {
		for i, ix := range idx {
			combo[i] = items[ix]
		}
		fn(combo)

		i := k - 1
		for i >= 0 && idx[i] == i+n-k {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

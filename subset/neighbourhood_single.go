package subset

import (
	"math/rand"

	"github.com/katalvlaran/trajecta/core"
)

// SingleSwapNeighbourhood enumerates every (add, del) pair swapping one
// unselected ID in for one selected ID, leaving the selected-set size
// unchanged. It is only meaningful for fixed-size subsets (no size
// window is enforced, since a swap cannot change the size anyway).
type SingleSwapNeighbourhood struct {
	cfg *neighbourhoodConfig
}

// NewSingleSwap builds a SingleSwapNeighbourhood.
func NewSingleSwap(opts ...NeighbourhoodOption) (*SingleSwapNeighbourhood, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}
	return &SingleSwapNeighbourhood{cfg: cfg}, nil
}

// RandomMove draws one uniformly random eligible (add, del) pair, or nil
// if either side has no eligible candidates.
func (n *SingleSwapNeighbourhood) RandomMove(s *SubsetSolution, rng *rand.Rand) core.Move[*SubsetSolution] {
	add := n.cfg.eligible(s.Unselected())
	del := n.cfg.eligible(s.Selected())
	if len(add) == 0 || len(del) == 0 {
		return nil
	}
	return SwapMove{Add: add[rng.Intn(len(add))], Del: del[rng.Intn(len(del))]}
}

// AllMoves enumerates every eligible (add, del) pair.
func (n *SingleSwapNeighbourhood) AllMoves(s *SubsetSolution) []core.Move[*SubsetSolution] {
	add := n.cfg.eligible(s.Unselected())
	del := n.cfg.eligible(s.Selected())
	moves := make([]core.Move[*SubsetSolution], 0, len(add)*len(del))
	for _, a := range add {
		for _, d := range del {
			moves = append(moves, SwapMove{Add: a, Del: d})
		}
	}
	return moves
}

// SingleAdditionNeighbourhood enumerates one AdditionMove per eligible
// unselected ID, respecting the configured maxSize.
type SingleAdditionNeighbourhood struct {
	cfg *neighbourhoodConfig
}

// NewSingleAddition builds a SingleAdditionNeighbourhood.
func NewSingleAddition(opts ...NeighbourhoodOption) (*SingleAdditionNeighbourhood, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}
	return &SingleAdditionNeighbourhood{cfg: cfg}, nil
}

func (n *SingleAdditionNeighbourhood) candidates(s *SubsetSolution) []int {
	if s.NumSelected() >= n.cfg.maxSize {
		return nil
	}
	return n.cfg.eligible(s.Unselected())
}

// RandomMove draws one uniformly random eligible AdditionMove, or nil if
// none exist (the size window is already saturated, or every candidate
// is fixed).
func (n *SingleAdditionNeighbourhood) RandomMove(s *SubsetSolution, rng *rand.Rand) core.Move[*SubsetSolution] {
	cands := n.candidates(s)
	if len(cands) == 0 {
		return nil
	}
	return AdditionMove{ID: cands[rng.Intn(len(cands))]}
}

// AllMoves enumerates every eligible AdditionMove.
func (n *SingleAdditionNeighbourhood) AllMoves(s *SubsetSolution) []core.Move[*SubsetSolution] {
	cands := n.candidates(s)
	moves := make([]core.Move[*SubsetSolution], 0, len(cands))
	for _, id := range cands {
		moves = append(moves, AdditionMove{ID: id})
	}
	return moves
}

// SingleDeletionNeighbourhood enumerates one DeletionMove per eligible
// selected ID, respecting the configured minSize.
type SingleDeletionNeighbourhood struct {
	cfg *neighbourhoodConfig
}

// NewSingleDeletion builds a SingleDeletionNeighbourhood.
func NewSingleDeletion(opts ...NeighbourhoodOption) (*SingleDeletionNeighbourhood, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}
	return &SingleDeletionNeighbourhood{cfg: cfg}, nil
}

func (n *SingleDeletionNeighbourhood) candidates(s *SubsetSolution) []int {
	if s.NumSelected() <= n.cfg.minSize {
		return nil
	}
	return n.cfg.eligible(s.Selected())
}

// RandomMove draws one uniformly random eligible DeletionMove, or nil if
// none exist.
func (n *SingleDeletionNeighbourhood) RandomMove(s *SubsetSolution, rng *rand.Rand) core.Move[*SubsetSolution] {
	cands := n.candidates(s)
	if len(cands) == 0 {
		return nil
	}
	return DeletionMove{ID: cands[rng.Intn(len(cands))]}
}

// AllMoves enumerates every eligible DeletionMove.
func (n *SingleDeletionNeighbourhood) AllMoves(s *SubsetSolution) []core.Move[*SubsetSolution] {
	cands := n.candidates(s)
	moves := make([]core.Move[*SubsetSolution], 0, len(cands))
	for _, id := range cands {
		moves = append(moves, DeletionMove{ID: id})
	}
	return moves
}

// perturbationKind is the internal tag identifying which arm of
// SinglePerturbation a given candidate pool belongs to.
type perturbationKind int

const (
	perturbAddition perturbationKind = iota
	perturbDeletion
	perturbSwap
)

// SinglePerturbationNeighbourhood is the union of addition, deletion,
// and swap moves, restricted at every point to kinds whose resulting
// subset size stays within [minSize, maxSize]. RandomMove first computes
// which kinds are currently valid, picks one of them uniformly, then
// picks a uniform candidate within that kind — it does not pick uniformly
// over the flattened move list, so each valid *kind* gets equal weight
// regardless of how many candidates it has.
type SinglePerturbationNeighbourhood struct {
	cfg      *neighbourhoodConfig
	addition *SingleAdditionNeighbourhood
	deletion *SingleDeletionNeighbourhood
	swap     *SingleSwapNeighbourhood
}

// NewSinglePerturbation builds a SinglePerturbationNeighbourhood.
func NewSinglePerturbation(opts ...NeighbourhoodOption) (*SinglePerturbationNeighbourhood, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}
	return &SinglePerturbationNeighbourhood{
		cfg:      cfg,
		addition: &SingleAdditionNeighbourhood{cfg: cfg},
		deletion: &SingleDeletionNeighbourhood{cfg: cfg},
		swap:     &SingleSwapNeighbourhood{cfg: cfg},
	}, nil
}

func (n *SinglePerturbationNeighbourhood) validKinds(s *SubsetSolution) []perturbationKind {
	var kinds []perturbationKind
	if len(n.addition.candidates(s)) > 0 {
		kinds = append(kinds, perturbAddition)
	}
	if len(n.deletion.candidates(s)) > 0 {
		kinds = append(kinds, perturbDeletion)
	}
	add := n.cfg.eligible(s.Unselected())
	del := n.cfg.eligible(s.Selected())
	if len(add) > 0 && len(del) > 0 {
		kinds = append(kinds, perturbSwap)
	}
	return kinds
}

// RandomMove implements the kind-then-candidate selection policy
// described on SinglePerturbationNeighbourhood.
func (n *SinglePerturbationNeighbourhood) RandomMove(s *SubsetSolution, rng *rand.Rand) core.Move[*SubsetSolution] {
	kinds := n.validKinds(s)
	if len(kinds) == 0 {
		return nil
	}
	switch kinds[rng.Intn(len(kinds))] {
	case perturbAddition:
		return n.addition.RandomMove(s, rng)
	case perturbDeletion:
		return n.deletion.RandomMove(s, rng)
	default:
		return n.swap.RandomMove(s, rng)
	}
}

// AllMoves enumerates every eligible move of every currently valid kind.
func (n *SinglePerturbationNeighbourhood) AllMoves(s *SubsetSolution) []core.Move[*SubsetSolution] {
	var moves []core.Move[*SubsetSolution]
	moves = append(moves, n.addition.AllMoves(s)...)
	moves = append(moves, n.deletion.AllMoves(s)...)
	moves = append(moves, n.swap.AllMoves(s)...)
	return moves
}

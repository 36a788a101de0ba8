package algorithms

import (
	"github.com/katalvlaran/trajecta/core"
	"github.com/katalvlaran/trajecta/subset"
)

// TabuMemory tracks recently visited solutions or move attributes so
// TabuSearch can forbid cycling back to them. IsTabu is asked against
// the current solution, not the resulting neighbour, so an
// implementation that needs the neighbour must apply move to a copy of
// cur itself. RememberAccepted observes every move TabuSearch actually
// commits, in the order committed.
type TabuMemory[S any] interface {
	IsTabu(move core.Move[S], cur S) bool
	RememberAccepted(move core.Move[S], newSol S)
}

// SolutionFIFOMemory forbids returning to any of the capacity most
// recently visited solutions, compared by content via Equals. It is the
// generic, representation-agnostic tabu memory: correct for any
// core.Solution, at the cost of an O(capacity) membership check and an
// Apply+Copy per candidate move per step.
type SolutionFIFOMemory[S core.Solution[S]] struct {
	capacity int
	recent   []S
}

// NewSolutionFIFOMemory builds a SolutionFIFOMemory retaining the last
// capacity solutions. capacity must be positive.
func NewSolutionFIFOMemory[S core.Solution[S]](capacity int) *SolutionFIFOMemory[S] {
	if capacity < 1 {
		capacity = 1
	}
	return &SolutionFIFOMemory[S]{capacity: capacity}
}

// IsTabu reports whether applying move to cur reproduces a recently
// visited solution.
func (m *SolutionFIFOMemory[S]) IsTabu(move core.Move[S], cur S) bool {
	candidate := cur.Copy()
	move.Apply(candidate)
	for _, s := range m.recent {
		if s.Equals(candidate) {
			return true
		}
	}
	return false
}

// RememberAccepted records newSol, evicting the oldest entry once the
// memory is at capacity.
func (m *SolutionFIFOMemory[S]) RememberAccepted(_ core.Move[S], newSol S) {
	m.recent = append(m.recent, newSol.Copy())
	if len(m.recent) > m.capacity {
		m.recent = m.recent[len(m.recent)-m.capacity:]
	}
}

// FullSolutionSetMemory forbids returning to any solution ever visited,
// with no eviction. Membership is tested via Hash (for speed) with an
// Equals fallback to resolve hash collisions.
type FullSolutionSetMemory[S core.Solution[S]] struct {
	buckets map[uint64][]S
}

// NewFullSolutionSetMemory builds an empty FullSolutionSetMemory.
func NewFullSolutionSetMemory[S core.Solution[S]]() *FullSolutionSetMemory[S] {
	return &FullSolutionSetMemory[S]{buckets: make(map[uint64][]S)}
}

// IsTabu reports whether applying move to cur reproduces any solution
// ever remembered.
func (m *FullSolutionSetMemory[S]) IsTabu(move core.Move[S], cur S) bool {
	candidate := cur.Copy()
	move.Apply(candidate)
	for _, s := range m.buckets[candidate.Hash()] {
		if s.Equals(candidate) {
			return true
		}
	}
	return false
}

// RememberAccepted records newSol permanently.
func (m *FullSolutionSetMemory[S]) RememberAccepted(_ core.Move[S], newSol S) {
	cp := newSol.Copy()
	h := cp.Hash()
	m.buckets[h] = append(m.buckets[h], cp)
}

// RejectAllMemory treats every move as tabu, so only aspiration-admissible
// moves are ever accepted. It exists to exercise the aspiration path in
// isolation.
type RejectAllMemory[S any] struct{}

// NewRejectAllMemory builds a RejectAllMemory.
func NewRejectAllMemory[S any]() RejectAllMemory[S] { return RejectAllMemory[S]{} }

// IsTabu always reports true.
func (RejectAllMemory[S]) IsTabu(core.Move[S], S) bool { return true }

// RememberAccepted is a no-op.
func (RejectAllMemory[S]) RememberAccepted(core.Move[S], S) {}

// SubsetIDFIFOMemory is the subset family's representative tabu memory:
// instead of comparing whole solutions, it forbids re-adding an ID that
// was recently removed and re-removing an ID that was recently added,
// each tracked in its own bounded FIFO. This is far cheaper than
// SolutionFIFOMemory for large universes, since membership is an O(1)
// map lookup with no Apply/Copy per candidate.
type SubsetIDFIFOMemory struct {
	capacity         int
	recentlyAdded    []int
	recentlyAddedS   map[int]struct{}
	recentlyRemoved  []int
	recentlyRemovedS map[int]struct{}
}

// NewSubsetIDFIFOMemory builds a SubsetIDFIFOMemory retaining the last
// capacity added IDs and the last capacity removed IDs independently.
func NewSubsetIDFIFOMemory(capacity int) *SubsetIDFIFOMemory {
	if capacity < 1 {
		capacity = 1
	}
	return &SubsetIDFIFOMemory{
		capacity:         capacity,
		recentlyAddedS:   make(map[int]struct{}, capacity),
		recentlyRemovedS: make(map[int]struct{}, capacity),
	}
}

// IsTabu forbids re-adding a recently removed ID and re-removing a
// recently added ID. A SwapMove is tabu if either side of the swap is.
// A GeneralSubsetMove is tabu if any of its additions or deletions is.
func (m *SubsetIDFIFOMemory) IsTabu(move core.Move[*subset.SubsetSolution], _ *subset.SubsetSolution) bool {
	switch mv := move.(type) {
	case subset.AdditionMove:
		_, tabu := m.recentlyRemovedS[mv.ID]
		return tabu
	case subset.DeletionMove:
		_, tabu := m.recentlyAddedS[mv.ID]
		return tabu
	case subset.SwapMove:
		if _, tabu := m.recentlyRemovedS[mv.Add]; tabu {
			return true
		}
		_, tabu := m.recentlyAddedS[mv.Del]
		return tabu
	case subset.GeneralSubsetMove:
		for _, id := range mv.AddIDs {
			if _, tabu := m.recentlyRemovedS[id]; tabu {
				return true
			}
		}
		for _, id := range mv.DelIDs {
			if _, tabu := m.recentlyAddedS[id]; tabu {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// RememberAccepted records every ID added or removed by move.
func (m *SubsetIDFIFOMemory) RememberAccepted(move core.Move[*subset.SubsetSolution], _ *subset.SubsetSolution) {
	switch mv := move.(type) {
	case subset.AdditionMove:
		m.pushAdded(mv.ID)
	case subset.DeletionMove:
		m.pushRemoved(mv.ID)
	case subset.SwapMove:
		m.pushAdded(mv.Add)
		m.pushRemoved(mv.Del)
	case subset.GeneralSubsetMove:
		for _, id := range mv.AddIDs {
			m.pushAdded(id)
		}
		for _, id := range mv.DelIDs {
			m.pushRemoved(id)
		}
	}
}

func (m *SubsetIDFIFOMemory) pushAdded(id int) {
	m.recentlyAdded = append(m.recentlyAdded, id)
	m.recentlyAddedS[id] = struct{}{}
	if len(m.recentlyAdded) > m.capacity {
		evicted := m.recentlyAdded[0]
		m.recentlyAdded = m.recentlyAdded[1:]
		delete(m.recentlyAddedS, evicted)
	}
}

func (m *SubsetIDFIFOMemory) pushRemoved(id int) {
	m.recentlyRemoved = append(m.recentlyRemoved, id)
	m.recentlyRemovedS[id] = struct{}{}
	if len(m.recentlyRemoved) > m.capacity {
		evicted := m.recentlyRemoved[0]
		m.recentlyRemoved = m.recentlyRemoved[1:]
		delete(m.recentlyRemovedS, evicted)
	}
}

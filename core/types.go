package core

import (
	"fmt"
	"math/rand"
)

// Solution is the generic contract satisfied by every candidate answer
// fed through the search engine. S is the concrete solution type itself
// (e.g. *subset.SubsetSolution), following the same self-referential
// pattern Go uses for constraints such as cmp.Ordered: implementations
// declare themselves as the type parameter they satisfy.
//
// Copy must produce an instance independent of the receiver: mutating the
// copy must never mutate the receiver, and vice versa. Equals compares by
// content, not identity. Hash must be stable for equal solutions (it is
// used by tabu memories keyed on solution content, not for correctness of
// the search itself).
type Solution[S any] interface {
	fmt.Stringer

	// Copy returns an independent deep copy of the receiver.
	Copy() S

	// Equals reports whether the receiver and other carry the same content.
	Equals(other S) bool

	// Hash returns a content-stable hash, used by hash-based tabu memories.
	Hash() uint64
}

// Move is a reversible transformation over a solution of type S.
//
// Apply(s) mutates s. Undo(s) restores s to the state observed
// immediately before the paired Apply(s) call. Undo is only guaranteed
// to work when s has not been modified since that Apply, and when Undo
// is invoked at most once per Apply — callers that need to branch must
// Copy the solution first.
type Move[S any] interface {
	// Apply mutates s to reflect this move.
	Apply(s S)

	// Undo reverses the effect of the most recent paired Apply(s).
	Undo(s S)
}

// Neighbourhood produces Moves reachable from a given current solution.
//
// RandomMove returns nil if and only if AllMoves returns an empty slice
// for the same solution. Enumeration order from AllMoves is unspecified
// unless a concrete neighbourhood documents otherwise. Every move
// returned by either method must be directly applicable to s.
type Neighbourhood[S any] interface {
	// RandomMove draws one move applicable to s using rng, or nil if s has
	// no available moves under this neighbourhood. rng is always the
	// calling Search's own generator, never a package-global one, so that
	// a Search's trajectory is fully determined by its seed.
	RandomMove(s S, rng *rand.Rand) Move[S]

	// AllMoves enumerates every move applicable to s.
	AllMoves(s S) []Move[S]
}

// Package core defines the three foundational contracts shared by every
// algorithm in this module: Solution, Move, and Neighbourhood.
//
// A Solution is an opaque carrier for a candidate answer to a combinatorial
// problem. It knows how to copy itself and compare itself for equality; it
// otherwise has no behaviour the search engine depends on.
//
// A Move is a reversible transformation on a Solution: Apply mutates a
// solution in place, Undo restores it to the state observed immediately
// before the paired Apply. Undo is only guaranteed to work when the
// solution has not been touched between the paired Apply and Undo, and
// when Undo is called at most once per Apply.
//
// A Neighbourhood is a factory over Moves for a given current solution:
// it can draw a single random move or enumerate every move reachable from
// that solution. RandomMove returns nil if and only if AllMoves is empty.
//
// types.go declares the generic interfaces; opaque_move.go adds the opaque
// escape hatch used when a caller-defined Move type needs to flow through
// the core without the problem package recognising its concrete type.
package core

// Package subset implements the representative "subset selection"
// solution family used throughout this module's test suite: choosing a selected subset of a fixed, identified universe
// of integer items.
//
// SubsetSolution carries three disjoint logical views over the same
// universe — all IDs, selected IDs, unselected IDs — maintaining
// selected ∩ unselected = ∅ and selected ∪ unselected = all after every
// mutation. An optional comparator supplied at construction gives a
// stable total order over IDs for deterministic enumeration; without
// one, IDs keep insertion order.
//
// Four move kinds close the family: AdditionMove, DeletionMove,
// SwapMove, and GeneralSubsetMove (an aggregate of several adds/dels in
// one step, used by the Multi* neighbourhoods). Each is its own undo
// record — Apply and Undo are simple set operations, not snapshots.
//
// The neighbourhoods in this package (Single/Multi × Addition/Deletion/
// Swap, plus SinglePerturbation) all respect an optional [minSize,
// maxSize] window and an optional set of "fixed" IDs that may never be
// added, removed, or swapped.
package subset

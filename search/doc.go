// Package search provides the lifecycle and scheduling core shared by
// every algorithm in this module: a status state machine, a background
// stop-criterion checker, listener dispatch, and best-solution
// accounting. Concrete algorithms (package algorithms) supply a StepFunc
// describing one iteration of their particular strategy; Base owns
// everything else — status transitions, the current and best-so-far
// solution triples, counters, and the RNG.
//
// Base is deliberately not itself a usable search: NewBase requires a
// StepFunc. Each algorithm is a constructor function (RandomDescent,
// MetropolisSearch, ...) that builds its StepFunc and returns the
// resulting *Base, composing over one shared core instead of a deep
// inheritance chain.
package search

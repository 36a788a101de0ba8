// Package algorithms implements the concrete trajectory search
// algorithms that drive a search.Base: RandomDescent, SteepestDescent,
// MetropolisSearch, TabuSearch and its FirstBestAdmissible variant,
// VariableNeighbourhoodSearch, PipedLocalSearch, BasicParallelSearch,
// ExhaustiveSearch, and LRSubsetSearch.
//
// Every constructor here returns a *search.Base[S, D] configured with a
// search.StepFunc closure implementing that algorithm's per-step policy,
// built on Base's exported Accept/Reject/IsImprovement/GetBestMove/
// UpdateCurrentSolution primitives. Running one is always
//
//	b, err := algorithms.SteepestDescent(problem, neighbourhood)
//	...
//	err = b.Start()
//
// the same way regardless of which algorithm produced b.
package algorithms

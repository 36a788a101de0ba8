// Package tempering implements the parallel replica search engine:
// ParallelTempering coordinates N independent Metropolis-style replicas
// at a ladder of temperatures, periodically proposing swaps between
// temperature-adjacent replicas so that a replica can escape a local
// optimum by trading places with a hotter one.
//
// ParallelTempering is built the same way every algorithm in package
// algorithms is: it returns a *search.Base[S,D] driven by a StepFunc, so
// a "global step" is simply one call to that Base's normal step loop.
// One call runs every replica for its own step budget, then performs one
// round of adjacent-pair swaps.
package tempering

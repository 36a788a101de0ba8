package search

import (
	"github.com/katalvlaran/trajecta/core"
	"github.com/katalvlaran/trajecta/problem"
)

// SearchFactory builds a fresh Search-compatible value bound to p. It is
// the external-interfaces surface of this package: embedding
// applications construct algorithms by supplying a factory rather than
// reaching into package-internal wiring.
type SearchFactory[S core.Solution[S], D any] func(p *problem.Problem[S, D]) (*Base[S, D], error)

// LocalSearchFactory is a SearchFactory tightened to guarantee the
// result runs a local-search policy (every algorithm in this module
// qualifies; the distinction exists for documentation and for callers
// that want the type to communicate intent).
type LocalSearchFactory[S core.Solution[S], D any] func(p *problem.Problem[S, D]) (*Base[S, D], error)

// MetropolisSearchFactory builds a temperature-parameterised Metropolis
// search over neighbourhood n at temperature t. tempering.ParallelTempering
// does not take this type; it builds its replicas through its own
// tempering.ReplicaFactory, which also receives a per-replica rng.
type MetropolisSearchFactory[S core.Solution[S], D any] func(p *problem.Problem[S, D], n core.Neighbourhood[S], t float64) (*Base[S, D], error)

package tempering

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/trajecta/algorithms"
	"github.com/katalvlaran/trajecta/core"
	"github.com/katalvlaran/trajecta/errs"
	"github.com/katalvlaran/trajecta/eval"
	"github.com/katalvlaran/trajecta/problem"
	"github.com/katalvlaran/trajecta/search"
)

// defaultReplicaSteps is the per-replica step budget applied to a global
// step when no WithReplicaSteps option is given.
const defaultReplicaSteps = 500

// cascadeInterval is how often ParallelTempering polls its own
// StopRequested flag to propagate an outer Stop into its replicas while
// they are running.
const cascadeInterval = 10 * time.Millisecond

// ReplicaFactory builds one replica bound to problem p, walking
// neighbourhood n at temperature t with its own independently seeded
// rng. The default is algorithms.MetropolisSearch.
type ReplicaFactory[S core.Solution[S], D any] func(p *problem.Problem[S, D], n core.Neighbourhood[S], t float64, rng *rand.Rand) (*search.Base[S, D], error)

// replicaCheckInterval keeps the per-replica stop-criterion checker tight
// enough that AddStopCriterion's MaxSteps budget halts a replica close to
// its configured step count rather than after a much coarser default
// polling period.
const replicaCheckInterval = time.Millisecond

func defaultReplicaFactory[S core.Solution[S], D any](p *problem.Problem[S, D], n core.Neighbourhood[S], t float64, rng *rand.Rand) (*search.Base[S, D], error) {
	return algorithms.MetropolisSearch[S, D](p, n, t, search.WithRNG[S, D](rng), search.WithCheckInterval[S, D](replicaCheckInterval))
}

// Option configures a ParallelTempering at construction time.
type Option[S core.Solution[S], D any] func(*config[S, D])

type config[S core.Solution[S], D any] struct {
	replicaSteps  int64
	factory       ReplicaFactory[S, D]
	searchOptions []search.Option[S, D]
}

// WithReplicaSteps overrides the default 500-step-per-global-step replica
// budget.
func WithReplicaSteps[S core.Solution[S], D any](n int64) Option[S, D] {
	return func(c *config[S, D]) { c.replicaSteps = n }
}

// WithReplicaFactory overrides how each replica is built.
func WithReplicaFactory[S core.Solution[S], D any](f ReplicaFactory[S, D]) Option[S, D] {
	return func(c *config[S, D]) { c.factory = f }
}

// WithOuterOption forwards a search.Option to the outer Base returned by
// ParallelTempering (a logger, a listener, or — most usefully — a
// search.WithStopCriterion bounding the number of global steps).
func WithOuterOption[S core.Solution[S], D any](o search.Option[S, D]) Option[S, D] {
	return func(c *config[S, D]) { c.searchOptions = append(c.searchOptions, o) }
}

// replicaTriple carries a replica's (solution, evaluation, validation)
// across global steps and through the swap phase without recomputation.
type replicaTriple[S core.Solution[S]] struct {
	sol S
	ev  eval.Evaluation
	val eval.Validation
}

// bestListener feeds a replica's new-best events into the parent Base
// under a shared mutex, per §4.8's "updates the parent's current-and-best
// under a global lock".
type bestListener[S core.Solution[S], D any] struct {
	search.BaseListener[S, D]
	mu    *sync.Mutex
	adopt func(sol S, ev eval.Evaluation, val eval.Validation)
}

func (l *bestListener[S, D]) NewBestSolution(_ *search.Base[S, D], sol S, ev eval.Evaluation, val eval.Validation) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.adopt(sol, ev, val)
}

// ParallelTempering builds a parallel-tempering engine over problem p and
// neighbourhood n, with replicaCount replicas laddered between tMin and
// tMax (0 < tMin < tMax, replicaCount >= 2). The returned Base's notion
// of one step is one global step: run every replica for its own budget,
// then perform one round of adjacent-pair swaps.
//
// If the caller seeds the returned Base with SetCurrentSolution before
// Start, every replica starts from a copy of that solution, cancelling
// each replica's own multi-start. Otherwise every replica starts from the
// same random solution problem.CreateRandom produces for the outer
// Base's own first step — a deliberate simplification of the unseeded
// case, where independently random per-replica starts would otherwise
// require plumbing a pre-Start hook into Base that nothing else needs.
func ParallelTempering[S core.Solution[S], D any](p *problem.Problem[S, D], n core.Neighbourhood[S], replicaCount int, tMin, tMax float64, opts ...Option[S, D]) (*search.Base[S, D], error) {
	if p == nil || n == nil {
		return nil, errs.NewConfigurationError("tempering.ParallelTempering", "problem and neighbourhood must not be nil", nil)
	}
	if replicaCount < 2 {
		return nil, errs.NewConfigurationError("tempering.ParallelTempering", "at least two replicas are required", nil)
	}
	if !(tMin > 0 && tMin < tMax) {
		return nil, errs.NewConfigurationError("tempering.ParallelTempering", "temperatures must satisfy 0 < Tmin < Tmax", nil)
	}

	cfg := &config[S, D]{replicaSteps: defaultReplicaSteps, factory: defaultReplicaFactory[S, D]}
	for _, o := range opts {
		o(cfg)
	}

	temps := make([]float64, replicaCount)
	for i := 0; i < replicaCount; i++ {
		temps[i] = tMin + float64(i)*(tMax-tMin)/float64(replicaCount-1)
	}

	var outer *search.Base[S, D]
	var mu sync.Mutex
	replicas := make([]*search.Base[S, D], replicaCount)
	triples := make([]*replicaTriple[S], replicaCount)
	seeded := false
	flipBase := 0

	buildReplicas := func(rng *rand.Rand) error {
		for i := 0; i < replicaCount; i++ {
			replicaRNG := rand.New(rand.NewSource(rng.Int63()))
			r, err := cfg.factory(p, n, temps[i], replicaRNG)
			if err != nil {
				return err
			}
			if err := r.AddStopCriterion(search.MaxSteps[S, D](cfg.replicaSteps)); err != nil {
				return err
			}
			if err := r.AddListener(&bestListener[S, D]{mu: &mu, adopt: func(sol S, ev eval.Evaluation, val eval.Validation) {
				outer.AdoptBest(sol, ev, val)
			}}); err != nil {
				return err
			}
			replicas[i] = r
		}
		return nil
	}

	step := func(b *search.Base[S, D]) (bool, error) {
		if !seeded {
			seeded = true
			if err := buildReplicas(b.RNG()); err != nil {
				return true, err
			}
			cur, ev, val, ok := b.CurrentSolution()
			if !ok {
				return true, nil
			}
			for i := range triples {
				triples[i] = &replicaTriple[S]{sol: cur.Copy(), ev: ev, val: val}
			}
		}

		cascadeDone := make(chan struct{})
		go func() {
			ticker := time.NewTicker(cascadeInterval)
			defer ticker.Stop()
			for {
				select {
				case <-cascadeDone:
					return
				case <-ticker.C:
					if b.StopRequested() {
						for _, r := range replicas {
							r.Stop()
						}
						return
					}
				}
			}
		}()

		g, _ := errgroup.WithContext(context.Background())
		for i, r := range replicas {
			i, r := i, r
			g.Go(func() error {
				if err := r.SeedSolution(triples[i].sol, triples[i].ev, triples[i].val); err != nil {
					return err
				}
				return r.Start()
			})
		}
		runErr := g.Wait()
		close(cascadeDone)
		if runErr != nil {
			return true, runErr
		}

		for i, r := range replicas {
			sol, ev, val, ok := r.CurrentSolution()
			if ok {
				triples[i] = &replicaTriple[S]{sol: sol, ev: ev, val: val}
			}
		}

		minimizing := p.IsMinimizing()
		for i := flipBase; i+1 < len(triples); i += 2 {
			left, right := triples[i], triples[i+1]
			delta := eval.Delta(right.ev, left.ev, minimizing)
			swap := delta >= 0
			if !swap {
				prob := math.Exp((1/temps[i] - 1/temps[i+1]) * delta)
				swap = b.RNG().Float64() < prob
			}
			if swap {
				triples[i], triples[i+1] = right, left
			}
		}
		if flipBase == 0 {
			flipBase = 1
		} else {
			flipBase = 0
		}

		return false, nil
	}

	var err error
	outer, err = search.NewBase[S, D](p, step, cfg.searchOptions...)
	if err != nil {
		return nil, err
	}
	return outer, nil
}

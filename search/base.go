package search

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/trajecta/core"
	"github.com/katalvlaran/trajecta/errs"
	"github.com/katalvlaran/trajecta/eval"
	"github.com/katalvlaran/trajecta/problem"
)

// StepFunc implements one algorithm's searchStep: given the shared Base,
// it draws and resolves a single move (typically through Base's accept,
// reject, isImprovement, and getBestMove helpers) and reports whether the
// algorithm has reached a natural stopping point (a local optimum, an
// exhausted neighbourhood, ...). A non-nil error aborts the run and is
// returned from Start, wrapped in an *errs.SearchException unless it is
// already one of the module's typed errors.
type StepFunc[S core.Solution[S], D any] func(b *Base[S, D]) (terminate bool, err error)

// Base implements the lifecycle, listener dispatch, best-solution
// accounting, and stop-criterion checking shared by every algorithm in
// package algorithms. Concrete algorithms are constructor functions that
// build a Base with the StepFunc that gives it meaning; see NewBase.
type Base[S core.Solution[S], D any] struct {
	id      uuid.UUID
	problem *problem.Problem[S, D]
	step    StepFunc[S, D]
	rng     *rand.Rand
	logger  Logger

	listeners     []Listener[S, D]
	stopCriteria  []StopCriterion[S, D]
	checkInterval time.Duration

	statusMu sync.Mutex
	status   Status

	stateMu     sync.RWMutex
	hasCurrent  bool
	current     S
	currentEval eval.Evaluation
	currentVal  eval.Validation
	hasBest     bool
	best        S
	bestEval    eval.Evaluation
	bestVal     eval.Validation
	pendingSeed *S
	pendingEval eval.Evaluation
	pendingVal  eval.Validation

	hasStepped          bool
	totalSteps          int64
	accepted            int64
	rejected            int64
	minStepTime         time.Duration
	maxStepTime         time.Duration
	startedAt           time.Time
	lastImprovementStep int64
	lastImprovementAt   time.Time
	hasLastDelta        bool
	lastDelta           float64

	stopRequested atomic.Bool
	checkerDone   chan struct{}
}

// NewBase constructs a Base bound to p and driven by step. Construction
// fails only if p or step is nil.
func NewBase[S core.Solution[S], D any](p *problem.Problem[S, D], step StepFunc[S, D], opts ...Option[S, D]) (*Base[S, D], error) {
	if p == nil {
		return nil, errs.NewConfigurationError("search.Base", "problem must not be nil", nil)
	}
	if step == nil {
		return nil, errs.NewConfigurationError("search.Base", "step function must not be nil", nil)
	}
	b := &Base[S, D]{
		id:                  uuid.New(),
		problem:             p,
		step:                step,
		rng:                 rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:              noopLogger{},
		checkInterval:       time.Second,
		status:              StatusIdle,
		totalSteps:          InvalidCount,
		lastImprovementStep: InvalidCount,
	}
	for _, o := range opts {
		o(b)
	}
	return b, nil
}

// ID returns this Search's stable identity, usable to correlate log
// lines and listener callbacks across concurrently running replicas.
func (b *Base[S, D]) ID() uuid.UUID { return b.id }

// RNG returns the Search's owned random generator.
func (b *Base[S, D]) RNG() *rand.Rand { return b.rng }

// Problem returns the bound problem instance.
func (b *Base[S, D]) Problem() *problem.Problem[S, D] { return b.problem }

// Status returns the current lifecycle status.
func (b *Base[S, D]) Status() Status {
	b.statusMu.Lock()
	defer b.statusMu.Unlock()
	return b.status
}

func (b *Base[S, D]) transition(next Status) error {
	b.statusMu.Lock()
	defer b.statusMu.Unlock()
	if !canTransition(b.status, next) {
		return errs.NewStatusError("transition to "+next.String(), next.String(), b.status.String())
	}
	b.status = next
	return nil
}

func (b *Base[S, D]) forceStatus(next Status) {
	b.statusMu.Lock()
	defer b.statusMu.Unlock()
	b.status = next
}

func (b *Base[S, D]) requireStatus(op string, required Status) error {
	b.statusMu.Lock()
	defer b.statusMu.Unlock()
	if b.status != required {
		return errs.NewStatusError(op, required.String(), b.status.String())
	}
	return nil
}

// SetCurrentSolution seeds the Search's starting point. It requires the
// Search to be IDLE; a copy of s is retained, so mutating the caller's s
// afterwards has no effect on the run.
func (b *Base[S, D]) SetCurrentSolution(s S) error {
	if err := b.requireStatus("SetCurrentSolution", StatusIdle); err != nil {
		return err
	}
	b.stateMu.Lock()
	defer b.stateMu.Unlock()
	cp := s.Copy()
	b.pendingSeed = &cp
	b.pendingEval = nil
	b.pendingVal = nil
	return nil
}

// SeedSolution installs s as the pending seed together with its already
// computed evaluation and validation, so the next Start skips
// Problem.Evaluate/Problem.Validate for it entirely. It requires the
// Search to be IDLE, exactly like SetCurrentSolution.
//
// ParallelTempering's swap phase uses this to exchange (solution,
// evaluation, validation) triples between replicas without recomputing
// either: a swapped-in solution was already evaluated inside its
// originating replica.
func (b *Base[S, D]) SeedSolution(s S, ev eval.Evaluation, val eval.Validation) error {
	if err := b.requireStatus("SeedSolution", StatusIdle); err != nil {
		return err
	}
	b.stateMu.Lock()
	defer b.stateMu.Unlock()
	cp := s.Copy()
	b.pendingSeed = &cp
	b.pendingEval = ev
	b.pendingVal = val
	return nil
}

// AddListener registers an additional Listener while the Search is IDLE,
// after construction. ParallelTempering uses this to wire its per-replica
// best-propagation hook onto replicas built by a caller-supplied factory,
// which WithListener (construction-time only) cannot reach.
func (b *Base[S, D]) AddListener(l Listener[S, D]) error {
	if err := b.requireStatus("AddListener", StatusIdle); err != nil {
		return err
	}
	b.listeners = append(b.listeners, l)
	return nil
}

// AddStopCriterion registers an additional StopCriterion while the
// Search is IDLE, after construction. ParallelTempering uses this to
// enforce its own per-replica step budget regardless of how the replica
// itself was built (a user-supplied replica factory may not know about
// that budget).
func (b *Base[S, D]) AddStopCriterion(c StopCriterion[S, D]) error {
	if err := b.requireStatus("AddStopCriterion", StatusIdle); err != nil {
		return err
	}
	b.stopCriteria = append(b.stopCriteria, c)
	return nil
}

// AdoptBest installs sol/ev/val as the current solution and, if val
// passes and ev beats the best-so-far (or there is none yet), as the best
// solution too, skipping Problem.Evaluate/Problem.Validate. It is safe to
// call while
// the Search is RUNNING (unlike SetCurrentSolution/SeedSolution).
// ParallelTempering's per-replica listener uses this to propagate a
// replica's new best into the parent under the parent's own state lock.
func (b *Base[S, D]) AdoptBest(sol S, ev eval.Evaluation, val eval.Validation) {
	b.stateMu.Lock()
	b.current = sol.Copy()
	b.currentEval = ev
	b.currentVal = val
	improved := !b.hasBest || (val.Passed() && eval.Better(ev, b.bestEval, b.problem.IsMinimizing()))
	if val.Passed() && improved {
		b.installBestLocked(b.current, ev, val)
	}
	s, e, v := b.current.Copy(), b.currentEval, b.currentVal
	shouldFire := val.Passed() && improved
	b.stateMu.Unlock()

	b.notify(func(l Listener[S, D]) { l.NewCurrentSolution(b, s, e, v) })
	if shouldFire {
		b.notify(func(l Listener[S, D]) { l.NewBestSolution(b, s, e, v) })
	}
}

// CurrentSolution returns a copy of the current solution together with
// its evaluation and validation, and whether one has been installed yet.
func (b *Base[S, D]) CurrentSolution() (sol S, ev eval.Evaluation, val eval.Validation, ok bool) {
	b.stateMu.RLock()
	defer b.stateMu.RUnlock()
	if !b.hasCurrent {
		return sol, nil, nil, false
	}
	return b.current.Copy(), b.currentEval, b.currentVal, true
}

// BestSolution returns the evaluation and validation of the best-so-far
// solution, and whether one has been found yet. Use BestSolutionCopy for
// the solution itself.
func (b *Base[S, D]) BestSolution() (ev eval.Evaluation, val eval.Validation, ok bool) {
	b.stateMu.RLock()
	defer b.stateMu.RUnlock()
	if !b.hasBest {
		return nil, nil, false
	}
	return b.bestEval, b.bestVal, true
}

// BestSolutionCopy returns a copy of the best-so-far solution itself.
func (b *Base[S, D]) BestSolutionCopy() (S, bool) {
	b.stateMu.RLock()
	defer b.stateMu.RUnlock()
	if !b.hasBest {
		var zero S
		return zero, false
	}
	return b.best.Copy(), true
}

// Runtime returns a point-in-time snapshot of the step and timing
// counters.
func (b *Base[S, D]) Runtime() Runtime {
	b.stateMu.RLock()
	defer b.stateMu.RUnlock()
	rt := Runtime{
		TotalSteps:    InvalidCount,
		AcceptedMoves: b.accepted,
		RejectedMoves: b.rejected,
		MinStepTime:   InvalidDuration,
		MaxStepTime:   InvalidDuration,
		TotalRuntime:  InvalidDuration,
	}
	if !b.startedAt.IsZero() {
		rt.TotalRuntime = time.Since(b.startedAt)
	}
	if !b.hasStepped {
		rt.StepsSinceImprovement = InvalidCount
		rt.TimeSinceImprovement = InvalidDuration
		return rt
	}
	rt.TotalSteps = b.totalSteps
	rt.MinStepTime = b.minStepTime
	rt.MaxStepTime = b.maxStepTime
	if b.lastImprovementStep == InvalidCount {
		rt.StepsSinceImprovement = InvalidCount
		rt.TimeSinceImprovement = InvalidDuration
	} else {
		rt.StepsSinceImprovement = b.totalSteps - b.lastImprovementStep
		rt.TimeSinceImprovement = time.Since(b.lastImprovementAt)
	}
	return rt
}

func (b *Base[S, D]) lastAcceptedDelta() (float64, bool) {
	b.stateMu.RLock()
	defer b.stateMu.RUnlock()
	return b.lastDelta, b.hasLastDelta
}

// Stop requests cooperative termination. It is idempotent and safe to
// call from any goroutine; the Search is guaranteed to stop before its
// next searchStep begins.
func (b *Base[S, D]) Stop() {
	b.stopRequested.Store(true)
}

// StopRequested reports whether Stop has been called since the current
// (or most recent) run started; the flag is cleared only by the next
// Start. Composite algorithms (piped,
// parallel) poll this to cascade an outer Stop into the sub-searches
// they drive.
func (b *Base[S, D]) StopRequested() bool {
	return b.stopRequested.Load()
}

// Dispose tears down the Search. It is only valid from a non-running
// status and is itself terminal: a disposed Search can never restart.
func (b *Base[S, D]) Dispose() error {
	return b.transition(StatusDisposed)
}

func (b *Base[S, D]) notify(fn func(Listener[S, D])) {
	for _, l := range b.listeners {
		fn(l)
	}
}

func (b *Base[S, D]) checkStopCriteria() bool {
	if len(b.stopCriteria) == 0 {
		return false
	}
	for _, c := range b.stopCriteria {
		if c.ShouldStop(b) {
			return true
		}
	}
	return false
}

func (b *Base[S, D]) runChecker() {
	ticker := time.NewTicker(b.checkInterval)
	defer ticker.Stop()
	for {
		select {
		case <-b.checkerDone:
			return
		case <-ticker.C:
			b.notify(func(l Listener[S, D]) { l.StopCriterionChecked(b) })
			if b.checkStopCriteria() {
				b.Stop()
			}
		}
	}
}

// Start drives one full run: Initializing (install the starting
// solution, fire SearchStarted), then repeatedly poll the cooperative
// stop flag and, if unset, execute one step, until the StepFunc reports
// termination, an error occurs, or Stop is called. It then transitions
// through Terminating back to Idle and fires SearchStopped.
//
// Start is not reentrant: call it on an Idle Search and wait for it to
// return (or call Stop concurrently) before calling it again.
func (b *Base[S, D]) Start() error {
	if err := b.transition(StatusInitializing); err != nil {
		return err
	}
	if err := b.init(); err != nil {
		b.forceStatus(StatusIdle)
		return err
	}

	b.stopRequested.Store(false)
	b.checkerDone = make(chan struct{})
	if len(b.stopCriteria) > 0 {
		go b.runChecker()
	}

	if err := b.transition(StatusRunning); err != nil {
		close(b.checkerDone)
		return err
	}
	b.notify(func(l Listener[S, D]) { l.SearchStarted(b) })
	b.logger.Info("search started", map[string]any{"id": b.id.String()})

	runErr := b.loop()

	close(b.checkerDone)
	_ = b.transition(StatusTerminating)
	b.notify(func(l Listener[S, D]) { l.SearchStopped(b) })
	b.logger.Info("search stopped", map[string]any{"id": b.id.String()})
	_ = b.transition(StatusIdle)

	return runErr
}

func (b *Base[S, D]) init() error {
	b.stateMu.Lock()
	defer b.stateMu.Unlock()

	b.hasStepped = false
	b.totalSteps = 0
	b.accepted = 0
	b.rejected = 0
	b.lastImprovementStep = InvalidCount
	b.hasBest = false
	b.hasLastDelta = false
	b.startedAt = time.Now()

	var start S
	var startEval eval.Evaluation
	var startVal eval.Validation
	if b.pendingSeed != nil {
		start = *b.pendingSeed
		startEval = b.pendingEval
		startVal = b.pendingVal
		b.pendingSeed = nil
		b.pendingEval = nil
		b.pendingVal = nil
	} else {
		start = b.problem.CreateRandom(b.rng)
	}
	b.current = start
	if startVal != nil {
		b.currentVal = startVal
	} else {
		b.currentVal = b.problem.Validate(b.current)
	}
	if startEval != nil {
		b.currentEval = startEval
	} else {
		b.currentEval = b.problem.Evaluate(b.current)
	}
	b.hasCurrent = true

	if b.currentVal.Passed() {
		b.installBestLocked(b.current, b.currentEval, b.currentVal)
	}
	return nil
}

func (b *Base[S, D]) loop() error {
	for {
		if b.stopRequested.Load() {
			return nil
		}

		stepStart := time.Now()
		terminate, err := b.step(b)
		elapsed := time.Since(stepStart)

		b.stateMu.Lock()
		firstStep := !b.hasStepped
		b.hasStepped = true
		b.totalSteps++
		if firstStep || elapsed < b.minStepTime {
			b.minStepTime = elapsed
		}
		if elapsed > b.maxStepTime {
			b.maxStepTime = elapsed
		}
		stepsSoFar := b.totalSteps
		b.stateMu.Unlock()

		b.notify(func(l Listener[S, D]) { l.StepCompleted(b, stepsSoFar) })

		if err != nil {
			b.logger.Error("search step failed", err, map[string]any{"id": b.id.String(), "step": stepsSoFar})
			return wrapSearchError(err)
		}
		if terminate {
			return nil
		}
	}
}

func wrapSearchError(err error) error {
	switch err.(type) {
	case *errs.IncompatibleDelta, *errs.SearchException, *errs.StatusError, *errs.SolutionModificationError, *errs.ConfigurationError:
		return err
	default:
		return errs.NewSearchException("search step failed", err)
	}
}

func (b *Base[S, D]) installBestLocked(s S, ev eval.Evaluation, val eval.Validation) {
	b.best = s.Copy()
	b.bestEval = ev
	b.bestVal = val
	b.hasBest = true
	b.lastImprovementStep = b.totalSteps
	b.lastImprovementAt = time.Now()
}

func (b *Base[S, D]) maybeUpdateBest() {
	b.stateMu.Lock()
	improved := !b.hasBest || (b.currentVal.Passed() && eval.Better(b.currentEval, b.bestEval, b.problem.IsMinimizing()))
	if b.currentVal.Passed() && improved {
		b.installBestLocked(b.current, b.currentEval, b.currentVal)
	}
	sol, ev, val := b.current.Copy(), b.currentEval, b.currentVal
	shouldFireBest := b.currentVal.Passed() && improved
	b.stateMu.Unlock()

	if shouldFireBest {
		b.notify(func(l Listener[S, D]) { l.NewBestSolution(b, sol, ev, val) })
	}
}

// Accept validates move via delta; if the resulting neighbour is
// invalid, the move is rejected instead. Otherwise it evaluates the
// neighbour via delta, applies the move to the current solution,
// installs the new evaluation/validation, updates best-so-far if
// improved, and increments the accepted counter.
func (b *Base[S, D]) Accept(move core.Move[S]) (bool, error) {
	b.stateMu.RLock()
	cur := b.current
	curEval := b.currentEval
	curVal := b.currentVal
	b.stateMu.RUnlock()

	newVal, err := b.problem.ValidateDelta(move, cur, curVal)
	if err != nil {
		return false, err
	}
	if !newVal.Passed() {
		b.Reject(move)
		return false, nil
	}
	newEval, err := b.problem.EvaluateDelta(move, cur, curEval)
	if err != nil {
		return false, err
	}

	b.stateMu.Lock()
	delta := eval.Delta(newEval, curEval, b.problem.IsMinimizing())
	move.Apply(b.current)
	b.currentEval = newEval
	b.currentVal = newVal
	b.accepted++
	b.lastDelta = delta
	b.hasLastDelta = true
	sol := b.current.Copy()
	b.stateMu.Unlock()

	b.notify(func(l Listener[S, D]) { l.NewCurrentSolution(b, sol, newEval, newVal) })
	b.maybeUpdateBest()
	return true, nil
}

// Reject increments the rejected counter without touching any state.
func (b *Base[S, D]) Reject(core.Move[S]) {
	b.stateMu.Lock()
	b.rejected++
	b.stateMu.Unlock()
}

// IsImprovement reports whether move, applied to the current solution,
// yields a strict improvement. A move that produces an invalid neighbour
// is never an improvement. If the current solution is itself invalid,
// any move yielding a valid neighbour counts as an improvement, so a
// search can escape an invalid start.
func (b *Base[S, D]) IsImprovement(move core.Move[S]) (bool, error) {
	b.stateMu.RLock()
	cur := b.current
	curEval := b.currentEval
	curVal := b.currentVal
	b.stateMu.RUnlock()

	newVal, err := b.problem.ValidateDelta(move, cur, curVal)
	if err != nil {
		return false, err
	}
	if !newVal.Passed() {
		return false, nil
	}
	if !curVal.Passed() {
		return true, nil
	}
	newEval, err := b.problem.EvaluateDelta(move, cur, curEval)
	if err != nil {
		return false, err
	}
	return eval.Delta(newEval, curEval, b.problem.IsMinimizing()) > 0, nil
}

// candidateResult is the delta outcome for one candidate move considered
// by GetBestMove.
type candidateResult[S any] struct {
	move  core.Move[S]
	delta float64
}

// GetBestMove iterates moves (skipping any rejected by filter, if
// non-nil) and keeps the best valid move by delta evaluation. If
// acceptFirstImprovement is set, it returns as soon as a strictly
// improving move is found. If requireImprovement is set and no improving
// move exists among the valid candidates, it returns nil. Otherwise it
// returns the best valid candidate (which may be non-improving), or nil
// if no candidate validated.
func (b *Base[S, D]) GetBestMove(moves []core.Move[S], requireImprovement, acceptFirstImprovement bool, filter func(core.Move[S]) bool) (core.Move[S], error) {
	b.stateMu.RLock()
	cur := b.current
	curEval := b.currentEval
	curVal := b.currentVal
	b.stateMu.RUnlock()

	var best *candidateResult[S]
	for _, m := range moves {
		if filter != nil && !filter(m) {
			continue
		}
		newVal, err := b.problem.ValidateDelta(m, cur, curVal)
		if err != nil {
			return nil, err
		}
		if !newVal.Passed() {
			continue
		}
		var delta float64
		if !curVal.Passed() {
			delta = 1
		} else {
			newEval, err := b.problem.EvaluateDelta(m, cur, curEval)
			if err != nil {
				return nil, err
			}
			delta = eval.Delta(newEval, curEval, b.problem.IsMinimizing())
		}
		if best == nil || delta > best.delta {
			best = &candidateResult[S]{move: m, delta: delta}
		}
		if acceptFirstImprovement && delta > 0 {
			return m, nil
		}
	}
	if best == nil {
		return nil, nil
	}
	if requireImprovement && best.delta <= 0 {
		return nil, nil
	}
	return best.move, nil
}

// UpdateCurrentSolution replaces the current solution with a copy of s,
// computes its full evaluation and validation, notifies listeners, and
// updates best-so-far if s is valid and improves on it.
func (b *Base[S, D]) UpdateCurrentSolution(s S) {
	b.stateMu.Lock()
	b.current = s.Copy()
	b.currentVal = b.problem.Validate(b.current)
	b.currentEval = b.problem.Evaluate(b.current)
	sol, ev, val := b.current.Copy(), b.currentEval, b.currentVal
	b.stateMu.Unlock()

	b.notify(func(l Listener[S, D]) { l.NewCurrentSolution(b, sol, ev, val) })
	b.maybeUpdateBest()
}

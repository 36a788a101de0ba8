package search

import (
	"math/rand"
	"time"
)

// Option configures a Base at construction time.
type Option[S any, D any] func(*Base[S, D])

// WithRNG overrides the Search's default RNG. Every Search owns a
// dedicated *rand.Rand; sharing one across concurrent Searches is the
// caller's responsibility to avoid (ParallelTempering seeds each replica
// independently for exactly this reason).
func WithRNG[S any, D any](rng *rand.Rand) Option[S, D] {
	return func(b *Base[S, D]) { b.rng = rng }
}

// WithLogger installs a diagnostic Logger. The default is a no-op.
func WithLogger[S any, D any](logger Logger) Option[S, D] {
	return func(b *Base[S, D]) { b.logger = logger }
}

// WithListener registers a Listener. Multiple listeners may be
// registered; each is notified in registration order.
func WithListener[S any, D any](l Listener[S, D]) Option[S, D] {
	return func(b *Base[S, D]) { b.listeners = append(b.listeners, l) }
}

// WithStopCriterion registers a StopCriterion polled by the background
// checker. Multiple criteria are combined with AnyOf semantics.
func WithStopCriterion[S any, D any](c StopCriterion[S, D]) Option[S, D] {
	return func(b *Base[S, D]) { b.stopCriteria = append(b.stopCriteria, c) }
}

// WithCheckInterval overrides the default 1s stop-criterion polling
// period.
func WithCheckInterval[S any, D any](d time.Duration) Option[S, D] {
	return func(b *Base[S, D]) { b.checkInterval = d }
}

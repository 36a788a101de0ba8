package search

import "time"

// InvalidCount is the sentinel returned by step counters before a Search
// has completed its first step. The accepted/rejected move counts are
// plain counts and start at zero.
const InvalidCount int64 = -1

// InvalidDuration is the sentinel returned by duration-valued runtime
// fields before a Search has completed its first step.
const InvalidDuration time.Duration = -1

// Runtime is a point-in-time snapshot of a Search's step and timing
// counters, returned by Base.Runtime instead of a pile of getters.
type Runtime struct {
	TotalSteps            int64
	AcceptedMoves         int64
	RejectedMoves         int64
	MinStepTime           time.Duration
	MaxStepTime           time.Duration
	TotalRuntime          time.Duration
	StepsSinceImprovement int64
	TimeSinceImprovement  time.Duration
}

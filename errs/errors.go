package errs

import "fmt"

// ConfigurationError reports a programmer-supplied construction argument
// that is missing, nil, or out of range (a missing Objective, Tmin >=
// Tmax, a non-positive replica count, min > max subset size, ...). It is
// always reported at construction time; the offending object is never
// created.
type ConfigurationError struct {
	Component string
	Reason    string
	Err       error
}

// NewConfigurationError builds a ConfigurationError for the named
// component (typically a constructor's package.Type) with a human
// readable reason. err may be nil.
func NewConfigurationError(component, reason string, err error) *ConfigurationError {
	return &ConfigurationError{Component: component, Reason: reason, Err: err}
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: configuration error: %s: %v", e.Component, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: configuration error: %s", e.Component, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// SolutionModificationError reports that an operation on a Solution
// referred to an identity that does not exist in its universe (selecting
// an unknown subset ID, for instance). It is fatal for the attempted
// operation; the Solution is left unchanged.
type SolutionModificationError struct {
	Identity any
	Reason   string
}

// NewSolutionModificationError builds a SolutionModificationError for
// the given identity and reason.
func NewSolutionModificationError(identity any, reason string) *SolutionModificationError {
	return &SolutionModificationError{Identity: identity, Reason: reason}
}

func (e *SolutionModificationError) Error() string {
	return fmt.Sprintf("solution modification error: %s (identity=%v)", e.Reason, e.Identity)
}

// IncompatibleDelta reports that a Move's concrete type was not
// recognised by a delta Objective/Constraint evaluator. It is fatal to
// the current search step and is never silently downgraded to a full
// recomputation.
type IncompatibleDelta struct {
	Evaluator string
	Move      any
}

// NewIncompatibleDelta builds an IncompatibleDelta for the given
// evaluator/constraint name and the offending move value.
func NewIncompatibleDelta(evaluator string, move any) *IncompatibleDelta {
	return &IncompatibleDelta{Evaluator: evaluator, Move: move}
}

func (e *IncompatibleDelta) Error() string {
	return fmt.Sprintf("incompatible delta: %s does not recognise move of type %T", e.Evaluator, e.Move)
}

// SearchException reports an internal invariant violation inside a
// running search, including executor failures inside ParallelTempering
// or BasicParallelSearch. It is surfaced from Search.Start().
type SearchException struct {
	Reason string
	Err    error
}

// NewSearchException builds a SearchException wrapping cause (which may
// be nil).
func NewSearchException(reason string, cause error) *SearchException {
	return &SearchException{Reason: reason, Err: cause}
}

func (e *SearchException) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("search exception: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("search exception: %s", e.Reason)
}

func (e *SearchException) Unwrap() error { return e.Err }

// StatusError reports that an API call requires the search to be in a
// particular lifecycle status (e.g. SetCurrentSolution during RUNNING).
// It is rejected without side effects.
type StatusError struct {
	Operation string
	Required  string
	Actual    string
}

// NewStatusError builds a StatusError describing the attempted
// operation, the status it requires, and the status actually observed.
func NewStatusError(operation, required, actual string) *StatusError {
	return &StatusError{Operation: operation, Required: required, Actual: actual}
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status error: %s requires status %s, got %s", e.Operation, e.Required, e.Actual)
}

package eval

import "fmt"

// Validation answers the single question "did the solution satisfy this
// (aggregate of) constraint(s)?".
type Validation interface {
	fmt.Stringer

	// Passed reports whether the validated solution is feasible.
	Passed() bool
}

// SimpleValidation is a constant pass/fail outcome, used when a Problem
// has zero or exactly one mandatory constraint and no aggregation is
// needed.
type SimpleValidation bool

// PassedValidation and FailedValidation are the two SimpleValidation
// instances; prefer these named values over bare bool conversions.
const (
	PassedValidation SimpleValidation = true
	FailedValidation SimpleValidation = false
)

// Passed implements Validation.
func (v SimpleValidation) Passed() bool { return bool(v) }

// String implements fmt.Stringer.
func (v SimpleValidation) String() string {
	if v {
		return "PASSED"
	}
	return "FAILED"
}

// ConstraintID identifies a constraint within an aggregate Validation or
// Evaluation. Implementations are expected to use the constraint value
// itself (a pointer, in practice) as its own identity, so ConstraintID
// must be comparable — it is used as a map key.
type ConstraintID = any

// UnanimousValidation aggregates the sub-validation of each of several
// mandatory constraints. It passes if and only if every recorded
// sub-validation passed. The map of recorded sub-validations may be
// partial: Problem.Validate short-circuits on the first failing
// constraint and never records the constraints evaluated after it.
type UnanimousValidation struct {
	order   []ConstraintID
	results map[ConstraintID]Validation
}

// NewUnanimousValidation returns an empty aggregate, ready for Record
// calls during short-circuiting iteration over a constraint list.
func NewUnanimousValidation() *UnanimousValidation {
	return &UnanimousValidation{results: make(map[ConstraintID]Validation)}
}

// Record stores the sub-validation computed for constraint id. Calling
// Record twice for the same id overwrites the prior entry but does not
// duplicate it in iteration order.
func (u *UnanimousValidation) Record(id ConstraintID, v Validation) {
	if _, exists := u.results[id]; !exists {
		u.order = append(u.order, id)
	}
	u.results[id] = v
}

// Get returns the sub-validation recorded for id, if any. A missing
// entry means the constraint was never reached because an earlier
// constraint in the same Validate call already failed.
func (u *UnanimousValidation) Get(id ConstraintID) (Validation, bool) {
	v, ok := u.results[id]
	return v, ok
}

// Passed reports whether every recorded sub-validation passed. An
// aggregate with zero recorded entries passes vacuously — callers build
// UnanimousValidation incrementally and stop recording as soon as one
// sub-validation fails, at which point Passed already reports false
// because that failing entry was recorded before the short-circuit.
func (u *UnanimousValidation) Passed() bool {
	for _, id := range u.order {
		if !u.results[id].Passed() {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (u *UnanimousValidation) String() string {
	return fmt.Sprintf("UnanimousValidation{passed=%t, constraints=%d}", u.Passed(), len(u.order))
}

// PenalizingValidation strengthens Validation with a non-negative
// penalty magnitude, returned by PenalizingConstraint implementations so
// their violation can be folded into a PenalizedEvaluation instead of
// invalidating the solution outright.
type PenalizingValidation struct {
	passed  bool
	penalty float64
}

// NewPenalizingValidation constructs a PenalizingValidation. penalty must
// be non-negative; callers that violate this invariant get a penalty of
// zero instead of a negative contribution to the evaluated score.
func NewPenalizingValidation(passed bool, penalty float64) PenalizingValidation {
	if penalty < 0 {
		penalty = 0
	}
	return PenalizingValidation{passed: passed, penalty: penalty}
}

// Passed implements Validation.
func (p PenalizingValidation) Passed() bool { return p.passed }

// Penalty returns the non-negative penalty magnitude contributed by this
// sub-validation, regardless of whether it passed (a passing penalizing
// constraint conventionally reports a zero penalty, but this is a
// convention the constraint implementation must uphold, not something
// this type enforces).
func (p PenalizingValidation) Penalty() float64 { return p.penalty }

// String implements fmt.Stringer.
func (p PenalizingValidation) String() string {
	return fmt.Sprintf("PenalizingValidation{passed=%t, penalty=%g}", p.passed, p.penalty)
}

// SubsetValidation pairs the size-feasibility of a subset solution with
// the validation of its other (non-size) constraints. The aggregate
// passes only if both do.
type SubsetValidation struct {
	SizeValid            bool
	ConstraintValidation Validation
}

// Passed implements Validation. A nil ConstraintValidation is treated as
// passing, so a SubsetValidation built from size-checking alone still
// behaves correctly.
func (s SubsetValidation) Passed() bool {
	if !s.SizeValid {
		return false
	}
	return s.ConstraintValidation == nil || s.ConstraintValidation.Passed()
}

// String implements fmt.Stringer.
func (s SubsetValidation) String() string {
	return fmt.Sprintf("SubsetValidation{sizeValid=%t, passed=%t}", s.SizeValid, s.Passed())
}

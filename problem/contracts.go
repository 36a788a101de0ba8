package problem

import (
	"math/rand"

	"github.com/katalvlaran/trajecta/core"
	"github.com/katalvlaran/trajecta/eval"
)

// Objective computes a numeric Evaluation for a solution against problem
// Data, and carries a stable minimise/maximise orientation.
//
// EvaluateDelta lets an implementation avoid a full recomputation when it
// already holds the previous evaluation and the move about to be
// applied; ApplyEvaluateUndo provides the semantically-correct but slow
// apply/evaluate/undo fallback for objectives that have not written a
// true delta yet.
type Objective[S any, D any] interface {
	// Evaluate computes the full evaluation of s against data.
	Evaluate(s S, data D) eval.Evaluation

	// EvaluateDelta computes the evaluation of the solution obtained by
	// applying move to curSol, given curSol's own evaluation curEval.
	// Implementations that do not recognise move's concrete type must
	// return an *errs.IncompatibleDelta rather than guessing.
	EvaluateDelta(move core.Move[S], curSol S, curEval eval.Evaluation, data D) (eval.Evaluation, error)

	// IsMinimizing reports this objective's fixed orientation.
	IsMinimizing() bool
}

// ApplyEvaluateUndo is the objective-agnostic default delta
// implementation: apply the move, evaluate the mutated solution, then
// undo the move. It is correct for any Objective but forgoes the
// performance benefit a true delta gives; overriding EvaluateDelta with
// real incremental logic is strongly preferred for hot inner loops, and
// this helper exists so that override is optional rather than mandatory.
func ApplyEvaluateUndo[S any, D any](o Objective[S, D], move core.Move[S], curSol S, data D) eval.Evaluation {
	move.Apply(curSol)
	result := o.Evaluate(curSol, data)
	move.Undo(curSol)
	return result
}

// Constraint computes a Validation for a solution against problem Data.
// ValidateDelta mirrors Objective.EvaluateDelta.
type Constraint[S any, D any] interface {
	// Validate computes the full validation of s against data.
	Validate(s S, data D) eval.Validation

	// ValidateDelta computes the validation of the solution obtained by
	// applying move to curSol, given curSol's own validation curVal.
	// Implementations that do not recognise move's concrete type must
	// return an *errs.IncompatibleDelta.
	ValidateDelta(move core.Move[S], curSol S, curVal eval.Validation, data D) (eval.Validation, error)
}

// ApplyValidateUndo is the constraint-agnostic default delta
// implementation, mirroring ApplyEvaluateUndo.
func ApplyValidateUndo[S any, D any](c Constraint[S, D], move core.Move[S], curSol S, data D) eval.Validation {
	move.Apply(curSol)
	result := c.Validate(curSol, data)
	move.Undo(curSol)
	return result
}

// PenalizingConstraint strengthens Constraint's return type to
// PenalizingValidation, so its violation can be folded into a
// PenalizedEvaluation's score rather than invalidating the solution. It
// embeds Constraint: every PenalizingConstraint is usable anywhere a
// plain Constraint is expected (e.g. Problem.ViolatedConstraints), with
// Validate typically implemented as ValidatePenalizing(s, data) upcast
// to eval.Validation, since PenalizingValidation already satisfies it.
type PenalizingConstraint[S any, D any] interface {
	Constraint[S, D]

	// ValidatePenalizing computes the full penalizing validation of s.
	ValidatePenalizing(s S, data D) eval.PenalizingValidation

	// ValidatePenalizingDelta mirrors Constraint.ValidateDelta.
	ValidatePenalizingDelta(move core.Move[S], curSol S, curVal eval.PenalizingValidation, data D) (eval.PenalizingValidation, error)
}

// ApplyValidatePenalizingUndo is the penalizing-constraint-agnostic
// default delta implementation.
func ApplyValidatePenalizingUndo[S any, D any](c PenalizingConstraint[S, D], move core.Move[S], curSol S, data D) eval.PenalizingValidation {
	move.Apply(curSol)
	result := c.ValidatePenalizing(curSol, data)
	move.Undo(curSol)
	return result
}

// RandomSolutionGenerator produces independent random starting
// solutions: no two calls may share mutable state, even when called
// repeatedly from the same rng.
type RandomSolutionGenerator[S any, D any] interface {
	Create(rng *rand.Rand, data D) S
}

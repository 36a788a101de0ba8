package problem

import (
	"math/rand"

	"github.com/katalvlaran/trajecta/core"
	"github.com/katalvlaran/trajecta/errs"
	"github.com/katalvlaran/trajecta/eval"
)

// Problem composes problem Data with an Objective, mandatory and
// penalizing Constraint lists, and a RandomSolutionGenerator, and
// answers every query a search algorithm needs about a solution or a
// prospective move.
//
// A zero-value Problem is not usable; construct one with New.
type Problem[S any, D any] struct {
	data       D
	objective  Objective[S, D]
	mandatory  []Constraint[S, D]
	penalizing []PenalizingConstraint[S, D]
	generator  RandomSolutionGenerator[S, D]
}

// New constructs a Problem. objective and generator are required; a nil
// value for either is a ConfigurationError reported here, at
// construction, rather than surfacing later as a nil-pointer panic deep
// inside a search loop. mandatory and penalizing may be nil or empty.
func New[S any, D any](
	data D,
	objective Objective[S, D],
	generator RandomSolutionGenerator[S, D],
	mandatory []Constraint[S, D],
	penalizing []PenalizingConstraint[S, D],
) (*Problem[S, D], error) {
	if objective == nil {
		return nil, errs.NewConfigurationError("problem.Problem", "objective must not be nil", nil)
	}
	if generator == nil {
		return nil, errs.NewConfigurationError("problem.Problem", "random solution generator must not be nil", nil)
	}
	return &Problem[S, D]{
		data:       data,
		objective:  objective,
		mandatory:  append([]Constraint[S, D](nil), mandatory...),
		penalizing: append([]PenalizingConstraint[S, D](nil), penalizing...),
		generator:  generator,
	}, nil
}

// Data returns the problem instance data threaded through every
// Objective/Constraint call.
func (p *Problem[S, D]) Data() D { return p.data }

// IsMinimizing delegates to the objective's fixed orientation.
func (p *Problem[S, D]) IsMinimizing() bool { return p.objective.IsMinimizing() }

// CreateRandom delegates to the configured RandomSolutionGenerator.
func (p *Problem[S, D]) CreateRandom(rng *rand.Rand) S {
	return p.generator.Create(rng, p.data)
}

// Validate computes the full Validation of s against every mandatory
// constraint.
//
//   - Zero mandatory constraints: the constant PassedValidation.
//   - Exactly one: that constraint's Validate result, unwrapped.
//   - More than one: a *eval.UnanimousValidation built by iterating the
//     mandatory list in order and recording each sub-validation,
//     short-circuiting (stopping iteration) on the first failure.
func (p *Problem[S, D]) Validate(s S) eval.Validation {
	switch len(p.mandatory) {
	case 0:
		return eval.PassedValidation
	case 1:
		return p.mandatory[0].Validate(s, p.data)
	default:
		agg := eval.NewUnanimousValidation()
		for _, c := range p.mandatory {
			v := c.Validate(s, p.data)
			agg.Record(c, v)
			if !v.Passed() {
				break
			}
		}
		return agg
	}
}

// ValidateDelta computes the Validation of the solution obtained by
// applying move to curSol, given curSol's current Validation curVal.
//
// In the aggregate (len(mandatory) > 1) case, for each mandatory
// constraint c: if curVal already recorded c's prior sub-validation
// (eval.UnanimousValidation.Get), that recorded value is reused as the
// "prior validation" fed into c's delta method; otherwise c's prior
// sub-validation was never computed because an earlier constraint already
// failed curVal, so it is first recomputed in full against curSol before
// the delta call. Iteration short-circuits on the first failing
// constraint exactly as Validate does.
func (p *Problem[S, D]) ValidateDelta(move core.Move[S], curSol S, curVal eval.Validation) (eval.Validation, error) {
	switch len(p.mandatory) {
	case 0:
		return eval.PassedValidation, nil
	case 1:
		return p.mandatory[0].ValidateDelta(move, curSol, curVal, p.data)
	default:
		prevAgg, _ := curVal.(*eval.UnanimousValidation)
		agg := eval.NewUnanimousValidation()
		for _, c := range p.mandatory {
			prior, ok := priorSubValidation(prevAgg, c)
			if !ok {
				prior = c.Validate(curSol, p.data)
			}
			v, err := c.ValidateDelta(move, curSol, prior, p.data)
			if err != nil {
				return nil, err
			}
			agg.Record(c, v)
			if !v.Passed() {
				break
			}
		}
		return agg, nil
	}
}

func priorSubValidation[S any, D any](prevAgg *eval.UnanimousValidation, c Constraint[S, D]) (eval.Validation, bool) {
	if prevAgg == nil {
		return nil, false
	}
	return prevAgg.Get(c)
}

// Evaluate computes the full Evaluation of s.
//
//   - Zero penalizing constraints: the objective's own evaluation,
//     unwrapped.
//   - Otherwise: a PenalizedEvaluation wrapping the objective's base
//     evaluation and every penalizing constraint's PenalizingValidation.
func (p *Problem[S, D]) Evaluate(s S) eval.Evaluation {
	base := p.objective.Evaluate(s, p.data)
	if len(p.penalizing) == 0 {
		return base
	}
	penalties := make(map[eval.ConstraintID]eval.PenalizingValidation, len(p.penalizing))
	for _, c := range p.penalizing {
		penalties[c] = c.ValidatePenalizing(s, p.data)
	}
	return eval.NewPenalizedEvaluation(base, penalties, p.objective.IsMinimizing())
}

// EvaluateDelta computes the Evaluation of the solution obtained by
// applying move to curSol, given curSol's current Evaluation curEval,
// mirroring Evaluate's aggregation logic in delta form.
func (p *Problem[S, D]) EvaluateDelta(move core.Move[S], curSol S, curEval eval.Evaluation) (eval.Evaluation, error) {
	var curBase eval.Evaluation
	var curPenalties map[eval.ConstraintID]eval.PenalizingValidation
	if pe, ok := curEval.(eval.PenalizedEvaluation); ok {
		curBase = pe.Base
		curPenalties = pe.Penalties
	} else {
		curBase = curEval
	}

	newBase, err := p.objective.EvaluateDelta(move, curSol, curBase, p.data)
	if err != nil {
		return nil, err
	}
	if len(p.penalizing) == 0 {
		return newBase, nil
	}

	penalties := make(map[eval.ConstraintID]eval.PenalizingValidation, len(p.penalizing))
	for _, c := range p.penalizing {
		prior, ok := curPenalties[c]
		if !ok {
			prior = c.ValidatePenalizing(curSol, p.data)
		}
		pv, err := c.ValidatePenalizingDelta(move, curSol, prior, p.data)
		if err != nil {
			return nil, err
		}
		penalties[c] = pv
	}
	return eval.NewPenalizedEvaluation(newBase, penalties, p.objective.IsMinimizing()), nil
}

// ViolatedConstraints scans every mandatory and penalizing constraint
// and returns the subset whose Validate does not pass (penalizing
// constraints are checked through their plain Validate method too).
func (p *Problem[S, D]) ViolatedConstraints(s S) []Constraint[S, D] {
	var violated []Constraint[S, D]
	for _, c := range p.mandatory {
		if !c.Validate(s, p.data).Passed() {
			violated = append(violated, c)
		}
	}
	for _, c := range p.penalizing {
		if !c.Validate(s, p.data).Passed() {
			violated = append(violated, c)
		}
	}
	return violated
}

// Package problem composes a problem instance's Data, Objective,
// mandatory and penalizing Constraints, and RandomSolutionGenerator
// into the single object the search engine queries: Problem.
//
// Problem answers four kinds of question, always preferring the delta
// (incremental) form of Objective/Constraint when a Move is available:
//
//   - CreateRandom: delegate to the RandomSolutionGenerator.
//   - Validate / ValidateDelta: aggregate the mandatory constraints with
//     unanimous short-circuiting semantics.
//   - Evaluate / EvaluateDelta: fold the objective's evaluation together
//     with every penalizing constraint's PenalizingValidation.
//   - ViolatedConstraints: scan every mandatory and penalizing constraint
//     and report which ones currently fail.
//
// Problem owns Data, the Objective, both constraint lists, and the
// RandomSolutionGenerator exclusively; Objectives and Constraints never
// hold a reference back to the Problem — Data is threaded through every
// call instead, so there is no ownership cycle. Mutating a Problem's
// constraint lists, objective, or generator while a Search is running
// against it is undefined behaviour.
package problem

// Package trajecta is a framework for single-solution (trajectory)
// metaheuristic local search: iteratively transforming one candidate
// solution with neighbourhood moves to maximise or minimise an
// objective subject to validity constraints.
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/       — the Solution/Move/Neighbourhood contracts every problem implements
//	eval/       — Evaluation and Validation value types, including penalized and unanimous aggregation
//	problem/    — Problem, composing Data + Objective + constraints + a random generator
//	search/     — the Base lifecycle state machine, listeners, and stop criteria
//	algorithms/ — concrete strategies: random/steepest descent, Metropolis, tabu search, VNS, piped and basic-parallel composition
//	tempering/  — the parallel-tempering replica engine
//	subset/     — a representative neighbourhood family over fixed-universe subset solutions
//	errs/       — the module's typed error taxonomy
//
// A minimal wiring, given a caller-defined objective and generator over
// subset solutions, looks like:
//
//	p, _ := problem.New[*subset.SubsetSolution, Data](data, objective, generator, nil, nil)
//	n, _ := subset.NewSingleSwap()
//	b, _ := algorithms.SteepestDescent(p, n)
//	_ = b.Start()
//	best, _, _ := b.BestSolution()
//
//	go get github.com/katalvlaran/trajecta
package trajecta

// Package puzzle maps a (day, task) pair to the solver that answers it and
// bundles the worked example of every day together with its expected
// answers.
//
//	answer, err := puzzle.Solve(ctx, puzzle.Key{Day: 14, Task: 2}, input, puzzle.DefaultParams())
//
// Solvers are pure: they parse the input, compute, and format the result
// as a decimal string. Each call is logged at debug level through the
// logger carried by ctx (see internal/ctxlog).
package puzzle

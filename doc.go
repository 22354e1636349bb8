// Package advent is a collection of path-search and simulation puzzle
// solvers, each a small library with its own parse → compute → answer
// pipeline.
//
// What is in here?
//
//	A set of single-purpose packages that share one generic traversal:
//		• bfs        multi-source, level-order breadth-first search over
//		             integer vertex IDs, with hooks and functional options
//		• heightmap  elevation grids and the fewest-steps climb (built on bfs)
//		• packet     nested-list packets: tokenizer, parser, three-way order
//		• sandsim    falling sand in a sparse cave, as an explicit state machine
//		• beacon     Manhattan-diamond sensor coverage and the one uncovered point
//		• puzzle     day/task registry with embedded worked examples
//
// How is it organized?
//
//	bfs/ heightmap/ packet/ sandsim/ beacon/   algorithm packages, no I/O, no logging
//	puzzle/                                    dispatch, timing and debug logging
//	internal/                                  config (YAML), input (file, stdin, zstd), ctxlog, mathx
//	cmd/advent/                                the command line: advent [options] DAY TASK
//	examples/                                  runnable scenarios built on the public API
//
// Quick start:
//
//	go run ./cmd/advent -sample 14 2        # 93
//	go run ./cmd/advent -input in.txt.zst 15 1
//
// Every algorithm package reports malformed input through package-level
// sentinel errors (errors.Is) wrapped with position context, and reports
// "no solution" outcomes (unreachable summit, no uncovered point, a
// simulation that never settles) as explicit errors rather than looping.
package advent

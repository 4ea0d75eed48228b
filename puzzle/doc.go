// Package puzzle defines the contract every daily solver fulfils and a
// registry that dispatches to them by day and part.
//
// A Solver turns the whole puzzle input into an Answer. Items that cannot be
// parsed never reach the aggregate: they are collected in Answer.Skipped so
// the caller can decide whether to report them or stop. Structural problems
// (empty input, malformed grid) are returned as errors instead.
//
// Lines and Sections are the small tokenizing helpers the solvers share.
package puzzle

// Package aoc2025 holds Advent of Code 2025 solutions built on two reusable
// structures: an interval store and a ray propagation graph.
//
// 🚀 What is inside?
//
//	interval/    closed integer ranges, an AVL-balanced interval tree with
//	             point and overlap queries, and a merge sweep for unions
//	raygraph/    rays falling through a character grid, split into a DAG
//	             with one node per position, plus memoized path counting
//	gridgraph/   rectangular byte grids with 4- or 8-way neighbourhoods
//	puzzle/      the Solver contract, Answer and the day registry
//	day01..07/   one package per puzzle day
//	solutions/   wires every day into a registry from configuration
//	cmd/aoc2025  the command line front end
//
// ✨ Conventions
//
//   - Inputs are plain strings. Items that fail to parse are excluded and
//     reported in Answer.Skipped, never counted as zero.
//   - Errors are sentinel values checked with errors.Is.
//   - Nothing is shared between calls; every solver is safe to reuse.
//
// Quick start:
//
//	go run ./cmd/aoc2025 solve 7 --input inputs/day7.txt
//	go run ./cmd/aoc2025 solve 5 --part 2 --output json --input - < inputs/day5.txt
package aoc2025

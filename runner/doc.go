// Package runner is the harness glue between puzzle solutions and their
// inputs: a registry mapping (year, day) to a solver, a dispatcher that
// feeds it input lines and times the run, and a Source abstraction over
// where those lines come from.
//
// Solutions self-register from init functions:
//
//	func init() { runner.Register(2021, 15, chiton{}) }
//
// and a front end (the adventkit CLI, or a test) dispatches:
//
//	answer, err := runner.Run(2021, 15, 1, runner.DirSource{Root: "input"})
//
// The only Source shipped here reads the on-disk cache layout
// <root>/<year>/day<DD>.txt; fetching inputs over the network is a
// separate concern and deliberately not part of this package.
//
// Errors (sentinel):
//
//   - ErrNotRegistered — no puzzle registered for the (year, day).
//   - ErrBadPart       — part selector outside {1, 2}.
//   - ErrNoInput       — the source has no input for the (year, day).
package runner

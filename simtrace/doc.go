// Package simtrace replays a Solution against a simgrid.Map one
// instruction at a time, emitting the board as a zerolog debug event
// after every step. It exists for interactively debugging a Solution
// that simverify reports as failing, not for judging correctness.
package simtrace

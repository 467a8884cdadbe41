// Package simgrid is the deterministic game simulator with rollback: it
// owns the grid, the booster map, the agent roster, and the backlog of
// reversible mutations that together let a search algorithm explore and
// backtrack without re-simulating from scratch.
//
// What:
//
//   - Map.Run(agentIndex, instruction) dispatches one of the thirteen
//     instruction types for one agent, mutating the grid, the agent, and
//     the global booster counters, and appending one undo entry.
//   - Map.Undo() pops the most recent undo entry and reverses it,
//     restoring every observable field bit-for-bit.
//   - Map.DryRun reports what Run would do without mutating anything.
//
// Why one package for grid + executor + undo:
//
//   - Undo entries are defined entirely in terms of the executor's
//     action tags and the grid's own cell mutations; splitting them
//     into separate packages would mean threading half of Map's private
//     state across a package boundary for no real decoupling benefit.
//
// Concurrency:
//
//   - Map is not safe for concurrent use. It is strictly single-
//     threaded: one instruction runs to completion before the next is
//     accepted, and within one round agents execute in ascending index
//     order, so a later agent observes an earlier agent's mutations from
//     the same round (this matters for R/C booster pickups).
package simgrid

// Package simverify drives a parsed Solution against a simgrid.Map
// round by round, the same round-robin order a contest judge uses, and
// reports whether the mine ends up fully wrapped.
//
// Agents execute in ascending index order within a round, so an agent
// cloned mid-round joins the roster and gets its own cursor starting
// the following round. A round runs one instruction for each agent that
// has one left; Verify ends when every agent's program cursor has been
// exhausted.
package simverify

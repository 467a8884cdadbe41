// Package booster defines the closed set of booster kinds a mine can
// contain, and their single-letter wire encoding.
//
// What:
//
//   - Kind is a closed byte-enum: B (manipulator extension), F (fast
//     wheels), L (drill), X (clone spawn pad, immovable), R (teleport
//     beacon stock), C (cloning stock).
//   - ParseKind/String round-trip the single-letter encoding used by
//     both the task descriptor format and the debug ToString grid.
//
// Why:
//
//   - Every component that deals with boosters (taskio's descriptor
//     parser, simgrid's booster map and pickup/commit logic, the
//     ToString glyph table) needs the same six-way closed switch; one
//     package keeps that switch in a single place.
package booster

// Package taskio decodes and encodes the two wire text formats consumed
// and produced by the simulator: task descriptors and solutions.
//
// What:
//
//   - Descriptor: a mine polygon, an initial agent position, obstacle
//     polygons, and booster placements, decoded from a single `#`-
//     separated line (ParseDescriptor).
//   - Instruction / Program / Solution: the thirteen-letter instruction
//     alphabet, a per-agent concatenation of instructions, and a `#`-
//     separated list of programs (one per agent). ParseSolution is the
//     exact inverse of Solution.String.
//
// Why:
//
//   - Keeping decode and encode of each wire format in one file (rather
//     than splitting a "parser" package from a "formatter" package)
//     means the round-trip invariant (Parse(x.String()) == x) lives
//     next to both halves it constrains.
//
// Errors:
//
//   - ParseError identifies the offending section and substring, never
//     a generic "invalid input" message, so callers can report exactly
//     where a malformed task or solution file broke.
package taskio

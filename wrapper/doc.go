// Package wrapper defines Agent, the per-wrapper mutable state mutated
// by the instruction executor in package simgrid.
//
// What:
//
//   - Agent holds a position, an ordered manipulator-offset list
//     (default the three offsets (1,-1),(1,0),(1,1)), a fast-wheel and
//     drill turn counter, and a pending (not-yet-committed) booster.
//   - RotateClockwise/RotateCounterClockwise/AddManipulator/
//     RemoveManipulator are the only ways manipulators change; Remove
//     is the exact inverse of Add (undo support for the B instruction).
//
// Why:
//
//   - simgrid.Map owns a []*Agent slice and addresses agents by index,
//     never by a reference that could dangle across a Clone (append) or
//     its Undo (pop): see simgrid's Map.Run/Undo for the C instruction.
package wrapper

package simgrid

import "errors"

// RunResult is the exhaustive, closed set of outcomes Run/DryRun can
// return. The zero value is left unnamed so a freshly zeroed RunResult
// never accidentally reads as Success.
type RunResult int

const (
	_ RunResult = iota
	// Success indicates the instruction executed and mutated the map.
	Success
	// ErrNoWrapperResult indicates the agent index has no live agent.
	ErrNoWrapperResult
	// ErrOutOfMapResult indicates a move target fell outside the grid.
	ErrOutOfMapResult
	// ErrWallResult indicates a move target is WALL and no drill is active.
	ErrWallResult
	// ErrNoBoosterResult indicates the required collected_* counter is zero,
	// or, for R, that the agent's cell already holds a beacon or an X pad.
	ErrNoBoosterResult
	// ErrBadManipulatorPositionResult indicates a B argument fails the
	// adjacency legality rule.
	ErrBadManipulatorPositionResult
	// ErrBadTeleportPositionResult indicates a T argument is out of bounds.
	ErrBadTeleportPositionResult
	// ErrUnknownTeleportPositionResult indicates an in-bounds T argument
	// that is not a previously placed reset beacon.
	ErrUnknownTeleportPositionResult
	// ErrBadClonePositionResult indicates C was issued off an X pad.
	ErrBadClonePositionResult
	// ErrUnknownInstructionResult indicates an instruction type outside
	// the thirteen-letter alphabet reached Run (a caller/parser bug).
	ErrUnknownInstructionResult
)

// String names the RunResult for logging and test failure messages.
func (r RunResult) String() string {
	switch r {
	case Success:
		return "SUCCESS"
	case ErrNoWrapperResult:
		return "NO_WRAPPER"
	case ErrOutOfMapResult:
		return "OUT_OF_MAP"
	case ErrWallResult:
		return "WALL"
	case ErrNoBoosterResult:
		return "NO_BOOSTER"
	case ErrBadManipulatorPositionResult:
		return "BAD_MANIPULATOR_POSITION"
	case ErrBadTeleportPositionResult:
		return "BAD_TELEPORT_POSITION"
	case ErrUnknownTeleportPositionResult:
		return "UNKNOWN_TELEPORT_POSITION"
	case ErrBadClonePositionResult:
		return "BAD_CLONE_POSITION"
	case ErrUnknownInstructionResult:
		return "UNKNOWN_INSTRUCTION"
	default:
		return "UNKNOWN_RESULT"
	}
}

// ErrEmptyBacklog indicates Undo was called with nothing left to undo.
// This signals a programmer bug in the caller (spec.md's invariant
// breakage category), not a recoverable rule violation.
var ErrEmptyBacklog = errors.New("simgrid: undo called on empty backlog")

package simverify

import (
	"github.com/google/uuid"

	"github.com/dkrasov/wrapgrid/simgrid"
	"github.com/dkrasov/wrapgrid/taskio"
)

// FailurePoint pins down exactly which instruction caused Verify to
// abort: the round it happened in, which agent issued it, the
// instruction itself, and the non-Success RunResult it produced.
type FailurePoint struct {
	Round       int
	AgentIndex  int
	Instruction taskio.Instruction
	Result      simgrid.RunResult
}

// Result is the outcome of one Verify call.
type Result struct {
	// Success reports whether the mine ended fully wrapped.
	Success bool
	// Rounds is the number of rounds executed.
	Rounds int
	// Remaining is Map.Remaining() at the point Verify stopped.
	Remaining int
	// FailedAt is non-nil only when an instruction itself failed
	// (a RunResult other than Success), as opposed to the Solution
	// simply running out without fully wrapping the mine.
	FailedAt *FailurePoint
	// RunID correlates this run's log events, so concurrent Verify
	// calls against different maps don't interleave unreadably.
	RunID uuid.UUID
}

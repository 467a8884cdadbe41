package simverify

import (
	"github.com/google/uuid"

	"github.com/dkrasov/wrapgrid/simgrid"
	"github.com/dkrasov/wrapgrid/taskio"
)

// Verify drives sol against m one round at a time, in the judge's own
// round-robin order: within a round, agents execute ascending by
// index, and an agent cloned mid-round gets its own cursor starting
// the next round. Only agents with a provided program (index <
// len(sol)) ever execute; an agent cloned beyond that never receives
// instructions, matching the reference judge.
//
// Verify stops and reports failure the first time an instruction
// returns a RunResult other than Success — the original C++ judge
// never checked this (a rule violation there was impossible to
// represent, not merely ignored), so no solution that genuinely
// violates the rules can be "verified" by running off the end of its
// program and hoping the map still got wrapped.
func Verify(m *simgrid.Map, sol taskio.Solution, opts ...VerifyOption) (Result, error) {
	cfg := defaultVerifyConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	runID := uuid.New()
	logger := cfg.logger.With().Str("run_id", runID.String()).Logger()

	cursors := make([]int, len(m.Agents()))
	round := 0

	for {
		if cfg.maxRounds > 0 && round >= cfg.maxRounds {
			logger.Warn().Int("round", round).Msg("verify aborted: max rounds exceeded")
			return Result{Rounds: round, Remaining: m.Remaining(), RunID: runID}, nil
		}

		size := len(cursors)
		if len(sol) < size {
			size = len(sol)
		}

		ended := true
		for i := 0; i < size; i++ {
			if cursors[i] < len(sol[i]) {
				ended = false
				break
			}
		}
		if ended {
			break
		}

		for i := 0; i < size; i++ {
			if cursors[i] >= len(sol[i]) {
				continue
			}
			inst := sol[i][cursors[i]]
			result := m.Run(i, inst)
			if result != simgrid.Success {
				logger.Warn().
					Int("round", round).
					Int("agent", i).
					Str("instruction", inst.String()).
					Str("result", result.String()).
					Msg("instruction failed")
				return Result{
					Success:   false,
					Rounds:    round,
					Remaining: m.Remaining(),
					RunID:     runID,
					FailedAt: &FailurePoint{
						Round:       round,
						AgentIndex:  i,
						Instruction: inst,
						Result:      result,
					},
				}, nil
			}
		}

		for i := 0; i < size; i++ {
			if cursors[i] < len(sol[i]) {
				cursors[i]++
			}
		}
		for len(cursors) < len(m.Agents()) {
			cursors = append(cursors, 0)
		}

		logger.Debug().Int("round", round).Int("remaining", m.Remaining()).Msg("round complete")
		round++
	}

	success := m.Remaining() == 0
	logger.Info().Bool("success", success).Int("rounds", round).Int("remaining", m.Remaining()).Msg("verify complete")

	return Result{
		Success:   success,
		Rounds:    round,
		Remaining: m.Remaining(),
		RunID:     runID,
	}, nil
}

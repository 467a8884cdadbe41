package simtrace

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/dkrasov/wrapgrid/simgrid"
	"github.com/dkrasov/wrapgrid/taskio"
)

// NewConsoleTracer returns a zerolog.Logger writing human-readable,
// color-coded lines to w, suitable for a terminal.
func NewConsoleTracer(w io.Writer) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05.000"}
	return zerolog.New(console).With().Timestamp().Logger()
}

// Replay drives sol against m the same way simverify.Verify does
// (ascending agent index per round, an agent cloned mid-round joining
// next round's cursor list), but logs the board after every single
// instruction and stops at the first non-Success RunResult instead of
// reporting it structurally — Replay is for a human watching, not for
// an automated pass/fail judgment.
func Replay(m *simgrid.Map, sol taskio.Solution, logger zerolog.Logger) error {
	cursors := make([]int, len(m.Agents()))
	round := 0

	for {
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
			return nil
		}

		for i := 0; i < size; i++ {
			if cursors[i] >= len(sol[i]) {
				continue
			}
			inst := sol[i][cursors[i]]
			result := m.Run(i, inst)
			logger.Debug().
				Int("round", round).
				Int("agent", i).
				Str("instruction", inst.String()).
				Str("result", result.String()).
				Int("remaining", m.Remaining()).
				Msg(m.ToString())
			if result != simgrid.Success {
				return nil
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

		round++
	}
}

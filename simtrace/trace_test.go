package simtrace_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkrasov/wrapgrid/simgrid"
	"github.com/dkrasov/wrapgrid/simtrace"
	"github.com/dkrasov/wrapgrid/taskio"
)

func TestReplay_RunsUntilProgramExhausted(t *testing.T) {
	desc, err := taskio.ParseDescriptor("(0,0),(2,0),(2,2),(0,2)#(0,0)##")
	require.NoError(t, err)
	m, err := simgrid.NewMap(desc)
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	sol := taskio.Solution{taskio.Program{{Type: taskio.Up}}}

	err = simtrace.Replay(m, sol, logger)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Remaining())
	assert.Contains(t, buf.String(), "\"result\":\"SUCCESS\"")
}

func TestReplay_StopsOnFailingInstruction(t *testing.T) {
	desc, err := taskio.ParseDescriptor("(0,0),(3,0),(3,3),(0,3)#(0,0)##")
	require.NoError(t, err)
	m, err := simgrid.NewMap(desc)
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	sol := taskio.Solution{taskio.Program{{Type: taskio.Left}, {Type: taskio.Up}}}

	err = simtrace.Replay(m, sol, logger)
	require.NoError(t, err)
	assert.Equal(t, 0, m.NumSteps())
	assert.Contains(t, buf.String(), "\"result\":\"OUT_OF_MAP\"")
}

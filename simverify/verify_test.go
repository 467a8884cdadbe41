package simverify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkrasov/wrapgrid/simgrid"
	"github.com/dkrasov/wrapgrid/simverify"
	"github.com/dkrasov/wrapgrid/taskio"
)

func TestVerify_AlreadyWrappedSucceedsImmediately(t *testing.T) {
	desc, err := taskio.ParseDescriptor("(0,0),(2,0),(2,1),(0,1)#(0,0)##")
	require.NoError(t, err)
	m, err := simgrid.NewMap(desc)
	require.NoError(t, err)
	require.Equal(t, 0, m.Remaining())

	result, err := simverify.Verify(m, taskio.Solution{})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 0, result.Rounds)
	assert.Nil(t, result.FailedAt)
}

func TestVerify_SingleMoveWrapsSmallMap(t *testing.T) {
	desc, err := taskio.ParseDescriptor("(0,0),(2,0),(2,2),(0,2)#(0,0)##")
	require.NoError(t, err)
	m, err := simgrid.NewMap(desc)
	require.NoError(t, err)
	require.Equal(t, 1, m.Remaining())

	sol := taskio.Solution{
		taskio.Program{{Type: taskio.Up}},
	}

	result, err := simverify.Verify(m, sol)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Rounds)
	assert.Equal(t, 0, result.Remaining)
}

func TestVerify_ReportsFailingInstruction(t *testing.T) {
	desc, err := taskio.ParseDescriptor("(0,0),(3,0),(3,3),(0,3)#(0,0)##")
	require.NoError(t, err)
	m, err := simgrid.NewMap(desc)
	require.NoError(t, err)

	sol := taskio.Solution{
		taskio.Program{{Type: taskio.Left}},
	}

	result, err := simverify.Verify(m, sol)
	require.NoError(t, err)
	assert.False(t, result.Success)
	require.NotNil(t, result.FailedAt)
	assert.Equal(t, 0, result.FailedAt.AgentIndex)
	assert.Equal(t, simgrid.ErrOutOfMapResult, result.FailedAt.Result)
}

func TestVerify_MaxRoundsAborts(t *testing.T) {
	desc, err := taskio.ParseDescriptor("(0,0),(5,0),(5,5),(0,5)#(0,0)##")
	require.NoError(t, err)
	m, err := simgrid.NewMap(desc)
	require.NoError(t, err)

	program := make(taskio.Program, 100)
	for i := range program {
		program[i] = taskio.Instruction{Type: taskio.NoOp}
	}
	sol := taskio.Solution{program}

	result, err := simverify.Verify(m, sol, simverify.WithMaxRounds(3))
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, 3, result.Rounds)
	assert.Nil(t, result.FailedAt)
}

package taskio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkrasov/wrapgrid/geom"
	"github.com/dkrasov/wrapgrid/taskio"
)

func TestParseProgram_RoundTrip(t *testing.T) {
	program, err := taskio.ParseProgram("WDDSAB(1,2)T(3,4)Z")
	require.NoError(t, err)
	require.Len(t, program, 8)
	assert.Equal(t, taskio.AttachManip, program[5].Type)
	assert.Equal(t, geom.Point{X: 1, Y: 2}, program[5].Arg)
	assert.Equal(t, "WDDSAB(1,2)T(3,4)Z", program.String())
}

func TestParseProgram_UnknownInstruction(t *testing.T) {
	_, err := taskio.ParseProgram("WX")
	assert.ErrorIs(t, err, taskio.ErrUnknownInstruction)
}

func TestParseProgram_MissingArgument(t *testing.T) {
	_, err := taskio.ParseProgram("B1,2)")
	assert.ErrorIs(t, err, taskio.ErrMalformedPoint)

	_, err = taskio.ParseProgram("B(1,2")
	assert.ErrorIs(t, err, taskio.ErrMissingArgument)
}

func TestParseSolution_RoundTrip(t *testing.T) {
	sol, err := taskio.ParseSolution("WDDSA#QQEB(0,1)")
	require.NoError(t, err)
	require.Len(t, sol, 2)
	assert.Equal(t, "WDDSA#QQEB(0,1)", sol.String())
}

func TestParseSolution_EmptyProgramsAllowed(t *testing.T) {
	sol, err := taskio.ParseSolution("W#")
	require.NoError(t, err)
	require.Len(t, sol, 2)
	assert.Empty(t, sol[1])
}

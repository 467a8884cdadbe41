package taskio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkrasov/wrapgrid/booster"
	"github.com/dkrasov/wrapgrid/geom"
	"github.com/dkrasov/wrapgrid/taskio"
)

func TestParseDescriptor_Minimal(t *testing.T) {
	d, err := taskio.ParseDescriptor("(0,0),(3,0),(3,3),(0,3)#(0,0)##")
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 3}, {X: 0, Y: 3}}, d.Polygon)
	assert.Equal(t, geom.Point{X: 0, Y: 0}, d.Start)
	assert.Empty(t, d.Obstacles)
	assert.Empty(t, d.Boosters)
}

func TestParseDescriptor_ObstaclesAndBoosters(t *testing.T) {
	text := "(0,0),(5,0),(5,5),(0,5)#(1,1)#(2,2),(3,2),(3,3),(2,3)#B(4,4);X(0,4)"
	d, err := taskio.ParseDescriptor(text)
	require.NoError(t, err)
	require.Len(t, d.Obstacles, 1)
	assert.Equal(t, []geom.Point{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 3}}, d.Obstacles[0])
	require.Len(t, d.Boosters, 2)
	assert.Equal(t, booster.Manipulator, d.Boosters[0].Kind)
	assert.Equal(t, geom.Point{X: 4, Y: 4}, d.Boosters[0].Point)
	assert.Equal(t, booster.ClonePad, d.Boosters[1].Kind)
}

func TestParseDescriptor_WrongSectionCount(t *testing.T) {
	_, err := taskio.ParseDescriptor("(0,0)#(0,0)#")
	var perr *taskio.ParseError
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, taskio.ErrSectionCount)
}

func TestParseDescriptor_MalformedBooster(t *testing.T) {
	_, err := taskio.ParseDescriptor("(0,0),(1,0),(1,1),(0,1)#(0,0)##Z(1,1)")
	var perr *taskio.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "boosters", perr.Section)
}

package visibility_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkrasov/wrapgrid/geom"
	"github.com/dkrasov/wrapgrid/visibility"
)

// fakeGrid is a minimal visibility.CellLookup backed by a row-major
// slice, used only to exercise the visibility algorithm in isolation.
type fakeGrid struct {
	width, height int
	cells         []geom.Cell
}

func newFakeGrid(width, height int) *fakeGrid {
	cells := make([]geom.Cell, width*height)
	return &fakeGrid{width: width, height: height, cells: cells}
}

func (g *fakeGrid) InBounds(p geom.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

func (g *fakeGrid) At(p geom.Point) geom.Cell {
	return g.cells[p.Y*g.width+p.X]
}

func (g *fakeGrid) setWall(p geom.Point) {
	g.cells[p.Y*g.width+p.X] = geom.CellWall
}

func TestIsVisible_SelfAlwaysVisible(t *testing.T) {
	g := newFakeGrid(5, 5)
	origin := geom.Point{X: 2, Y: 2}
	assert.True(t, visibility.IsVisible(origin, origin, g))
}

func TestIsVisible_Symmetric(t *testing.T) {
	g := newFakeGrid(5, 5)
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 4, Y: 3}
	assert.Equal(t, visibility.IsVisible(a, b, g), visibility.IsVisible(b, a, g))
}

func TestIsVisible_VerticalLineBlockedByWall(t *testing.T) {
	g := newFakeGrid(3, 5)
	g.setWall(geom.Point{X: 1, Y: 2})
	assert.False(t, visibility.IsVisible(geom.Point{X: 1, Y: 0}, geom.Point{X: 1, Y: 4}, g))
}

func TestIsVisible_OutOfBoundsTargetIsNotVisible(t *testing.T) {
	g := newFakeGrid(3, 3)
	assert.False(t, visibility.IsVisible(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 10}, g))
}

func TestIsVisible_DiagonalUnobstructed(t *testing.T) {
	g := newFakeGrid(5, 5)
	assert.True(t, visibility.IsVisible(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 1}, g))
}

func TestIsVisible_StraightRowUnobstructed(t *testing.T) {
	g := newFakeGrid(5, 1)
	assert.True(t, visibility.IsVisible(geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 0}, g))
}

package visibility

import (
	"github.com/dkrasov/wrapgrid/geom"
	"github.com/dkrasov/wrapgrid/rational"
)

// CellLookup is the minimal grid surface the visibility test needs.
// simgrid.Map implements this; package visibility never imports simgrid.
type CellLookup interface {
	InBounds(p geom.Point) bool
	At(p geom.Point) geom.Cell
}

// IsVisible reports whether the straight segment between origin and
// target (cell centers) crosses only in-bounds, non-WALL cells. The
// origin cell itself always counts as visible, and visibility is
// symmetric: IsVisible(a,b,g) == IsVisible(b,a,g).
func IsVisible(origin, target geom.Point, grid CellLookup) bool {
	for _, p := range tracedCells(origin, target) {
		if !grid.InBounds(p) || grid.At(p) == geom.CellWall {
			return false
		}
	}
	return true
}

// tracedCells enumerates every integer cell whose unit square is
// pierced by the segment from origin to target.
func tracedCells(origin, target geom.Point) []geom.Point {
	if origin.X == target.X {
		lo, hi := origin.Y, target.Y
		if lo > hi {
			lo, hi = hi, lo
		}
		points := make([]geom.Point, 0, hi-lo+1)
		for y := lo; y <= hi; y++ {
			points = append(points, geom.Point{X: origin.X, Y: y})
		}
		return points
	}

	s, g := origin, target
	if s.X > g.X {
		s, g = g, s
	}
	grad := rational.NewFrac(g.Y-s.Y, g.X-s.X)
	half := rational.NewFrac(1, 2)

	var points []geom.Point
	for x := s.X; x <= g.X; x++ {
		left := maxRat(rational.New(s.X), rational.New(x).Sub(half))
		right := minRat(rational.New(g.X), rational.New(x).Add(half))

		leftY := rational.New(s.Y).Add(left.Sub(rational.New(s.X)).Mul(grad)).Add(half)
		rightY := rational.New(s.Y).Add(right.Sub(rational.New(s.X)).Mul(grad)).Add(half)

		lo := minInt(leftY.Floor(), rightY.Floor())
		hi := maxInt(leftY.Ceil(), rightY.Ceil())
		for y := lo; y < hi; y++ {
			points = append(points, geom.Point{X: x, Y: y})
		}
	}
	return points
}

func maxRat(a, b rational.Rational) rational.Rational {
	if a.Greater(b) {
		return a
	}
	return b
}

func minRat(a, b rational.Rational) rational.Rational {
	if a.Less(b) {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package geom

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Add returns p + other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns p - other.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Equal reports whether p and other denote the same coordinate.
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Less orders points lexicographically by X then Y, a total order a
// caller can sort by to iterate point-keyed sets deterministically.
func (p Point) Less(other Point) bool {
	if p.X != other.X {
		return p.X < other.X
	}
	return p.Y < other.Y
}

// Direction vectors for the four axis-aligned movement instructions.
// Naming mirrors the instruction letters: W moves North, S moves South,
// A moves West, D moves East.
var (
	North = Point{X: 0, Y: 1}
	South = Point{X: 0, Y: -1}
	East  = Point{X: 1, Y: 0}
	West  = Point{X: -1, Y: 0}
)

// RotateClockwise rotates an offset clockwise, consistent with
// wrapper.Agent.RotateClockwise: (dx,dy) -> (-dy,dx).
func RotateClockwise(p Point) Point {
	return Point{X: -p.Y, Y: p.X}
}

// RotateCounterClockwise rotates an offset counter-clockwise, consistent
// with wrapper.Agent.RotateCounterClockwise: (dx,dy) -> (dy,-dx).
func RotateCounterClockwise(p Point) Point {
	return Point{X: p.Y, Y: -p.X}
}

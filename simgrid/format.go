package simgrid

import (
	"github.com/dkrasov/wrapgrid/booster"
	"github.com/dkrasov/wrapgrid/geom"
)

// ToString renders the map as the reference ASCII grid: rows top-down by
// descending Y, '#' for WALL, ' ' for EMPTY, '.' for FILLED, booster
// letters (uppercase over EMPTY, lowercase over FILLED), '%' for an
// agent body, and '&' for a manipulator-reachable cell not otherwise
// occupied.
func (m *Map) ToString() string {
	stride := m.width + 1
	buf := make([]byte, m.height*stride)

	for y := 0; y < m.height; y++ {
		row := (m.height - y - 1) * stride
		for x := 0; x < m.width; x++ {
			buf[row+x] = glyphForCell(m.At(geom.Point{X: x, Y: y}))
		}
		buf[row+m.width] = '\n'
	}

	for p, k := range m.boosters {
		idx := m.renderIndex(p, stride)
		buf[idx] = boosterGlyph(k, buf[idx])
	}

	for _, a := range m.agents {
		buf[m.renderIndex(a.Position, stride)] = '%'
		for _, offset := range a.Manipulators {
			target := a.Position.Add(offset)
			if !m.InMap(target) {
				continue
			}
			idx := m.renderIndex(target, stride)
			if buf[idx] == ' ' || buf[idx] == '.' {
				buf[idx] = '&'
			}
		}
	}

	return string(buf)
}

func (m *Map) renderIndex(p geom.Point, stride int) int {
	return (m.height-p.Y-1)*stride + p.X
}

func glyphForCell(c Cell) byte {
	switch c {
	case CellWall:
		return '#'
	case CellFilled:
		return '.'
	default:
		return ' '
	}
}

func boosterGlyph(k booster.Kind, current byte) byte {
	empty := current == ' '
	switch k {
	case booster.Manipulator:
		return pick(empty, 'B', 'b')
	case booster.FastWheels:
		return pick(empty, 'F', 'f')
	case booster.Drill:
		return pick(empty, 'L', 'l')
	case booster.ClonePad:
		return pick(empty, 'X', 'x')
	case booster.Teleport:
		return pick(empty, 'R', 'r')
	case booster.CloneStock:
		return pick(empty, 'C', 'c')
	default:
		return current
	}
}

func pick(cond bool, onTrue, onFalse byte) byte {
	if cond {
		return onTrue
	}
	return onFalse
}

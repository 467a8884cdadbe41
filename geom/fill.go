package geom

import "sort"

// FillPolygon rasterizes an orthogonal mine polygon and its obstacle
// cut-outs into a flat, row-major Cell slice of size width*height.
//
// width and height are derived from the maximum X and maximum Y vertex
// coordinate of the mine polygon (the original polygon's own bounding
// box, never the obstacles' — an obstacle that extends past the mine
// boundary is simply clipped by the row/column loop bounds).
//
// Algorithm (spec: horizontal scanline at integer row y, using only the
// vertical edges of each polygon):
//
//   - For each row y in [0, height), collect the X of every vertical
//     edge (p1.X == p2.X) whose Y-span [min(p1.Y,p2.Y), max(p1.Y,p2.Y))
//     contains y. The span is half-open and bottom-inclusive.
//   - Sort the collected X values ascending and fill cells in pairs:
//     [x[0],x[1]), [x[2],x[3]), ...
//
// The mine polygon is filled first (CellEmpty over a CellWall
// background); each obstacle polygon is then filled as CellWall,
// overwriting whatever the mine pass produced.
//
// Complexity: O(height * totalVertices).
func FillPolygon(polygon []Point, obstacles [][]Point) (cells []Cell, width, height int) {
	for _, p := range polygon {
		if p.X > width {
			width = p.X
		}
		if p.Y > height {
			height = p.Y
		}
	}

	cells = make([]Cell, width*height)
	for i := range cells {
		cells[i] = CellWall
	}

	scanFill(cells, width, height, polygon, CellEmpty)
	for _, obstacle := range obstacles {
		scanFill(cells, width, height, obstacle, CellWall)
	}
	return cells, width, height
}

// scanFill fills the interior of one orthogonal polygon with value,
// row by row, using the vertical-edge scanline rule documented on
// FillPolygon.
func scanFill(cells []Cell, width, height int, polygon []Point, value Cell) {
	if len(polygon) == 0 {
		return
	}
	var bars []int
	for y := 0; y < height; y++ {
		bars = bars[:0]
		for i := range polygon {
			p1 := polygon[i]
			p2 := polygon[(i+1)%len(polygon)]
			if p1.X != p2.X {
				continue
			}
			lo, hi := p1.Y, p2.Y
			if lo > hi {
				lo, hi = hi, lo
			}
			if lo <= y && y < hi {
				bars = append(bars, p1.X)
			}
		}
		sort.Ints(bars)
		for i := 0; i+1 < len(bars); i += 2 {
			for x := bars[i]; x < bars[i+1]; x++ {
				if x < 0 || x >= width {
					continue
				}
				cells[y*width+x] = value
			}
		}
	}
}

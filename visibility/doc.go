// Package visibility implements the manipulator line-of-sight test: can
// an agent standing at one cell see another cell, given that WALL cells
// block sight?
//
// What:
//
//   - IsVisible(origin, target, grid) walks the integer cells pierced by
//     the straight segment between the two cell centers and reports
//     false as soon as one is out of bounds or a WALL.
//   - Grid access is abstracted behind the CellLookup interface so this
//     package never imports simgrid; simgrid's Map implements CellLookup
//     and calls into here.
//
// Why:
//
//   - The segment-to-cell test needs exact comparisons against
//     half-integer cell boundaries (x ± 1/2); package rational supplies
//     those without float64's boundary-grazing false positives/negatives.
//
// Algorithm:
//
//   - Vertical segment (origin.X == target.X): every cell (origin.X, y)
//     for y between the two Y coordinates, inclusive.
//   - Otherwise: reorder so origin.X < target.X, compute the exact slope
//     as a Rational, and for each integer column x in range intersect
//     the segment with that column's [x-1/2, x+1/2] strip (clipped to
//     the segment's own X range) to get the row span touched in that
//     column.
package visibility

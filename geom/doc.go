// Package geom provides integer grid geometry: points, direction vectors,
// and orthogonal polygon scanline filling.
//
// What:
//
//   - Point is an integer (X, Y) pair with addition, subtraction, equality
//     and a total lex order (by X then Y).
//   - Direction constants name the four axis-aligned unit steps used by
//     the executor's movement instructions.
//   - FillPolygon rasterizes an orthogonal polygon (and its obstacle
//     cut-outs) into a flat Cell slice using a horizontal scanline over
//     vertical edges, per row.
//
// Why:
//
//   - Keeping geometry free of any simulation-state import lets the
//     scanline fill be tested and reasoned about in total isolation from
//     booster bookkeeping, undo, or agents.
//
// Complexity:
//
//   - FillPolygon: O(H * V) where H is grid height and V is the total
//     vertex count across the mine polygon and all obstacle polygons.
package geom

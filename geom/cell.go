package geom

// Cell is the state of one grid cell.
type Cell uint8

const (
	// CellEmpty is traversable and not yet wrapped.
	CellEmpty Cell = iota
	// CellFilled is traversable and already wrapped. Monotonic under
	// normal play; only Undo ever turns a CellFilled back to CellEmpty.
	CellFilled
	// CellWall is impassable without an active drill.
	CellWall
)

// String renders the cell using the canonical debug-grid glyphs from
// Map.ToString: '#' wall, ' ' empty, '.' filled.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return " "
	case CellFilled:
		return "."
	case CellWall:
		return "#"
	default:
		return "?"
	}
}

package simgrid

import (
	"github.com/dkrasov/wrapgrid/booster"
	"github.com/dkrasov/wrapgrid/geom"
	"github.com/dkrasov/wrapgrid/taskio"
	"github.com/dkrasov/wrapgrid/visibility"
	"github.com/dkrasov/wrapgrid/wrapper"
)

// Cell re-exports geom.Cell so callers of simgrid rarely need to import
// geom directly for the one type they share.
type Cell = geom.Cell

const (
	CellEmpty  = geom.CellEmpty
	CellFilled = geom.CellFilled
	CellWall   = geom.CellWall
)

// Map is the deterministic simulator: grid, booster map, reset beacons,
// agent roster, global booster inventory, and the undo backlog, all
// owned exclusively by this value. Map is not safe for concurrent use
// (see doc.go).
type Map struct {
	width, height int
	cells         []geom.Cell
	boosters      map[geom.Point]booster.Kind
	resets        map[geom.Point]struct{}

	agents []*wrapper.Agent

	collectedB, collectedF, collectedL, collectedR, collectedC int

	remaining int
	numSteps  int

	backlog []backlogEntry
}

// NewMap constructs a Map from a parsed Descriptor: it rasterizes the
// mine polygon and obstacles (package geom), seeds the booster map, adds
// agent 0 at the descriptor's start position, and performs agent 0's
// initial Fill.
func NewMap(desc taskio.Descriptor) (*Map, error) {
	cells, width, height := geom.FillPolygon(desc.Polygon, desc.Obstacles)

	boosters := make(map[geom.Point]booster.Kind, len(desc.Boosters))
	for _, b := range desc.Boosters {
		boosters[b.Point] = b.Kind
	}

	m := &Map{
		width:    width,
		height:   height,
		cells:    cells,
		boosters: boosters,
		resets:   make(map[geom.Point]struct{}),
		agents:   []*wrapper.Agent{wrapper.New(desc.Start)},
	}

	for _, c := range m.cells {
		if c == geom.CellEmpty {
			m.remaining++
		}
	}

	m.fill(m.agents[0], nil)

	return m, nil
}

// Width returns the grid width in cells.
func (m *Map) Width() int { return m.width }

// Height returns the grid height in cells.
func (m *Map) Height() int { return m.height }

// Remaining returns the count of cells still EMPTY (not yet wrapped).
func (m *Map) Remaining() int { return m.remaining }

// NumSteps returns the count of Run calls since construction, net of Undo.
func (m *Map) NumSteps() int { return m.numSteps }

// Agents returns the live agent roster. The returned slice must not be
// mutated by callers; use Run to change agent state.
func (m *Map) Agents() []*wrapper.Agent { return m.agents }

// At returns the cell at p. p must be InMap(p); At does no bounds check
// of its own, so an out-of-bounds p either panics or reads an unrelated
// cell of the flat array (a programmer bug, not a recoverable condition).
func (m *Map) At(p geom.Point) geom.Cell {
	return m.cells[m.index(p)]
}

// GetBooster reports the booster sitting at p, if any.
func (m *Map) GetBooster(p geom.Point) (booster.Kind, bool) {
	k, ok := m.boosters[p]
	return k, ok
}

// InMap reports whether p lies within the grid boundaries.
func (m *Map) InMap(p geom.Point) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// InBounds satisfies visibility.CellLookup.
func (m *Map) InBounds(p geom.Point) bool { return m.InMap(p) }

// IsVisible reports whether a manipulator at origin can see target,
// i.e. whether the straight segment between them crosses no WALL cell.
func (m *Map) IsVisible(origin, target geom.Point) bool {
	return visibility.IsVisible(origin, target, m)
}

// CollectedB returns the current manipulator-extension inventory.
func (m *Map) CollectedB() int { return m.collectedB }

// CollectedF returns the current fast-wheels inventory.
func (m *Map) CollectedF() int { return m.collectedF }

// CollectedL returns the current drill inventory.
func (m *Map) CollectedL() int { return m.collectedL }

// CollectedR returns the current teleport-beacon-stock inventory.
func (m *Map) CollectedR() int { return m.collectedR }

// CollectedC returns the current cloning-stock inventory.
func (m *Map) CollectedC() int { return m.collectedC }

func (m *Map) index(p geom.Point) int {
	return p.Y*m.width + p.X
}

func (m *Map) cellAt(p geom.Point) *geom.Cell {
	return &m.cells[m.index(p)]
}

package simgrid

import (
	"github.com/dkrasov/wrapgrid/booster"
	"github.com/dkrasov/wrapgrid/geom"
	"github.com/dkrasov/wrapgrid/wrapper"
)

// Undo reverses the most recent Run call, restoring every field it
// touched bit-for-bit: cell values, agent position/manipulators/timers/
// pending booster, the global inventory counters, the reset-beacon set,
// the agent roster (for Clone), and the step counter. Calling Undo with
// an empty backlog is a programmer error and panics.
func (m *Map) Undo() {
	if len(m.backlog) == 0 {
		panic(ErrEmptyBacklog)
	}

	entry := m.backlog[len(m.backlog)-1]
	m.backlog = m.backlog[:len(m.backlog)-1]
	a := m.agents[entry.agentIndex]

	for i := len(entry.updatedCells) - 1; i >= 0; i-- {
		d := entry.updatedCells[i]
		cell := m.cellAt(d.Point)
		*cell = d.Prior
		if d.Prior == geom.CellEmpty {
			m.remaining++
		}
	}

	switch entry.action {
	case actW:
		m.undoMove(a, entry, geom.North, false)
	case actWW:
		m.undoMove(a, entry, geom.North, true)
	case actS:
		m.undoMove(a, entry, geom.South, false)
	case actSS:
		m.undoMove(a, entry, geom.South, true)
	case actA:
		m.undoMove(a, entry, geom.West, false)
	case actAA:
		m.undoMove(a, entry, geom.West, true)
	case actD:
		m.undoMove(a, entry, geom.East, false)
	case actDD:
		m.undoMove(a, entry, geom.East, true)

	case actQ:
		a.RotateClockwise()
	case actE:
		a.RotateCounterClockwise()
	case actZ:
		// no-op

	case actB:
		a.RemoveManipulator()
		m.collectedB++

	case actF:
		m.collectedF++

	case actL:
		m.collectedL++

	case actR:
		delete(m.resets, a.Position)
		m.collectedR++

	case actT:
		a.Position = entry.teleportOrigin

	case actC:
		m.agents = m.agents[:len(m.agents)-1]
		m.collectedC++
	}

	if entry.prePending != booster.None {
		m.debitBooster(entry.prePending)
	}
	a.Pending = entry.prePending

	a.FastCount = entry.preFastCount
	a.DrillCount = entry.preDrillCount

	m.numSteps--
}

// undoMove reverses one or two sub-moves made in direction dir,
// reinserting any booster picked up along the way at the exact cell it
// was taken from before backing the agent's position up.
func (m *Map) undoMove(a *wrapper.Agent, entry backlogEntry, dir geom.Point, double bool) {
	if double {
		if entry.secondBooster != booster.None {
			m.boosters[a.Position] = entry.secondBooster
		}
		a.Position = a.Position.Sub(dir)
	}
	if entry.firstBooster != booster.None {
		m.boosters[a.Position] = entry.firstBooster
	}
	a.Position = a.Position.Sub(dir)
}

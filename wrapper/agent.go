package wrapper

import (
	"github.com/dkrasov/wrapgrid/booster"
	"github.com/dkrasov/wrapgrid/geom"
)

// defaultManipulators is the manipulator layout every new Agent starts
// with: one straight ahead, two diagonal.
func defaultManipulators() []geom.Point {
	return []geom.Point{{X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1}}
}

// Agent is one wrapper's mutable state. Agents live in a slice owned by
// simgrid.Map and are addressed by index; no Agent pointer should
// outlive a Run/Undo call that might append or pop the roster.
type Agent struct {
	Position     geom.Point
	Manipulators []geom.Point
	FastCount    int
	DrillCount   int
	Pending      booster.Kind
}

// New returns a fresh Agent at p with the default manipulator layout,
// no active timers, and no pending booster.
func New(p geom.Point) *Agent {
	return &Agent{
		Position:     p,
		Manipulators: defaultManipulators(),
		Pending:      booster.None,
	}
}

// RotateClockwise rotates every manipulator offset clockwise:
// (dx,dy) -> (-dy,dx).
func (a *Agent) RotateClockwise() {
	for i, m := range a.Manipulators {
		a.Manipulators[i] = geom.RotateClockwise(m)
	}
}

// RotateCounterClockwise rotates every manipulator offset counter-
// clockwise: (dx,dy) -> (dy,-dx).
func (a *Agent) RotateCounterClockwise() {
	for i, m := range a.Manipulators {
		a.Manipulators[i] = geom.RotateCounterClockwise(m)
	}
}

// AddManipulator appends p to the manipulator list. Callers (simgrid's
// executor) are responsible for checking CanExtend first.
func (a *Agent) AddManipulator(p geom.Point) {
	a.Manipulators = append(a.Manipulators, p)
}

// RemoveManipulator pops the most recently added manipulator. This is
// the exact inverse of AddManipulator, used to undo a B instruction.
func (a *Agent) RemoveManipulator() {
	a.Manipulators = a.Manipulators[:len(a.Manipulators)-1]
}

// CanExtend reports whether p is a legal new manipulator offset: p is
// not the origin, p is not already present, and p is 4-neighbor-
// adjacent to the origin or to some existing manipulator (the new
// manipulator must connect to the agent's existing manipulator shape).
func (a *Agent) CanExtend(p geom.Point) bool {
	origin := geom.Point{}
	if p.Equal(origin) {
		return false
	}
	for _, m := range a.Manipulators {
		if p.Equal(m) {
			return false
		}
	}
	dirs := [4]geom.Point{{X: 0, Y: 1}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: -1, Y: 0}}
	for _, dir := range dirs {
		cand := p.Add(dir)
		if cand.Equal(origin) {
			return true
		}
		for _, m := range a.Manipulators {
			if cand.Equal(m) {
				return true
			}
		}
	}
	return false
}

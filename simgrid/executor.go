package simgrid

import (
	"github.com/dkrasov/wrapgrid/booster"
	"github.com/dkrasov/wrapgrid/geom"
	"github.com/dkrasov/wrapgrid/taskio"
	"github.com/dkrasov/wrapgrid/wrapper"
)

// fastWheelsDuration and drillDuration are the active-turn counts set on
// pickup: the turn of the F/L instruction itself consumes one, leaving
// 50/30 further turns of the effect active.
const (
	fastWheelsDuration = 51
	drillDuration      = 31
)

// Run dispatches inst for the agent at agentIndex. On any result other
// than Success, the Map is left byte-for-byte unchanged: every
// precondition is validated before the first mutation happens.
func (m *Map) Run(agentIndex int, inst taskio.Instruction) RunResult {
	if agentIndex < 0 || agentIndex >= len(m.agents) {
		return ErrNoWrapperResult
	}
	a := m.agents[agentIndex]

	if result := m.validate(a, inst); result != Success {
		return result
	}

	entry := backlogEntry{
		agentIndex:    agentIndex,
		preFastCount:  a.FastCount,
		preDrillCount: a.DrillCount,
		prePending:    a.Pending,
	}

	if a.Pending != booster.None {
		m.creditBooster(a.Pending)
		a.Pending = booster.None
	}

	m.dispatch(a, inst, &entry)

	if a.FastCount > 0 {
		a.FastCount--
	}
	if a.DrillCount > 0 {
		a.DrillCount--
	}

	m.numSteps++
	m.backlog = append(m.backlog, entry)
	return Success
}

// DryRun reports what Run would do without leaving any observable
// change, by running it for real and immediately undoing a success.
func (m *Map) DryRun(agentIndex int, inst taskio.Instruction) RunResult {
	result := m.Run(agentIndex, inst)
	if result == Success {
		m.Undo()
	}
	return result
}

// validate checks every precondition for inst without mutating
// anything, so Run can guarantee a non-Success result never touches
// state.
func (m *Map) validate(a *wrapper.Agent, inst taskio.Instruction) RunResult {
	switch inst.Type {
	case taskio.Up, taskio.Down, taskio.Left, taskio.Right:
		target := a.Position.Add(directionFor(inst.Type))
		if !m.InMap(target) {
			return ErrOutOfMapResult
		}
		if m.At(target) == geom.CellWall && a.DrillCount == 0 {
			return ErrWallResult
		}
		return Success

	case taskio.RotateCW, taskio.RotateCCW, taskio.NoOp:
		return Success

	case taskio.AttachManip:
		if m.collectedB <= 0 {
			return ErrNoBoosterResult
		}
		if !a.CanExtend(inst.Arg) {
			return ErrBadManipulatorPositionResult
		}
		return Success

	case taskio.UseFastWheels:
		if m.collectedF <= 0 {
			return ErrNoBoosterResult
		}
		return Success

	case taskio.UseDrill:
		if m.collectedL <= 0 {
			return ErrNoBoosterResult
		}
		return Success

	case taskio.PlaceBeacon:
		if m.collectedR <= 0 {
			return ErrNoBoosterResult
		}
		if _, already := m.resets[a.Position]; already {
			return ErrNoBoosterResult
		}
		if k, ok := m.boosters[a.Position]; ok && k == booster.ClonePad {
			return ErrNoBoosterResult
		}
		return Success

	case taskio.Teleport:
		if !m.InMap(inst.Arg) {
			return ErrBadTeleportPositionResult
		}
		if _, ok := m.resets[inst.Arg]; !ok {
			return ErrUnknownTeleportPositionResult
		}
		return Success

	case taskio.Clone:
		if m.collectedC <= 0 {
			return ErrNoBoosterResult
		}
		if k, ok := m.boosters[a.Position]; !ok || k != booster.ClonePad {
			return ErrBadClonePositionResult
		}
		return Success

	default:
		return ErrUnknownInstructionResult
	}
}

// dispatch performs the mutation for inst. It assumes validate already
// passed, so the only branches left are the ones that always succeed.
func (m *Map) dispatch(a *wrapper.Agent, inst taskio.Instruction, entry *backlogEntry) {
	switch inst.Type {
	case taskio.Up:
		m.dispatchMove(a, geom.North, entry, actW, actWW)
	case taskio.Down:
		m.dispatchMove(a, geom.South, entry, actS, actSS)
	case taskio.Left:
		m.dispatchMove(a, geom.West, entry, actA, actAA)
	case taskio.Right:
		m.dispatchMove(a, geom.East, entry, actD, actDD)

	case taskio.RotateCCW:
		entry.action = actQ
		a.RotateCounterClockwise()
		m.fill(a, entry)

	case taskio.RotateCW:
		entry.action = actE
		a.RotateClockwise()
		m.fill(a, entry)

	case taskio.NoOp:
		entry.action = actZ

	case taskio.AttachManip:
		entry.action = actB
		a.AddManipulator(inst.Arg)
		m.collectedB--
		m.fill(a, entry)

	case taskio.UseFastWheels:
		entry.action = actF
		a.FastCount = fastWheelsDuration
		m.collectedF--

	case taskio.UseDrill:
		entry.action = actL
		a.DrillCount = drillDuration
		m.collectedL--

	case taskio.PlaceBeacon:
		entry.action = actR
		m.resets[a.Position] = struct{}{}
		m.collectedR--

	case taskio.Teleport:
		entry.action = actT
		entry.teleportOrigin = a.Position
		a.Position = inst.Arg
		m.fill(a, entry)

	case taskio.Clone:
		entry.action = actC
		m.collectedC--
		m.agents = append(m.agents, wrapper.New(a.Position))
	}
}

// dispatchMove performs the first sub-move, which must succeed (validate
// already confirmed it will), then attempts a second sub-move if fast
// wheels are active. A failing second sub-move is not a Run failure: it
// is recorded as the single-step action tag.
func (m *Map) dispatchMove(a *wrapper.Agent, dir geom.Point, entry *backlogEntry, single, double actionTag) {
	m.moveOnce(a, dir, entry, true)
	entry.action = single
	if a.FastCount > 0 {
		if m.moveOnce(a, dir, entry, false) {
			entry.action = double
		}
	}
}

// moveOnce advances a by dir one cell, recording any booster picked up
// there. It reports whether the move happened; a false return (only
// possible on the optional fast-wheels second step) leaves a untouched.
func (m *Map) moveOnce(a *wrapper.Agent, dir geom.Point, entry *backlogEntry, first bool) bool {
	target := a.Position.Add(dir)
	if !m.InMap(target) {
		return false
	}
	if m.At(target) == geom.CellWall && a.DrillCount == 0 {
		return false
	}
	a.Position = target
	m.fill(a, entry)
	if k, ok := m.boosters[target]; ok && k != booster.ClonePad {
		delete(m.boosters, target)
		a.Pending = k
		if first {
			entry.firstBooster = k
		} else {
			entry.secondBooster = k
		}
	}
	return true
}

// directionFor maps the four move instruction types to their grid
// direction vector.
func directionFor(t taskio.InstructionType) geom.Point {
	switch t {
	case taskio.Up:
		return geom.North
	case taskio.Down:
		return geom.South
	case taskio.Left:
		return geom.West
	default:
		return geom.East
	}
}

// fill wraps a's body cell and every manipulator cell visible from its
// position. entry may be nil (construction-time initial fill, which is
// never undone).
func (m *Map) fill(a *wrapper.Agent, entry *backlogEntry) {
	m.fillBody(a.Position, entry)
	for _, offset := range a.Manipulators {
		target := a.Position.Add(offset)
		if !m.IsVisible(a.Position, target) {
			continue
		}
		cell := m.cellAt(target)
		if *cell == geom.CellEmpty {
			if entry != nil {
				entry.updatedCells = append(entry.updatedCells, cellDelta{Point: target, Prior: *cell})
			}
			*cell = geom.CellFilled
			m.remaining--
		}
	}
}

// fillBody flips the agent's own cell from EMPTY to FILLED; a WALL cell
// entered with an active drill stays WALL. The prior value is recorded
// even when nothing changes (a harmless no-op entry on Undo).
func (m *Map) fillBody(p geom.Point, entry *backlogEntry) {
	cell := m.cellAt(p)
	if entry != nil {
		entry.updatedCells = append(entry.updatedCells, cellDelta{Point: p, Prior: *cell})
	}
	if *cell == geom.CellEmpty {
		m.remaining--
		*cell = geom.CellFilled
	}
}

// creditBooster increments the inventory counter for k. ClonePad (X) is
// never collected, so it credits nothing.
func (m *Map) creditBooster(k booster.Kind) {
	switch k {
	case booster.Manipulator:
		m.collectedB++
	case booster.FastWheels:
		m.collectedF++
	case booster.Drill:
		m.collectedL++
	case booster.Teleport:
		m.collectedR++
	case booster.CloneStock:
		m.collectedC++
	}
}

// debitBooster reverses creditBooster, used by Undo to roll back a
// deferred pending-booster commit.
func (m *Map) debitBooster(k booster.Kind) {
	switch k {
	case booster.Manipulator:
		m.collectedB--
	case booster.FastWheels:
		m.collectedF--
	case booster.Drill:
		m.collectedL--
	case booster.Teleport:
		m.collectedR--
	case booster.CloneStock:
		m.collectedC--
	}
}

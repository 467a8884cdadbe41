package simgrid

import (
	"github.com/dkrasov/wrapgrid/booster"
	"github.com/dkrasov/wrapgrid/geom"
)

// actionTag discriminates how Undo reverses one backlog entry. Move
// actions come in single- and double-step variants so Undo knows
// whether fast wheels carried the agent one or two cells this turn.
type actionTag int

const (
	actNone actionTag = iota
	actW
	actWW
	actS
	actSS
	actA
	actAA
	actD
	actDD
	actQ
	actE
	actZ
	actB
	actF
	actL
	actR
	actT
	actC
)

// cellDelta records one cell's value immediately before a Fill call
// flipped it, so Undo can write it back.
type cellDelta struct {
	Point geom.Point
	Prior geom.Cell
}

// backlogEntry holds everything needed to reverse exactly one Run call.
type backlogEntry struct {
	agentIndex int

	preFastCount  int
	preDrillCount int
	prePending    booster.Kind

	action         actionTag
	teleportOrigin geom.Point
	firstBooster   booster.Kind
	secondBooster  booster.Kind
	updatedCells   []cellDelta
}

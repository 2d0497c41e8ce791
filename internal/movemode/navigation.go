package movemode

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/edgesnap/internal/geom"
)

// minSize is the smallest client width or height a resize may produce.
const minSize = 1

// stepDelta converts an arrow press into a displacement.
func stepDelta(dir Direction, step int) (dx, dy int) {
	switch dir {
	case DirUp:
		return 0, -step
	case DirDown:
		return 0, step
	case DirLeft:
		return -step, 0
	case DirRight:
		return step, 0
	}
	return 0, 0
}

// proposeMove returns the client position an arrow press asks for.
func proposeMove(cur geom.Rect, dir Direction, step int) (x, y int) {
	dx, dy := stepDelta(dir, step)
	return cur.X + dx, cur.Y + dy
}

// proposeResize returns the client size an arrow press asks for. The
// top-left corner stays put, so Right and Down grow the window while Left
// and Up shrink it.
func proposeResize(cur geom.Rect, dir Direction, step int) (w, h int) {
	dx, dy := stepDelta(dir, step)
	return max(minSize, cur.Width+dx), max(minSize, cur.Height+dy)
}

// pointerMove returns the client position for a pointer at (x, y).
func pointerMove(orig geom.Rect, anchorX, anchorY, x, y int) (int, int) {
	return orig.X + x - anchorX, orig.Y + y - anchorY
}

// pointerResize returns the client size for a pointer at (x, y).
func pointerResize(orig geom.Rect, anchorX, anchorY, x, y int) (int, int) {
	return max(minSize, orig.Width+x-anchorX), max(minSize, orig.Height+y-anchorY)
}

// modifierMask maps a snap_modifier name to its X modifier bit. "none"
// and unknown names map to 0, which disables snapping.
func modifierMask(name string) uint16 {
	switch name {
	case "shift":
		return xproto.ModMaskShift
	case "control":
		return xproto.ModMaskControl
	case "mod1":
		return xproto.ModMask1
	case "mod4":
		return xproto.ModMask4
	default:
		return 0
	}
}

// stepSize picks the coarse or fine step for a key event state. Control
// selects the fine step unless it is also the snap modifier.
func stepSize(state, snapMask uint16, coarse, fine int) int {
	if snapMask != xproto.ModMaskControl && state&xproto.ModMaskControl != 0 {
		return fine
	}
	return coarse
}

// wantsSnap reports whether the event state holds the snap modifier.
func wantsSnap(state, snapMask uint16) bool {
	return snapMask != 0 && state&snapMask == snapMask
}

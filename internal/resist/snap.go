package resist

import (
	"github.com/1broseidon/edgesnap/internal/edges"
	"github.com/1broseidon/edgesnap/internal/geom"
)

// applySnap moves a side to the nearest aligned edge found in either a or b.
// Keyboard snapping only goes forward. Pointer snapping ignores a small
// wobble that would otherwise jump at least jitter pixels.
func applySnap(oldPos, newPos int, moving geom.Rect, a, b []edges.Edge, isKeyboard bool, jitter int) int {
	if oldPos == newPos {
		return newPos
	}

	pos1 := edges.NearestAligned(a, newPos, oldPos, moving, isKeyboard)
	pos2 := edges.NearestAligned(b, newPos, oldPos, moving, isKeyboard)

	if isKeyboard {
		if !edges.PointsOnSameSide(oldPos, pos1, newPos) {
			return pos2
		}
		if !edges.PointsOnSameSide(oldPos, pos2, newPos) {
			return pos1
		}
	}

	best := pos2
	if abs(pos1-newPos) < abs(pos2-newPos) {
		best = pos1
	}

	if !isKeyboard && abs(best-oldPos) >= jitter && abs(newPos-oldPos) < jitter {
		return oldPos
	}
	return best
}

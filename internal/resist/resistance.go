package resist

import (
	"time"

	"github.com/1broseidon/edgesnap/internal/edges"
	"github.com/1broseidon/edgesnap/internal/geom"
)

// applyResistance walks the edges between oldPos and newPos for one side
// and returns where that side is allowed to go. s.mu must be held.
func (s *GrabSession) applyResistance(side edges.Side, oldPos, newPos int, moving geom.Rect, onRelease func(edges.WindowID), isKeyboard bool) int {
	if oldPos == newPos {
		return newPos
	}

	st := &s.states[side]
	list := s.cache.Side(side)

	if st.timeoutSetup &&
		((st.timerEdgePos > oldPos && st.timerEdgePos > newPos) ||
			(st.timerEdgePos < oldPos && st.timerEdgePos < newPos)) {
		s.cancelTimeout(st)
	}

	increasing := newPos > oldPos
	increment := -1
	if increasing {
		increment = 1
	}

	begin := edges.RangeBoundary(list, oldPos, increasing)
	end := edges.RangeBoundary(list, newPos, !increasing)

	okToClear := false
	buildupEdge := 0

	for i := begin; (increasing && i <= end) || (!increasing && i >= end); i += increment {
		edge := list[i]
		if !edge.Aligns(moving) {
			continue
		}

		pos := edge.Position()
		toward := edge.Side.Toward(increment)
		limits := s.thresholds.For(edge.Class)

		if isKeyboard {
			// Buildup follows the edge coordinate. Edges sharing a
			// position all count toward the same buildup.
			if okToClear && pos != buildupEdge {
				okToClear = false
				st.keyboardBuildup = 0
			}

			if abs(pos-newPos) < limits.keyboard(toward)-st.keyboardBuildup {
				if st.keyboardBuildup != 0 {
					st.keyboardBuildup += abs(newPos - pos)
				} else {
					st.keyboardBuildup = 1
				}
				return pos
			}
			okToClear = true
			buildupEdge = pos
			continue
		}

		if edge.Class == edges.ClassScreen && !st.allowPastScreenEdge && toward {
			return pos
		}

		if toward {
			timeout := s.timeoutFor(edge.Class)
			if !st.timeoutSetup && timeout != 0 {
				s.armTimeout(side, st, pos, timeout, onRelease)
			}
			if !st.timerElapsed && timeout != 0 {
				return pos
			}
		}

		if abs(pos-newPos) < limits.pixels(toward) {
			return pos
		}
	}

	if okToClear && newPos != buildupEdge {
		st.keyboardBuildup = 0
	}
	return newPos
}

// timeoutFor returns the delay before an approached edge of class c can be
// crossed with the pointer.
func (s *GrabSession) timeoutFor(c edges.Class) time.Duration {
	switch c {
	case edges.ClassMonitor:
		if s.single {
			return s.thresholds.Monitor.Timeout
		}
	case edges.ClassScreen:
		if s.onscreen {
			return s.thresholds.Screen.Timeout
		}
	default:
		return s.thresholds.Window.Timeout
	}
	return 0
}

func (s *GrabSession) armTimeout(side edges.Side, st *sideState, pos int, d time.Duration, onRelease func(edges.WindowID)) {
	s.seq++
	seq := s.seq

	st.timeoutSetup = true
	st.timerEdgePos = pos
	st.timerElapsed = false
	st.onRelease = onRelease
	st.taskSeq = seq
	st.task = s.sched.AfterFunc(d, func() { s.timeoutFired(side, seq) })

	s.logger.Debug("edge timeout armed", "side", side, "position", pos, "delay", d)
}

// cancelTimeout forgets the side's timeout and stops its task if it has not
// run yet. s.mu must be held.
func (s *GrabSession) cancelTimeout(st *sideState) {
	st.timeoutSetup = false
	st.taskSeq = 0
	if st.task != nil {
		st.task.Stop()
		st.task = nil
	}
}

// timeoutFired runs on the scheduler's goroutine. Tasks that were cancelled
// or belong to a released grab are ignored.
func (s *GrabSession) timeoutFired(side edges.Side, seq uint64) {
	s.mu.Lock()
	st := &s.states[side]
	if s.cache == nil || st.taskSeq != seq {
		s.mu.Unlock()
		return
	}
	st.timerElapsed = true
	st.task = nil
	cb := st.onRelease
	window := s.window
	s.mu.Unlock()

	s.logger.Debug("edge timeout elapsed", "side", side, "window", window)
	if cb != nil {
		cb(window)
	}
}

package resist

import (
	"log/slog"
	"sync"

	"github.com/1broseidon/edgesnap/internal/edges"
	"github.com/1broseidon/edgesnap/internal/geom"
)

// GrabInput is everything ComputeEdges needs about a grab that is starting.
type GrabInput struct {
	// Stack lists the windows of the active workspace, bottom to top.
	Stack  []edges.Window
	Target edges.GrabTarget

	// Outer returns the current frame rectangle of the grabbed window.
	// Coordinates given to ResistMove and ResistResize refer to the client
	// area; Outer maps them onto the frame.
	Outer func() geom.Rect

	MonitorEdges []edges.Edge
	ScreenEdges  []edges.Edge

	// AnchorY is the pointer's root y when the grab started and InitialY
	// the window's y at that time. Screen edges stay passable for the top
	// side only when AnchorY >= InitialY.
	AnchorY  int
	InitialY int

	RequireFullyOnscreen bool
	RequireSingleMonitor bool
}

// sideState is the resistance bookkeeping for one side of the grabbed
// window.
type sideState struct {
	timeoutSetup bool
	task         Task
	taskSeq      uint64
	timerEdgePos int
	timerElapsed bool
	onRelease    func(edges.WindowID)

	keyboardBuildup     int
	allowPastScreenEdge bool
}

// GrabSession owns the edge cache and resistance state of one grab.
type GrabSession struct {
	mu         sync.Mutex
	thresholds Thresholds
	sched      Scheduler
	logger     *slog.Logger

	cache    *edges.Cache
	states   [4]sideState
	window   edges.WindowID
	outer    func() geom.Rect
	onscreen bool
	single   bool
	seq      uint64
	lastSnap bool
}

// NewGrabSession creates an idle session. A nil scheduler means
// RealScheduler and a nil logger means slog.Default().
func NewGrabSession(thresholds Thresholds, sched Scheduler, logger *slog.Logger) *GrabSession {
	if sched == nil {
		sched = RealScheduler{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GrabSession{
		thresholds: thresholds,
		sched:      sched,
		logger:     logger,
	}
}

// SetThresholds replaces the thresholds used by later grabs and moves.
func (s *GrabSession) SetThresholds(t Thresholds) {
	s.mu.Lock()
	s.thresholds = t
	s.mu.Unlock()
}

// ComputeEdges builds the edge cache for a new grab and resets all
// resistance state. It panics if the previous grab was not released.
func (s *GrabSession) ComputeEdges(in GrabInput) {
	if in.Outer == nil {
		panic("resist: GrabInput.Outer is nil")
	}

	windowEdges := edges.Extract(in.Stack, in.Target)
	cache := edges.NewCache(windowEdges, in.MonitorEdges, in.ScreenEdges)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cache != nil {
		panic("resist: ComputeEdges called while a grab is active")
	}

	s.cache = cache
	s.window = in.Target.Window
	s.outer = in.Outer
	s.onscreen = in.RequireFullyOnscreen
	s.single = in.RequireSingleMonitor
	s.lastSnap = false
	for i := range s.states {
		s.states[i] = sideState{allowPastScreenEdge: true}
	}
	s.states[edges.SideTop].allowPastScreenEdge = in.AnchorY >= in.InitialY

	s.logger.Debug("edges computed",
		"window", in.Target.Window,
		"window_edges", len(windowEdges),
		"monitor_edges", len(in.MonitorEdges),
		"screen_edges", len(in.ScreenEdges),
		"top_past_screen", s.states[edges.SideTop].allowPastScreenEdge)
}

// ReleaseEdges cancels every pending timeout and drops the cache. It
// panics when no grab is active.
func (s *GrabSession) ReleaseEdges() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mustBeActive("ReleaseEdges")
	for i := range s.states {
		s.cancelTimeout(&s.states[i])
	}
	s.cache = nil
	s.outer = nil
	s.logger.Debug("edges released", "window", s.window)
}

// Active reports whether edges are computed.
func (s *GrabSession) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache != nil
}

// Cache returns the current edge cache, or nil between grabs. Callers must
// not modify it.
func (s *GrabSession) Cache() *edges.Cache {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache
}

// LastActionWasSnap reports whether the most recent move or resize asked
// for snapping.
func (s *GrabSession) LastActionWasSnap() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSnap
}

// ResistMove adjusts a proposed client position. Only the position changes;
// resistance never resizes the window during a move.
func (s *GrabSession) ResistMove(oldX, oldY, newX, newY int, onRelease func(edges.WindowID), snap, isKeyboard bool) (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeActive("ResistMove")

	oldOuter := s.outer()
	proposed := oldOuter
	proposed.X += newX - oldX
	proposed.Y += newY - oldY
	newOuter := proposed

	s.lastSnap = snap
	if !s.resistOrSnapAllSides(oldOuter, &newOuter, onRelease, snap, isKeyboard) {
		return newX, newY
	}

	// Each side was resisted on its own. Move both sides of an axis by the
	// smaller of their changes so the size stays put.
	reference := oldOuter
	if snap && !isKeyboard {
		reference = proposed
	}

	dx := smallerChange(
		newOuter.Left()-reference.Left(),
		newOuter.Right()-reference.Right(),
		snap && isKeyboard)
	dy := smallerChange(
		newOuter.Top()-reference.Top(),
		newOuter.Bottom()-reference.Bottom(),
		snap && isKeyboard)

	x := oldX + dx + (reference.X - oldOuter.X)
	y := oldY + dy + (reference.Y - oldOuter.Y)
	return x, y
}

// ResistResize adjusts a proposed client size. gravity names the point that
// stays fixed while the frame is resized.
func (s *GrabSession) ResistResize(oldW, oldH, newW, newH int, gravity geom.Gravity, onRelease func(edges.WindowID), snap, isKeyboard bool) (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeActive("ResistResize")

	oldOuter := s.outer()
	newOuter := geom.ResizeWithGravity(oldOuter, gravity,
		oldOuter.Width+(newW-oldW),
		oldOuter.Height+(newH-oldH))

	s.lastSnap = snap
	if !s.resistOrSnapAllSides(oldOuter, &newOuter, onRelease, snap, isKeyboard) {
		return newW, newH
	}
	return oldW + (newOuter.Width - oldOuter.Width), oldH + (newOuter.Height - oldOuter.Height)
}

// smallerChange picks the change with the smaller magnitude. With keyboard
// snapping a side that did not move defers to the other one, so snapping
// still works when one side already sits on an edge.
func smallerChange(first, second int, keyboardSnap bool) int {
	switch {
	case keyboardSnap && first == 0:
		return second
	case keyboardSnap && second == 0:
		return first
	case abs(first) < abs(second):
		return first
	default:
		return second
	}
}

// resistOrSnapAllSides resists or snaps every side of newOuter on its own
// and reports whether anything changed. s.mu must be held.
func (s *GrabSession) resistOrSnapAllSides(oldOuter geom.Rect, newOuter *geom.Rect, onRelease func(edges.WindowID), snap, isKeyboard bool) bool {
	c := s.cache
	moving := *newOuter

	var left, right, top, bottom int
	if snap {
		jitter := s.thresholds.SnapJitter
		left = applySnap(oldOuter.Left(), moving.Left(), moving, c.Left, c.Right, isKeyboard, jitter)
		right = applySnap(oldOuter.Right(), moving.Right(), moving, c.Left, c.Right, isKeyboard, jitter)
		top = applySnap(oldOuter.Top(), moving.Top(), moving, c.Top, c.Bottom, isKeyboard, jitter)
		bottom = applySnap(oldOuter.Bottom(), moving.Bottom(), moving, c.Top, c.Bottom, isKeyboard, jitter)
	} else {
		left = s.applyResistance(edges.SideLeft, oldOuter.Left(), moving.Left(), moving, onRelease, isKeyboard)
		right = s.applyResistance(edges.SideRight, oldOuter.Right(), moving.Right(), moving, onRelease, isKeyboard)
		top = s.applyResistance(edges.SideTop, oldOuter.Top(), moving.Top(), moving, onRelease, isKeyboard)
		bottom = s.applyResistance(edges.SideBottom, oldOuter.Bottom(), moving.Bottom(), moving, onRelease, isKeyboard)
	}

	modified := geom.Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
	changed := !modified.Equal(*newOuter)
	*newOuter = modified
	return changed
}

func (s *GrabSession) mustBeActive(op string) {
	if s.cache == nil {
		panic("resist: " + op + " called before ComputeEdges")
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

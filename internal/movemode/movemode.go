package movemode

import (
	"fmt"
	"log"
	"log/slog"
	"sync"
	"time"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"

	"github.com/1broseidon/edgesnap/internal/config"
	"github.com/1broseidon/edgesnap/internal/edges"
	"github.com/1broseidon/edgesnap/internal/geom"
	"github.com/1broseidon/edgesnap/internal/platform"
	"github.com/1broseidon/edgesnap/internal/resist"
)

// Default idle timeout for a grab (in seconds)
const DefaultTimeout = 10

// x11Accessor is an optional interface for backends that expose X11 internals.
type x11Accessor interface {
	XUtil() *xgbutil.XUtil
	RootWindow() xproto.Window
}

// Mode drives keyboard and pointer move/resize grabs of the active window
// through an edge resistance session.
type Mode struct {
	mu              sync.Mutex
	backend         platform.Backend
	session         *resist.GrabSession
	xu              *xgbutil.XUtil
	root            xproto.Window
	config          *config.Config
	state           *State
	stats           Stats
	timeout         *time.Timer
	timeoutDuration time.Duration
	snapMask        uint16

	grabWindow       xproto.Window
	handlersAttached bool

	// grabInput and releaseInput take and drop the keyboard and pointer.
	grabInput    func() error
	releaseInput func()
}

// NewMode creates a grab controller. logger receives the resistance
// session's debug output.
func NewMode(backend platform.Backend, cfg *config.Config, logger *slog.Logger) *Mode {
	var xu *xgbutil.XUtil
	var root xproto.Window
	if accessor, ok := backend.(x11Accessor); ok {
		xu = accessor.XUtil()
		root = accessor.RootWindow()
	}

	m := &Mode{
		backend: backend,
		session: resist.NewGrabSession(cfg.Thresholds(), nil, logger),
		xu:      xu,
		root:    root,
		state:   NewState(),
	}
	m.grabInput = m.grabKeyboard
	m.releaseInput = m.ungrabKeyboard
	m.applyConfig(cfg)
	return m
}

// IsActive returns true if a grab is in progress
func (m *Mode) IsActive() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Active
}

// Stats returns the grab counters and the current grab, if any.
func (m *Mode) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.stats
	if m.state.Active {
		s.Active = true
		s.Kind = m.state.Kind.String()
		s.Window = m.state.Window
	}
	return s
}

// Enter starts a grab of the active window.
func (m *Mode) Enter(kind Kind) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Active {
		return nil
	}

	window, err := m.backend.ActiveWindow()
	if err != nil {
		log.Printf("Grab: failed to get active window: %v", err)
		return err
	}

	snap, err := m.backend.Snapshot(window)
	if err != nil {
		log.Printf("Grab: failed to read window state: %v", err)
		return err
	}

	monitorEdges, screenEdges := edges.WorkspaceEdges(snap.UsableAreas())

	*m.state = State{
		Active:   true,
		Kind:     kind,
		Window:   window,
		Original: snap.Client,
		Current:  snap.Client,
		Base:     snap.Client,
		frame:    frameBetween(snap.Client, snap.Outer),
		AnchorX:  snap.PointerX,
		AnchorY:  snap.PointerY,
		LastX:    snap.PointerX,
		LastY:    snap.PointerY,
		Started:  time.Now(),
	}

	m.session.ComputeEdges(resist.GrabInput{
		Stack: snap.Stack,
		Target: edges.GrabTarget{
			Window:     window,
			ScreenRect: snap.Screen,
		},
		Outer:                m.state.Outer,
		MonitorEdges:         monitorEdges,
		ScreenEdges:          screenEdges,
		AnchorY:              snap.PointerY,
		InitialY:             snap.Outer.Y,
		RequireFullyOnscreen: m.config.RequireFullyOnscreen,
		RequireSingleMonitor: m.config.RequireSingleMonitor,
	})

	if err := m.grabInput(); err != nil {
		log.Printf("Grab: failed to grab keyboard: %v", err)
		m.session.ReleaseEdges()
		m.state.Reset()
		return err
	}

	m.stats.Grabs++
	m.startTimeout()

	log.Printf("Grab: %s window %d from %d,%d %dx%d", kind, window,
		snap.Client.X, snap.Client.Y, snap.Client.Width, snap.Client.Height)
	return nil
}

// Exit ends the grab and keeps the current geometry.
func (m *Mode) Exit() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Active {
		m.stats.Confirmed++
	}
	m.exitLocked()
}

func (m *Mode) exitLocked() {
	if !m.state.Active {
		return
	}

	if m.timeout != nil {
		m.timeout.Stop()
		m.timeout = nil
	}

	m.session.ReleaseEdges()
	m.releaseInput()

	log.Printf("Grab: released window %d at %d,%d %dx%d", m.state.Window,
		m.state.Current.X, m.state.Current.Y, m.state.Current.Width, m.state.Current.Height)
	m.state.Reset()
}

// HandleArrowKey processes an arrow key press. state is the X modifier
// mask of the key event.
func (m *Mode) HandleArrowKey(dir Direction, state uint16) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.state.Active {
		return
	}

	m.handleArrowKeyLocked(dir, state)
}

// HandleMotion processes pointer motion to root position (x, y).
func (m *Mode) HandleMotion(x, y int, state uint16) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.state.Active {
		return
	}

	m.startTimeout()
	m.state.LastX, m.state.LastY = x, y
	m.state.LastSnap = wantsSnap(state, m.snapMask)
	m.stats.PointerSteps++
	m.applyPointerLocked()
}

// HandleConfirm processes the Enter key press
func (m *Mode) HandleConfirm() {
	m.Exit()
}

// HandleCancel restores the original geometry and ends the grab.
func (m *Mode) HandleCancel() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.state.Active {
		return
	}

	log.Println("Grab: cancelled")
	m.applyLocked(m.state.Original)
	m.stats.Cancelled++
	m.exitLocked()
}

func (m *Mode) handleArrowKeyLocked(dir Direction, state uint16) {
	m.startTimeout()

	step := stepSize(state, m.snapMask, m.config.KeyboardStep, m.config.KeyboardFineStep)
	snap := wantsSnap(state, m.snapMask)
	cur := m.state.Current
	next := cur

	switch m.state.Kind {
	case KindMove:
		newX, newY := proposeMove(cur, dir, step)
		next.X, next.Y = m.session.ResistMove(cur.X, cur.Y, newX, newY, m.onRelease, snap, true)
		m.countLocked(next.X != newX || next.Y != newY, snap)
	case KindResize:
		newW, newH := proposeResize(cur, dir, step)
		next.Width, next.Height = m.session.ResistResize(cur.Width, cur.Height, newW, newH,
			geom.GravityNorthWest, m.onRelease, snap, true)
		m.countLocked(next.Width != newW || next.Height != newH, snap)
	}

	m.stats.KeyboardSteps++
	m.applyLocked(next)

	// Later pointer motion continues from here.
	m.state.Base = m.state.Current
	m.state.AnchorX, m.state.AnchorY = m.state.LastX, m.state.LastY
}

// applyPointerLocked resists the geometry the last pointer position asks
// for. It runs on motion and again when a resistance timeout elapses.
func (m *Mode) applyPointerLocked() {
	s := m.state
	cur := s.Current
	next := cur

	switch s.Kind {
	case KindMove:
		newX, newY := pointerMove(s.Base, s.AnchorX, s.AnchorY, s.LastX, s.LastY)
		next.X, next.Y = m.session.ResistMove(cur.X, cur.Y, newX, newY, m.onRelease, s.LastSnap, false)
		m.countLocked(next.X != newX || next.Y != newY, s.LastSnap)
	case KindResize:
		newW, newH := pointerResize(s.Base, s.AnchorX, s.AnchorY, s.LastX, s.LastY)
		next.Width, next.Height = m.session.ResistResize(cur.Width, cur.Height, newW, newH,
			geom.GravityNorthWest, m.onRelease, s.LastSnap, false)
		m.countLocked(next.Width != newW || next.Height != newH, s.LastSnap)
	}

	m.applyLocked(next)
}

// onRelease is called by the resistance session when an edge timeout
// elapses, so the held-back pointer position can be applied.
func (m *Mode) onRelease(window platform.WindowID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.state.Active || m.state.Window != window {
		return
	}

	m.stats.Released++
	log.Printf("Grab: edge timeout elapsed for window %d", window)
	m.applyPointerLocked()
}

func (m *Mode) countLocked(resisted, snap bool) {
	switch {
	case snap:
		m.stats.Snapped++
	case resisted:
		m.stats.Resisted++
	}
}

func (m *Mode) applyLocked(r geom.Rect) {
	if r == m.state.Current {
		return
	}
	if err := m.backend.MoveResize(m.state.Window, r); err != nil {
		log.Printf("Grab: failed to move window %d: %v", m.state.Window, err)
		return
	}
	m.state.Current = r
}

// startTimeout starts or resets the idle timeout
func (m *Mode) startTimeout() {
	if m.timeout != nil {
		m.timeout.Stop()
	}

	m.timeout = time.AfterFunc(m.timeoutDuration, func() {
		m.mu.Lock()
		defer m.mu.Unlock()

		if m.state.Active {
			log.Println("Grab: timeout - keeping current geometry")
			m.stats.TimedOut++
			m.exitLocked()
		}
	})
}

// UpdateConfig applies a reloaded configuration. A grab in progress keeps
// its edges but uses the new thresholds from the next step on.
func (m *Mode) UpdateConfig(cfg *config.Config) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.applyConfig(cfg)
}

func (m *Mode) applyConfig(cfg *config.Config) {
	m.config = cfg
	m.snapMask = modifierMask(cfg.SnapModifier)
	m.session.SetThresholds(cfg.Thresholds())

	timeout := DefaultTimeout
	if cfg.GrabTimeout > 0 {
		timeout = cfg.GrabTimeout
	}
	m.timeoutDuration = time.Duration(timeout) * time.Second
}

// PreviewEdges returns the edge cache of the current grab, or builds one
// for the active window when no grab is running.
func (m *Mode) PreviewEdges() (*edges.Cache, platform.WindowID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Active {
		return m.session.Cache(), m.state.Window, nil
	}

	window, err := m.backend.ActiveWindow()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get active window: %w", err)
	}
	snap, err := m.backend.Snapshot(window)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read window state: %w", err)
	}

	monitorEdges, screenEdges := edges.WorkspaceEdges(snap.UsableAreas())
	windowEdges := edges.Extract(snap.Stack, edges.GrabTarget{Window: window, ScreenRect: snap.Screen})
	return edges.NewCache(windowEdges, monitorEdges, screenEdges), window, nil
}

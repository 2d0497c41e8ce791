package movemode

import (
	"time"

	"github.com/1broseidon/edgesnap/internal/geom"
	"github.com/1broseidon/edgesnap/internal/platform"
)

// Kind selects what a grab changes.
type Kind int

const (
	KindMove Kind = iota
	KindResize
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Direction represents an arrow key direction
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// frame holds the decoration sizes around the grabbed client.
type frame struct {
	left, right, top, bottom int
}

func frameBetween(client, outer geom.Rect) frame {
	return frame{
		left:   client.X - outer.X,
		top:    client.Y - outer.Y,
		right:  outer.Right() - client.Right(),
		bottom: outer.Bottom() - client.Bottom(),
	}
}

func (f frame) outer(client geom.Rect) geom.Rect {
	return geom.Rect{
		X:      client.X - f.left,
		Y:      client.Y - f.top,
		Width:  client.Width + f.left + f.right,
		Height: client.Height + f.top + f.bottom,
	}
}

// State holds the grab that is in progress, if any.
type State struct {
	Active bool
	Kind   Kind
	Window platform.WindowID

	// Original is the client rectangle when the grab started and Current
	// the rectangle last sent to the window manager.
	Original geom.Rect
	Current  geom.Rect
	frame    frame

	// Base is where pointer deltas are measured from. Keyboard steps move
	// it to the current rectangle.
	Base geom.Rect

	// Pointer position at grab start and at the last motion event.
	AnchorX, AnchorY int
	LastX, LastY     int
	LastSnap         bool

	Started time.Time
}

// NewState creates a new inactive state
func NewState() *State {
	return &State{}
}

// Reset resets the state to inactive
func (s *State) Reset() {
	*s = State{}
}

// Outer returns the current frame rectangle.
func (s *State) Outer() geom.Rect {
	return s.frame.outer(s.Current)
}

// Stats counts what grabs did since the daemon started.
type Stats struct {
	Active        bool              `json:"active"`
	Kind          string            `json:"kind,omitempty"`
	Window        platform.WindowID `json:"window,omitempty"`
	Grabs         uint64            `json:"grabs"`
	Confirmed     uint64            `json:"confirmed"`
	Cancelled     uint64            `json:"cancelled"`
	TimedOut      uint64            `json:"timed_out"`
	KeyboardSteps uint64            `json:"keyboard_steps"`
	PointerSteps  uint64            `json:"pointer_steps"`
	Resisted      uint64            `json:"resisted"`
	Snapped       uint64            `json:"snapped"`
	Released      uint64            `json:"released"`
}

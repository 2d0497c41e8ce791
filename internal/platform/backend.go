package platform

import (
	"github.com/1broseidon/edgesnap/internal/edges"
	"github.com/1broseidon/edgesnap/internal/geom"
)

// WindowID is a platform-neutral window identifier.
type WindowID = edges.WindowID

// Display describes a physical display and its usable work area.
type Display struct {
	ID     int
	Name   string
	Bounds geom.Rect
	Usable geom.Rect
}

// Snapshot is the window-system state a grab starts from.
type Snapshot struct {
	// Stack lists the managed windows bottom to top.
	Stack    []edges.Window
	Screen   geom.Rect
	Displays []Display
	Struts   []geom.Rect

	// Client and Outer are the grabbed window's client and frame
	// rectangles in root coordinates.
	Client geom.Rect
	Outer  geom.Rect

	PointerX int
	PointerY int
}

// UsableAreas returns the usable area of every display.
func (s Snapshot) UsableAreas() []geom.Rect {
	areas := make([]geom.Rect, 0, len(s.Displays))
	for _, d := range s.Displays {
		areas = append(areas, d.Usable)
	}
	return areas
}

// Backend abstracts window-system operations across platforms.
type Backend interface {
	Displays() ([]Display, error)
	ActiveWindow() (WindowID, error)
	Snapshot(grabbed WindowID) (Snapshot, error)
	// MoveResize places the client area of a window.
	MoveResize(windowID WindowID, client geom.Rect) error
}

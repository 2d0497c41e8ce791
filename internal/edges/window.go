package edges

import "github.com/1broseidon/edgesnap/internal/geom"

// WindowID identifies a top-level client window.
type WindowID uint32

// WindowType mirrors the _NET_WM_WINDOW_TYPE values that matter for edges.
type WindowType int

const (
	TypeNormal WindowType = iota
	TypeDesktop
	TypeDock
	TypeMenu
	TypeSplash
	TypeDialog
	TypeToolbar
	TypeUtility
)

// String returns the string representation of the window type
func (t WindowType) String() string {
	switch t {
	case TypeNormal:
		return "normal"
	case TypeDesktop:
		return "desktop"
	case TypeDock:
		return "dock"
	case TypeMenu:
		return "menu"
	case TypeSplash:
		return "splash"
	case TypeDialog:
		return "dialog"
	case TypeToolbar:
		return "toolbar"
	case TypeUtility:
		return "utility"
	default:
		return "unknown"
	}
}

// Window is one entry of the stacking order as seen by edge extraction.
type Window struct {
	ID      WindowID
	Type    WindowType
	Outer   geom.Rect // frame rectangle in root coordinates
	Showing bool
	Screen  int
}

// GrabTarget describes the window being moved or resized.
type GrabTarget struct {
	Window     WindowID
	Screen     int
	ScreenRect geom.Rect
}

// Relevant reports whether w can resist or obscure edges during the grab.
func Relevant(w Window, grab GrabTarget) bool {
	if !w.Showing || w.Screen != grab.Screen || w.ID == grab.Window {
		return false
	}
	switch w.Type {
	case TypeDesktop, TypeMenu, TypeSplash:
		return false
	}
	return true
}

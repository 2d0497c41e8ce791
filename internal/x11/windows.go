package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/1broseidon/edgesnap/internal/geom"
)

// FrameExtents are the decoration sizes the window manager adds around a
// client.
type FrameExtents struct {
	Left, Right, Top, Bottom int
}

// Grow returns the frame rectangle around client r.
func (f FrameExtents) Grow(r geom.Rect) geom.Rect {
	return geom.Rect{
		X:      r.X - f.Left,
		Y:      r.Y - f.Top,
		Width:  r.Width + f.Left + f.Right,
		Height: r.Height + f.Top + f.Bottom,
	}
}

// StackEntry is one managed window as read from the server.
type StackEntry struct {
	ID      xproto.Window
	Types   []string // _NET_WM_WINDOW_TYPE atoms, most specific first
	Client  geom.Rect
	Outer   geom.Rect
	Hidden  bool
	Desktop int // Sticky for all desktops
}

// MoveResizeWindow moves and resizes a window's client area.
func (c *Connection) MoveResizeWindow(windowID xproto.Window, r geom.Rect) error {
	// Resizing a maximized window is ignored by most window managers.
	c.unmaximizeWindow(windowID)

	err := ewmh.MoveresizeWindow(c.XUtil, windowID, r.X, r.Y, r.Width, r.Height)
	if err != nil {
		// Fallback to direct window manipulation
		xwindow.New(c.XUtil, windowID).MoveResize(r.X, r.Y, r.Width, r.Height)
	}
	return nil
}

func (c *Connection) unmaximizeWindow(windowID xproto.Window) {
	states, err := ewmh.WmStateGet(c.XUtil, windowID)
	if err != nil {
		return
	}
	for _, state := range states {
		switch state {
		case "_NET_WM_STATE_MAXIMIZED_HORZ", "_NET_WM_STATE_MAXIMIZED_VERT":
			ewmh.WmStateReq(c.XUtil, windowID, ewmh.StateRemove, state)
		}
	}
}

// GetFrameExtents returns the window decoration sizes, or zeros when the
// window manager does not publish them.
func (c *Connection) GetFrameExtents(windowID xproto.Window) FrameExtents {
	extents, err := ewmh.FrameExtentsGet(c.XUtil, windowID)
	if err != nil {
		return FrameExtents{}
	}
	return FrameExtents{
		Left:   extents.Left,
		Right:  extents.Right,
		Top:    extents.Top,
		Bottom: extents.Bottom,
	}
}

// ClientGeometry returns the client rectangle in root coordinates.
func (c *Connection) ClientGeometry(windowID xproto.Window) (geom.Rect, error) {
	g, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return geom.Rect{}, fmt.Errorf("failed to get geometry of window %d: %w", windowID, err)
	}

	translate, err := xproto.TranslateCoordinates(c.XUtil.Conn(), windowID, c.Root, 0, 0).Reply()
	if err != nil {
		return geom.Rect{}, fmt.Errorf("failed to translate window %d: %w", windowID, err)
	}

	return geom.Rect{
		X:      int(translate.DstX),
		Y:      int(translate.DstY),
		Width:  int(g.Width),
		Height: int(g.Height),
	}, nil
}

// StackingWindows returns the managed windows bottom to top. Windows whose
// geometry cannot be read (usually because they were just destroyed) are
// left out.
func (c *Connection) StackingWindows() ([]StackEntry, error) {
	clients, err := ewmh.ClientListStackingGet(c.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to get stacking client list: %w", err)
	}

	entries := make([]StackEntry, 0, len(clients))
	for _, windowID := range clients {
		client, err := c.ClientGeometry(windowID)
		if err != nil {
			continue
		}

		entry := StackEntry{
			ID:      windowID,
			Client:  client,
			Outer:   c.GetFrameExtents(windowID).Grow(client),
			Desktop: c.windowDesktop(windowID),
		}
		if types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID); err == nil {
			entry.Types = types
		}
		if states, err := ewmh.WmStateGet(c.XUtil, windowID); err == nil {
			for _, state := range states {
				if state == "_NET_WM_STATE_HIDDEN" {
					entry.Hidden = true
				}
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (c *Connection) GetActiveWindow() (xproto.Window, error) {
	return ewmh.ActiveWindowGet(c.XUtil)
}

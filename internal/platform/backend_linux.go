//go:build linux

package platform

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"

	"github.com/1broseidon/edgesnap/internal/geom"
	"github.com/1broseidon/edgesnap/internal/x11"
)

// LinuxBackend wraps an existing X11 connection behind the platform Backend interface.
type LinuxBackend struct {
	conn *x11.Connection
}

var _ Backend = (*LinuxBackend)(nil)

// NewLinuxBackend creates a Linux platform backend from an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection) *LinuxBackend {
	return &LinuxBackend{conn: conn}
}

// NewLinuxBackendFromDisplay opens a new X11 connection to display.
func NewLinuxBackendFromDisplay(display string) (*LinuxBackend, error) {
	conn, err := x11.NewConnection(display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &LinuxBackend{conn: conn}, nil
}

// Disconnect closes the underlying X11 connection.
func (b *LinuxBackend) Disconnect() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// EventLoop starts the X11 event loop (blocking).
func (b *LinuxBackend) EventLoop() {
	if b != nil && b.conn != nil {
		b.conn.EventLoop()
	}
}

// Quit stops EventLoop.
func (b *LinuxBackend) Quit() {
	if b != nil && b.conn != nil {
		b.conn.Quit()
	}
}

// XUtil returns the underlying xgbutil connection for X11-specific operations.
func (b *LinuxBackend) XUtil() *xgbutil.XUtil {
	if b == nil || b.conn == nil {
		return nil
	}
	return b.conn.XUtil
}

// RootWindow returns the X11 root window ID.
func (b *LinuxBackend) RootWindow() xproto.Window {
	if b == nil || b.conn == nil {
		return 0
	}
	return b.conn.Root
}

// Displays returns all active displays with dock struts removed from
// their usable areas.
func (b *LinuxBackend) Displays() ([]Display, error) {
	conn, err := b.connection()
	if err != nil {
		return nil, err
	}

	screen, err := conn.ScreenRect()
	if err != nil {
		return nil, err
	}
	monitors, err := conn.GetMonitors()
	if err != nil {
		return nil, err
	}
	struts, err := conn.DockStruts(screen)
	if err != nil {
		// Without a client list every display is fully usable.
		struts = nil
	}

	// Some servers report no CRTCs (Xvfb, nested servers).
	if len(monitors) == 0 {
		monitors = []x11.Monitor{{Name: "screen", Bounds: screen}}
	}

	displays := make([]Display, 0, len(monitors))
	for _, m := range monitors {
		displays = append(displays, Display{
			ID:     m.ID,
			Name:   m.Name,
			Bounds: m.Bounds,
			Usable: usableArea(m.Bounds, struts),
		})
	}

	sort.Slice(displays, func(i, j int) bool {
		return displays[i].ID < displays[j].ID
	})

	return displays, nil
}

// ActiveWindow returns the currently active/focused window ID.
func (b *LinuxBackend) ActiveWindow() (WindowID, error) {
	conn, err := b.connection()
	if err != nil {
		return 0, err
	}

	wid, err := conn.GetActiveWindow()
	if err != nil {
		return 0, err
	}
	if wid == 0 {
		return 0, fmt.Errorf("no active window")
	}
	return WindowID(wid), nil
}

// Snapshot reads everything a grab of the given window needs.
func (b *LinuxBackend) Snapshot(grabbed WindowID) (Snapshot, error) {
	conn, err := b.connection()
	if err != nil {
		return Snapshot{}, err
	}

	screen, err := conn.ScreenRect()
	if err != nil {
		return Snapshot{}, err
	}
	displays, err := b.Displays()
	if err != nil {
		return Snapshot{}, err
	}
	entries, err := conn.StackingWindows()
	if err != nil {
		return Snapshot{}, err
	}

	client, err := conn.ClientGeometry(xproto.Window(grabbed))
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		Stack:    stackWindows(entries, conn.CurrentDesktop()),
		Screen:   screen,
		Displays: displays,
		Client:   client,
		Outer:    conn.GetFrameExtents(xproto.Window(grabbed)).Grow(client),
	}
	if struts, err := conn.DockStruts(screen); err == nil {
		for _, s := range struts {
			snap.Struts = append(snap.Struts, s.Area)
		}
	}
	if x, y, err := conn.PointerPosition(); err == nil {
		snap.PointerX, snap.PointerY = x, y
	}
	return snap, nil
}

// MoveResize places the client area of a window.
func (b *LinuxBackend) MoveResize(windowID WindowID, client geom.Rect) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.MoveResizeWindow(xproto.Window(windowID), client)
}

func (b *LinuxBackend) connection() (*x11.Connection, error) {
	if b == nil || b.conn == nil {
		return nil, fmt.Errorf("x11 backend connection is nil")
	}
	return b.conn, nil
}

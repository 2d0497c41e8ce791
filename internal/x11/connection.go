package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/1broseidon/edgesnap/internal/geom"
)

// Connection manages the X11 connection and core X resources
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
}

// NewConnection connects to the named display ("" means $DISPLAY) and
// initializes keybind so hotkeys and keyboard grabs can be used.
func NewConnection(display string) (*Connection, error) {
	xu, err := xgbutil.NewConnDisplay(display)
	if err != nil {
		return nil, err
	}

	keybind.Initialize(xu)

	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
	}, nil
}

// EventLoop starts the main X11 event loop (blocking)
func (c *Connection) EventLoop() {
	xevent.Main(c.XUtil)
}

// Quit stops a running EventLoop.
func (c *Connection) Quit() {
	xevent.Quit(c.XUtil)
}

// Close cleanly disconnects from the X11 server
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}

// ScreenRect returns the root window geometry.
func (c *Connection) ScreenRect() (geom.Rect, error) {
	g, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(c.Root)).Reply()
	if err != nil {
		return geom.Rect{}, fmt.Errorf("failed to get root geometry: %w", err)
	}
	return geom.Rect{Width: int(g.Width), Height: int(g.Height)}, nil
}

// PointerPosition returns the pointer position in root coordinates.
func (c *Connection) PointerPosition() (x, y int, err error) {
	pointer, err := xproto.QueryPointer(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query pointer: %w", err)
	}
	return int(pointer.RootX), int(pointer.RootY), nil
}

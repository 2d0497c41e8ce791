package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// Sticky is the desktop number reported for windows shown on every desktop.
const Sticky = -1

// allDesktops is the _NET_WM_DESKTOP value for sticky windows.
const allDesktops = 0xFFFFFFFF

// CurrentDesktop reads _NET_CURRENT_DESKTOP. It returns -1 when the window
// manager does not publish virtual desktops, which disables desktop
// filtering.
func (c *Connection) CurrentDesktop() int {
	desktop, err := ewmh.CurrentDesktopGet(c.XUtil)
	if err != nil {
		return -1
	}
	return int(desktop)
}

// windowDesktop reads _NET_WM_DESKTOP for win. Windows without the
// property count as Sticky.
func (c *Connection) windowDesktop(win xproto.Window) int {
	desktop, err := ewmh.WmDesktopGet(c.XUtil, win)
	if err != nil || desktop == allDesktops {
		return Sticky
	}
	return int(desktop)
}

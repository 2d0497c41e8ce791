package movemode

import (
	"fmt"
	"log"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
)

const (
	keysymUp      = 0xff52
	keysymDown    = 0xff54
	keysymLeft    = 0xff51
	keysymRight   = 0xff53
	keysymReturn  = 0xff0d
	keysymEscape  = 0xff1b
	keysymKPEnter = 0xff8d
)

// grabKeyboard grabs the keyboard and pointer and routes their events to
// the grab window.
func (m *Mode) grabKeyboard() error {
	xu := m.xu
	if xu == nil {
		return fmt.Errorf("no X11 connection")
	}
	if err := m.ensureGrabWindow(); err != nil {
		return err
	}

	grab := func() (*xproto.GrabKeyboardReply, error) {
		cookie := xproto.GrabKeyboard(
			xu.Conn(),
			false,                  // owner_events (report events to grab_window)
			m.root,                 // grab_window (must be viewable)
			xproto.TimeCurrentTime, // time
			xproto.GrabModeAsync,   // pointer_mode
			xproto.GrabModeAsync,   // keyboard_mode
		)
		return cookie.Reply()
	}

	reply, err := grab()
	if err != nil {
		return err
	}

	// Entered from a globally grabbed hotkey, the keyboard may already be
	// grabbed by this client. If so, ungrab and retry.
	if reply.Status == xproto.GrabStatusAlreadyGrabbed {
		xproto.UngrabKeyboard(xu.Conn(), xproto.TimeCurrentTime)
		reply, err = grab()
		if err != nil {
			return err
		}
	}

	if reply.Status != xproto.GrabStatusSuccess {
		return fmt.Errorf("keyboard grab failed with status %d", reply.Status)
	}

	// The pointer is optional; keyboard-only grabs still work without it.
	pointer, err := xproto.GrabPointer(
		xu.Conn(),
		false,
		m.grabWindow,
		uint16(xproto.EventMaskPointerMotion|xproto.EventMaskButtonPress),
		xproto.GrabModeAsync,
		xproto.GrabModeAsync,
		xproto.WindowNone,
		xproto.CursorNone,
		xproto.TimeCurrentTime,
	).Reply()
	if err != nil || pointer.Status != xproto.GrabStatusSuccess {
		log.Println("Grab: pointer grab failed; keyboard only")
	}

	xevent.RedirectKeyEvents(xu, m.grabWindow)

	if !m.handlersAttached {
		xevent.KeyPressFun(m.handleKeyPress).Connect(xu, m.grabWindow)
		xevent.MotionNotifyFun(m.handleMotionNotify).Connect(xu, m.grabWindow)
		xevent.ButtonPressFun(m.handleButtonPress).Connect(xu, m.grabWindow)
		m.handlersAttached = true
	}

	log.Println("Grab: keyboard grabbed")
	return nil
}

// ungrabKeyboard releases the keyboard and pointer grabs
func (m *Mode) ungrabKeyboard() {
	xu := m.xu
	if xu == nil {
		return
	}

	xproto.UngrabKeyboard(xu.Conn(), xproto.TimeCurrentTime)
	xproto.UngrabPointer(xu.Conn(), xproto.TimeCurrentTime)
	xevent.RedirectKeyEvents(xu, 0)

	if m.handlersAttached && m.grabWindow != 0 {
		xevent.Detach(xu, m.grabWindow)
		m.handlersAttached = false
	}

	log.Println("Grab: keyboard released")
}

func (m *Mode) ensureGrabWindow() error {
	if m.grabWindow != 0 {
		return nil
	}

	conn := m.xu.Conn()

	wid, err := xproto.NewWindowId(conn)
	if err != nil {
		return err
	}

	// InputOnly window that never draws anything; it only receives the
	// grabbed key and pointer events.
	err = xproto.CreateWindowChecked(
		conn,
		0, // depth (must be 0 for InputOnly)
		wid,
		m.root,
		0, 0, // x, y
		1, 1, // width, height
		0, // border_width
		xproto.WindowClassInputOnly,
		xproto.Visualid(0), // CopyFromParent
		xproto.CwEventMask,
		[]uint32{uint32(xproto.EventMaskKeyPress)},
	).Check()
	if err != nil {
		return err
	}

	xproto.MapWindow(conn, wid)

	m.grabWindow = wid
	return nil
}

// handleKeyPress processes key events while keyboard is grabbed
func (m *Mode) handleKeyPress(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
	keysym := keybind.KeysymGet(xu, ev.Detail, 0)

	switch keysym {
	case keysymUp:
		m.HandleArrowKey(DirUp, ev.State)
	case keysymDown:
		m.HandleArrowKey(DirDown, ev.State)
	case keysymLeft:
		m.HandleArrowKey(DirLeft, ev.State)
	case keysymRight:
		m.HandleArrowKey(DirRight, ev.State)
	case keysymReturn, keysymKPEnter:
		m.HandleConfirm()
	case keysymEscape:
		m.HandleCancel()
	}
}

func (m *Mode) handleMotionNotify(xu *xgbutil.XUtil, ev xevent.MotionNotifyEvent) {
	m.HandleMotion(int(ev.RootX), int(ev.RootY), ev.State)
}

// A click ends the grab where the window is, as a keyboard move does in
// most window managers.
func (m *Mode) handleButtonPress(xu *xgbutil.XUtil, ev xevent.ButtonPressEvent) {
	m.HandleConfirm()
}

package hotkeys

import (
	"fmt"
	"log"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/1broseidon/edgesnap/internal/movemode"
	"github.com/1broseidon/edgesnap/internal/platform"
)

// Grabber starts and ends move/resize grabs.
type Grabber interface {
	IsActive() bool
	Enter(kind movemode.Kind) error
	Exit()
}

// x11Accessor is an optional interface for backends that expose X11 internals.
type x11Accessor interface {
	XUtil() *xgbutil.XUtil
	RootWindow() xproto.Window
}

// keyBinder attaches callbacks to key sequences.
type keyBinder interface {
	// Check reports whether seq can be bound without touching any grab.
	Check(seq string) error
	Bind(seq string, callback func()) error
	// Unbind releases seqs and every callback attached to the root window.
	Unbind(seqs []string)
}

// x11Binder binds sequences as passive key grabs on the root window.
type x11Binder struct {
	xu   *xgbutil.XUtil
	root xproto.Window
}

func (b x11Binder) Check(seq string) error {
	_, _, err := keybind.ParseString(b.xu, seq)
	return err
}

func (b x11Binder) Bind(seq string, callback func()) error {
	return keybind.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
		callback()
	}).Connect(b.xu, b.root, seq, true)
}

func (b x11Binder) Unbind(seqs []string) {
	for _, seq := range seqs {
		mods, codes, err := keybind.ParseString(b.xu, seq)
		if err != nil {
			continue
		}
		for _, code := range codes {
			keybind.Ungrab(b.xu, b.root, mods, code)
		}
	}
	keybind.Detach(b.xu, b.root)
}

// Handler manages global keyboard shortcuts
type Handler struct {
	keys    keyBinder
	grabber Grabber
	bound   []string
	grabs   map[string]movemode.Kind
}

var ignoreModsOnce sync.Once

// NewHandler creates a new hotkey handler.
func NewHandler(backend platform.Backend, grabber Grabber) *Handler {
	var xu *xgbutil.XUtil
	var root xproto.Window
	if accessor, ok := backend.(x11Accessor); ok {
		xu = accessor.XUtil()
		root = accessor.RootWindow()
	}

	ignoreModsOnce.Do(func() {
		configureIgnoreMods(xu)
	})

	return newHandler(x11Binder{xu: xu, root: root}, grabber)
}

func newHandler(keys keyBinder, grabber Grabber) *Handler {
	return &Handler{keys: keys, grabber: grabber, grabs: make(map[string]movemode.Kind)}
}

// RegisterGrab binds keySequence to toggle a grab of the given kind.
// Arrow keys, Enter and Escape are handled by the grab itself.
func (h *Handler) RegisterGrab(keySequence string, kind movemode.Kind) error {
	if h.grabber == nil {
		return fmt.Errorf("grabber not set")
	}

	err := h.RegisterFunc(keySequence, func() {
		toggleGrab(h.grabber, kind)
	})
	if err != nil {
		return fmt.Errorf("failed to register %s hotkey %q: %w", kind, keySequence, err)
	}
	h.grabs[keySequence] = kind
	log.Printf("Hotkeys: %s bound to %s", kind, keySequence)
	return nil
}

// Rebind replaces the move and resize hotkeys. Both sequences are checked
// before any grab is released; if binding still fails, the previous
// grabs are restored and the error is returned.
func (h *Handler) Rebind(moveKeys, resizeKeys string) error {
	for _, seq := range []string{moveKeys, resizeKeys} {
		if err := h.keys.Check(seq); err != nil {
			return fmt.Errorf("invalid hotkey %q: %w", seq, err)
		}
	}

	prev := make(map[string]movemode.Kind, len(h.grabs))
	for seq, kind := range h.grabs {
		prev[seq] = kind
	}
	h.unbindAll()

	err := h.RegisterGrab(moveKeys, movemode.KindMove)
	if err == nil {
		err = h.RegisterGrab(resizeKeys, movemode.KindResize)
	}
	if err == nil {
		return nil
	}

	h.unbindAll()
	for seq, kind := range prev {
		if rerr := h.RegisterGrab(seq, kind); rerr != nil {
			log.Printf("Hotkeys: failed to restore %s: %v", seq, rerr)
		}
	}
	return err
}

// Bound returns the sequences currently bound.
func (h *Handler) Bound() []string {
	return append([]string(nil), h.bound...)
}

func (h *Handler) unbindAll() {
	h.keys.Unbind(h.bound)
	h.bound = nil
	clear(h.grabs)
}

// RegisterFunc registers an arbitrary hotkey callback.
func (h *Handler) RegisterFunc(keySequence string, callback func()) error {
	if err := h.keys.Bind(keySequence, callback); err != nil {
		return err
	}
	h.bound = append(h.bound, keySequence)
	return nil
}

// toggleGrab ends a running grab or starts a new one.
func toggleGrab(g Grabber, kind movemode.Kind) {
	if g.IsActive() {
		g.Exit()
		return
	}
	if err := g.Enter(kind); err != nil {
		log.Printf("Hotkeys: failed to start %s: %v", kind, err)
	}
}

func configureIgnoreMods(xu *xgbutil.XUtil) {
	// Always ignore CapsLock.
	caps := uint16(xproto.ModMaskLock)

	numLock := modMaskForKeysym(xu, "Num_Lock")
	scrollLock := modMaskForKeysym(xu, "Scroll_Lock")

	unique := make(map[uint16]struct{})
	add := func(mask uint16) {
		unique[mask] = struct{}{}
	}

	add(0)
	base := []uint16{caps}
	if numLock != 0 && numLock != caps {
		base = append(base, numLock)
	}
	if scrollLock != 0 && scrollLock != caps && scrollLock != numLock {
		base = append(base, scrollLock)
	}

	for subset := 1; subset < (1 << len(base)); subset++ {
		var mask uint16
		for bit := range base {
			if subset&(1<<bit) != 0 {
				mask |= base[bit]
			}
		}
		add(mask)
	}

	ignore := make([]uint16, 0, len(unique))
	for mask := range unique {
		ignore = append(ignore, mask)
	}

	xevent.IgnoreMods = ignore
}

func modMaskForKeysym(xu *xgbutil.XUtil, keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(xu, keysym) {
		if mask := keybind.ModGet(xu, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}

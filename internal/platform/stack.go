package platform

import (
	"github.com/1broseidon/edgesnap/internal/edges"
	"github.com/1broseidon/edgesnap/internal/geom"
	"github.com/1broseidon/edgesnap/internal/x11"
)

var windowTypes = map[string]edges.WindowType{
	"_NET_WM_WINDOW_TYPE_NORMAL":  edges.TypeNormal,
	"_NET_WM_WINDOW_TYPE_DESKTOP": edges.TypeDesktop,
	"_NET_WM_WINDOW_TYPE_DOCK":    edges.TypeDock,
	"_NET_WM_WINDOW_TYPE_MENU":    edges.TypeMenu,
	"_NET_WM_WINDOW_TYPE_SPLASH":  edges.TypeSplash,
	"_NET_WM_WINDOW_TYPE_DIALOG":  edges.TypeDialog,
	"_NET_WM_WINDOW_TYPE_TOOLBAR": edges.TypeToolbar,
	"_NET_WM_WINDOW_TYPE_UTILITY": edges.TypeUtility,

	// Override-redirect menus are rarely managed, but when they are they
	// behave like menus.
	"_NET_WM_WINDOW_TYPE_DROPDOWN_MENU": edges.TypeMenu,
	"_NET_WM_WINDOW_TYPE_POPUP_MENU":    edges.TypeMenu,
}

// windowType maps _NET_WM_WINDOW_TYPE to the first type it recognises.
// Windows without a known type are normal.
func windowType(types []string) edges.WindowType {
	for _, t := range types {
		if wt, ok := windowTypes[t]; ok {
			return wt
		}
	}
	return edges.TypeNormal
}

// stackWindows converts the server's stacking list. currentDesktop < 0
// means the desktop is unknown and every window counts as shown.
func stackWindows(entries []x11.StackEntry, currentDesktop int) []edges.Window {
	out := make([]edges.Window, 0, len(entries))
	for _, e := range entries {
		showing := !e.Hidden
		if currentDesktop >= 0 && e.Desktop != x11.Sticky && e.Desktop != currentDesktop {
			showing = false
		}
		out = append(out, edges.Window{
			ID:      WindowID(e.ID),
			Type:    windowType(e.Types),
			Outer:   e.Outer,
			Showing: showing,
		})
	}
	return out
}

// usableArea removes the dock struts that overlap a display from its
// bounds. Each side shrinks by the deepest strut reaching into it.
func usableArea(bounds geom.Rect, struts []x11.Strut) geom.Rect {
	var left, right, top, bottom int
	for _, s := range struts {
		isect, ok := bounds.Intersect(s.Area)
		if !ok {
			continue
		}
		switch s.Side {
		case x11.StrutLeft:
			left = max(left, isect.Width)
		case x11.StrutRight:
			right = max(right, isect.Width)
		case x11.StrutTop:
			top = max(top, isect.Height)
		case x11.StrutBottom:
			bottom = max(bottom, isect.Height)
		}
	}

	usable := geom.Rect{
		X:      bounds.X + left,
		Y:      bounds.Y + top,
		Width:  bounds.Width - left - right,
		Height: bounds.Height - top - bottom,
	}
	if usable.Width < 1 {
		usable.Width = 1
	}
	if usable.Height < 1 {
		usable.Height = 1
	}
	return usable
}

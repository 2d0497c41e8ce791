package platform

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/1broseidon/edgesnap/internal/edges"
	"github.com/1broseidon/edgesnap/internal/geom"
	"github.com/1broseidon/edgesnap/internal/x11"
)

func TestWindowType(t *testing.T) {
	tests := []struct {
		name  string
		types []string
		want  edges.WindowType
	}{
		{name: "unset", types: nil, want: edges.TypeNormal},
		{name: "dock", types: []string{"_NET_WM_WINDOW_TYPE_DOCK"}, want: edges.TypeDock},
		{name: "desktop", types: []string{"_NET_WM_WINDOW_TYPE_DESKTOP"}, want: edges.TypeDesktop},
		{name: "first known wins", types: []string{"_KDE_NET_WM_WINDOW_TYPE_OVERRIDE", "_NET_WM_WINDOW_TYPE_DIALOG", "_NET_WM_WINDOW_TYPE_NORMAL"}, want: edges.TypeDialog},
		{name: "popup menu", types: []string{"_NET_WM_WINDOW_TYPE_POPUP_MENU"}, want: edges.TypeMenu},
		{name: "unknown only", types: []string{"_NET_WM_WINDOW_TYPE_NOTIFICATION"}, want: edges.TypeNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := windowType(tt.types); got != tt.want {
				t.Fatalf("windowType(%v) = %v, want %v", tt.types, got, tt.want)
			}
		})
	}
}

func TestStackWindowsShowing(t *testing.T) {
	r := geom.Rect{X: 10, Y: 10, Width: 100, Height: 100}
	entries := []x11.StackEntry{
		{ID: 1, Outer: r, Desktop: 0},
		{ID: 2, Outer: r, Desktop: 1},
		{ID: 3, Outer: r, Desktop: x11.Sticky},
		{ID: 4, Outer: r, Desktop: 0, Hidden: true},
	}

	got := stackWindows(entries, 0)
	want := []edges.Window{
		{ID: 1, Outer: r, Showing: true},
		{ID: 2, Outer: r, Showing: false},
		{ID: 3, Outer: r, Showing: true},
		{ID: 4, Outer: r, Showing: false},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("stackWindows mismatch (-want +got):\n%s", diff)
	}

	// Unknown current desktop: only the hidden flag matters.
	got = stackWindows(entries, -1)
	if !got[1].Showing || got[3].Showing {
		t.Fatalf("unexpected showing flags without desktop: %+v", got)
	}
}

func TestUsableArea(t *testing.T) {
	left := geom.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	right := geom.Rect{X: 1920, Y: 0, Width: 1920, Height: 1080}
	struts := []x11.Strut{
		{Side: x11.StrutTop, Area: geom.Rect{X: 0, Y: 0, Width: 1920, Height: 30}},
		{Side: x11.StrutTop, Area: geom.Rect{X: 0, Y: 0, Width: 800, Height: 48}},
		{Side: x11.StrutRight, Area: geom.Rect{X: 3790, Y: 0, Width: 50, Height: 1080}},
	}

	if got, want := usableArea(left, struts), (geom.Rect{X: 0, Y: 48, Width: 1920, Height: 1032}); got != want {
		t.Fatalf("left usable = %+v, want %+v", got, want)
	}
	if got, want := usableArea(right, struts), (geom.Rect{X: 1920, Y: 0, Width: 1870, Height: 1080}); got != want {
		t.Fatalf("right usable = %+v, want %+v", got, want)
	}
}

func TestUsableAreaNeverCollapses(t *testing.T) {
	bounds := geom.Rect{Width: 100, Height: 100}
	struts := []x11.Strut{{Side: x11.StrutLeft, Area: geom.Rect{Width: 200, Height: 100}}}
	got := usableArea(bounds, struts)
	if got.Width != 1 {
		t.Fatalf("width = %d, want 1", got.Width)
	}
}

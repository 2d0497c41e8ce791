package x11

import (
	"testing"

	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/google/go-cmp/cmp"

	"github.com/1broseidon/edgesnap/internal/geom"
)

func TestStrutsFromPartial(t *testing.T) {
	screen := geom.Rect{Width: 3840, Height: 1080}

	got := StrutsFromPartial(screen, ewmh.WmStrutPartial{
		Top:          30,
		TopStartX:    0,
		TopEndX:      1919,
		Bottom:       40,
		BottomStartX: 1920,
		BottomEndX:   3839,
	})
	want := []Strut{
		{Side: StrutTop, Area: geom.Rect{X: 0, Y: 0, Width: 1920, Height: 30}},
		{Side: StrutBottom, Area: geom.Rect{X: 1920, Y: 1040, Width: 1920, Height: 40}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("StrutsFromPartial mismatch (-want +got):\n%s", diff)
	}
}

func TestStrutsFromPartialEmpty(t *testing.T) {
	if got := StrutsFromPartial(geom.Rect{Width: 800, Height: 600}, ewmh.WmStrutPartial{}); len(got) != 0 {
		t.Fatalf("expected no struts, got %v", got)
	}
}

func TestFrameExtentsGrow(t *testing.T) {
	f := FrameExtents{Left: 2, Right: 3, Top: 20, Bottom: 4}
	got := f.Grow(geom.Rect{X: 100, Y: 100, Width: 200, Height: 100})
	want := geom.Rect{X: 98, Y: 80, Width: 205, Height: 124}
	if got != want {
		t.Fatalf("Grow = %+v, want %+v", got, want)
	}
}

package movemode

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/edgesnap/internal/geom"
)

func TestProposeMove(t *testing.T) {
	cur := geom.Rect{X: 100, Y: 200, Width: 300, Height: 150}

	tests := []struct {
		dir          Direction
		wantX, wantY int
	}{
		{DirUp, 100, 190},
		{DirDown, 100, 210},
		{DirLeft, 90, 200},
		{DirRight, 110, 200},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			x, y := proposeMove(cur, tt.dir, 10)
			if x != tt.wantX || y != tt.wantY {
				t.Fatalf("proposeMove(%v) = (%d, %d), want (%d, %d)", tt.dir, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestProposeResize(t *testing.T) {
	cur := geom.Rect{X: 100, Y: 200, Width: 300, Height: 150}

	tests := []struct {
		name         string
		dir          Direction
		step         int
		wantW, wantH int
	}{
		{"grow right", DirRight, 10, 310, 150},
		{"grow down", DirDown, 10, 300, 160},
		{"shrink left", DirLeft, 10, 290, 150},
		{"shrink up", DirUp, 10, 300, 140},
		{"never below one pixel", DirLeft, 1000, 1, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := proposeResize(cur, tt.dir, tt.step)
			if w != tt.wantW || h != tt.wantH {
				t.Fatalf("proposeResize = (%d, %d), want (%d, %d)", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestPointerProposals(t *testing.T) {
	orig := geom.Rect{X: 100, Y: 100, Width: 200, Height: 100}

	if x, y := pointerMove(orig, 150, 150, 170, 140); x != 120 || y != 90 {
		t.Fatalf("pointerMove = (%d, %d), want (120, 90)", x, y)
	}
	if w, h := pointerResize(orig, 150, 150, 170, 0); w != 220 || h != 1 {
		t.Fatalf("pointerResize = (%d, %d), want (220, 1)", w, h)
	}
}

func TestModifiers(t *testing.T) {
	shift := modifierMask("shift")
	if shift != xproto.ModMaskShift {
		t.Fatalf("modifierMask(shift) = %#x", shift)
	}
	if got := modifierMask("none"); got != 0 {
		t.Fatalf("modifierMask(none) = %#x, want 0", got)
	}

	tests := []struct {
		name     string
		state    uint16
		snapMask uint16
		wantStep int
		wantSnap bool
	}{
		{"plain", 0, shift, 10, false},
		{"shift snaps", xproto.ModMaskShift, shift, 10, true},
		{"control is fine", xproto.ModMaskControl, shift, 1, false},
		{"both", xproto.ModMaskShift | xproto.ModMaskControl, shift, 1, true},
		{"numlock ignored", xproto.ModMask2 | xproto.ModMaskShift, shift, 10, true},
		{"control as snap modifier", xproto.ModMaskControl, xproto.ModMaskControl, 10, true},
		{"snapping disabled", xproto.ModMaskShift, 0, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stepSize(tt.state, tt.snapMask, 10, 1); got != tt.wantStep {
				t.Errorf("stepSize = %d, want %d", got, tt.wantStep)
			}
			if got := wantsSnap(tt.state, tt.snapMask); got != tt.wantSnap {
				t.Errorf("wantsSnap = %v, want %v", got, tt.wantSnap)
			}
		})
	}
}

func TestFrameRoundTrip(t *testing.T) {
	client := geom.Rect{X: 100, Y: 120, Width: 200, Height: 100}
	outer := geom.Rect{X: 98, Y: 100, Width: 204, Height: 122}

	f := frameBetween(client, outer)
	if got := f.outer(client); got != outer {
		t.Fatalf("outer = %+v, want %+v", got, outer)
	}

	moved := client
	moved.X += 50
	if got := f.outer(moved); got.X != 148 || got.Width != 204 {
		t.Fatalf("moved outer = %+v", got)
	}
}

package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/1broseidon/edgesnap/internal/geom"
)

// Monitor represents a physical display
type Monitor struct {
	ID     int
	Name   string
	Bounds geom.Rect
}

// StrutSide names the screen edge a dock reserves space along.
type StrutSide int

const (
	StrutLeft StrutSide = iota
	StrutRight
	StrutTop
	StrutBottom
)

// Strut is the area of the root window a dock reserves.
type Strut struct {
	Side StrutSide
	Area geom.Rect
}

// GetMonitors retrieves all active monitors using XRandR
func (c *Connection) GetMonitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []Monitor
	for i, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}

		name := fmt.Sprintf("Monitor%d", i)
		if output, err := randr.GetOutputInfo(c.XUtil.Conn(), info.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			name = string(output.Name)
		}

		monitors = append(monitors, Monitor{
			ID:   i,
			Name: name,
			Bounds: geom.Rect{
				X:      int(info.X),
				Y:      int(info.Y),
				Width:  int(info.Width),
				Height: int(info.Height),
			},
		})
	}

	return monitors, nil
}

// DockStruts returns the areas reserved by dock windows, read from
// _NET_WM_STRUT_PARTIAL or, for docks that only set it, _NET_WM_STRUT.
func (c *Connection) DockStruts(screen geom.Rect) ([]Strut, error) {
	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to get client list: %w", err)
	}

	var struts []Strut
	for _, windowID := range clients {
		types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
		if err != nil || !hasType(types, "_NET_WM_WINDOW_TYPE_DOCK") {
			continue
		}

		if sp, err := ewmh.WmStrutPartialGet(c.XUtil, windowID); err == nil {
			struts = append(struts, StrutsFromPartial(screen, *sp)...)
			continue
		}

		if s, err := ewmh.WmStrutGet(c.XUtil, windowID); err == nil {
			struts = append(struts, StrutsFromPartial(screen, ewmh.WmStrutPartial{
				Left:       s.Left,
				Right:      s.Right,
				Top:        s.Top,
				Bottom:     s.Bottom,
				LeftEndY:   uint(screen.Height - 1),
				RightEndY:  uint(screen.Height - 1),
				TopEndX:    uint(screen.Width - 1),
				BottomEndX: uint(screen.Width - 1),
			})...)
		}
	}
	return struts, nil
}

// StrutsFromPartial converts a _NET_WM_STRUT_PARTIAL value into root
// rectangles. End coordinates in the property are inclusive.
func StrutsFromPartial(screen geom.Rect, sp ewmh.WmStrutPartial) []Strut {
	var out []Strut
	if sp.Left > 0 {
		out = append(out, Strut{Side: StrutLeft, Area: geom.Rect{
			X: 0, Y: int(sp.LeftStartY),
			Width: int(sp.Left), Height: int(sp.LeftEndY) - int(sp.LeftStartY) + 1,
		}})
	}
	if sp.Right > 0 {
		out = append(out, Strut{Side: StrutRight, Area: geom.Rect{
			X: screen.Width - int(sp.Right), Y: int(sp.RightStartY),
			Width: int(sp.Right), Height: int(sp.RightEndY) - int(sp.RightStartY) + 1,
		}})
	}
	if sp.Top > 0 {
		out = append(out, Strut{Side: StrutTop, Area: geom.Rect{
			X: int(sp.TopStartX), Y: 0,
			Width: int(sp.TopEndX) - int(sp.TopStartX) + 1, Height: int(sp.Top),
		}})
	}
	if sp.Bottom > 0 {
		out = append(out, Strut{Side: StrutBottom, Area: geom.Rect{
			X: int(sp.BottomStartX), Y: screen.Height - int(sp.Bottom),
			Width: int(sp.BottomEndX) - int(sp.BottomStartX) + 1, Height: int(sp.Bottom),
		}})
	}
	return out
}

func hasType(types []string, want string) bool {
	for _, t := range types {
		if t == want {
			return true
		}
	}
	return false
}

package geom

import "fmt"

// Gravity selects the reference point that stays fixed while a rectangle is
// resized. Values match the X11 window gravity constants.
type Gravity int

const (
	GravityNorthWest Gravity = iota + 1
	GravityNorth
	GravityNorthEast
	GravityWest
	GravityCenter
	GravityEast
	GravitySouthWest
	GravitySouth
	GravitySouthEast
	GravityStatic
)

// String returns the string representation of the gravity
func (g Gravity) String() string {
	switch g {
	case GravityNorthWest:
		return "north-west"
	case GravityNorth:
		return "north"
	case GravityNorthEast:
		return "north-east"
	case GravityWest:
		return "west"
	case GravityCenter:
		return "center"
	case GravityEast:
		return "east"
	case GravitySouthWest:
		return "south-west"
	case GravitySouth:
		return "south"
	case GravitySouthEast:
		return "south-east"
	case GravityStatic:
		return "static"
	default:
		return fmt.Sprintf("gravity(%d)", int(g))
	}
}

// ResizeWithGravity returns old resized to width x height, keeping the point
// named by gravity in place. Static gravity behaves like north-west.
func ResizeWithGravity(old Rect, gravity Gravity, width, height int) Rect {
	out := Rect{Width: width, Height: height}

	switch gravity {
	case GravityNorth, GravityCenter, GravitySouth:
		out.X = old.X + (old.Width-width)/2
	case GravityNorthEast, GravityEast, GravitySouthEast:
		out.X = old.X + (old.Width - width)
	default:
		out.X = old.X
	}

	switch gravity {
	case GravityWest, GravityCenter, GravityEast:
		out.Y = old.Y + (old.Height-height)/2
	case GravitySouthWest, GravitySouth, GravitySouthEast:
		out.Y = old.Y + (old.Height - height)
	default:
		out.Y = old.Y
	}

	return out
}

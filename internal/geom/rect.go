package geom

// Rect describes a rectangular region in root window coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Bottom() int { return r.Y + r.Height }

// Equal reports whether both rectangles have identical position and size.
func (r Rect) Equal(o Rect) bool {
	return r == o
}

// Intersect returns the overlapping area of r and o. The boolean is false
// when the rectangles do not share any area.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.Right(), o.Right())
	y2 := min(r.Bottom(), o.Bottom())

	if x2 <= x1 || y2 <= y1 {
		return Rect{}, false
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}, true
}

// HorizOverlap reports whether the horizontal extents of r and o overlap.
// A zero-height edge still overlaps any rectangle sharing its x range.
func (r Rect) HorizOverlap(o Rect) bool {
	return o.X < r.Right() && r.X < o.Right()
}

// VertOverlap reports whether the vertical extents of r and o overlap.
func (r Rect) VertOverlap(o Rect) bool {
	return o.Y < r.Bottom() && r.Y < o.Bottom()
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Horizontal returns the x extent of r as a segment.
func (r Rect) Horizontal() Segment {
	return Segment{Start: r.X, End: r.Right()}
}

// Vertical returns the y extent of r as a segment.
func (r Rect) Vertical() Segment {
	return Segment{Start: r.Y, End: r.Bottom()}
}

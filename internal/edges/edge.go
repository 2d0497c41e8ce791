package edges

import (
	"fmt"

	"github.com/1broseidon/edgesnap/internal/geom"
)

// Side names the face of the moving rectangle an edge resists or attracts.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
)

// Sides lists every side in cache order.
var Sides = [4]Side{SideLeft, SideRight, SideTop, SideBottom}

// String returns the string representation of the side
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// Vertical reports whether edges of this side are vertical lines, so their
// position is an x coordinate.
func (s Side) Vertical() bool {
	return s == SideLeft || s == SideRight
}

// Toward reports whether moving by increment pushes a rectangle's side of
// this kind outward, into an edge of the same side.
func (s Side) Toward(increment int) bool {
	switch s {
	case SideLeft, SideTop:
		return increment < 0
	default:
		return increment > 0
	}
}

// Class is the kind of boundary an edge comes from.
type Class int

const (
	ClassWindow Class = iota
	ClassMonitor
	ClassScreen
)

// String returns the string representation of the class
func (c Class) String() string {
	switch c {
	case ClassWindow:
		return "window"
	case ClassMonitor:
		return "monitor"
	case ClassScreen:
		return "screen"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// Edge is a zero-thickness boundary segment. Span has no extent along the
// position axis: Width is 0 for left/right edges, Height is 0 for top/bottom.
type Edge struct {
	Span  geom.Rect
	Side  Side
	Class Class
}

// Position is the edge coordinate: x for left/right edges, y otherwise.
func (e Edge) Position() int {
	if e.Side.Vertical() {
		return e.Span.X
	}
	return e.Span.Y
}

// Extent returns the range the edge covers along its own direction.
func (e Edge) Extent() geom.Segment {
	if e.Side.Vertical() {
		return e.Span.Vertical()
	}
	return e.Span.Horizontal()
}

// Aligns reports whether the edge is relevant to r: its span overlaps r on
// the axis perpendicular to the edge position.
func (e Edge) Aligns(r geom.Rect) bool {
	if e.Side.Vertical() {
		return e.Span.VertOverlap(r)
	}
	return e.Span.HorizOverlap(r)
}

// withExtent returns a copy of e covering seg along its own direction.
func (e Edge) withExtent(seg geom.Segment) Edge {
	out := e
	if e.Side.Vertical() {
		out.Span.Y = seg.Start
		out.Span.Height = seg.Len()
	} else {
		out.Span.X = seg.Start
		out.Span.Width = seg.Len()
	}
	return out
}

func (e Edge) String() string {
	ext := e.Extent()
	return fmt.Sprintf("%s %s @%d [%d,%d)", e.Class, e.Side, e.Position(), ext.Start, ext.End)
}

// newEdge builds an edge of the given side at pos covering seg.
func newEdge(side Side, class Class, pos int, seg geom.Segment) Edge {
	e := Edge{Side: side, Class: class}
	if side.Vertical() {
		e.Span = geom.Rect{X: pos, Y: seg.Start, Width: 0, Height: seg.Len()}
	} else {
		e.Span = geom.Rect{X: seg.Start, Y: pos, Width: seg.Len(), Height: 0}
	}
	return e
}

// Compare orders edges by position, then class, then where the span starts,
// then span length. It returns a negative number when a sorts before b.
func Compare(a, b Edge) int {
	if d := a.Position() - b.Position(); d != 0 {
		return d
	}
	if a.Class != b.Class {
		return int(a.Class) - int(b.Class)
	}
	ea, eb := a.Extent(), b.Extent()
	if ea.Start != eb.Start {
		return ea.Start - eb.Start
	}
	if d := ea.Len() - eb.Len(); d != 0 {
		return d
	}
	return int(a.Side) - int(b.Side)
}

package geom

// Segment is the half-open interval [Start, End) on one axis.
type Segment struct {
	Start int
	End   int
}

// Len returns the length of the segment, never negative.
func (s Segment) Len() int {
	if s.End <= s.Start {
		return 0
	}
	return s.End - s.Start
}

// Empty reports whether the segment covers no coordinates.
func (s Segment) Empty() bool {
	return s.End <= s.Start
}

// Intersect returns the shared part of s and o.
func (s Segment) Intersect(o Segment) (Segment, bool) {
	out := Segment{Start: max(s.Start, o.Start), End: min(s.End, o.End)}
	if out.Empty() {
		return Segment{}, false
	}
	return out, true
}

// Subtract removes o from s and returns what is left: nothing, one piece,
// or two pieces when o lies strictly inside s. Pieces are in ascending order.
func (s Segment) Subtract(o Segment) []Segment {
	if s.Empty() {
		return nil
	}
	if _, ok := s.Intersect(o); !ok {
		return []Segment{s}
	}

	var out []Segment
	if o.Start > s.Start {
		out = append(out, Segment{Start: s.Start, End: o.Start})
	}
	if o.End < s.End {
		out = append(out, Segment{Start: o.End, End: s.End})
	}
	return out
}

// SubtractAll removes every segment in covers from s.
func (s Segment) SubtractAll(covers []Segment) []Segment {
	pieces := []Segment{s}
	for _, c := range covers {
		var next []Segment
		for _, p := range pieces {
			next = append(next, p.Subtract(c)...)
		}
		pieces = next
		if len(pieces) == 0 {
			break
		}
	}
	return pieces
}

// SubtractSpan removes from a zero-thickness edge the part that cover hides.
// For a vertical edge the pixel column at edge.X must lie inside cover for
// anything to be removed; horizontal edges use the pixel row at edge.Y.
// The remaining pieces keep the edge's position and come back in ascending
// order along the edge.
func SubtractSpan(edge Rect, vertical bool, cover Rect) []Rect {
	var along, coverAlong Segment
	if vertical {
		if edge.X < cover.X || edge.X >= cover.Right() {
			return []Rect{edge}
		}
		along, coverAlong = edge.Vertical(), cover.Vertical()
	} else {
		if edge.Y < cover.Y || edge.Y >= cover.Bottom() {
			return []Rect{edge}
		}
		along, coverAlong = edge.Horizontal(), cover.Horizontal()
	}

	var out []Rect
	for _, piece := range along.Subtract(coverAlong) {
		r := edge
		if vertical {
			r.Y, r.Height = piece.Start, piece.Len()
		} else {
			r.X, r.Width = piece.Start, piece.Len()
		}
		out = append(out, r)
	}
	return out
}

package edges

import (
	"sort"

	"github.com/1broseidon/edgesnap/internal/geom"
)

// Extract derives the window edges relevant to a grab. The stack is ordered
// bottom to top. Every relevant, non-dock window contributes its four sides,
// clipped to the screen, minus the parts hidden by relevant windows stacked
// above it. Docks hide edges but never produce any.
//
// The result is sorted with Compare.
func Extract(stack []Window, grab GrabTarget) []Edge {
	relevant := make([]bool, len(stack))
	for i, w := range stack {
		relevant[i] = Relevant(w, grab)
	}

	var out []Edge
	for i, w := range stack {
		if !relevant[i] || w.Type == TypeDock {
			continue
		}
		reduced, ok := w.Outer.Intersect(grab.ScreenRect)
		if !ok {
			continue
		}

		var covers []geom.Rect
		for j := i + 1; j < len(stack); j++ {
			if relevant[j] {
				covers = append(covers, stack[j].Outer)
			}
		}

		for _, e := range windowSides(reduced) {
			out = append(out, obscure(e, covers)...)
		}
	}

	sort.SliceStable(out, func(a, b int) bool { return Compare(out[a], out[b]) < 0 })
	return out
}

// windowSides returns the four edges of a window rectangle. A window's left
// side stops the right side of something moving into it, and so on.
func windowSides(r geom.Rect) [4]Edge {
	return [4]Edge{
		newEdge(SideRight, ClassWindow, r.Left(), r.Vertical()),
		newEdge(SideLeft, ClassWindow, r.Right(), r.Vertical()),
		newEdge(SideBottom, ClassWindow, r.Top(), r.Horizontal()),
		newEdge(SideTop, ClassWindow, r.Bottom(), r.Horizontal()),
	}
}

// obscure removes the parts of e hidden by covers. An edge belongs to the
// pixel its window occupies next to it: the pixel at the position for
// right/bottom edges, the one before it for left/top edges.
func obscure(e Edge, covers []geom.Rect) []Edge {
	shift := 0
	if e.Side == SideLeft || e.Side == SideTop {
		shift = -1
	}

	pixel := e.Span
	if e.Side.Vertical() {
		pixel.X += shift
	} else {
		pixel.Y += shift
	}

	pieces := []geom.Rect{pixel}
	for _, c := range covers {
		var next []geom.Rect
		for _, p := range pieces {
			next = append(next, geom.SubtractSpan(p, e.Side.Vertical(), c)...)
		}
		pieces = next
		if len(pieces) == 0 {
			return nil
		}
	}

	out := make([]Edge, 0, len(pieces))
	for _, p := range pieces {
		if e.Side.Vertical() {
			p.X -= shift
		} else {
			p.Y -= shift
		}
		out = append(out, Edge{Span: p, Side: e.Side, Class: e.Class})
	}
	return out
}

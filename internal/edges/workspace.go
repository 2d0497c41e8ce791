package edges

import (
	"sort"

	"github.com/1broseidon/edgesnap/internal/geom"
)

// WorkspaceEdges turns the usable area of every monitor into boundary
// edges. The part of a side that touches another usable area is a monitor
// edge; everything else borders the outside of the workspace and is a
// screen edge. Identical areas, as produced by mirrored outputs, count once.
func WorkspaceEdges(areas []geom.Rect) (monitor, screen []Edge) {
	uniq := make([]geom.Rect, 0, len(areas))
	for _, a := range areas {
		if a.Width <= 0 || a.Height <= 0 {
			continue
		}
		dup := false
		for _, u := range uniq {
			if u == a {
				dup = true
				break
			}
		}
		if !dup {
			uniq = append(uniq, a)
		}
	}

	for i, a := range uniq {
		for _, side := range Sides {
			pos, extent := areaSide(a, side)

			var shared []geom.Segment
			for j, b := range uniq {
				if i == j {
					continue
				}
				if seg, ok := touching(side, pos, extent, b); ok {
					shared = append(shared, seg)
				}
			}

			for _, seg := range shared {
				monitor = append(monitor, newEdge(side, ClassMonitor, pos, seg))
			}
			for _, seg := range extent.SubtractAll(shared) {
				screen = append(screen, newEdge(side, ClassScreen, pos, seg))
			}
		}
	}

	sort.SliceStable(monitor, func(i, j int) bool { return Compare(monitor[i], monitor[j]) < 0 })
	sort.SliceStable(screen, func(i, j int) bool { return Compare(screen[i], screen[j]) < 0 })
	return monitor, screen
}

// areaSide returns where a side of an area lies and the range it covers.
// The left boundary of an area stops the left side of a window, so it is a
// left edge.
func areaSide(a geom.Rect, side Side) (int, geom.Segment) {
	switch side {
	case SideLeft:
		return a.Left(), a.Vertical()
	case SideRight:
		return a.Right(), a.Vertical()
	case SideTop:
		return a.Top(), a.Horizontal()
	default:
		return a.Bottom(), a.Horizontal()
	}
}

// touching returns the part of extent shared with b when b sits directly
// across the boundary at pos.
func touching(side Side, pos int, extent geom.Segment, b geom.Rect) (geom.Segment, bool) {
	switch side {
	case SideLeft:
		if b.Right() != pos {
			return geom.Segment{}, false
		}
		return extent.Intersect(b.Vertical())
	case SideRight:
		if b.Left() != pos {
			return geom.Segment{}, false
		}
		return extent.Intersect(b.Vertical())
	case SideTop:
		if b.Bottom() != pos {
			return geom.Segment{}, false
		}
		return extent.Intersect(b.Horizontal())
	default:
		if b.Top() != pos {
			return geom.Segment{}, false
		}
		return extent.Intersect(b.Horizontal())
	}
}

package edges

import "github.com/1broseidon/edgesnap/internal/geom"

// RangeBoundary finds the index range an edge slice spans around coord.
// With wantLowerBound it returns the smallest index whose position is >=
// coord, or len(edges) when there is none. Otherwise it returns the largest
// index whose position is <= coord, or -1.
func RangeBoundary(edges []Edge, coord int, wantLowerBound bool) int {
	if len(edges) == 0 {
		if wantLowerBound {
			return 0
		}
		return -1
	}

	last := len(edges) - 1
	mid := approxIndex(edges, coord)
	pos := edges[mid].Position()

	// The binary search only lands near coord; walk across any run of
	// equal positions to the exact boundary.
	if wantLowerBound {
		for pos >= coord && mid > 0 {
			mid--
			pos = edges[mid].Position()
		}
		for pos < coord && mid < last {
			mid++
			pos = edges[mid].Position()
		}
		if pos < coord {
			return len(edges)
		}
		return mid
	}

	for pos <= coord && mid < last {
		mid++
		pos = edges[mid].Position()
	}
	for pos > coord && mid > 0 {
		mid--
		pos = edges[mid].Position()
	}
	if pos > coord {
		return -1
	}
	return mid
}

// approxIndex is a plain binary search that stops at an exact hit or when
// the window closes. edges must not be empty.
func approxIndex(edges []Edge, coord int) int {
	low, high, mid := 0, len(edges)-1, 0
	for low < high {
		mid = low + (high-low)/2
		pos := edges[mid].Position()
		if pos == coord {
			break
		}
		if pos > coord {
			high = mid - 1
		} else {
			low = mid + 1
		}
	}
	return mid
}

// NearestAligned returns the position of the edge closest to target whose
// span overlaps moving. With forwardOnly, edges lying on the same side of
// target as reference are skipped. When nothing qualifies it returns
// reference.
//
// Distance ties go to the edge at or above target.
func NearestAligned(edges []Edge, target, reference int, moving geom.Rect, forwardOnly bool) int {
	if len(edges) == 0 {
		return reference
	}

	qualifies := func(e Edge) bool {
		if !e.Aligns(moving) {
			return false
		}
		return !forwardOnly || !PointsOnSameSide(target, e.Position(), reference)
	}

	best, bestDist := reference, -1
	idx := RangeBoundary(edges, target, true)

	for i := idx; i < len(edges); i++ {
		if qualifies(edges[i]) {
			best = edges[i].Position()
			bestDist = abs(best - target)
			break
		}
	}
	for i := idx - 1; i >= 0; i-- {
		if qualifies(edges[i]) {
			pos := edges[i].Position()
			if d := abs(pos - target); bestDist < 0 || d < bestDist {
				best = pos
			}
			break
		}
	}
	return best
}

// PointsOnSameSide reports whether p1 and p2 lie strictly on the same side
// of ref.
func PointsOnSameSide(ref, p1, p2 int) bool {
	return (p1-ref)*(p2-ref) > 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

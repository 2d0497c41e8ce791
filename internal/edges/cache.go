package edges

import "sort"

// Cache holds every edge of a grab, split by side and sorted with Compare.
// Position never decreases within a slice.
type Cache struct {
	Left   []Edge
	Right  []Edge
	Top    []Edge
	Bottom []Edge
}

// NewCache merges window, monitor and screen edges into a sorted cache.
func NewCache(window, monitor, screen []Edge) *Cache {
	var counts [4]int
	for _, set := range [][]Edge{window, monitor, screen} {
		for _, e := range set {
			counts[e.Side]++
		}
	}

	c := &Cache{
		Left:   make([]Edge, 0, counts[SideLeft]),
		Right:  make([]Edge, 0, counts[SideRight]),
		Top:    make([]Edge, 0, counts[SideTop]),
		Bottom: make([]Edge, 0, counts[SideBottom]),
	}
	for _, set := range [][]Edge{window, monitor, screen} {
		for _, e := range set {
			s := c.slot(e.Side)
			*s = append(*s, e)
		}
	}

	for _, side := range Sides {
		s := *c.slot(side)
		sort.SliceStable(s, func(i, j int) bool { return Compare(s[i], s[j]) < 0 })
	}
	return c
}

// Side returns the sorted edges for one side.
func (c *Cache) Side(s Side) []Edge {
	return *c.slot(s)
}

// Len returns the total number of cached edges.
func (c *Cache) Len() int {
	return len(c.Left) + len(c.Right) + len(c.Top) + len(c.Bottom)
}

// CountByClass reports how many cached edges belong to each class.
func (c *Cache) CountByClass() map[Class]int {
	out := make(map[Class]int, 3)
	for _, side := range Sides {
		for _, e := range c.Side(side) {
			out[e.Class]++
		}
	}
	return out
}

func (c *Cache) slot(s Side) *[]Edge {
	switch s {
	case SideLeft:
		return &c.Left
	case SideRight:
		return &c.Right
	case SideTop:
		return &c.Top
	default:
		return &c.Bottom
	}
}

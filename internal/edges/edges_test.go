package edges

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/1broseidon/edgesnap/internal/geom"
)

func leftEdgesAt(positions ...int) []Edge {
	out := make([]Edge, 0, len(positions))
	for _, p := range positions {
		out = append(out, newEdge(SideLeft, ClassWindow, p, geom.Segment{Start: 0, End: 10}))
	}
	return out
}

func filter(all []Edge, side Side, pos int) []Edge {
	var out []Edge
	for _, e := range all {
		if e.Side == side && e.Position() == pos {
			out = append(out, e)
		}
	}
	return out
}

func TestRangeBoundary(t *testing.T) {
	edges := leftEdgesAt(3, 27, 316, 316, 316, 505, 522, 800, 1213)

	tests := []struct {
		coord int
		lower bool
		want  int
	}{
		{500, true, 5},
		{805, false, 7},
		{316, true, 2},
		{316, false, 4},
		{2, false, -1},
		{2000, true, 9},
		{2, true, 0},
		{2000, false, 8},
		{3, true, 0},
		{1213, false, 8},
	}

	for _, tt := range tests {
		got := RangeBoundary(edges, tt.coord, tt.lower)
		if got != tt.want {
			t.Errorf("RangeBoundary(%d, lower=%v) = %d, want %d", tt.coord, tt.lower, got, tt.want)
		}
	}
}

func TestRangeBoundaryEmpty(t *testing.T) {
	if got := RangeBoundary(nil, 10, true); got != 0 {
		t.Errorf("lower bound on empty slice = %d, want 0", got)
	}
	if got := RangeBoundary(nil, 10, false); got != -1 {
		t.Errorf("upper bound on empty slice = %d, want -1", got)
	}
}

func TestRangeBoundarySingle(t *testing.T) {
	edges := leftEdgesAt(50)
	if got := RangeBoundary(edges, 50, true); got != 0 {
		t.Errorf("lower(50) = %d, want 0", got)
	}
	if got := RangeBoundary(edges, 51, true); got != 1 {
		t.Errorf("lower(51) = %d, want 1", got)
	}
	if got := RangeBoundary(edges, 49, false); got != -1 {
		t.Errorf("upper(49) = %d, want -1", got)
	}
}

func TestNearestAligned(t *testing.T) {
	edges := []Edge{
		newEdge(SideLeft, ClassWindow, 100, geom.Segment{Start: 0, End: 100}),
		newEdge(SideLeft, ClassWindow, 200, geom.Segment{Start: 500, End: 600}),
		newEdge(SideLeft, ClassWindow, 300, geom.Segment{Start: 0, End: 100}),
	}
	moving := geom.Rect{X: 150, Y: 0, Width: 50, Height: 50}

	tests := []struct {
		name        string
		edges       []Edge
		target      int
		reference   int
		moving      geom.Rect
		forwardOnly bool
		want        int
	}{
		{"skips unaligned edge", edges, 190, 150, moving, false, 100},
		{"forward only rejects edges behind", edges, 190, 150, moving, true, 300},
		{"tie goes to the edge above", edges, 200, 150, moving, false, 300},
		{"exact hit", edges, 300, 150, moving, false, 300},
		{"nothing aligned", edges, 190, 150, geom.Rect{X: 0, Y: 700, Width: 10, Height: 10}, false, 150},
		{"empty slice", nil, 190, 150, moving, false, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NearestAligned(tt.edges, tt.target, tt.reference, tt.moving, tt.forwardOnly)
			if got != tt.want {
				t.Errorf("NearestAligned(target=%d, ref=%d) = %d, want %d", tt.target, tt.reference, got, tt.want)
			}
		})
	}
}

func TestExtractSkipsIrrelevantWindows(t *testing.T) {
	grab := GrabTarget{Window: 9, Screen: 0, ScreenRect: geom.Rect{Width: 1000, Height: 800}}
	r := geom.Rect{X: 100, Y: 100, Width: 200, Height: 200}

	stack := []Window{
		{ID: 1, Type: TypeDesktop, Outer: geom.Rect{Width: 1000, Height: 800}, Showing: true},
		{ID: 2, Type: TypeMenu, Outer: r, Showing: true},
		{ID: 3, Type: TypeSplash, Outer: r, Showing: true},
		{ID: 4, Type: TypeNormal, Outer: r, Showing: true, Screen: 1},
		{ID: 5, Type: TypeNormal, Outer: r, Showing: false},
		{ID: 6, Type: TypeDock, Outer: geom.Rect{Width: 1000, Height: 30}, Showing: true},
		{ID: 9, Type: TypeNormal, Outer: r, Showing: true},
	}

	if got := Extract(stack, grab); len(got) != 0 {
		t.Fatalf("expected no edges, got %v", got)
	}
}

func TestExtractSubtractsObscuredPortions(t *testing.T) {
	grab := GrabTarget{Window: 9, ScreenRect: geom.Rect{Width: 1000, Height: 800}}
	stack := []Window{
		{ID: 1, Outer: geom.Rect{X: 100, Y: 100, Width: 200, Height: 200}, Showing: true},
		{ID: 2, Outer: geom.Rect{X: 250, Y: 150, Width: 200, Height: 100}, Showing: true},
		// Irrelevant windows never hide anything.
		{ID: 3, Type: TypeMenu, Outer: geom.Rect{Width: 1000, Height: 800}, Showing: true},
		{ID: 9, Outer: geom.Rect{Width: 1000, Height: 800}, Showing: true},
	}

	got := Extract(stack, grab)
	if len(got) != 9 {
		t.Fatalf("expected 9 edges, got %d: %v", len(got), got)
	}

	want := []Edge{
		{Span: geom.Rect{X: 300, Y: 100, Height: 50}, Side: SideLeft, Class: ClassWindow},
		{Span: geom.Rect{X: 300, Y: 250, Height: 50}, Side: SideLeft, Class: ClassWindow},
	}
	if diff := cmp.Diff(want, filter(got, SideLeft, 300)); diff != "" {
		t.Errorf("left edges at x=300 mismatch (-want +got):\n%s", diff)
	}

	want = []Edge{{Span: geom.Rect{X: 100, Y: 100, Height: 200}, Side: SideRight, Class: ClassWindow}}
	if diff := cmp.Diff(want, filter(got, SideRight, 100)); diff != "" {
		t.Errorf("right edge at x=100 mismatch (-want +got):\n%s", diff)
	}

	// The top window keeps all of its edges.
	want = []Edge{{Span: geom.Rect{X: 250, Y: 150, Height: 100}, Side: SideRight, Class: ClassWindow}}
	if diff := cmp.Diff(want, filter(got, SideRight, 250)); diff != "" {
		t.Errorf("right edge at x=250 mismatch (-want +got):\n%s", diff)
	}

	for i := 1; i < len(got); i++ {
		if Compare(got[i-1], got[i]) > 0 {
			t.Fatalf("edges not sorted at %d: %v before %v", i, got[i-1], got[i])
		}
	}
}

func TestExtractDocksObscureButEmitNothing(t *testing.T) {
	grab := GrabTarget{Window: 9, ScreenRect: geom.Rect{Width: 1000, Height: 800}}
	stack := []Window{
		{ID: 1, Outer: geom.Rect{X: 500, Y: 600, Width: 200, Height: 150}, Showing: true},
		{ID: 2, Type: TypeDock, Outer: geom.Rect{X: 0, Y: 700, Width: 1000, Height: 100}, Showing: true},
	}

	got := Extract(stack, grab)

	if top := filter(got, SideTop, 750); len(top) != 0 {
		t.Errorf("bottom of window hidden by dock should not be an edge, got %v", top)
	}

	want := []Edge{{Span: geom.Rect{X: 500, Y: 600, Height: 100}, Side: SideRight, Class: ClassWindow}}
	if diff := cmp.Diff(want, filter(got, SideRight, 500)); diff != "" {
		t.Errorf("right edge at x=500 mismatch (-want +got):\n%s", diff)
	}

	for _, e := range got {
		if e.Position() == 0 || e.Position() == 1000 {
			t.Errorf("dock produced edge %v", e)
		}
	}
}

func TestExtractClipsToScreen(t *testing.T) {
	grab := GrabTarget{Window: 9, ScreenRect: geom.Rect{Width: 1000, Height: 800}}
	stack := []Window{
		{ID: 1, Outer: geom.Rect{X: 900, Y: 700, Width: 300, Height: 300}, Showing: true},
		{ID: 2, Outer: geom.Rect{X: 2000, Y: 0, Width: 100, Height: 100}, Showing: true},
	}

	got := Extract(stack, grab)
	if len(got) != 4 {
		t.Fatalf("expected 4 edges from the clipped window, got %v", got)
	}

	want := []Edge{{Span: geom.Rect{X: 1000, Y: 700, Height: 100}, Side: SideLeft, Class: ClassWindow}}
	if diff := cmp.Diff(want, filter(got, SideLeft, 1000)); diff != "" {
		t.Errorf("clipped left edge mismatch (-want +got):\n%s", diff)
	}
}

func TestNewCacheSortsBySideAndClass(t *testing.T) {
	window := []Edge{
		newEdge(SideLeft, ClassWindow, 500, geom.Segment{Start: 0, End: 10}),
		newEdge(SideTop, ClassWindow, 40, geom.Segment{Start: 0, End: 10}),
	}
	monitor := []Edge{
		newEdge(SideLeft, ClassMonitor, 0, geom.Segment{Start: 0, End: 10}),
	}
	screen := []Edge{
		newEdge(SideLeft, ClassScreen, 500, geom.Segment{Start: 0, End: 10}),
		newEdge(SideLeft, ClassScreen, 0, geom.Segment{Start: 0, End: 10}),
		newEdge(SideBottom, ClassScreen, 800, geom.Segment{Start: 0, End: 10}),
	}

	c := NewCache(window, monitor, screen)

	if c.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", c.Len())
	}
	if len(c.Right) != 0 || len(c.Top) != 1 || len(c.Bottom) != 1 {
		t.Fatalf("unexpected side counts: right=%d top=%d bottom=%d", len(c.Right), len(c.Top), len(c.Bottom))
	}

	var got []Class
	for _, e := range c.Left {
		got = append(got, e.Class)
	}
	want := []Class{ClassMonitor, ClassScreen, ClassWindow, ClassScreen}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("left edge order mismatch (-want +got):\n%s", diff)
	}

	counts := c.CountByClass()
	if counts[ClassWindow] != 2 || counts[ClassMonitor] != 1 || counts[ClassScreen] != 3 {
		t.Errorf("CountByClass() = %v", counts)
	}
}

func TestWorkspaceEdgesSplitsSharedBoundaries(t *testing.T) {
	areas := []geom.Rect{
		{X: 0, Y: 0, Width: 1000, Height: 800},
		{X: 1000, Y: 0, Width: 800, Height: 600},
		{X: 1000, Y: 0, Width: 800, Height: 600},
	}

	monitor, screen := WorkspaceEdges(areas)

	want := []Edge{
		{Span: geom.Rect{X: 1000, Y: 0, Height: 600}, Side: SideLeft, Class: ClassMonitor},
		{Span: geom.Rect{X: 1000, Y: 0, Height: 600}, Side: SideRight, Class: ClassMonitor},
	}
	if diff := cmp.Diff(want, monitor); diff != "" {
		t.Errorf("monitor edges mismatch (-want +got):\n%s", diff)
	}

	if len(screen) != 7 {
		t.Fatalf("expected 7 screen edges, got %d: %v", len(screen), screen)
	}
	wantTail := []Edge{{Span: geom.Rect{X: 1000, Y: 600, Height: 200}, Side: SideRight, Class: ClassScreen}}
	if diff := cmp.Diff(wantTail, filter(screen, SideRight, 1000)); diff != "" {
		t.Errorf("unshared part of the boundary mismatch (-want +got):\n%s", diff)
	}
}

func TestWorkspaceEdgesSingleMonitor(t *testing.T) {
	monitor, screen := WorkspaceEdges([]geom.Rect{{X: 0, Y: 30, Width: 1920, Height: 1050}})
	if len(monitor) != 0 {
		t.Errorf("single monitor produced monitor edges: %v", monitor)
	}
	if len(screen) != 4 {
		t.Fatalf("expected 4 screen edges, got %v", screen)
	}
	if got := filter(screen, SideTop, 30); len(got) != 1 {
		t.Errorf("expected top screen edge at the strut boundary, got %v", got)
	}
}

func TestSideToward(t *testing.T) {
	if !SideLeft.Toward(-1) || SideLeft.Toward(1) {
		t.Errorf("left edges are approached with decreasing coordinates")
	}
	if !SideBottom.Toward(1) || SideBottom.Toward(-1) {
		t.Errorf("bottom edges are approached with increasing coordinates")
	}
}

func TestAlignsNeedsSharedExtent(t *testing.T) {
	// The neighbour's left side covers y=100..200.
	edge := newEdge(SideRight, ClassWindow, 420, geom.Segment{Start: 100, End: 200})

	tests := []struct {
		name   string
		moving geom.Rect
		want   bool
	}{
		{"side by side", geom.Rect{X: 100, Y: 150, Width: 300, Height: 100}, true},
		{"one row shared", geom.Rect{X: 100, Y: 199, Width: 300, Height: 100}, true},
		{"directly below, corners touch", geom.Rect{X: 100, Y: 200, Width: 300, Height: 100}, false},
		{"directly above, corners touch", geom.Rect{X: 100, Y: 0, Width: 300, Height: 100}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := edge.Aligns(tt.moving); got != tt.want {
				t.Fatalf("Aligns(%+v) = %v, want %v", tt.moving, got, tt.want)
			}
		})
	}
}

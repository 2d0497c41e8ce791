package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 100}

	got, ok := a.Intersect(Rect{X: 50, Y: 80, Width: 100, Height: 100})
	if !ok {
		t.Fatalf("expected overlap")
	}
	if want := (Rect{X: 50, Y: 80, Width: 50, Height: 20}); got != want {
		t.Fatalf("Intersect = %+v, want %+v", got, want)
	}

	if _, ok := a.Intersect(Rect{X: 100, Y: 0, Width: 10, Height: 10}); ok {
		t.Fatalf("touching rectangles must not intersect")
	}
}

func TestRectOverlapWithZeroThicknessEdge(t *testing.T) {
	moving := Rect{X: 10, Y: 10, Width: 50, Height: 50}

	vertical := Rect{X: 200, Y: 40, Width: 0, Height: 100}
	if !vertical.VertOverlap(moving) {
		t.Errorf("vertical edge spanning y=40..140 should overlap y=10..60")
	}
	if (Rect{X: 200, Y: 60, Width: 0, Height: 10}).VertOverlap(moving) {
		t.Errorf("edge starting at the moving rect's bottom must not overlap")
	}

	horizontal := Rect{X: 59, Y: 300, Width: 10, Height: 0}
	if !horizontal.HorizOverlap(moving) {
		t.Errorf("horizontal edge spanning x=59..69 should overlap x=10..60")
	}
}

func TestSegmentSubtract(t *testing.T) {
	base := Segment{Start: 0, End: 100}

	tests := []struct {
		name  string
		cover Segment
		want  []Segment
	}{
		{"disjoint", Segment{Start: 100, End: 200}, []Segment{{0, 100}}},
		{"full", Segment{Start: -10, End: 110}, nil},
		{"head", Segment{Start: -10, End: 30}, []Segment{{30, 100}}},
		{"tail", Segment{Start: 70, End: 130}, []Segment{{0, 70}}},
		{"middle", Segment{Start: 40, End: 60}, []Segment{{0, 40}, {60, 100}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base.Subtract(tt.cover)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Subtract(%+v) mismatch (-want +got):\n%s", tt.cover, diff)
			}
		})
	}
}

func TestSegmentSubtractAll(t *testing.T) {
	got := Segment{Start: 0, End: 100}.SubtractAll([]Segment{{10, 20}, {50, 60}, {90, 200}})
	want := []Segment{{0, 10}, {20, 50}, {60, 90}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("SubtractAll mismatch (-want +got):\n%s", diff)
	}
}

func TestResizeWithGravity(t *testing.T) {
	old := Rect{X: 100, Y: 100, Width: 200, Height: 100}

	tests := []struct {
		gravity Gravity
		want    Rect
	}{
		{GravityNorthWest, Rect{X: 100, Y: 100, Width: 300, Height: 150}},
		{GravityStatic, Rect{X: 100, Y: 100, Width: 300, Height: 150}},
		{GravityCenter, Rect{X: 50, Y: 75, Width: 300, Height: 150}},
		{GravitySouthEast, Rect{X: 0, Y: 50, Width: 300, Height: 150}},
		{GravityNorthEast, Rect{X: 0, Y: 100, Width: 300, Height: 150}},
		{GravitySouth, Rect{X: 50, Y: 50, Width: 300, Height: 150}},
	}

	for _, tt := range tests {
		t.Run(tt.gravity.String(), func(t *testing.T) {
			got := ResizeWithGravity(old, tt.gravity, 300, 150)
			if got != tt.want {
				t.Errorf("ResizeWithGravity(%v) = %+v, want %+v", tt.gravity, got, tt.want)
			}
		})
	}
}

func TestSubtractSpan(t *testing.T) {
	edge := Rect{X: 100, Y: 0, Width: 0, Height: 300}

	tests := []struct {
		name  string
		cover Rect
		want  []Rect
	}{
		{"column outside cover", Rect{X: 0, Y: 0, Width: 100, Height: 300}, []Rect{edge}},
		{"covers middle", Rect{X: 90, Y: 100, Width: 20, Height: 50}, []Rect{
			{X: 100, Y: 0, Width: 0, Height: 100},
			{X: 100, Y: 150, Width: 0, Height: 150},
		}},
		{"covers all", Rect{X: 100, Y: -5, Width: 1, Height: 400}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SubtractSpan(edge, true, tt.cover)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SubtractSpan mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

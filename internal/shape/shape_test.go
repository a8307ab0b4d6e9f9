package shape

import (
	"testing"

	"github.com/isect/go/internal/geometry"
	"github.com/tidwall/rtree"
)

type boxShape struct {
	x, y, w, h float32
}

func (b boxShape) BoundingRect() geometry.Rect {
	return geometry.FromPoints(
		geometry.Point{X: b.x, Y: b.y},
		geometry.Point{X: b.x + b.w, Y: b.y + b.h},
	)
}

// standoffBox overrides the pairwise test to never report an overlap.
type standoffBox struct {
	boxShape
}

func (standoffBox) Intersect(other Shape) (geometry.Rect, bool) {
	return geometry.Rect{}, false
}

func rect(x0, y0, x1, y1 float32) geometry.Rect {
	return geometry.Rect{
		From: geometry.Point{X: x0, Y: y0},
		To:   geometry.Point{X: x1, Y: y1},
	}
}

func TestListIntersections(t *testing.T) {
	objects := []boxShape{
		{x: 1, y: 1, w: 4, h: 4},
		{x: 2, y: 2, w: 1, h: 1},
		{x: 3, y: -1, w: 2, h: 6},
		{x: -2, y: -5, w: 1, h: 1},
	}

	want := []Intersection{
		{Area: rect(2, 2, 3, 3), A: 0, B: 1},
		{Area: rect(3, 1, 5, 5), A: 0, B: 2},
	}

	got := ListIntersections(objects)
	if len(got) != len(want) {
		t.Fatalf("ListIntersections returned %d intersections, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("intersection %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestListIntersectionsSmallInputs(t *testing.T) {
	if got := ListIntersections([]boxShape{}); len(got) != 0 {
		t.Errorf("empty input: got %v, want no intersections", got)
	}
	if got := ListIntersections([]boxShape{{x: 0, y: 0, w: 5, h: 5}}); len(got) != 0 {
		t.Errorf("single shape: got %v, want no intersections", got)
	}
}

func TestListIntersectionsTouchingShapes(t *testing.T) {
	// Shared edges and corners are not overlap.
	objects := []boxShape{
		{x: 0, y: 0, w: 5, h: 5},
		{x: 5, y: 0, w: 5, h: 5},
		{x: 5, y: 5, w: 5, h: 5},
	}
	if got := ListIntersections(objects); len(got) != 0 {
		t.Errorf("touching shapes: got %v, want no intersections", got)
	}
}

func TestListIntersectionsOverride(t *testing.T) {
	boxes := []boxShape{
		{x: 0, y: 0, w: 4, h: 4},
		{x: 2, y: 2, w: 4, h: 4},
	}
	if got := ListIntersections(boxes); len(got) != 1 {
		t.Fatalf("default intersection: got %v, want one intersection", got)
	}

	standoff := []standoffBox{{boxes[0]}, {boxes[1]}}
	if got := ListIntersections(standoff); len(got) != 0 {
		t.Errorf("overridden intersection: got %v, want none", got)
	}
}

// TestListIntersectionsMatchesRTree cross-checks the naive scan against an
// rtree candidate search over the same boxes: both must report the same pair
// set. The rtree only verifies; the scan's (i, j) ordering stays the contract.
func TestListIntersectionsMatchesRTree(t *testing.T) {
	// Deterministic pseudo-random boxes.
	seed := uint32(20)
	next := func(n uint32) float32 {
		seed = seed*1664525 + 1013904223
		return float32(seed % n)
	}
	objects := make([]boxShape, 64)
	for i := range objects {
		objects[i] = boxShape{
			x: next(100) - 50,
			y: next(100) - 50,
			w: next(20) + 1,
			h: next(20) + 1,
		}
	}

	naive := make(map[[2]int]geometry.Rect)
	for _, in := range ListIntersections(objects) {
		naive[[2]int{in.A, in.B}] = in.Area
	}

	var tr rtree.RTreeG[int]
	for i, obj := range objects {
		b := obj.BoundingRect()
		tr.Insert(
			[2]float64{float64(b.From.X), float64(b.From.Y)},
			[2]float64{float64(b.To.X), float64(b.To.Y)},
			i,
		)
	}

	indexed := make(map[[2]int]geometry.Rect)
	for i, obj := range objects {
		b := obj.BoundingRect()
		tr.Search(
			[2]float64{float64(b.From.X), float64(b.From.Y)},
			[2]float64{float64(b.To.X), float64(b.To.Y)},
			func(_, _ [2]float64, j int) bool {
				if j > i {
					if area, ok := b.Intersect(objects[j].BoundingRect()); ok {
						indexed[[2]int{i, j}] = area
					}
				}
				return true
			},
		)
	}

	if len(naive) != len(indexed) {
		t.Fatalf("naive scan found %d pairs, rtree found %d", len(naive), len(indexed))
	}
	for pair, area := range naive {
		other, ok := indexed[pair]
		if !ok {
			t.Errorf("pair %v missing from rtree result", pair)
			continue
		}
		if other != area {
			t.Errorf("pair %v: naive area %v, rtree area %v", pair, area, other)
		}
	}
}

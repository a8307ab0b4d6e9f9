package shape

import (
	"github.com/isect/go/internal/geometry"
)

// Shape is anything reducible to an axis-aligned bounding rectangle.
type Shape interface {
	BoundingRect() geometry.Rect
}

// Intersector is an optional refinement of Shape: a shape implementing it
// replaces the default bounding-rect overlap test with its own.
type Intersector interface {
	Shape
	Intersect(other Shape) (geometry.Rect, bool)
}

// Intersection summarizes one overlapping pair: the overlap region and the
// positions of the two shapes in the searched slice, with A < B.
type Intersection struct {
	Area geometry.Rect
	A    int
	B    int
}

func intersect(a, b Shape) (geometry.Rect, bool) {
	if s, ok := a.(Intersector); ok {
		return s.Intersect(b)
	}
	return a.BoundingRect().Intersect(b.BoundingRect())
}

// ListIntersections reports every overlapping pair of shapes using a naive
// O(n^2) all-pairs scan. Results are emitted in ascending (i, j) order; that
// order is part of the contract, so no spatial index is used here.
func ListIntersections[S Shape](objects []S) []Intersection {
	var intersections []Intersection
	for i := 0; i < len(objects); i++ {
		for j := i + 1; j < len(objects); j++ {
			if area, ok := intersect(objects[i], objects[j]); ok {
				intersections = append(intersections, Intersection{Area: area, A: i, B: j})
			}
		}
	}
	return intersections
}

package models

import (
	"encoding/json"

	"github.com/isect/go/internal/geometry"
)

// Input is the document shape the loader reads.
type Input struct {
	Objects []Object `json:"objects"`
}

// Object is one named rectangular thing from an input document. Properties
// carries auxiliary data the search never looks at; it is preserved verbatim.
type Object struct {
	Name       string            `json:"name"`
	Width      float32           `json:"width"`
	Height     float32           `json:"height"`
	X          float32           `json:"x"`
	Y          float32           `json:"y"`
	Properties []json.RawMessage `json:"properties,omitempty"`
}

// Area reduces the object to its named bounding rectangle.
func (o Object) Area() ObjectArea {
	return ObjectArea{
		Name: o.Name,
		Area: geometry.FromPoints(
			geometry.Point{X: o.X, Y: o.Y},
			geometry.Point{X: o.X + o.Width, Y: o.Y + o.Height},
		),
	}
}

type ObjectArea struct {
	Name string        `json:"name"`
	Area geometry.Rect `json:"area"`
}

func (a ObjectArea) BoundingRect() geometry.Rect { return a.Area }

// ObjectIntersection pairs the names of two overlapping objects, in input
// order, with their overlap region.
type ObjectIntersection struct {
	Names [2]string     `json:"names"`
	Area  geometry.Rect `json:"area"`
}

// Output is the report printed for one input document.
type Output struct {
	Areas         []ObjectArea         `json:"areas"`
	Intersections []ObjectIntersection `json:"intersections"`
}

// MarshalJSON keeps both lists as [] rather than null when empty, so the
// report shape is stable for inputs with no objects or no overlaps.
func (o Output) MarshalJSON() ([]byte, error) {
	areas := o.Areas
	if areas == nil {
		areas = []ObjectArea{}
	}
	intersections := o.Intersections
	if intersections == nil {
		intersections = []ObjectIntersection{}
	}
	return json.Marshal(struct {
		Areas         []ObjectArea         `json:"areas"`
		Intersections []ObjectIntersection `json:"intersections"`
	}{areas, intersections})
}

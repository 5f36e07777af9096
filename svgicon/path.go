package svgicon

import (
	"image/color"

	"github.com/lemapp09/SVGtoUXML/svgpath"
)

// This file defines the shape structure

var transparent color.NRGBA

// Shape binds a resolved style to a path.
// Shapes are built once and should be treated as immutable.
type Shape struct {
	// Path is expressed in the user space of the element:
	// Transform is applied at draw time only.
	Path svgpath.Path

	Fill, Stroke color.NRGBA // a zero alpha means none
	StrokeWidth  float64
	Cap          CapMode
	Join         JoinMode

	// Transform is the cumulative transform of the element.
	Transform svgpath.Matrix2D

	// Bounds is the envelope of the path bounds, once transformed.
	Bounds svgpath.Rect
}

// newShape computes the bounds of `path` and binds it to `style`.
func newShape(path svgpath.Path, style StyleValues, m svgpath.Matrix2D) Shape {
	return Shape{
		Path:        path,
		Fill:        style.Fill,
		Stroke:      style.Stroke,
		StrokeWidth: style.StrokeWidth,
		Cap:         style.Cap,
		Join:        style.Join,
		Transform:   m,
		Bounds:      path.Bounds().Transform(m),
	}
}

// HasFill is true if the shape should be filled.
func (s Shape) HasFill() bool { return s.Fill.A > 0 }

// HasStroke is true if the shape should be stroked.
func (s Shape) HasStroke() bool { return s.Stroke.A > 0 && s.StrokeWidth > 0 }

// Style returns the paint style of the shape.
func (s Shape) Style() StyleValues {
	return StyleValues{Fill: s.Fill, Stroke: s.Stroke, StrokeWidth: s.StrokeWidth, Cap: s.Cap, Join: s.Join}
}

// Transformed returns the path with only absolute moves, lines,
// cubic curves and closes, in the coordinates of the document.
// s.Path is not modified.
func (s Shape) Transformed() svgpath.Path {
	return s.Path.Transform(s.Transform)
}

// Baked returns a copy of the shape whose commands are expressed in
// document coordinates, with an identity transform. The stroke width
// is scaled by the transform.
func (s Shape) Baked() Shape {
	out := s
	out.Path = s.Transformed()
	out.StrokeWidth = s.StrokeWidth * s.Transform.Scaling()
	out.Transform = svgpath.Identity
	return out
}

// Union returns the union of the bounds of the non empty shapes.
// It returns false if there is none.
func Union(shapes []Shape) (svgpath.Rect, bool) {
	var (
		out   svgpath.Rect
		found bool
	)
	for _, s := range shapes {
		if len(s.Path) == 0 {
			continue
		}
		if !found {
			out, found = s.Bounds, true
			continue
		}
		out = out.Union(s.Bounds)
	}
	return out, found
}

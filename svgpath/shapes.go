package svgpath

import "math"

// This file implements the transformation from
// high level shapes to their path equivalent

// Kappa is the circle-to-cubic constant: a quarter of a unit circle
// is approximated by a cubic with control points at this distance
// from the endpoints.
const Kappa = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)

// AddRect adds a closed rectangle, clockwise from its top left corner.
func (p *Path) AddRect(x, y, w, h float64) {
	p.Start(x, y)
	p.Line(x+w, y)
	p.Line(x+w, y+h)
	p.Line(x, y+h)
	p.Stop(true)
}

// AddRoundRect adds a rectangle with elliptical corners of radius
// rx in the x axis and ry in the y axis, clockwise, starting on the top edge.
// The radii are clamped to half the corresponding side.
// A zero radius gives a plain rectangle.
func (p *Path) AddRoundRect(x, y, w, h, rx, ry float64) {
	rx = math.Min(rx, w/2)
	ry = math.Min(ry, h/2)
	if rx <= 0 || ry <= 0 {
		p.AddRect(x, y, w, h)
		return
	}
	kx, ky := Kappa*rx, Kappa*ry
	maxX, maxY := x+w, y+h

	p.Start(x+rx, y)
	p.Line(maxX-rx, y)
	p.CubeBezier(maxX-rx+kx, y, maxX, y+ry-ky, maxX, y+ry)
	p.Line(maxX, maxY-ry)
	p.CubeBezier(maxX, maxY-ry+ky, maxX-rx+kx, maxY, maxX-rx, maxY)
	p.Line(x+rx, maxY)
	p.CubeBezier(x+rx-kx, maxY, x, maxY-ry+ky, x, maxY-ry)
	p.Line(x, y+ry)
	p.CubeBezier(x, y+ry-ky, x+rx-kx, y, x+rx, y)
	p.Stop(true)
}

// AddEllipse adds a closed ellipse made of four cubic segments,
// starting at the top and going clockwise.
func (p *Path) AddEllipse(cx, cy, rx, ry float64) {
	kx, ky := Kappa*rx, Kappa*ry
	p.Start(cx, cy-ry)
	p.CubeBezier(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	p.CubeBezier(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubeBezier(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubeBezier(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.Stop(true)
}

// AddPolyline adds a move to the first (x, y) pair of points followed by
// one line per remaining pair, closing the path if closeLoop is true.
// A trailing odd coordinate is ignored, and nothing is added for
// fewer than two pairs.
func (p *Path) AddPolyline(points []float64, closeLoop bool) {
	if len(points) < 4 {
		return
	}
	p.Start(points[0], points[1])
	for i := 2; i+1 < len(points); i += 2 {
		p.Line(points[i], points[i+1])
	}
	p.Stop(closeLoop)
}

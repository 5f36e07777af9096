package svgpath

import "math"

// Point is a 2D point or vector.
type Point struct{ X, Y float64 }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Mul(f float64) Point { return Point{p.X * f, p.Y * f} }
func (p Point) Interpolate(q Point, t float64) Point { return p.Add(q.Sub(p).Mul(t)) }

// reflect returns the reflection of p about c.
func (p Point) reflect(c Point) Point { return Point{2*c.X - p.X, 2*c.Y - p.Y} }

// Rect is an axis aligned box, such as a viewport
// or a path extent.
type Rect struct{ X, Y, W, H float64 }

// RectFromPoints returns the smallest Rect containing all the points.
// It returns the zero Rect when pts is empty.
func RectFromPoints(pts ...Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, minY = math.Min(minX, p.X), math.Min(minY, p.Y)
		maxX, maxY = math.Max(maxX, p.X), math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Corners returns the four corners, clockwise from (X, Y).
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{r.X, r.Y},
		{r.X + r.W, r.Y},
		{r.X + r.W, r.Y + r.H},
		{r.X, r.Y + r.H},
	}
}

// Union returns the smallest Rect containing r and s.
func (r Rect) Union(s Rect) Rect {
	c1, c2 := r.Corners(), s.Corners()
	return RectFromPoints(c1[0], c1[2], c2[0], c2[2])
}

// Transform returns the envelope of the four corners of r
// transformed by m.
func (r Rect) Transform(m Matrix2D) Rect {
	c := r.Corners()
	for i := range c {
		c[i] = m.TransformPoint(c[i])
	}
	return RectFromPoints(c[:]...)
}

// MaxX returns X + W
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns Y + H
func (r Rect) MaxY() float64 { return r.Y + r.H }

package svgpath

import "math"

// compute the bounding box of curves, using the roots
// of their derivatives

// epsilon under which a polynomial coefficient is taken as zero
const epsilon = 1e-10

// cubic polinomial
// x = At^3 + Bt^2 + Ct + D
// where A,B,C,D:
// A = p3 -3 * p2 + 3 * p1 - p0
// B = 3 * p2 - 6 * p1 +3 * p0
// C = 3 * p1 - 3 * p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		(p0)
}

// CubicAt evaluates the cubic Bézier curve (p0, p1, p2, p3) at t in [0, 1].
func CubicAt(p0, p1, p2, p3 Point, t float64) Point {
	return Point{
		X: bezierSpline(p0.X, p1.X, p2.X, p3.X, t),
		Y: bezierSpline(p0.Y, p1.Y, p2.Y, p3.Y, t),
	}
}

// X' = (3*p3-9*p2+9*p1-3*p0)t^2 + (6*p2-12*p1+6*p0)t + (3*p1-3*p0)
// taken as at^2 + bt + c
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

// quadraticRoots returns the real roots of at^2 + bt + c,
// falling back on the linear equation when a is ~0.
func quadraticRoots(a, b, c float64) []float64 {
	if math.Abs(a) < epsilon {
		if math.Abs(b) < epsilon {
			return nil
		}
		return []float64{-c / b}
	}
	d := b*b - 4*a*c
	if d < 0 {
		return nil
	}
	if d == 0 {
		return []float64{-b / (2 * a)}
	}
	// Citardauq formula, avoiding the cancellation of b and sqrt(d)
	q := math.Sqrt(d)
	if b < 0 {
		q = -q
	}
	x1 := -(b + q) / (2 * a)
	if x1 == 0 {
		return []float64{0, -b / a}
	}
	return []float64{x1, c / (a * x1)}
}

// CubicBounds returns the tight bounding box of the cubic Bézier curve
// (p0, p1, p2, p3): the endpoints plus the curve value at every root
// in [0, 1] of the derivative, taken on each axis separately.
func CubicBounds(p0, p1, p2, p3 Point) Rect {
	aX, bX, cX := cubicDerivative(p0.X, p1.X, p2.X, p3.X)
	aY, bY, cY := cubicDerivative(p0.Y, p1.Y, p2.Y, p3.Y)

	pts := []Point{p0, p3}
	for _, t := range append(quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY)...) {
		// filter invalid value
		if !(0 <= t && t <= 1) {
			continue
		}
		pts = append(pts, CubicAt(p0, p1, p2, p3, t))
	}
	return RectFromPoints(pts...)
}

// QuadToCubic elevates the quadratic curve (p0, q1, p3)
// to the equivalent cubic one, returning its two control points.
func QuadToCubic(p0, q1, p3 Point) (c1, c2 Point) {
	c1 = p0.Add(q1.Sub(p0).Mul(2. / 3))
	c2 = p3.Add(q1.Sub(p3).Mul(2. / 3))
	return c1, c2
}

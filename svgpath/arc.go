package svgpath

import "math"

// maxArcSpan is the maximum angle, in radians, a single cubic segment
// is allowed to span when approximating an elliptical arc.
const maxArcSpan = math.Pi / 2

// Cubic is a cubic Bézier segment starting at the current point.
type Cubic struct{ C1, C2, End Point }

// arcCenter converts the endpoint parameterization of an arc to its center
// parameterization (W3C SVG implementation notes, F.6.5), scaling up the radii
// when they are too small to join the two points.
// Angles are in radians; rot is the x-axis rotation, in radians.
func arcCenter(p1 Point, rx, ry, rot float64, large, sweep bool, p2 Point) (c Point, nrx, nry, theta, delta float64) {
	sin, cos := math.Sincos(rot)
	x1p := cos*(p1.X-p2.X)/2 + sin*(p1.Y-p2.Y)/2
	y1p := -sin*(p1.X-p2.X)/2 + cos*(p1.Y-p2.Y)/2

	radiiCheck := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if radiiCheck > 1 {
		rx *= math.Sqrt(radiiCheck)
		ry *= math.Sqrt(radiiCheck)
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0 {
		sq = 0
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	c.X = cos*cxp - sin*cyp + (p1.X+p2.X)/2
	c.Y = sin*cxp + cos*cyp + (p1.Y+p2.Y)/2

	ux, uy := (x1p-cxp)/rx, (y1p-cyp)/ry
	vx, vy := -(x1p+cxp)/rx, -(y1p+cyp)/ry
	theta = math.Atan2(uy, ux)
	delta = math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}
	return c, rx, ry, theta, delta
}

// ArcToCubics approximates the SVG elliptical arc going from p1 to p2 with
// cubic Bézier segments, each spanning at most 90 degrees. rot is the x-axis
// rotation in degrees. A zero radius gives a straight line, expressed as one
// cubic, and a zero length arc gives no segment.
func ArcToCubics(p1 Point, rx, ry, rot float64, large, sweep bool, p2 Point) []Cubic {
	if p1 == p2 {
		return nil
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		return []Cubic{{C1: p1.Interpolate(p2, 1./3), C2: p1.Interpolate(p2, 2./3), End: p2}}
	}

	rot *= math.Pi / 180 // Convert degrees to radians
	c, rx, ry, theta, delta := arcCenter(p1, rx, ry, rot, large, sweep, p2)

	segs := int(math.Ceil(math.Abs(delta)/maxArcSpan - 1e-9))
	if segs < 1 {
		segs = 1
	}
	dTheta := delta / float64(segs)
	alpha := 4. / 3 * math.Tan(dTheta/4)
	sinRot, cosRot := math.Sincos(rot)

	// point and derivative of the ellipse at angle eta
	at := func(eta float64) (p, d Point) {
		sin, cos := math.Sincos(eta)
		p = Point{
			X: c.X + rx*cos*cosRot - ry*sin*sinRot,
			Y: c.Y + rx*cos*sinRot + ry*sin*cosRot,
		}
		d = Point{
			X: -rx*sin*cosRot - ry*cos*sinRot,
			Y: -rx*sin*sinRot + ry*cos*cosRot,
		}
		return p, d
	}

	out := make([]Cubic, segs)
	start, dStart := at(theta)
	start = p1 // no roundoff error on the seam
	for i := 1; i <= segs; i++ {
		end, dEnd := at(theta + dTheta*float64(i))
		if i == segs {
			end = p2 // Just makes the end point exact; no roundoff error
		}
		out[i-1] = Cubic{
			C1:  start.Add(dStart.Mul(alpha)),
			C2:  end.Sub(dEnd.Mul(alpha)),
			End: end,
		}
		start, dStart = end, dEnd
	}
	return out
}

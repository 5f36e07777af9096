package svgpath

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func testRect(t *testing.T, got, want Rect) {
	t.Helper()
	test.Float(t, got.X, want.X)
	test.Float(t, got.Y, want.Y)
	test.Float(t, got.W, want.W)
	test.Float(t, got.H, want.H)
}

func TestCubicBounds(t *testing.T) {
	// linear derivative: a ~ 0
	r := CubicBounds(Point{0, 0}, Point{10, 10}, Point{20, 20}, Point{30, 0})
	test.Float(t, r.X, 0)
	test.Float(t, r.W, 30)
	test.That(t, r.H > 0 && r.H <= 20, r.H)

	// the box never exceeds the hull of the control points
	p0, p1, p2, p3 := Point{3, 7}, Point{-20, 40}, Point{60, -15}, Point{10, 12}
	r = CubicBounds(p0, p1, p2, p3)
	hull := RectFromPoints(p0, p1, p2, p3)
	test.That(t, r.X >= hull.X && r.MaxX() <= hull.MaxX())
	test.That(t, r.Y >= hull.Y && r.MaxY() <= hull.MaxY())
	for i := 0; i <= 100; i++ {
		p := CubicAt(p0, p1, p2, p3, float64(i)/100)
		test.That(t, r.X-1e-9 <= p.X && p.X <= r.MaxX()+1e-9, p)
		test.That(t, r.Y-1e-9 <= p.Y && p.Y <= r.MaxY()+1e-9, p)
	}
}

func TestQuadToCubic(t *testing.T) {
	c1, c2 := QuadToCubic(Point{0, 0}, Point{0, 50}, Point{0, 100})
	test.Float(t, c1.X, 0)
	test.Float(t, c1.Y, 100./3)
	test.Float(t, c2.Y, 200./3)
}

func TestArcToCubics(t *testing.T) {
	// full half circle: two segments, exact endpoints
	segs := ArcToCubics(Point{0, 0}, 50, 50, 0, false, true, Point{0, 100})
	test.T(t, len(segs), 2)
	test.Float(t, segs[0].End.X, 50)
	test.Float(t, segs[0].End.Y, 50)
	test.T(t, segs[1].End, Point{0, 100})
	test.Float(t, segs[0].C1.X, 50*4./3*math.Tan(math.Pi/8))

	// large arc spans more than 180 degrees
	segs = ArcToCubics(Point{0, 0}, 100, 100, 0, true, true, Point{100, 100})
	test.T(t, len(segs), 3)

	// rotated ellipse, endpoints preserved
	segs = ArcToCubics(Point{1, 2}, 30, 10, 45, false, false, Point{20, 15})
	test.That(t, len(segs) >= 1)
	test.T(t, segs[len(segs)-1].End, Point{20, 15})

	test.T(t, len(ArcToCubics(Point{1, 1}, 5, 5, 0, false, false, Point{1, 1})), 0)
	segs = ArcToCubics(Point{0, 0}, 0, 5, 0, false, false, Point{3, 6})
	test.T(t, len(segs), 1)
	test.Float(t, segs[0].C1.X, 1)
	test.Float(t, segs[0].C1.Y, 2)
}

func TestRoundRect(t *testing.T) {
	var p Path
	p.AddRoundRect(10, 20, 100, 50, 10, 5)
	test.That(t, p.Closed())
	testRect(t, p.Bounds(), Rect{10, 20, 100, 50})
	test.T(t, p[0].Args, []float64{20, 20}) // starts on the top edge

	// radii are clamped to half the sides
	p.Clear()
	p.AddRoundRect(0, 0, 10, 10, 50, 50)
	test.That(t, p.Closed())
	testRect(t, p.Bounds(), Rect{0, 0, 10, 10})
	test.T(t, p[0].Args, []float64{5, 0})

	p.Clear()
	p.AddRoundRect(0, 0, 10, 10, 0, 0)
	test.String(t, p.String(), "M0,0 L10,0 L10,10 L0,10 Z")
}

func TestEllipse(t *testing.T) {
	var p Path
	p.AddEllipse(50, 50, 20, 10)
	test.T(t, len(p), 6)
	test.T(t, p[0].Args, []float64{50, 40})
	for _, c := range p[1:5] {
		test.T(t, c.Kind, CubicAbs)
	}
	test.T(t, p[1].Args[4:], []float64{70, 50}) // clockwise: right side first
	test.That(t, p.Closed())
	testRect(t, p.Bounds(), Rect{30, 40, 40, 20})
}

func TestPolyline(t *testing.T) {
	var p Path
	p.AddPolyline([]float64{0, 0, 10, 0, 10, 10, 5}, true)
	test.String(t, p.String(), "M0,0 L10,0 L10,10 Z")

	p.Clear()
	p.AddPolyline([]float64{0, 0, 10}, false)
	test.T(t, len(p), 0)
}

func TestMatrix(t *testing.T) {
	m := Identity.Translate(10, 20).Scale(2, 3)
	x, y := m.Transform(1, 1)
	test.Float(t, x, 12)
	test.Float(t, y, 23)

	m = Identity.RotateAround(math.Pi/2, 10, 10)
	x, y = m.Transform(20, 10)
	test.Float(t, x, 10)
	test.Float(t, y, 20)

	r := Rect{0, 0, 10, 10}.Transform(Identity.Rotate(math.Pi / 4))
	test.Float(t, r.W, 10*math.Sqrt2)
	test.Float(t, r.X, -5*math.Sqrt2)
	test.That(t, Identity.IsIdentity())
	test.Float(t, Identity.Scale(2, 8).Scaling(), 4)
}

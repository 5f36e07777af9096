package svgicon

import (
	"strings"

	"github.com/lemapp09/SVGtoUXML/svgpath"
	"golang.org/x/image/math/fixed"
)

// Given parsed shapes, implements how to
// replay them on a painting backend.
// This requires a driver implementing the actual draw operations,
// such as a rasterizer to output .png images.

// Drawer knows how to do the actual draw operations
// but doesn't need any SVG kwowledge
// In particular, tranformations matrix are already applied to the points
// before sending them to the Drawer.
type Drawer interface {
	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line Adds a line for the current point to `b`
	Line(b fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)

	// Closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)
}

// JoinMode type to specify how segments join.
type JoinMode uint8

// JoinMode constants determine how stroke segments bridge the gap at a join
const (
	Miter JoinMode = iota // default value
	Round
	Bevel
)

func (s JoinMode) String() string {
	switch s {
	case Miter:
		return "miter"
	case Round:
		return "round"
	case Bevel:
		return "bevel"
	default:
		return "<unknown JoinMode>"
	}
}

// ParseJoinMode reads a stroke-linejoin value. Unknown values give Miter.
func ParseJoinMode(v string) JoinMode {
	switch strings.TrimSpace(v) {
	case "round":
		return Round
	case "bevel":
		return Bevel
	default:
		return Miter
	}
}

// CapMode defines how to draw caps on the ends of lines
type CapMode uint8

const (
	ButtCap CapMode = iota // default value
	RoundCap
	SquareCap
)

func (c CapMode) String() string {
	switch c {
	case ButtCap:
		return "butt"
	case RoundCap:
		return "round"
	case SquareCap:
		return "square"
	default:
		return "<unknown CapMode>"
	}
}

// ParseCapMode reads a stroke-linecap value. Unknown values give ButtCap.
func ParseCapMode(v string) CapMode {
	switch strings.TrimSpace(v) {
	case "round":
		return RoundCap
	case "square":
		return SquareCap
	default:
		return ButtCap
	}
}

func toFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

// DrawPath sends the geometry of the shape to `d`, after applying
// the shape transform then `m`.
func (s Shape) DrawPath(d Drawer, m svgpath.Matrix2D) {
	var (
		open  bool
		start fixed.Point26_6
	)
	reopen := func() { // drawing after a close restarts from the sub-path start
		if !open {
			d.Start(start)
			open = true
		}
	}
	for _, cmd := range s.Path.Transform(m.Mult(s.Transform)) {
		a := cmd.Args
		switch cmd.Kind {
		case svgpath.MoveAbs:
			if open {
				d.Stop(false) // implicit close if currently in path.
			}
			start = toFixed(a[0], a[1])
			d.Start(start)
			open = true
		case svgpath.LineAbs:
			reopen()
			d.Line(toFixed(a[0], a[1]))
		case svgpath.CubicAbs:
			reopen()
			d.CubeBezier(toFixed(a[0], a[1]), toFixed(a[2], a[3]), toFixed(a[4], a[5]))
		case svgpath.Close:
			if open {
				d.Stop(true)
				open = false
			}
		}
	}
	if open {
		d.Stop(false)
	}
}

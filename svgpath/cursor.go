package svgpath

// pathCursor replays SVG commands, keeping track of the
// current point and of the last control point, and emits
// the equivalent absolute moves, lines and cubic curves.
type pathCursor struct {
	out        Path
	cur, start Point

	ctrl   Point // last control point of the previous curve
	family byte  // 'C' or 'Q' when the previous command was of this family
}

func (c *pathCursor) moveTo(p Point) {
	c.out.Start(p.X, p.Y)
	c.cur, c.start = p, p
}

func (c *pathCursor) lineTo(p Point) {
	c.out.Line(p.X, p.Y)
	c.cur = p
}

func (c *pathCursor) cubicTo(c1, c2, end Point) {
	c.out.CubeBezier(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
	c.cur = end
}

// smoothCtrl returns the implicit first control point of a
// smooth curve of the given family.
func (c *pathCursor) smoothCtrl(family byte) Point {
	if c.family == family {
		return c.ctrl.reflect(c.cur)
	}
	return c.cur
}

func (c *pathCursor) addCommand(cmd Command) {
	if cmd.Kind == Close {
		c.out.Stop(true)
		c.cur = c.start
		c.family = 0
		return
	}
	var origin Point // added to relative coordinates
	for i := 0; i < cmd.Groups(); i++ {
		g := cmd.Group(i)
		if cmd.Kind.Relative() {
			origin = c.cur
		}
		pt := func(j int) Point { return Point{g[j] + origin.X, g[j+1] + origin.Y} }
		family := byte(0)
		switch cmd.Kind {
		case MoveAbs, MoveRel:
			if i == 0 {
				c.moveTo(pt(0))
			} else { // implicit line to
				c.lineTo(pt(0))
			}
		case LineAbs, LineRel:
			c.lineTo(pt(0))
		case HLineAbs, HLineRel:
			c.lineTo(Point{g[0] + origin.X, c.cur.Y})
		case VLineAbs, VLineRel:
			c.lineTo(Point{c.cur.X, g[0] + origin.Y})
		case CubicAbs, CubicRel:
			c.ctrl = pt(2)
			c.cubicTo(pt(0), c.ctrl, pt(4))
			family = 'C'
		case SmoothCubicAbs, SmoothCubicRel:
			c1 := c.smoothCtrl('C')
			c.ctrl = pt(0)
			c.cubicTo(c1, c.ctrl, pt(2))
			family = 'C'
		case QuadAbs, QuadRel:
			c.quadTo(pt(0), pt(2))
			family = 'Q'
		case SmoothQuadAbs, SmoothQuadRel:
			c.quadTo(c.smoothCtrl('Q'), pt(0))
			family = 'Q'
		case ArcAbs, ArcRel:
			end := pt(5)
			for _, seg := range ArcToCubics(c.cur, g[0], g[1], g[2], g[3] != 0, g[4] != 0, end) {
				c.cubicTo(seg.C1, seg.C2, seg.End)
			}
			c.cur = end
		}
		c.family = family
	}
}

func (c *pathCursor) quadTo(q1, end Point) {
	c1, c2 := QuadToCubic(c.cur, q1, end)
	c.ctrl = q1
	c.cubicTo(c1, c2, end)
}

// Absolute returns the equivalent path, using only absolute
// moves, lines, cubic curves and closes, with one operand group
// per command. Quadratic curves are elevated and arcs are
// approximated by cubic curves.
func (p Path) Absolute() Path {
	var c pathCursor
	for _, cmd := range p {
		c.addCommand(cmd)
	}
	return c.out
}

// Bounds returns the bounding box of the path: tight for curves,
// whose extrema are computed analytically, and the hull of the
// points for lines. An empty path gives the zero Rect at the origin.
func (p Path) Bounds() Rect {
	var (
		pts        []Point
		cur, start Point
	)
	for _, cmd := range p.Absolute() {
		switch cmd.Kind {
		case MoveAbs:
			cur = Point{cmd.Args[0], cmd.Args[1]}
			start = cur
			pts = append(pts, cur)
		case LineAbs:
			cur = Point{cmd.Args[0], cmd.Args[1]}
			pts = append(pts, cur)
		case Close:
			cur = start
		case CubicAbs:
			a := cmd.Args
			end := Point{a[4], a[5]}
			box := CubicBounds(cur, Point{a[0], a[1]}, Point{a[2], a[3]}, end)
			corners := box.Corners()
			pts = append(pts, corners[0], corners[2])
			cur = end
		}
	}
	return RectFromPoints(pts...)
}

// Transform returns the absolute version of the path, with
// every point transformed by m.
func (p Path) Transform(m Matrix2D) Path {
	out := p.Absolute()
	for _, cmd := range out {
		for i := 0; i+1 < len(cmd.Args); i += 2 {
			cmd.Args[i], cmd.Args[i+1] = m.Transform(cmd.Args[i], cmd.Args[i+1])
		}
	}
	return out
}

package svgicon

import (
	"strings"

	"github.com/lemapp09/SVGtoUXML/svgpath"
)

func init() {
	// avoids cyclical static declaration
	// called on package initialization
	drawFuncs[useElement] = useF
}

// elementKind identifies the elements producing geometry.
type elementKind uint8

const (
	unknownElement elementKind = iota
	rectElement
	circleElement
	ellipseElement
	lineElement
	polylineElement
	polygonElement
	pathElement
	useElement
)

var elementKinds = map[string]elementKind{
	"rect":     rectElement,
	"circle":   circleElement,
	"ellipse":  ellipseElement,
	"line":     lineElement,
	"polyline": polylineElement,
	"polygon":  polygonElement,
	"path":     pathElement,
	"use":      useElement,
}

// svgFunc builds the geometry of one element. A nil path
// means the element draws nothing.
type svgFunc func(c *iconCursor, n *node) (svgpath.Path, error)

var drawFuncs = map[elementKind]svgFunc{
	rectElement:     rectF,
	circleElement:   circleF,
	ellipseElement:  ellipseF,
	lineElement:     lineF,
	polylineElement: polylineF,
	polygonElement:  polygonF,
	pathElement:     pathF,
}

// convert dispatches on the element name. Unsupported elements
// have no geometry.
func (c *iconCursor) convert(n *node) (svgpath.Path, error) {
	df, ok := drawFuncs[elementKinds[n.name]]
	if !ok {
		return nil, nil
	}
	return df(c, n)
}

// number reads the leading number of a single valued attribute,
// such as width="10px". Absent or blank attributes give 0 silently;
// values without any number are malformed.
func (c *iconCursor) number(n *node, name string) (f float64, set bool, err error) {
	v, ok := n.attr(name)
	if !ok || strings.TrimSpace(v) == "" {
		return 0, false, nil
	}
	f, ok = svgpath.FirstNumber(v)
	if !ok {
		return 0, false, c.numberError(&ElementError{Path: n.path, Attr: name, Value: v, Err: ErrMalformedNumber})
	}
	return f, true, nil
}

// numbers reads several attributes at once, stopping at the first error.
func (c *iconCursor) numbers(n *node, names ...string) ([]float64, error) {
	out := make([]float64, len(names))
	for i, name := range names {
		var err error
		out[i], _, err = c.number(n, name)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func rectF(c *iconCursor, n *node) (svgpath.Path, error) {
	v, err := c.numbers(n, "x", "y", "width", "height")
	if err != nil {
		return nil, err
	}
	x, y, w, h := v[0], v[1], v[2], v[3]
	rx, setX, err := c.number(n, "rx")
	if err != nil {
		return nil, err
	}
	ry, setY, err := c.number(n, "ry")
	if err != nil {
		return nil, err
	}
	if w <= 0 || h <= 0 {
		return nil, nil
	}
	setX, setY = setX && rx >= 0, setY && ry >= 0
	if setX && !setY {
		ry = rx
	} else if setY && !setX {
		rx = ry
	}
	var p svgpath.Path
	p.AddRoundRect(x, y, w, h, rx, ry)
	return p, nil
}

func circleF(c *iconCursor, n *node) (svgpath.Path, error) {
	v, err := c.numbers(n, "cx", "cy", "r")
	if err != nil {
		return nil, err
	}
	if v[2] <= 0 { // not drawn, but not an error
		return nil, nil
	}
	var p svgpath.Path
	p.AddEllipse(v[0], v[1], v[2], v[2])
	return p, nil
}

func ellipseF(c *iconCursor, n *node) (svgpath.Path, error) {
	v, err := c.numbers(n, "cx", "cy", "rx", "ry")
	if err != nil {
		return nil, err
	}
	if v[2] <= 0 || v[3] <= 0 { // not drawn, but not an error
		return nil, nil
	}
	var p svgpath.Path
	p.AddEllipse(v[0], v[1], v[2], v[3])
	return p, nil
}

func lineF(c *iconCursor, n *node) (svgpath.Path, error) {
	v, err := c.numbers(n, "x1", "y1", "x2", "y2")
	if err != nil {
		return nil, err
	}
	var p svgpath.Path
	p.Start(v[0], v[1])
	p.Line(v[2], v[3])
	return p, nil
}

// points reads the coordinate list of a polyline or polygon.
// Invalid tokens are reported and skipped.
func (c *iconCursor) points(n *node) ([]float64, error) {
	v, _ := n.attr("points")
	var out []float64
	for _, tok := range svgpath.SplitOnCommaOrSpace(v) {
		f, err := svgpath.ParseNumber(tok)
		if err != nil {
			if err := c.numberError(&ElementError{Path: n.path, Attr: "points", Value: tok, Err: ErrMalformedNumber}); err != nil {
				return nil, err
			}
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

func polylineF(c *iconCursor, n *node) (svgpath.Path, error) {
	pts, err := c.points(n)
	if err != nil {
		return nil, err
	}
	var p svgpath.Path
	p.AddPolyline(pts, false)
	return p, nil
}

func polygonF(c *iconCursor, n *node) (svgpath.Path, error) {
	pts, err := c.points(n)
	if err != nil {
		return nil, err
	}
	var p svgpath.Path
	p.AddPolyline(pts, true)
	return p, nil
}

func pathF(c *iconCursor, n *node) (svgpath.Path, error) {
	d, _ := n.attr("d")
	return svgpath.ParsePath(d), nil
}

// useF copies the geometry of the referenced element, shifted by x and y.
// Unresolved references draw nothing.
func useF(c *iconCursor, n *node) (svgpath.Path, error) {
	v, err := c.numbers(n, "x", "y")
	if err != nil {
		return nil, err
	}
	href := n.href()
	if href == "" {
		c.useFailure(n, href, ErrMissingHref)
		return nil, nil
	}
	if !strings.HasPrefix(href, "#") {
		c.useFailure(n, href, ErrBadHref)
		return nil, nil
	}
	id := href[1:]
	target, ok := c.doc.ids[id]
	if !ok {
		c.useFailure(n, href, ErrUnknownID)
		return nil, nil
	}
	if c.using[id] {
		c.useFailure(n, href, ErrUseCycle)
		return nil, nil
	}
	c.using[id] = true
	defer delete(c.using, id)

	p, err := c.convert(target)
	if err != nil || len(p) == 0 {
		return nil, err
	}
	return p.Translate(v[0], v[1]), nil
}

package svgicon

import (
	"errors"
	"math"
	"strings"

	"github.com/lemapp09/SVGtoUXML/svgpath"
)

// iconCursor is used while walking one document.
// It is never shared between parses.
type iconCursor struct {
	opts   ParseOptions
	doc    *document
	rootW  float64 // root size used by the background heuristic, 0 if unknown
	rootH  float64
	shapes []Shape
	using  map[string]bool // ids of the <use> references being resolved
}

func newCursor(doc *document, opts ParseOptions) *iconCursor {
	return &iconCursor{opts: opts, doc: doc, using: make(map[string]bool)}
}

func (c *iconCursor) report(severity Severity, err error) {
	if c.opts.Sink == nil {
		return
	}
	d := Diagnostic{Severity: severity, Err: err}
	var ee *ElementError
	if errors.As(err, &ee) {
		d.Path = ee.Path
	}
	c.opts.Sink.Report(d)
}

func (c *iconCursor) warn(err error) { c.report(Warning, err) }

// numberError handles a malformed numeric value: in strict mode
// it is returned as is, otherwise it is reported and the caller
// falls back on its default.
func (c *iconCursor) numberError(err *ElementError) error {
	if c.opts.Strict {
		return err
	}
	c.warn(err)
	return nil
}

// useFailure reports an unresolved reference, only in verbose mode.
func (c *iconCursor) useFailure(n *node, href string, err error) {
	if c.opts.Verbose {
		c.warn(&ElementError{Path: n.path, Attr: "href", Value: href, Err: err})
	}
}

// loadStylesheets collects the class rules of every <style> element.
// A stylesheet which fails to parse is skipped with a warning.
func (c *iconCursor) loadStylesheets() {
	for _, s := range c.doc.styles {
		if err := c.doc.classes.addStylesheet(s.text); err != nil {
			c.warn(&ElementError{Path: s.path, Err: err})
		}
	}
}

// rootSize resolves the canvas size from the root width and height,
// falling back on the viewBox when one of them is missing or not positive.
// Percentages are considered missing.
func rootSize(root *node, viewBox svgpath.Rect) (w, h float64) {
	length := func(name string) float64 {
		v, ok := root.attr(name)
		if !ok || strings.Contains(v, "%") {
			return 0
		}
		return svgpath.LeadingNumber(v, 0)
	}
	w, h = length("width"), length("height")
	if w <= 0 || h <= 0 {
		w, h = viewBox.W, viewBox.H
	}
	return w, h
}

// readViewBox returns the viewBox of the root, or the zero Rect.
func readViewBox(root *node) svgpath.Rect {
	v, _ := root.attr("viewBox")
	pts := svgpath.ParseNumbers(v)
	if len(pts) != 4 {
		return svgpath.Rect{}
	}
	return svgpath.Rect{X: pts[0], Y: pts[1], W: pts[2], H: pts[3]}
}

// almostEqual compares with a 0.1% relative tolerance.
func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-3*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// isBackground reports whether the rect covers exactly the canvas,
// before any transform.
func (c *iconCursor) isBackground(n *node) bool {
	if n.name != "rect" || c.rootW <= 0 || c.rootH <= 0 {
		return false
	}
	value := func(name string) float64 {
		v, _ := n.attr(name)
		return svgpath.LeadingNumber(v, 0)
	}
	return almostEqual(value("x"), 0) && almostEqual(value("y"), 0) &&
		almostEqual(value("width"), c.rootW) && almostEqual(value("height"), c.rootH)
}

// walk visits n and its descendants, in document order.
// The style and the transform are passed by value: siblings never
// see each other's state.
func (c *iconCursor) walk(n *node, parent StyleValues, pm svgpath.Matrix2D, depth int) error {
	if depth > c.opts.maxDepth() {
		c.warn(&ElementError{Path: n.path, Err: ErrTooDeep})
		return nil
	}
	switch n.name {
	case "defs", "style": // only reached through <use> and class attributes
		return nil
	}

	m := pm
	if v, ok := n.attr("transform"); ok {
		local, err := parseTransform(v)
		if err != nil {
			c.warn(&ElementError{Path: n.path, Attr: "transform", Value: v, Err: err})
		} else {
			m = pm.Mult(local)
		}
	}

	style, explicit, err := c.resolveStyle(n, parent)
	if err != nil {
		return err
	}

	path, err := c.convert(n)
	if err != nil {
		return err
	}
	if len(path) > 0 {
		shapeStyle := style
		if c.isBackground(n) {
			if !explicit.fill {
				shapeStyle.Fill = transparent
			}
			if !explicit.stroke {
				shapeStyle.Stroke = transparent
				shapeStyle.StrokeWidth = 0
			}
		}
		c.shapes = append(c.shapes, newShape(path, shapeStyle, m))
	}

	for _, child := range n.children {
		if err := c.walk(child, style, m, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Provides parsing of SVG images into a flat list of shapes.
// A shape is a path made of SVG commands, with its resolved paint style,
// its cumulative transform and its bounding box. Shapes
// can then be consumed by painting drivers, such as svgraster,
// or serialized with svgcodec.
//
// Only a sub-set of SVG is supported: the svg, g, defs, style, path, rect,
// circle, ellipse, line, polyline, polygon and use elements, with the
// fill, stroke, stroke-width, stroke-linecap and stroke-linejoin
// properties, set as attributes, in style attributes or with
// `.class { }` rules.
package svgicon

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lemapp09/SVGtoUXML/svgpath"
)

// Drawing holds data from a parsed SVG.
type Drawing struct {
	ViewBox svgpath.Rect // zero if not specified

	// Width and Height are the root size, read from the width and
	// height attributes or, if missing, from the viewBox.
	Width, Height float64

	Shapes []Shape // in document order
}

// Bounds returns the union of the shape bounds.
func (d *Drawing) Bounds() (svgpath.Rect, bool) { return Union(d.Shapes) }

// ReadDrawingStream reads the Drawing from the given io.Reader.
//
// In lenient mode (the default), an unreadable document is reported to
// opts.Sink as an Error, and an empty Drawing is returned with a nil error;
// element level problems are reported as warnings.
// In strict mode, the first malformed numeric value, or an unreadable
// document, aborts the parse with an error.
func ReadDrawingStream(stream io.Reader, opts ParseOptions) (*Drawing, error) {
	doc, err := readDocument(stream)
	if err == nil && doc.root.name != "svg" {
		err = fmt.Errorf("root element <%s>: %w", doc.root.name, ErrNoSVG)
	}
	if err != nil {
		if opts.Strict {
			return nil, err
		}
		c := newCursor(nil, opts)
		c.report(Error, err)
		return &Drawing{}, nil
	}

	c := newCursor(doc, opts)
	c.loadStylesheets()

	out := &Drawing{ViewBox: readViewBox(doc.root)}
	out.Width, out.Height = rootSize(doc.root, out.ViewBox)
	c.rootW, c.rootH = out.Width, out.Height

	if err := c.walk(doc.root, DefaultStyle, svgpath.Identity, 0); err != nil {
		return nil, err
	}
	out.Shapes = c.shapes
	return out, nil
}

// ReadDrawing reads the Drawing from the named file.
func ReadDrawing(file string, opts ParseOptions) (*Drawing, error) {
	fin, errf := os.Open(file)
	if errf != nil {
		return nil, errf
	}
	defer fin.Close()
	return ReadDrawingStream(fin, opts)
}

// Parse is a convenience wrapper returning only the shapes of
// the given document.
func Parse(svg string, opts ParseOptions) ([]Shape, error) {
	d, err := ReadDrawingStream(strings.NewReader(svg), opts)
	if err != nil {
		return nil, err
	}
	return d.Shapes, nil
}

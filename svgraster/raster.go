// Implements a raster backend to render shape lists,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/lemapp09/SVGtoUXML/svgicon"
	"github.com/lemapp09/SVGtoUXML/svgpath"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

var _ svgicon.Drawer = (*Renderer)(nil) // assert interface conformance

// miterLimit is the stroke-miterlimit SVG default.
const miterLimit = 4

type Renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
}

// NewRenderer returns a renderer with default values.
// In addition to rasterizing lines like a Scanner,
// it can also rasterize cubic bezier curves.
// If scanner is nil, a default scanner rasterx.ScannerGV is used
// on a new image.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	if scanner == nil {
		img := image.NewRGBA(image.Rect(0, 0, width, height))
		scanner = rasterx.NewScannerGV(width, height, img, img.Bounds())
	}
	return &Renderer{dasher: rasterx.NewDasher(width, height, scanner), filler: rasterx.NewFiller(width, height, scanner)}
}

// Options controls the output image.
type Options struct {
	Width, Height int
	Background    color.Color // nil for transparent
}

// RasterShapesToImage uses a ScannerGV instance to render the
// shapes into a new image, fitted to the image size.
func RasterShapesToImage(shapes []svgicon.Shape, opts Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	if opts.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}
	bounds, ok := svgicon.Union(shapes)
	if !ok {
		return img
	}
	scanner := rasterx.NewScannerGV(opts.Width, opts.Height, img, img.Bounds())
	renderer := NewRenderer(opts.Width, opts.Height, scanner)
	renderer.DrawShapes(shapes, Fit(bounds, float64(opts.Width), float64(opts.Height)))
	return img
}

// RasterSVGToImage parses the SVG document and renders it
// with RasterShapesToImage.
func RasterSVGToImage(svg io.Reader, parse svgicon.ParseOptions, opts Options) (*image.RGBA, error) {
	drawing, err := svgicon.ReadDrawingStream(svg, parse)
	if err != nil {
		return nil, err
	}
	return RasterShapesToImage(drawing.Shapes, opts), nil
}

// Fit returns the transform scaling `bounds` uniformly so that it fits
// in a width x height viewport, centered. An axis with zero extent
// does not constrain the scale; if both have zero extent, the scale is 1.
func Fit(bounds svgpath.Rect, width, height float64) svgpath.Matrix2D {
	s := math.Inf(1)
	if bounds.W > 0 {
		s = width / bounds.W
	}
	if bounds.H > 0 {
		s = math.Min(s, height/bounds.H)
	}
	if math.IsInf(s, 1) {
		s = 1
	}
	dx := (width-bounds.W*s)/2 - bounds.X*s
	dy := (height-bounds.H*s)/2 - bounds.Y*s
	return svgpath.Identity.Translate(dx, dy).Scale(s, s)
}

// DrawShapes replays the shapes, in order, after applying their own
// transform then `m`. Each shape is filled, then stroked, with a stroke
// width scaled by `m`.
func (rd *Renderer) DrawShapes(shapes []svgicon.Shape, m svgpath.Matrix2D) {
	scale := m.Scaling()
	for _, s := range shapes {
		fill, stroke := s.HasFill(), s.HasStroke()
		if !fill && !stroke {
			continue
		}
		rd.Clear()
		if stroke {
			rd.SetStrokeOptions(s.StrokeWidth*scale, s.Cap, s.Join)
		}
		s.DrawPath(rd, m)
		if fill {
			rd.SetFillColor(s.Fill)
			rd.Fill()
		}
		if stroke {
			rd.SetStrokeColor(s.Stroke)
			rd.Stroke()
		}
	}
}

func (rd *Renderer) Clear() {
	rd.dasher.Clear()
	rd.filler.Clear()
}

func (rd *Renderer) SetFillColor(c color.Color) {
	rd.filler.Scanner.SetColor(c)
}

func (rd *Renderer) SetStrokeColor(c color.Color) {
	rd.dasher.Scanner.SetColor(c)
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		svgicon.Round: rasterx.Round,
		svgicon.Bevel: rasterx.Bevel,
		svgicon.Miter: rasterx.Miter,
	}

	capToFunc = [...]rasterx.CapFunc{
		svgicon.ButtCap:   rasterx.ButtCap,
		svgicon.SquareCap: rasterx.SquareCap,
		svgicon.RoundCap:  rasterx.RoundCap,
	}
)

func (rd *Renderer) SetStrokeOptions(width float64, capMode svgicon.CapMode, join svgicon.JoinMode) {
	rd.dasher.SetStroke(
		fixed.Int26_6(width*64), fixed.Int26_6(miterLimit*64), capToFunc[capMode],
		capToFunc[capMode], rasterx.FlatGap, joinToJoin[join], nil, 0,
	)
}

func (rd *Renderer) Start(a fixed.Point26_6) {
	rd.filler.Start(a)
	rd.dasher.Start(a)
}

func (rd *Renderer) Line(b fixed.Point26_6) {
	rd.filler.Line(b)
	rd.dasher.Line(b)
}

func (rd *Renderer) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	rd.filler.CubeBezier(b, c, d)
	rd.dasher.CubeBezier(b, c, d)
}

func (rd *Renderer) Stop(closeLoop bool) {
	rd.filler.Stop(closeLoop)
	rd.dasher.Stop(closeLoop)
}

func (rd *Renderer) Fill() {
	rd.filler.Draw()
}

func (rd *Renderer) Stroke() {
	rd.dasher.Draw()
}

package svgraster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/lemapp09/SVGtoUXML/svgicon"
	"github.com/lemapp09/SVGtoUXML/svgpath"
	"github.com/tdewolff/test"
)

func toPngBytes(m image.Image) ([]byte, error) {
	// Create Writer from file
	var b bytes.Buffer
	// Write the image into the buffer
	err := png.Encode(&b, m)
	if err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

func TestFit(t *testing.T) {
	m := Fit(svgpath.Rect{X: 10, Y: 10, W: 20, H: 10}, 100, 100)
	x, y := m.Transform(10, 10)
	test.Float(t, x, 0)
	test.Float(t, y, 25)
	x, y = m.Transform(30, 20)
	test.Float(t, x, 100)
	test.Float(t, y, 75)
	test.Float(t, m.Scaling(), 5)

	// zero height: only the width constrains the scale
	m = Fit(svgpath.Rect{W: 10}, 20, 20)
	test.Float(t, m.Scaling(), 2)
	_, y = m.Transform(0, 0)
	test.Float(t, y, 10)

	// a single point is centered, without scaling
	m = Fit(svgpath.Rect{X: 3, Y: 4}, 20, 10)
	test.Float(t, m.Scaling(), 1)
	x, y = m.Transform(3, 4)
	test.Float(t, x, 10)
	test.Float(t, y, 5)
}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// near compares colors, allowing for antialiasing rounding.
func near(t *testing.T, got color.Color, want color.RGBA) {
	t.Helper()
	c := rgba(got)
	for i, v := range [4][2]uint8{{c.R, want.R}, {c.G, want.G}, {c.B, want.B}, {c.A, want.A}} {
		d := int(v[0]) - int(v[1])
		test.That(t, -2 <= d && d <= 2, i, c, want)
	}
}

func TestFillAndStroke(t *testing.T) {
	const src = `<svg width="10" height="10" fill="#ff0000">
		<rect width="10" height="10"/>
		<rect x="4" y="4" width="2" height="2" fill="#0000ff" stroke="none"/>
	</svg>`
	img, err := RasterSVGToImage(strings.NewReader(src), svgicon.ParseOptions{}, Options{Width: 20, Height: 20, Background: color.White})
	test.Error(t, err)

	// the first rect covers the canvas: the background heuristic drops its inherited fill
	test.T(t, rgba(img.At(1, 1)), color.RGBA{0xff, 0xff, 0xff, 0xff})
	// the union still includes it, so the blue square is scaled by 2
	near(t, img.At(10, 10), color.RGBA{0, 0, 0xff, 0xff})
	near(t, img.At(6, 6), color.RGBA{0xff, 0xff, 0xff, 0xff})
}

func TestStroke(t *testing.T) {
	shapes, err := svgicon.Parse(`<svg><line x2="10" stroke="#000000" stroke-width="1"/></svg>`, svgicon.ParseOptions{})
	test.Error(t, err)
	img := RasterShapesToImage(shapes, Options{Width: 20, Height: 20, Background: color.White})

	// the line is scaled by 2 and vertically centered: rows 9 and 10
	near(t, img.At(10, 9), color.RGBA{0, 0, 0, 0xff})
	near(t, img.At(10, 10), color.RGBA{0, 0, 0, 0xff})
	test.T(t, rgba(img.At(10, 5)), color.RGBA{0xff, 0xff, 0xff, 0xff})
}

func TestInvisibleShapes(t *testing.T) {
	shapes, err := svgicon.Parse(`<svg><rect width="5" height="5"/></svg>`, svgicon.ParseOptions{})
	test.Error(t, err)
	test.T(t, len(shapes), 1)
	img := RasterShapesToImage(shapes, Options{Width: 8, Height: 8})
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			test.T(t, img.RGBAAt(x, y), color.RGBA{})
		}
	}

	img = RasterShapesToImage(nil, Options{Width: 4, Height: 4, Background: color.Black})
	test.T(t, rgba(img.At(2, 2)), color.RGBA{0, 0, 0, 0xff})

	b, err := toPngBytes(img)
	test.Error(t, err)
	test.That(t, len(b) > 0)
}

func TestRendererDefaultScanner(t *testing.T) {
	rd := NewRenderer(4, 4, nil)
	rd.SetStrokeOptions(1, svgicon.RoundCap, svgicon.Bevel)
	shape := svgicon.Shape{Path: svgpath.ParsePath("M0,0 L4,4"), Transform: svgpath.Identity}
	shape.DrawPath(rd, svgpath.Identity)
	rd.Stroke()
	rd.Clear()
}

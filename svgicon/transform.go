package svgicon

import (
	"math"
	"strings"

	"github.com/lemapp09/SVGtoUXML/svgpath"
)

// readTransformAttr applies one transform function on m1.
// skewX, skewY and matrix are not supported and leave m1 unchanged.
func readTransformAttr(m1 svgpath.Matrix2D, k string, points []float64) (svgpath.Matrix2D, error) {
	ln := len(points)
	switch k {
	case "rotate":
		if ln == 1 {
			m1 = m1.Rotate(points[0] * math.Pi / 180)
		} else if ln == 3 {
			m1 = m1.RotateAround(points[0]*math.Pi/180, points[1], points[2])
		} else {
			return m1, ErrParamMismatch
		}
	case "translate":
		if ln == 1 {
			m1 = m1.Translate(points[0], 0)
		} else if ln == 2 {
			m1 = m1.Translate(points[0], points[1])
		} else {
			return m1, ErrParamMismatch
		}
	case "scale":
		if ln == 1 {
			m1 = m1.Scale(points[0], points[0])
		} else if ln == 2 {
			m1 = m1.Scale(points[0], points[1])
		} else {
			return m1, ErrParamMismatch
		}
	case "skewx", "skewy", "matrix":
	default:
		return m1, ErrParamMismatch
	}
	return m1, nil
}

// parseTransform reads a transform attribute, such as
// "translate(10 20) rotate(45, 5, 5)". Functions are composed left to right,
// so that the rightmost one is applied first.
func parseTransform(v string) (svgpath.Matrix2D, error) {
	m1 := svgpath.Identity
	for _, t := range strings.Split(v, ")") {
		t = strings.TrimSpace(t)
		if len(t) == 0 {
			continue
		}
		d := strings.Split(t, "(")
		if len(d) != 2 || len(d[1]) < 1 {
			return svgpath.Identity, ErrParamMismatch // badly formed transformation
		}
		var err error
		name := strings.ToLower(strings.Trim(d[0], " \t\r\n,"))
		m1, err = readTransformAttr(m1, name, svgpath.ParseNumbers(d[1]))
		if err != nil {
			return svgpath.Identity, err
		}
	}
	return m1, nil
}

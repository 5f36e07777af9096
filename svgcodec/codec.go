// Implements a compact textual encoding of shape lists,
// suitable to be stored in a single markup attribute.
//
// Shapes are joined by '|', and each shape is written as
//
//	fill;stroke;strokeWidth;cap;join;pathData
//
// where colors are #RRGGBBAA, and pathData is the space separated
// list of commands, such as "M10,20 L30,40 Z".
// The whole string is entity escaped.
//
// Transforms are not encoded: use svgicon.Shape.Baked to
// flatten transformed shapes before encoding.
package svgcodec

import (
	"strconv"
	"strings"

	"github.com/lemapp09/SVGtoUXML/svgicon"
	"github.com/lemapp09/SVGtoUXML/svgpath"
	"golang.org/x/net/html"
)

const (
	recordSep = "|"
	fieldSep  = ";"
)

// EncodePath returns the path data of p, one token per command.
func EncodePath(p svgpath.Path) string { return p.ToSVGPath() }

// DecodePath parses path data written by EncodePath.
func DecodePath(s string) svgpath.Path { return svgpath.ParsePath(s) }

// formatNumber uses the shortest representation
// parsing back to the same value.
func formatNumber(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func encodeShape(s svgicon.Shape) string {
	return strings.Join([]string{
		svgicon.HexColor(s.Fill),
		svgicon.HexColor(s.Stroke),
		formatNumber(s.StrokeWidth),
		s.Cap.String(),
		s.Join.String(),
		EncodePath(s.Path),
	}, fieldSep)
}

// Encode serializes the shapes.
func Encode(shapes []svgicon.Shape) string {
	records := make([]string, len(shapes))
	for i, s := range shapes {
		records[i] = encodeShape(s)
	}
	return html.EscapeString(strings.Join(records, recordSep))
}

// decodeShape returns false for records with less than 4 fields.
// Invalid colors give transparent colors and an invalid
// width gives 0.
func decodeShape(record string) (svgicon.Shape, bool) {
	fields := strings.Split(record, fieldSep)
	if len(fields) < 4 {
		return svgicon.Shape{}, false
	}
	var s svgicon.Shape
	s.Fill, _ = svgicon.ParseColor(fields[0])
	s.Stroke, _ = svgicon.ParseColor(fields[1])
	if w, err := svgpath.ParseNumber(fields[2]); err == nil {
		s.StrokeWidth = max(w, 0)
	}
	s.Cap = svgicon.ParseCapMode(fields[3])
	if len(fields) > 4 {
		s.Join = svgicon.ParseJoinMode(fields[4])
	}
	if len(fields) > 5 {
		s.Path = DecodePath(fields[5])
	}
	s.Transform = svgpath.Identity
	s.Bounds = s.Path.Bounds()
	return s, true
}

// Decode parses a string written by Encode. Malformed records
// are skipped. Decoded shapes have an identity transform.
func Decode(s string) []svgicon.Shape {
	s = html.UnescapeString(s)
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []svgicon.Shape
	for _, record := range strings.Split(s, recordSep) {
		if shape, ok := decodeShape(record); ok {
			out = append(out, shape)
		}
	}
	return out
}

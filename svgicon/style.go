package svgicon

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/lemapp09/SVGtoUXML/svgpath"
)

// StyleValues holds the resolved paint style of an element.
// A transparent color means the shape is not filled (or stroked).
type StyleValues struct {
	Fill, Stroke color.NRGBA
	StrokeWidth  float64
	Cap          CapMode
	Join         JoinMode
}

// DefaultStyle is the style of the root element: no fill,
// no stroke, zero width, ButtCap line end and Miter line connect.
var DefaultStyle = StyleValues{}

// ParseColor parses #RRGGBB and #RRGGBBAA hexadecimal colors,
// as well as the short #RGB and #RGBA forms.
func ParseColor(s string) (color.NRGBA, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return color.NRGBA{}, false
	}
	s = s[1:]
	switch len(s) {
	case 3, 4: // #RGB(A) expands to #RRGGBB(AA)
		var b strings.Builder
		for i := 0; i < len(s); i++ {
			b.WriteByte(s[i])
			b.WriteByte(s[i])
		}
		s = b.String()
	case 6, 8:
	default:
		return color.NRGBA{}, false
	}
	if len(s) == 6 {
		s += "ff"
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, true
}

// HexColor formats c as #RRGGBBAA.
func HexColor(c color.NRGBA) string {
	const digits = "0123456789ABCDEF"
	out := []byte{'#', 0, 0, 0, 0, 0, 0, 0, 0}
	for i, v := range [4]uint8{c.R, c.G, c.B, c.A} {
		out[1+2*i] = digits[v>>4]
		out[2+2*i] = digits[v&0x0f]
	}
	return string(out)
}

// parsePaint handles fill and stroke values: `none` gives a transparent
// color, and anything which is not a valid color is rejected.
func parsePaint(v string) (color.NRGBA, bool) {
	if strings.TrimSpace(v) == "none" {
		return color.NRGBA{}, true
	}
	return ParseColor(v)
}

// isStyleProperty returns true for the properties taking part in the cascade.
func isStyleProperty(k string) bool {
	switch k {
	case "fill", "stroke", "stroke-width", "stroke-linecap", "stroke-linejoin":
		return true
	}
	return false
}

// readStyleAttr applies one property on s. Invalid colors leave the
// current value, unknown caps and joins fall back on the defaults.
// Only a malformed stroke width is reported, with ErrMalformedNumber.
func (s *StyleValues) readStyleAttr(k, v string) error {
	v = strings.TrimSpace(v)
	switch k {
	case "fill":
		if c, ok := parsePaint(v); ok {
			s.Fill = c
		}
	case "stroke":
		if c, ok := parsePaint(v); ok {
			s.Stroke = c
		}
	case "stroke-width":
		width, ok := svgpath.FirstNumber(v)
		if !ok {
			return ErrMalformedNumber
		}
		s.StrokeWidth = max(width, 0)
	case "stroke-linecap":
		s.Cap = ParseCapMode(v)
	case "stroke-linejoin":
		s.Join = ParseJoinMode(v)
	}
	return nil
}

// declaration is one property: value pair
type declaration struct{ property, value string }

// parseInlineStyle reads the declarations of a style attribute.
func parseInlineStyle(v string) []declaration {
	var out []declaration
	decls, err := parser.ParseDeclarations(v)
	if err != nil { // fall back on a plain split
		for _, pair := range strings.Split(v, ";") {
			kv := strings.SplitN(pair, ":", 2)
			if len(kv) == 2 {
				out = append(out, declaration{strings.ToLower(strings.TrimSpace(kv[0])), strings.TrimSpace(kv[1])})
			}
		}
		return out
	}
	for _, d := range decls {
		out = append(out, declaration{strings.ToLower(strings.TrimSpace(d.Property)), d.Value})
	}
	return out
}

// explicitPaint records which paint properties an element sets itself,
// through attributes or its style attribute.
type explicitPaint struct{ fill, stroke bool }

// resolveStyle computes the style of n: inherited values, overridden by
// the class rules (in class list order), then by the presentation
// attributes, then by the inline style.
func (c *iconCursor) resolveStyle(n *node, parent StyleValues) (StyleValues, explicitPaint, error) {
	style := parent
	var explicit explicitPaint

	apply := func(attr, k, v string) error {
		err := style.readStyleAttr(k, v)
		if err == nil {
			return nil
		}
		return c.numberError(&ElementError{Path: n.path, Attr: attr, Value: v, Err: err})
	}

	if classes, ok := n.attr("class"); ok {
		for _, class := range strings.Fields(classes) {
			for _, d := range c.doc.classes[class] {
				k := strings.ToLower(strings.TrimSpace(d.Property))
				if err := apply("class", k, d.Value); err != nil {
					return style, explicit, err
				}
			}
		}
	}

	for _, attr := range n.attrs {
		k := attr.Name.Local
		if attr.Name.Space != "" || !isStyleProperty(k) {
			continue
		}
		explicit.fill = explicit.fill || k == "fill"
		explicit.stroke = explicit.stroke || k == "stroke"
		if err := apply(k, k, attr.Value); err != nil {
			return style, explicit, err
		}
	}

	if inline, ok := n.attr("style"); ok {
		for _, d := range parseInlineStyle(inline) {
			explicit.fill = explicit.fill || d.property == "fill"
			explicit.stroke = explicit.stroke || d.property == "stroke"
			if err := apply("style", d.property, d.value); err != nil {
				return style, explicit, err
			}
		}
	}
	return style, explicit, nil
}

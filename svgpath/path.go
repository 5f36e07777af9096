// Implements an abstract representation of
// svg paths, which can then be consumed
// by painting drivers or serialized.
package svgpath

import (
	"strconv"
	"strings"
)

// Kind identifies a path command, as written in SVG path data.
type Kind uint8

// Path command kinds, one per SVG letter.
const (
	MoveAbs Kind = iota
	MoveRel
	LineAbs
	LineRel
	HLineAbs
	HLineRel
	VLineAbs
	VLineRel
	CubicAbs
	CubicRel
	SmoothCubicAbs
	SmoothCubicRel
	QuadAbs
	QuadRel
	SmoothQuadAbs
	SmoothQuadRel
	ArcAbs
	ArcRel
	Close
)

var kindLetters = [...]byte{
	MoveAbs: 'M', MoveRel: 'm',
	LineAbs: 'L', LineRel: 'l',
	HLineAbs: 'H', HLineRel: 'h',
	VLineAbs: 'V', VLineRel: 'v',
	CubicAbs: 'C', CubicRel: 'c',
	SmoothCubicAbs: 'S', SmoothCubicRel: 's',
	QuadAbs: 'Q', QuadRel: 'q',
	SmoothQuadAbs: 'T', SmoothQuadRel: 't',
	ArcAbs: 'A', ArcRel: 'a',
	Close: 'Z',
}

// number of operands in one group
var kindArity = [...]int{
	MoveAbs: 2, MoveRel: 2,
	LineAbs: 2, LineRel: 2,
	HLineAbs: 1, HLineRel: 1,
	VLineAbs: 1, VLineRel: 1,
	CubicAbs: 6, CubicRel: 6,
	SmoothCubicAbs: 4, SmoothCubicRel: 4,
	QuadAbs: 4, QuadRel: 4,
	SmoothQuadAbs: 2, SmoothQuadRel: 2,
	ArcAbs: 7, ArcRel: 7,
	Close: 0,
}

// KindOf returns the command kind for an SVG path letter.
// Both 'Z' and 'z' map to Close.
func KindOf(letter byte) (Kind, bool) {
	if letter == 'z' {
		return Close, true
	}
	for k, l := range kindLetters {
		if l == letter {
			return Kind(k), true
		}
	}
	return 0, false
}

// Letter returns the SVG letter of the command.
func (k Kind) Letter() byte { return kindLetters[k] }

// Arity returns the number of operands of one repetition of the command.
func (k Kind) Arity() int { return kindArity[k] }

// Relative is true for the lower case commands.
func (k Kind) Relative() bool { return k != Close && k%2 == 1 }

func (k Kind) String() string { return string(kindLetters[k]) }

// Command is one path instruction. Args holds one or more
// groups of Kind.Arity() operands (implicit repetition).
type Command struct {
	Kind Kind
	Args []float64
}

// Groups returns the number of operand groups in Args.
func (c Command) Groups() int {
	if a := c.Kind.Arity(); a != 0 {
		return len(c.Args) / a
	}
	return 1
}

// Group returns the i-th operand group.
func (c Command) Group(i int) []float64 {
	a := c.Kind.Arity()
	return c.Args[i*a : (i+1)*a]
}

func (c Command) String() string {
	var b strings.Builder
	b.WriteByte(c.Kind.Letter())
	for i, v := range c.Args {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	return b.String()
}

// Path describes a sequence of SVG commands.
// Higher-level shapes are reduced to a path.
type Path []Command

// ParsePath reads SVG path data. Each command letter starts a new command,
// whose operands run until the next command letter; letters outside
// the SVG command set are not emitted. Incomplete trailing operand groups
// are dropped, as are commands left without any operand group.
func ParsePath(d string) Path {
	var (
		p     Path
		kind  Kind
		start = -1
	)
	flush := func(end int) {
		if start < 0 {
			return
		}
		cmd := Command{Kind: kind}
		if a := kind.Arity(); a != 0 {
			args := ParseNumbers(d[start:end])
			args = args[:len(args)/a*a]
			if len(args) == 0 {
				return
			}
			cmd.Args = args
		}
		p = append(p, cmd)
	}
	for i := 0; i < len(d); i++ {
		k, ok := KindOf(d[i])
		if !ok {
			continue
		}
		flush(i)
		kind, start = k, i+1
	}
	flush(len(d))
	return p
}

// Clone returns a deep copy of the path.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	for i, c := range p {
		out[i] = Command{Kind: c.Kind, Args: append([]float64(nil), c.Args...)}
	}
	return out
}

// Closed reports whether the last command closes the path.
func (p Path) Closed() bool {
	return len(p) > 0 && p[len(p)-1].Kind == Close
}

// ToSVGPath returns the path data, one command per token,
// for instance "M10,20 L30,40 Z".
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, c := range p {
		chunks[i] = c.String()
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new sub-path at the given point.
func (p *Path) Start(x, y float64) {
	*p = append(*p, Command{Kind: MoveAbs, Args: []float64{x, y}})
}

// Line adds a linear segment to the current sub-path.
func (p *Path) Line(x, y float64) {
	*p = append(*p, Command{Kind: LineAbs, Args: []float64{x, y}})
}

// CubeBezier adds a cubic segment to the current sub-path.
func (p *Path) CubeBezier(x1, y1, x2, y2, x, y float64) {
	*p = append(*p, Command{Kind: CubicAbs, Args: []float64{x1, y1, x2, y2, x, y}})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Command{Kind: Close})
	}
}

// Translate returns a copy of the path where the absolute coordinates
// are shifted by (dx, dy). Relative commands are left untouched, since they
// are expressed from an already shifted current point.
func (p Path) Translate(dx, dy float64) Path {
	out := p.Clone()
	for _, c := range out {
		if c.Kind.Relative() {
			continue
		}
		switch c.Kind {
		case HLineAbs:
			for i := range c.Args {
				c.Args[i] += dx
			}
		case VLineAbs:
			for i := range c.Args {
				c.Args[i] += dy
			}
		case ArcAbs:
			for i := 0; i+6 < len(c.Args); i += 7 {
				c.Args[i+5] += dx
				c.Args[i+6] += dy
			}
		case Close:
		default:
			for i := 0; i+1 < len(c.Args); i += 2 {
				c.Args[i] += dx
				c.Args[i+1] += dy
			}
		}
	}
	return out
}

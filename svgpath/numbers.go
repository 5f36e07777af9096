package svgpath

import (
	"errors"
	"iter"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// This file implements the number scanner shared by
// attribute values, point lists and path data.

var errBadNumber = errors.New("malformed number")

// startsNumber reports whether a number may begin at b[0].
func startsNumber(b []byte) bool {
	c := b[0]
	return ('0' <= c && c <= '9') || c == '.' || c == '-' || c == '+'
}

// Numbers yields, left to right, every number found in s.
// Anything between two numbers (units, commas, spaces, letters)
// is skipped. The decimal separator is always '.'.
func Numbers(s string) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		b := []byte(s)
		for i := 0; i < len(b); {
			if !startsNumber(b[i:]) {
				i++
				continue
			}
			f, n := strconv.ParseFloat(b[i:])
			if n == 0 {
				i++
				continue
			}
			if !yield(f) {
				return
			}
			i += n
		}
	}
}

// ParseNumbers collects Numbers(s). It returns nil when s holds no number.
func ParseNumbers(s string) []float64 {
	var out []float64
	for f := range Numbers(s) {
		out = append(out, f)
	}
	return out
}

// FirstNumber returns the first number found in s, if any.
func FirstNumber(s string) (float64, bool) {
	for f := range Numbers(s) {
		return f, true
	}
	return 0, false
}

// LeadingNumber is like FirstNumber but falls back on def.
// For instance "2px" gives 2.
func LeadingNumber(s string, def float64) float64 {
	if f, ok := FirstNumber(s); ok {
		return f
	}
	return def
}

// ParseNumber parses s as exactly one number, surrounding
// spaces apart.
func ParseNumber(s string) (float64, error) {
	b := []byte(strings.TrimSpace(s))
	if len(b) == 0 {
		return 0, errBadNumber
	}
	f, n := strconv.ParseFloat(b)
	if n != len(b) {
		return 0, errBadNumber
	}
	return f, nil
}

// SplitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func SplitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
}

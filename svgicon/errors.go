package svgicon

import (
	"errors"
	"fmt"
)

var (
	ErrNoSVG           = errors.New("invalid svg xml document")
	ErrMalformedNumber = errors.New("malformed number")
	ErrParamMismatch   = errors.New("param mismatch")
	ErrMissingHref     = errors.New("use element without href")
	ErrBadHref         = errors.New("only the ID CSS selector is supported in href")
	ErrUnknownID       = errors.New("href ID not found in document")
	ErrUseCycle        = errors.New("use reference cycle")
	ErrTooDeep         = errors.New("element nesting too deep")
)

// ElementError binds an error to the element (and attribute) it
// was found on.
type ElementError struct {
	Path  string // element path, such as /svg[1]/rect[2]
	Attr  string // may be empty
	Value string
	Err   error
}

func (e *ElementError) Error() string {
	if e.Attr == "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("%s: attribute %s=%q: %s", e.Path, e.Attr, e.Value, e.Err)
}

func (e *ElementError) Unwrap() error { return e.Err }

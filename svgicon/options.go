package svgicon

import (
	"context"
	"log/slog"
)

// ParseOptions tunes one parse call. The zero value is
// lenient and quiet.
type ParseOptions struct {
	// Strict makes a malformed numeric attribute abort the parse
	// instead of falling back on a default value.
	Strict bool

	// Verbose enables the warnings about unresolved <use> references.
	Verbose bool

	// Sink receives the warnings and errors. It may be nil.
	Sink Sink

	// MaxDepth bounds the nesting of the walked elements.
	// Deeper elements are skipped with a warning.
	// Zero means DefaultMaxDepth.
	MaxDepth int
}

// DefaultMaxDepth is used when ParseOptions.MaxDepth is zero.
const DefaultMaxDepth = 256

func (opts ParseOptions) maxDepth() int {
	if opts.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return opts.MaxDepth
}

// Severity of a Diagnostic.
type Severity uint8

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "<unknown Severity>"
	}
}

// Diagnostic is a problem found while parsing.
// Element level problems carry an *ElementError.
type Diagnostic struct {
	Severity Severity
	Path     string // element path, such as /svg[1]/g[2]/rect[3]; empty for the document
	Err      error
}

func (d Diagnostic) String() string {
	return d.Severity.String() + ": " + d.Err.Error()
}

// Sink receives the diagnostics of a parse.
type Sink interface {
	Report(d Diagnostic)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(d Diagnostic)

func (f SinkFunc) Report(d Diagnostic) { f(d) }

type slogSink struct{ logger *slog.Logger }

// NewSlogSink returns a Sink logging warnings at slog.LevelWarn
// and errors at slog.LevelError.
func NewSlogSink(logger *slog.Logger) Sink {
	if logger == nil {
		logger = slog.Default()
	}
	return slogSink{logger: logger}
}

func (s slogSink) Report(d Diagnostic) {
	level := slog.LevelWarn
	if d.Severity == Error {
		level = slog.LevelError
	}
	s.logger.LogAttrs(context.Background(), level, "svg parse", slog.String("path", d.Path), slog.Any("err", d.Err))
}

package output

import (
	"fmt"
	"reflect"

	"github.com/abdul-hamid-achik/chamomile/packages/core/config"
	"github.com/fatih/color"
)

// Logger is the part of testing.TB a ConsoleFormatter writes to.
type Logger interface {
	Helper()
	Logf(format string, args ...any)
}

// FormatValue formats a value for display, truncating or summarizing large values
func FormatValue(v any, maxLen int) string {
	if v == nil {
		return "nil"
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return truncate(fmt.Sprintf("%q", rv.Bytes()), maxLen)
		}
		if rv.IsNil() {
			return fmt.Sprintf("%s(nil)", rv.Type())
		}
		return fmt.Sprintf("[%s with %d items]", rv.Type(), rv.Len())
	case reflect.Array:
		return fmt.Sprintf("[%s with %d items]", rv.Type(), rv.Len())
	case reflect.Map:
		if rv.IsNil() {
			return fmt.Sprintf("%s(nil)", rv.Type())
		}
		return fmt.Sprintf("{%s with %d entries}", rv.Type(), rv.Len())
	case reflect.String:
		return truncate(fmt.Sprintf("%q", rv.String()), maxLen)
	}

	return truncate(fmt.Sprintf("%#v", v), maxLen)
}

func truncate(s string, maxLen int) string {
	if maxLen > 0 && len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	return s
}

// ConsoleFormatter renders values and success notes for the test log.
type ConsoleFormatter struct {
	verbose bool
	noColor bool
	maxLen  int
}

// ConsoleOption configures a ConsoleFormatter.
type ConsoleOption func(*ConsoleFormatter)

// NewConsoleFormatter creates a quiet, coloured formatter with the default
// value length limit.
func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		maxLen: config.DefaultMaxValueLength,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FromConfig builds a formatter from the diagnostic settings in cfg.
func FromConfig(cfg *config.Config) *ConsoleFormatter {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return NewConsoleFormatter(
		WithVerbose(cfg.GetVerbose()),
		WithNoColor(cfg.GetNoColor()),
		WithMaxValueLength(cfg.GetMaxValueLength()),
	)
}

// WithVerbose turns success notes on or off.
func WithVerbose(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.verbose = v
	}
}

// WithNoColor disables coloured output.
func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

// WithMaxValueLength sets where formatted values are truncated; 0 disables truncation.
func WithMaxValueLength(n int) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.maxLen = n
	}
}

// Verbose reports whether success notes are written.
func (f *ConsoleFormatter) Verbose() bool {
	return f.verbose
}

// FormatValue renders v within the formatter's length limit.
func (f *ConsoleFormatter) FormatValue(v any) string {
	return FormatValue(v, f.maxLen)
}

// FormatSuccess renders a success note. An empty message yields a bare check mark.
func (f *ConsoleFormatter) FormatSuccess(message string) string {
	// color.NoColor is process-wide; leave it alone.
	green := color.New(color.FgGreen)
	if f.noColor {
		green.DisableColor()
	}

	symbol := green.Sprint("✓")
	if message == "" {
		return symbol
	}
	return symbol + " " + message
}

// Success writes a success note to the test log when verbose output is on.
func (f *ConsoleFormatter) Success(l Logger, message string) {
	if !f.verbose {
		return
	}
	l.Helper()
	l.Logf("%s", f.FormatSuccess(message))
}

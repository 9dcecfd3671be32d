// Package output provides consistent CLI output formatting with status icons.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/Aman-CERP/uecheck/internal/ui"
)

// Writer provides formatted output for CLI.
type Writer struct {
	out    io.Writer
	styles ui.Styles
}

// Option configures a Writer.
type Option func(*Writer)

// WithStyles sets the styles used for icons, headers and code blocks.
func WithStyles(s ui.Styles) Option {
	return func(w *Writer) {
		w.styles = s
	}
}

// New creates a new output Writer. Output is unstyled unless WithStyles is given.
func New(out io.Writer, opts ...Option) *Writer {
	w := &Writer{
		out:    out,
		styles: ui.NoColorStyles(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Out returns the underlying writer.
func (w *Writer) Out() io.Writer {
	return w.out
}

// Styles returns the active styles.
func (w *Writer) Styles() ui.Styles {
	return w.styles
}

// Status prints a status message with an icon.
// Errors from writing are intentionally ignored for console output.
func (w *Writer) Status(icon, msg string) {
	if icon != "" {
		_, _ = fmt.Fprintf(w.out, "%s %s\n", icon, msg)
	} else {
		_, _ = fmt.Fprintf(w.out, "   %s\n", msg)
	}
}

// Statusf prints a formatted status message with an icon.
func (w *Writer) Statusf(icon, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	w.Status(icon, msg)
}

// Success prints a success message with checkmark.
func (w *Writer) Success(msg string) {
	w.Status(w.styles.Success.Render("✅"), msg)
}

// Successf prints a formatted success message.
func (w *Writer) Successf(format string, args ...any) {
	w.Success(fmt.Sprintf(format, args...))
}

// Warning prints a warning message.
func (w *Writer) Warning(msg string) {
	w.Status(w.styles.Warning.Render("⚠️ "), msg)
}

// Warningf prints a formatted warning message.
func (w *Writer) Warningf(format string, args ...any) {
	w.Warning(fmt.Sprintf(format, args...))
}

// Error prints an error message.
func (w *Writer) Error(msg string) {
	w.Status(w.styles.Error.Render("❌"), msg)
}

// Errorf prints a formatted error message.
func (w *Writer) Errorf(format string, args ...any) {
	w.Error(fmt.Sprintf(format, args...))
}

// Info prints an informational message.
func (w *Writer) Info(msg string) {
	w.Status(w.styles.Label.Render("ℹ️ "), msg)
}

// Infof prints a formatted informational message.
func (w *Writer) Infof(format string, args ...any) {
	w.Info(fmt.Sprintf(format, args...))
}

// Section prints an underlined heading preceded by a blank line.
func (w *Writer) Section(title string) {
	_, _ = fmt.Fprintln(w.out)
	_, _ = fmt.Fprintln(w.out, w.styles.Header.Render("=== "+title+" ==="))
}

// Line prints msg verbatim.
func (w *Writer) Line(msg string) {
	_, _ = fmt.Fprintln(w.out, msg)
}

// Linef prints a formatted line.
func (w *Writer) Linef(format string, args ...any) {
	_, _ = fmt.Fprintf(w.out, format+"\n", args...)
}

// List prints items as an indented bullet list.
func (w *Writer) List(items []string) {
	for _, item := range items {
		_, _ = fmt.Fprintf(w.out, "  - %s\n", item)
	}
}

// Code prints a code block with indentation.
func (w *Writer) Code(content string) {
	_, _ = fmt.Fprintln(w.out)
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	for _, line := range lines {
		_, _ = fmt.Fprintf(w.out, "  %s\n", w.styles.Code.Render(line))
	}
	_, _ = fmt.Fprintln(w.out)
}

// Newline prints an empty line.
func (w *Writer) Newline() {
	_, _ = fmt.Fprintln(w.out)
}

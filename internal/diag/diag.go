// Package diag provides levelled compiler diagnostics anchored to source
// spans, and renders them with line context and caret underlines.
package diag

import (
	"fmt"
	"strings"

	"github.com/mlclang/mlc/internal/source"
)

// Level is the severity of a diagnostic.
type Level int

const (
	Info Level = iota
	Warning
	Error
	Fatal
)

var levelNames = [...]string{
	Info:    "Info",
	Warning: "Warning",
	Error:   "Error",
	Fatal:   "Fatal",
}

// String returns the level's display name.
func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "Unknown"
	}
	return levelNames[l]
}

// Diagnostic is a single compiler message: a severity, a short
// description, a help hint, and the span it refers to. It carries its own
// copy of the source text so rendering needs no further context.
// Diagnostics are immutable after construction.
type Diagnostic struct {
	Level   Level
	Code    int // 0 means uncoded; omitted from rendering
	Message string
	Help    string
	Span    source.Span
	File    string
	Source  string
}

// New creates a diagnostic.
func New(level Level, code int, message, help string, span source.Span, src, file string) *Diagnostic {
	return &Diagnostic{
		Level:   level,
		Code:    code,
		Message: message,
		Help:    help,
		Span:    span,
		File:    file,
		Source:  src,
	}
}

// Error implements the error interface with the uncolored rendering.
func (d *Diagnostic) Error() string {
	return d.Render(false)
}

// ANSI escape sequences used by Render.
const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
)

func (l Level) color() string {
	switch l {
	case Warning:
		return "\033[1;33m" // yellow bold
	case Error:
		return "\033[1;31m" // red bold
	case Fatal:
		return "\033[1;35m" // magenta bold
	default:
		return "\033[1;36m" // cyan bold
	}
}

// Render formats the diagnostic. The shape is:
//
//	Error[0201]: Unexpected token
//	   --> main.ml:3:8
//	     |
//	   3 | let x: = 5;
//	     |        ^^
//	help: remove the stray token
//
// The caret line underlines the span's columns with at least two carets.
// If color is true, ANSI escapes highlight the header and carets.
// Rendering is pure and may be called repeatedly.
func (d *Diagnostic) Render(color bool) string {
	var sb strings.Builder

	// Header: level, optional zero-padded code, message.
	if color {
		sb.WriteString(d.Level.color())
	}
	sb.WriteString(d.Level.String())
	if d.Code != 0 {
		fmt.Fprintf(&sb, "[%04d]", d.Code)
	}
	sb.WriteString(": ")
	if color {
		sb.WriteString(ansiReset)
		sb.WriteString(ansiBold)
	}
	sb.WriteString(d.Message)
	if color {
		sb.WriteString(ansiReset)
	}
	sb.WriteString("\n")

	// Location arrow.
	fmt.Fprintf(&sb, "   --> %s:%d:%d\n", d.File, d.Span.Start.Line, d.Span.Start.Column)

	line := d.sourceLine(d.Span.Start.Line)
	gutter := fmt.Sprintf("%4d | ", d.Span.Start.Line)
	pad := strings.Repeat(" ", len(gutter)-2)

	// Separator, source line, caret line.
	sb.WriteString(pad)
	sb.WriteString("|\n")
	if color {
		sb.WriteString(ansiDim)
	}
	sb.WriteString(gutter)
	if color {
		sb.WriteString(ansiReset)
	}
	sb.WriteString(line)
	sb.WriteString("\n")

	sb.WriteString(pad)
	sb.WriteString("| ")
	sb.WriteString(strings.Repeat(" ", maxInt(d.Span.Start.Column-1, 0)))
	if color {
		sb.WriteString(d.Level.color())
	}
	sb.WriteString(strings.Repeat("^", d.caretWidth(line)))
	if color {
		sb.WriteString(ansiReset)
	}
	sb.WriteString("\n")

	if d.Help != "" {
		sb.WriteString("help: ")
		sb.WriteString(d.Help)
		sb.WriteString("\n")
	}

	return sb.String()
}

// caretWidth is the number of carets to draw under the source line:
// the span's column extent on its first line, floored at two.
func (d *Diagnostic) caretWidth(line string) int {
	width := d.Span.End.Column - d.Span.Start.Column
	if d.Span.End.Line != d.Span.Start.Line {
		// Multi-line span: underline to the end of the first line.
		width = len(line) - d.Span.Start.Column + 1
	}
	if width < 2 {
		width = 2
	}
	return width
}

// sourceLine extracts a 1-indexed line from the owned source copy.
func (d *Diagnostic) sourceLine(n int) string {
	lines := strings.Split(d.Source, "\n")
	if n < 1 || n > len(lines) {
		return ""
	}
	return strings.TrimSuffix(lines[n-1], "\r")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// HasErrors reports whether any diagnostic in the list is Error level or
// higher.
func HasErrors(diags []*Diagnostic) bool {
	for _, d := range diags {
		if d.Level >= Error {
			return true
		}
	}
	return false
}

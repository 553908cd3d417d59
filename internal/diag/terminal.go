package diag

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ColorEnabled reports whether w is a terminal that should receive ANSI
// color sequences. Non-file writers (buffers in tests) never get color.
func ColorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Print renders each diagnostic to w, coloring iff w is a terminal.
func Print(w io.Writer, diags []*Diagnostic) {
	color := ColorEnabled(w)
	for _, d := range diags {
		io.WriteString(w, d.Render(color))
		io.WriteString(w, "\n")
	}
}

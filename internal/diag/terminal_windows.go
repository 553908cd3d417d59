//go:build windows

package diag

import (
	"os"

	"golang.org/x/sys/windows"
)

// EnableVirtualTerminal switches the stderr console into VT processing
// mode so ANSI escapes render instead of printing literally. Failure is
// ignored; ColorEnabled still gates on terminal detection.
func EnableVirtualTerminal() {
	handle := windows.Handle(os.Stderr.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return
	}
	windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
}

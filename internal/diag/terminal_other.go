//go:build !windows

package diag

// EnableVirtualTerminal is a no-op on platforms whose terminals accept
// ANSI escapes natively.
func EnableVirtualTerminal() {}

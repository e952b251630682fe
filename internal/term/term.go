// Package term detects whether a file descriptor is attached to a terminal,
// which decides if diagnostics are coloured.
package term

import "os"

// IsTerminalFile reports whether f is a terminal.
func IsTerminalFile(f *os.File) bool {
	if f == nil {
		return false
	}
	return IsTerminal(f.Fd())
}

// UseColor resolves a color mode ("auto", "always" or "never") for f.
func UseColor(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return IsTerminalFile(f)
}

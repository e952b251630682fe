//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly && !windows

package term

// IsTerminal always reports false on platforms without termios support.
func IsTerminal(fd uintptr) bool {
	return false
}

//go:build !unix

package raw

import "os"

// notifyResize returns a nil channel: there is no SIGWINCH here, so the
// size is only read at startup.
func notifyResize() (<-chan os.Signal, func()) {
	return nil, func() {}
}

func winsize(fd int) (int, int, bool) {
	return 0, 0, false
}

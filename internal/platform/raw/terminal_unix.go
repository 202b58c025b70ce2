//go:build unix

package raw

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// notifyResize delivers SIGWINCH on the returned channel until stop is called.
func notifyResize() (<-chan os.Signal, func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, unix.SIGWINCH)
	return ch, func() { signal.Stop(ch) }
}

// winsize asks the kernel for the window size of fd.
func winsize(fd int) (int, int, bool) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return 0, 0, false
	}
	return int(ws.Col), int(ws.Row), true
}

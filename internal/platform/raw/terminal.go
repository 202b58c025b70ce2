// Package raw is the default walker runtime. It puts the terminal in raw
// mode, decodes key sequences itself and drives the animator from a single
// select loop, writing ANSI escapes straight to the output.
package raw

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Fallback dimensions when the output is not a terminal.
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// SizeFunc reports the current terminal width and height in cells.
type SizeFunc func() (int, int)

// TerminalSize returns a SizeFunc for out. It asks x/term first, then the
// window size ioctl on stdin, then falls back to 80x24.
func TerminalSize(out io.Writer) SizeFunc {
	return func() (int, int) {
		if f, ok := out.(*os.File); ok {
			if w, h, err := term.GetSize(int(f.Fd())); err == nil && w > 0 && h > 0 {
				return w, h
			}
		}
		if w, h, ok := winsize(int(os.Stdin.Fd())); ok {
			return w, h
		}
		return fallbackWidth, fallbackHeight
	}
}

// makeRaw switches in to raw mode when it is a terminal and returns the
// function that restores the saved state. Anything else is left untouched.
func makeRaw(in io.Reader) (func(), error) {
	f, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return func() {}, nil
	}
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() {
		//nolint:errcheck // Best-effort restore on the way out
		term.Restore(fd, state)
	}, nil
}

// Package ansi writes VT100/xterm escape sequences and decodes the key
// sequences a terminal sends back in raw mode.
package ansi

import (
	"bufio"
	"io"
	"strconv"
)

// Pre-built sequences.
const (
	seqClear        = "\x1b[2J"
	seqHome         = "\x1b[H"
	seqReset        = "\x1b[0m"
	seqCursorHide   = "\x1b[?25l"
	seqCursorShow   = "\x1b[?25h"
	seqAltEnter     = "\x1b[?1049h"
	seqAltExit      = "\x1b[?1049l"
	seqKittyPop     = "\x1b[<u"
	seqFgWhiteBasic = "\x1b[37m"
)

// Kitty keyboard protocol flags.
// See https://sw.kovidgoyal.net/kitty/keyboard-protocol/
const (
	KittyDisambiguate = 1
	KittyEventTypes   = 2
	KittyAllAsEscapes = 8

	// KittyKeyEvents reports press/repeat/release for every key.
	KittyKeyEvents = KittyEventTypes | KittyAllAsEscapes
)

// Writer buffers escape sequences until Flush.
// Methods never fail individually; the first write error surfaces on Flush.
type Writer struct {
	w *bufio.Writer
}

// NewWriter wraps out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{w: bufio.NewWriterSize(out, 4096)}
}

func (w *Writer) csi(params string, final byte) {
	w.w.WriteString("\x1b[")
	w.w.WriteString(params)
	w.w.WriteByte(final)
}

// CursorTo moves the cursor to a 1-based column and row.
func (w *Writer) CursorTo(col, row int) {
	w.w.WriteString("\x1b[")
	w.w.WriteString(strconv.Itoa(row))
	w.w.WriteByte(';')
	w.w.WriteString(strconv.Itoa(col))
	w.w.WriteByte('H')
}

// Fg selects a 256-color foreground.
func (w *Writer) Fg(c uint8) {
	w.csi("38;5;"+strconv.Itoa(int(c)), 'm')
}

// Bg selects a 256-color background.
func (w *Writer) Bg(c uint8) {
	w.csi("48;5;"+strconv.Itoa(int(c)), 'm')
}

// FgWhite selects the basic white foreground, understood by every terminal.
func (w *Writer) FgWhite() {
	w.w.WriteString(seqFgWhiteBasic)
}

// Clear erases the screen and homes the cursor.
func (w *Writer) Clear() {
	w.w.WriteString(seqClear)
	w.w.WriteString(seqHome)
}

// Reset restores default attributes and colors.
func (w *Writer) Reset() {
	w.w.WriteString(seqReset)
}

// HideCursor hides the text cursor.
func (w *Writer) HideCursor() {
	w.w.WriteString(seqCursorHide)
}

// ShowCursor makes the text cursor visible.
func (w *Writer) ShowCursor() {
	w.w.WriteString(seqCursorShow)
}

// EnterAltScreen switches to the alternate screen buffer.
func (w *Writer) EnterAltScreen() {
	w.w.WriteString(seqAltEnter)
}

// ExitAltScreen returns to the main screen buffer.
func (w *Writer) ExitAltScreen() {
	w.w.WriteString(seqAltExit)
}

// PushKittyFlags enables kitty keyboard protocol flags.
func (w *Writer) PushKittyFlags(flags int) {
	w.csi(">"+strconv.Itoa(flags), 'u')
}

// PopKittyFlags restores the previous kitty keyboard flags.
func (w *Writer) PopKittyFlags() {
	w.w.WriteString(seqKittyPop)
}

// WriteRune writes a single glyph.
func (w *Writer) WriteRune(r rune) {
	w.w.WriteRune(r)
}

// WriteString writes s verbatim.
func (w *Writer) WriteString(s string) {
	w.w.WriteString(s)
}

// Flush sends everything buffered to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

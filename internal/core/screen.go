package core

import (
	"strings"
)

// Screen is a 2D cell buffer that keeps everything painted so far.
// The raw runtime paints straight to the terminal and lets the terminal
// remember the trail; runtimes that redraw whole frames keep it here instead.
type Screen struct {
	width  int
	height int
	bg     Color
	cells  [][]Cell
}

// NewScreen creates a screen buffer of the given dimensions, blank on bg.
func NewScreen(width, height int, bg Color) *Screen {
	s := &Screen{
		width:  Max(width, 0),
		height: Max(height, 0),
		bg:     bg,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Background returns the color blank cells are filled with.
func (s *Screen) Background() Color {
	return s.bg
}

// SetBackground changes the blank color. Existing cells are left alone.
func (s *Screen) SetBackground(bg Color) {
	s.bg = bg
}

// Resize changes the screen dimensions and blanks it, mirroring a terminal
// that was cleared and reinitialized after a size change.
func (s *Screen) Resize(width, height int) {
	s.width = Max(width, 0)
	s.height = Max(height, 0)
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	blank := BlankCell(s.bg)
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// Set places a cell at the given 0-based position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// GetCell returns the cell at the given 0-based position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return BlankCell(s.bg)
	}
	return s.cells[y][x]
}

// Paint places c at 1-based terminal coordinates.
func (s *Screen) Paint(col, row int, c Cell) {
	s.Set(col-1, row-1, c)
}

// String converts the screen buffer to plain text, dropping colors.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

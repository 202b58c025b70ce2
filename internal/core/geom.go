// Package core provides fundamental types and utilities for the walker.
// It contains no external dependencies (especially no Bubble Tea) to keep
// the animator pure and testable.
package core

// Point is a position on the terminal grid.
// X runs along columns, Y along rows.
type Point struct {
	X, Y int
}

// Add returns p moved by v.
func (p Point) Add(v Vec) Point {
	return Point{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Wrap folds p back into [0,w] × [0,h] using edge wraparound.
func (p Point) Wrap(w, h int) Point {
	return Point{X: Wrap(p.X, w), Y: Wrap(p.Y, h)}
}

// Fold folds p into [0,w] × [0,h] modularly.
// Used after a resize, when p may be arbitrarily far outside the new bounds.
func (p Point) Fold(w, h int) Point {
	return Point{X: Fold(p.X, w), Y: Fold(p.Y, h)}
}

// Terminal converts p to 1-based terminal coordinates for a w×h screen.
// Position 0 shares the first column/row with position 1.
func (p Point) Terminal(w, h int) (col, row int) {
	return Clamp(p.X, 1, Max(w, 1)), Clamp(p.Y, 1, Max(h, 1))
}

// Vec is a per-tick velocity. Components are expected to be in {-1, 0, 1}.
type Vec struct {
	DX, DY int
}

// Zero reports whether v does not move.
func (v Vec) Zero() bool {
	return v.DX == 0 && v.DY == 0
}

// Wrap applies edge wraparound on one axis with inclusive bound max:
// values below zero land on max, values above max land on zero.
func Wrap(val, max int) int {
	if val < 0 {
		return max
	}
	if val > max {
		return 0
	}
	return val
}

// Fold maps val into [0,max] modularly.
func Fold(val, max int) int {
	if max < 0 {
		return 0
	}
	n := max + 1
	val %= n
	if val < 0 {
		val += n
	}
	return val
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

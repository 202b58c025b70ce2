// Package animator implements the walker's single moving cell: a position
// that wraps around the screen edges, a velocity set by key presses and a
// color phase that advances on every tick. It has no terminal or timer
// dependencies; the platform packages own the loop and the output.
package animator

import (
	"fmt"

	"github.com/vovakirdan/walker/internal/core"
	"github.com/vovakirdan/walker/internal/palette"
)

// VelocityMode controls how long a key press keeps the cell moving.
type VelocityMode string

const (
	// VelocityPersist keeps moving until another direction key is pressed.
	VelocityPersist VelocityMode = "persist"
	// VelocityStep moves one cell per press; velocity resets after each tick.
	VelocityStep VelocityMode = "step"
	// VelocityHold moves while the key is held; needs key release events.
	VelocityHold VelocityMode = "hold"
)

// ParseVelocityMode validates a mode name.
func ParseVelocityMode(s string) (VelocityMode, error) {
	switch m := VelocityMode(s); m {
	case VelocityPersist, VelocityStep, VelocityHold:
		return m, nil
	}
	return "", fmt.Errorf("animator: unknown velocity mode %q", s)
}

// Options configures rendering and movement.
type Options struct {
	Mode       VelocityMode
	Palette    palette.Palette
	Glyph      rune
	Foreground core.Color
}

// Paint is the single cell a tick draws, in 1-based terminal coordinates.
type Paint struct {
	Col, Row int
	Cell     core.Cell
}

// Animator owns all mutable state of the walker.
// It is not safe for concurrent use; the runtime loop is its only caller.
type Animator struct {
	width  int
	height int
	pos    core.Point
	vel    core.Vec
	held   core.Action // direction key currently held (hold mode)
	phase  uint64
	ticks  uint64

	mode    VelocityMode
	palette palette.Palette
	glyph   rune
	fg      core.Color
}

// New creates an animator. Zero-valued options fall back to defaults.
func New(opts Options) *Animator {
	a := &Animator{}
	a.Configure(opts)
	a.Reset(core.DefaultConfig())
	return a
}

// Configure swaps rendering and movement options without touching
// position, velocity or phase.
func (a *Animator) Configure(opts Options) {
	if opts.Mode == "" {
		opts.Mode = VelocityPersist
	}
	if opts.Palette == nil {
		// Registered in this binary's init; cannot fail.
		opts.Palette, _ = palette.Get(palette.Default)
	}
	if opts.Glyph == 0 {
		opts.Glyph = ' '
	}

	if opts.Mode != a.mode {
		a.held = core.ActionNone
	}
	a.mode = opts.Mode
	a.palette = opts.Palette
	a.glyph = opts.Glyph
	a.fg = opts.Foreground
}

// Reset centers the cell on a cfg-sized screen and stops it.
// The color phase keeps running.
func (a *Animator) Reset(cfg core.RuntimeConfig) {
	a.width = core.Max(cfg.ScreenW, 0)
	a.height = core.Max(cfg.ScreenH, 0)
	a.pos = core.Point{X: a.width / 2, Y: a.height / 2}
	a.vel = core.Vec{}
	a.held = core.ActionNone
}

// Resize adopts new screen dimensions, folding the position back in bounds.
func (a *Animator) Resize(width, height int) {
	a.width = core.Max(width, 0)
	a.height = core.Max(height, 0)
	a.pos = a.pos.Fold(a.width, a.height)
}

// Press applies a key press. Direction actions replace the velocity;
// everything else leaves it unchanged. Returns whether velocity changed.
func (a *Animator) Press(act core.Action) bool {
	v, ok := act.Vec()
	if !ok {
		return false
	}
	a.vel = v
	a.held = act
	return true
}

// Release applies a key release. Only hold mode reacts, and only to the
// direction that is currently held.
func (a *Animator) Release(act core.Action) {
	if a.mode != VelocityHold || act == core.ActionNone || act != a.held {
		return
	}
	a.vel = core.Vec{}
	a.held = core.ActionNone
}

// Step advances one tick: move, wrap, advance the color phase and return
// the cell to paint.
func (a *Animator) Step() Paint {
	a.ticks++
	a.pos = a.pos.Add(a.vel).Wrap(a.width, a.height)
	if a.mode == VelocityStep {
		a.vel = core.Vec{}
	}
	a.phase++

	col, row := a.pos.Terminal(a.width, a.height)
	return Paint{
		Col: col,
		Row: row,
		Cell: core.Cell{
			Rune: a.glyph,
			Fg:   a.fg,
			Bg:   a.palette.Color(a.phase),
		},
	}
}

// Position returns the current position.
func (a *Animator) Position() core.Point {
	return a.pos
}

// Velocity returns the current velocity.
func (a *Animator) Velocity() core.Vec {
	return a.vel
}

// Phase returns the color phase.
func (a *Animator) Phase() uint64 {
	return a.phase
}

// Size returns the screen dimensions the animator wraps against.
func (a *Animator) Size() (int, int) {
	return a.width, a.height
}

// Mode returns the active velocity mode.
func (a *Animator) Mode() VelocityMode {
	return a.mode
}

// Package config provides YAML-based configuration loading, validation and
// hot reload for the walker.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/walker/internal/animator"
	"github.com/vovakirdan/walker/internal/core"
	"github.com/vovakirdan/walker/internal/palette"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Renderer names.
const (
	RendererANSI = "ansi"
	RendererTea  = "tea"
)

// MaxTickRate is the highest accepted tick rate. Typical rates are 30 to 100;
// the headroom covers high refresh terminals, and anything faster only
// burns CPU on repaints the terminal cannot show.
const MaxTickRate = 240

// Config contains everything the walker reads from its config file.
type Config struct {
	TickRate   int        `yaml:"tick_rate"`  // Ticks per second
	Velocity   string     `yaml:"velocity"`   // "persist", "step" or "hold"
	Palette    string     `yaml:"palette"`    // Palette ID, see `walker palettes`
	Glyph      string     `yaml:"glyph"`      // Single character painted each tick
	Foreground int        `yaml:"foreground"` // 256-color index for the glyph
	Background int        `yaml:"background"` // 256-color index for the cleared screen
	AltScreen  bool       `yaml:"alt_screen"` // Draw on the alternate screen buffer
	Renderer   string     `yaml:"renderer"`   // "ansi" or "tea"
	Farewell   string     `yaml:"farewell"`   // Printed after the terminal is restored
	Keys       KeysConfig `yaml:"keys"`
}

// KeysConfig lists the key names bound to each action.
// Names follow Bubble Tea's key strings ("up", "w", "esc", "ctrl+c").
type KeysConfig struct {
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Quit  []string `yaml:"quit"`
}

// Validate checks every field and reports the first problem.
func (c Config) Validate() error {
	if c.TickRate < 1 || c.TickRate > MaxTickRate {
		return fmt.Errorf("config: %w: tick_rate %d out of range [1,%d]", ErrInvalid, c.TickRate, MaxTickRate)
	}
	if _, err := animator.ParseVelocityMode(c.Velocity); err != nil {
		return fmt.Errorf("config: %w: velocity: %v", ErrInvalid, err)
	}
	if !palette.Exists(c.Palette) {
		return fmt.Errorf("config: %w: unknown palette %q", ErrInvalid, c.Palette)
	}
	if utf8.RuneCountInString(c.Glyph) != 1 {
		return fmt.Errorf("config: %w: glyph %q must be exactly one character", ErrInvalid, c.Glyph)
	}
	if c.Foreground < 0 || c.Foreground > 255 {
		return fmt.Errorf("config: %w: foreground %d out of range [0,255]", ErrInvalid, c.Foreground)
	}
	if c.Background < 0 || c.Background > 255 {
		return fmt.Errorf("config: %w: background %d out of range [0,255]", ErrInvalid, c.Background)
	}
	if c.Renderer != RendererANSI && c.Renderer != RendererTea {
		return fmt.Errorf("config: %w: renderer %q must be %q or %q", ErrInvalid, c.Renderer, RendererANSI, RendererTea)
	}
	if len(c.Keys.Quit) == 0 {
		return fmt.Errorf("config: %w: keys.quit must not be empty", ErrInvalid)
	}
	return nil
}

// GlyphRune returns the glyph as a rune, or a space if it is empty.
func (c Config) GlyphRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Glyph)
	if r == utf8.RuneError {
		return ' '
	}
	return r
}

// Bindings builds the key binding table. Actions with no keys configured
// keep their default keys.
func (c Config) Bindings() core.Bindings {
	keys := core.DefaultKeys()
	set := func(a core.Action, names []string) {
		if len(names) > 0 {
			keys[a] = names
		}
	}
	set(core.ActionUp, c.Keys.Up)
	set(core.ActionDown, c.Keys.Down)
	set(core.ActionLeft, c.Keys.Left)
	set(core.ActionRight, c.Keys.Right)
	set(core.ActionQuit, c.Keys.Quit)
	return core.NewBindings(keys)
}

// AnimatorOptions resolves the palette and velocity mode for the animator.
func (c Config) AnimatorOptions() (animator.Options, error) {
	mode, err := animator.ParseVelocityMode(c.Velocity)
	if err != nil {
		return animator.Options{}, err
	}
	p, err := palette.Get(c.Palette)
	if err != nil {
		return animator.Options{}, err
	}
	return animator.Options{
		Mode:       mode,
		Palette:    p,
		Glyph:      c.GlyphRune(),
		Foreground: core.Color(c.Foreground),
	}, nil
}

// Runtime returns the platform-facing runtime config for a w×h screen.
func (c Config) Runtime(w, h int) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: c.TickRate}
}

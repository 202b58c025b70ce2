package config

import (
	_ "embed"
)

//go:embed defaults/walker.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It matches defaults/walker.yaml and is used when the embedded copy cannot be parsed.
func Default() Config {
	return Config{
		TickRate:   30,
		Velocity:   "persist",
		Palette:    "spectrum",
		Glyph:      " ",
		Foreground: 0,
		Background: 0,
		AltScreen:  true,
		Renderer:   RendererANSI,
		Farewell:   "bye.",
		Keys: KeysConfig{
			Up:    []string{"up", "w"},
			Down:  []string{"down", "s"},
			Left:  []string{"left", "a"},
			Right: []string{"right", "d"},
			Quit:  []string{"q", "esc", "ctrl+c"},
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}

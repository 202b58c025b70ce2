// walker moves a single colored cell around the terminal.
//
// Usage:
//
//	walker                   - Start the walker
//	walker palettes          - List color palettes
//	walker keys              - Show decoded key events
//	walker bindings          - Show key bindings
//	walker config            - Print the effective config
//
// Global flags:
//
//	--config <path>    - Config file (default: search path, then built-in)
//	--fps <rate>       - Override the tick rate
//	--palette <id>     - Override the palette
//	--velocity <mode>  - Override the velocity mode: persist, step, hold
//	--renderer <name>  - Override the renderer: ansi, tea
//	--log-file <path>  - Write logs to a file (the terminal is the canvas)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagPalette  string
	flagVelocity string
	flagRenderer string
	flagLogFile  string
	flagDebug    bool
	flagWatch    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "walker",
	Short: "Walker - a colored cell wandering your terminal",
	Long: `Walker paints a single cell that moves around the terminal and
wraps at the edges, changing color on every tick.

Controls:
  Arrows / W A S D  - Set direction
  Q / Esc / Ctrl+C  - Quit

Velocity modes:
  persist - Keep moving until another direction is pressed (default)
  step    - Move one cell per key press
  hold    - Move while the key is held (needs kitty keyboard protocol)

Examples:
  walker
  walker --palette fire --fps 60
  walker --velocity hold
  walker --config ./walker.yaml --watch
  walker keys --kitty`,
	Args:          cobra.NoArgs,
	RunE:          runWalk,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagPalette, "palette", "", "Palette ID (see 'walker palettes')")
	rootCmd.PersistentFlags().StringVar(&flagVelocity, "velocity", "", "Velocity mode: persist, step, hold")
	rootCmd.PersistentFlags().StringVar(&flagRenderer, "renderer", "", "Renderer: ansi or tea")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")

	// Add subcommands
	rootCmd.AddCommand(palettesCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(bindingsCmd)
	rootCmd.AddCommand(configCmd)
}

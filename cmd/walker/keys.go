package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/walker/internal/platform/raw"
)

var flagKitty bool

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show decoded key events",
	Long: `Puts the terminal in raw mode and prints every key event as the walker
decodes it: key name, modifiers, event kind and raw bytes.

Use this to find key names for the keys section of the config file.
With --kitty the terminal is asked for press, repeat and release events,
which is what the hold velocity mode relies on.

Press q or Ctrl+C to exit.`,
	Args: cobra.NoArgs,
	RunE: runKeys,
}

func init() {
	keysCmd.Flags().BoolVar(&flagKitty, "kitty", false, "Enable the kitty keyboard protocol")
}

func runKeys(cmd *cobra.Command, args []string) error {
	// The inspector owns the terminal, so logs only go to --log-file.
	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.Info("inspecting keys", "kitty", flagKitty)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return raw.Inspect(ctx, os.Stdin, os.Stdout, flagKitty)
}

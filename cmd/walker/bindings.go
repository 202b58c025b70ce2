package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/walker/internal/platform/tui"
)

var bindingsCmd = &cobra.Command{
	Use:   "bindings",
	Short: "Show key bindings",
	Long:  `Shows the key bindings from the effective config.`,
	Args:  cobra.NoArgs,
	RunE:  runBindings,
}

func runBindings(cmd *cobra.Command, args []string) error {
	logger, closer, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, src, err := loadConfig()
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "source", configSource(src))

	h := help.New()
	h.ShowAll = true
	fmt.Println(h.View(tui.NewKeyMap(cfg.Bindings())))
	return nil
}

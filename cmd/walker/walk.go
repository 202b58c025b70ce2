package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/walker/internal/config"
	"github.com/vovakirdan/walker/internal/platform/raw"
	"github.com/vovakirdan/walker/internal/platform/tui"
)

func runWalk(cmd *cobra.Command, args []string) error {
	cfg, src, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("config loaded", "source", configSource(src), "renderer", cfg.Renderer)

	var reload <-chan config.Config
	if flagWatch {
		if src == "" {
			return errors.New("--watch needs a config file; pass --config or create ~/.walker/config.yaml")
		}
		watcher, err := config.NewWatcher(src, logger)
		if err != nil {
			return err
		}
		defer watcher.Close()
		watcher.Start(ctx)
		reload = withOverrides(ctx, watcher.Updates())
	}

	if cfg.Renderer == config.RendererTea {
		return tui.Run(ctx, cfg, reload, logger)
	}

	runner, err := raw.New(cfg, raw.WithReload(reload), raw.WithLogger(logger))
	if err != nil {
		return err
	}
	return runner.Run(ctx)
}

// withOverrides re-applies command line overrides to every reloaded config,
// so flags keep winning over the file.
func withOverrides(ctx context.Context, in <-chan config.Config) <-chan config.Config {
	out := make(chan config.Config)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case cfg := <-in:
				applyOverrides(&cfg)
				if cfg.Validate() != nil {
					continue
				}
				select {
				case out <- cfg:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

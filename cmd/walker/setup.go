package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/walker/internal/config"
)

// loadConfig loads the config file and applies flag overrides on top.
func loadConfig() (config.Config, string, error) {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return cfg, src, err
	}

	applyOverrides(&cfg)
	if flagRenderer != "" {
		cfg.Renderer = flagRenderer
	}
	if err := cfg.Validate(); err != nil {
		return cfg, src, err
	}
	return cfg, src, nil
}

// applyOverrides copies the command line overrides that may change while
// running into cfg.
func applyOverrides(cfg *config.Config) {
	if flagFPS != 0 {
		cfg.TickRate = flagFPS
	}
	if flagPalette != "" {
		cfg.Palette = flagPalette
	}
	if flagVelocity != "" {
		cfg.Velocity = flagVelocity
	}
}

// newLogger returns a logger writing to --log-file, or to fallback when no
// file is set. Commands that paint the terminal pass io.Discard, the
// others os.Stderr. The returned closer is never nil.
func newLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	var out io.Writer = fallback
	var closer io.Closer = io.NopCloser(nil)

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "walker",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// configSource names where a config came from for logs and output.
func configSource(src string) string {
	if src == "" {
		return "built-in defaults"
	}
	return src
}

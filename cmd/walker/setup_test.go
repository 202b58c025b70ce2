package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/walker/internal/config"
)

// setFlags sets the override flags for one test and restores them after.
func setFlags(t *testing.T, path string, fps int, pal, velocity, renderer string) {
	t.Helper()
	oldConfig, oldFPS, oldPalette := flagConfig, flagFPS, flagPalette
	oldVelocity, oldRenderer := flagVelocity, flagRenderer
	oldLogFile, oldDebug := flagLogFile, flagDebug
	t.Cleanup(func() {
		flagConfig, flagFPS, flagPalette = oldConfig, oldFPS, oldPalette
		flagVelocity, flagRenderer = oldVelocity, oldRenderer
		flagLogFile, flagDebug = oldLogFile, oldDebug
	})

	flagConfig, flagFPS, flagPalette = path, fps, pal
	flagVelocity, flagRenderer = velocity, renderer
	flagLogFile, flagDebug = "", false
}

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "walker.yaml")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "tick_rate: 40\npalette: gradient\nvelocity: step\n")

	tests := []struct {
		name     string
		fps      int
		palette  string
		velocity string
		renderer string

		wantRate     int
		wantPalette  string
		wantVelocity string
		wantRenderer string
	}{
		{"file values", 0, "", "", "", 40, "gradient", "step", config.RendererANSI},
		{"tick rate flag", 90, "", "", "", 90, "gradient", "step", config.RendererANSI},
		{"palette flag", 0, "fire", "", "", 40, "fire", "step", config.RendererANSI},
		{"velocity flag", 0, "", "hold", "", 40, "gradient", "hold", config.RendererANSI},
		{"renderer flag", 0, "", "", config.RendererTea, 40, "gradient", "step", config.RendererTea},
		{"all flags", 120, "grayscale", "persist", config.RendererTea, 120, "grayscale", "persist", config.RendererTea},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setFlags(t, path, tt.fps, tt.palette, tt.velocity, tt.renderer)

			cfg, src, err := loadConfig()
			if err != nil {
				t.Fatalf("loadConfig() failed: %v", err)
			}
			if src != path {
				t.Errorf("loadConfig() source = %q, expected %q", src, path)
			}
			if cfg.TickRate != tt.wantRate {
				t.Errorf("TickRate = %d, expected %d", cfg.TickRate, tt.wantRate)
			}
			if cfg.Palette != tt.wantPalette {
				t.Errorf("Palette = %q, expected %q", cfg.Palette, tt.wantPalette)
			}
			if cfg.Velocity != tt.wantVelocity {
				t.Errorf("Velocity = %q, expected %q", cfg.Velocity, tt.wantVelocity)
			}
			if cfg.Renderer != tt.wantRenderer {
				t.Errorf("Renderer = %q, expected %q", cfg.Renderer, tt.wantRenderer)
			}
		})
	}
}

func TestLoadConfigRejectsInvalidFlags(t *testing.T) {
	path := writeConfig(t, "tick_rate: 40\n")

	tests := []struct {
		name     string
		fps      int
		palette  string
		velocity string
		renderer string
	}{
		{"tick rate too high", config.MaxTickRate + 1, "", "", ""},
		{"tick rate negative", -5, "", "", ""},
		{"unknown palette", 0, "plaid", "", ""},
		{"unknown velocity", 0, "", "warp", ""},
		{"unknown renderer", 0, "", "", "opengl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setFlags(t, path, tt.fps, tt.palette, tt.velocity, tt.renderer)

			if _, _, err := loadConfig(); !errors.Is(err, config.ErrInvalid) {
				t.Errorf("loadConfig() error = %v, expected %v", err, config.ErrInvalid)
			}
		})
	}
}

func TestWithOverridesAppliesFlags(t *testing.T) {
	setFlags(t, "", 75, "fire", "", "")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan config.Config)
	out := withOverrides(ctx, in)

	reloaded := config.Default()
	reloaded.TickRate = 20
	reloaded.Palette = "grayscale"
	reloaded.Velocity = "step"

	select {
	case in <- reloaded:
	case <-time.After(time.Second):
		t.Fatal("timed out sending config")
	}

	select {
	case cfg := <-out:
		if cfg.TickRate != 75 {
			t.Errorf("TickRate = %d, expected %d", cfg.TickRate, 75)
		}
		if cfg.Palette != "fire" {
			t.Errorf("Palette = %q, expected %q", cfg.Palette, "fire")
		}
		if cfg.Velocity != "step" {
			t.Errorf("Velocity = %q, expected %q", cfg.Velocity, "step")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for config")
	}
}

func TestWithOverridesDropsInvalidConfigs(t *testing.T) {
	setFlags(t, "", config.MaxTickRate+1, "", "", "")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan config.Config)
	out := withOverrides(ctx, in)

	select {
	case in <- config.Default():
	case <-time.After(time.Second):
		t.Fatal("timed out sending config")
	}

	select {
	case cfg := <-out:
		t.Errorf("unexpected config %+v with an out of range tick rate", cfg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestNewLoggerFallback(t *testing.T) {
	tests := []struct {
		name  string
		debug bool
		want  bool
	}{
		{"debug off", false, false},
		{"debug on", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setFlags(t, "", 0, "", "", "")
			flagDebug = tt.debug

			var buf bytes.Buffer
			logger, closer, err := newLogger(&buf)
			if err != nil {
				t.Fatalf("newLogger() failed: %v", err)
			}
			defer closer.Close()

			logger.Debug("config loaded", "source", "built-in defaults")
			if got := strings.Contains(buf.String(), "config loaded"); got != tt.want {
				t.Errorf("debug line logged = %v, expected %v (output %q)", got, tt.want, buf.String())
			}
		})
	}
}

func TestNewLoggerFile(t *testing.T) {
	setFlags(t, "", 0, "", "", "")
	flagLogFile = filepath.Join(t.TempDir(), "walker.log")
	flagDebug = true

	var buf bytes.Buffer
	logger, closer, err := newLogger(&buf)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Debug("resized", "width", 80)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(flagLogFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "resized") {
		t.Errorf("log file = %q, expected it to contain %q", data, "resized")
	}
	if buf.Len() != 0 {
		t.Errorf("fallback got %q, expected nothing when a log file is set", buf.String())
	}
}

func TestConfigSource(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"", "built-in defaults"},
		{"/etc/walker.yaml", "/etc/walker.yaml"},
	}

	for _, tt := range tests {
		if got := configSource(tt.src); got != tt.want {
			t.Errorf("configSource(%q) = %q, expected %q", tt.src, got, tt.want)
		}
	}
}

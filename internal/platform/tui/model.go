package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/walker/internal/animator"
	"github.com/vovakirdan/walker/internal/config"
	"github.com/vovakirdan/walker/internal/core"
)

// Model is the Bubble Tea model for running the walker.
type Model struct {
	anim     *animator.Animator
	screen   *core.Screen
	keys     KeyMap
	cfg      config.Config
	reload   <-chan config.Config
	logger   *log.Logger
	sized    bool // Whether the first WindowSizeMsg has arrived
	quitting bool
}

// NewModel creates a new Bubble Tea model for cfg. Configs received on
// reload are applied while running.
func NewModel(cfg config.Config, reload <-chan config.Config, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	opts, err := animatorOptions(cfg, logger)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	rc := core.DefaultConfig()
	anim := animator.New(opts)
	anim.Reset(cfg.Runtime(rc.ScreenW, rc.ScreenH))

	return Model{
		anim:   anim,
		screen: core.NewScreen(rc.ScreenW, rc.ScreenH, core.Color(cfg.Background)),
		keys:   NewKeyMap(cfg.Bindings()),
		cfg:    cfg,
		reload: reload,
		logger: logger,
	}, nil
}

// animatorOptions resolves cfg for this runtime. Bubble Tea reports no key
// releases, so hold mode falls back to step mode.
func animatorOptions(cfg config.Config, logger *log.Logger) (animator.Options, error) {
	opts, err := cfg.AnimatorOptions()
	if err != nil {
		return opts, err
	}
	if opts.Mode == animator.VelocityHold {
		logger.Warn("hold velocity needs key release events; using step", "renderer", config.RendererTea)
		opts.Mode = animator.VelocityStep
	}
	return opts, nil
}

// Init starts the tick loop and the reload listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.cfg.TickRate), waitForReload(m.reload))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case ReloadMsg:
		return m.handleReload(config.Config(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	act := m.keys.MapKey(msg)
	m.logger.Debug("key", "key", msg.String(), "action", act)

	if act == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.anim.Press(act)
	return m, nil
}

// handleResize processes window resize events. The first size centers the
// cell; later ones fold its position into the new bounds.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if m.sized {
		m.anim.Resize(msg.Width, msg.Height)
	} else {
		m.anim.Reset(m.cfg.Runtime(msg.Width, msg.Height))
		m.sized = true
	}
	m.screen.Resize(msg.Width, msg.Height)
	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick advances the animator and paints its cell onto the screen.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	p := m.anim.Step()
	m.screen.Paint(p.Col, p.Row, p.Cell)
	return m, tickCmd(m.cfg.TickRate)
}

// handleReload applies a reloaded config and waits for the next one.
func (m Model) handleReload(cfg config.Config) (tea.Model, tea.Cmd) {
	opts, err := animatorOptions(cfg, m.logger)
	if err != nil {
		m.logger.Warn("ignoring reloaded config", "error", err)
		return m, waitForReload(m.reload)
	}
	m.anim.Configure(opts)
	m.keys = NewKeyMap(cfg.Bindings())
	if cfg.Background != m.cfg.Background {
		m.screen.SetBackground(core.Color(cfg.Background))
		m.screen.Clear()
	}
	m.cfg = cfg
	m.logger.Info("applied config", "tick_rate", cfg.TickRate, "velocity", cfg.Velocity, "palette", cfg.Palette)
	return m, waitForReload(m.reload)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program and prints the farewell once the
// terminal is restored. Cancelling ctx stops the program cleanly.
func Run(ctx context.Context, cfg config.Config, reload <-chan config.Config, logger *log.Logger) error {
	model, err := NewModel(cfg, reload, logger)
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, opts...)

	if _, err := p.Run(); err != nil && !(errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil) {
		return fmt.Errorf("tui: %w", err)
	}

	if cfg.Farewell != "" {
		fmt.Fprintf(os.Stdout, "\r\n%s\n", cfg.Farewell)
	}
	return nil
}

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/walker/internal/animator"
	"github.com/vovakirdan/walker/internal/config"
	"github.com/vovakirdan/walker/internal/core"
)

func newTestModel(t *testing.T, cfg config.Config) Model {
	t.Helper()
	m, err := NewModel(cfg, nil, nil)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelFirstResizeCenters(t *testing.T) {
	m := newTestModel(t, config.Default())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 6})

	if pos := m.anim.Position(); pos != (core.Point{X: 5, Y: 3}) {
		t.Errorf("Position() = %+v, expected {5 3}", pos)
	}
	if m.screen.Width() != 10 || m.screen.Height() != 6 {
		t.Errorf("screen = %dx%d, expected 10x6", m.screen.Width(), m.screen.Height())
	}

	// Later resizes fold instead of recentering.
	m.anim.Press(core.ActionRight)
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 4, Height: 2})
	if pos := m.anim.Position(); pos != (core.Point{X: 1, Y: 0}) {
		t.Errorf("Position() after resize = %+v, expected {1 0}", pos)
	}
}

func TestModelKeyThenTickPaints(t *testing.T) {
	m := newTestModel(t, config.Default())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 6})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if pos := m.anim.Position(); pos != (core.Point{X: 6, Y: 3}) {
		t.Errorf("Position() = %+v, expected {6 3}", pos)
	}

	cell := m.screen.GetCell(5, 2)
	if cell.Bg != 1 || cell.Rune != ' ' {
		t.Errorf("painted cell = %+v, expected bg 1 and a space", cell)
	}
}

func TestModelUnboundKeyKeepsVelocity(t *testing.T) {
	m := newTestModel(t, config.Default())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	if cmd != nil {
		t.Error("unbound key should not return a command")
	}
	if v := m.anim.Velocity(); v != (core.Vec{DY: 1}) {
		t.Errorf("Velocity() = %+v, expected {0 1}", v)
	}
}

func TestModelQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		t.Run(msg.String(), func(t *testing.T) {
			m := newTestModel(t, config.Default())
			m, cmd := update(t, m, msg)
			if cmd == nil {
				t.Fatal("quit key should return a command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("quit key should return tea.Quit")
			}
			if m.View() != "" {
				t.Error("View() should be empty after quitting")
			}
		})
	}
}

func TestModelHoldFallsBackToStep(t *testing.T) {
	cfg := config.Default()
	cfg.Velocity = "hold"

	m := newTestModel(t, cfg)
	if mode := m.anim.Mode(); mode != animator.VelocityStep {
		t.Errorf("Mode() = %q, expected step", mode)
	}
}

func TestModelReload(t *testing.T) {
	m := newTestModel(t, config.Default())

	cfg := config.Default()
	cfg.Palette = "grayscale"
	cfg.Keys.Quit = []string{"x"}
	m, cmd := update(t, m, ReloadMsg(cfg))
	if cmd != nil {
		t.Error("reload without a channel should not wait for more")
	}
	if got := m.anim.Snapshot().Palette; got != "grayscale" {
		t.Errorf("palette = %q, expected grayscale", got)
	}
	if got := m.keys.MapKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}); got != core.ActionQuit {
		t.Errorf("MapKey(x) = %v, expected Quit after reload", got)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, config.Default())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 3, Height: 2})

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 2 {
		t.Errorf("View() has %d lines, expected 2", len(lines))
	}
}

package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/walker/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapDefaults(t *testing.T) {
	km := NewKeyMap(core.DefaultBindings())

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey("w"), core.ActionUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"s", runeKey("s"), core.ActionDown},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey("a"), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey("d"), core.ActionRight},
		{"q", runeKey("q"), core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound x", runeKey("x"), core.ActionNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapCustomBindings(t *testing.T) {
	keys := core.DefaultKeys()
	keys[core.ActionUp] = []string{"k"}
	km := NewKeyMap(core.NewBindings(keys))

	if got := km.MapKey(runeKey("k")); got != core.ActionUp {
		t.Errorf("MapKey(k) = %v, expected Up", got)
	}
	if got := km.MapKey(runeKey("w")); got != core.ActionNone {
		t.Errorf("MapKey(w) = %v, expected None", got)
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := NewKeyMap(core.DefaultBindings())
	if n := len(km.ShortHelp()); n != 5 {
		t.Errorf("ShortHelp() has %d bindings, expected 5", n)
	}
	if got := km.Up.Help().Key; got != "up/w" {
		t.Errorf("Up help key = %q, expected %q", got, "up/w")
	}
	if view := help.New().FullHelpView(km.FullHelp()); view == "" {
		t.Error("FullHelpView() returned empty string")
	}
}

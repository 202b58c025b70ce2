package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/walker/internal/core"
)

// KeyMap holds the walker's key bindings as bubbles key.Bindings, so the
// same table drives input matching and the help view.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// NewKeyMap builds a KeyMap from resolved bindings.
func NewKeyMap(b core.Bindings) KeyMap {
	bind := func(a core.Action, desc string) key.Binding {
		keys := b.Keys(a)
		return key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), desc),
		)
	}
	return KeyMap{
		Up:    bind(core.ActionUp, "move up"),
		Down:  bind(core.ActionDown, "move down"),
		Left:  bind(core.ActionLeft, "move left"),
		Right: bind(core.ActionRight, "move right"),
		Quit:  bind(core.ActionQuit, "quit"),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Quit},
	}
}

// MapKey translates a key message to an action. Quit is checked first.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	}
	return core.ActionNone
}

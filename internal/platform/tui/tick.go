// Package tui provides the Bubble Tea runtime for the walker.
// It drives the same animator as the raw runtime and renders through lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/walker/internal/config"
)

// TickMsg is sent to trigger an animation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ReloadMsg carries a config reloaded from disk.
type ReloadMsg config.Config

// waitForReload blocks on ch and delivers the next config as a ReloadMsg.
// A nil channel yields no command.
func waitForReload(ch <-chan config.Config) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return ReloadMsg(cfg)
	}
}

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/focusdeck-io/focusdeck/internal/session"
)

// dispatchCmd sends one intent to the controller off the update loop. The
// controller pushes resulting snapshots back through the display sink, so
// the command itself yields no message.
func dispatchCmd(c *session.Controller, intent any) tea.Cmd {
	return func() tea.Msg {
		c.Dispatch(intent)
		return nil
	}
}

// clearMessageAfter clears the transient status-bar message after d.
func clearMessageAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearMessageMsg{}
	})
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar renders the bottom bar: a pending confirmation wins, then a
// transient error or info message, then the key hints for the active tab.
func (m *Model) renderStatusBar() string {
	var content string
	switch {
	case m.confirmDelete >= 0:
		content = keyStyle.Render("Delete task? ") + hintStyle.Render("y confirm / n cancel")
	case m.errMessage != "":
		content = lipgloss.NewStyle().Foreground(colorRed).Render(m.errMessage)
	case m.infoMessage != "":
		content = lipgloss.NewStyle().Foreground(colorGreen).Render(m.infoMessage)
	default:
		content = m.renderHints()
	}
	return statusBarStyle.Width(m.width).Render(" " + content)
}

func (m *Model) renderHints() string {
	var hints []string
	add := func(k, desc string) {
		hints = append(hints, keyStyle.Render(k)+hintStyle.Render(" "+desc))
	}

	switch {
	case m.overlay == overlayTaskForm:
		add("ctrl+s", "save")
		add("tab", "next field")
		add("space", "cycle label")
		add("esc", "cancel")
	case m.overlay == overlayFilePicker:
		add("j/k", "navigate")
		add("enter", "attach file")
		add("esc", "close")
	case m.overlay == overlayHelp:
		add("esc", "close")
	case m.activeTab == tabSettings:
		add("j/k", "navigate")
		add("space", "toggle")
		add("enter", "edit value")
		add("1", "tasks")
		add("q", "quit")
	default:
		add("a", "add")
		add("e", "edit")
		add("x", "delete")
		add("s/v", "cycle status/env")
		add("p", "timer")
		add("f", "focus")
		add("?", "help")
	}

	return strings.Join(hints, hintStyle.Render("  |  "))
}

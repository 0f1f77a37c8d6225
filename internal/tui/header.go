package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top line: app title, tab bar and focus badge.
// This is the activity-bar surface.
func (m *Model) renderHeader() string {
	title := headerStyle.Render(" focusdeck ")

	tasksTab := inactiveTabStyle.Render("[1] Tasks")
	settingsTab := inactiveTabStyle.Render("[2] Settings")
	if m.activeTab == tabTasks {
		tasksTab = activeTabStyle.Render("[1] Tasks")
	} else {
		settingsTab = activeTabStyle.Render("[2] Settings")
	}
	tabs := tasksTab + tabSepStyle.Render("  ") + settingsTab

	left := title + "  " + tabs

	var right string
	if m.focusEnabled {
		right = focusBadgeStyle.Render("FOCUS")
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderTimerBar renders the countdown line with a progress gauge. This is
// the panel surface.
func (m *Model) renderTimerBar() string {
	if m.timerDisplay == "" {
		return timerIdleStyle.Render(" timer idle (p starts a work session)")
	}

	label := timerRunningStyle.Render(" " + m.timerDisplay + " ")
	if m.timerDisplay == "00:00" {
		label = timerIdleStyle.Render(" " + m.timerDisplay + " ")
	}

	barWidth := m.width - lipgloss.Width(label) - 2
	if barWidth < 10 {
		return label
	}
	m.progress.Width = barWidth

	ratio := 0.0
	if m.timerTotal > 0 {
		ratio = 1.0 - float64(m.timerRemaining)/float64(m.timerTotal)
	}
	return label + m.progress.ViewAs(ratio)
}

package tui

import "strings"

// renderHelp renders the key reference overlay.
func (m *Model) renderHelp() string {
	rows := []struct{ k, d string }{
		{"1 / 2", "switch between Tasks and Settings"},
		{"j / k", "move selection"},
		{"a", "add a task"},
		{"e / enter", "edit the selected task"},
		{"x", "delete the selected task"},
		{"s", "cycle the selected task's status"},
		{"v", "cycle the selected task's environment"},
		{"m", "recently modified files"},
		{"p", "start a work timer"},
		{"b / B", "start a short / long break"},
		{"f", "toggle focus mode"},
		{"q", "quit"},
	}

	parts := []string{overlayTitleStyle.Render("Keys")}
	for _, r := range rows {
		parts = append(parts, keyStyle.Width(12).Render(r.k)+hintStyle.Render(r.d))
	}
	parts = append(parts, "", overlayDimStyle.Render("Esc to close"))

	return overlayStyle.Render(strings.Join(parts, "\n"))
}

// renderFilePicker renders the recent-file overlay. Selecting an entry
// attaches it to the open task form, or pre-fills a new one.
func (m *Model) renderFilePicker() string {
	parts := []string{overlayTitleStyle.Render("Recently modified files")}

	if len(m.recentFiles) == 0 {
		parts = append(parts, emptyListStyle.Render("No file activity observed yet."))
	}
	for i, f := range m.recentFiles {
		line := " " + f
		if i == m.fileCursor {
			line = selectedItemStyle.Render(">" + f)
		}
		parts = append(parts, line)
	}
	parts = append(parts, "", overlayDimStyle.Render("Enter attach  |  Esc close"))

	return overlayStyle.Render(strings.Join(parts, "\n"))
}

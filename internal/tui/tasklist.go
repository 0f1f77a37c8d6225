package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/focusdeck-io/focusdeck/internal/models"
)

// TaskList renders the ordered task sequence. The cursor index is also the
// position sent in update/delete intents: list order is the addressing
// order.
type TaskList struct {
	tasks        []*models.Task
	cursor       int
	scrollOffset int
	width        int
	height       int
	showNumbers  bool
}

// NewTaskList creates an empty task list with line numbers on.
func NewTaskList() *TaskList {
	return &TaskList{showNumbers: true}
}

// SetTasks replaces the snapshot and clamps the cursor.
func (tl *TaskList) SetTasks(tasks []*models.Task) {
	tl.tasks = tasks
	if tl.cursor >= len(tasks) {
		tl.cursor = len(tasks) - 1
	}
	if tl.cursor < 0 {
		tl.cursor = 0
	}
}

// SetSize updates the visible dimensions.
func (tl *TaskList) SetSize(width, height int) {
	tl.width = width
	tl.height = height
}

// ShowNumbers toggles position numbering (the line-numbers surface).
func (tl *TaskList) ShowNumbers(on bool) {
	tl.showNumbers = on
}

// Len returns the number of tasks in the snapshot.
func (tl *TaskList) Len() int {
	return len(tl.tasks)
}

// Cursor returns the selected position, or -1 when the list is empty.
func (tl *TaskList) Cursor() int {
	if len(tl.tasks) == 0 {
		return -1
	}
	return tl.cursor
}

// Selected returns the task under the cursor, or nil.
func (tl *TaskList) Selected() *models.Task {
	if len(tl.tasks) == 0 {
		return nil
	}
	return tl.tasks[tl.cursor]
}

// MoveUp moves the cursor up.
func (tl *TaskList) MoveUp() {
	if tl.cursor > 0 {
		tl.cursor--
	}
	tl.ensureVisible()
}

// MoveDown moves the cursor down.
func (tl *TaskList) MoveDown() {
	if tl.cursor < len(tl.tasks)-1 {
		tl.cursor++
	}
	tl.ensureVisible()
}

func (tl *TaskList) ensureVisible() {
	if tl.height <= 0 {
		return
	}
	if tl.cursor < tl.scrollOffset {
		tl.scrollOffset = tl.cursor
	}
	if tl.cursor >= tl.scrollOffset+tl.height {
		tl.scrollOffset = tl.cursor - tl.height + 1
	}
}

// View renders the visible window of the list.
func (tl *TaskList) View() string {
	if len(tl.tasks) == 0 {
		return emptyListStyle.Render("No tasks yet. Press 'a' to add one.")
	}

	end := len(tl.tasks)
	if tl.height > 0 && tl.scrollOffset+tl.height < end {
		end = tl.scrollOffset + tl.height
	}

	var lines []string
	for i := tl.scrollOffset; i < end; i++ {
		line := tl.renderItem(i)
		if i == tl.cursor {
			line = selectedItemStyle.Width(tl.width).Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (tl *TaskList) renderItem(i int) string {
	t := tl.tasks[i]

	var b strings.Builder
	if tl.showNumbers {
		b.WriteString(lineNumberStyle.Render(fmt.Sprintf("%3d ", i)))
	}

	id := t.ID
	if id == "" {
		id = "(untitled)"
	}
	b.WriteString(taskIDStyle.Render(id))
	b.WriteString("  ")
	b.WriteString(taskStatusStyle.Render(t.Status))
	b.WriteString(" ")
	b.WriteString(taskEnvStyle.Render("@" + t.Environment))

	if n := len(t.ModifiedFiles); n > 0 {
		b.WriteString(taskAgeStyle.Render(fmt.Sprintf("  %d file(s)", n)))
	}
	b.WriteString(taskAgeStyle.Render("  " + humanize.Time(t.CreatedAt)))

	return lipgloss.NewStyle().MaxWidth(tl.width).Render(b.String())
}

// DetailView renders the sidebar detail for the selected task.
func (tl *TaskList) DetailView(width int) string {
	t := tl.Selected()
	if t == nil {
		return emptyListStyle.Render("Nothing selected")
	}

	var parts []string
	parts = append(parts, taskIDStyle.Render(t.ID))
	parts = append(parts, taskAgeStyle.Render("created "+humanize.Time(t.CreatedAt)))
	parts = append(parts, "")
	parts = append(parts, taskStatusStyle.Render("status: "+t.Status))
	parts = append(parts, taskEnvStyle.Render("environment: "+t.Environment))
	parts = append(parts, "")

	if t.Notes != "" {
		parts = append(parts, t.Notes, "")
	}
	if len(t.ModifiedFiles) > 0 {
		parts = append(parts, sectionHeaderStyle.Render("Modified files"))
		for _, f := range t.ModifiedFiles {
			parts = append(parts, "  "+f)
		}
	}

	return lipgloss.NewStyle().Width(width).Render(strings.Join(parts, "\n"))
}

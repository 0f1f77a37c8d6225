package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// TaskForm is the add/edit task overlay form. Status and environment cycle
// through the configured label sets; an edited task may carry a label that
// is no longer in the set, which is kept as-is until cycled away.
type TaskForm struct {
	mode     string // "add" or "edit"
	position int    // For edit mode

	idInput    textinput.Model
	notesArea  textarea.Model
	filesInput textinput.Model

	statuses     []string
	environments []string
	status       string
	environment  string

	focusIndex int // 0=id, 1=notes, 2=files, 3=status, 4=environment
	width      int
}

// NewTaskForm creates a task form populated with the configured label sets.
func NewTaskForm(mode string, statuses, environments []string, width int) *TaskForm {
	ii := textinput.New()
	ii.Placeholder = "Ticket key (e.g. PROJ-42)"
	ii.CharLimit = 100
	ii.Width = width - 8

	na := textarea.New()
	na.Placeholder = "Notes"
	na.SetWidth(width - 8)
	na.SetHeight(4)

	fi := textinput.New()
	fi.Placeholder = "Modified files, comma separated (press m in the list for recent files)"
	fi.CharLimit = 500
	fi.Width = width - 8

	tf := &TaskForm{
		mode:         mode,
		idInput:      ii,
		notesArea:    na,
		filesInput:   fi,
		statuses:     statuses,
		environments: environments,
		width:        width,
	}
	if len(statuses) > 0 {
		tf.status = statuses[0]
	}
	if len(environments) > 0 {
		tf.environment = environments[0]
	}

	tf.idInput.Focus()
	return tf
}

// PreFill fills the form with existing task data for editing.
func (tf *TaskForm) PreFill(position int, id, notes string, files []string, status, environment string) {
	tf.position = position
	tf.idInput.SetValue(id)
	tf.notesArea.SetValue(notes)
	tf.filesInput.SetValue(strings.Join(files, ", "))
	tf.status = status
	tf.environment = environment
}

// FocusNext moves to the next field.
func (tf *TaskForm) FocusNext() {
	tf.blurAll()
	tf.focusIndex = (tf.focusIndex + 1) % 5
	tf.focusCurrent()
}

// FocusPrev moves to the previous field.
func (tf *TaskForm) FocusPrev() {
	tf.blurAll()
	tf.focusIndex--
	if tf.focusIndex < 0 {
		tf.focusIndex = 4
	}
	tf.focusCurrent()
}

func (tf *TaskForm) blurAll() {
	tf.idInput.Blur()
	tf.notesArea.Blur()
	tf.filesInput.Blur()
}

func (tf *TaskForm) focusCurrent() {
	switch tf.focusIndex {
	case 0:
		tf.idInput.Focus()
	case 1:
		tf.notesArea.Focus()
	case 2:
		tf.filesInput.Focus()
	case 3, 4:
		// Label fields cycle, no input to focus
	}
}

// Cycle advances the focused label field to the next configured label.
func (tf *TaskForm) Cycle() {
	switch tf.focusIndex {
	case 3:
		tf.status = nextLabel(tf.statuses, tf.status)
	case 4:
		tf.environment = nextLabel(tf.environments, tf.environment)
	}
}

// nextLabel returns the label after current, wrapping around. A current
// value outside the set (a retired label) restarts at the first entry.
func nextLabel(set []string, current string) string {
	if len(set) == 0 {
		return current
	}
	for i, l := range set {
		if l == current {
			return set[(i+1)%len(set)]
		}
	}
	return set[0]
}

// ID returns the current id value.
func (tf *TaskForm) ID() string { return tf.idInput.Value() }

// Notes returns the current notes value.
func (tf *TaskForm) Notes() string { return tf.notesArea.Value() }

// Files returns the parsed file list.
func (tf *TaskForm) Files() []string {
	raw := strings.Split(tf.filesInput.Value(), ",")
	var files []string
	for _, f := range raw {
		f = strings.TrimSpace(f)
		if f != "" {
			files = append(files, f)
		}
	}
	return files
}

// AppendFile adds a path to the files field.
func (tf *TaskForm) AppendFile(path string) {
	v := tf.filesInput.Value()
	if strings.TrimSpace(v) == "" {
		tf.filesInput.SetValue(path)
		return
	}
	tf.filesInput.SetValue(v + ", " + path)
}

// Status returns the current status label.
func (tf *TaskForm) Status() string { return tf.status }

// Environment returns the current environment label.
func (tf *TaskForm) Environment() string { return tf.environment }

// Position returns the edited position (edit mode only).
func (tf *TaskForm) Position() int { return tf.position }

// Mode returns "add" or "edit".
func (tf *TaskForm) Mode() string { return tf.mode }

// FocusIndex returns the currently focused field index.
func (tf *TaskForm) FocusIndex() int { return tf.focusIndex }

// IDInput returns the id input model for update forwarding.
func (tf *TaskForm) IDInput() *textinput.Model { return &tf.idInput }

// NotesArea returns the notes textarea model for update forwarding.
func (tf *TaskForm) NotesArea() *textarea.Model { return &tf.notesArea }

// FilesInput returns the files input model for update forwarding.
func (tf *TaskForm) FilesInput() *textinput.Model { return &tf.filesInput }

// View renders the task form.
func (tf *TaskForm) View() string {
	title := "Add Task"
	if tf.mode == "edit" {
		title = "Edit Task"
	}

	formWidth := tf.width
	if formWidth > 70 {
		formWidth = 70
	}
	if formWidth < 30 {
		formWidth = 30
	}

	bold := lipgloss.NewStyle().Bold(true)

	parts := make([]string, 0, 16)
	parts = append(parts, overlayTitleStyle.Render(title))
	parts = append(parts, bold.Render("ID:"), tf.idInput.View(), "")
	parts = append(parts, bold.Render("Notes:"), tf.notesArea.View(), "")
	parts = append(parts, bold.Render("Files:"), tf.filesInput.View(), "")

	parts = append(parts, bold.Render("Status:")+" "+tf.renderLabel(tf.status, 3))
	parts = append(parts, bold.Render("Environment:")+" "+tf.renderLabel(tf.environment, 4), "")

	footer := overlayDimStyle.Render("Ctrl+s save  |  Tab next field  |  Esc cancel")
	parts = append(parts, footer)

	return overlayStyle.Width(formWidth).Render(strings.Join(parts, "\n"))
}

func (tf *TaskForm) renderLabel(value string, index int) string {
	out := taskStatusStyle.Render(value)
	if index == 4 {
		out = taskEnvStyle.Render(value)
	}
	if tf.focusIndex == index {
		out += overlayDimStyle.Render("  (Space to cycle)")
	}
	return out
}

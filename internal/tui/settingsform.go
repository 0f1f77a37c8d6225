package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/focusdeck-io/focusdeck/internal/models"
)

// FieldType defines the type of a settings field.
type FieldType int

const (
	fieldInt FieldType = iota
	fieldToggle
	fieldHeader
)

// SettingsField is a single row in the settings form.
type SettingsField struct {
	Label     string
	Key       string
	IntValue  int
	BoolValue bool
	Type      FieldType
}

// SettingsForm manages the settings tab. Rows map onto the pomodoro,
// notification and focus-mode sub-records; committing a row sends the whole
// edited sub-record as one update intent.
type SettingsForm struct {
	fields  []SettingsField
	cursor  int
	editing bool
	input   textinput.Model
	width   int
	height  int
}

// NewSettingsForm creates a new settings form.
func NewSettingsForm() *SettingsForm {
	ti := textinput.New()
	ti.CharLimit = 5
	return &SettingsForm{input: ti}
}

// LoadFromSettings populates rows from a settings snapshot.
func (s *SettingsForm) LoadFromSettings(cfg *models.Settings) {
	s.fields = []SettingsField{
		{Label: "Pomodoro", Type: fieldHeader},
		{Label: "Work minutes", Key: "pomodoro.work", IntValue: cfg.Pomodoro.WorkMinutes, Type: fieldInt},
		{Label: "Short break minutes", Key: "pomodoro.short_break", IntValue: cfg.Pomodoro.ShortBreakMinutes, Type: fieldInt},
		{Label: "Long break minutes", Key: "pomodoro.long_break", IntValue: cfg.Pomodoro.LongBreakMinutes, Type: fieldInt},
		{Label: "Long break interval", Key: "pomodoro.interval", IntValue: cfg.Pomodoro.LongBreakInterval, Type: fieldInt},

		{Label: "Notifications", Type: fieldHeader},
		{Label: "Inactivity alerts", Key: "notify.inactivity", BoolValue: cfg.Notifications.InactivityAlerts, Type: fieldToggle},
		{Label: "Inactivity threshold (min)", Key: "notify.threshold", IntValue: cfg.Notifications.InactivityThresholdMinutes, Type: fieldInt},
		{Label: "Pomodoro alerts", Key: "notify.pomodoro", BoolValue: cfg.Notifications.PomodoroAlerts, Type: fieldToggle},
		{Label: "Task reminders", Key: "notify.reminders", BoolValue: cfg.Notifications.TaskReminders, Type: fieldToggle},

		{Label: "Focus mode hides", Type: fieldHeader},
		{Label: "Sidebar", Key: "focus.sidebar", BoolValue: cfg.FocusMode.HideSidebar, Type: fieldToggle},
		{Label: "Activity bar", Key: "focus.activity_bar", BoolValue: cfg.FocusMode.HideActivityBar, Type: fieldToggle},
		{Label: "Status bar", Key: "focus.status_bar", BoolValue: cfg.FocusMode.HideStatusBar, Type: fieldToggle},
		{Label: "Panel", Key: "focus.panel", BoolValue: cfg.FocusMode.HidePanel, Type: fieldToggle},
		{Label: "Minimap", Key: "focus.minimap", BoolValue: cfg.FocusMode.HideMinimap, Type: fieldToggle},
		{Label: "Line numbers", Key: "focus.line_numbers", BoolValue: cfg.FocusMode.HideLineNumbers, Type: fieldToggle},
	}
	if s.cursor >= len(s.fields) {
		s.cursor = len(s.fields) - 1
	}
	s.skipHeaders(1)
}

// SetSize updates dimensions.
func (s *SettingsForm) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.input.Width = 8
}

// MoveUp moves the cursor up, skipping section headers.
func (s *SettingsForm) MoveUp() {
	if s.editing || s.cursor == 0 {
		return
	}
	s.cursor--
	s.skipHeaders(-1)
}

// MoveDown moves the cursor down, skipping section headers.
func (s *SettingsForm) MoveDown() {
	if s.editing || s.cursor >= len(s.fields)-1 {
		return
	}
	s.cursor++
	s.skipHeaders(1)
}

func (s *SettingsForm) skipHeaders(direction int) {
	for s.cursor >= 0 && s.cursor < len(s.fields) && s.fields[s.cursor].Type == fieldHeader {
		s.cursor += direction
	}
	if s.cursor < 0 {
		s.cursor = 0
		for s.cursor < len(s.fields) && s.fields[s.cursor].Type == fieldHeader {
			s.cursor++
		}
	}
	if s.cursor >= len(s.fields) {
		s.cursor = len(s.fields) - 1
		for s.cursor >= 0 && s.fields[s.cursor].Type == fieldHeader {
			s.cursor--
		}
	}
}

// Toggle flips the boolean row under the cursor. It reports whether a value
// changed along with the row key.
func (s *SettingsForm) Toggle() (changed bool, key string) {
	if s.cursor < 0 || s.cursor >= len(s.fields) {
		return false, ""
	}
	f := &s.fields[s.cursor]
	if f.Type != fieldToggle {
		return false, ""
	}
	f.BoolValue = !f.BoolValue
	return true, f.Key
}

// StartEdit begins inline editing of the integer row under the cursor.
func (s *SettingsForm) StartEdit() bool {
	if s.cursor < 0 || s.cursor >= len(s.fields) {
		return false
	}
	f := s.fields[s.cursor]
	if f.Type != fieldInt {
		return false
	}
	s.editing = true
	s.input.SetValue(strconv.Itoa(f.IntValue))
	s.input.Focus()
	return true
}

// FinishEdit commits the current edit. Values must be positive integers;
// anything else cancels the edit.
func (s *SettingsForm) FinishEdit() (changed bool, key string) {
	if !s.editing {
		return false, ""
	}
	s.editing = false
	s.input.Blur()

	f := &s.fields[s.cursor]
	v, err := strconv.Atoi(strings.TrimSpace(s.input.Value()))
	if err != nil || v <= 0 {
		return false, ""
	}
	if v == f.IntValue {
		return false, ""
	}
	f.IntValue = v
	return true, f.Key
}

// CancelEdit cancels the current edit.
func (s *SettingsForm) CancelEdit() {
	s.editing = false
	s.input.Blur()
}

// IsEditing returns whether a field is being edited.
func (s *SettingsForm) IsEditing() bool {
	return s.editing
}

// InputModel returns the text input model for Update forwarding.
func (s *SettingsForm) InputModel() *textinput.Model {
	return &s.input
}

// Pomodoro assembles the pomodoro sub-record from the current rows.
func (s *SettingsForm) Pomodoro() models.PomodoroConfig {
	cfg := models.PomodoroConfig{}
	for _, f := range s.fields {
		switch f.Key {
		case "pomodoro.work":
			cfg.WorkMinutes = f.IntValue
		case "pomodoro.short_break":
			cfg.ShortBreakMinutes = f.IntValue
		case "pomodoro.long_break":
			cfg.LongBreakMinutes = f.IntValue
		case "pomodoro.interval":
			cfg.LongBreakInterval = f.IntValue
		}
	}
	return cfg
}

// Notifications assembles the notifications sub-record.
func (s *SettingsForm) Notifications() models.NotificationsConfig {
	cfg := models.NotificationsConfig{}
	for _, f := range s.fields {
		switch f.Key {
		case "notify.inactivity":
			cfg.InactivityAlerts = f.BoolValue
		case "notify.threshold":
			cfg.InactivityThresholdMinutes = f.IntValue
		case "notify.pomodoro":
			cfg.PomodoroAlerts = f.BoolValue
		case "notify.reminders":
			cfg.TaskReminders = f.BoolValue
		}
	}
	return cfg
}

// FocusMode assembles the focus-mode sub-record.
func (s *SettingsForm) FocusMode() models.FocusModeConfig {
	cfg := models.FocusModeConfig{}
	for _, f := range s.fields {
		switch f.Key {
		case "focus.sidebar":
			cfg.HideSidebar = f.BoolValue
		case "focus.activity_bar":
			cfg.HideActivityBar = f.BoolValue
		case "focus.status_bar":
			cfg.HideStatusBar = f.BoolValue
		case "focus.panel":
			cfg.HidePanel = f.BoolValue
		case "focus.minimap":
			cfg.HideMinimap = f.BoolValue
		case "focus.line_numbers":
			cfg.HideLineNumbers = f.BoolValue
		}
	}
	return cfg
}

// Section returns which sub-record the row key belongs to.
func Section(key string) string {
	switch {
	case strings.HasPrefix(key, "pomodoro."):
		return "pomodoro"
	case strings.HasPrefix(key, "notify."):
		return "notifications"
	case strings.HasPrefix(key, "focus."):
		return "focus"
	default:
		return ""
	}
}

// View renders the settings form.
func (s *SettingsForm) View() string {
	if len(s.fields) == 0 {
		return overlayDimStyle.Render("Loading settings...")
	}

	var lines []string
	for i, f := range s.fields {
		var line string
		switch f.Type {
		case fieldHeader:
			line = sectionHeaderStyle.Render(f.Label)
		case fieldToggle:
			val := settingsToggleOff.Render("[OFF]")
			if f.BoolValue {
				val = settingsToggleOn.Render("[ON]")
			}
			line = settingsLabelStyle.Render(f.Label+":") + " " + val
		case fieldInt:
			if s.editing && i == s.cursor {
				line = settingsLabelStyle.Render(f.Label+":") + " " + s.input.View()
			} else {
				line = settingsLabelStyle.Render(f.Label+":") + " " + settingsValueStyle.Render(strconv.Itoa(f.IntValue))
			}
		}

		if i == s.cursor && f.Type != fieldHeader {
			line = settingsCursorStyle.Width(s.width).Render(line)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

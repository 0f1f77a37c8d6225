package tui

import (
	"github.com/focusdeck-io/focusdeck/internal/focus"
	"github.com/focusdeck-io/focusdeck/internal/models"
)

// TasksSnapshotMsg carries a fresh task snapshot from the controller.
type TasksSnapshotMsg struct {
	Tasks []*models.Task
}

// SettingsSnapshotMsg carries a fresh settings snapshot.
type SettingsSnapshotMsg struct {
	Settings *models.Settings
}

// TimerTickMsg carries the mm:ss countdown display.
type TimerTickMsg struct {
	Display string
}

// TimerDoneMsg signals a session completed, after its notifications went out.
type TimerDoneMsg struct{}

// FocusModeChangedMsg signals the focus-mode boolean flipped.
type FocusModeChangedMsg struct {
	Enabled bool
}

// FileListMsg carries the recently-modified-file snapshot.
type FileListMsg struct {
	Files []string
}

// DirectiveMsg carries a focus-mode display directive for one surface.
type DirectiveMsg struct {
	Directive focus.Directive
}

// InfoMsg carries a human-readable confirmation message.
type InfoMsg struct {
	Message string
}

// ErrorMsg carries a user-visible error message.
type ErrorMsg struct {
	Message string
}

// clearMessageMsg clears the transient info/error display.
type clearMessageMsg struct{}

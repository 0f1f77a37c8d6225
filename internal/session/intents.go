package session

import (
	"github.com/focusdeck-io/focusdeck/internal/models"
)

// Inbound intents from the display sink. Each corresponds to one message
// kind; the controller validates, delegates, persists and pushes a fresh
// snapshot.

// RequestSnapshot asks for the current task and settings snapshots.
type RequestSnapshot struct{}

// AddTask appends a task to the end of the sequence.
type AddTask struct {
	ID          string
	Notes       string
	Status      string
	Environment string
	Files       []string
}

// UpdateTask merges a partial update into the task at Position.
type UpdateTask struct {
	Position int
	Patch    models.TaskPatch
}

// DeleteTask removes the task at Position.
type DeleteTask struct {
	Position int
}

// AddTaskStatus appends a label to the status set.
type AddTaskStatus struct {
	Label string
}

// AddEnvironment appends a label to the environment set.
type AddEnvironment struct {
	Label string
}

// UpdatePomodoroSettings replaces the pomodoro sub-record.
type UpdatePomodoroSettings struct {
	Config models.PomodoroConfig
}

// UpdateFocusModeSettings replaces the focus-mode sub-record.
type UpdateFocusModeSettings struct {
	Config models.FocusModeConfig
}

// UpdateNotificationSettings replaces the notifications sub-record.
type UpdateNotificationSettings struct {
	Config models.NotificationsConfig
}

// StartTimer starts a work session of the configured duration.
type StartTimer struct{}

// StartBreak starts a break session; Long selects the long-break duration.
type StartBreak struct {
	Long bool
}

// ToggleFocusMode flips focus mode.
type ToggleFocusMode struct{}

// RequestFileList asks for the recently-modified-file snapshot.
type RequestFileList struct{}

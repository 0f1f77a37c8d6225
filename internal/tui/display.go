package tui

import (
	"github.com/focusdeck-io/focusdeck/internal/focus"
	"github.com/focusdeck-io/focusdeck/internal/models"
)

// panelDisplay implements session.Display and session.SurfaceHost by
// forwarding every outbound event to the running bubbletea program. The
// panel never mutates state; it renders snapshots and sends intents back.
type panelDisplay struct {
	program *programRef
}

func (d *panelDisplay) TasksSnapshot(tasks []*models.Task) {
	d.program.Send(TasksSnapshotMsg{Tasks: tasks})
}

func (d *panelDisplay) SettingsSnapshot(settings *models.Settings) {
	d.program.Send(SettingsSnapshotMsg{Settings: settings})
}

func (d *panelDisplay) TimerTick(display string) {
	d.program.Send(TimerTickMsg{Display: display})
}

func (d *panelDisplay) TimerDone() {
	d.program.Send(TimerDoneMsg{})
}

func (d *panelDisplay) FocusModeChanged(enabled bool) {
	d.program.Send(FocusModeChangedMsg{Enabled: enabled})
}

func (d *panelDisplay) FileListSnapshot(files []string) {
	d.program.Send(FileListMsg{Files: files})
}

func (d *panelDisplay) Info(message string) {
	d.program.Send(InfoMsg{Message: message})
}

func (d *panelDisplay) Error(message string) {
	d.program.Send(ErrorMsg{Message: message})
}

func (d *panelDisplay) ApplyDirective(directive focus.Directive) {
	d.program.Send(DirectiveMsg{Directive: directive})
}

package session

import (
	"github.com/focusdeck-io/focusdeck/internal/focus"
	"github.com/focusdeck-io/focusdeck/internal/models"
)

// Display is the outbound side of the sink protocol. The sink never mutates
// state directly: it renders snapshots and sends intents back. Snapshots are
// point-in-time copies; the controller retains ownership of live state.
type Display interface {
	TasksSnapshot(tasks []*models.Task)
	SettingsSnapshot(settings *models.Settings)
	TimerTick(display string)
	// TimerDone fires after a completed session's notifications have been
	// delivered. Ticks alone cannot signal completion: a poll landing just
	// under half a second early renders "00:00" while the session is still
	// live.
	TimerDone()
	FocusModeChanged(enabled bool)
	FileListSnapshot(files []string)
	Info(message string)
	Error(message string)
}

// SurfaceHost applies focus-mode display directives to the hosting surface.
type SurfaceHost interface {
	ApplyDirective(d focus.Directive)
}

// NopHost ignores directives. Used when no host surface is attached.
type NopHost struct{}

// ApplyDirective does nothing.
func (NopHost) ApplyDirective(focus.Directive) {}

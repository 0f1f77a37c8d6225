package config

import (
	"github.com/focusdeck-io/focusdeck/internal/models"
)

// settingsFile mirrors models.Settings with optional sub-records so that a
// hand-edited settings.yaml with missing fields still loads: any absent
// field resolves to its documented default.
type settingsFile struct {
	TaskStatuses  []string                    `yaml:"task_statuses"`
	Environments  []string                    `yaml:"environments"`
	Pomodoro      *models.PomodoroConfig      `yaml:"pomodoro"`
	FocusMode     *models.FocusModeConfig     `yaml:"focus_mode"`
	Notifications *models.NotificationsConfig `yaml:"notifications"`
}

// LoadSettingsFile loads settings from the given path. Missing file or
// missing fields resolve to defaults.
func LoadSettingsFile(path string) (*models.Settings, error) {
	if !FileExists(path) {
		return models.NewSettings(), nil
	}

	var f settingsFile
	if err := LoadYAML(path, &f); err != nil {
		return nil, err
	}
	return resolveSettings(f), nil
}

func resolveSettings(f settingsFile) *models.Settings {
	s := models.NewSettings()
	if f.TaskStatuses != nil {
		s.TaskStatuses = f.TaskStatuses
	}
	if f.Environments != nil {
		s.Environments = f.Environments
	}
	if f.Pomodoro != nil {
		s.Pomodoro = *f.Pomodoro
		fillPomodoro(&s.Pomodoro)
	}
	if f.FocusMode != nil {
		s.FocusMode = *f.FocusMode
	}
	if f.Notifications != nil {
		s.Notifications = *f.Notifications
		if s.Notifications.InactivityThresholdMinutes <= 0 {
			s.Notifications.InactivityThresholdMinutes = models.DefaultNotifications().InactivityThresholdMinutes
		}
	}
	return s
}

// fillPomodoro replaces non-positive durations with their defaults. The
// pomodoro fields are all positive integers by contract.
func fillPomodoro(p *models.PomodoroConfig) {
	def := models.DefaultPomodoro()
	if p.WorkMinutes <= 0 {
		p.WorkMinutes = def.WorkMinutes
	}
	if p.ShortBreakMinutes <= 0 {
		p.ShortBreakMinutes = def.ShortBreakMinutes
	}
	if p.LongBreakMinutes <= 0 {
		p.LongBreakMinutes = def.LongBreakMinutes
	}
	if p.LongBreakInterval <= 0 {
		p.LongBreakInterval = def.LongBreakInterval
	}
}

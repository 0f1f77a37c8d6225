package models

// PomodoroConfig holds work/break durations in minutes and the long-break
// interval (number of work sessions between long breaks).
type PomodoroConfig struct {
	WorkMinutes       int `yaml:"work_minutes"`
	ShortBreakMinutes int `yaml:"short_break_minutes"`
	LongBreakMinutes  int `yaml:"long_break_minutes"`
	LongBreakInterval int `yaml:"long_break_interval"`
}

// FocusModeConfig selects which panel surfaces focus mode hides.
// A false flag means that surface is left untouched, not forced visible.
type FocusModeConfig struct {
	HideSidebar     bool `yaml:"hide_sidebar"`
	HideActivityBar bool `yaml:"hide_activity_bar"`
	HideStatusBar   bool `yaml:"hide_status_bar"`
	HidePanel       bool `yaml:"hide_panel"`
	HideMinimap     bool `yaml:"hide_minimap"`
	HideLineNumbers bool `yaml:"hide_line_numbers"`
}

// NotificationsConfig holds alert toggles and the inactivity threshold.
type NotificationsConfig struct {
	InactivityAlerts           bool `yaml:"inactivity_alerts"`
	InactivityThresholdMinutes int  `yaml:"inactivity_threshold_minutes"`
	PomodoroAlerts             bool `yaml:"pomodoro_alerts"`
	TaskReminders              bool `yaml:"task_reminders"`
}

// Settings is the full application configuration record.
// This corresponds to ~/.focusdeck/settings.yaml. Every field always has a
// defined value: loading fills anything absent from the defaults below.
type Settings struct {
	TaskStatuses  []string            `yaml:"task_statuses"`
	Environments  []string            `yaml:"environments"`
	Pomodoro      PomodoroConfig      `yaml:"pomodoro"`
	FocusMode     FocusModeConfig     `yaml:"focus_mode"`
	Notifications NotificationsConfig `yaml:"notifications"`
}

// DefaultTaskStatuses returns the default status label set.
func DefaultTaskStatuses() []string {
	return []string{"dev", "code_review", "to_deploy", "deployed"}
}

// DefaultEnvironments returns the default environment label set.
func DefaultEnvironments() []string {
	return []string{"dev", "centest", "uat", "weekc", "production"}
}

// DefaultPomodoro returns the default pomodoro durations.
func DefaultPomodoro() PomodoroConfig {
	return PomodoroConfig{
		WorkMinutes:       25,
		ShortBreakMinutes: 5,
		LongBreakMinutes:  15,
		LongBreakInterval: 4,
	}
}

// DefaultFocusMode returns the default focus mode flags.
func DefaultFocusMode() FocusModeConfig {
	return FocusModeConfig{
		HideSidebar:     true,
		HideActivityBar: true,
		HideStatusBar:   true,
		HidePanel:       true,
		HideMinimap:     true,
		HideLineNumbers: false,
	}
}

// DefaultNotifications returns the default notification flags.
func DefaultNotifications() NotificationsConfig {
	return NotificationsConfig{
		InactivityAlerts:           true,
		InactivityThresholdMinutes: 30,
		PomodoroAlerts:             true,
		TaskReminders:              false,
	}
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		TaskStatuses:  DefaultTaskStatuses(),
		Environments:  DefaultEnvironments(),
		Pomodoro:      DefaultPomodoro(),
		FocusMode:     DefaultFocusMode(),
		Notifications: DefaultNotifications(),
	}
}

// SettingsPatch is a partial settings update. Nil fields are left untouched;
// the two label-set fields are wholesale-replaced when non-nil, and the
// sub-records overwrite their counterparts when non-nil.
type SettingsPatch struct {
	TaskStatuses  []string
	Environments  []string
	Pomodoro      *PomodoroConfig
	FocusMode     *FocusModeConfig
	Notifications *NotificationsConfig
}

// Apply merges the patch into the settings record. It reports whether the
// pomodoro sub-record changed, which callers use to restart a running work
// timer with the new duration.
func (p SettingsPatch) Apply(s *Settings) (pomodoroChanged bool) {
	if p.TaskStatuses != nil {
		s.TaskStatuses = p.TaskStatuses
	}
	if p.Environments != nil {
		s.Environments = p.Environments
	}
	if p.Pomodoro != nil {
		pomodoroChanged = *p.Pomodoro != s.Pomodoro
		s.Pomodoro = *p.Pomodoro
	}
	if p.FocusMode != nil {
		s.FocusMode = *p.FocusMode
	}
	if p.Notifications != nil {
		s.Notifications = *p.Notifications
	}
	return pomodoroChanged
}

// Clone returns a deep copy of the settings record.
func (s *Settings) Clone() *Settings {
	c := *s
	c.TaskStatuses = append([]string(nil), s.TaskStatuses...)
	c.Environments = append([]string(nil), s.Environments...)
	return &c
}

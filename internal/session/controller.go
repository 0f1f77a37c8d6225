// Package session implements the session controller, the sole mutation
// entry point. Inbound intents are dispatched to the task repository,
// settings store, timer engine and focus controller; outbound snapshots go
// through the Display interface.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/focusdeck-io/focusdeck/internal/focus"
	"github.com/focusdeck-io/focusdeck/internal/log"
	"github.com/focusdeck-io/focusdeck/internal/models"
	"github.com/focusdeck-io/focusdeck/internal/notify"
	"github.com/focusdeck-io/focusdeck/internal/settings"
	"github.com/focusdeck-io/focusdeck/internal/task"
	"github.com/focusdeck-io/focusdeck/internal/timer"
)

// FileLister supplies the recently-modified-file snapshot.
type FileLister interface {
	Files() []string
}

// Config is the controller configuration.
type Config struct {
	Tasks    *task.Repository
	Settings *settings.Store
	Display  Display
	Host     SurfaceHost
	Notifier notify.Notifier
	Files    FileLister
	// TimerOpts tune the timer engine (clock and intervals); mainly for
	// tests.
	TimerOpts []timer.Option
}

func (c *Config) defaults() error {
	if c.Tasks == nil {
		return fmt.Errorf("task repository is required")
	}
	if c.Settings == nil {
		return fmt.Errorf("settings store is required")
	}
	if c.Display == nil {
		return fmt.Errorf("display is required")
	}
	if c.Host == nil {
		c.Host = NopHost{}
	}
	if c.Notifier == nil {
		c.Notifier = notify.Nop{}
	}
	return nil
}

// Controller dispatches intents. The original host guaranteed
// single-threaded dispatch; here a mutex held across every intent and every
// timer callback provides the same no-interleaving guarantee, so the
// components behind the controller stay lock-free.
type Controller struct {
	mu       sync.Mutex
	tasks    *task.Repository
	settings *settings.Store
	timer    *timer.Engine
	focus    *focus.Controller
	display  Display
	host     SurfaceHost
	notifier notify.Notifier
	files    FileLister
	log      *logrus.Entry
}

// New creates a controller and establishes the inactivity watchdog for the
// life of the process.
func New(cfg Config) (*Controller, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	c := &Controller{
		tasks:    cfg.Tasks,
		settings: cfg.Settings,
		focus:    focus.NewController(),
		display:  cfg.Display,
		host:     cfg.Host,
		notifier: cfg.Notifier,
		files:    cfg.Files,
		log:      log.New("session"),
	}
	c.timer = timer.NewEngine(timerSink{c}, cfg.TimerOpts...)
	c.timer.StartWatchdog(func() (bool, int) {
		n := c.notificationSettings()
		return n.InactivityAlerts, n.InactivityThresholdMinutes
	})
	return c, nil
}

// Dispatch handles one inbound intent to completion. Any failure is caught
// here and surfaced as a single user-visible error; it never crashes the
// controller, and the persistence write for a failing operation simply does
// not occur.
func (c *Controller) Dispatch(intent any) {
	defer func() {
		if r := recover(); r != nil {
			c.log.WithField("panic", r).Error("intent handler panicked")
			c.display.Error(fmt.Sprintf("internal error: %v", r))
		}
	}()

	c.mu.Lock()
	defer c.mu.Unlock()

	switch in := intent.(type) {
	case RequestSnapshot:
		c.pushTasks()
		c.pushSettings()
	case AddTask:
		c.handleAddTask(in)
	case UpdateTask:
		c.handleUpdateTask(in)
	case DeleteTask:
		c.handleDeleteTask(in)
	case AddTaskStatus:
		c.handleAddTaskStatus(in)
	case AddEnvironment:
		c.handleAddEnvironment(in)
	case UpdatePomodoroSettings:
		c.handleSettingsPatch(models.SettingsPatch{Pomodoro: &in.Config})
	case UpdateFocusModeSettings:
		c.handleSettingsPatch(models.SettingsPatch{FocusMode: &in.Config})
	case UpdateNotificationSettings:
		c.handleSettingsPatch(models.SettingsPatch{Notifications: &in.Config})
	case StartTimer:
		cfg := c.settings.Current().Pomodoro
		c.timer.Start(time.Duration(cfg.WorkMinutes) * time.Minute)
	case StartBreak:
		cfg := c.settings.Current().Pomodoro
		minutes := cfg.ShortBreakMinutes
		if in.Long {
			minutes = cfg.LongBreakMinutes
		}
		c.timer.Start(time.Duration(minutes) * time.Minute)
	case ToggleFocusMode:
		c.handleToggleFocus()
	case RequestFileList:
		c.pushFileList()
	default:
		c.log.WithField("intent", fmt.Sprintf("%T", intent)).Warn("unknown intent")
	}
}

// RecordActivity forwards a user-activity signal to the inactivity
// watchdog. The signal itself is opaque; only its timing matters.
func (c *Controller) RecordActivity() {
	c.timer.RecordActivity()
}

// TimerRunning reports whether a countdown is in progress.
func (c *Controller) TimerRunning() bool {
	return c.timer.Running()
}

func (c *Controller) handleAddTask(in AddTask) {
	if _, err := c.tasks.Add(in.ID, in.Notes, in.Status, in.Environment, in.Files); err != nil {
		c.surface(err)
		return
	}
	c.pushTasks()
}

func (c *Controller) handleUpdateTask(in UpdateTask) {
	if _, err := c.tasks.Update(in.Position, in.Patch); err != nil {
		c.surface(err)
		return
	}
	c.pushTasks()
}

func (c *Controller) handleDeleteTask(in DeleteTask) {
	if err := c.tasks.Delete(in.Position); err != nil {
		c.surface(err)
		return
	}
	c.pushTasks()
}

func (c *Controller) handleAddTaskStatus(in AddTaskStatus) {
	if _, err := c.settings.AddTaskStatus(in.Label); err != nil {
		c.surface(err)
		return
	}
	c.pushSettings()
}

func (c *Controller) handleAddEnvironment(in AddEnvironment) {
	if _, err := c.settings.AddEnvironment(in.Label); err != nil {
		c.surface(err)
		return
	}
	c.pushSettings()
}

func (c *Controller) handleSettingsPatch(patch models.SettingsPatch) {
	updated, pomodoroChanged, err := c.settings.Update(patch)
	if err != nil {
		c.surface(err)
		return
	}
	c.pushSettings()

	// A pomodoro change restarts a running work timer with the new
	// duration; session progress is lost, not carried over.
	if pomodoroChanged && c.timer.Running() {
		c.timer.Start(time.Duration(updated.Pomodoro.WorkMinutes) * time.Minute)
		c.display.Info("Work timer restarted with the new duration")
	}
}

func (c *Controller) handleToggleFocus() {
	enabled, directives := c.focus.Toggle(c.settings.Current().FocusMode)
	for _, d := range directives {
		c.host.ApplyDirective(d)
	}
	c.display.FocusModeChanged(enabled)
	if enabled {
		c.display.Info("Focus mode enabled")
	} else {
		c.display.Info("Focus mode disabled")
	}
}

func (c *Controller) pushTasks() {
	c.display.TasksSnapshot(c.tasks.List())
}

func (c *Controller) pushSettings() {
	c.display.SettingsSnapshot(c.settings.Current())
}

func (c *Controller) pushFileList() {
	if c.files == nil {
		c.display.FileListSnapshot(nil)
		return
	}
	c.display.FileListSnapshot(c.files.Files())
}

// surface converts a component failure into a single user-visible message.
func (c *Controller) surface(err error) {
	c.log.WithError(err).Warn("intent failed")
	switch {
	case errors.Is(err, task.ErrOutOfRange):
		c.display.Error(fmt.Sprintf("No such task: %v", err))
	default:
		c.display.Error(fmt.Sprintf("Operation failed: %v", err))
	}
}

func (c *Controller) notificationSettings() models.NotificationsConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings.Current().Notifications
}

// timerSink adapts timer engine callbacks onto the controller. Countdown
// ticks go straight to the display without taking the controller lock:
// Start emits the first tick synchronously while an intent holds it.
type timerSink struct {
	c *Controller
}

func (s timerSink) TimerTick(display string) {
	s.c.display.TimerTick(display)
}

func (s timerSink) TimerDone() {
	n := s.c.notificationSettings()
	s.c.display.Info("Work session complete. Time for a break.")
	if n.PomodoroAlerts {
		if err := s.c.notifier.Notify("focusdeck", "Work session complete. Time for a break."); err != nil {
			s.c.log.WithError(err).Warn("failed to send pomodoro notification")
		}
	}
	if n.TaskReminders {
		s.c.remindOpenTasks()
	}
	// Signaled last so displays that tear down on completion (the headless
	// timer command) never cut off the notification delivery above.
	s.c.display.TimerDone()
}

func (s timerSink) InactivityAlert(idle time.Duration) {
	n := s.c.notificationSettings()
	msg := fmt.Sprintf("No activity for %d minutes. Still working?", int(idle.Minutes()))
	s.c.display.Info(msg)
	if n.InactivityAlerts {
		if err := s.c.notifier.Notify("focusdeck", msg); err != nil {
			s.c.log.WithError(err).Warn("failed to send inactivity notification")
		}
	}
}

// remindOpenTasks surfaces how many tasks are still in the first
// (earliest) status after a completed session.
func (c *Controller) remindOpenTasks() {
	c.mu.Lock()
	tasks := c.tasks.List()
	statuses := c.settings.Current().TaskStatuses
	c.mu.Unlock()

	if len(statuses) == 0 {
		return
	}
	open := 0
	for _, t := range tasks {
		if t.Status == statuses[0] {
			open++
		}
	}
	if open > 0 {
		c.display.Info(fmt.Sprintf("%d task(s) still in %q", open, statuses[0]))
	}
}

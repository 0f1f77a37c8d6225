package cli

import (
	"errors"
	"fmt"

	"github.com/focusdeck-io/focusdeck/internal/config"
	"github.com/focusdeck-io/focusdeck/internal/log"
	"github.com/focusdeck-io/focusdeck/internal/models"
	"github.com/focusdeck-io/focusdeck/internal/notify"
	"github.com/focusdeck-io/focusdeck/internal/session"
	"github.com/focusdeck-io/focusdeck/internal/settings"
	"github.com/focusdeck-io/focusdeck/internal/task"
)

// newController builds a headless controller over the global state files.
// Every CLI command goes through the same intent dispatch as the panel.
func newController(display *consoleDisplay) (*session.Controller, error) {
	log.Setup(debugFlag)

	if err := config.EnsureGlobalDir(); err != nil {
		return nil, fmt.Errorf("failed to prepare state directory: %w", err)
	}
	settingsPath, err := config.GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	tasksPath, err := config.GlobalTasksFile()
	if err != nil {
		return nil, err
	}

	settingsStore := settings.NewStore(
		settings.Load(settingsPath),
		settings.NewFilePersister(settingsPath),
	)

	taskStore := task.NewFileStore(tasksPath)
	repo, err := task.NewRepository(taskStore)
	if err != nil {
		if !errors.Is(err, config.ErrDecode) {
			return nil, fmt.Errorf("failed to load tasks: %w", err)
		}
		fmt.Fprintln(rootCmd.ErrOrStderr(), styleWarning.Render("task file unreadable, starting empty"))
		repo = task.Empty(taskStore)
	}

	return session.New(session.Config{
		Tasks:    repo,
		Settings: settingsStore,
		Display:  display,
		Host:     display,
		Notifier: notify.NewDesktop(),
	})
}

// dispatch sends one intent and converts a surfaced error into a command
// failure.
func dispatch(c *session.Controller, display *consoleDisplay, intent any) error {
	c.Dispatch(intent)
	return display.Err()
}

// currentSettings fetches the settings snapshot without printing it.
func currentSettings(c *session.Controller, display *consoleDisplay) *models.Settings {
	quiet := display.quietSnapshots
	display.quietSnapshots = true
	c.Dispatch(session.RequestSnapshot{})
	display.quietSnapshots = quiet

	if display.lastSettings == nil {
		return models.NewSettings()
	}
	return display.lastSettings
}
